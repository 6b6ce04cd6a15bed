package lexicon

// Fact and summary extraction lists.
const (
	EligibilityTerms    ListName = "extract.eligibility_terms"
	ProgramTerms        ListName = "extract.program_terms"
	EnrollmentStatus    ListName = "extract.enrollment_status"
	TimeReferences      ListName = "extract.time_references"
	MonthNames          ListName = "extract.month_names"
	AgentCommitments    ListName = "extract.agent_commitments"
	CustomerCommitments ListName = "extract.customer_commitments"
	NameStopwords       ListName = "extract.name_stopwords"

	TopicMedicare    ListName = "topic.medicare"
	TopicEnrollment  ListName = "topic.enrollment"
	TopicBenefits    ListName = "topic.benefits"
	TopicPricing     ListName = "topic.pricing"
	TopicBilling     ListName = "topic.billing"
	TopicTechnical   ListName = "topic.technical"
	TopicEligibility ListName = "topic.eligibility"
	TopicPersonal    ListName = "topic.personal_information"
	TopicScheduling  ListName = "topic.scheduling"
	TopicCancel      ListName = "topic.cancellation"
	TopicPrescript   ListName = "topic.prescriptions"
	TopicProviders   ListName = "topic.providers"
)

var extractLists = Table{
	EligibilityTerms: {"eligible", "qualify", "qualifies", "allowance", "benefit"},
	ProgramTerms: {
		"plan", "program", "medicare", "medicaid", "advantage", "part c",
		"part d", "supplement", "coverage", "policy", "ssi", "snap", "dual",
	},
	EnrollmentStatus: {"currently", "already"},
	TimeReferences: {
		"today", "tomorrow", "yesterday", "next week", "last week", "this week",
		"next month", "last month", "this month", "monday", "tuesday", "wednesday",
		"thursday", "friday", "saturday", "sunday", "morning", "afternoon", "evening",
	},
	MonthNames: {
		"january", "february", "march", "april", "may", "june", "july",
		"august", "september", "october", "november", "december",
	},
	AgentCommitments: {
		"i will send", "i'll send", "i'll email", "i will email", "i'll mail",
		"i will call", "i'll call you", "i'll follow up", "i will follow up",
		"we will send", "we'll send", "you'll receive", "you will receive",
		"i'll transfer", "i'll schedule", "i'll set up", "i'll submit",
	},
	CustomerCommitments: {
		"i will call", "i'll call", "i'll check", "i will check", "i'll look",
		"i'll send", "i need to", "i have to", "i'll talk to", "i'll think about",
	},
	NameStopwords: {
		"the", "and", "but", "yes", "yeah", "okay", "thank", "thanks", "this",
		"that", "what", "when", "how", "can", "could", "would", "will", "well",
		"sure", "great", "hello", "good", "agent", "customer", "caller", "speaker",
		"medicare", "medicaid", "part", "monday", "tuesday", "wednesday", "thursday",
		"friday", "saturday", "sunday", "january", "february", "march", "april",
		"may", "june", "july", "august", "september", "october", "november",
		"december", "you", "your", "our", "let", "are", "not", "for", "have",
		"perfect", "alright", "absolutely", "please", "just", "now", "there",
	},

	TopicMedicare:    {"medicare", "medicaid", "part a", "part b", "part c", "part d", "advantage plan"},
	TopicEnrollment:  {"enroll", "enrollment", "sign up", "application", "switch plans"},
	TopicBenefits:    {"benefit", "allowance", "dental", "vision", "hearing", "grocery", "otc", "flex card"},
	TopicPricing:     {"price", "cost", "premium", "$0", "afford", "expensive", "cheaper"},
	TopicBilling:     {"bill", "invoice", "payment", "charge", "refund", "balance"},
	TopicTechnical:   {"not working", "error", "login", "password", "website", "app"},
	TopicEligibility: {"eligible", "qualify", "eligibility"},
	TopicPersonal:    {"date of birth", "address", "zip code", "social security", "phone number"},
	TopicScheduling:  {"appointment", "schedule", "call back", "callback", "available"},
	TopicCancel:      {"cancel", "disenroll", "terminate", "close my account"},
	TopicPrescript:   {"prescription", "medication", "pharmacy", "drug"},
	TopicProviders:   {"doctor", "physician", "provider", "hospital", "network", "specialist"},
}

var english = merge(speakerLists, sentimentLists, intentLists, dispositionLists,
	conversionLists, scoringLists, extractLists)

func merge(tables ...Table) Table {
	out := Table{}
	for _, t := range tables {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}
