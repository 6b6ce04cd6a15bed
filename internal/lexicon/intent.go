package lexicon

// Intent keyword lists, one per call intent, plus the subcategory lists the
// classifier uses to refine a primary intent.
const (
	IntentSupport     ListName = "intent.support"
	IntentSales       ListName = "intent.sales"
	IntentBilling     ListName = "intent.billing"
	IntentComplaint   ListName = "intent.complaint"
	IntentInformation ListName = "intent.information"
	IntentOnboarding  ListName = "intent.onboarding"
	IntentRetention   ListName = "intent.retention"

	ResolutionWords ListName = "intent.resolution_words"
	SalesWords      ListName = "intent.sales_words"

	SubTechnicalIssue   ListName = "intent.sub.technical_issue"
	SubAccountAccess    ListName = "intent.sub.account_access"
	SubClaimStatus      ListName = "intent.sub.claim_status"
	SubGeneralSupport   ListName = "intent.sub.general_support"
	SubNewEnrollment    ListName = "intent.sub.new_enrollment"
	SubPlanComparison   ListName = "intent.sub.plan_comparison"
	SubUpgrade          ListName = "intent.sub.upgrade"
	SubLeadQualify      ListName = "intent.sub.lead_qualification"
	SubPaymentIssue     ListName = "intent.sub.payment_issue"
	SubInvoiceQuestion  ListName = "intent.sub.invoice_question"
	SubRefundRequest    ListName = "intent.sub.refund_request"
	SubServiceQuality   ListName = "intent.sub.service_quality"
	SubBillingDispute   ListName = "intent.sub.billing_dispute"
	SubUnwantedContact  ListName = "intent.sub.unwanted_contact"
	SubProductInquiry   ListName = "intent.sub.product_inquiry"
	SubEligibilityCheck ListName = "intent.sub.eligibility_check"
	SubBenefitsQuestion ListName = "intent.sub.benefits_question"
	SubAccountSetup     ListName = "intent.sub.account_setup"
	SubWelcomeCall      ListName = "intent.sub.welcome_call"
	SubCancellation     ListName = "intent.sub.cancellation"
	SubWinBack          ListName = "intent.sub.win_back"
)

var intentLists = Table{
	IntentSupport: {
		"help", "not working", "doesn't work", "error", "broken", "fix",
		"troubleshoot", "technical", "can't log in", "password", "reset",
		"support", "issue with", "trouble", "having a problem", "stopped working",
		"claim", "status of",
	},
	IntentSales: {
		"buy", "purchase", "price", "pricing", "quote", "cost", "plan",
		"sign up", "enroll", "interested in", "offer", "deal", "discount",
		"upgrade", "package", "coverage", "policy", "premium", "benefit",
		"qualify", "savings", "special",
	},
	IntentBilling: {
		"bill", "billing", "invoice", "charge", "charged", "payment",
		"pay", "refund", "statement", "balance", "credit card", "overcharged",
		"autopay", "due date", "late fee",
	},
	IntentComplaint: {
		"complaint", "complain", "unhappy", "dissatisfied", "terrible",
		"worst", "unacceptable", "ridiculous", "angry", "frustrated",
		"manager", "supervisor", "stop calling", "scam", "harass",
		"rude",
	},
	IntentInformation: {
		"information", "question", "wondering", "know more", "tell me about",
		"explain", "what is", "how does", "details", "hours", "location",
		"find out", "curious", "learn more",
	},
	IntentOnboarding: {
		"new customer", "just signed up", "getting started", "set up",
		"setup", "activate", "activation", "welcome", "first time",
		"new account", "onboard", "id card", "member id",
	},
	IntentRetention: {
		"cancel", "cancellation", "cancel my", "close my account", "leave",
		"switch", "switching", "competitor", "other company", "end my",
		"don't want to renew", "terminate", "disenroll",
	},
	ResolutionWords: {
		"fix", "resolve", "resolved", "solution", "solve", "reset",
		"refund", "troubleshoot", "activate", "cancel",
	},
	SalesWords: {
		"buy", "purchase", "sign up", "enroll", "quote", "upgrade",
		"deal", "discount", "offer", "premium", "coverage", "plan",
	},

	SubTechnicalIssue:   {"not working", "error", "broken", "stopped working", "crash", "technical"},
	SubAccountAccess:    {"password", "log in", "login", "locked out", "username", "reset"},
	SubClaimStatus:      {"claim", "status of", "processed", "pending"},
	SubGeneralSupport:   {"help", "support", "question"},
	SubNewEnrollment:    {"enroll", "sign up", "new plan", "join", "apply"},
	SubPlanComparison:   {"compare", "difference between", "which plan", "options", "versus"},
	SubUpgrade:          {"upgrade", "more coverage", "better plan", "add on"},
	SubLeadQualify:      {"qualify", "eligible", "zip code", "date of birth", "currently have"},
	SubPaymentIssue:     {"payment", "declined", "credit card", "autopay", "pay"},
	SubInvoiceQuestion:  {"invoice", "statement", "bill", "balance"},
	SubRefundRequest:    {"refund", "money back", "reimburse"},
	SubServiceQuality:   {"rude", "unprofessional", "terrible service", "waited", "hold"},
	SubBillingDispute:   {"overcharged", "wrong charge", "didn't authorize", "dispute"},
	SubUnwantedContact:  {"stop calling", "take me off", "remove me", "do not call", "how did you get my number"},
	SubProductInquiry:   {"what is", "tell me about", "how does", "features"},
	SubEligibilityCheck: {"eligible", "qualify", "eligibility"},
	SubBenefitsQuestion: {"benefit", "allowance", "coverage", "dental", "vision", "grocery"},
	SubAccountSetup:     {"set up", "setup", "activate", "new account", "create"},
	SubWelcomeCall:      {"welcome", "getting started", "first time", "id card"},
	SubCancellation:     {"cancel", "terminate", "close my account", "disenroll"},
	SubWinBack:          {"stay", "keep you", "special offer", "reconsider", "discount"},
}
