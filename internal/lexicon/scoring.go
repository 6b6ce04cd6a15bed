package lexicon

// Performance-scoring phrase groups, matched against agent speech unless the
// scoring engine says otherwise.
const (
	CommClarity         ListName = "score.communication.clarity"
	CommActiveListening ListName = "score.communication.active_listening"
	CommConfirmation    ListName = "score.communication.confirmation"
	CommFillers         ListName = "score.communication.fillers"

	EmpathyApology     ListName = "score.empathy.apology"
	EmpathyAcknowledge ListName = "score.empathy.acknowledge"
	EmpathyDismissive  ListName = "score.empathy.dismissive"

	ResolutionSolution     ListName = "score.resolution.solution"
	ResolutionFollowThru   ListName = "score.resolution.follow_through"
	ResolutionVerification ListName = "score.resolution.verification"
	ResolutionUnresolved   ListName = "score.resolution.unresolved"

	ProfGreeting       ListName = "score.professionalism.greeting"
	ProfCourtesy       ListName = "score.professionalism.courtesy"
	ProfClosing        ListName = "score.professionalism.closing"
	ProfUnprofessional ListName = "score.professionalism.unprofessional"

	KnowledgeTerms       ListName = "score.knowledge.terms"
	KnowledgeExplanation ListName = "score.knowledge.explanation"
	KnowledgeUncertainty ListName = "score.knowledge.uncertainty"

	ControlAgenda   ListName = "score.control.agenda"
	ControlRedirect ListName = "score.control.redirect"
	ControlHold     ListName = "score.control.hold"

	ComplianceDisclosure   ListName = "score.compliance.disclosure"
	ComplianceVerification ListName = "score.compliance.verification"
	ComplianceConsent      ListName = "score.compliance.consent"
	ComplianceViolation    ListName = "score.compliance.violation"

	BusinessUpsell          ListName = "score.business.upsell"
	BusinessNeedsDiscovery  ListName = "score.business.needs_discovery"
	AdaptRephrase           ListName = "score.adaptability.rephrase"
	AdaptAlternatives       ListName = "score.adaptability.alternatives"
	AdaptPersonalize        ListName = "score.adaptability.personalize"
)

var scoringLists = Table{
	CommClarity: {
		"let me explain", "to clarify", "in other words", "what that means is",
		"to put it simply", "basically", "the way it works", "to be clear",
	},
	CommActiveListening: {
		"i understand", "i hear you", "what i'm hearing", "if i understand correctly",
		"so what you're saying", "let me make sure i have", "you mentioned",
		"i see",
	},
	CommConfirmation: {
		"does that make sense", "is that clear", "any questions", "did that answer",
		"do you have any questions", "let me repeat that", "just to confirm",
	},
	CommFillers: {
		" um ", " uh ", " umm ", " uh, ", " um, ", " you know, ", " like, ",
	},
	EmpathyApology: {
		"i'm sorry", "i apologize", "sorry about that", "my apologies",
		"sorry for the inconvenience",
	},
	EmpathyAcknowledge: {
		"i understand how", "that must be", "i can imagine", "i know that's",
		"that sounds", "i'd feel the same", "i appreciate you",
	},
	EmpathyDismissive: {
		"that's not my problem", "there's nothing i can do", "calm down",
		"you need to", "that's just how it is", "i already told you",
	},
	ResolutionSolution: {
		"i can fix", "i've fixed", "i have fixed", "i've resolved", "i have resolved",
		"i've updated", "i went ahead and", "the solution is", "here's what we can do",
		"i can take care of", "i've taken care of", "i've submitted",
	},
	ResolutionFollowThru: {
		"i'll follow up", "i will follow up", "reference number", "ticket number",
		"confirmation number", "you'll receive", "you will receive", "i'll send you",
		"i'll call you back",
	},
	ResolutionVerification: {
		"anything else i can", "is there anything else", "did that resolve",
		"is that working now", "does that fix", "have i answered",
	},
	ResolutionUnresolved: {
		"i don't know", "i can't help", "not sure what to tell you",
		"you'll have to call", "there's no way", "i have no idea",
	},
	ProfGreeting: {
		"thank you for calling", "thanks for calling", "good morning",
		"good afternoon", "good evening", "my name is",
	},
	ProfCourtesy: {
		"please", "thank you", "you're welcome", "my pleasure", "happy to help",
		"i'd be glad to", "absolutely",
	},
	ProfClosing: {
		"have a great day", "have a wonderful day", "have a nice day",
		"thank you for your time", "take care", "enjoy the rest of your day",
	},
	ProfUnprofessional: {
		"whatever", "shut up", "calm down", "that's stupid", "i don't care",
		"hold on a sec", "yeah yeah", "damn", "hell",
	},
	KnowledgeTerms: {
		"coverage", "premium", "deductible", "copay", "network", "formulary",
		"benefit", "allowance", "enrollment period", "part a", "part b", "part c",
		"part d", "medicare advantage", "supplement", "prescription",
	},
	KnowledgeExplanation: {
		"what this means", "the way it works", "this includes", "that covers",
		"this plan offers", "the difference is", "you would pay", "it works like",
	},
	KnowledgeUncertainty: {
		"i'm not sure", "i think maybe", "i'm not certain", "let me guess",
		"i don't really know", "i'd have to check",
	},
	ControlAgenda: {
		"the purpose of this call", "today we'll", "what we'll do is",
		"here's what's going to happen", "first i'll", "i'm going to ask you a few",
	},
	ControlRedirect: {
		"getting back to", "to stay on track", "back to your question",
		"so, as i was saying", "let's focus on",
	},
	ControlHold: {
		"please hold", "one moment", "hold on", "bear with me", "just a moment",
		"put you on hold",
	},
	ComplianceDisclosure: {
		"this call may be recorded", "this call is being recorded", "recorded for quality",
		"for quality and training", "licensed agent", "licensed insurance agent",
		"not affiliated with", "not connected with",
	},
	ComplianceVerification: {
		"verify your", "date of birth", "confirm your address", "last four",
		"confirm your name", "spell your last name", "zip code",
	},
	ComplianceConsent: {
		"do i have your permission", "do you agree", "is that okay with you",
		"consent", "may i proceed", "do you authorize",
	},
	ComplianceViolation: {
		"guarantee", "guaranteed", "100% free", "no risk", "government program",
		"you have to act now", "you'll lose your benefits",
	},
	BusinessUpsell: {
		"also qualify for", "additional benefit", "upgrade", "add on",
		"bundle", "premium option", "extra coverage",
	},
	BusinessNeedsDiscovery: {
		"what are you looking for", "what matters most", "tell me about your",
		"what's important to you", "how often do you", "do you currently",
		"what are your",
	},
	AdaptRephrase: {
		"let me put it another way", "in simpler terms", "another way to",
		"let me rephrase", "what i mean is",
	},
	AdaptAlternatives: {
		"if that doesn't work", "another option", "alternatively",
		"we could also", "instead, we can", "other options",
	},
	AdaptPersonalize: {
		"for your situation", "in your case", "based on what you told me",
		"since you mentioned", "for someone like you",
	},
}
