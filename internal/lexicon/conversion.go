package lexicon

// Business-conversion phrase tiers. Weights live with the conversion
// analyzer; these lists only carry the wording.
const (
	ConversionStrongPositive   ListName = "conversion.strong_positive"
	ConversionModeratePositive ListName = "conversion.moderate_positive"
	ConversionWeakPositive     ListName = "conversion.weak_positive"
	ConversionNegative         ListName = "conversion.negative"
	ConversionStrongNegative   ListName = "conversion.strong_negative"

	AgentClosingAttempts   ListName = "conversion.agent_closing"
	AgentValueProposition  ListName = "conversion.agent_value"
	AgentUrgencyCreation   ListName = "conversion.agent_urgency"
	UrgencyHigh            ListName = "conversion.urgency_high"
	UrgencyMedium          ListName = "conversion.urgency_medium"
	RiskPriceSensitivity   ListName = "conversion.risk_price"
	RiskTimelineConcern    ListName = "conversion.risk_timeline"
	RiskCompetitor         ListName = "conversion.risk_competitor"
	RiskNonDecisionMaker   ListName = "conversion.risk_decision_maker"
)

var conversionLists = Table{
	ConversionStrongPositive: {
		"i'll take it",
		"sign me up",
		"where do i sign",
		"let's do it",
		"let's do this",
		"i want to enroll",
		"i'd like to enroll",
		"i want to sign up",
		"i'd like to sign up",
		"i'm ready to",
		"go ahead and enroll me",
		"go ahead and sign me up",
		"i'll buy it",
		"i want to buy",
		"let's get started",
		"count me in",
		"i accept",
		"yes, i want",
	},
	ConversionModeratePositive: {
		"that sounds good",
		"sounds good",
		"i'm interested",
		"i am interested",
		"that would be great",
		"how do i get started",
		"what's the next step",
		"what are the next steps",
		"how soon can",
		"when can i start",
		"that makes sense",
		"i like that",
		"that works for me",
		"send me the information",
		"i'd like to know more",
	},
	ConversionWeakPositive: {
		"okay",
		"maybe",
		"tell me more",
		"how much",
		"what does it cost",
		"interesting",
		"i might",
		"possibly",
		"i'll think about it",
		"what else",
		"is that right",
		"really?",
	},
	ConversionNegative: {
		"too expensive",
		"i can't afford",
		"not sure",
		"i need to think",
		"not right now",
		"maybe later",
		"i already have",
		"i'm happy with",
		"sounds like a scam",
		"i don't trust",
		"i need to talk to",
		"i need to check with",
		"i'm busy",
	},
	ConversionStrongNegative: {
		"not interested",
		"no thank you",
		"remove me from your list",
		"take me off your list",
		"stop calling",
		"don't call me",
		"do not call",
		"never call",
		"i said no",
		"absolutely not",
		"leave me alone",
		"i'm hanging up",
	},
	AgentClosingAttempts: {
		"would you like to enroll",
		"would you like to sign up",
		"can i go ahead and",
		"shall we get you",
		"let's get you enrolled",
		"let's get you signed up",
		"are you ready to",
		"do you want to move forward",
		"should i go ahead",
		"i can enroll you today",
		"i can sign you up",
		"let me get that started",
	},
	AgentValueProposition: {
		"you'll save",
		"you will save",
		"save you",
		"at no cost",
		"no additional cost",
		"zero premium",
		"$0 premium",
		"included at no",
		"you qualify for",
		"you're eligible for",
		"additional benefits",
		"extra benefits",
		"better coverage",
		"lower your",
		"allowance",
		"free of charge",
	},
	AgentUrgencyCreation: {
		"limited time",
		"enrollment period ends",
		"deadline",
		"today only",
		"before it expires",
		"won't last",
		"only available until",
		"act now",
		"lock in",
		"right now",
		"this week only",
	},
	UrgencyHigh: {
		"today",
		"right away",
		"right now",
		"immediately",
		"asap",
		"as soon as possible",
		"urgent",
		"emergency",
		"this afternoon",
	},
	UrgencyMedium: {
		"tomorrow",
		"this week",
		"next few days",
		"soon",
		"by friday",
		"in a couple of days",
		"next week",
	},
	RiskPriceSensitivity: {
		"too expensive",
		"can't afford",
		"cost too much",
		"costs too much",
		"price is too high",
		"cheaper",
		"fixed income",
		"on a budget",
	},
	RiskTimelineConcern: {
		"not right now",
		"maybe later",
		"next year",
		"need more time",
		"not ready",
		"in a few months",
		"after the holidays",
	},
	RiskCompetitor: {
		"competitor",
		"other company",
		"another company",
		"another provider",
		"already have a plan",
		"i already have",
		"switching from",
		"better deal elsewhere",
	},
	RiskNonDecisionMaker: {
		"talk to my wife",
		"talk to my husband",
		"ask my wife",
		"ask my husband",
		"check with my",
		"talk to my son",
		"talk to my daughter",
		"not my decision",
		"power of attorney",
	},
}
