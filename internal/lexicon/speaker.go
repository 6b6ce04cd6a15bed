package lexicon

// Speaker identification lists.
const (
	AgentStrongPhrases      ListName = "speaker.agent_strong"
	CustomerStrongPhrases   ListName = "speaker.customer_strong"
	QuestionOpeners         ListName = "speaker.question_openers"
	EmpathyPhrases          ListName = "speaker.empathy"
	ControlPhrases          ListName = "speaker.control"
	AgentIntroPhrases       ListName = "speaker.agent_intro"
	DefiniteAgentPhrases    ListName = "speaker.definite_agent"
	DefiniteCustomerPhrases ListName = "speaker.definite_customer"
)

var speakerLists = Table{
	AgentStrongPhrases: {
		"thank you for calling",
		"thanks for calling",
		"my name is",
		"how can i help you",
		"how may i help you",
		"how can i assist you",
		"how may i assist you",
		"this call may be recorded",
		"this call is being recorded",
		"for quality and training purposes",
		"for quality assurance",
		"can i get your name",
		"may i have your name",
		"can you verify your",
		"can you confirm your",
		"what is your date of birth",
		"can i get your zip code",
		"what's your zip code",
		"are you currently enrolled",
		"do you currently have",
		"do you have medicare",
		"you may qualify for",
		"you are eligible for",
		"let me check that for you",
		"let me pull up your",
		"i'm going to transfer you",
		"is there anything else i can help",
	},
	CustomerStrongPhrases: {
		"yeah",
		"uh huh",
		"okay",
		"no thanks",
		"not interested",
		"i'm not interested",
		"i don't know",
		"what do you mean",
		"who is this",
		"why are you calling",
		"take me off your list",
	},
	QuestionOpeners: {
		"can you ",
		"could you ",
		"do you ",
		"are you ",
		"have you ",
		"would you ",
		"may i ",
		"what is ",
		"what's ",
		"when did ",
		"how many ",
		"is that ",
		"is it ",
	},
	EmpathyPhrases: {
		"i understand",
		"i completely understand",
		"i'm sorry to hear",
		"i apologize",
		"i can imagine",
		"that must be",
		"i hear you",
		"i appreciate your patience",
		"thank you for your patience",
		"i know how frustrating",
		"that sounds frustrating",
	},
	ControlPhrases: {
		"let me",
		"first,",
		"first of all",
		"next,",
		"moving on",
		"before we",
		"let's go ahead",
		"go ahead and",
		"what i'm going to do",
		"the next step",
		"let's start with",
		"bear with me",
	},
	AgentIntroPhrases: {
		"thank you for calling",
		"thanks for calling",
		"my name is",
		"my name's",
		"you've reached",
		"you have reached",
		"how can i help",
		"how may i help",
		"how can i assist",
		"good morning",
		"good afternoon",
		"welcome to",
	},
	DefiniteAgentPhrases: {
		"thank you for calling",
		"this call may be recorded",
		"this call is being recorded",
		"for quality and training purposes",
		"how can i help you today",
		"how may i help you today",
		"i'm a licensed agent",
		"i'm a licensed insurance agent",
		"let me transfer you",
		"i'm going to transfer you",
	},
	DefiniteCustomerPhrases: {
		"take me off your list",
		"remove me from your list",
		"why are you calling me",
		"who is this",
		"how did you get my number",
		"stop calling me",
		"i got a call from this number",
		"i'm calling about",
		"i received a letter",
	},
}
