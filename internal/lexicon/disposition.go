package lexicon

// Disposition indicator lists.
const (
	DispositionResolved     ListName = "disposition.resolved"
	DispositionEscalated    ListName = "disposition.escalated"
	DispositionFollowUp     ListName = "disposition.follow_up"
	DispositionTransferred  ListName = "disposition.transferred"
	DispositionAbandoned    ListName = "disposition.abandoned"
	DispositionCallback     ListName = "disposition.callback"
	DispositionConverted    ListName = "disposition.converted"
	DispositionNoResolution ListName = "disposition.no_resolution"
	TransferDepartments     ListName = "disposition.transfer_departments"
)

var dispositionLists = Table{
	DispositionResolved: {
		"resolved", "fixed", "taken care of", "all set", "that solved",
		"that worked", "problem solved", "that's all i needed", "you've answered",
		"that answers my question", "issue is resolved", "working now",
	},
	DispositionEscalated: {
		"escalate", "escalated", "escalating", "supervisor", "manager",
		"higher up", "speak to someone else", "file a complaint", "formal complaint",
		"corporate office",
	},
	DispositionFollowUp: {
		"follow up", "follow-up", "get back to you", "i'll send you",
		"we'll send", "in the mail", "email you", "within 24 hours",
		"within a few days", "reference number", "ticket number", "look into it",
	},
	DispositionTransferred: {
		"transfer you", "transferring you", "connect you with", "connecting you",
		"put you through", "licensed agent", "another department", "one moment while i connect",
		"hold while i transfer",
	},
	DispositionAbandoned: {
		"hello?", "are you there", "call dropped", "hung up", "lost you",
		"can you hear me", "line went dead", "no answer",
	},
	DispositionCallback: {
		"call you back", "call me back", "callback", "call back later",
		"better time to call", "try again later", "reach you later", "schedule a call",
		"call tomorrow",
	},
	DispositionConverted: {
		"signed up", "enrolled", "you're all set", "welcome aboard",
		"completed your enrollment", "application is complete", "approved",
		"confirmation number", "purchase is complete", "sign me up",
	},
	DispositionNoResolution: {
		"not interested", "no thank you", "no thanks", "remove me",
		"take me off", "don't call", "do not call", "not right now",
		"can't help", "unable to help", "nothing i can do", "i'll pass",
	},
	TransferDepartments: {
		"billing", "claims", "sales", "enrollment", "technical support",
		"customer service", "retention", "pharmacy", "member services",
		"licensed agent",
	},
}
