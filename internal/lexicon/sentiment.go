package lexicon

// Sentiment lists. Positive and negative entries are single words matched as
// tokens; Frustration and Delight entries are phrases.
const (
	SentimentPositive ListName = "sentiment.positive"
	SentimentNegative ListName = "sentiment.negative"
	SentimentNegators ListName = "sentiment.negators"
	Intensifiers      ListName = "sentiment.intensifiers"
	Frustration       ListName = "sentiment.frustration"
	Delight           ListName = "sentiment.delight"
)

var sentimentLists = Table{
	SentimentPositive: {
		"good", "great", "excellent", "wonderful", "awesome", "perfect",
		"happy", "glad", "pleased", "satisfied", "thanks", "thank",
		"appreciate", "helpful", "love", "nice", "amazing", "fantastic",
		"easy", "fine", "interested", "excited", "better", "best",
		"sure", "absolutely", "definitely", "yes", "resolved", "fixed",
		"beautiful", "welcome", "correct", "right", "benefit", "save",
		"savings", "free", "qualify", "eligible", "approved",
	},
	SentimentNegative: {
		"bad", "terrible", "awful", "horrible", "worst", "angry",
		"upset", "frustrated", "frustrating", "annoyed", "annoying",
		"disappointed", "unhappy", "problem", "issue", "wrong", "broken",
		"cancel", "refund", "complaint", "ridiculous", "unacceptable",
		"confused", "confusing", "difficult", "hate", "waste", "scam",
		"never", "expensive", "denied", "declined", "late", "stop",
		"sick", "worried", "concerned", "unfortunately", "mad",
	},
	SentimentNegators: {
		"not", "no", "never", "don't", "doesn't", "didn't", "isn't",
		"wasn't", "can't", "cannot", "won't", "wouldn't", "nothing",
	},
	Intensifiers: {
		"very", "really", "so", "extremely", "totally", "absolutely",
		"completely", "super", "incredibly",
	},
	Frustration: {
		"this is ridiculous",
		"waste of my time",
		"i've been waiting",
		"i already told you",
		"how many times",
		"i'm tired of",
		"this is the third time",
		"nobody called me back",
		"let me speak to a manager",
		"let me talk to your supervisor",
		"stop calling",
	},
	Delight: {
		"thank you so much",
		"that's great",
		"that's wonderful",
		"you've been very helpful",
		"you've been so helpful",
		"i really appreciate",
		"that's perfect",
		"sounds great",
		"that's awesome",
	},
}
