package types

// ActionItem is a commitment made by one side of the call.
type ActionItem struct {
	Owner    Speaker `json:"owner"`
	Action   string  `json:"action"`
	Due      string  `json:"due,omitempty"`
	Priority string  `json:"priority"`
}

// Takeaway is a summary point ranked by Impact (0-100).
type Takeaway struct {
	Text   string `json:"text"`
	Impact int    `json:"impact"`
}

// FollowUpItem is ranked by Confidence (0-100).
type FollowUpItem struct {
	Action     string  `json:"action"`
	Owner      Speaker `json:"owner"`
	Timeframe  string  `json:"timeframe,omitempty"`
	Confidence int     `json:"confidence"`
}

// Fact is an extracted transcript fact ranked by Confidence.
type Fact struct {
	Kind       string `json:"kind"`
	Text       string `json:"text"`
	Confidence int    `json:"confidence"`
}

// CallSummary is regenerated wholesale from a transcript and its analyses.
type CallSummary struct {
	ShortSummary     string         `json:"short_summary"`
	ExecutiveSummary string         `json:"executive_summary"`
	TopicsCovered    []string       `json:"topics_covered"`
	KeyTakeaways     []Takeaway     `json:"key_takeaways"`
	KeyFacts         []Fact         `json:"key_facts"`
	CallConclusion   string         `json:"call_conclusion"`
	FollowUpItems    []FollowUpItem `json:"follow_up_items"`
	ActionItems      []ActionItem   `json:"action_items,omitempty"`
	RiskFactors      []string       `json:"risk_factors,omitempty"`

	Intent      IntentAnalysis              `json:"intent"`
	Disposition DispositionAnalysis         `json:"disposition"`
	Sentiment   SentimentAnalysis           `json:"sentiment"`
	Conversion  *EnhancedBusinessConversion `json:"business_conversion,omitempty"`
	Scoring     *PreciseScoring             `json:"scoring,omitempty"`
}
