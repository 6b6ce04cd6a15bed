package types

// SentimentLabel is the polarity bucket of a sentiment score.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// SentimentAnalysis is the lexicon sentiment of one transcript.
type SentimentAnalysis struct {
	Overall    SentimentLabel `json:"overall"`
	Score      float64        `json:"score"` // -1..1
	Confidence int            `json:"confidence"`
	// CustomerScore and AgentScore are computed over each side's lines.
	CustomerScore float64            `json:"customer_score"`
	AgentScore    float64            `json:"agent_score"`
	Positive      []string           `json:"positive_words,omitempty"`
	Negative      []string           `json:"negative_words,omitempty"`
	Frustration   []string           `json:"frustration_indicators,omitempty"`
	Delight       []string           `json:"delight_indicators,omitempty"`
	Segments      []SentimentSegment `json:"segments,omitempty"`
}

// Intent is one of the fixed call intents.
type Intent string

const (
	IntentSupport     Intent = "SUPPORT"
	IntentSales       Intent = "SALES"
	IntentBilling     Intent = "BILLING"
	IntentComplaint   Intent = "COMPLAINT"
	IntentInformation Intent = "INFORMATION"
	IntentOnboarding  Intent = "ONBOARDING"
	IntentRetention   Intent = "RETENTION"
)

// Intents lists every intent in declaration order. Ties between keyword
// scores resolve to the earlier entry.
var Intents = []Intent{
	IntentSupport, IntentSales, IntentBilling, IntentComplaint,
	IntentInformation, IntentOnboarding, IntentRetention,
}

// Valid reports whether i is a member of the taxonomy.
func (i Intent) Valid() bool {
	for _, v := range Intents {
		if v == i {
			return true
		}
	}
	return false
}

// IntentAnalysis is created once per transcript.
type IntentAnalysis struct {
	Primary     Intent   `json:"primary_intent"`
	Secondary   Intent   `json:"secondary_intent,omitempty"` // empty when absent
	Subcategory string   `json:"subcategory"`
	Confidence  int      `json:"confidence"`
	Keywords    []string `json:"keywords"`
	Reasoning   string   `json:"reasoning"`
	AIEnhanced  bool     `json:"ai_enhanced"`
}

// HasSecondary reports whether a secondary intent was detected.
func (a IntentAnalysis) HasSecondary() bool { return a.Secondary != "" }

// Disposition is one of the fixed call outcomes.
type Disposition string

const (
	DispositionResolved     Disposition = "RESOLVED"
	DispositionEscalated    Disposition = "ESCALATED"
	DispositionFollowUp     Disposition = "FOLLOW_UP"
	DispositionTransferred  Disposition = "TRANSFERRED"
	DispositionAbandoned    Disposition = "ABANDONED"
	DispositionCallback     Disposition = "CALLBACK"
	DispositionConverted    Disposition = "CONVERTED"
	DispositionNoResolution Disposition = "NO_RESOLUTION"
)

// Dispositions lists every disposition in tie-break order.
var Dispositions = []Disposition{
	DispositionResolved, DispositionEscalated, DispositionFollowUp,
	DispositionTransferred, DispositionAbandoned, DispositionCallback,
	DispositionConverted, DispositionNoResolution,
}

func (d Disposition) Valid() bool {
	for _, v := range Dispositions {
		if v == d {
			return true
		}
	}
	return false
}

// DispositionAnalysis is the outcome of one call.
type DispositionAnalysis struct {
	Disposition        Disposition `json:"disposition"`
	Confidence         int         `json:"confidence"`
	Reasoning          string      `json:"reasoning"`
	Indicators         []string    `json:"indicators,omitempty"`
	NextSteps          []string    `json:"next_steps,omitempty"`
	EscalationReason   string      `json:"escalation_reason,omitempty"`
	TransferDepartment string      `json:"transfer_department,omitempty"`
}

// ConversionOutcome is an externally decided conversion verdict, from the
// conversion analyzer or an LLM bundle.
type ConversionOutcome struct {
	Achieved   bool `json:"conversion_achieved"`
	Confidence int  `json:"confidence"`
}
