package types

import "fmt"

// ConversionStage is ordered: Awareness < Interest < ... < Purchase.
type ConversionStage int

const (
	StageAwareness ConversionStage = iota
	StageInterest
	StageConsideration
	StageIntent
	StageEvaluation
	StagePurchase
)

var stageNames = []string{"awareness", "interest", "consideration", "intent", "evaluation", "purchase"}

func (s ConversionStage) String() string {
	if s < StageAwareness || s > StagePurchase {
		return fmt.Sprintf("ConversionStage(%d)", int(s))
	}
	return stageNames[s]
}

func (s ConversionStage) MarshalText() ([]byte, error) {
	if s < StageAwareness || s > StagePurchase {
		return nil, fmt.Errorf("invalid conversion stage %d", int(s))
	}
	return []byte(stageNames[s]), nil
}

func (s *ConversionStage) UnmarshalText(b []byte) error {
	for i, n := range stageNames {
		if n == string(b) {
			*s = ConversionStage(i)
			return nil
		}
	}
	return fmt.Errorf("unknown conversion stage %q", string(b))
}

// CommitmentLevel is ordered: Low < Medium < High < VeryHigh.
type CommitmentLevel int

const (
	CommitmentLow CommitmentLevel = iota
	CommitmentMedium
	CommitmentHigh
	CommitmentVeryHigh
)

var commitmentNames = []string{"low", "medium", "high", "very_high"}

func (c CommitmentLevel) String() string {
	if c < CommitmentLow || c > CommitmentVeryHigh {
		return fmt.Sprintf("CommitmentLevel(%d)", int(c))
	}
	return commitmentNames[c]
}

func (c CommitmentLevel) MarshalText() ([]byte, error) {
	if c < CommitmentLow || c > CommitmentVeryHigh {
		return nil, fmt.Errorf("invalid commitment level %d", int(c))
	}
	return []byte(commitmentNames[c]), nil
}

func (c *CommitmentLevel) UnmarshalText(b []byte) error {
	for i, n := range commitmentNames {
		if n == string(b) {
			*c = CommitmentLevel(i)
			return nil
		}
	}
	return fmt.Errorf("unknown commitment level %q", string(b))
}

// Level is the shared low/medium/high/very_high bucket used for deal value
// and urgency.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelVeryHigh Level = "very_high"
)

// SignalTier names the phrase tier a conversion signal matched.
type SignalTier string

const (
	TierStrongPositive   SignalTier = "strong_positive"
	TierModeratePositive SignalTier = "moderate_positive"
	TierWeakPositive     SignalTier = "weak_positive"
	TierNegative         SignalTier = "negative"
	TierStrongNegative   SignalTier = "strong_negative"
	TierClosingAttempt   SignalTier = "closing_attempt"
	TierValueProposition SignalTier = "value_proposition"
	TierUrgencyCreation  SignalTier = "urgency_creation"
)

// ConversionSignal is one phrase hit on one line.
type ConversionSignal struct {
	Line    int        `json:"line"`
	Speaker Speaker    `json:"speaker"`
	Phrase  string     `json:"phrase"`
	Tier    SignalTier `json:"tier"`
	Weight  int        `json:"weight"`
	Text    string     `json:"text"`
}

// TierCounts counts signals per customer tier.
type TierCounts struct {
	StrongPositive   int `json:"strong_positive"`
	ModeratePositive int `json:"moderate_positive"`
	WeakPositive     int `json:"weak_positive"`
	Negative         int `json:"negative"`
	StrongNegative   int `json:"strong_negative"`
}

// AgentEffectiveness holds 0-10 sub-scores of the agent's selling.
type AgentEffectiveness struct {
	ClosingAttempts   int `json:"closing_attempts"`
	ValueProposition  int `json:"value_proposition"`
	UrgencyCreation   int `json:"urgency_creation"`
	ObjectionHandling int `json:"objection_handling"`
	Objections        int `json:"objections"`
	ObjectionReplies  int `json:"objection_responses"`
}

// DealValue is the estimated value of the opportunity. Value is zero when
// no amount was quoted and Category was inferred.
type DealValue struct {
	Value    float64 `json:"value"`
	Category Level   `json:"category"`
	Quoted   bool    `json:"quoted"`
}

type UrgencyAssessment struct {
	Level    Level    `json:"level"`
	FollowUp string   `json:"follow_up_timeframe"`
	Phrases  []string `json:"phrases,omitempty"`
}

// EnhancedBusinessConversion is the conversion read of one call.
type EnhancedBusinessConversion struct {
	Stage              ConversionStage    `json:"conversion_stage"`
	Commitment         CommitmentLevel    `json:"commitment_level"`
	Score              int                `json:"conversion_score"`
	Confidence         int                `json:"confidence"`
	ConversionAchieved bool               `json:"conversion_achieved"`
	EstimatedValue     DealValue          `json:"estimated_value"`
	Urgency            UrgencyAssessment  `json:"urgency"`
	Counts             TierCounts         `json:"signal_counts"`
	PositiveSignals    []ConversionSignal `json:"positive_signals"`
	NegativeSignals    []ConversionSignal `json:"negative_signals"`
	AgentSignals       []ConversionSignal `json:"agent_signals"`
	Agent              AgentEffectiveness `json:"agent_effectiveness"`
	RiskFactors        []string           `json:"risk_factors"`
	NextBestAction     string             `json:"next_best_action"`
}

// Outcome reduces the analysis to the verdict the disposition classifier
// consumes.
func (c EnhancedBusinessConversion) Outcome() ConversionOutcome {
	return ConversionOutcome{Achieved: c.ConversionAchieved, Confidence: c.Confidence}
}
