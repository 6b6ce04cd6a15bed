package types

// Category is one of the ten performance categories.
type Category string

const (
	CategoryCommunication        Category = "communication"
	CategoryEmpathy              Category = "empathy"
	CategoryProblemResolution    Category = "problem_resolution"
	CategoryProfessionalism      Category = "professionalism"
	CategoryProductKnowledge     Category = "product_knowledge"
	CategoryCallControl          Category = "call_control"
	CategoryCompliance           Category = "compliance"
	CategoryCustomerSatisfaction Category = "customer_satisfaction"
	CategoryBusinessAcumen       Category = "business_acumen"
	CategoryAdaptability         Category = "adaptability"
)

// Categories lists every category in report order.
var Categories = []Category{
	CategoryCommunication, CategoryEmpathy, CategoryProblemResolution,
	CategoryProfessionalism, CategoryProductKnowledge, CategoryCallControl,
	CategoryCompliance, CategoryCustomerSatisfaction, CategoryBusinessAcumen,
	CategoryAdaptability,
}

// Rating is the overall performance band.
type Rating string

const (
	RatingExcellent        Rating = "EXCELLENT"
	RatingGood             Rating = "GOOD"
	RatingSatisfactory     Rating = "SATISFACTORY"
	RatingNeedsImprovement Rating = "NEEDS_IMPROVEMENT"
	RatingPoor             Rating = "POOR"
)

// CallData is the baseline the scoring engine starts from. Every field is
// optional.
type CallData struct {
	CallID      string `json:"call_id,omitempty"`
	DurationSec int    `json:"duration_sec,omitempty"`
	// SubScores are externally supplied 0-10 ratings; a missing category
	// falls back to its fixed constant baseline.
	SubScores map[Category]float64 `json:"sub_scores,omitempty"`
	// History holds previous overall scores for this agent, oldest first.
	History []int `json:"history,omitempty"`
	// Utterances are used instead of re-parsing the transcript when set.
	Utterances []Utterance `json:"-"`
}

// CategoryScore is one category's contribution.
type CategoryScore struct {
	Category      Category `json:"category"`
	Score         int      `json:"score"`
	Weight        float64  `json:"weight"`
	WeightedScore float64  `json:"weighted_score"`
	Baseline      int      `json:"baseline"`
	Evidence      []string `json:"evidence,omitempty"`
}

type Benchmarks struct {
	TeamAverage         int    `json:"team_average"`
	CompanyAverage      int    `json:"company_average"`
	IndustryAverage     int    `json:"industry_average"`
	TopPerformerAverage int    `json:"top_performer_average"`
	VsTeam              int    `json:"vs_team"`
	VsIndustry          int    `json:"vs_industry"`
	Percentile          string `json:"percentile"`
	GoalTarget          int    `json:"goal_target"`
	GoalVariance        int    `json:"goal_variance"`
	GoalStatus          string `json:"goal_status"`
}

type ImprovementArea struct {
	Category  Category `json:"category"`
	Current   int      `json:"current_score"`
	Target    int      `json:"target_score"`
	Priority  string   `json:"priority"`
	Timeframe string   `json:"timeframe"`
	Actions   []string `json:"actions"`
}

type Strength struct {
	Category    Category `json:"category"`
	Score       int      `json:"score"`
	Description string   `json:"description"`
}

// Trends compares the current score against caller-supplied history.
type Trends struct {
	Direction           string  `json:"direction"` // improving, declining, stable
	Change              float64 `json:"change"`
	HistoricalAverage   float64 `json:"historical_average"`
	Samples             int     `json:"samples"`
	InsufficientHistory bool    `json:"insufficient_history"`
}

type QualityIndicators struct {
	CustomerExperience   Level `json:"customer_experience"`
	ComplianceRisk       Level `json:"compliance_risk"`
	EscalationRisk       Level `json:"escalation_risk"`
	ResolutionLikelihood Level `json:"resolution_likelihood"`
	// ExternalScore is a 0-100 quality score from an external analyzer;
	// zero when none was supplied.
	ExternalScore int      `json:"external_score,omitempty"`
	Flags         []string `json:"flags,omitempty"`
}

type CoachingInsight struct {
	Category       Category `json:"category"`
	Priority       string   `json:"priority"`
	Observation    string   `json:"observation"`
	Recommendation string   `json:"recommendation"`
}

type BusinessImpact struct {
	RevenueImpact      Level  `json:"revenue_impact"`
	RetentionRisk      Level  `json:"retention_risk"`
	BrandImpact        string `json:"brand_impact"`
	EfficiencyRating   Level  `json:"efficiency_rating"`
	EstimatedCSATDelta int    `json:"estimated_csat_delta"`
}

// PreciseScoring is the weighted performance score of one call.
type PreciseScoring struct {
	CallID            string            `json:"call_id,omitempty"`
	Categories        []CategoryScore   `json:"categories"`
	OverallScore      int               `json:"overall_score"`
	OverallRating     Rating            `json:"overall_rating"`
	Benchmarks        Benchmarks        `json:"benchmarks"`
	ImprovementAreas  []ImprovementArea `json:"improvement_areas"`
	Strengths         []Strength        `json:"strengths"`
	Trends            Trends            `json:"trends"`
	QualityIndicators QualityIndicators `json:"quality_indicators"`
	CoachingInsights  []CoachingInsight `json:"coaching_insights"`
	BusinessImpact    BusinessImpact    `json:"business_impact"`
}

// Score returns the category score, or false if the category is missing.
func (p PreciseScoring) Score(c Category) (int, bool) {
	for _, cs := range p.Categories {
		if cs.Category == c {
			return cs.Score, true
		}
	}
	return 0, false
}
