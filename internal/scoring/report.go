package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// Benchmark constants.
const (
	TeamAverage         = 78
	CompanyAverage      = 75
	IndustryAverage     = 72
	TopPerformerAverage = 92
	GoalTarget          = 85
	goalBand            = 5

	improvementThreshold = 75
	strengthThreshold    = 80
	improvementLift      = 25
	trendThreshold       = 3.0
	maxCoachingInsights  = 3
)

func benchmarks(overall int) types.Benchmarks {
	b := types.Benchmarks{
		TeamAverage:         TeamAverage,
		CompanyAverage:      CompanyAverage,
		IndustryAverage:     IndustryAverage,
		TopPerformerAverage: TopPerformerAverage,
		VsTeam:              overall - TeamAverage,
		VsIndustry:          overall - IndustryAverage,
		GoalTarget:          GoalTarget,
		GoalVariance:        overall - GoalTarget,
	}
	switch {
	case overall >= TopPerformerAverage:
		b.Percentile = "top 10%"
	case overall >= GoalTarget:
		b.Percentile = "top 25%"
	case overall >= TeamAverage:
		b.Percentile = "top 50%"
	case overall >= IndustryAverage:
		b.Percentile = "bottom 50%"
	default:
		b.Percentile = "bottom 25%"
	}
	switch {
	case b.GoalVariance > goalBand:
		b.GoalStatus = "EXCEEDS"
	case b.GoalVariance >= -goalBand:
		b.GoalStatus = "MEETS"
	default:
		b.GoalStatus = "BELOW"
	}
	return b
}

var categoryActions = map[types.Category][]string{
	types.CategoryCommunication:        {"Summarize key points back to the customer", "Replace filler words with short pauses"},
	types.CategoryEmpathy:              {"Acknowledge the customer's feelings before solving", "Use apology statements when something went wrong"},
	types.CategoryProblemResolution:    {"Confirm the issue is resolved before closing", "Give a reference number for every open item"},
	types.CategoryProfessionalism:      {"Open with the standard greeting", "Close by thanking the customer for their time"},
	types.CategoryProductKnowledge:     {"Review plan benefit summaries", "Practice explaining coverage in plain terms"},
	types.CategoryCallControl:          {"State the purpose of the call up front", "Limit holds and explain each one"},
	types.CategoryCompliance:           {"Read the recording disclosure on every call", "Avoid guarantee language"},
	types.CategoryCustomerSatisfaction: {"Check in on the customer's satisfaction during the call", "End on a clear next step"},
	types.CategoryBusinessAcumen:       {"Ask needs-discovery questions early", "Present relevant upgrade options"},
	types.CategoryAdaptability:         {"Rephrase when the customer seems confused", "Offer an alternative when the first option does not fit"},
}

var strengthDescriptions = map[types.Category]string{
	types.CategoryCommunication:        "Clear, well-structured communication",
	types.CategoryEmpathy:              "Strong rapport and empathy with the customer",
	types.CategoryProblemResolution:    "Resolves issues effectively",
	types.CategoryProfessionalism:      "Consistently professional and courteous",
	types.CategoryProductKnowledge:     "Confident command of product details",
	types.CategoryCallControl:          "Keeps the call focused and efficient",
	types.CategoryCompliance:           "Follows compliance requirements",
	types.CategoryCustomerSatisfaction: "Leaves the customer satisfied",
	types.CategoryBusinessAcumen:       "Spots and pursues business opportunities",
	types.CategoryAdaptability:         "Adapts well to the customer's needs",
}

func improvementAreas(cats []types.CategoryScore) []types.ImprovementArea {
	out := []types.ImprovementArea{}
	for _, c := range cats {
		if c.Score >= improvementThreshold {
			continue
		}
		a := types.ImprovementArea{
			Category: c.Category,
			Current:  c.Score,
			Target:   min(100, c.Score+improvementLift),
			Actions:  categoryActions[c.Category],
		}
		switch {
		case c.Score < 50:
			a.Priority, a.Timeframe = "CRITICAL", "1-2 weeks"
		case c.Score < 60:
			a.Priority, a.Timeframe = "HIGH", "2-4 weeks"
		case c.Score < 70:
			a.Priority, a.Timeframe = "MEDIUM", "1-2 months"
		default:
			a.Priority, a.Timeframe = "LOW", "2-3 months"
		}
		out = append(out, a)
	}
	return out
}

func strengths(cats []types.CategoryScore) []types.Strength {
	out := []types.Strength{}
	for _, c := range cats {
		if c.Score >= strengthThreshold {
			out = append(out, types.Strength{Category: c.Category, Score: c.Score, Description: strengthDescriptions[c.Category]})
		}
	}
	return out
}

// trends compares against caller-supplied history only.
func trends(overall int, history []int) types.Trends {
	if len(history) == 0 {
		return types.Trends{Direction: "stable", InsufficientHistory: true}
	}
	sum := 0
	for _, h := range history {
		sum += h
	}
	avg := float64(sum) / float64(len(history))
	t := types.Trends{
		Direction:         "stable",
		Change:            math.Round((float64(overall)-avg)*10) / 10,
		HistoricalAverage: math.Round(avg*10) / 10,
		Samples:           len(history),
	}
	switch {
	case t.Change >= trendThreshold:
		t.Direction = "improving"
	case t.Change <= -trendThreshold:
		t.Direction = "declining"
	}
	return t
}

func band(score int) types.Level {
	switch {
	case score >= 85:
		return types.LevelVeryHigh
	case score >= 70:
		return types.LevelHigh
	case score >= 55:
		return types.LevelMedium
	}
	return types.LevelLow
}

// inverse maps a good score to a low risk.
func inverse(score int) types.Level {
	switch {
	case score >= 80:
		return types.LevelLow
	case score >= 65:
		return types.LevelMedium
	case score >= 50:
		return types.LevelHigh
	}
	return types.LevelVeryHigh
}

func scoreOf(p *types.PreciseScoring, c types.Category) int {
	s, _ := p.Score(c)
	return s
}

func quality(p *types.PreciseScoring, cx *call) types.QualityIndicators {
	q := types.QualityIndicators{
		CustomerExperience:   band(scoreOf(p, types.CategoryCustomerSatisfaction)),
		ComplianceRisk:       inverse(scoreOf(p, types.CategoryCompliance)),
		EscalationRisk:       inverse((scoreOf(p, types.CategoryEmpathy) + scoreOf(p, types.CategoryCustomerSatisfaction)) / 2),
		ResolutionLikelihood: band(scoreOf(p, types.CategoryProblemResolution)),
	}
	if len(cx.sentiment.Frustration) > 0 {
		q.Flags = append(q.Flags, "customer frustration detected")
		if q.EscalationRisk == types.LevelLow {
			q.EscalationRisk = types.LevelMedium
		}
	}
	if scoreOf(p, types.CategoryCompliance) < 60 {
		q.Flags = append(q.Flags, "compliance review required")
	}
	if cx.signals.Counts.StrongNegative > 0 {
		q.Flags = append(q.Flags, "customer refused or asked not to be contacted")
	}
	return q
}

// externalQualityGap is the distance from the overall score at which an
// external quality score is flagged.
const externalQualityGap = 20

// ApplyExternalQuality records an external 0-100 quality score and flags it
// when it disagrees with the computed overall score.
func ApplyExternalQuality(p *types.PreciseScoring, score int) {
	score = clamp(score, 0, 100)
	p.QualityIndicators.ExternalScore = score
	if d := score - p.OverallScore; d >= externalQualityGap || -d >= externalQualityGap {
		p.QualityIndicators.Flags = append(p.QualityIndicators.Flags,
			fmt.Sprintf("external quality score %d differs from overall score %d", score, p.OverallScore))
	}
}

var coachingText = map[types.Category][2]string{
	types.CategoryCommunication:        {"Explanations were hard to follow", "Use short sentences and confirm understanding"},
	types.CategoryEmpathy:              {"Customer concerns were not acknowledged", "Name the customer's concern before moving on"},
	types.CategoryProblemResolution:    {"The customer's issue was left open", "Offer a concrete solution and verify it worked"},
	types.CategoryProfessionalism:      {"Greeting, courtesy or closing was missing", "Follow the call opening and closing script"},
	types.CategoryProductKnowledge:     {"Product questions got uncertain answers", "Review the plan materials before the next shift"},
	types.CategoryCallControl:          {"The call drifted or had long holds", "Set an agenda and steer back to it"},
	types.CategoryCompliance:           {"Required disclosures or verification were missing", "Complete every compliance step on each call"},
	types.CategoryCustomerSatisfaction: {"The customer left unsatisfied", "Check in on satisfaction before closing"},
	types.CategoryBusinessAcumen:       {"Sales opportunities were missed", "Ask discovery questions and present options"},
	types.CategoryAdaptability:         {"The agent stuck to one approach", "Try another explanation when the first does not land"},
}

// coaching picks up to three of the weakest categories below the
// improvement threshold, lowest first.
func coaching(cats []types.CategoryScore) []types.CoachingInsight {
	weak := make([]types.CategoryScore, 0, len(cats))
	for _, c := range cats {
		if c.Score < improvementThreshold {
			weak = append(weak, c)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].Score < weak[j].Score })
	out := []types.CoachingInsight{}
	for _, c := range weak {
		if len(out) == maxCoachingInsights {
			break
		}
		priority := "MEDIUM"
		if c.Score < 60 {
			priority = "HIGH"
		}
		txt := coachingText[c.Category]
		out = append(out, types.CoachingInsight{
			Category:       c.Category,
			Priority:       priority,
			Observation:    txt[0],
			Recommendation: txt[1],
		})
	}
	return out
}

func impact(p *types.PreciseScoring, cx *call) types.BusinessImpact {
	sat := scoreOf(p, types.CategoryCustomerSatisfaction)
	brand := (scoreOf(p, types.CategoryProfessionalism) + scoreOf(p, types.CategoryEmpathy)) / 2
	bi := types.BusinessImpact{
		RevenueImpact:      band(scoreOf(p, types.CategoryBusinessAcumen)),
		RetentionRisk:      inverse(sat),
		EfficiencyRating:   band(scoreOf(p, types.CategoryCallControl)),
		EstimatedCSATDelta: int(math.Round(float64(sat-70) / 5)),
		BrandImpact:        "neutral",
	}
	switch {
	case brand >= 80:
		bi.BrandImpact = "positive"
	case brand < 60:
		bi.BrandImpact = "negative"
	}
	if cx.signals.Counts.StrongPositive > 0 && bi.RevenueImpact == types.LevelLow {
		bi.RevenueImpact = types.LevelMedium
	}
	return bi
}
