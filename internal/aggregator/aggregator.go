package aggregator

import (
	"math"
	"sort"

	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// topRiskCount caps TopRiskFactors.
const topRiskCount = 5

type RiskCount struct {
	Risk  string `json:"risk"`
	Count int    `json:"count"`
}

type Insight struct {
	TotalCalls        int                       `json:"total_calls"`
	IntentCounts      map[types.Intent]int      `json:"intent_counts"`
	DispositionCounts map[types.Disposition]int `json:"disposition_counts"`
	RatingCounts      map[types.Rating]int      `json:"rating_counts"`
	StageCounts       map[string]int            `json:"stage_counts"`
	Conversions       int                       `json:"conversions"`
	ConversionRate    float64                   `json:"conversion_rate"`
	EscalationRate    float64                   `json:"escalation_rate"`
	AverageScore      float64                   `json:"average_score"`
	TopRiskFactors    []RiskCount               `json:"top_risk_factors"`
}

// Aggregate rolls up analyzed calls. Rates are fractions in [0,1].
func Aggregate(analyses []types.CallAnalysis) Insight {
	ins := Insight{
		TotalCalls:        len(analyses),
		IntentCounts:      map[types.Intent]int{},
		DispositionCounts: map[types.Disposition]int{},
		RatingCounts:      map[types.Rating]int{},
		StageCounts:       map[string]int{},
		TopRiskFactors:    []RiskCount{},
	}
	if len(analyses) == 0 {
		return ins
	}

	risks := map[string]int{}
	scoreSum, escalated := 0, 0
	for _, a := range analyses {
		if a.Intent.Primary != "" {
			ins.IntentCounts[a.Intent.Primary]++
		}
		if d := a.Disposition.Disposition; d != "" {
			ins.DispositionCounts[d]++
			if d == types.DispositionEscalated {
				escalated++
			}
		}
		if a.Scoring.OverallRating != "" {
			ins.RatingCounts[a.Scoring.OverallRating]++
		}
		ins.StageCounts[a.Conversion.Stage.String()]++
		if a.Conversion.ConversionAchieved {
			ins.Conversions++
		}
		scoreSum += a.Scoring.OverallScore
		for _, r := range a.Conversion.RiskFactors {
			risks[r]++
		}
	}

	n := float64(len(analyses))
	ins.ConversionRate = round2(float64(ins.Conversions) / n)
	ins.EscalationRate = round2(float64(escalated) / n)
	ins.AverageScore = math.Round(float64(scoreSum)/n*10) / 10

	for r, c := range risks {
		ins.TopRiskFactors = append(ins.TopRiskFactors, RiskCount{Risk: r, Count: c})
	}
	sort.Slice(ins.TopRiskFactors, func(i, j int) bool {
		a, b := ins.TopRiskFactors[i], ins.TopRiskFactors[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Risk < b.Risk
	})
	if len(ins.TopRiskFactors) > topRiskCount {
		ins.TopRiskFactors = ins.TopRiskFactors[:topRiskCount]
	}
	return ins
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
