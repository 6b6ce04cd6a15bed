package actionable

import (
	"fmt"

	"github.com/rikki233752/blink-script-ai-sub000/internal/aggregator"
)

// Card thresholds.
const (
	highEscalationRate = 0.25
	lowAverageScore    = 70
	lowConversionRate  = 0.20
	// minCalls is the sample size below which no pattern is reported.
	minCalls = 3
)

type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// Generate picks the single most pressing card for a roll-up.
func Generate(ins aggregator.Insight) ActionCard {
	if ins.TotalCalls < minCalls {
		return ActionCard{
			Insight: fmt.Sprintf("Only %d analyzed calls", ins.TotalCalls),
			Action:  "Monitor and collect more data",
			Impact:  "Low immediate intervention",
		}
	}
	if ins.EscalationRate >= highEscalationRate {
		return ActionCard{
			Insight: fmt.Sprintf("High escalation rate (%.0f%% of calls)", ins.EscalationRate*100),
			Action:  "Review escalated calls with team leads; coach de-escalation and first-call resolution",
			Impact:  "Fewer supervisor transfers and repeat calls",
		}
	}
	if ins.AverageScore < lowAverageScore {
		return ActionCard{
			Insight: fmt.Sprintf("Average agent score is %.1f", ins.AverageScore),
			Action:  "Schedule targeted coaching on the lowest scoring categories",
			Impact:  "Higher call quality and compliance",
		}
	}
	if ins.ConversionRate < lowConversionRate {
		card := ActionCard{
			Insight: fmt.Sprintf("Low conversion rate (%.0f%%)", ins.ConversionRate*100),
			Action:  "Refresh closing scripts and objection handling",
			Impact:  "More enrollments per call",
		}
		if len(ins.TopRiskFactors) > 0 {
			card.Insight += "; most common risk: " + ins.TopRiskFactors[0].Risk
		}
		return card
	}
	return ActionCard{
		Insight: "No strong problem pattern detected",
		Action:  "Monitor and collect more data",
		Impact:  "Low immediate intervention",
	}
}
