package aggregator

import (
	"testing"

	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

func call(intent types.Intent, disp types.Disposition, score int, converted bool, risks ...string) types.CallAnalysis {
	return types.CallAnalysis{
		Intent:      types.IntentAnalysis{Primary: intent},
		Disposition: types.DispositionAnalysis{Disposition: disp},
		Scoring:     types.PreciseScoring{OverallScore: score, OverallRating: types.RatingGood},
		Conversion:  types.EnhancedBusinessConversion{ConversionAchieved: converted, RiskFactors: risks},
	}
}

func TestAggregate(t *testing.T) {
	ins := Aggregate([]types.CallAnalysis{
		call(types.IntentSales, types.DispositionConverted, 80, true, "Price sensitivity detected"),
		call(types.IntentSales, types.DispositionFollowUp, 70, false, "Price sensitivity detected", "Timeline concerns expressed"),
		call(types.IntentComplaint, types.DispositionEscalated, 61, false),
	})
	if ins.TotalCalls != 3 || ins.IntentCounts[types.IntentSales] != 2 || ins.DispositionCounts[types.DispositionEscalated] != 1 {
		t.Errorf("counts = %+v", ins)
	}
	if ins.Conversions != 1 || ins.ConversionRate != 0.33 || ins.EscalationRate != 0.33 {
		t.Errorf("rates = %+v", ins)
	}
	if ins.AverageScore != 70.3 {
		t.Errorf("average = %v", ins.AverageScore)
	}
	if len(ins.TopRiskFactors) != 2 || ins.TopRiskFactors[0].Risk != "Price sensitivity detected" || ins.TopRiskFactors[0].Count != 2 {
		t.Errorf("risks = %+v", ins.TopRiskFactors)
	}
	if ins.StageCounts["awareness"] != 3 {
		t.Errorf("stages = %+v", ins.StageCounts)
	}
}

func TestAggregate_Empty(t *testing.T) {
	ins := Aggregate(nil)
	if ins.TotalCalls != 0 || ins.IntentCounts == nil || ins.TopRiskFactors == nil {
		t.Errorf("empty = %+v", ins)
	}
}
