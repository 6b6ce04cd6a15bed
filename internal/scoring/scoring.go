// Package scoring grades agent performance on a call across ten weighted
// categories and derives ratings, benchmarks and coaching from the result.
package scoring

import (
	"math"

	"github.com/rikki233752/blink-script-ai-sub000/internal/extractor"
	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/sentiment"
	"github.com/rikki233752/blink-script-ai-sub000/internal/speaker"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// weightBasisPoints sum to 10000 so the weights sum to exactly 1.0.
var weightBasisPoints = map[types.Category]int{
	types.CategoryCommunication:        1800,
	types.CategoryEmpathy:              1200,
	types.CategoryProblemResolution:    1500,
	types.CategoryProfessionalism:      1200,
	types.CategoryProductKnowledge:     1000,
	types.CategoryCallControl:          800,
	types.CategoryCompliance:           800,
	types.CategoryCustomerSatisfaction: 1000,
	types.CategoryBusinessAcumen:       400,
	types.CategoryAdaptability:         300,
}

// Weight returns the fixed weight of c.
func Weight(c types.Category) float64 {
	return float64(weightBasisPoints[c]) / 10000
}

// Engine scores calls against one dictionary.
type Engine struct {
	dict      lexicon.Dictionary
	parser    *speaker.Parser
	sentiment *sentiment.Analyzer
	ext       *extractor.Extractor
}

func New(d lexicon.Dictionary) *Engine {
	if d == nil {
		d = lexicon.English
	}
	return &Engine{
		dict:      d,
		parser:    speaker.New(d),
		sentiment: sentiment.New(d),
		ext:       extractor.New(d),
	}
}

var defaultEngine = New(nil)

// Calculate uses the English dictionary.
func Calculate(transcript string, baseline types.CallData) types.PreciseScoring {
	return defaultEngine.Calculate(transcript, baseline)
}

// call is everything the category scorers read.
type call struct {
	agent     string // normalized agent speech
	customer  string // normalized customer speech
	kpi       types.KPIBlock
	sentiment types.SentimentAnalysis
	signals   extractor.SignalReport
	turns     int
}

// Calculate never fails. Baseline.Utterances, when set, are used instead of
// parsing transcript.
func (e *Engine) Calculate(transcript string, baseline types.CallData) types.PreciseScoring {
	utts := baseline.Utterances
	if len(utts) == 0 {
		utts = e.parser.Parse(transcript, nil)
	}
	cx := call{
		agent:     lexicon.Normalize(speaker.Text(utts, types.SpeakerAgent)),
		customer:  lexicon.Normalize(speaker.Text(utts, types.SpeakerCustomer)),
		kpi:       extractor.TalkMetrics(utts),
		sentiment: e.sentiment.AnalyzeUtterances(utts),
		signals:   e.ext.ConversionSignals(utts),
		turns:     len(utts),
	}

	res := types.PreciseScoring{CallID: baseline.CallID}
	total := 0.0
	for _, c := range types.Categories {
		base := baselineFor(c, baseline.SubScores)
		score, evidence := scorers[c](e, &cx, base)
		score = clamp(score, 0, 100)
		w := Weight(c)
		cs := types.CategoryScore{
			Category:      c,
			Score:         score,
			Weight:        w,
			WeightedScore: float64(score*weightBasisPoints[c]) / 10000,
			Baseline:      base,
			Evidence:      evidence,
		}
		total += cs.WeightedScore
		res.Categories = append(res.Categories, cs)
	}
	res.OverallScore = int(math.Round(total))
	res.OverallRating = RatingFor(res.OverallScore)
	res.Benchmarks = benchmarks(res.OverallScore)
	res.ImprovementAreas = improvementAreas(res.Categories)
	res.Strengths = strengths(res.Categories)
	res.Trends = trends(res.OverallScore, baseline.History)
	res.QualityIndicators = quality(&res, &cx)
	res.CoachingInsights = coaching(res.Categories)
	res.BusinessImpact = impact(&res, &cx)
	return res
}

// constantBaselines apply when no external sub-score is supplied.
var constantBaselines = map[types.Category]int{
	types.CategoryCommunication:        70,
	types.CategoryEmpathy:              65,
	types.CategoryProblemResolution:    60,
	types.CategoryProfessionalism:      75,
	types.CategoryProductKnowledge:     65,
	types.CategoryCallControl:          70,
	types.CategoryCompliance:           80,
	types.CategoryCustomerSatisfaction: 70,
	types.CategoryBusinessAcumen:       60,
	types.CategoryAdaptability:         65,
}

func baselineFor(c types.Category, sub map[types.Category]float64) int {
	if v, ok := sub[c]; ok {
		return clamp(int(math.Round(v*10)), 0, 100)
	}
	return constantBaselines[c]
}

// RatingFor bands an overall score.
func RatingFor(score int) types.Rating {
	switch {
	case score >= 90:
		return types.RatingExcellent
	case score >= 80:
		return types.RatingGood
	case score >= 70:
		return types.RatingSatisfactory
	case score >= 60:
		return types.RatingNeedsImprovement
	}
	return types.RatingPoor
}

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}
