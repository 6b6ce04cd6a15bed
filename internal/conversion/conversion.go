// Package conversion reads how close a call came to a sale: funnel stage,
// customer commitment, deal value, urgency and the risks standing in the way.
package conversion

import (
	"strings"

	"github.com/rikki233752/blink-script-ai-sub000/internal/extractor"
	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/speaker"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

const (
	baseConfidence  = 50
	scoreMultiplier = 2
	riskPenalty     = 5
	// achievedConfidence is the confidence that, together with very high
	// commitment, counts as a conversion without reaching purchase.
	achievedConfidence = 75
)

var stageBonus = map[types.ConversionStage]int{
	types.StageAwareness:     0,
	types.StageInterest:      10,
	types.StageConsideration: 20,
	types.StageIntent:        30,
	types.StageEvaluation:    40,
	types.StagePurchase:      50,
}

var commitmentBonus = map[types.CommitmentLevel]int{
	types.CommitmentLow:      -10,
	types.CommitmentMedium:   0,
	types.CommitmentHigh:     10,
	types.CommitmentVeryHigh: 20,
}

// Analyzer scores conversions against one dictionary.
type Analyzer struct {
	dict   lexicon.Dictionary
	ext    *extractor.Extractor
	parser *speaker.Parser
}

func New(d lexicon.Dictionary) *Analyzer {
	if d == nil {
		d = lexicon.English
	}
	return &Analyzer{dict: d, ext: extractor.New(d), parser: speaker.New(d)}
}

var defaultAnalyzer = New(nil)

// Analyze parses speakers with the shared speaker parser and analyzes the
// result.
func Analyze(transcript string, intent types.IntentAnalysis, s types.SentimentAnalysis) types.EnhancedBusinessConversion {
	return defaultAnalyzer.Analyze(transcript, intent, s)
}

// AnalyzeUtterances is Analyze for already attributed utterances.
func AnalyzeUtterances(utts []types.Utterance, intent types.IntentAnalysis, s types.SentimentAnalysis) types.EnhancedBusinessConversion {
	return defaultAnalyzer.AnalyzeUtterances(utts, intent, s)
}

// EstimateDealValue uses the English dictionary.
func EstimateDealValue(transcript string, stage types.ConversionStage, c types.CommitmentLevel) types.DealValue {
	return defaultAnalyzer.EstimateDealValue(transcript, stage, c)
}

func (a *Analyzer) Analyze(transcript string, intent types.IntentAnalysis, s types.SentimentAnalysis) types.EnhancedBusinessConversion {
	return a.AnalyzeUtterances(a.parser.Parse(transcript, nil), intent, s)
}

func (a *Analyzer) AnalyzeUtterances(utts []types.Utterance, intent types.IntentAnalysis, s types.SentimentAnalysis) types.EnhancedBusinessConversion {
	full := speaker.Transcript(utts)
	report := a.ext.ConversionSignals(utts)

	res := types.EnhancedBusinessConversion{
		Score:           report.Score,
		Counts:          report.Counts,
		PositiveSignals: report.Positive,
		NegativeSignals: report.Negative,
		AgentSignals:    report.Agent,
		Agent:           report.Effect,
	}
	res.Stage = Stage(report.Score, report.Counts)
	res.Commitment = Commitment(report.Score)
	res.EstimatedValue = a.EstimateDealValue(full, res.Stage, res.Commitment)

	// Urgency and risk come from the customer's own words; agent greetings
	// such as "how can I help you today" say nothing about the customer.
	customer := speaker.Text(utts, types.SpeakerCustomer)
	if customer == "" {
		customer = speaker.Text(utts, types.SpeakerUnknown)
	}
	res.Urgency = a.Urgency(customer, res.Stage, res.Commitment)
	res.RiskFactors = a.ext.RiskFactors(customer, customerSentiment(s), len(report.Negative))

	res.Confidence = Confidence(res.Score, res.Stage, res.Commitment, len(res.RiskFactors))
	res.ConversionAchieved = res.Stage == types.StagePurchase ||
		(res.Confidence >= achievedConfidence && res.Commitment == types.CommitmentVeryHigh)
	res.NextBestAction = nextBestAction(res, intent)
	return res
}

// ApplyOutcome replaces the heuristic verdict with an externally decided
// one and refreshes the next best action to match. Stage and commitment keep
// their heuristic values.
func ApplyOutcome(c types.EnhancedBusinessConversion, o types.ConversionOutcome, intent types.IntentAnalysis) types.EnhancedBusinessConversion {
	c.ConversionAchieved = o.Achieved
	c.Confidence = min(100, max(0, o.Confidence))
	c.NextBestAction = nextBestAction(c, intent)
	return c
}

// customerSentiment prefers the customer's own score and falls back to the
// call overall when the customer had no sentiment hits.
func customerSentiment(s types.SentimentAnalysis) float64 {
	if s.CustomerScore != 0 {
		return s.CustomerScore
	}
	return s.Score
}

// Stage maps a score and tier counts to a funnel stage. Rules are checked
// from purchase down; the first that holds wins.
func Stage(score int, c types.TierCounts) types.ConversionStage {
	switch {
	case c.StrongPositive >= 2 && score > 15:
		return types.StagePurchase
	case (c.StrongPositive >= 1 || c.ModeratePositive >= 3) && score > 10:
		return types.StageEvaluation
	case (c.ModeratePositive >= 2 || c.StrongPositive >= 1) && score > 5:
		return types.StageIntent
	case (c.WeakPositive >= 2 || c.ModeratePositive >= 1) && score > 0:
		return types.StageConsideration
	case c.WeakPositive >= 1 && score >= -5:
		return types.StageInterest
	}
	return types.StageAwareness
}

func Commitment(score int) types.CommitmentLevel {
	switch {
	case score >= 20:
		return types.CommitmentVeryHigh
	case score >= 10:
		return types.CommitmentHigh
	case score >= 0:
		return types.CommitmentMedium
	}
	return types.CommitmentLow
}

// Confidence is clamped to [0,100].
func Confidence(score int, stage types.ConversionStage, c types.CommitmentLevel, risks int) int {
	v := baseConfidence + score*scoreMultiplier + stageBonus[stage] + commitmentBonus[c] - risks*riskPenalty
	return min(100, max(0, v))
}

// EstimateDealValue takes the highest quoted dollar amount. Without one the
// category is inferred from stage and commitment and Value stays zero.
func (a *Analyzer) EstimateDealValue(transcript string, stage types.ConversionStage, c types.CommitmentLevel) types.DealValue {
	amounts := extractor.DollarAmounts(transcript)
	if len(amounts) == 0 {
		return types.DealValue{Category: inferredValue(stage, c)}
	}
	high := amounts[0]
	for _, v := range amounts[1:] {
		high = max(high, v)
	}
	return types.DealValue{Value: high, Category: valueCategory(high), Quoted: true}
}

func valueCategory(v float64) types.Level {
	switch {
	case v < 100:
		return types.LevelLow
	case v < 1000:
		return types.LevelMedium
	case v < 10000:
		return types.LevelHigh
	}
	return types.LevelVeryHigh
}

func inferredValue(stage types.ConversionStage, c types.CommitmentLevel) types.Level {
	switch {
	case stage == types.StagePurchase || c == types.CommitmentVeryHigh:
		return types.LevelHigh
	case stage >= types.StageIntent || c == types.CommitmentHigh:
		return types.LevelMedium
	}
	return types.LevelLow
}

// Urgency checks high-urgency wording before medium-urgency wording in the
// given customer text and otherwise derives a level from how far the call
// progressed.
func (a *Analyzer) Urgency(transcript string, stage types.ConversionStage, c types.CommitmentLevel) types.UrgencyAssessment {
	text := lexicon.Normalize(transcript)
	if hits := bounded(a.dict, lexicon.UrgencyHigh, text); len(hits) > 0 {
		return types.UrgencyAssessment{Level: types.LevelVeryHigh, FollowUp: "within 24 hours", Phrases: hits}
	}
	if hits := bounded(a.dict, lexicon.UrgencyMedium, text); len(hits) > 0 {
		return types.UrgencyAssessment{Level: types.LevelHigh, FollowUp: "within 2-3 days", Phrases: hits}
	}
	switch {
	case stage >= types.StageEvaluation || c >= types.CommitmentHigh:
		return types.UrgencyAssessment{Level: types.LevelMedium, FollowUp: "within 1 week"}
	case stage >= types.StageInterest:
		return types.UrgencyAssessment{Level: types.LevelLow, FollowUp: "within 2 weeks"}
	}
	return types.UrgencyAssessment{Level: types.LevelLow, FollowUp: "no follow-up scheduled"}
}

func bounded(d lexicon.Dictionary, name lexicon.ListName, text string) []string {
	var out []string
	for _, p := range d.Phrases(name) {
		if lexicon.ContainsBounded(text, p) {
			out = append(out, p)
		}
	}
	return out
}

func hasRisk(risks []string, r string) bool {
	for _, x := range risks {
		if x == r {
			return true
		}
	}
	return false
}

func nextBestAction(c types.EnhancedBusinessConversion, intent types.IntentAnalysis) string {
	switch {
	case c.ConversionAchieved:
		return "Complete enrollment paperwork and send confirmation"
	case c.Counts.StrongNegative > 0:
		return "Honor the customer's request and close the opportunity"
	case hasRisk(c.RiskFactors, extractor.RiskDecision):
		return "Schedule a follow-up that includes the decision maker"
	case hasRisk(c.RiskFactors, extractor.RiskPrice):
		return "Address pricing concerns with lower-cost options"
	case hasRisk(c.RiskFactors, extractor.RiskCompetitor):
		return "Compare benefits against the customer's current coverage"
	}
	switch c.Stage {
	case types.StageEvaluation, types.StageIntent:
		return "Attempt a close with a clear enrollment offer"
	case types.StageConsideration:
		return "Send plan details and schedule a follow-up " + c.Urgency.FollowUp
	case types.StageInterest:
		return "Nurture interest with benefit highlights"
	}
	if intent.Primary != "" && intent.Primary != types.IntentSales {
		return "Resolve the " + strings.ToLower(string(intent.Primary)) + " request before any sales follow-up"
	}
	return "Qualify the lead before further outreach"
}
