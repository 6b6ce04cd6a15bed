package extractor

import (
	"math"
	"strings"

	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// customerTiers are the conversion-score contributions of each phrase tier.
// Agent tiers carry no weight and feed agent effectiveness instead.
var customerTiers = []struct {
	list   lexicon.ListName
	tier   types.SignalTier
	weight int
}{
	{lexicon.ConversionStrongPositive, types.TierStrongPositive, 10},
	{lexicon.ConversionModeratePositive, types.TierModeratePositive, 5},
	{lexicon.ConversionWeakPositive, types.TierWeakPositive, 2},
	{lexicon.ConversionNegative, types.TierNegative, -5},
	{lexicon.ConversionStrongNegative, types.TierStrongNegative, -10},
}

var agentTiers = []struct {
	list lexicon.ListName
	tier types.SignalTier
}{
	{lexicon.AgentClosingAttempts, types.TierClosingAttempt},
	{lexicon.AgentValueProposition, types.TierValueProposition},
	{lexicon.AgentUrgencyCreation, types.TierUrgencyCreation},
}

// defaultObjectionScore applies when the customer raised no objections.
const defaultObjectionScore = 5

// SignalReport is the output of ConversionSignals.
type SignalReport struct {
	Score    int                      `json:"score"`
	Counts   types.TierCounts         `json:"counts"`
	Positive []types.ConversionSignal `json:"positive"`
	Negative []types.ConversionSignal `json:"negative"`
	Agent    []types.ConversionSignal `json:"agent"`
	Effect   types.AgentEffectiveness `json:"agent_effectiveness"`
}

// ConversionSignals classifies every line. Customer and unattributed lines
// are matched against the weighted tiers, agent lines against the agent
// tiers. A phrase that is part of a longer phrase matched on the same line
// is not counted again.
func (e *Extractor) ConversionSignals(utts []types.Utterance) SignalReport {
	r := SignalReport{
		Positive: []types.ConversionSignal{},
		Negative: []types.ConversionSignal{},
		Agent:    []types.ConversionSignal{},
	}
	var closing, value, urgency int
	objectionLines := map[int]bool{}

	for i, u := range utts {
		text := lexicon.Normalize(u.Text)
		if u.Speaker == types.SpeakerAgent {
			for _, at := range agentTiers {
				for _, p := range e.boundedMatches(at.list, text) {
					r.Agent = append(r.Agent, types.ConversionSignal{
						Line: i, Speaker: u.Speaker, Phrase: p, Tier: at.tier, Text: u.Text,
					})
					switch at.tier {
					case types.TierClosingAttempt:
						closing++
					case types.TierValueProposition:
						value++
					case types.TierUrgencyCreation:
						urgency++
					}
				}
			}
			continue
		}

		var hits []types.ConversionSignal
		for _, ct := range customerTiers {
			for _, p := range e.boundedMatches(ct.list, text) {
				hits = append(hits, types.ConversionSignal{
					Line: i, Speaker: u.Speaker, Phrase: p, Tier: ct.tier, Weight: ct.weight, Text: u.Text,
				})
			}
		}
		for _, s := range dropContained(hits) {
			r.Score += s.Weight
			switch s.Tier {
			case types.TierStrongPositive:
				r.Counts.StrongPositive++
			case types.TierModeratePositive:
				r.Counts.ModeratePositive++
			case types.TierWeakPositive:
				r.Counts.WeakPositive++
			case types.TierNegative:
				r.Counts.Negative++
			case types.TierStrongNegative:
				r.Counts.StrongNegative++
			}
			if s.Weight > 0 {
				r.Positive = append(r.Positive, s)
			} else {
				r.Negative = append(r.Negative, s)
				objectionLines[i] = true
			}
		}
	}

	responses := 0
	for i := range objectionLines {
		if i+1 < len(utts) && utts[i+1].Speaker == types.SpeakerAgent {
			responses++
		}
	}
	r.Effect = types.AgentEffectiveness{
		ClosingAttempts:   capTen(closing),
		ValueProposition:  capTen(int(math.Round(float64(value) / 2))),
		UrgencyCreation:   capTen(int(math.Round(float64(urgency) / 1.5))),
		ObjectionHandling: defaultObjectionScore,
		Objections:        len(objectionLines),
		ObjectionReplies:  responses,
	}
	if n := len(objectionLines); n > 0 {
		r.Effect.ObjectionHandling = int(math.Round(float64(responses) / float64(n) * 10))
	}
	return r
}

func (e *Extractor) boundedMatches(name lexicon.ListName, text string) []string {
	var out []string
	for _, p := range e.dict.Phrases(name) {
		if lexicon.ContainsBounded(text, p) {
			out = append(out, p)
		}
	}
	return out
}

// dropContained removes hits whose phrase is a substring of another hit's
// phrase, so "maybe" does not double count inside "maybe later".
func dropContained(hits []types.ConversionSignal) []types.ConversionSignal {
	var out []types.ConversionSignal
	for i, h := range hits {
		contained := false
		for j, o := range hits {
			if i != j && len(o.Phrase) > len(h.Phrase) && strings.Contains(o.Phrase, h.Phrase) {
				contained = true
				break
			}
		}
		if !contained {
			out = append(out, h)
		}
	}
	return out
}

func capTen(n int) int {
	if n > 10 {
		return 10
	}
	return n
}
