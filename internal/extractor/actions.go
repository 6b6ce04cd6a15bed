package extractor

import (
	"strings"

	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// Fixed risk factor strings.
const (
	RiskPrice        = "Price sensitivity detected"
	RiskTimeline     = "Timeline concerns expressed"
	RiskCompetitor   = "Competitor or existing coverage mentioned"
	RiskDecision     = "Customer may not be the decision maker"
	RiskSentiment    = "Negative customer sentiment"
	RiskManySignals  = "Multiple objections raised"
	manySignalsCount = 3
)

// ActionItems returns commitments each side made, one per sentence.
func (e *Extractor) ActionItems(utts []types.Utterance) []types.ActionItem {
	out := []types.ActionItem{}
	seen := map[string]bool{}
	for _, u := range utts {
		list := lexicon.CustomerCommitments
		if u.Speaker == types.SpeakerAgent {
			list = lexicon.AgentCommitments
		}
		for _, s := range Sentences(u.Text) {
			n := lexicon.Normalize(s)
			if !lexicon.ContainsAny(e.dict, list, n) || seen[n] {
				continue
			}
			seen[n] = true
			item := types.ActionItem{
				Owner:    u.Speaker,
				Action:   s,
				Priority: "medium",
			}
			if refs := e.TimeReferences(s); len(refs) > 0 {
				item.Due = refs[0]
			}
			if lexicon.ContainsAny(e.dict, lexicon.UrgencyHigh, n) {
				item.Priority = "high"
			}
			out = append(out, item)
		}
	}
	return out
}

// RiskFactors runs independent checks over customer speech; the checks are
// not mutually exclusive.
func (e *Extractor) RiskFactors(customerText string, customerSentiment float64, negativeSignals int) []string {
	n := lexicon.Normalize(customerText)
	out := []string{}
	checks := []struct {
		list lexicon.ListName
		risk string
	}{
		{lexicon.RiskPriceSensitivity, RiskPrice},
		{lexicon.RiskTimelineConcern, RiskTimeline},
		{lexicon.RiskCompetitor, RiskCompetitor},
		{lexicon.RiskNonDecisionMaker, RiskDecision},
	}
	for _, c := range checks {
		if lexicon.ContainsAny(e.dict, c.list, n) {
			out = append(out, c.risk)
		}
	}
	if customerSentiment < 0 {
		out = append(out, RiskSentiment)
	}
	if negativeSignals >= manySignalsCount {
		out = append(out, RiskManySignals)
	}
	return out
}

// TalkMetrics derives talk ratios from word counts and, when timings were
// measured, silence and interruptions.
func TalkMetrics(utts []types.Utterance) types.KPIBlock {
	var k types.KPIBlock
	var agentWords, customerWords int
	var silence float64
	for i, u := range utts {
		words := len(strings.Fields(u.Text))
		switch u.Speaker {
		case types.SpeakerAgent:
			agentWords += words
			k.AgentTurns++
		case types.SpeakerCustomer:
			customerWords += words
			k.CustomerTurns++
		}
		if i == 0 || u.Timing != types.TimingMeasured || utts[i-1].Timing != types.TimingMeasured {
			continue
		}
		prev := utts[i-1]
		gap := u.Start - prev.End
		switch {
		case gap > maxSilenceGap:
			silence += gap
		case gap < 0 && u.Speaker != prev.Speaker:
			k.InterruptionCount++
		}
	}
	if total := agentWords + customerWords; total > 0 {
		k.AgentTalkRatio = round2(float64(agentWords) / float64(total))
		k.CustomerTalkRatio = round2(float64(customerWords) / float64(total))
	}
	k.SilenceSeconds = int(silence)
	return k
}

// maxSilenceGap is the pause, in seconds, counted as dead air.
const maxSilenceGap = 2.0

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
