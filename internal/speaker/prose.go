package speaker

import (
	"regexp"
	"strings"

	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

var sentenceEnd = regexp.MustCompile(`[.!?]+(\s+|$)`)

// splitSentences keeps terminal punctuation on each sentence.
func splitSentences(text string) []string {
	var out []string
	last := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[last:loc[1]]); s != "" {
			out = append(out, s)
		}
		last = loc[1]
	}
	if s := strings.TrimSpace(text[last:]); s != "" {
		out = append(out, s)
	}
	return out
}

// estimatedDuration is a display estimate in seconds, not a measurement.
func estimatedDuration(sentence string) float64 {
	d := float64(len(sentence)) / 8
	if d > 20 {
		d = 20
	}
	if d < 3 {
		d = 3
	}
	return d
}

// fromProse attributes each sentence of an unstructured transcript.
func (p *Parser) fromProse(transcript string) []types.Utterance {
	sentences := splitSentences(transcript)
	out := make([]types.Utterance, 0, len(sentences))
	var clock float64
	for i, s := range sentences {
		sp := p.classifySentence(s)
		if sp == types.SpeakerUnknown {
			sp = contextual(i, s, out)
		}
		d := estimatedDuration(s)
		out = append(out, types.Utterance{
			Speaker: sp,
			Text:    s,
			Start:   clock,
			End:     clock + d,
			Timing:  types.TimingEstimated,
		})
		clock += d
	}
	return out
}

// classifySentence returns Unknown when the strong phrases do not decide.
func (p *Parser) classifySentence(s string) types.Speaker {
	t := lexicon.Normalize(s)
	agent := lexicon.Count(p.dict, lexicon.AgentStrongPhrases, t)
	customer := p.boundedCount(lexicon.CustomerStrongPhrases, t)
	switch {
	case agent > customer:
		return types.SpeakerAgent
	case customer > agent:
		return types.SpeakerCustomer
	}
	return types.SpeakerUnknown
}

func contextual(i int, s string, prev []types.Utterance) types.Speaker {
	if i == 0 || len(prev) == 0 {
		return types.SpeakerAgent
	}
	last := prev[len(prev)-1]
	switch {
	case last.Speaker == types.SpeakerAgent && strings.HasSuffix(last.Text, "?"):
		return types.SpeakerCustomer
	case last.Speaker == types.SpeakerCustomer && len(s) > 30:
		return types.SpeakerAgent
	case last.Speaker == types.SpeakerAgent:
		return types.SpeakerCustomer
	}
	return types.SpeakerAgent
}
