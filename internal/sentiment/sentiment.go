// Package sentiment scores transcript polarity from word lists.
package sentiment

import (
	"math"

	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/speaker"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

const (
	// negationWindow is how many preceding tokens a negator reaches.
	negationWindow   = 3
	intensifierBoost = 1.5
	phraseWeight     = 2.0
	// labelThreshold separates positive and negative from neutral.
	labelThreshold = 0.1
)

// Analyzer holds token sets compiled from a dictionary.
type Analyzer struct {
	dict      lexicon.Dictionary
	positive  map[string]bool
	negative  map[string]bool
	negators  map[string]bool
	intensify map[string]bool
}

func New(d lexicon.Dictionary) *Analyzer {
	if d == nil {
		d = lexicon.English
	}
	return &Analyzer{
		dict:      d,
		positive:  set(d.Phrases(lexicon.SentimentPositive)),
		negative:  set(d.Phrases(lexicon.SentimentNegative)),
		negators:  set(d.Phrases(lexicon.SentimentNegators)),
		intensify: set(d.Phrases(lexicon.Intensifiers)),
	}
}

func set(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

var defaultAnalyzer = New(nil)

// Analyze parses speakers itself; use AnalyzeUtterances when they are
// already known.
func Analyze(transcript string) types.SentimentAnalysis {
	return defaultAnalyzer.Analyze(transcript)
}

func AnalyzeUtterances(utts []types.Utterance) types.SentimentAnalysis {
	return defaultAnalyzer.AnalyzeUtterances(utts)
}

func (a *Analyzer) Analyze(transcript string) types.SentimentAnalysis {
	return a.AnalyzeUtterances(speaker.New(a.dict).Parse(transcript, nil))
}

// tally accumulates weighted hits.
type tally struct {
	pos, neg float64
	hits     int
}

func (t *tally) add(o tally) {
	t.pos += o.pos
	t.neg += o.neg
	t.hits += o.hits
}

func (t tally) score() float64 {
	total := t.pos + t.neg
	if total == 0 {
		return 0
	}
	return round2((t.pos - t.neg) / total)
}

func (a *Analyzer) AnalyzeUtterances(utts []types.Utterance) types.SentimentAnalysis {
	out := types.SentimentAnalysis{Overall: types.SentimentNeutral, Confidence: 50}
	var all, agent, customer tally
	seenPos, seenNeg := map[string]bool{}, map[string]bool{}

	for _, u := range utts {
		text := lexicon.Normalize(u.Text)
		t, pos, neg := a.words(text)
		for _, w := range pos {
			if !seenPos[w] {
				seenPos[w] = true
				out.Positive = append(out.Positive, w)
			}
		}
		for _, w := range neg {
			if !seenNeg[w] {
				seenNeg[w] = true
				out.Negative = append(out.Negative, w)
			}
		}
		for _, p := range lexicon.Matches(a.dict, lexicon.Frustration, text) {
			t.neg += phraseWeight
			t.hits++
			out.Frustration = append(out.Frustration, p)
		}
		for _, p := range lexicon.Matches(a.dict, lexicon.Delight, text) {
			t.pos += phraseWeight
			t.hits++
			out.Delight = append(out.Delight, p)
		}

		all.add(t)
		switch u.Speaker {
		case types.SpeakerAgent:
			agent.add(t)
		case types.SpeakerCustomer:
			customer.add(t)
		}
		if t.hits > 0 {
			s := t.score()
			out.Segments = append(out.Segments, types.SentimentSegment{
				Text:      u.Text,
				Sentiment: Label(s),
				Score:     s,
				Start:     u.Start,
				End:       u.End,
			})
		}
	}

	out.Score = all.score()
	out.Overall = Label(out.Score)
	out.AgentScore = agent.score()
	out.CustomerScore = customer.score()
	if all.hits > 0 {
		out.Confidence = int(math.Min(95, float64(50+5*all.hits)))
	}
	return out
}

// words scores single-word hits with negation and intensifiers.
func (a *Analyzer) words(text string) (t tally, pos, neg []string) {
	tokens := lexicon.Words(text)
	for i, tok := range tokens {
		isPos, isNeg := a.positive[tok], a.negative[tok]
		if !isPos && !isNeg {
			continue
		}
		w := 1.0
		if i > 0 && a.intensify[tokens[i-1]] {
			w = intensifierBoost
		}
		if a.negated(tokens, i) {
			isPos, isNeg = isNeg, isPos
		}
		t.hits++
		if isPos {
			t.pos += w
			pos = append(pos, tok)
		} else {
			t.neg += w
			neg = append(neg, tok)
		}
	}
	return t, pos, neg
}

func (a *Analyzer) negated(tokens []string, i int) bool {
	from := i - negationWindow
	if from < 0 {
		from = 0
	}
	for _, t := range tokens[from:i] {
		if a.negators[t] {
			return true
		}
	}
	return false
}

// Label buckets a -1..1 score.
func Label(score float64) types.SentimentLabel {
	switch {
	case score > labelThreshold:
		return types.SentimentPositive
	case score < -labelThreshold:
		return types.SentimentNegative
	}
	return types.SentimentNeutral
}

// Average is the mean score of segments, 0 when there are none.
func Average(segs []types.SentimentSegment) float64 {
	if len(segs) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range segs {
		sum += s.Score
	}
	return sum / float64(len(segs))
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
