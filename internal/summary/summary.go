// Package summary assembles a call summary from extracted transcript
// fragments and fixed sentence templates. Nothing is generated free-form.
package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/rikki233752/blink-script-ai-sub000/internal/extractor"
	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/speaker"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// Output caps.
const (
	MaxTopics    = 5
	MaxTakeaways = 6
	MaxFacts     = 10
	MaxFollowUps = 4
)

// nearDuplicate is the normalized edit distance under which two strings
// are treated as the same point.
const nearDuplicate = 0.2

// Input is everything the generator draws from. Only Transcript or
// Utterances is required; nil analyses are left out of the summary.
type Input struct {
	Transcript  string
	Utterances  []types.Utterance
	Intent      types.IntentAnalysis
	Disposition types.DispositionAnalysis
	Sentiment   types.SentimentAnalysis
	Conversion  *types.EnhancedBusinessConversion
	Scoring     *types.PreciseScoring
	// Facts are extra facts from an external analyzer.
	Facts []types.Fact
	// ProviderSummary is a transcription provider's own summary, quoted as is.
	ProviderSummary string
}

// Generator fills templates using one dictionary.
type Generator struct {
	dict   lexicon.Dictionary
	ext    *extractor.Extractor
	parser *speaker.Parser
}

func New(d lexicon.Dictionary) *Generator {
	if d == nil {
		d = lexicon.English
	}
	return &Generator{dict: d, ext: extractor.New(d), parser: speaker.New(d)}
}

var defaultGenerator = New(nil)

// Generate uses the English dictionary.
func Generate(in Input) types.CallSummary {
	return defaultGenerator.Generate(in)
}

func (g *Generator) Generate(in Input) types.CallSummary {
	utts := in.Utterances
	if len(utts) == 0 {
		utts = g.parser.Parse(in.Transcript, nil)
	}
	text := in.Transcript
	if strings.TrimSpace(text) == "" {
		text = speaker.Transcript(utts)
	}

	s := types.CallSummary{
		Intent:      in.Intent,
		Disposition: in.Disposition,
		Sentiment:   in.Sentiment,
		Conversion:  in.Conversion,
		Scoring:     in.Scoring,
		ActionItems: g.ext.ActionItems(utts),
	}
	eligibility := g.ext.EligibilityStatements(text)

	s.TopicsCovered = []string{}
	for _, t := range g.ext.Topics(text) {
		if len(s.TopicsCovered) == MaxTopics {
			break
		}
		s.TopicsCovered = append(s.TopicsCovered, t.Name)
	}

	s.ShortSummary = shortSummary(in)
	s.ExecutiveSummary = g.executive(in, text, eligibility)
	s.KeyTakeaways = takeaways(in, eligibility)
	s.KeyFacts = facts(g.ext.KeyFacts(text), eligibility, in.Facts)
	s.CallConclusion = conclusion(in)
	s.FollowUpItems = followUps(in, s.ActionItems)

	switch {
	case in.Conversion != nil:
		s.RiskFactors = in.Conversion.RiskFactors
	default:
		s.RiskFactors = g.ext.RiskFactors(speaker.Text(utts, types.SpeakerCustomer), in.Sentiment.CustomerScore, 0)
	}
	return s
}

func intentText(in types.IntentAnalysis) string {
	if in.Primary == "" {
		return "General"
	}
	p := strings.ToLower(string(in.Primary))
	return strings.ToUpper(p[:1]) + p[1:]
}

func shortSummary(in Input) string {
	b := intentText(in.Intent) + " call"
	if in.Intent.Subcategory != "" {
		b += " (" + strings.ReplaceAll(in.Intent.Subcategory, "_", " ") + ")"
	}
	if in.Disposition.Disposition != "" {
		b += " ended as " + string(in.Disposition.Disposition)
	}
	if in.Sentiment.Overall != "" {
		b += " with " + string(in.Sentiment.Overall) + " customer sentiment"
	}
	return b + "."
}

func (g *Generator) executive(in Input, text string, eligibility []string) string {
	n := lexicon.Normalize(text)
	var parts []string
	if in.ProviderSummary != "" {
		parts = append(parts, strings.TrimSpace(in.ProviderSummary))
	}
	parts = append(parts, fmt.Sprintf("The customer called about a %s matter.", strings.ToLower(intentText(in.Intent))))
	if strings.Contains(n, "enrollment") && lexicon.ContainsAny(g.dict, lexicon.EnrollmentStatus, n) {
		parts = append(parts, "The customer's existing enrollment status was discussed.")
	}
	if strings.Contains(n, "grocery") && strings.Contains(n, "card") {
		parts = append(parts, "A grocery allowance card benefit was explained.")
	}
	for _, e := range eligibility {
		parts = append(parts, "Eligibility: "+e)
	}
	if months := g.ext.Months(text); len(months) > 0 {
		parts = append(parts, fmt.Sprintf("Timeline references to %s were noted.", strings.Join(titled(months), ", ")))
	}
	if c := in.Conversion; c != nil {
		parts = append(parts, fmt.Sprintf("The call reached the %s stage with %d%% conversion confidence.", c.Stage, c.Confidence))
	}
	if sc := in.Scoring; sc != nil {
		parts = append(parts, fmt.Sprintf("Agent performance scored %d (%s).", sc.OverallScore, sc.OverallRating))
	}
	return strings.Join(parts, " ")
}

func titled(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return out
}

func takeaways(in Input, eligibility []string) []types.Takeaway {
	var out []types.Takeaway
	if d := in.Disposition.Disposition; d != "" {
		impact := 60
		switch d {
		case types.DispositionConverted, types.DispositionEscalated:
			impact = 90
		case types.DispositionNoResolution, types.DispositionAbandoned:
			impact = 75
		}
		out = append(out, types.Takeaway{Text: "Call outcome: " + string(d), Impact: impact})
	}
	if c := in.Conversion; c != nil {
		if c.ConversionAchieved {
			out = append(out, types.Takeaway{Text: "Customer committed to enroll", Impact: 95})
		}
		if c.EstimatedValue.Quoted {
			out = append(out, types.Takeaway{Text: fmt.Sprintf("Deal value quoted at $%.2f", c.EstimatedValue.Value), Impact: 70})
		}
		for _, r := range c.RiskFactors {
			out = append(out, types.Takeaway{Text: r, Impact: 65})
		}
	}
	for _, e := range eligibility {
		out = append(out, types.Takeaway{Text: e, Impact: 70})
	}
	if in.Sentiment.Overall == types.SentimentNegative {
		out = append(out, types.Takeaway{Text: "Customer sentiment was negative", Impact: 80})
	}
	if len(in.Sentiment.Frustration) > 0 {
		out = append(out, types.Takeaway{Text: "Customer expressed frustration: " + strings.Join(in.Sentiment.Frustration, ", "), Impact: 85})
	}
	if sc := in.Scoring; sc != nil {
		for _, st := range sc.Strengths {
			out = append(out, types.Takeaway{Text: st.Description, Impact: 50})
		}
		for _, a := range sc.ImprovementAreas {
			if a.Priority == "CRITICAL" {
				out = append(out, types.Takeaway{Text: "Critical coaching need in " + strings.ReplaceAll(string(a.Category), "_", " "), Impact: 80})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Impact > out[j].Impact })
	return capSlice(dedupe(out, func(t types.Takeaway) string { return t.Text }), MaxTakeaways)
}

func facts(extracted []types.Fact, eligibility []string, external []types.Fact) []types.Fact {
	out := append([]types.Fact{}, extracted...)
	for _, e := range eligibility {
		out = append(out, types.Fact{Kind: "eligibility", Text: e, Confidence: 80})
	}
	out = append(out, external...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return capSlice(dedupe(out, func(f types.Fact) string { return f.Text }), MaxFacts)
}

var conclusions = map[types.Disposition]string{
	types.DispositionResolved:     "The customer's request was resolved during the call.",
	types.DispositionEscalated:    "The call was escalated for further review.",
	types.DispositionFollowUp:     "The call ended with a follow-up pending.",
	types.DispositionTransferred:  "The customer was transferred to another department.",
	types.DispositionAbandoned:    "The call ended before the conversation was completed.",
	types.DispositionCallback:     "A callback was arranged with the customer.",
	types.DispositionConverted:    "The customer agreed to move forward and the sale was converted.",
	types.DispositionNoResolution: "The call ended without a resolution.",
}

func conclusion(in Input) string {
	c, ok := conclusions[in.Disposition.Disposition]
	if !ok {
		return "The outcome of the call could not be determined."
	}
	if d := in.Disposition.TransferDepartment; d != "" && in.Disposition.Disposition == types.DispositionTransferred {
		c = fmt.Sprintf("The customer was transferred to %s.", d)
	}
	return c
}

func followUps(in Input, actions []types.ActionItem) []types.FollowUpItem {
	var out []types.FollowUpItem
	for _, a := range actions {
		conf := 70
		if a.Priority == "high" {
			conf = 85
		}
		out = append(out, types.FollowUpItem{Action: a.Action, Owner: a.Owner, Timeframe: a.Due, Confidence: conf})
	}
	timeframe := ""
	if in.Conversion != nil {
		timeframe = in.Conversion.Urgency.FollowUp
		if in.Conversion.NextBestAction != "" {
			out = append(out, types.FollowUpItem{Action: in.Conversion.NextBestAction, Owner: types.SpeakerAgent, Timeframe: timeframe, Confidence: 75})
		}
	}
	for _, step := range in.Disposition.NextSteps {
		out = append(out, types.FollowUpItem{Action: step, Owner: types.SpeakerAgent, Timeframe: timeframe, Confidence: 60})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return capSlice(dedupe(out, func(f types.FollowUpItem) string { return f.Action }), MaxFollowUps)
}

// dedupe keeps the first of any items whose keys are near-identical.
func dedupe[T any](items []T, key func(T) string) []T {
	out := make([]T, 0, len(items))
	var kept [][]rune
	for _, it := range items {
		k := []rune(lexicon.Normalize(key(it)))
		dup := false
		for _, o := range kept {
			if similar(k, o) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, k)
			out = append(out, it)
		}
	}
	return out
}

func similar(a, b []rune) bool {
	longest := max(len(a), len(b))
	if longest == 0 {
		return true
	}
	d := levenshtein.DistanceForStrings(a, b, levenshtein.DefaultOptionsWithSub)
	return float64(d)/float64(longest) < nearDuplicate
}

func capSlice[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
