// Package extractor holds the keyword and regex scanners that turn
// transcript text into signals. Every scanner returns an empty result, never
// an error, when nothing matches.
package extractor

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

const maxEligibilityStatements = 2

var (
	dollarRe = regexp.MustCompile(`\$[\d,]+(\.\d{2})?`)
	phoneRe  = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	emailRe  = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	wordRe   = regexp.MustCompile(`[A-Za-z][A-Za-z'\-]*`)
	sentRe   = regexp.MustCompile(`[.!?]+(?:\s+|$)|\n+`)
)

// Extractor runs the scanners against one dictionary.
type Extractor struct {
	dict lexicon.Dictionary
}

func New(d lexicon.Dictionary) *Extractor {
	if d == nil {
		d = lexicon.English
	}
	return &Extractor{dict: d}
}

// Default uses the English dictionary.
var Default = New(nil)

// Sentences splits text after terminal punctuation followed by whitespace,
// and on newlines, so "$25.00" stays in one piece.
func Sentences(text string) []string {
	var out []string
	last := 0
	for _, loc := range sentRe.FindAllStringIndex(text, -1) {
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

// DollarAmounts returns every dollar amount in text, in order.
func DollarAmounts(text string) []float64 {
	var out []float64
	for _, m := range dollarRe.FindAllString(text, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimPrefix(m, "$"), ",", ""), 64)
		if err == nil {
			out = append(out, v)
		}
	}
	return out
}

// EligibilityStatements returns up to two sentences that pair an
// eligibility word with a dollar amount or a program keyword.
func (e *Extractor) EligibilityStatements(text string) []string {
	out := []string{}
	for _, s := range Sentences(text) {
		n := lexicon.Normalize(s)
		if !lexicon.ContainsAny(e.dict, lexicon.EligibilityTerms, n) {
			continue
		}
		if dollarRe.MatchString(s) || e.containsWord(lexicon.ProgramTerms, n) {
			out = append(out, s)
			if len(out) == maxEligibilityStatements {
				break
			}
		}
	}
	return out
}

// KeyFacts contributes at most one aggregated fact per category: amounts,
// phone numbers, emails, names and time references.
func (e *Extractor) KeyFacts(text string) []types.Fact {
	out := []types.Fact{}
	if m := unique(dollarRe.FindAllString(text, -1)); len(m) > 0 {
		out = append(out, types.Fact{Kind: "amount", Text: "Amounts mentioned: " + strings.Join(m, ", "), Confidence: 90})
	}
	if m := unique(phoneRe.FindAllString(text, -1)); len(m) > 0 {
		out = append(out, types.Fact{Kind: "phone", Text: "Phone numbers: " + strings.Join(m, ", "), Confidence: 85})
	}
	if m := unique(emailRe.FindAllString(text, -1)); len(m) > 0 {
		out = append(out, types.Fact{Kind: "email", Text: "Email addresses: " + strings.Join(m, ", "), Confidence: 85})
	}
	if names := e.Names(text); len(names) > 0 {
		out = append(out, types.Fact{Kind: "name", Text: "Names mentioned: " + strings.Join(names, ", "), Confidence: 60})
	}
	if refs := e.TimeReferences(text); len(refs) > 0 {
		out = append(out, types.Fact{Kind: "time", Text: "Time references: " + strings.Join(refs, ", "), Confidence: 70})
	}
	return out
}

// Names returns capitalized words longer than two letters that occur at
// least twice, most frequent first.
func (e *Extractor) Names(text string) []string {
	stop := map[string]bool{}
	for _, w := range e.dict.Phrases(lexicon.NameStopwords) {
		stop[w] = true
	}
	counts := map[string]int{}
	var order []string
	for _, w := range wordRe.FindAllString(text, -1) {
		if len(w) <= 2 || !unicode.IsUpper([]rune(w)[0]) || stop[strings.ToLower(w)] {
			continue
		}
		if strings.ToUpper(w) == w {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	out := []string{}
	for _, w := range order {
		if counts[w] >= 2 {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return counts[out[i]] > counts[out[j]] })
	return out
}

// TimeReferences returns the fixed time words present in text, in list
// order.
func (e *Extractor) TimeReferences(text string) []string {
	n := lexicon.Normalize(text)
	out := []string{}
	for _, p := range e.dict.Phrases(lexicon.TimeReferences) {
		if lexicon.ContainsBounded(n, p) {
			out = append(out, p)
		}
	}
	return append(out, e.Months(text)...)
}

// Months returns the month names present in text.
func (e *Extractor) Months(text string) []string {
	n := lexicon.Normalize(text)
	var out []string
	for _, p := range e.dict.Phrases(lexicon.MonthNames) {
		// "may" is too common a verb to count on its own.
		if p == "may" {
			continue
		}
		if lexicon.ContainsBounded(n, p) {
			out = append(out, p)
		}
	}
	return out
}

// topicLists maps topic lists to display names, in tie-break order.
var topicLists = []struct {
	list lexicon.ListName
	name string
}{
	{lexicon.TopicMedicare, "Medicare coverage"},
	{lexicon.TopicEnrollment, "Enrollment"},
	{lexicon.TopicBenefits, "Plan benefits"},
	{lexicon.TopicPricing, "Pricing and cost"},
	{lexicon.TopicBilling, "Billing and payments"},
	{lexicon.TopicTechnical, "Technical issue"},
	{lexicon.TopicEligibility, "Eligibility"},
	{lexicon.TopicPersonal, "Personal information verification"},
	{lexicon.TopicScheduling, "Scheduling"},
	{lexicon.TopicCancel, "Cancellation"},
	{lexicon.TopicPrescript, "Prescriptions"},
	{lexicon.TopicProviders, "Doctors and providers"},
}

// Topic is a detected conversation topic.
type Topic struct {
	Name string `json:"name"`
	Hits int    `json:"hits"`
}

// Topics ranks topics by keyword hits, most discussed first.
func (e *Extractor) Topics(text string) []Topic {
	n := lexicon.Normalize(text)
	out := []Topic{}
	for _, tl := range topicLists {
		hits := 0
		for _, p := range e.dict.Phrases(tl.list) {
			if lexicon.ContainsBounded(n, p) {
				hits++
			}
		}
		if hits > 0 {
			out = append(out, Topic{Name: tl.name, Hits: hits})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Hits > out[j].Hits })
	return out
}

func (e *Extractor) containsWord(name lexicon.ListName, text string) bool {
	for _, p := range e.dict.Phrases(name) {
		if lexicon.ContainsBounded(text, p) {
			return true
		}
	}
	return false
}

func unique(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
