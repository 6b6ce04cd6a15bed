// Package speaker splits a transcript into speaker-attributed utterances.
//
// Sources are tried in order: diarized provider utterances, word-level
// speaker tags, explicit line labels, and finally sentence-by-sentence
// inference over plain prose. Inferred attributions then go through a
// validation pass against phrases only one side of a call ever says.
package speaker

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// maxWordGap is the silence, in seconds, that starts a new utterance when
// rebuilding utterances from words.
const maxWordGap = 2.0

// validatedConfidence is stamped on utterances the validation pass corrects.
const validatedConfidence = 0.95

var labelRe = regexp.MustCompile(`(?i)\b(agent|customer|caller|representative|rep|speaker[\s_]*(?:\d+|[a-z]))\s*:`)

// Parser attributes transcript text to speakers using one dictionary.
type Parser struct {
	dict lexicon.Dictionary
}

// New returns a Parser over d; a nil d selects lexicon.English.
func New(d lexicon.Dictionary) *Parser {
	if d == nil {
		d = lexicon.English
	}
	return &Parser{dict: d}
}

var defaultParser = New(nil)

// Parse uses the English dictionary. See Parser.Parse.
func Parse(transcript string, d *types.Diarization) []types.Utterance {
	return defaultParser.Parse(transcript, d)
}

// Parse never fails: an empty transcript without diarization yields an
// empty, non-nil slice.
func (p *Parser) Parse(transcript string, d *types.Diarization) []types.Utterance {
	switch {
	case d.HasUtterances():
		return p.validate(p.fromDiarized(d.Utterances), nil)
	case d.HasSpeakerWords():
		return p.validate(p.fromWords(d.Words), nil)
	}
	if strings.TrimSpace(transcript) == "" {
		return []types.Utterance{}
	}
	if utts, explicit, ok := p.fromLabels(transcript); ok {
		return p.validate(utts, explicit)
	}
	return p.validate(p.fromProse(transcript), nil)
}

func (p *Parser) fromDiarized(in []types.DiarizedUtterance) []types.Utterance {
	lines := make([]Line, 0, len(in))
	out := make([]types.Utterance, 0, len(in))
	for _, du := range in {
		text := strings.TrimSpace(du.Transcript)
		if text == "" {
			continue
		}
		conf := du.Confidence
		u := types.Utterance{
			Speaker:    types.SpeakerUnknown,
			Text:       text,
			Start:      du.Start,
			End:        du.End,
			Timing:     types.TimingMeasured,
			Confidence: &conf,
		}
		if du.Speaker != nil {
			u.Label = speakerID(*du.Speaker)
			lines = append(lines, Line{Label: u.Label, Text: text})
		}
		out = append(out, u)
	}
	applyRoles(out, p.Identify(lines).Roles)
	return out
}

func (p *Parser) fromWords(words []types.Word) []types.Utterance {
	var (
		out   []types.Utterance
		cur   *types.Utterance
		parts []string
		conf  float64
		n     int
	)
	flush := func() {
		if cur == nil || len(parts) == 0 {
			return
		}
		cur.Text = strings.Join(parts, " ")
		c := conf / float64(n)
		cur.Confidence = &c
		out = append(out, *cur)
		cur, parts, conf, n = nil, nil, 0, 0
	}
	for _, w := range words {
		label := ""
		if w.Speaker != nil {
			label = speakerID(*w.Speaker)
		}
		if cur != nil {
			changed := label != "" && label != cur.Label
			if changed || w.Start-cur.End > maxWordGap {
				flush()
			}
		}
		if cur == nil {
			if label == "" && len(out) > 0 {
				label = out[len(out)-1].Label
			}
			cur = &types.Utterance{
				Speaker: types.SpeakerUnknown,
				Label:   label,
				Start:   w.Start,
				Timing:  types.TimingMeasured,
			}
		}
		parts = append(parts, w.Text())
		cur.End = w.End
		conf += w.Confidence
		n++
	}
	flush()

	lines := make([]Line, 0, len(out))
	for _, u := range out {
		if u.Label != "" {
			lines = append(lines, Line{Label: u.Label, Text: u.Text})
		}
	}
	applyRoles(out, p.Identify(lines).Roles)
	if out == nil {
		out = []types.Utterance{}
	}
	return out
}

// fromLabels parses "Label: text" segments. Agent and Customer style labels
// are kept verbatim and reported in explicit; "Speaker X" labels go through
// agent identification. ok is false when the transcript has no labels.
func (p *Parser) fromLabels(transcript string) (out []types.Utterance, explicit []bool, ok bool) {
	locs := labelRe.FindAllStringSubmatchIndex(transcript, -1)
	if len(locs) == 0 {
		return nil, nil, false
	}
	if pre := strings.TrimSpace(transcript[:locs[0][0]]); pre != "" {
		out = append(out, types.Utterance{Speaker: types.SpeakerUnknown, Text: pre})
		explicit = append(explicit, false)
	}

	var lines []Line
	for i, loc := range locs {
		end := len(transcript)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		text := strings.TrimSpace(transcript[loc[1]:end])
		if text == "" {
			continue
		}
		raw := transcript[loc[2]:loc[3]]
		u := types.Utterance{Text: text, Label: raw}
		if role, isRole := roleLabel(raw); isRole {
			u.Speaker = role
			explicit = append(explicit, true)
		} else {
			u.Speaker = types.SpeakerUnknown
			u.Label = normalizeLabel(raw)
			lines = append(lines, Line{Label: u.Label, Text: text})
			explicit = append(explicit, false)
		}
		out = append(out, u)
	}
	if len(lines) > 0 {
		roles := p.Identify(lines).Roles
		for i := range out {
			if !explicit[i] {
				if r, found := roles[out[i].Label]; found {
					out[i].Speaker = r
				}
			}
		}
	}
	if out == nil {
		return []types.Utterance{}, nil, true
	}
	return out, explicit, true
}

func roleLabel(raw string) (types.Speaker, bool) {
	switch strings.ToLower(raw) {
	case "agent", "rep", "representative":
		return types.SpeakerAgent, true
	case "customer", "caller":
		return types.SpeakerCustomer, true
	}
	return "", false
}

func normalizeLabel(raw string) string {
	l := strings.ToLower(raw)
	l = strings.TrimPrefix(l, "speaker")
	l = strings.TrimLeft(l, " \t_")
	return "speaker_" + l
}

func speakerID(n int) string {
	return "speaker_" + strconv.Itoa(n)
}

func applyRoles(utts []types.Utterance, roles map[string]types.Speaker) {
	for i := range utts {
		if r, ok := roles[utts[i].Label]; ok {
			utts[i].Speaker = r
		}
	}
}

// validate force-corrects inferred utterances whose text contains a phrase
// only one side says. Utterances flagged in explicit are left alone.
func (p *Parser) validate(utts []types.Utterance, explicit []bool) []types.Utterance {
	for i := range utts {
		if i < len(explicit) && explicit[i] {
			continue
		}
		text := lexicon.Normalize(utts[i].Text)
		agent := lexicon.ContainsAny(p.dict, lexicon.DefiniteAgentPhrases, text)
		customer := lexicon.ContainsAny(p.dict, lexicon.DefiniteCustomerPhrases, text)
		var want types.Speaker
		switch {
		case agent && !customer:
			want = types.SpeakerAgent
		case customer && !agent:
			want = types.SpeakerCustomer
		default:
			continue
		}
		if utts[i].Speaker != want {
			utts[i].Speaker = want
			c := validatedConfidence
			utts[i].Confidence = &c
		}
	}
	return utts
}

// Text joins the text of every utterance spoken by s.
func Text(utts []types.Utterance, s types.Speaker) string {
	var parts []string
	for _, u := range utts {
		if u.Speaker == s {
			parts = append(parts, u.Text)
		}
	}
	return strings.Join(parts, " ")
}

// Transcript renders utterances back into "Speaker: text" lines.
func Transcript(utts []types.Utterance) string {
	var b strings.Builder
	for i, u := range utts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(u.Speaker))
		b.WriteString(": ")
		b.WriteString(u.Text)
	}
	return b.String()
}
