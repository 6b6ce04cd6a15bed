package speaker

import (
	"strings"

	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// Identification weights.
const (
	strongPhraseWeight = 3
	firstLineBonus     = 5
	longUtteranceWords = 15
	// closeMargin is the score gap under which the opening line decides.
	closeMargin = 5
)

// Line is one utterance of a not yet attributed speaker.
type Line struct {
	Label string
	Text  string
}

// Identification is the result of Identify.
type Identification struct {
	Agent  string                   `json:"agent"`
	Scores map[string]int           `json:"scores"`
	Roles  map[string]types.Speaker `json:"roles"`
	// DecidedByOpening is set when the close-score fallback picked the agent.
	DecidedByOpening bool `json:"decided_by_opening"`
}

// Identify scores every label in lines and picks the agent. All other labels
// become customers. Lines are expected in call order.
func (p *Parser) Identify(lines []Line) Identification {
	id := Identification{Scores: map[string]int{}, Roles: map[string]types.Speaker{}}
	if len(lines) == 0 {
		return id
	}

	var order []string
	seen := map[string]bool{}
	for _, l := range lines {
		if !seen[l.Label] {
			seen[l.Label] = true
			order = append(order, l.Label)
			if p.isAgentIntro(l.Text) {
				id.Scores[l.Label] += firstLineBonus
			}
		}
		id.Scores[l.Label] += p.lineScore(l.Text)
	}

	best, second := order[0], ""
	for _, label := range order[1:] {
		switch {
		case id.Scores[label] > id.Scores[best]:
			second, best = best, label
		case second == "" || id.Scores[label] > id.Scores[second]:
			second = label
		}
	}

	if len(order) == 1 {
		// A lone speaker is only the agent if it sounds like one.
		if id.Scores[best] >= 0 {
			id.Agent = best
		}
	} else {
		id.Agent = best
		if id.Scores[best]-id.Scores[second] < closeMargin && p.isAgentIntro(lines[0].Text) {
			if lines[0].Label != best {
				id.DecidedByOpening = true
			}
			id.Agent = lines[0].Label
		}
	}

	for _, label := range order {
		if label == id.Agent {
			id.Roles[label] = types.SpeakerAgent
		} else {
			id.Roles[label] = types.SpeakerCustomer
		}
	}
	return id
}

func (p *Parser) lineScore(text string) int {
	t := lexicon.Normalize(text)
	score := strongPhraseWeight * lexicon.Count(p.dict, lexicon.AgentStrongPhrases, t)
	score -= strongPhraseWeight * p.boundedCount(lexicon.CustomerStrongPhrases, t)
	score += p.questionCount(t)
	score += lexicon.Count(p.dict, lexicon.EmpathyPhrases, t)
	score += lexicon.Count(p.dict, lexicon.ControlPhrases, t)
	if len(lexicon.Words(t)) > longUtteranceWords {
		score++
	}
	return score
}

func (p *Parser) boundedCount(name lexicon.ListName, text string) int {
	n := 0
	for _, ph := range p.dict.Phrases(name) {
		if lexicon.ContainsBounded(text, ph) {
			n++
		}
	}
	return n
}

// questionCount counts sentences that end in a question mark and open with
// a question phrase.
func (p *Parser) questionCount(text string) int {
	n := 0
	for _, s := range splitSentences(text) {
		if !strings.HasSuffix(s, "?") {
			continue
		}
		for _, q := range p.dict.Phrases(lexicon.QuestionOpeners) {
			if strings.HasPrefix(s, q) {
				n++
				break
			}
		}
	}
	return n
}

func (p *Parser) isAgentIntro(text string) bool {
	return lexicon.ContainsAny(p.dict, lexicon.AgentIntroPhrases, lexicon.Normalize(text))
}
