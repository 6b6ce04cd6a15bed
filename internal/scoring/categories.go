package scoring

import (
	"fmt"

	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

type scorer func(e *Engine, cx *call, base int) (int, []string)

var scorers = map[types.Category]scorer{
	types.CategoryCommunication:        (*Engine).communication,
	types.CategoryEmpathy:              (*Engine).empathy,
	types.CategoryProblemResolution:    (*Engine).problemResolution,
	types.CategoryProfessionalism:      (*Engine).professionalism,
	types.CategoryProductKnowledge:     (*Engine).productKnowledge,
	types.CategoryCallControl:          (*Engine).callControl,
	types.CategoryCompliance:           (*Engine).compliance,
	types.CategoryCustomerSatisfaction: (*Engine).customerSatisfaction,
	types.CategoryBusinessAcumen:       (*Engine).businessAcumen,
	types.CategoryAdaptability:         (*Engine).adaptability,
}

// tally accumulates point deltas and the evidence behind them.
type tally struct {
	score    int
	evidence []string
}

// add applies points per bounded hit of list in text, capped in absolute
// value by limit.
func (t *tally) add(e *Engine, list lexicon.ListName, text string, points, limit int, label string) int {
	n := e.count(list, text)
	if n == 0 {
		return 0
	}
	delta := min(limit, max(-limit, n*points))
	t.score += delta
	t.evidence = append(t.evidence, fmt.Sprintf("%s x%d (%+d)", label, n, delta))
	return n
}

func (e *Engine) count(list lexicon.ListName, text string) int {
	n := 0
	for _, p := range e.dict.Phrases(list) {
		if lexicon.ContainsBounded(text, p) {
			n++
		}
	}
	return n
}

func (t *tally) adjust(delta int, why string) {
	t.score += delta
	t.evidence = append(t.evidence, fmt.Sprintf("%s (%+d)", why, delta))
}

func (e *Engine) communication(cx *call, base int) (int, []string) {
	t := tally{score: base}
	t.add(e, lexicon.CommClarity, cx.agent, 5, 15, "clear explanations")
	t.add(e, lexicon.CommActiveListening, cx.agent, 4, 12, "active listening")
	t.add(e, lexicon.CommConfirmation, cx.agent, 3, 9, "understanding checks")
	if n := lexicon.Occurrences(e.dict, lexicon.CommFillers, " "+cx.agent+" "); n > 0 {
		t.adjust(-min(15, n*2), fmt.Sprintf("%d filler words", n))
	}
	if cx.kpi.AgentTalkRatio > 0.8 && cx.kpi.CustomerTurns > 0 {
		t.adjust(-5, "agent dominated the conversation")
	}
	return t.score, t.evidence
}

func (e *Engine) empathy(cx *call, base int) (int, []string) {
	t := tally{score: base}
	apologies := t.add(e, lexicon.EmpathyApology, cx.agent, 8, 16, "apologies")
	acks := t.add(e, lexicon.EmpathyAcknowledge, cx.agent, 5, 15, "acknowledged feelings")
	t.add(e, lexicon.EmpathyDismissive, cx.agent, -15, 30, "dismissive language")
	if len(cx.sentiment.Frustration) > 0 && apologies+acks == 0 {
		t.adjust(-10, "customer frustration left unacknowledged")
	}
	return t.score, t.evidence
}

func (e *Engine) problemResolution(cx *call, base int) (int, []string) {
	t := tally{score: base}
	t.add(e, lexicon.ResolutionSolution, cx.agent, 10, 20, "solutions offered")
	t.add(e, lexicon.ResolutionFollowThru, cx.agent, 6, 12, "follow-through")
	t.add(e, lexicon.ResolutionVerification, cx.agent, 5, 10, "resolution verified")
	t.add(e, lexicon.ResolutionUnresolved, cx.agent, -12, 24, "unable to resolve")
	return t.score, t.evidence
}

func (e *Engine) professionalism(cx *call, base int) (int, []string) {
	t := tally{score: base}
	t.add(e, lexicon.ProfGreeting, cx.agent, 5, 5, "proper greeting")
	t.add(e, lexicon.ProfCourtesy, cx.agent, 2, 10, "courtesy")
	t.add(e, lexicon.ProfClosing, cx.agent, 5, 5, "proper closing")
	t.add(e, lexicon.ProfUnprofessional, cx.agent, -15, 30, "unprofessional language")
	return t.score, t.evidence
}

func (e *Engine) productKnowledge(cx *call, base int) (int, []string) {
	t := tally{score: base}
	t.add(e, lexicon.KnowledgeTerms, cx.agent, 3, 20, "product terms")
	t.add(e, lexicon.KnowledgeExplanation, cx.agent, 6, 12, "explained details")
	t.add(e, lexicon.KnowledgeUncertainty, cx.agent, -8, 16, "uncertain answers")
	return t.score, t.evidence
}

func (e *Engine) callControl(cx *call, base int) (int, []string) {
	t := tally{score: base}
	t.add(e, lexicon.ControlAgenda, cx.agent, 5, 10, "set the agenda")
	t.add(e, lexicon.ControlRedirect, cx.agent, 6, 12, "kept the call on track")
	if n := e.count(lexicon.ControlHold, cx.agent); n > 1 {
		t.adjust(-4*(n-1), "repeated holds")
	}
	if cx.kpi.InterruptionCount > 0 {
		t.adjust(-min(10, 2*cx.kpi.InterruptionCount), "interruptions")
	}
	if cx.kpi.SilenceSeconds > 30 {
		t.adjust(-5, "long silences")
	}
	return t.score, t.evidence
}

func (e *Engine) compliance(cx *call, base int) (int, []string) {
	t := tally{score: base}
	t.add(e, lexicon.ComplianceDisclosure, cx.agent, 5, 10, "required disclosures")
	t.add(e, lexicon.ComplianceVerification, cx.agent, 5, 10, "identity verification")
	t.add(e, lexicon.ComplianceConsent, cx.agent, 5, 5, "consent obtained")
	t.add(e, lexicon.ComplianceViolation, cx.agent, -15, 45, "non-compliant claims")
	return t.score, t.evidence
}

func (e *Engine) customerSatisfaction(cx *call, base int) (int, []string) {
	t := tally{score: base}
	if s := cx.sentiment.CustomerScore; s != 0 {
		t.adjust(int(s*20), fmt.Sprintf("customer sentiment %.2f", s))
	}
	if n := len(cx.sentiment.Delight); n > 0 {
		t.adjust(min(15, 5*n), "customer delight")
	}
	if n := len(cx.sentiment.Frustration); n > 0 {
		t.adjust(-min(20, 5*n), "customer frustration")
	}
	return t.score, t.evidence
}

func (e *Engine) businessAcumen(cx *call, base int) (int, []string) {
	t := tally{score: base}
	t.add(e, lexicon.BusinessUpsell, cx.agent, 6, 12, "upsell opportunities")
	t.add(e, lexicon.BusinessNeedsDiscovery, cx.agent, 5, 15, "needs discovery")
	if n := cx.signals.Effect.ClosingAttempts; n > 0 {
		t.adjust(min(10, 2*n), "closing attempts")
	}
	if cx.signals.Effect.Objections > 0 {
		t.adjust(cx.signals.Effect.ObjectionHandling-5, "objection handling")
	}
	return t.score, t.evidence
}

func (e *Engine) adaptability(cx *call, base int) (int, []string) {
	t := tally{score: base}
	t.add(e, lexicon.AdaptRephrase, cx.agent, 6, 12, "rephrased for the customer")
	t.add(e, lexicon.AdaptAlternatives, cx.agent, 5, 10, "offered alternatives")
	t.add(e, lexicon.AdaptPersonalize, cx.agent, 4, 12, "personalized")
	return t.score, t.evidence
}
