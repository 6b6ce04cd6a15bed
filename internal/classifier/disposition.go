package classifier

import (
	"fmt"
	"strings"

	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/sentiment"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

const (
	convertedFloor        = 85
	dispositionDefault    = 50
	dispositionFloor      = 60
	dispositionCeiling    = 90
	salesResolvedConf     = 85
	complaintEscalateConf = 80
	negativeResolvedCut   = 10
	boundedBonus          = 0.5
)

var dispositionLists = map[types.Disposition]lexicon.ListName{
	types.DispositionResolved:     lexicon.DispositionResolved,
	types.DispositionEscalated:    lexicon.DispositionEscalated,
	types.DispositionFollowUp:     lexicon.DispositionFollowUp,
	types.DispositionTransferred:  lexicon.DispositionTransferred,
	types.DispositionAbandoned:    lexicon.DispositionAbandoned,
	types.DispositionCallback:     lexicon.DispositionCallback,
	types.DispositionConverted:    lexicon.DispositionConverted,
	types.DispositionNoResolution: lexicon.DispositionNoResolution,
}

var nextSteps = map[types.Disposition][]string{
	types.DispositionResolved: {
		"Send a satisfaction survey",
		"Close the ticket",
	},
	types.DispositionEscalated: {
		"Assign to a supervisor for review",
		"Contact the customer within 24 hours",
		"Document the escalation reason",
	},
	types.DispositionFollowUp: {
		"Schedule the follow-up",
		"Send the promised information",
		"Set a reminder for the agent",
	},
	types.DispositionTransferred: {
		"Confirm the receiving department picked up",
		"Share call notes with the receiving team",
	},
	types.DispositionAbandoned: {
		"Attempt a callback",
		"Check the line quality for this call",
	},
	types.DispositionCallback: {
		"Schedule the callback at the requested time",
		"Prepare the account history before calling",
	},
	types.DispositionConverted: {
		"Send the enrollment confirmation",
		"Schedule a welcome call",
		"Update the CRM with the sale",
	},
	types.DispositionNoResolution: {
		"Review the call for coaching opportunities",
		"Honor any do-not-call request",
	},
}

var escalationReasons = map[types.Intent]string{
	types.IntentSupport:     "Technical issue could not be resolved at first level",
	types.IntentSales:       "Customer requested a supervisor during the sale",
	types.IntentBilling:     "Billing dispute requires supervisor approval",
	types.IntentComplaint:   "Customer complaint requires management attention",
	types.IntentInformation: "Request requires specialist knowledge",
	types.IntentOnboarding:  "Account setup blocked and needs escalation",
	types.IntentRetention:   "Cancellation request needs retention specialist",
}

var defaultDepartments = map[types.Intent]string{
	types.IntentSupport:     "technical support",
	types.IntentSales:       "sales",
	types.IntentBilling:     "billing",
	types.IntentComplaint:   "customer service",
	types.IntentInformation: "customer service",
	types.IntentOnboarding:  "member services",
	types.IntentRetention:   "retention",
}

// DetectDisposition decides how the call ended. A conversion verdict with
// Achieved set forces CONVERTED.
func (c *Classifier) DetectDisposition(transcript string, intent types.IntentAnalysis, segments []types.SentimentSegment, conv *types.ConversionOutcome) types.DispositionAnalysis {
	text := lexicon.Normalize(transcript)
	res := types.DispositionAnalysis{
		Disposition: types.DispositionNoResolution,
		Confidence:  dispositionDefault,
	}

	if conv != nil && conv.Achieved {
		res.Disposition = types.DispositionConverted
		res.Confidence = clamp(max(convertedFloor, conv.Confidence), 0, 100)
		res.Reasoning = "conversion achieved"
		res.Indicators = lexicon.Matches(c.dict, lexicon.DispositionConverted, text)
		c.finish(&res, intent, text)
		return res
	}

	best, bestScore := types.DispositionNoResolution, 0.0
	var bestHits []string
	for _, d := range types.Dispositions {
		score, hits := 0.0, []string(nil)
		for _, p := range c.dict.Phrases(dispositionLists[d]) {
			if !strings.Contains(text, p) {
				continue
			}
			score++
			if lexicon.ContainsBounded(text, p) {
				score += boundedBonus
			}
			hits = append(hits, p)
		}
		if score > bestScore {
			best, bestScore, bestHits = d, score, hits
		}
	}

	var reasons []string
	if bestScore > 0 {
		res.Disposition = best
		res.Confidence = min(dispositionCeiling, max(dispositionFloor, roundInt(bestScore*20+50)))
		res.Indicators = bestHits
		reasons = append(reasons, fmt.Sprintf("indicators for %s: %s", best, strings.Join(bestHits, ", ")))
	} else {
		reasons = append(reasons, "no disposition indicators")
	}

	switch {
	case intent.Primary == types.IntentSales && res.Disposition == types.DispositionResolved:
		res.Disposition, res.Confidence = types.DispositionConverted, salesResolvedConf
		reasons = append(reasons, "resolved sales call counted as converted")
	case intent.Primary == types.IntentComplaint && res.Disposition == types.DispositionNoResolution:
		res.Disposition, res.Confidence = types.DispositionEscalated, complaintEscalateConf
		reasons = append(reasons, "unresolved complaint escalated")
	}

	if len(segments) > 0 && res.Disposition == types.DispositionResolved &&
		sentiment.Average(segments) <= strongNegativeAverage {
		res.Confidence = max(dispositionFloor, res.Confidence-negativeResolvedCut)
		reasons = append(reasons, "negative sentiment lowers confidence")
	}

	res.Reasoning = strings.Join(reasons, "; ")
	c.finish(&res, intent, text)
	return res
}

// OverrideDisposition replaces res with an externally reported disposition
// when label names a known one. A non-positive confidence keeps the default.
func (c *Classifier) OverrideDisposition(res types.DispositionAnalysis, label string, confidence int, transcript string, intent types.IntentAnalysis) types.DispositionAnalysis {
	d := types.Disposition(strings.ToUpper(strings.TrimSpace(label)))
	if !d.Valid() {
		return res
	}
	text := lexicon.Normalize(transcript)
	out := types.DispositionAnalysis{
		Disposition: d,
		Confidence:  dispositionDefault,
		Reasoning:   fmt.Sprintf("external analysis reported %s over heuristic %s", d, res.Disposition),
		Indicators:  lexicon.Matches(c.dict, dispositionLists[d], text),
	}
	if confidence > 0 {
		out.Confidence = clamp(confidence, 0, 100)
	}
	c.finish(&out, intent, text)
	return out
}

// finish fills the lookup-table fields for the final disposition.
func (c *Classifier) finish(res *types.DispositionAnalysis, intent types.IntentAnalysis, text string) {
	res.NextSteps = nextSteps[res.Disposition]
	switch res.Disposition {
	case types.DispositionEscalated:
		res.EscalationReason = escalationReasons[intent.Primary]
		if res.EscalationReason == "" {
			res.EscalationReason = escalationReasons[types.IntentComplaint]
		}
	case types.DispositionTransferred:
		for _, d := range c.dict.Phrases(lexicon.TransferDepartments) {
			if lexicon.ContainsBounded(text, d) {
				res.TransferDepartment = d
				return
			}
		}
		res.TransferDepartment = defaultDepartments[intent.Primary]
		if res.TransferDepartment == "" {
			res.TransferDepartment = "customer service"
		}
	}
}
