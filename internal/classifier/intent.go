package classifier

import (
	"fmt"
	"strings"

	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/sentiment"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// Intent confidence constants.
const (
	aiIntentConfidence    = 80
	topicConfidence       = 75
	topicAgreeConfidence  = 85
	topicAgreeBoost       = 5
	defaultConfidence     = 50
	keywordFloor          = 60
	maxIntentConfidence   = 95
	problemConfidence     = 85
	positiveSalesConf     = 90
	strongNegativeAverage = -0.3
	positiveAverage       = 0.1
)

// Keyword weight multipliers.
const (
	phraseMultiplier     = 1.5
	resolutionMultiplier = 1.3
	salesMultiplier      = 1.4
)

var intentLists = map[types.Intent]lexicon.ListName{
	types.IntentSupport:     lexicon.IntentSupport,
	types.IntentSales:       lexicon.IntentSales,
	types.IntentBilling:     lexicon.IntentBilling,
	types.IntentComplaint:   lexicon.IntentComplaint,
	types.IntentInformation: lexicon.IntentInformation,
	types.IntentOnboarding:  lexicon.IntentOnboarding,
	types.IntentRetention:   lexicon.IntentRetention,
}

type subcategory struct {
	name string
	list lexicon.ListName
}

// subcategories are in definition order; the first is the fallback.
var subcategories = map[types.Intent][]subcategory{
	types.IntentSupport: {
		{"technical_issue", lexicon.SubTechnicalIssue},
		{"account_access", lexicon.SubAccountAccess},
		{"claim_status", lexicon.SubClaimStatus},
		{"general_support", lexicon.SubGeneralSupport},
	},
	types.IntentSales: {
		{"new_enrollment", lexicon.SubNewEnrollment},
		{"plan_comparison", lexicon.SubPlanComparison},
		{"upgrade", lexicon.SubUpgrade},
		{"lead_qualification", lexicon.SubLeadQualify},
	},
	types.IntentBilling: {
		{"payment_issue", lexicon.SubPaymentIssue},
		{"invoice_question", lexicon.SubInvoiceQuestion},
		{"refund_request", lexicon.SubRefundRequest},
	},
	types.IntentComplaint: {
		{"service_quality", lexicon.SubServiceQuality},
		{"billing_dispute", lexicon.SubBillingDispute},
		{"unwanted_contact", lexicon.SubUnwantedContact},
	},
	types.IntentInformation: {
		{"product_inquiry", lexicon.SubProductInquiry},
		{"eligibility_check", lexicon.SubEligibilityCheck},
		{"benefits_question", lexicon.SubBenefitsQuestion},
	},
	types.IntentOnboarding: {
		{"account_setup", lexicon.SubAccountSetup},
		{"welcome_call", lexicon.SubWelcomeCall},
	},
	types.IntentRetention: {
		{"cancellation", lexicon.SubCancellation},
		{"win_back", lexicon.SubWinBack},
	},
}

// keywordScore is one category's keyword evidence.
type keywordScore struct {
	intent  types.Intent
	score   float64
	matches []string
}

func (c *Classifier) keywordScores(text string) []keywordScore {
	resolution := asSet(c.dict.Phrases(lexicon.ResolutionWords))
	sales := asSet(c.dict.Phrases(lexicon.SalesWords))
	out := make([]keywordScore, 0, len(types.Intents))
	for _, in := range types.Intents {
		ks := keywordScore{intent: in}
		for _, kw := range c.dict.Phrases(intentLists[in]) {
			if !lexicon.ContainsBounded(text, kw) {
				continue
			}
			w := 1.0
			if strings.Contains(kw, " ") {
				w *= phraseMultiplier
			}
			if resolution[kw] {
				w *= resolutionMultiplier
			}
			if sales[kw] {
				w *= salesMultiplier
			}
			ks.score += w
			ks.matches = append(ks.matches, kw)
		}
		out = append(out, ks)
	}
	return out
}

func asSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// DetectIntent runs, in order: AI top-intent mapping, topic reinforcement,
// keyword analysis, sentiment adjustment, subcategory and secondary intent
// selection. It never fails; empty input yields INFORMATION at 50.
func (c *Classifier) DetectIntent(transcript string, ai AISignals) types.IntentAnalysis {
	text := lexicon.Normalize(transcript)
	res := types.IntentAnalysis{
		Primary:    types.IntentInformation,
		Confidence: defaultConfidence,
		Keywords:   []string{},
	}
	var reasons []string
	decided := false

	if top := ai.top(); top != "" {
		if in, ok := mapLabel(top, aiIntentPatterns); ok {
			conf := aiIntentConfidence
			if ai.TopIntentConfidence > 0 && ai.TopIntent != "" {
				conf = clamp(ai.TopIntentConfidence, 0, maxIntentConfidence)
			}
			res.Primary, res.Confidence, res.AIEnhanced = in, conf, true
			decided = true
			reasons = append(reasons, fmt.Sprintf("AI intent %q mapped to %s", top, in))
		}
	}

	if in, ok := topicIntent(ai.Topics); ok {
		switch {
		case !decided:
			res.Primary, res.Confidence, res.AIEnhanced = in, topicConfidence, true
			decided = true
			reasons = append(reasons, fmt.Sprintf("topics point to %s", in))
		case in == res.Primary:
			res.Confidence = min(topicAgreeConfidence, res.Confidence+topicAgreeBoost)
			reasons = append(reasons, "topics agree")
		}
	}

	scores := c.keywordScores(text)
	best := scores[0]
	for _, ks := range scores[1:] {
		if ks.score > best.score {
			best = ks
		}
	}
	if best.score > 0 {
		kwConf := min(maxIntentConfidence, max(keywordFloor, roundInt(best.score*15+50)))
		if !decided || kwConf > res.Confidence {
			res.Primary, res.Confidence = best.intent, kwConf
			reasons = append(reasons, fmt.Sprintf("keywords scored %s %.1f (%s)", best.intent, best.score, strings.Join(best.matches, ", ")))
		} else {
			reasons = append(reasons, fmt.Sprintf("keyword result %s at %d did not beat %d", best.intent, kwConf, res.Confidence))
		}
	} else if !decided {
		reasons = append(reasons, "no intent keywords; defaulted to INFORMATION")
	}
	for _, ks := range scores {
		if ks.intent == res.Primary && len(ks.matches) > 0 {
			res.Keywords = ks.matches
		}
	}

	if len(ai.Sentiment) > 0 {
		avg := sentiment.Average(ai.Sentiment)
		switch {
		case avg <= strongNegativeAverage && res.Primary != types.IntentComplaint &&
			(strings.Contains(text, "problem") || strings.Contains(text, "issue")):
			res.Confidence = problemConfidence
			reasons = append(reasons, "negative sentiment around a problem")
		case avg > positiveAverage && res.Primary == types.IntentSales:
			res.Confidence = positiveSalesConf
			reasons = append(reasons, "positive sentiment on a sales call")
		}
	}

	res.Subcategory = c.subcategory(res.Primary, text)

	var second *keywordScore
	for i := range scores {
		ks := &scores[i]
		if ks.intent == res.Primary || len(ks.matches) <= 1 {
			continue
		}
		if second == nil || ks.score > second.score {
			second = ks
		}
	}
	if second != nil {
		res.Secondary = second.intent
	}

	res.Confidence = clamp(res.Confidence, 0, maxIntentConfidence)
	res.Reasoning = strings.Join(reasons, "; ")
	return res
}

// topicIntent maps every topic and returns the most frequent intent; ties go
// to the intent seen first.
func topicIntent(topics []types.AITopic) (types.Intent, bool) {
	counts := map[types.Intent]int{}
	var order []types.Intent
	for _, t := range topics {
		in, ok := mapLabel(t.Topic, topicPatterns)
		if !ok {
			continue
		}
		if counts[in] == 0 {
			order = append(order, in)
		}
		counts[in]++
	}
	if len(order) == 0 {
		return "", false
	}
	best := order[0]
	for _, in := range order[1:] {
		if counts[in] > counts[best] {
			best = in
		}
	}
	return best, true
}

func (c *Classifier) subcategory(in types.Intent, text string) string {
	subs := subcategories[in]
	if len(subs) == 0 {
		return ""
	}
	best, bestHits := subs[0].name, 0
	for _, s := range subs {
		hits := 0
		for _, kw := range c.dict.Phrases(s.list) {
			if lexicon.ContainsBounded(text, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = s.name, hits
		}
	}
	return best
}
