// Package classifier picks a call intent and a call disposition from fixed
// taxonomies, fusing keyword evidence with optional provider or LLM signals.
package classifier

import (
	"math"
	"strings"

	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// Classifier is stateless apart from its dictionary.
type Classifier struct {
	dict lexicon.Dictionary
}

func New(d lexicon.Dictionary) *Classifier {
	if d == nil {
		d = lexicon.English
	}
	return &Classifier{dict: d}
}

var defaultClassifier = New(nil)

// AISignals are optional externally derived inputs. The zero value means
// none were supplied.
type AISignals struct {
	// TopIntent wins over Intents when set, e.g. from an LLM bundle.
	TopIntent string
	// TopIntentConfidence (0-100) replaces the fixed AI confidence for a
	// mapped TopIntent when positive.
	TopIntentConfidence int
	Intents             []types.AIIntent
	Topics              []types.AITopic
	Sentiment           []types.SentimentSegment
}

// top returns the explicit top intent or the most confident provider one.
func (s AISignals) top() string {
	if s.TopIntent != "" {
		return s.TopIntent
	}
	best, conf := "", -1.0
	for _, i := range s.Intents {
		if i.Intent != "" && i.Confidence > conf {
			best, conf = i.Intent, i.Confidence
		}
	}
	return best
}

// DetectIntent uses the English dictionary.
func DetectIntent(transcript string, ai AISignals) types.IntentAnalysis {
	return defaultClassifier.DetectIntent(transcript, ai)
}

// DetectDisposition uses the English dictionary.
func DetectDisposition(transcript string, intent types.IntentAnalysis, segments []types.SentimentSegment, conv *types.ConversionOutcome) types.DispositionAnalysis {
	return defaultClassifier.DetectDisposition(transcript, intent, segments, conv)
}

type pattern struct {
	substr string
	intent types.Intent
}

// aiIntentPatterns map free-text AI intent labels onto the taxonomy. The
// first matching entry wins.
var aiIntentPatterns = []pattern{
	{"cancel", types.IntentRetention},
	{"switch", types.IntentRetention},
	{"retain", types.IntentRetention},
	{"complain", types.IntentComplaint},
	{"dissatisf", types.IntentComplaint},
	{"frustrat", types.IntentComplaint},
	{"escalat", types.IntentComplaint},
	{"bill", types.IntentBilling},
	{"payment", types.IntentBilling},
	{"refund", types.IntentBilling},
	{"charge", types.IntentBilling},
	{"purchase", types.IntentSales},
	{"buy", types.IntentSales},
	{"enroll", types.IntentSales},
	{"sign up", types.IntentSales},
	{"quote", types.IntentSales},
	{"pricing", types.IntentSales},
	{"sales", types.IntentSales},
	{"troubleshoot", types.IntentSupport},
	{"fix", types.IntentSupport},
	{"support", types.IntentSupport},
	{"problem", types.IntentSupport},
	{"issue", types.IntentSupport},
	{"help", types.IntentSupport},
	{"set up", types.IntentOnboarding},
	{"setup", types.IntentOnboarding},
	{"activat", types.IntentOnboarding},
	{"onboard", types.IntentOnboarding},
	{"welcome", types.IntentOnboarding},
	{"inquir", types.IntentInformation},
	{"information", types.IntentInformation},
	{"learn", types.IntentInformation},
	{"question", types.IntentInformation},
	{"ask", types.IntentInformation},
}

// topicPatterns map provider topic labels onto the taxonomy.
var topicPatterns = []pattern{
	{"cancel", types.IntentRetention},
	{"retention", types.IntentRetention},
	{"complaint", types.IntentComplaint},
	{"customer service", types.IntentComplaint},
	{"billing", types.IntentBilling},
	{"payment", types.IntentBilling},
	{"invoice", types.IntentBilling},
	{"insurance", types.IntentSales},
	{"medicare", types.IntentSales},
	{"enrollment", types.IntentSales},
	{"sales", types.IntentSales},
	{"pricing", types.IntentSales},
	{"plan", types.IntentSales},
	{"technical", types.IntentSupport},
	{"account", types.IntentSupport},
	{"support", types.IntentSupport},
	{"onboarding", types.IntentOnboarding},
	{"activation", types.IntentOnboarding},
	{"benefit", types.IntentInformation},
	{"eligibility", types.IntentInformation},
	{"information", types.IntentInformation},
}

func mapLabel(label string, table []pattern) (types.Intent, bool) {
	l := lexicon.Normalize(label)
	for _, p := range table {
		if strings.Contains(l, p.substr) {
			return p.intent, true
		}
	}
	return "", false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundInt(f float64) int { return int(math.Round(f)) }
