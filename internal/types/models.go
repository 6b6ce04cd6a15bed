package types

import (
	"strings"
	"time"
)

// CallRecord is one row of a call-log export or one call submitted for
// processing.
type CallRecord struct {
	CallID       string    `json:"call_id"`
	RecordingURL string    `json:"recording_url,omitempty"`
	CallerID     string    `json:"caller_id,omitempty"`
	Campaign     string    `json:"campaign,omitempty"`
	Publisher    string    `json:"publisher,omitempty"`
	DurationSec  int       `json:"duration_sec,omitempty"`
	CallDate     time.Time `json:"call_date,omitempty"`
	Transcript   string    `json:"transcript,omitempty"`
}

// HasRecording reports whether the record carries a usable http(s) link.
func (c CallRecord) HasRecording() bool {
	return isHTTPURL(c.RecordingURL)
}

// CallAnalysis is everything the pipeline derives from one transcript.
type CallAnalysis struct {
	ID          string                     `json:"id"`
	CallID      string                     `json:"call_id,omitempty"`
	AnalyzedAt  time.Time                  `json:"analyzed_at"`
	Transcript  string                     `json:"transcript"`
	Utterances  []Utterance                `json:"utterances"`
	TalkMetrics KPIBlock                   `json:"talk_metrics"`
	Sentiment   SentimentAnalysis          `json:"sentiment"`
	Intent      IntentAnalysis             `json:"intent"`
	Disposition DispositionAnalysis        `json:"disposition"`
	Conversion  EnhancedBusinessConversion `json:"business_conversion"`
	Scoring     PreciseScoring             `json:"scoring"`
	Summary     CallSummary                `json:"summary"`
	// AIEnhanced is set when provider or LLM signals took part.
	AIEnhanced bool `json:"ai_enhanced"`
}

func isHTTPURL(s string) bool {
	l := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
