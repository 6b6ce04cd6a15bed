// internal/types/kpi_models.go
package types

// --------------------------------------------
// Request bodies for the analysis API
// --------------------------------------------
type TranscriptRequest struct {
	CallID      string       `json:"call_id,omitempty"`
	Transcript  string       `json:"transcript"`
	Diarization *Diarization `json:"diarization,omitempty"`
	Baseline    *CallData    `json:"baseline,omitempty"`
}

type ProcessRequest struct {
	CallID       string `json:"call_id"`
	RecordingURL string `json:"recording_url"`
}

// --------------------------------------------
// Talk-time KPIs derived from utterances
// --------------------------------------------
type KPIBlock struct {
	CustomerTalkRatio float64 `json:"customer_talk_ratio"`
	AgentTalkRatio    float64 `json:"agent_talk_ratio"`
	SilenceSeconds    int     `json:"silence_seconds"`
	InterruptionCount int     `json:"interruption_count"`
	AgentTurns        int     `json:"agent_turns"`
	CustomerTurns     int     `json:"customer_turns"`
}

// ============================================================
//  Bundle returned by the LLM comprehensive analyzer. When
//  present it takes priority over the heuristic extractors.
// ============================================================
type ComprehensiveAnalysis struct {
	Intent      BundleIntent      `json:"intent"`
	Disposition BundleDisposition `json:"disposition"`
	Facts       []string          `json:"facts"`
	Sentiment   BundleSentiment   `json:"sentiment"`
	Quality     BundleQuality     `json:"quality"`
	Business    BundleBusiness    `json:"business"`
}

type BundleIntent struct {
	Primary    string  `json:"primary"`
	TopIntent  string  `json:"top_intent"`
	Confidence float64 `json:"confidence"`
}

type BundleDisposition struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

type BundleSentiment struct {
	Overall string  `json:"overall"`
	Score   float64 `json:"score"` // -1..1
}

type BundleQuality struct {
	OverallScore float64 `json:"overall_score"` // 0..100
}

type BundleBusiness struct {
	ConversionAchieved bool    `json:"conversion_achieved"`
	Confidence         float64 `json:"confidence"`
}
