package types

// Speaker is the role attributed to an utterance.
type Speaker string

const (
	SpeakerAgent    Speaker = "Agent"
	SpeakerCustomer Speaker = "Customer"
	SpeakerUnknown  Speaker = "Unknown"
)

// TimingSource says where an utterance's Start/End came from.
type TimingSource string

const (
	TimingNone      TimingSource = ""
	TimingMeasured  TimingSource = "measured"  // provider timestamps
	TimingEstimated TimingSource = "estimated" // synthetic, for timeline display only
)

// Utterance is one speaker-attributed stretch of a transcript.
type Utterance struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
	// Start and End are seconds from call start; meaningful only when
	// Timing is not TimingNone.
	Start      float64      `json:"start_time,omitempty"`
	End        float64      `json:"end_time,omitempty"`
	Timing     TimingSource `json:"timing,omitempty"`
	Confidence *float64     `json:"confidence,omitempty"`
	// Label is the raw label or provider speaker id the line was parsed from.
	Label string `json:"label,omitempty"`
}

// Word is a word-level token from a transcription provider. Speaker is nil
// when the provider did not diarize.
type Word struct {
	Word           string  `json:"word"`
	PunctuatedWord string  `json:"punctuated_word,omitempty"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	Confidence     float64 `json:"confidence"`
	Speaker        *int    `json:"speaker,omitempty"`
}

// Text returns the punctuated form when the provider supplied one.
func (w Word) Text() string {
	if w.PunctuatedWord != "" {
		return w.PunctuatedWord
	}
	return w.Word
}

// DiarizedUtterance is a provider utterance boundary.
type DiarizedUtterance struct {
	Speaker    *int    `json:"speaker,omitempty"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

// Diarization is the optional structure a provider returns next to the
// plain transcript.
type Diarization struct {
	Utterances []DiarizedUtterance `json:"utterances,omitempty"`
	Words      []Word              `json:"words,omitempty"`
}

// HasUtterances reports whether at least one utterance carries a speaker id.
func (d *Diarization) HasUtterances() bool {
	if d == nil {
		return false
	}
	for _, u := range d.Utterances {
		if u.Speaker != nil {
			return true
		}
	}
	return false
}

// HasSpeakerWords reports whether at least one word carries a speaker id.
func (d *Diarization) HasSpeakerWords() bool {
	if d == nil {
		return false
	}
	for _, w := range d.Words {
		if w.Speaker != nil {
			return true
		}
	}
	return false
}

// AITopic, AIIntent and SentimentSegment are provider-derived signals.
type AITopic struct {
	Topic      string  `json:"topic"`
	Confidence float64 `json:"confidence"`
}

type AIIntent struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

type SentimentSegment struct {
	Text      string         `json:"text"`
	Sentiment SentimentLabel `json:"sentiment"`
	Score     float64        `json:"sentiment_score"` // -1..1
	Start     float64        `json:"start,omitempty"`
	End       float64        `json:"end,omitempty"`
}

// TranscriptionResult is the normalized provider response.
type TranscriptionResult struct {
	RequestID   string              `json:"request_id,omitempty"`
	Transcript  string              `json:"transcript"`
	Confidence  float64             `json:"confidence"`
	DurationSec float64             `json:"duration_sec"`
	Words       []Word              `json:"words,omitempty"`
	Utterances  []DiarizedUtterance `json:"utterances,omitempty"`
	Topics      []AITopic           `json:"topics,omitempty"`
	Intents     []AIIntent          `json:"intents,omitempty"`
	Sentiments  []SentimentSegment  `json:"sentiments,omitempty"`
	Summary     string              `json:"summary,omitempty"`
}

// Diarization returns the speaker structure of the result, or nil when the
// provider returned none.
func (t TranscriptionResult) Diarization() *Diarization {
	if len(t.Words) == 0 && len(t.Utterances) == 0 {
		return nil
	}
	return &Diarization{Utterances: t.Utterances, Words: t.Words}
}
