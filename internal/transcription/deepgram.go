package transcription

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// -------------------------------
//  Deepgram /v1/listen response
// -------------------------------

type dgWord struct {
	Word           string  `json:"word"`
	PunctuatedWord string  `json:"punctuated_word"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	Confidence     float64 `json:"confidence"`
	Speaker        *int    `json:"speaker"`
}

type dgUtterance struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
	Transcript string  `json:"transcript"`
	Speaker    *int    `json:"speaker"`
}

type dgScored struct {
	Topic      string  `json:"topic"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence_score"`
}

type dgSegment struct {
	Text           string     `json:"text"`
	Sentiment      string     `json:"sentiment"`
	SentimentScore float64    `json:"sentiment_score"`
	Topics         []dgScored `json:"topics"`
	Intents        []dgScored `json:"intents"`
}

type dgSegments struct {
	Segments []dgSegment `json:"segments"`
}

type DeepgramResponse struct {
	RequestID string `json:"request_id"`
	Metadata  struct {
		RequestID string  `json:"request_id"`
		Duration  float64 `json:"duration"`
	} `json:"metadata"`
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string   `json:"transcript"`
				Confidence float64  `json:"confidence"`
				Words      []dgWord `json:"words"`
			} `json:"alternatives"`
		} `json:"channels"`
		Utterances []dgUtterance `json:"utterances"`
		Topics     dgSegments    `json:"topics"`
		Intents    dgSegments    `json:"intents"`
		Sentiments dgSegments    `json:"sentiments"`
		Summary    struct {
			Result string `json:"result"`
			Short  string `json:"short"`
		} `json:"summary"`
	} `json:"results"`
}

// ParseResponse maps a Deepgram response body into a TranscriptionResult.
func ParseResponse(body []byte) (types.TranscriptionResult, error) {
	var dg DeepgramResponse
	if err := json.Unmarshal(body, &dg); err != nil {
		return types.TranscriptionResult{}, fmt.Errorf("decode deepgram response: %w", err)
	}
	return dg.Result(), nil
}

// Result flattens the response. A response without channels yields an
// empty transcript, not an error.
func (dg DeepgramResponse) Result() types.TranscriptionResult {
	out := types.TranscriptionResult{
		RequestID:   dg.Metadata.RequestID,
		DurationSec: dg.Metadata.Duration,
		Summary:     strings.TrimSpace(dg.Results.Summary.Short),
	}
	if out.RequestID == "" {
		out.RequestID = dg.RequestID
	}

	if len(dg.Results.Channels) > 0 && len(dg.Results.Channels[0].Alternatives) > 0 {
		alt := dg.Results.Channels[0].Alternatives[0]
		out.Transcript = alt.Transcript
		out.Confidence = alt.Confidence
		for _, w := range alt.Words {
			out.Words = append(out.Words, types.Word{
				Word:           w.Word,
				PunctuatedWord: w.PunctuatedWord,
				Start:          w.Start,
				End:            w.End,
				Confidence:     w.Confidence,
				Speaker:        w.Speaker,
			})
		}
	}

	for _, u := range dg.Results.Utterances {
		out.Utterances = append(out.Utterances, types.DiarizedUtterance{
			Speaker:    u.Speaker,
			Start:      u.Start,
			End:        u.End,
			Transcript: u.Transcript,
			Confidence: u.Confidence,
		})
	}
	for _, s := range dg.Results.Topics.Segments {
		for _, t := range s.Topics {
			out.Topics = append(out.Topics, types.AITopic{Topic: t.Topic, Confidence: t.Confidence})
		}
	}
	for _, s := range dg.Results.Intents.Segments {
		for _, i := range s.Intents {
			out.Intents = append(out.Intents, types.AIIntent{Intent: i.Intent, Confidence: i.Confidence})
		}
	}
	for _, s := range dg.Results.Sentiments.Segments {
		out.Sentiments = append(out.Sentiments, types.SentimentSegment{
			Text:      s.Text,
			Sentiment: types.SentimentLabel(strings.ToLower(s.Sentiment)),
			Score:     s.SentimentScore,
		})
	}
	return out
}
