package transcription

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"github.com/rikki233752/blink-script-ai-sub000/internal/logger"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

const sampleResponse = `{
  "metadata": {"request_id": "req-1", "duration": 12.5},
  "results": {
    "channels": [{"alternatives": [{
      "transcript": "thank you for calling how can i help",
      "confidence": 0.97,
      "words": [
        {"word": "thank", "punctuated_word": "Thank", "start": 0.1, "end": 0.3, "confidence": 0.99, "speaker": 0},
        {"word": "you", "start": 0.3, "end": 0.4, "confidence": 0.98, "speaker": 0}
      ]
    }]}],
    "utterances": [
      {"start": 0.1, "end": 2.0, "confidence": 0.95, "transcript": "Thank you for calling.", "speaker": 0},
      {"start": 2.4, "end": 4.0, "confidence": 0.93, "transcript": "I have a billing question.", "speaker": 1}
    ],
    "topics": {"segments": [{"text": "billing question", "topics": [{"topic": "Billing", "confidence_score": 0.81}]}]},
    "intents": {"segments": [{"text": "billing question", "intents": [{"intent": "Ask about bill", "confidence_score": 0.9}]}]},
    "sentiments": {"segments": [{"text": "I have a billing question.", "sentiment": "Neutral", "sentiment_score": 0.05}]},
    "summary": {"result": "success", "short": "Customer asks about a bill."}
  }
}`

func TestParseResponse(t *testing.T) {
	got, err := ParseResponse([]byte(sampleResponse))
	if err != nil {
		t.Fatal(err)
	}
	if got.RequestID != "req-1" || got.DurationSec != 12.5 || got.Confidence != 0.97 {
		t.Errorf("metadata = %+v", got)
	}
	if len(got.Words) != 2 || got.Words[0].Text() != "Thank" || got.Words[1].Text() != "you" || *got.Words[0].Speaker != 0 {
		t.Errorf("words = %+v", got.Words)
	}
	if len(got.Utterances) != 2 || *got.Utterances[1].Speaker != 1 {
		t.Errorf("utterances = %+v", got.Utterances)
	}
	if len(got.Topics) != 1 || got.Topics[0].Topic != "Billing" || got.Topics[0].Confidence != 0.81 {
		t.Errorf("topics = %+v", got.Topics)
	}
	if len(got.Intents) != 1 || got.Intents[0].Intent != "Ask about bill" {
		t.Errorf("intents = %+v", got.Intents)
	}
	if len(got.Sentiments) != 1 || got.Sentiments[0].Sentiment != types.SentimentNeutral {
		t.Errorf("sentiments = %+v", got.Sentiments)
	}
	if got.Summary != "Customer asks about a bill." {
		t.Errorf("summary = %q", got.Summary)
	}
	if d := got.Diarization(); d == nil || !d.HasUtterances() {
		t.Error("diarization missing")
	}
}

func TestParseResponse_Empty(t *testing.T) {
	got, err := ParseResponse([]byte(`{"results":{}}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.Transcript != "" || got.Diarization() != nil {
		t.Errorf("got %+v", got)
	}
	if _, err := ParseResponse([]byte("not json")); err == nil {
		t.Error("expected decode error")
	}
}

func newTestClient(url string) *Client {
	return New(Options{
		APIKey:     "dg-key",
		URL:        url,
		MaxElapsed: 3 * time.Second,
		Logger:     logger.NewWithOutput(io.Discard),
	})
}

func TestTranscribeURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Token dg-key" {
			t.Errorf("auth = %q", got)
		}
		q := r.URL.Query()
		for _, flag := range []string{"diarize", "punctuate", "utterances", "smart_format", "topics", "intents", "sentiment"} {
			if q.Get(flag) != "true" {
				t.Errorf("flag %s = %q", flag, q.Get(flag))
			}
		}
		if q.Get("summarize") != "v2" || q.Get("model") != DefaultModel {
			t.Errorf("query = %v", q)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["url"] != "https://example.com/rec.mp3" {
			t.Errorf("body = %v", body)
		}
		io.WriteString(w, sampleResponse)
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).TranscribeURL(context.Background(), "https://example.com/rec.mp3")
	if err != nil {
		t.Fatal(err)
	}
	if got.RequestID != "req-1" {
		t.Errorf("request id = %q", got.RequestID)
	}
}

func TestTranscribeAudio_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "audio/wav" {
			t.Errorf("content type = %q", r.Header.Get("Content-Type"))
		}
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, sampleResponse)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).TranscribeAudio(context.Background(), []byte("RIFF"), "audio/wav"); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("calls = %d, want 2", n)
	}
}

func TestBreakerOpensOnRepeatedRejections(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	for i := 0; i < 5; i++ {
		if _, err := c.TranscribeURL(context.Background(), "https://example.com/a.mp3"); err == nil {
			t.Fatal("expected error")
		}
	}
	if n := atomic.LoadInt32(&calls); n != 5 {
		t.Errorf("4xx retried: %d calls", n)
	}
	_, err := c.TranscribeURL(context.Background(), "https://example.com/a.mp3")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("err = %v, want open breaker", err)
	}
	if n := atomic.LoadInt32(&calls); n != 5 {
		t.Errorf("open breaker still called server: %d", n)
	}
}

func TestNotConfiguredAndMock(t *testing.T) {
	c := New(Options{Logger: logger.NewWithOutput(io.Discard)})
	if _, err := c.TranscribeURL(context.Background(), "https://example.com/a.mp3"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v", err)
	}
	m := New(Options{Mock: true, Logger: logger.NewWithOutput(io.Discard)})
	got, err := m.TranscribeURL(context.Background(), "anything")
	if err != nil || got.Transcript != MockTranscript {
		t.Errorf("mock = %+v %v", got, err)
	}
}
