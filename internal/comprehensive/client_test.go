package comprehensive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rikki233752/blink-script-ai-sub000/internal/logger"
)

const bundleJSON = `{"intent":{"primary":"sales","top_intent":"Enroll","confidence":0.9},` +
	`"disposition":{"value":"converted","confidence":0.8},"facts":["Customer wants dental"],` +
	`"sentiment":{"overall":"Positive","score":1.7},"quality":{"overall_score":81},` +
	`"business":{"conversion_achieved":true,"confidence":0.88}}`

func newTestClient(url string) *Client {
	return New(Options{
		GatewayURL: url,
		APIKey:     "key",
		Model:      "test-model",
		MaxElapsed: 3 * time.Second,
		Logger:     logger.NewWithOutput(io.Discard),
	})
}

func choices(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{{"message": map[string]string{"content": content}}},
	})
	return string(b)
}

func TestAnalyze_ParsesChoicesContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("auth header = %q", r.Header.Get("Authorization"))
		}
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "test-model" || len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "Agent: Hi") {
			t.Errorf("unexpected request %+v", req)
		}
		io.WriteString(w, choices("```json\n"+bundleJSON+"\n```"))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Analyze(context.Background(), "Agent: Hi")
	if err != nil {
		t.Fatal(err)
	}
	if got.Intent.Primary != "SALES" || got.Disposition.Value != "CONVERTED" {
		t.Errorf("enums not normalized: %+v", got)
	}
	if got.Sentiment.Overall != "positive" || got.Sentiment.Score != 1 {
		t.Errorf("sentiment = %+v", got.Sentiment)
	}
	if !got.Business.ConversionAchieved || len(got.Facts) != 1 {
		t.Errorf("bundle = %+v", got)
	}
}

func TestAnalyze_FallbackBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "result: "+bundleJSON+" trailing")
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Analyze(context.Background(), "Agent: Hi")
	if err != nil {
		t.Fatal(err)
	}
	if got.Quality.OverallScore != 81 {
		t.Errorf("quality = %v", got.Quality.OverallScore)
	}
}

func TestAnalyze_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Analyze(context.Background(), "Agent: Hi"); err == nil {
		t.Fatal("expected error")
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("server called %d times, want 1", n)
	}
}

func TestAnalyze_ServerErrorRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "overloaded", http.StatusBadGateway)
			return
		}
		io.WriteString(w, choices(bundleJSON))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Analyze(context.Background(), "Agent: Hi"); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("server called %d times, want 2", n)
	}
}

func TestAnalyze_NotConfiguredAndMock(t *testing.T) {
	c := New(Options{Logger: logger.NewWithOutput(io.Discard)})
	if c.Enabled() {
		t.Error("unconfigured client enabled")
	}
	if _, err := c.Analyze(context.Background(), "Agent: Hi"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v", err)
	}

	m := New(Options{Mock: true, Logger: logger.NewWithOutput(io.Discard)})
	a, err := m.Analyze(context.Background(), "")
	if err != nil || a == nil || a.Intent.Primary == "" {
		t.Errorf("mock = %+v %v", a, err)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"no braces", ""},
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":{\"b\":2}}\n```", `{"a":{"b":2}}`},
		{`x {"a":"}"} y {"b":1}`, `{"a":"}"}`},
		{`{"a":1`, ""},
	}
	for _, tt := range tests {
		if got := extractJSON(tt.in); got != tt.want {
			t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("Customer: sign me up")
	if !strings.Contains(p, "Customer: sign me up") || !strings.Contains(p, `"conversion_achieved"`) {
		t.Error("prompt missing transcript or schema")
	}
}
