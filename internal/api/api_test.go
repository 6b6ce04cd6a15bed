package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/rikki233752/blink-script-ai-sub000/internal/cache"
	"github.com/rikki233752/blink-script-ai-sub000/internal/logger"
	"github.com/rikki233752/blink-script-ai-sub000/internal/processor"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

const refusal = "Agent: Thank you for calling, this is Maria.\nCustomer: Not interested, remove me from your list."

type fakeProcessor struct {
	*processor.Processor
	calls []types.CallRecord
	err   error
}

func (f *fakeProcessor) ProcessCall(_ context.Context, rec types.CallRecord) (processor.ProcessResult, error) {
	f.calls = append(f.calls, rec)
	res := processor.ProcessResult{CallID: rec.CallID, RecordingURL: rec.RecordingURL}
	if f.err != nil {
		res.Error = f.err.Error()
		return res, f.err
	}
	res.Strategy = "direct"
	return res, nil
}

func newTestServer(t *testing.T, datasetPath string) (*httptest.Server, *fakeProcessor) {
	t.Helper()
	log := logger.NewWithOutput(io.Discard)
	c := cache.NewLocalCache(0, nil)
	t.Cleanup(func() { c.Close() })
	fp := &fakeProcessor{Processor: processor.New(processor.Options{Cache: c, Delay: -1, Logger: log})}
	h := New(Options{Processor: fp, DatasetPath: datasetPath, Logger: log})
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv, fp
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func transcriptBody(t *testing.T, transcript string) string {
	t.Helper()
	b, err := json.Marshal(types.TranscriptRequest{CallID: "c-1", Transcript: transcript})
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t, "")
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestMetrics(t *testing.T) {
	srv, _ := newTestServer(t, "")
	if resp, err := http.Get(srv.URL + "/healthz"); err == nil {
		resp.Body.Close()
	}
	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(body, []byte("callinsights_http_requests_total")) {
		t.Errorf("metrics output missing http counter")
	}
}

func TestBadRequests(t *testing.T) {
	srv, _ := newTestServer(t, "")
	tests := []struct {
		name, path, body string
	}{
		{"invalid json", "/v1/analyze", "{"},
		{"empty transcript", "/v1/analyze", `{"transcript":"  "}`},
		{"speakers empty", "/v1/speakers", `{}`},
		{"score invalid", "/v1/score", `[1,2]`},
		{"process bad url", "/v1/process", `{"call_id":"x","recording_url":"ftp://example.com/a.mp3"}`},
		{"process invalid json", "/v1/process", `nope`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, tt.path, tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d", resp.StatusCode)
			}
			var e map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e["error"] == "" {
				t.Errorf("error body = %v, %v", e, err)
			}
		})
	}
}

func TestSpeakers(t *testing.T) {
	srv, _ := newTestServer(t, "")
	resp := post(t, srv, "/v1/speakers", transcriptBody(t, refusal))
	var out struct {
		Utterances []types.Utterance `json:"utterances"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Utterances) != 2 || out.Utterances[0].Speaker != types.SpeakerAgent {
		t.Errorf("utterances = %+v", out.Utterances)
	}
}

func TestAnalyze_CachesByTranscript(t *testing.T) {
	srv, _ := newTestServer(t, "")
	first := post(t, srv, "/v1/analyze", transcriptBody(t, refusal))
	if first.StatusCode != http.StatusOK || first.Header.Get("X-Cache") != "MISS" {
		t.Fatalf("first = %d %q", first.StatusCode, first.Header.Get("X-Cache"))
	}
	var a types.CallAnalysis
	if err := json.NewDecoder(first.Body).Decode(&a); err != nil {
		t.Fatal(err)
	}
	if a.CallID != "c-1" || a.Conversion.ConversionAchieved {
		t.Errorf("analysis = %+v", a)
	}

	second := post(t, srv, "/v1/analyze", transcriptBody(t, refusal))
	if second.Header.Get("X-Cache") != "HIT" {
		t.Errorf("second X-Cache = %q", second.Header.Get("X-Cache"))
	}
}

func TestScoreAndSummary(t *testing.T) {
	srv, _ := newTestServer(t, "")
	resp := post(t, srv, "/v1/score", transcriptBody(t, refusal))
	var sc types.PreciseScoring
	if err := json.NewDecoder(resp.Body).Decode(&sc); err != nil {
		t.Fatal(err)
	}
	if sc.CallID != "c-1" || len(sc.Categories) != len(types.Categories) {
		t.Errorf("scoring = %+v", sc)
	}

	resp = post(t, srv, "/v1/summary", transcriptBody(t, refusal))
	var sum types.CallSummary
	if err := json.NewDecoder(resp.Body).Decode(&sum); err != nil {
		t.Fatal(err)
	}
	if sum.CallConclusion == "" || sum.ShortSummary == "" {
		t.Errorf("summary = %+v", sum)
	}
}

func TestProcess(t *testing.T) {
	srv, fp := newTestServer(t, "")
	resp := post(t, srv, "/v1/process", `{"recording_url":"https://media.example.com/rec/1.mp3"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(fp.calls) != 1 || fp.calls[0].CallID == "" {
		t.Errorf("calls = %+v", fp.calls)
	}

	fp.err = errors.New("download: all download strategies failed")
	resp = post(t, srv, "/v1/process", `{"call_id":"c-2","recording_url":"https://media.example.com/rec/2.mp3"}`)
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d", resp.StatusCode)
	}
	var res processor.ProcessResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil || res.Error == "" {
		t.Errorf("result = %+v, %v", res, err)
	}
}

func writeDataset(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cellRef, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cellRef, &r); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "calls.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDemo(t *testing.T) {
	rows := [][]any{{"Call ID", "Campaign", "Transcript"}}
	for i := 0; i < 7; i++ {
		rows = append(rows, []any{"call-" + string(rune('a'+i)), "ACA", refusal})
	}
	srv, _ := newTestServer(t, writeDataset(t, rows))

	resp, err := http.Get(srv.URL + "/v1/demo")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out DemoResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != DefaultDemoLimit || out.Dataset.TotalCalls != 7 {
		t.Fatalf("results = %d, total = %d", len(out.Results), out.Dataset.TotalCalls)
	}
	if out.Insight.TotalCalls != DefaultDemoLimit || out.Action.Action == "" {
		t.Errorf("insight = %+v, action = %+v", out.Insight, out.Action)
	}
	// Identical transcripts hit the cache after the first call.
	if out.Results[0].Cached || !out.Results[1].Cached {
		t.Errorf("cache flags = %v %v", out.Results[0].Cached, out.Results[1].Cached)
	}

	bad, err := http.Get(srv.URL + "/v1/demo?limit=zero")
	if err != nil {
		t.Fatal(err)
	}
	bad.Body.Close()
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("bad limit status = %d", bad.StatusCode)
	}
}

func TestDemo_NoDataset(t *testing.T) {
	srv, _ := newTestServer(t, "")
	resp, err := http.Get(srv.URL + "/v1/demo")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
