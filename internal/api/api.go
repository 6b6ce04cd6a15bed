// internal/api/api.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rikki233752/blink-script-ai-sub000/internal/actionable"
	"github.com/rikki233752/blink-script-ai-sub000/internal/aggregator"
	"github.com/rikki233752/blink-script-ai-sub000/internal/dataset"
	"github.com/rikki233752/blink-script-ai-sub000/internal/logger"
	"github.com/rikki233752/blink-script-ai-sub000/internal/pipeline"
	"github.com/rikki233752/blink-script-ai-sub000/internal/processor"
	"github.com/rikki233752/blink-script-ai-sub000/internal/scoring"
	"github.com/rikki233752/blink-script-ai-sub000/internal/speaker"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

const (
	// DefaultDemoLimit is the number of dataset rows /v1/demo processes.
	DefaultDemoLimit = 5
	maxBodyBytes     = 10 << 20
)

// CallProcessor is the part of processor.Processor the handlers use.
type CallProcessor interface {
	ProcessCall(ctx context.Context, rec types.CallRecord) (processor.ProcessResult, error)
	ProcessQueue(ctx context.Context, calls []types.CallRecord) ([]processor.ProcessResult, error)
	AnalyzeTranscript(ctx context.Context, in pipeline.Input) (types.CallAnalysis, bool)
}

type Options struct {
	Processor      CallProcessor
	DatasetPath    string
	AllowedOrigins []string
	Logger         *logger.Logger
}

type Handler struct {
	proc        CallProcessor
	datasetPath string
	origins     []string
	log         *logger.Logger
}

func New(o Options) *Handler {
	h := &Handler{
		proc:        o.Processor,
		datasetPath: o.DatasetPath,
		origins:     o.AllowedOrigins,
		log:         o.Logger,
	}
	if h.log == nil {
		h.log = logger.New()
	}
	if len(h.origins) == 0 {
		h.origins = []string{"*"}
	}
	h.log = h.log.Component("api")
	return h
}

// Router builds the chi router with all routes and middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(h.origins))

	r.Get("/healthz", h.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/speakers", h.speakers)
		r.Post("/analyze", h.analyze)
		r.Post("/score", h.score)
		r.Post("/summary", h.summary)
		r.Post("/process", h.process)
		r.Get("/demo", h.demo)
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeTranscript reads a TranscriptRequest and rejects one with neither
// a transcript nor diarization.
func (h *Handler) decodeTranscript(w http.ResponseWriter, r *http.Request) (types.TranscriptRequest, bool) {
	var req types.TranscriptRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	if strings.TrimSpace(req.Transcript) == "" && !req.Diarization.HasUtterances() && !req.Diarization.HasSpeakerWords() {
		writeError(w, http.StatusBadRequest, "transcript is required")
		return req, false
	}
	return req, true
}

func pipelineInput(req types.TranscriptRequest) pipeline.Input {
	in := pipeline.Input{CallID: req.CallID, Transcript: req.Transcript}
	if d := req.Diarization; d != nil {
		in.Transcription = &types.TranscriptionResult{
			Transcript: req.Transcript,
			Utterances: d.Utterances,
			Words:      d.Words,
		}
	}
	if req.Baseline != nil {
		in.Baseline = *req.Baseline
	}
	return in
}

func (h *Handler) speakers(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTranscript(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"utterances": speaker.Parse(req.Transcript, req.Diarization),
	})
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTranscript(w, r)
	if !ok {
		return
	}
	a, cached := h.proc.AnalyzeTranscript(r.Context(), pipelineInput(req))
	setCacheHeader(w, cached)
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) score(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTranscript(w, r)
	if !ok {
		return
	}
	baseline := pipelineInput(req).Baseline
	if baseline.CallID == "" {
		baseline.CallID = req.CallID
	}
	text := req.Transcript
	if strings.TrimSpace(text) == "" {
		baseline.Utterances = speaker.Parse("", req.Diarization)
		text = speaker.Transcript(baseline.Utterances)
	}
	writeJSON(w, http.StatusOK, scoring.Calculate(text, baseline))
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTranscript(w, r)
	if !ok {
		return
	}
	a, cached := h.proc.AnalyzeTranscript(r.Context(), pipelineInput(req))
	setCacheHeader(w, cached)
	writeJSON(w, http.StatusOK, a.Summary)
}

func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	var req types.ProcessRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec := types.CallRecord{CallID: req.CallID, RecordingURL: strings.TrimSpace(req.RecordingURL)}
	if !rec.HasRecording() {
		writeError(w, http.StatusBadRequest, "recording_url must be an http(s) url")
		return
	}
	if rec.CallID == "" {
		rec.CallID = uuid.NewString()
	}

	res, err := h.proc.ProcessCall(r.Context(), rec)
	if err != nil {
		h.log.WithField("call_id", rec.CallID).WithError(err).Warn("process request failed")
		writeJSON(w, http.StatusBadGateway, res)
		return
	}
	setCacheHeader(w, res.Cached)
	writeJSON(w, http.StatusOK, res)
}

// DemoResponse is the /v1/demo payload.
type DemoResponse struct {
	Dataset dataset.DatasetSummary    `json:"dataset"`
	Results []processor.ProcessResult `json:"results"`
	Insight aggregator.Insight        `json:"insight"`
	Action  actionable.ActionCard     `json:"action"`
}

// demo processes the first rows of the configured dataset.
func (h *Handler) demo(w http.ResponseWriter, r *http.Request) {
	if h.datasetPath == "" {
		writeError(w, http.StatusServiceUnavailable, "no dataset configured")
		return
	}
	limit := DefaultDemoLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := dataset.Load(h.datasetPath)
	if err != nil {
		h.log.WithError(err).Error("dataset load error")
		writeError(w, http.StatusInternalServerError, "dataset load error")
		return
	}
	demo := records[:min(limit, len(records))]

	results, err := h.proc.ProcessQueue(r.Context(), demo)
	if err != nil && !errors.Is(err, context.Canceled) {
		h.log.WithError(err).Warn("demo queue interrupted")
	}
	var analyses []types.CallAnalysis
	for _, res := range results {
		if res.Analysis != nil {
			analyses = append(analyses, *res.Analysis)
		}
	}
	ins := aggregator.Aggregate(analyses)
	writeJSON(w, http.StatusOK, DemoResponse{
		Dataset: dataset.Summarize(records),
		Results: results,
		Insight: ins,
		Action:  actionable.Generate(ins),
	})
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid JSON body: " + err.Error())
	}
	return nil
}

func setCacheHeader(w http.ResponseWriter, cached bool) {
	v := "MISS"
	if cached {
		v = "HIT"
	}
	w.Header().Set("X-Cache", v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
