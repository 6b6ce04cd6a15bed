// internal/processor/processor.go
package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rikki233752/blink-script-ai-sub000/internal/cache"
	"github.com/rikki233752/blink-script-ai-sub000/internal/logger"
	"github.com/rikki233752/blink-script-ai-sub000/internal/metrics"
	"github.com/rikki233752/blink-script-ai-sub000/internal/pipeline"
	"github.com/rikki233752/blink-script-ai-sub000/internal/recording"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// DefaultDelay separates queued transcriptions.
const DefaultDelay = 2 * time.Second

type Transcriber interface {
	TranscribeURL(ctx context.Context, audioURL string) (types.TranscriptionResult, error)
	TranscribeAudio(ctx context.Context, data []byte, contentType string) (types.TranscriptionResult, error)
}

type Downloader interface {
	Fetch(ctx context.Context, rawURL string) (recording.Result, error)
}

// BundleAnalyzer produces the comprehensive analysis bundle.
type BundleAnalyzer interface {
	Enabled() bool
	Analyze(ctx context.Context, transcript string) (*types.ComprehensiveAnalysis, error)
}

// ProcessResult is returned for every processed call.
type ProcessResult struct {
	CallID       string              `json:"call_id"`
	RecordingURL string              `json:"recording_url,omitempty"`
	Strategy     string              `json:"download_strategy,omitempty"`
	Analysis     *types.CallAnalysis `json:"analysis,omitempty"`
	Cached       bool                `json:"cached"`
	DurationMs   int64               `json:"duration_ms"`
	Error        string              `json:"error,omitempty"`
}

type Options struct {
	Transcriber Transcriber
	Downloader  Downloader
	// Bundle is optional.
	Bundle   BundleAnalyzer
	Pipeline *pipeline.Pipeline
	// Cache is optional.
	Cache    cache.Cache
	CacheTTL time.Duration
	// Delay between queued calls; negative means none.
	Delay  time.Duration
	Logger *logger.Logger
}

type Processor struct {
	transcriber Transcriber
	downloader  Downloader
	bundle      BundleAnalyzer
	pipeline    *pipeline.Pipeline
	cache       cache.Cache
	ttl         time.Duration
	delay       time.Duration
	log         *logger.Logger
}

func New(o Options) *Processor {
	p := &Processor{
		transcriber: o.Transcriber,
		downloader:  o.Downloader,
		bundle:      o.Bundle,
		pipeline:    o.Pipeline,
		cache:       o.Cache,
		ttl:         o.CacheTTL,
		delay:       o.Delay,
		log:         o.Logger,
	}
	if p.pipeline == nil {
		p.pipeline = pipeline.New(nil)
	}
	if p.delay == 0 {
		p.delay = DefaultDelay
	}
	if p.log == nil {
		p.log = logger.New()
	}
	p.log = p.log.Component("processor")
	return p
}

// ProcessCall analyzes one call. A call with a transcript and no usable
// recording link skips download and transcription.
func (p *Processor) ProcessCall(ctx context.Context, rec types.CallRecord) (ProcessResult, error) {
	start := time.Now()
	res := ProcessResult{CallID: rec.CallID, RecordingURL: rec.RecordingURL}
	fail := func(stage string, err error) (ProcessResult, error) {
		err = fmt.Errorf("%s: %w", stage, err)
		res.Error = err.Error()
		res.DurationMs = time.Since(start).Milliseconds()
		p.log.WithField("call_id", rec.CallID).WithField("stage", stage).WithError(err).Warn("call processing failed")
		return res, err
	}

	baseline := types.CallData{CallID: rec.CallID, DurationSec: rec.DurationSec}

	if !rec.HasRecording() {
		if strings.TrimSpace(rec.Transcript) == "" {
			return fail("input", errors.New("no recording url or transcript"))
		}
		a, cached := p.AnalyzeTranscript(ctx, pipeline.Input{CallID: rec.CallID, Transcript: rec.Transcript, Baseline: baseline})
		res.Analysis, res.Cached = &a, cached
		res.DurationMs = time.Since(start).Milliseconds()
		return res, nil
	}

	key := cache.Key(rec.RecordingURL)
	if a, ok := p.lookup(ctx, key); ok {
		res.Analysis, res.Cached = &a, true
		res.DurationMs = time.Since(start).Milliseconds()
		return res, nil
	}

	if p.downloader == nil || p.transcriber == nil {
		return fail("transcription", errors.New("no transcription provider configured"))
	}

	dl, err := p.downloader.Fetch(ctx, rec.RecordingURL)
	if err != nil {
		return fail("download", err)
	}
	res.Strategy = dl.Strategy

	var tr types.TranscriptionResult
	if dl.Remote() {
		tr, err = p.transcriber.TranscribeURL(ctx, dl.URL)
	} else {
		tr, err = p.transcriber.TranscribeAudio(ctx, dl.Data, dl.ContentType)
	}
	if err != nil {
		return fail("transcription", err)
	}
	if tr.DurationSec > 0 && baseline.DurationSec == 0 {
		baseline.DurationSec = int(tr.DurationSec)
	}

	a := p.analyze(ctx, pipeline.Input{CallID: rec.CallID, Transcript: tr.Transcript, Transcription: &tr, Baseline: baseline})
	p.store(ctx, key, a)

	res.Analysis = &a
	res.DurationMs = time.Since(start).Milliseconds()
	p.log.WithField("call_id", rec.CallID).WithField("strategy", dl.Strategy).WithField("duration_ms", res.DurationMs).Info("call processed")
	return res, nil
}

// AnalyzeTranscript runs the pipeline over an already transcribed call,
// using the cache keyed by the whole input. A cached result takes the
// caller's call id. It reports whether the result came from the cache.
func (p *Processor) AnalyzeTranscript(ctx context.Context, in pipeline.Input) (types.CallAnalysis, bool) {
	key, err := inputKey(in)
	if err != nil {
		p.log.WithField("call_id", in.CallID).WithError(err).Warn("cannot build cache key, skipping cache")
		return p.analyze(ctx, in), false
	}
	if a, ok := p.lookup(ctx, key); ok {
		if in.CallID != "" {
			a.CallID = in.CallID
			a.Scoring.CallID = in.CallID
		}
		return a, true
	}
	a := p.analyze(ctx, in)
	p.store(ctx, key, a)
	return a, false
}

// ProcessQueue processes calls one at a time with the configured delay
// between them. Per-call failures are recorded in the results and do not
// stop the queue; cancellation does.
func (p *Processor) ProcessQueue(ctx context.Context, calls []types.CallRecord) ([]ProcessResult, error) {
	out := make([]ProcessResult, 0, len(calls))
	metrics.QueueDepth.Set(float64(len(calls)))
	defer metrics.QueueDepth.Set(0)

	for i, rec := range calls {
		if i > 0 && p.delay > 0 {
			t := time.NewTimer(p.delay)
			select {
			case <-ctx.Done():
				t.Stop()
				return out, ctx.Err()
			case <-t.C:
			}
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}

		res, _ := p.ProcessCall(ctx, rec)
		out = append(out, res)
		metrics.QueueDepth.Set(float64(len(calls) - i - 1))
	}
	return out, nil
}

// inputKey hashes the transcript together with the diarization, bundle and
// baseline, leaving out only the call ids.
func inputKey(in pipeline.Input) (string, error) {
	in.CallID = ""
	in.Baseline.CallID = ""
	b, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("encode input: %w", err)
	}
	return cache.Key(string(b)), nil
}

func (p *Processor) analyze(ctx context.Context, in pipeline.Input) types.CallAnalysis {
	if p.bundle != nil && p.bundle.Enabled() && strings.TrimSpace(in.Transcript) != "" {
		b, err := p.bundle.Analyze(ctx, in.Transcript)
		if err != nil {
			p.log.WithField("call_id", in.CallID).WithError(err).Warn("comprehensive analysis unavailable, using heuristics only")
		} else {
			in.Bundle = b
		}
	}

	start := time.Now()
	a := p.pipeline.Analyze(in)
	metrics.AnalysisLatency.Observe(time.Since(start).Seconds())
	metrics.AnalysesTotal.WithLabelValues(string(a.Intent.Primary), string(a.Disposition.Disposition)).Inc()
	metrics.OverallScore.Observe(float64(a.Scoring.OverallScore))
	if a.Conversion.ConversionAchieved {
		metrics.ConversionsTotal.Inc()
	}
	return a
}

func (p *Processor) lookup(ctx context.Context, key string) (types.CallAnalysis, bool) {
	if p.cache == nil {
		return types.CallAnalysis{}, false
	}
	a, err := cache.GetAnalysis(ctx, p.cache, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			p.log.WithError(err).Warn("cache lookup failed")
		}
		return types.CallAnalysis{}, false
	}
	return a, true
}

func (p *Processor) store(ctx context.Context, key string, a types.CallAnalysis) {
	if p.cache == nil {
		return
	}
	if err := cache.SetAnalysis(ctx, p.cache, key, a, p.ttl); err != nil {
		p.log.WithError(err).Warn("cache store failed")
	}
}
