// Package comprehensive calls an OpenAI-compatible gateway for a structured
// whole-call analysis bundle.
package comprehensive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/rikki233752/blink-script-ai-sub000/internal/logger"
	"github.com/rikki233752/blink-script-ai-sub000/internal/metrics"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// ErrNotConfigured is returned when no gateway URL or key is set and mock
// mode is off.
var ErrNotConfigured = errors.New("llm gateway not configured")

const (
	defaultTimeout    = 25 * time.Second
	defaultMaxElapsed = 45 * time.Second
)

type Options struct {
	GatewayURL string
	APIKey     string
	Model      string
	// Mock returns a deterministic bundle without any network call.
	Mock       bool
	Timeout    time.Duration
	MaxElapsed time.Duration
	HTTPClient *http.Client
	Logger     *logger.Logger
}

type Client struct {
	url, apiKey, model string
	mock               bool
	timeout            time.Duration
	maxElapsed         time.Duration
	http               *http.Client
	log                *logger.Logger
}

func New(o Options) *Client {
	c := &Client{
		url:        o.GatewayURL,
		apiKey:     o.APIKey,
		model:      o.Model,
		mock:       o.Mock,
		timeout:    o.Timeout,
		maxElapsed: o.MaxElapsed,
		http:       o.HTTPClient,
		log:        o.Logger,
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.maxElapsed <= 0 {
		c.maxElapsed = defaultMaxElapsed
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	if c.log == nil {
		c.log = logger.New()
	}
	c.log = c.log.Component("comprehensive")
	return c
}

// Enabled reports whether Analyze can produce a bundle.
func (c *Client) Enabled() bool {
	return c.mock || (c.url != "" && c.apiKey != "")
}

// Analyze sends one transcript and returns the parsed bundle. 4xx responses
// are not retried.
func (c *Client) Analyze(ctx context.Context, transcript string) (*types.ComprehensiveAnalysis, error) {
	if c.mock {
		c.log.Info("mock LLM mode ON - returning deterministic bundle")
		return mockBundle(), nil
	}
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, fmt.Errorf("empty transcript")
	}

	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": BuildPrompt(transcript)},
		},
		"temperature": 0.0,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}
	c.log.WithField("payload_len", len(data)).Debug("llm request")

	var (
		out     types.ComprehensiveAnalysis
		lastErr error
		started = time.Now()
	)

	op := func() error {
		actx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(actx, http.MethodPost, c.url, bytes.NewReader(data))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			c.log.WithError(err).Warn("llm request failed")
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		c.log.WithField("http_status", resp.StatusCode).Debug("llm raw:\n" + string(body))

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			lastErr = fmt.Errorf("llm client error: status %d", resp.StatusCode)
			return backoff.Permanent(lastErr)
		}
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("llm server error: status %d", resp.StatusCode)
			return lastErr
		}

		if inner := extractContentFromChoices(body); inner != "" {
			if err := json.Unmarshal([]byte(inner), &out); err == nil {
				lastErr = nil
				return nil
			}
		}
		if fallback := extractJSON(string(body)); fallback != "" {
			if err := json.Unmarshal([]byte(fallback), &out); err == nil {
				lastErr = nil
				return nil
			}
		}
		lastErr = fmt.Errorf("no JSON found in LLM output")
		return lastErr
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.maxElapsed

	err = backoff.Retry(op, backoff.WithContext(b, ctx))
	metrics.ProviderLatency.WithLabelValues("llm").Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("llm", "error").Inc()
		if lastErr == nil {
			lastErr = err
		}
		return nil, fmt.Errorf("llm analysis failed: %w", lastErr)
	}
	metrics.ProviderRequestsTotal.WithLabelValues("llm", "ok").Inc()

	normalize(&out)
	c.log.WithField("primary_intent", out.Intent.Primary).Info("parsed comprehensive analysis")
	return &out, nil
}

// normalize upper-cases enum values and clamps numeric ranges.
func normalize(b *types.ComprehensiveAnalysis) {
	b.Intent.Primary = strings.ToUpper(strings.TrimSpace(b.Intent.Primary))
	b.Disposition.Value = strings.ToUpper(strings.TrimSpace(b.Disposition.Value))
	b.Sentiment.Overall = strings.ToLower(strings.TrimSpace(b.Sentiment.Overall))
	b.Sentiment.Score = clamp(b.Sentiment.Score, -1, 1)
	b.Quality.OverallScore = clamp(b.Quality.OverallScore, 0, 100)
	b.Intent.Confidence = clamp(b.Intent.Confidence, 0, 100)
	b.Disposition.Confidence = clamp(b.Disposition.Confidence, 0, 100)
	b.Business.Confidence = clamp(b.Business.Confidence, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return min(hi, max(lo, v))
}

func mockBundle() *types.ComprehensiveAnalysis {
	return &types.ComprehensiveAnalysis{
		Intent:      types.BundleIntent{Primary: "SALES", TopIntent: "Enroll in plan", Confidence: 0.86},
		Disposition: types.BundleDisposition{Value: "FOLLOW_UP", Confidence: 0.7},
		Facts: []string{
			"Customer already has Medicare Part D coverage",
			"Agent explained the grocery allowance card benefit",
		},
		Sentiment: types.BundleSentiment{Overall: "neutral", Score: 0.1},
		Quality:   types.BundleQuality{OverallScore: 72},
		Business:  types.BundleBusiness{ConversionAchieved: false, Confidence: 0.55},
	}
}
