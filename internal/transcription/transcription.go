// Package transcription sends call recordings to Deepgram and normalizes the
// diarized response.
package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"

	"github.com/rikki233752/blink-script-ai-sub000/internal/logger"
	"github.com/rikki233752/blink-script-ai-sub000/internal/metrics"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// ErrNotConfigured is returned when no API key is set and mock mode is off.
var ErrNotConfigured = errors.New("deepgram api key not configured")

const (
	DefaultURL   = "https://api.deepgram.com/v1/listen"
	DefaultModel = "nova-2"

	defaultTimeout    = 120 * time.Second
	defaultMaxElapsed = 3 * time.Minute
)

// MockTranscript is returned in mock mode.
const MockTranscript = "Agent: Thank you for calling the benefits center, my name is Sarah. How can I help you today?\n" +
	"Customer: Hi, I got a letter about a grocery allowance card and I want to know if I qualify.\n" +
	"Agent: I can check that for you. Are you currently enrolled in a Medicare Advantage plan?\n" +
	"Customer: I have Part D right now.\n" +
	"Agent: You qualify for a $150 grocery allowance card. I'll send you the enrollment packet tomorrow."

type Options struct {
	APIKey     string
	URL        string
	Model      string
	Mock       bool
	Timeout    time.Duration
	MaxElapsed time.Duration
	HTTPClient *http.Client
	Logger     *logger.Logger
}

type Client struct {
	apiKey, endpoint, model string
	mock                    bool
	timeout, maxElapsed     time.Duration
	http                    *http.Client
	breaker                 *gobreaker.CircuitBreaker
	log                     *logger.Logger
}

func New(o Options) *Client {
	c := &Client{
		apiKey:     o.APIKey,
		endpoint:   o.URL,
		model:      o.Model,
		mock:       o.Mock,
		timeout:    o.Timeout,
		maxElapsed: o.MaxElapsed,
		http:       o.HTTPClient,
		log:        o.Logger,
	}
	if c.endpoint == "" {
		c.endpoint = DefaultURL
	}
	if c.model == "" {
		c.model = DefaultModel
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
	c.log = c.log.Component("transcription")

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "deepgram",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.WithField("from", from.String()).WithField("to", to.String()).Warn("circuit breaker state changed")
		},
	})
	return c
}

// Enabled reports whether the client can transcribe.
func (c *Client) Enabled() bool { return c.mock || c.apiKey != "" }

// TranscribeURL asks Deepgram to fetch and transcribe a remote recording.
func (c *Client) TranscribeURL(ctx context.Context, audioURL string) (types.TranscriptionResult, error) {
	if c.mock {
		return mockResult(), nil
	}
	body, err := json.Marshal(map[string]string{"url": audioURL})
	if err != nil {
		return types.TranscriptionResult{}, err
	}
	c.log.WithField("audio_url", audioURL).Info("starting transcription")
	return c.do(ctx, body, "application/json")
}

// TranscribeAudio uploads raw audio bytes.
func (c *Client) TranscribeAudio(ctx context.Context, data []byte, contentType string) (types.TranscriptionResult, error) {
	if c.mock {
		return mockResult(), nil
	}
	if len(data) == 0 {
		return types.TranscriptionResult{}, fmt.Errorf("empty audio")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.log.WithField("bytes", len(data)).Info("uploading audio for transcription")
	return c.do(ctx, data, contentType)
}

func (c *Client) listenURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse deepgram url: %w", err)
	}
	q := u.Query()
	q.Set("model", c.model)
	for _, flag := range []string{"diarize", "punctuate", "utterances", "smart_format", "topics", "intents", "sentiment"} {
		q.Set(flag, "true")
	}
	q.Set("summarize", "v2")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) do(ctx context.Context, payload []byte, contentType string) (types.TranscriptionResult, error) {
	if !c.Enabled() {
		return types.TranscriptionResult{}, ErrNotConfigured
	}
	endpoint, err := c.listenURL()
	if err != nil {
		return types.TranscriptionResult{}, err
	}

	started := time.Now()
	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.post(ctx, endpoint, payload, contentType)
	})
	metrics.ProviderLatency.WithLabelValues("deepgram").Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("deepgram", "error").Inc()
		c.log.WithError(err).Error("transcription failed")
		return types.TranscriptionResult{}, fmt.Errorf("deepgram transcription: %w", err)
	}
	metrics.ProviderRequestsTotal.WithLabelValues("deepgram", "ok").Inc()

	out := res.(types.TranscriptionResult)
	c.log.WithField("request_id", out.RequestID).WithField("utterances", len(out.Utterances)).Info("transcription completed")
	return out, nil
}

// post retries transport errors and 5xx responses; 4xx responses are
// permanent.
func (c *Client) post(ctx context.Context, endpoint string, payload []byte, contentType string) (types.TranscriptionResult, error) {
	var (
		out     types.TranscriptionResult
		lastErr error
	)
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Token "+c.apiKey)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)

		switch {
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("server error: status %d: %s", resp.StatusCode, truncate(body))
			return lastErr
		case resp.StatusCode >= 400:
			lastErr = fmt.Errorf("request rejected: status %d: %s", resp.StatusCode, truncate(body))
			return backoff.Permanent(lastErr)
		}

		out, err = ParseResponse(body)
		if err != nil {
			lastErr = err
			return backoff.Permanent(err)
		}
		lastErr = nil
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.maxElapsed
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if lastErr != nil {
			return out, lastErr
		}
		return out, err
	}
	return out, nil
}

func truncate(b []byte) string {
	const limit = 256
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}

func mockResult() types.TranscriptionResult {
	return types.TranscriptionResult{
		RequestID:  "mock",
		Transcript: MockTranscript,
		Confidence: 0.99,
	}
}
