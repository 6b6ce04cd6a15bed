// Package recording downloads call recordings, trying a fixed list of
// strategies one after another.
package recording

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rikki233752/blink-script-ai-sub000/internal/logger"
	"github.com/rikki233752/blink-script-ai-sub000/internal/metrics"
)

// ErrAllStrategiesFailed wraps the per-strategy errors when no strategy
// produced a recording.
var ErrAllStrategiesFailed = errors.New("all download strategies failed")

const (
	StrategyDirect        = "direct"
	StrategyRedirectChase = "redirect-chase"
	StrategyAuthenticated = "authenticated"
	StrategyProviderFetch = "provider-fetch"

	maxRedirectHops = 10
	maxAudioBytes   = 200 << 20

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// Result is a fetched recording. Data is empty for provider-fetch, in which
// case URL is what the transcription provider should download.
type Result struct {
	Strategy    string
	URL         string
	Data        []byte
	ContentType string
}

// Remote reports whether the bytes still have to be fetched by the provider.
func (r Result) Remote() bool { return len(r.Data) == 0 }

type Options struct {
	// Token is sent as "Authorization: Token <token>" by the authenticated
	// strategy, which is skipped when empty.
	Token string
	// Timeouts overrides the per-strategy timeouts by strategy name.
	Timeouts map[string]time.Duration
	// DisableProviderFetch drops the last strategy, so Fetch fails unless
	// bytes were downloaded.
	DisableProviderFetch bool
	Transport            http.RoundTripper
	Logger               *logger.Logger
}

type strategy struct {
	name    string
	timeout time.Duration
	fetch   func(ctx context.Context, a *attempt) (Result, error)
}

// attempt is the state shared by the strategies of one Fetch call.
type attempt struct {
	target string
	// resolved is the last URL reached by the redirect chase.
	resolved string
}

type Downloader struct {
	token      string
	transport  http.RoundTripper
	strategies []strategy
	log        *logger.Logger
}

func New(o Options) *Downloader {
	d := &Downloader{token: o.Token, transport: o.Transport, log: o.Logger}
	if d.transport == nil {
		d.transport = http.DefaultTransport
	}
	if d.log == nil {
		d.log = logger.New()
	}
	d.log = d.log.Component("recording")

	d.strategies = []strategy{
		{StrategyDirect, 45 * time.Second, d.direct},
		{StrategyRedirectChase, 90 * time.Second, d.redirectChase},
		{StrategyAuthenticated, 180 * time.Second, d.authenticated},
	}
	if !o.DisableProviderFetch {
		d.strategies = append(d.strategies, strategy{StrategyProviderFetch, 5 * time.Second, d.providerFetch})
	}
	for i, s := range d.strategies {
		if t, ok := o.Timeouts[s.name]; ok && t > 0 {
			d.strategies[i].timeout = t
		}
	}
	return d
}

// Fetch runs the strategies in order and returns the first success. Each
// attempt gets its own timeout.
func (d *Downloader) Fetch(ctx context.Context, rawURL string) (Result, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Result{}, fmt.Errorf("invalid recording url %q", rawURL)
	}
	a := &attempt{target: u.String(), resolved: u.String()}

	var errs []error
	for _, s := range d.strategies {
		if s.name == StrategyAuthenticated && d.token == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		log := d.log.WithField("strategy", s.name).WithField("url", a.target)
		actx, cancel := context.WithTimeout(ctx, s.timeout)
		res, err := s.fetch(actx, a)
		cancel()
		if err != nil {
			metrics.DownloadsTotal.WithLabelValues(s.name, "error").Inc()
			log.WithField("error", err.Error()).Warn("download strategy failed")
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
			continue
		}
		metrics.DownloadsTotal.WithLabelValues(s.name, "ok").Inc()
		res.Strategy = s.name
		log.WithField("bytes", len(res.Data)).Info("recording fetched")
		return res, nil
	}
	return Result{}, fmt.Errorf("%w: %w", ErrAllStrategiesFailed, errors.Join(errs...))
}

func (d *Downloader) direct(ctx context.Context, a *attempt) (Result, error) {
	client := &http.Client{Transport: d.transport}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.target, nil)
	if err != nil {
		return Result{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()
	return readAudio(resp)
}

func (d *Downloader) redirectChase(ctx context.Context, a *attempt) (Result, error) {
	client := &http.Client{
		Transport: d.transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	current := a.target
	for hop := 0; hop <= maxRedirectHops; hop++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, current, nil)
		if err != nil {
			return Result{}, err
		}
		req.Header.Set("User-Agent", browserUserAgent)
		req.Header.Set("Accept", "audio/*,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := client.Do(req)
		if err != nil {
			return Result{}, err
		}
		if resp.StatusCode >= 300 && resp.StatusCode < 400 {
			loc := resp.Header.Get("Location")
			resp.Body.Close()
			if loc == "" {
				return Result{}, fmt.Errorf("redirect without location")
			}
			next, err := req.URL.Parse(loc)
			if err != nil {
				return Result{}, fmt.Errorf("bad redirect location %q: %w", loc, err)
			}
			current = next.String()
			a.resolved = current
			continue
		}
		res, err := readAudio(resp)
		resp.Body.Close()
		res.URL = current
		return res, err
	}
	return Result{}, fmt.Errorf("more than %d redirects", maxRedirectHops)
}

func (d *Downloader) authenticated(ctx context.Context, a *attempt) (Result, error) {
	client := &http.Client{Transport: d.transport}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.target, nil)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Authorization", "Token "+d.token)
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()
	return readAudio(resp)
}

func (d *Downloader) providerFetch(ctx context.Context, a *attempt) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{URL: a.resolved}, nil
}

func readAudio(resp *http.Response) (Result, error) {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	ct := resp.Header.Get("Content-Type")
	if !audioContentType(ct) {
		return Result{}, fmt.Errorf("not an audio response: %q", ct)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return Result{}, err
	}
	if len(data) == 0 {
		return Result{}, fmt.Errorf("empty body")
	}
	return Result{URL: resp.Request.URL.String(), Data: data, ContentType: ct}, nil
}

// audioContentType accepts audio/*, video/* and generic binary types.
// Text and JSON bodies are error or login pages.
func audioContentType(ct string) bool {
	if ct == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	switch {
	case strings.HasPrefix(mt, "audio/"), strings.HasPrefix(mt, "video/"):
		return true
	case mt == "application/octet-stream", mt == "binary/octet-stream", mt == "application/ogg":
		return true
	}
	return false
}
