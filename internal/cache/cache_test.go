package cache

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rikki233752/blink-script-ai-sub000/internal/logger"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

func TestKey(t *testing.T) {
	k := Key("Agent: Hello.")
	if !strings.HasPrefix(k, "analysis:") || len(k) != len("analysis:")+64 {
		t.Errorf("key = %q", k)
	}
	if Key("Agent: Hello.") != k || Key("Agent: Hi.") == k {
		t.Error("key is not a stable content hash")
	}
}

func TestLocalCache(t *testing.T) {
	c := NewLocalCache(time.Hour, logger.NewWithOutput(io.Discard))
	defer c.Close()
	ctx := context.Background()

	now := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if _, err := c.Get(ctx, "missing"); !errors.Is(err, ErrMiss) {
		t.Errorf("missing key err = %v", err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	got, err := c.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Errorf("get = %q %v", got, err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Errorf("expired key err = %v", err)
	}
	c.cleanup()
	if len(c.data) != 0 {
		t.Errorf("cleanup left %d entries", len(c.data))
	}

	_ = c.Set(ctx, "forever", []byte("x"), 0)
	_ = c.Delete(ctx, "forever")
	if _, err := c.Get(ctx, "forever"); !errors.Is(err, ErrMiss) {
		t.Errorf("deleted key err = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second close = %v", err)
	}
}

func TestAnalysisRoundTrip(t *testing.T) {
	c := NewLocalCache(time.Hour, nil)
	defer c.Close()
	ctx := context.Background()

	key := Key("transcript")
	if _, err := GetAnalysis(ctx, c, key); !errors.Is(err, ErrMiss) {
		t.Fatalf("err = %v", err)
	}
	in := types.CallAnalysis{ID: "a-1", CallID: "c-1", Intent: types.IntentAnalysis{Primary: types.IntentSales, Confidence: 90}}
	if err := SetAnalysis(ctx, c, key, in, time.Minute); err != nil {
		t.Fatal(err)
	}
	out, err := GetAnalysis(ctx, c, key)
	if err != nil {
		t.Fatal(err)
	}
	if out.ID != "a-1" || out.Intent.Primary != types.IntentSales {
		t.Errorf("out = %+v", out)
	}

	_ = c.Set(ctx, "bad", []byte("{"), 0)
	if _, err := GetAnalysis(ctx, c, "bad"); err == nil || errors.Is(err, ErrMiss) {
		t.Errorf("corrupt entry err = %v", err)
	}
}

func TestNewRedisCache_BadURL(t *testing.T) {
	if _, err := NewRedisCache("not a url", logger.NewWithOutput(io.Discard)); err == nil {
		t.Error("expected parse error")
	}
}
