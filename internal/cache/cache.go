// Package cache stores finished call analyses keyed by transcript hash.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rikki233752/blink-script-ai-sub000/internal/metrics"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Key returns the cache key for a transcript or recording reference.
func Key(s string) string {
	sum := sha256.Sum256([]byte(s))
	return "analysis:" + hex.EncodeToString(sum[:])
}

// GetAnalysis decodes a cached analysis.
func GetAnalysis(ctx context.Context, c Cache, key string) (types.CallAnalysis, error) {
	var a types.CallAnalysis
	raw, err := c.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrMiss) {
			metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		} else {
			metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		}
		return a, err
	}
	if err := json.Unmarshal(raw, &a); err != nil {
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		return a, fmt.Errorf("decode cached analysis: %w", err)
	}
	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return a, nil
}

// SetAnalysis stores a as JSON.
func SetAnalysis(ctx context.Context, c Cache, key string, a types.CallAnalysis, ttl time.Duration) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	return c.Set(ctx, key, raw, ttl)
}
