package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rikki233752/blink-script-ai-sub000/internal/logger"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && e.expiresAt.Before(now)
}

// LocalCache is the in-memory fallback used when no Redis URL is set.
type LocalCache struct {
	mu     sync.RWMutex
	data   map[string]entry
	log    *logger.Logger
	stopCh chan struct{}
	once   sync.Once
	now    func() time.Time
}

// NewLocalCache starts a cache that sweeps expired entries every
// cleanupInterval.
func NewLocalCache(cleanupInterval time.Duration, log *logger.Logger) *LocalCache {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	c := &LocalCache{
		data:   make(map[string]entry),
		log:    log,
		stopCh: make(chan struct{}),
		now:    time.Now,
	}
	go c.cleanupLoop(cleanupInterval)
	return c
}

func (c *LocalCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[key]
	if !ok || e.expired(c.now()) {
		return nil, ErrMiss
	}
	return append([]byte(nil), e.value...), nil
}

func (c *LocalCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.data[key] = e
	return nil
}

func (c *LocalCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *LocalCache) Ping(context.Context) error { return nil }

func (c *LocalCache) Close() error {
	c.once.Do(func() { close(c.stopCh) })
	return nil
}

func (c *LocalCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *LocalCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	expired := 0
	for key, e := range c.data {
		if e.expired(now) {
			delete(c.data, key)
			expired++
		}
	}
	if expired > 0 && c.log != nil {
		c.log.WithField("expired_entries", expired).Debug("cache cleanup completed")
	}
}
