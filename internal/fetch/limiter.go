package fetch

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter enforces the fair-use inter-request delay. Each key (one per
// content stream) gets its own token bucket, so parallel streams keep
// independent delays while neither can burst.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval rate.Limit
}

// NewLimiter creates a limiter that admits one request per minInterval for
// each key. A non-positive interval disables limiting (used in tests).
func NewLimiter(minInterval rate.Limit) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		interval: minInterval,
	}
}

// Wait blocks until the key's next request slot. The delay applies to every
// request including the first one for a key: new buckets start empty.
func (l *Limiter) Wait(ctx context.Context, key string) error {
	return l.get(key).Wait(ctx)
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters[key]; ok {
		return lim
	}

	lim := rate.NewLimiter(l.interval, 1)
	if l.interval != rate.Inf {
		// Drain the initial token so even the first request observes
		// the mandatory delay.
		lim.Allow()
	}
	l.limiters[key] = lim
	return lim
}
