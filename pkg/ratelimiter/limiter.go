package ratelimiter

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Config is the env-tagged bucket shape shared by every key.
type Config struct {
	Burst    int           `env:"RATE_LIMIT_BURST" envDefault:"30"`
	Refill   int           `env:"RATE_LIMIT_REFILL" envDefault:"30"`
	Interval time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"1m"`
	// IdleTTL is how long an untouched bucket survives a sweep.
	IdleTTL time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"1h"`
}

func (c Config) validate() error {
	switch {
	case c.Burst <= 0:
		return fmt.Errorf("%w: burst must be positive, got %d", ErrInvalidConfig, c.Burst)
	case c.Refill <= 0:
		return fmt.Errorf("%w: refill must be positive, got %d", ErrInvalidConfig, c.Refill)
	case c.Interval <= 0:
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalidConfig, c.Interval)
	}
	return nil
}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter is the wait until the next refill, zero when allowed.
func (d Decision) RetryAfter(now time.Time) time.Duration {
	if d.Allowed {
		return 0
	}
	return max(d.ResetAt.Sub(now), 0)
}

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastSeen   time.Time
}

// Limiter is safe for concurrent use.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

func New(cfg Config, opts ...Option) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = time.Hour
	}
	l := &Limiter{cfg: cfg, now: time.Now, buckets: make(map[string]*bucket)}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Now is the limiter's clock.
func (l *Limiter) Now() time.Time {
	return l.now()
}

// Allow spends one token of key's bucket. Rejected calls spend nothing.
func (l *Limiter) Allow(key string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.cfg.Burst, lastRefill: now}
		l.buckets[key] = b
	}
	b.lastSeen = now

	if intervals := int64(now.Sub(b.lastRefill) / l.cfg.Interval); intervals > 0 {
		// Cap before multiplying so a long idle period cannot overflow.
		intervals = min(intervals, int64(l.cfg.Burst/l.cfg.Refill+1))
		b.tokens = min(b.tokens+int(intervals)*l.cfg.Refill, l.cfg.Burst)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * l.cfg.Interval)
		if now.Sub(b.lastRefill) >= l.cfg.Interval {
			b.lastRefill = now
		}
	}

	d := Decision{Limit: l.cfg.Burst, ResetAt: b.lastRefill.Add(l.cfg.Interval)}
	if b.tokens > 0 {
		b.tokens--
		d.Allowed = true
	}
	d.Remaining = b.tokens
	return d
}

// Reset forgets key's bucket.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	delete(l.buckets, key)
	l.mu.Unlock()
}

// Sweep drops buckets idle for longer than IdleTTL and reports how many
// were removed.
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now, removed := l.now(), 0
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.cfg.IdleTTL {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// Len is the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Run sweeps every interval until ctx is done.
func (l *Limiter) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = 5 * time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}
