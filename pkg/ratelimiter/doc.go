// Package ratelimiter throttles clients with in-memory token buckets.
//
// Every key (usually a client address) owns a bucket of Config.Burst tokens
// that refills by Config.Refill tokens each Config.Interval. A request
// spends one token; an empty bucket rejects it until the next refill.
//
//	l, err := ratelimiter.New(ratelimiter.Config{Burst: 20, Refill: 10, Interval: time.Minute})
//	go l.Run(ctx, 5*time.Minute)   // evict idle buckets until ctx is done
//	r.With(ratelimiter.Middleware(l, keyFn, onLimited)).Post("/submit", h)
//
// Buckets live in process memory, so limits apply per instance.
package ratelimiter
