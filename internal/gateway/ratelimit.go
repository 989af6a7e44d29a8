package gateway

import (
	"context"

	"golang.org/x/time/rate"
)

// ProactiveRate caps outbound request throughput. The marketplace does not
// publish quota headers, so throttling is purely proactive.
const ProactiveRate = 5.0

// RateLimiter throttles gateway requests.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}
