package plugins

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// NewLimiter builds the token-bucket limiter shared by a live client's
// outbound calls. rps may be fractional for slower than one request per
// second.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// WaitLimiter blocks until the limiter admits a call or the context ends.
// A nil limiter admits immediately so mocks skip limiting entirely.
func WaitLimiter(ctx context.Context, limiter *rate.Limiter) error {
	if limiter == nil {
		return nil
	}
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return nil
}
