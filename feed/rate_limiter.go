package feed

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimited wraps a Fetcher so that outbound requests respect a rate limit.
type RateLimited struct {
	fetcher Fetcher
	limiter *rate.Limiter
}

var _ Fetcher = (*RateLimited)(nil)

// NewRateLimited creates a rate limited fetcher. rps is the maximum requests
// per second (may be fractional), burst the maximum burst size.
func NewRateLimited(fetcher Fetcher, rps float64, burst int) *RateLimited {
	return &RateLimited{
		fetcher: fetcher,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Fetch waits for the limiter and forwards to the wrapped fetcher. A cancelled
// wait is reported as a TransportError since no request was sent.
func (r *RateLimited) Fetch(ctx context.Context, endpoint string, out interface{}) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("rate limit wait canceled: %w", err)}
	}
	return r.fetcher.Fetch(ctx, endpoint, out)
}
