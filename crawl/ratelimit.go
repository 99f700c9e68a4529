package crawl

import (
	"context"

	"github.com/fwojciec/docdex"
	"golang.org/x/time/rate"
)

// Ensure DomainLimiter implements docdex.DomainLimiter at compile time.
var _ docdex.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter with a burst of 1, so consecutive
// requests to the same host are spaced out while a new host can be hit
// immediately. Like the Frontier, it is not safe for concurrent use; the
// crawler is sequential.
type DomainLimiter struct {
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests
// per second limit per domain.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	return limiter.Wait(ctx)
}
