package services

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces consecutive calls to the routing provider. Pacing must
// never be removed entirely in production wiring: the provider enforces a
// rate limit and sequential matrix passes can issue dozens of calls.
type Pacer interface {
	Wait(ctx context.Context) error
}

// LimiterPacer paces with a token bucket, which keeps the average call
// rate at or below one call per interval without sleeping when the bucket
// has headroom.
type LimiterPacer struct {
	limiter *rate.Limiter
}

func NewLimiterPacer(interval time.Duration) *LimiterPacer {
	return &LimiterPacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (p *LimiterPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// NopPacer never waits. For tests.
type NopPacer struct{}

func (NopPacer) Wait(ctx context.Context) error { return ctx.Err() }
