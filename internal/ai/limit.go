package ai

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// limitedGenerator waits on a token bucket before each provider call.
type limitedGenerator struct {
	next    Generator
	limiter *rate.Limiter
}

// WithRateLimit caps outbound calls to rps per second with the given burst.
// A non-positive rps returns next unchanged. A request whose context ends while
// waiting for a token fails without reaching the provider.
func WithRateLimit(next Generator, rps float64, burst int) Generator {
	if rps <= 0 {
		return next
	}
	if burst < 1 {
		burst = 1
	}
	return &limitedGenerator{next: next, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (g *limitedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return g.next.Generate(ctx, prompt)
}
