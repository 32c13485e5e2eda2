package ai

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingGenerator struct{ calls int }

func (g *countingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	return "ok", nil
}

func TestWithRateLimit_DisabledReturnsNext(t *testing.T) {
	next := &countingGenerator{}
	if got := WithRateLimit(next, 0, 5); got != Generator(next) {
		t.Fatalf("expected the wrapped generator to be returned unchanged")
	}
}

func TestWithRateLimit_WaitAbortedSkipsProvider(t *testing.T) {
	next := &countingGenerator{}
	g := WithRateLimit(next, 0.01, 1)

	if _, err := g.Generate(context.Background(), "first"); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := g.Generate(ctx, "second")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if next.calls != 1 {
		t.Errorf("provider calls = %d, want 1", next.calls)
	}
}
