package planner

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"travelplanner/internal/ai"
)

// stubGenerator is a test double for ai.Generator that counts calls.
type stubGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	calls   int
	prompts []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

// stubRecorder captures journal entries.
type stubRecorder struct {
	attempts []Attempt
	err      error
}

func (r *stubRecorder) Record(_ context.Context, a Attempt) error {
	r.attempts = append(r.attempts, a)
	return r.err
}

func kyotoRequest() TravelRequest {
	return TravelRequest{
		Destination: "Kyoto, Japan",
		Duration:    3,
		Budget:      "Budget-friendly",
		Interests:   []string{"history", "food"},
	}
}

func TestGeneratePlan_SingleProviderCall(t *testing.T) {
	gen := &stubGenerator{reply: kyotoReply}
	svc := NewService(gen, nil)

	plan, err := svc.GeneratePlan(context.Background(), kyotoRequest())
	if err != nil {
		t.Fatalf("GeneratePlan() error = %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected exactly 1 provider call, got %d", gen.calls)
	}
	if !strings.Contains(gen.prompts[0], "Kyoto, Japan") {
		t.Errorf("prompt does not mention destination")
	}
	if plan.Plan.Locations[0].Latitude != 34.9671 || plan.Plan.Locations[0].Longitude != 135.7727 {
		t.Errorf("unexpected coordinates: %+v", plan.Plan.Locations[0])
	}
}

func TestGeneratePlan_RejectsBeforeProviderCall(t *testing.T) {
	tests := []struct {
		name string
		req  TravelRequest
	}{
		{name: "zero duration", req: TravelRequest{Destination: "Rome", Duration: 0, Budget: "Moderate"}},
		{name: "negative duration", req: TravelRequest{Destination: "Rome", Duration: -2, Budget: "Moderate"}},
		{name: "blank destination", req: TravelRequest{Destination: "  ", Duration: 2, Budget: "Moderate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{reply: kyotoReply}
			rec := &stubRecorder{}
			svc := NewService(gen, rec)

			_, err := svc.GeneratePlan(context.Background(), tt.req)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
			if gen.calls != 0 {
				t.Errorf("expected no provider call, got %d", gen.calls)
			}
			if len(rec.attempts) != 0 {
				t.Errorf("expected no journal entry, got %d", len(rec.attempts))
			}
		})
	}
}

func TestGeneratePlan_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name     string
		gen      *stubGenerator
		wantIs   error
		wantText string
	}{
		{name: "empty reply", gen: &stubGenerator{reply: ""}, wantIs: ai.ErrEmptyReply},
		{name: "whitespace reply", gen: &stubGenerator{reply: " \n "}, wantIs: ai.ErrEmptyReply},
		{name: "blocked", gen: &stubGenerator{err: ai.ErrBlocked}, wantIs: ai.ErrBlocked},
		{name: "provider error", gen: &stubGenerator{err: errors.New("quota exceeded")}, wantText: "quota exceeded"},
		{name: "invalid json", gen: &stubGenerator{reply: `{"itinerary": `}, wantText: "unexpected end of JSON input"},
		{name: "missing key", gen: &stubGenerator{reply: `{"itinerary": "x"}`}, wantText: "locations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.gen, nil)
			_, err := svc.GeneratePlan(context.Background(), kyotoRequest())

			var upstream *UpstreamError
			if !errors.As(err, &upstream) {
				t.Fatalf("expected *UpstreamError, got %T (%v)", err, err)
			}
			if upstream.StatusCode() != http.StatusServiceUnavailable {
				t.Errorf("expected 503, got %d", upstream.StatusCode())
			}
			if upstream.Detail() == "" {
				t.Error("expected non-empty detail")
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("expected %v in chain, got %v", tt.wantIs, err)
			}
			if tt.wantText != "" && !strings.Contains(upstream.Detail(), tt.wantText) {
				t.Errorf("detail %q does not contain %q", upstream.Detail(), tt.wantText)
			}
			if tt.gen.calls != 1 {
				t.Errorf("expected exactly 1 provider call, got %d", tt.gen.calls)
			}
		})
	}
}

func TestGeneratePlan_RecordsAttempts(t *testing.T) {
	rec := &stubRecorder{}
	svc := NewService(&stubGenerator{reply: kyotoReply}, rec)
	if _, err := svc.GeneratePlan(context.Background(), kyotoRequest()); err != nil {
		t.Fatalf("GeneratePlan() error = %v", err)
	}

	svc = NewService(&stubGenerator{reply: "not json"}, rec)
	if _, err := svc.GeneratePlan(context.Background(), kyotoRequest()); err == nil {
		t.Fatal("expected error")
	}

	if len(rec.attempts) != 2 {
		t.Fatalf("expected 2 journal entries, got %d", len(rec.attempts))
	}
	if rec.attempts[0].Outcome != OutcomeSuccess || rec.attempts[0].Detail != "" {
		t.Errorf("unexpected first entry: %+v", rec.attempts[0])
	}
	if rec.attempts[1].Outcome != OutcomeUpstream || rec.attempts[1].Detail == "" {
		t.Errorf("unexpected second entry: %+v", rec.attempts[1])
	}
}

func TestGeneratePlan_RecorderErrorDoesNotFailRequest(t *testing.T) {
	rec := &stubRecorder{err: errors.New("db down")}
	svc := NewService(&stubGenerator{reply: kyotoReply}, rec)
	if _, err := svc.GeneratePlan(context.Background(), kyotoRequest()); err != nil {
		t.Fatalf("expected success despite recorder error, got %v", err)
	}
}
