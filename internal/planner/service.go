// README: Planner service validates a travel request, calls the text provider once and
// shapes its reply into an itinerary plus locations.
package planner

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"travelplanner/internal/ai"
)

// Recorder receives one entry per provider attempt. Implementations must not
// influence the outcome of the request.
type Recorder interface {
	Record(ctx context.Context, a Attempt) error
}

// Attempt summarises one request that reached the provider.
type Attempt struct {
	Request TravelRequest
	Outcome string
	Detail  string
	Latency time.Duration
}

const (
	OutcomeSuccess  = "success"
	OutcomeUpstream = "upstream_failure"
)

const recordTimeout = 3 * time.Second

// Service orchestrates prompt construction, the provider call and reply parsing.
type Service struct {
	generator ai.Generator
	recorder  Recorder
}

// NewService creates a Service. recorder may be nil.
func NewService(generator ai.Generator, recorder Recorder) *Service {
	return &Service{generator: generator, recorder: recorder}
}

// Validate checks the request rules the service enforces itself.
func Validate(req TravelRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if req.Duration <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of days", ErrInvalidRequest)
	}
	return nil
}

// GeneratePlan validates req, makes exactly one provider call and returns the parsed plan.
// Validation failures return ErrInvalidRequest without contacting the provider; every
// later failure is returned as *UpstreamError.
func (s *Service) GeneratePlan(ctx context.Context, req TravelRequest) (*ParsedPlan, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	start := time.Now()
	plan, err := s.generate(ctx, req)
	s.record(ctx, req, err, time.Since(start))
	if err != nil {
		log.Printf("plan generation failed: destination=%q duration=%d: %v", req.Destination, req.Duration, err)
		return nil, err
	}
	return plan, nil
}

func (s *Service) generate(ctx context.Context, req TravelRequest) (*ParsedPlan, error) {
	reply, err := s.generator.Generate(ctx, BuildPrompt(req))
	if err != nil {
		return nil, &UpstreamError{Cause: err}
	}
	if strings.TrimSpace(reply) == "" {
		return nil, &UpstreamError{Cause: ai.ErrEmptyReply}
	}

	plan, err := ParsePlan(reply)
	if err != nil {
		return nil, &UpstreamError{Cause: err}
	}
	return plan, nil
}

func (s *Service) record(ctx context.Context, req TravelRequest, err error, latency time.Duration) {
	if s.recorder == nil {
		return
	}
	a := Attempt{Request: req, Outcome: OutcomeSuccess, Latency: latency}
	if err != nil {
		a.Outcome = OutcomeUpstream
		a.Detail = err.Error()
	}

	recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	if err := s.recorder.Record(recCtx, a); err != nil {
		log.Printf("journal write failed: %v", err)
	}
}
