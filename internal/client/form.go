// README: Form adapter; collects the four trip fields and checks them before anything is sent.
package client

import (
	"errors"
	"strings"

	"travelplanner/internal/planner"
)

// MaxDurationDays is the form's advisory upper bound; the service does not enforce it.
const MaxDurationDays = 30

var (
	ErrMissingDestination = errors.New("please enter a destination")
	ErrInvalidDuration    = errors.New("duration must be between 1 and 30 days")
	ErrMissingInterests   = errors.New("please pick at least one interest")
)

// Form holds the raw operator input.
type Form struct {
	Destination string
	Duration    int
	Budget      string
	Interests   []string
}

// Validate returns every failed check joined into one error, or nil.
func (f Form) Validate() error {
	var errs []error
	if strings.TrimSpace(f.Destination) == "" {
		errs = append(errs, ErrMissingDestination)
	}
	if f.Duration < 1 || f.Duration > MaxDurationDays {
		errs = append(errs, ErrInvalidDuration)
	}
	if len(normalizeInterests(f.Interests)) == 0 {
		errs = append(errs, ErrMissingInterests)
	}
	return errors.Join(errs...)
}

// Request converts a validated form into the wire request. Interests are trimmed,
// lower-cased and de-duplicated, keeping their order.
func (f Form) Request() planner.TravelRequest {
	return planner.TravelRequest{
		Destination: strings.TrimSpace(f.Destination),
		Duration:    f.Duration,
		Budget:      strings.TrimSpace(f.Budget),
		Interests:   normalizeInterests(f.Interests),
	}
}

// ParseInterests splits a comma separated list typed by the operator.
func ParseInterests(s string) []string {
	return normalizeInterests(strings.Split(s, ","))
}

func normalizeInterests(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, tag := range in {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
