package client

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"travelplanner/internal/maps"
)

// Render writes the user-facing view of o.
func Render(w io.Writer, o Outcome) error {
	var b strings.Builder
	switch o.Kind {
	case OutcomeSuccess:
		b.WriteString("Here is your travel plan!\n\n")
		if o.Plan != nil {
			b.WriteString(strings.TrimSpace(o.Plan.Itinerary))
			b.WriteString("\n")
			if len(o.Plan.Locations) > 0 {
				b.WriteString("\nMap markers:\n")
				for i, loc := range o.Plan.Locations {
					label := maps.MarkerLabel(i)
					if label == "" {
						label = "-"
					}
					fmt.Fprintf(&b, "  [%s] %s (%.4f, %.4f)\n", label, loc.Name, loc.Latitude, loc.Longitude)
				}
				if len(o.Plan.Locations) > 1 {
					fmt.Fprintf(&b, "\nDistance between stops: ~%.1f km\n", o.Plan.RouteKm())
				}
			}
		}
	case OutcomeHTTPError:
		fmt.Fprintf(&b, "Error: could not generate itinerary. Status code: %d\n", o.StatusCode)
		if body := strings.TrimSpace(o.Body); body != "" {
			b.WriteString(body)
			b.WriteString("\n")
		}
	case OutcomeUnreachable:
		b.WriteString("Connection error: could not reach the planner service. Is the API server running?\n")
	case OutcomeTimeout:
		b.WriteString("Timeout: the planner service took too long to answer. Please try again.\n")
	default:
		fmt.Fprintf(&b, "An unexpected error occurred: %v\n", o.Err)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderWarning writes one line per failed form check.
func RenderWarning(w io.Writer, err error) error {
	var lines []string
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			lines = append(lines, "Warning: "+e.Error())
		}
	} else if err != nil {
		lines = append(lines, "Warning: "+err.Error())
	}
	if len(lines) == 0 {
		return errors.New("no warning to render")
	}
	_, werr := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return werr
}
