package planner

import (
	"fmt"
	"strings"
)

// BuildPrompt composes the instruction sent to the provider. It embeds all four request
// fields and pins the reply to a JSON object with exactly "itinerary" and "locations".
func BuildPrompt(req TravelRequest) string {
	interests := strings.Join(req.Interests, ", ")
	if strings.TrimSpace(interests) == "" {
		interests = "general sightseeing"
	}

	return fmt.Sprintf(`Role: You are an expert travel planner.

Trip:
- Destination: %s
- Duration: %d days
- Budget: %s
- Interests: %s

TASKS:
1. Write a detailed day-by-day itinerary for the whole trip (Day 1 to Day %d).
   Use markdown formatting: a heading per day, bullet points for morning, afternoon and evening.
   Match the suggestions to the budget and the interests above.
2. List the landmarks, attractions and restaurants you mention in the itinerary.
   For each one give its name and its latitude and longitude in decimal degrees.

OUTPUT FORMAT (STRICT):
Return ONLY one well-formed JSON object, with no explanation and no code fences.
The object MUST have exactly two top-level keys:
{
  "itinerary": "string (the markdown itinerary)",
  "locations": [
    {"name": "string", "latitude": number, "longitude": number}
  ]
}
`, req.Destination, req.Duration, req.Budget, interests, req.Duration)
}
