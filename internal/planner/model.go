// README: Request/response shapes exchanged between the form client and the planner API.
package planner

// TravelRequest is the body of POST /generate-travel-plan.
type TravelRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Duration    int      `json:"duration" binding:"required,gt=0"`
	Budget      string   `json:"budget" binding:"required"`
	Interests   []string `json:"interests" binding:"required"`
}

// Location is a named point mentioned in the itinerary.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TravelPlan is the decoded form of a successful reply.
type TravelPlan struct {
	Itinerary string     `json:"itinerary"`
	Locations []Location `json:"locations"`
}

// Budget tiers offered by the form. The service treats budget as opaque text.
var BudgetTiers = []string{"Budget-friendly", "Moderate", "Luxury"}
