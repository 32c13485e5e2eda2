// README: Travel plan handlers (welcome probe + plan generation).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/planner"
)

const welcomeMessage = "Welcome to the AI Travel Planner API"

type PlanHandler struct {
	planner         *planner.Service
	providerTimeout time.Duration
}

// NewPlanHandler wires the planner service. providerTimeout bounds each provider call;
// zero leaves it unbounded.
func NewPlanHandler(svc *planner.Service, providerTimeout time.Duration) *PlanHandler {
	return &PlanHandler{planner: svc, providerTimeout: providerTimeout}
}

// Welcome handles GET /.
func (h *PlanHandler) Welcome(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"message": welcomeMessage})
}

// Generate handles POST /generate-travel-plan.
func (h *PlanHandler) Generate(c *gin.Context) {
	var req planner.TravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	// The provider call outlives a client that hangs up.
	ctx := context.WithoutCancel(c.Request.Context())
	if h.providerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.providerTimeout)
		defer cancel()
	}

	plan, err := h.planner.GeneratePlan(ctx, req)
	if err != nil {
		writePlanError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", plan.Raw)
}
