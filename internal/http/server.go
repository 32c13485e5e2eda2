// README: API gateway; builds the gin router and wraps it with CORS.
package http

import (
	"net/http"
	"time"

	"github.com/rs/cors"

	"travelplanner/internal/http/handlers"
	"travelplanner/internal/planner"
)

type ServerDeps struct {
	Planner         *planner.Service
	ProviderTimeout time.Duration
	CORSOrigins     []string
}

type Server struct {
	planner         *planner.Service
	providerTimeout time.Duration
	corsOrigins     []string
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		planner:         deps.Planner,
		providerTimeout: deps.ProviderTimeout,
		corsOrigins:     deps.CORSOrigins,
	}
}

func (s *Server) Routes() http.Handler {
	router := NewRouter(handlers.NewPlanHandler(s.planner, s.providerTimeout))

	origins := s.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(router)
}
