package server

import (
	"github.com/brandcheck/brandcheck/internal/observability"
	"github.com/brandcheck/brandcheck/internal/server/handlers"
)

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes() {
	s.router.Get("/health", handlers.HealthHandler)
	s.router.Get("/health/live", handlers.LivenessHandler)
	s.router.Get("/health/ready", handlers.ReadinessHandler)

	s.router.Get("/version", handlers.VersionHandler)

	s.router.Post("/api/check", handlers.NewCheckHandler(s.aggregator, observability.ServerLogger))
}
