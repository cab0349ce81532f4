// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go) but all share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/spec"
)

// TripServicer defines the business operations the trip handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, draft domain.TripDraft) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	trips TripServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer) *Server {
	return &Server{trips: trips}
}

// Routes returns the API router. main.go wraps it in the global middleware
// chain; tests mount it directly.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Post("/trips", s.CreateTrip)
	r.Get("/trips/{tripID}", s.GetTrip)

	return r
}

// GetOpenAPI serves the embedded OpenAPI document, so the spec and the
// running code are always in sync.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
