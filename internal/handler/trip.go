package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/validation"
)

// createTripRequest is the body of POST /trips. Dates are accepted as
// RFC 3339 timestamps or plain YYYY-MM-DD dates.
type createTripRequest struct {
	Destination    string   `json:"destination" validate:"required,min=4"`
	StartsAt       string   `json:"starts_at" validate:"required"`
	EndsAt         string   `json:"ends_at" validate:"required"`
	OwnerName      string   `json:"owner_name" validate:"required"`
	OwnerEmail     string   `json:"owner_email" validate:"required,email"`
	EmailsToInvite []string `json:"emails_to_invite" validate:"dive,email"`
}

// createTripResponse is the success body of POST /trips.
type createTripResponse struct {
	TripID uuid.UUID `json:"tripId"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, errors.New("request body must be valid JSON"))
		return
	}

	draft, err := requestToDraft(req)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	trip, err := s.trips.Create(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStartDate):
			writeError(w, http.StatusBadRequest, "invalid_start_date", "trip start date must not be in the past")
		case errors.Is(err, domain.ErrInvalidEndDate):
			writeError(w, http.StatusBadRequest, "invalid_end_date", "trip end date must not be before the start date")
		default:
			slog.ErrorContext(r.Context(), "create trip", "error", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, createTripResponse{TripID: trip.ID})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "tripID must be a valid UUID")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "trip not found")
			return
		}
		slog.ErrorContext(r.Context(), "get trip", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// requestToDraft validates the request structurally and coerces the date
// fields, returning validation.FieldErrors on any failure.
func requestToDraft(req createTripRequest) (domain.TripDraft, error) {
	var fieldErrs validation.FieldErrors

	if err := validation.Validate(req); err != nil {
		if !errors.As(err, &fieldErrs) {
			return domain.TripDraft{}, err
		}
	}

	startsAt, err := parseDate(req.StartsAt)
	if err != nil && req.StartsAt != "" {
		fieldErrs = append(fieldErrs, validation.FieldError{Field: "starts_at", Message: "must be a valid date"})
	}
	endsAt, err := parseDate(req.EndsAt)
	if err != nil && req.EndsAt != "" {
		fieldErrs = append(fieldErrs, validation.FieldError{Field: "ends_at", Message: "must be a valid date"})
	}

	if len(fieldErrs) > 0 {
		return domain.TripDraft{}, fieldErrs
	}

	return domain.TripDraft{
		Destination:  req.Destination,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
		OwnerName:    req.OwnerName,
		OwnerEmail:   req.OwnerEmail,
		InviteEmails: req.EmailsToInvite,
	}, nil
}

// dateLayouts are the accepted wire formats for starts_at and ends_at,
// tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate coerces a date-like string into a time.Time.
func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
