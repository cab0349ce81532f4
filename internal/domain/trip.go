// Package domain contains the core data types for the trip planner API.
// This package has no dependencies beyond uuid and is imported by every
// other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a planned journey to a destination over a date range.
// A trip is the top-level aggregate; participants belong to a trip and are
// created atomically with it.
type Trip struct {
	ID           uuid.UUID     `json:"id"`
	Destination  string        `json:"destination"`
	StartsAt     time.Time     `json:"starts_at"`
	EndsAt       time.Time     `json:"ends_at"`
	Participants []Participant `json:"participants,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// TripDraft carries validated trip-creation input from the HTTP layer to the
// service layer. It is a value object, not a persisted type.
type TripDraft struct {
	Destination  string
	StartsAt     time.Time
	EndsAt       time.Time
	OwnerName    string
	OwnerEmail   string
	InviteEmails []string
}
