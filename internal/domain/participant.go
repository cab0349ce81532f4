package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person associated with a trip: either the owner who
// created it or an invitee. Name is nil for invitees, who are known only by
// email until they confirm.
//
// Every trip has exactly one participant with IsOwner set; the owner is
// confirmed at creation time, invitees start unconfirmed.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Name        *string   `json:"name,omitempty"`
	Email       string    `json:"email"`
	IsOwner     bool      `json:"is_owner"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
