// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// mail calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/mail"
	"github.com/planner-app/backend/internal/repo"
)

// Mailer is the email transport the trip service depends on. Both mail.Client
// and mail.LogSender satisfy it; tests inject a fake.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) (string, error)
}

// TripService implements business logic for trip operations.
type TripService struct {
	repo    repo.TripRepo
	mailer  Mailer
	baseURL string
}

// NewTripService constructs a TripService. baseURL is the public base URL
// embedded in confirmation links, without a trailing slash.
func NewTripService(r repo.TripRepo, m Mailer, baseURL string) *TripService {
	return &TripService{repo: r, mailer: m, baseURL: baseURL}
}

// Create validates the draft, persists the trip together with its
// participants in one transaction, and emails a confirmation link to the
// owner.
//
// Returns domain.ErrInvalidStartDate when the start date is already in the
// past, and domain.ErrInvalidEndDate when the end date precedes the start
// date; in both cases nothing is persisted. A mail transport error fails the
// call even though the trip has already been committed — there is no retry.
func (s *TripService) Create(ctx context.Context, draft domain.TripDraft) (domain.Trip, error) {
	if draft.StartsAt.Before(time.Now()) {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", domain.ErrInvalidStartDate)
	}
	if draft.EndsAt.Before(draft.StartsAt) {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", domain.ErrInvalidEndDate)
	}

	trip := domain.Trip{
		Destination:  draft.Destination,
		StartsAt:     draft.StartsAt,
		EndsAt:       draft.EndsAt,
		Participants: buildParticipants(draft),
	}

	created, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	msg, err := mail.NewTripConfirmation(mail.TripConfirmationParams{
		OwnerName:        draft.OwnerName,
		OwnerEmail:       draft.OwnerEmail,
		Destination:      created.Destination,
		StartsAt:         created.StartsAt,
		EndsAt:           created.EndsAt,
		ConfirmationLink: fmt.Sprintf("%s/trips/%s/confirm", s.baseURL, created.ID),
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	if _, err := s.mailer.Send(ctx, msg); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: send confirmation: %w", err)
	}

	return created, nil
}

// GetByID returns a single trip with its participants loaded.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}

	participants, err := s.repo.ListParticipants(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	trip.Participants = participants

	return trip, nil
}

// buildParticipants assembles the participant set for a new trip: the owner
// first (confirmed), then one unconfirmed invitee per invite email.
//
// The owner's display name is deliberately set to the owner's email address,
// matching the long-standing behavior clients depend on. OwnerName is still
// used as the recipient name on the confirmation email.
func buildParticipants(draft domain.TripDraft) []domain.Participant {
	ownerName := draft.OwnerEmail
	participants := make([]domain.Participant, 0, 1+len(draft.InviteEmails))
	participants = append(participants, domain.Participant{
		Name:        &ownerName,
		Email:       draft.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	})
	for _, email := range draft.InviteEmails {
		participants = append(participants, domain.Participant{Email: email})
	}
	return participants
}
