// Package repo contains all database access logic for the trip planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/planner-app/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
// pgx.Tx satisfies Begin through savepoints, so the transactional Create
// path works in tests too.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for trips and their participants.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a trip row and all rows in trip.Participants inside a
	// single transaction. Either everything is committed (trip id, participant
	// ids, and timestamps populated) or nothing is.
	// Participants are returned in insertion order.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key, without
	// participants. Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListParticipants returns all participants of a trip, owner first, then
	// invitees in insertion order.
	ListParticipants(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Create inserts the trip and its participants in one transaction.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: begin: %w", err)
	}
	// Rollback is a no-op after a successful Commit.
	defer tx.Rollback(ctx)

	const insertTrip = `
		INSERT INTO trips (destination, starts_at, ends_at)
		VALUES (@destination, @starts_at, @ends_at)
		RETURNING id, destination, starts_at, ends_at, created_at, updated_at`

	row := tx.QueryRow(ctx, insertTrip, pgx.NamedArgs{
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
	})
	created, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: insert trip: %w", err)
	}

	const insertParticipant = `
		INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed)
		VALUES (@trip_id, @name, @email, @is_owner, @is_confirmed)
		RETURNING id, trip_id, name, email, is_owner, is_confirmed, created_at, updated_at`

	created.Participants = make([]domain.Participant, 0, len(trip.Participants))
	for _, p := range trip.Participants {
		row := tx.QueryRow(ctx, insertParticipant, pgx.NamedArgs{
			"trip_id":      created.ID,
			"name":         p.Name, // nil becomes NULL
			"email":        p.Email,
			"is_owner":     p.IsOwner,
			"is_confirmed": p.IsConfirmed,
		})
		persisted, err := scanParticipant(row)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: insert participant %s: %w", p.Email, err)
		}
		created.Participants = append(created.Participants, persisted)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: commit: %w", err)
	}
	return created, nil
}

// GetByID retrieves a trip by primary key. Participants are not loaded;
// use ListParticipants for those.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT id, destination, starts_at, ends_at, created_at, updated_at
		FROM trips
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListParticipants returns a trip's participants, owner first.
func (r *pgTripRepo) ListParticipants(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `
		SELECT id, trip_id, name, email, is_owner, is_confirmed, created_at, updated_at
		FROM participants
		WHERE trip_id = @trip_id
		ORDER BY is_owner DESC, created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListParticipants: %w", err)
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListParticipants: scan: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListParticipants: rows: %w", err)
	}

	return participants, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t  domain.Trip
		id pgtype.UUID
	)

	err := s.Scan(&id, &t.Destination, &t.StartsAt, &t.EndsAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	return t, nil
}

// scanParticipant maps a single database row into a domain.Participant.
// It handles the UUID and nullable name conversions.
func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		id     pgtype.UUID
		tripID pgtype.UUID
		name   pgtype.Text
	)

	err := s.Scan(&id, &tripID, &name, &p.Email, &p.IsOwner, &p.IsConfirmed, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Participant{}, domain.ErrNotFound
		}
		return domain.Participant{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	if name.Valid {
		n := name.String
		p.Name = &n
	}

	return p, nil
}
