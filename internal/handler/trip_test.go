package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create  func(ctx context.Context, draft domain.TripDraft) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

func (m *mockTripServicer) Create(ctx context.Context, draft domain.TripDraft) (domain.Trip, error) {
	return m.create(ctx, draft)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mock into the router,
// mirroring how main.go wires it in production.
func newHTTPHandler(svc handler.TripServicer) http.Handler {
	return handler.NewServer(svc).Routes()
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		Destination: "Florianópolis",
		StartsAt:    time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2030, 1, 20, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func validCreateBody() map[string]any {
	return map[string]any{
		"destination":      "Florianópolis",
		"starts_at":        "2030-01-10",
		"ends_at":          "2030-01-20",
		"owner_name":       "Ana",
		"owner_email":      "ana@example.com",
		"emails_to_invite": []string{"bob@example.com"},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func postTrips(t *testing.T, h http.Handler, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// errorBody decodes the ErrorResponse envelope out of a recorder.
func errorBody(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	var gotDraft domain.TripDraft
	svc := &mockTripServicer{
		create: func(_ context.Context, draft domain.TripDraft) (domain.Trip, error) {
			gotDraft = draft
			return fixture, nil
		},
	}

	rec := postTrips(t, newHTTPHandler(svc), jsonBody(t, validCreateBody()))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		TripID uuid.UUID `json:"tripId"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.TripID)

	// Dates are coerced from plain YYYY-MM-DD strings.
	assert.Equal(t, "Florianópolis", gotDraft.Destination)
	assert.True(t, gotDraft.StartsAt.Equal(time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, gotDraft.EndsAt.Equal(time.Date(2030, 1, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Ana", gotDraft.OwnerName)
	assert.Equal(t, "ana@example.com", gotDraft.OwnerEmail)
	assert.Equal(t, []string{"bob@example.com"}, gotDraft.InviteEmails)
}

func TestCreateTrip_201_RFC3339Dates(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, draft domain.TripDraft) (domain.Trip, error) {
			return tripFixture(), nil
		},
	}

	body := validCreateBody()
	body["starts_at"] = "2030-01-10T15:00:00Z"
	body["ends_at"] = "2030-01-20T10:00:00Z"

	rec := postTrips(t, newHTTPHandler(svc), jsonBody(t, body))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateTrip_422_DestinationTooShort(t *testing.T) {
	called := false
	svc := &mockTripServicer{
		create: func(_ context.Context, _ domain.TripDraft) (domain.Trip, error) {
			called = true
			return domain.Trip{}, nil
		},
	}

	body := validCreateBody()
	body["destination"] = "Rio" // shorter than 4 characters

	rec := postTrips(t, newHTTPHandler(svc), jsonBody(t, body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, called, "service should not be reached")

	resp := errorBody(t, rec)
	assert.Equal(t, "validation_error", resp.Error.Code)
	require.NotEmpty(t, resp.Error.Fields)
	assert.Equal(t, "destination", resp.Error.Fields[0].Field)
}

func TestCreateTrip_422_InvalidOwnerEmail(t *testing.T) {
	svc := &mockTripServicer{}

	body := validCreateBody()
	body["owner_email"] = "not-an-email"

	rec := postTrips(t, newHTTPHandler(svc), jsonBody(t, body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := errorBody(t, rec)
	require.NotEmpty(t, resp.Error.Fields)
	assert.Equal(t, "owner_email", resp.Error.Fields[0].Field)
}

func TestCreateTrip_422_InvalidInviteEmail(t *testing.T) {
	svc := &mockTripServicer{}

	body := validCreateBody()
	body["emails_to_invite"] = []string{"bob@example.com", "nope"}

	rec := postTrips(t, newHTTPHandler(svc), jsonBody(t, body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := errorBody(t, rec)
	require.NotEmpty(t, resp.Error.Fields)
	assert.Equal(t, "emails_to_invite[1]", resp.Error.Fields[0].Field)
}

func TestCreateTrip_422_UnparsableDate(t *testing.T) {
	svc := &mockTripServicer{}

	body := validCreateBody()
	body["starts_at"] = "next tuesday"

	rec := postTrips(t, newHTTPHandler(svc), jsonBody(t, body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := errorBody(t, rec)
	require.NotEmpty(t, resp.Error.Fields)
	assert.Equal(t, "starts_at", resp.Error.Fields[0].Field)
}

func TestCreateTrip_422_MalformedJSON(t *testing.T) {
	svc := &mockTripServicer{}

	rec := postTrips(t, newHTTPHandler(svc), bytes.NewBufferString("{not json"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := errorBody(t, rec)
	assert.Equal(t, "validation_error", resp.Error.Code)
}

func TestCreateTrip_400_InvalidStartDate(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, _ domain.TripDraft) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", domain.ErrInvalidStartDate)
		},
	}

	rec := postTrips(t, newHTTPHandler(svc), jsonBody(t, validCreateBody()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_start_date", errorBody(t, rec).Error.Code)
}

func TestCreateTrip_400_InvalidEndDate(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, _ domain.TripDraft) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", domain.ErrInvalidEndDate)
		},
	}

	rec := postTrips(t, newHTTPHandler(svc), jsonBody(t, validCreateBody()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_end_date", errorBody(t, rec).Error.Code)
}

func TestCreateTrip_500_ServiceError(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, _ domain.TripDraft) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("db exploded")
		},
	}

	rec := postTrips(t, newHTTPHandler(svc), jsonBody(t, validCreateBody()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", errorBody(t, rec).Error.Code)
}

// ---- GET /trips/{tripID} ---------------------------------------------------

func TestGetTrip_200(t *testing.T) {
	fixture := tripFixture()
	name := "ana@example.com"
	fixture.Participants = []domain.Participant{
		{ID: uuid.New(), TripID: fixture.ID, Name: &name, Email: "ana@example.com", IsOwner: true, IsConfirmed: true},
		{ID: uuid.New(), TripID: fixture.ID, Email: "bob@example.com"},
	}
	svc := &mockTripServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Len(t, resp.Participants, 2)
}

func TestGetTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorBody(t, rec).Error.Code)
}

func TestGetTrip_400_BadUUID(t *testing.T) {
	svc := &mockTripServicer{}

	req := httptest.NewRequest(http.MethodGet, "/trips/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", errorBody(t, rec).Error.Code)
}
