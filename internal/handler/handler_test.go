package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/handler/dto"
	hmocks "github.com/guiguil03/Milliers-Coeurs-sub000/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockListingSvc, *hmocks.MockReservationSvc, http.Handler) {
	t.Helper()
	listingSvc := hmocks.NewMockListingSvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)

	h := NewHandler(listingSvc, reservationSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)
		api.POST("/listings/:id/reservations", h.CreateReservation)
		api.GET("/listings/:id/reservations", h.ListListingReservations)
		api.GET("/actors/:id/reservations", h.ListActorReservations)
		api.GET("/actors/:id/listings/:listingId/active", h.HasActiveReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.PATCH("/reservations/:id/status", h.UpdateReservationStatus)
		api.DELETE("/reservations/:id", h.DeleteReservation)
	}

	return listingSvc, reservationSvc, r
}

func doJSON(r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleReservation(status domain.ReservationStatus) *domain.Reservation {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:           "r1",
		ListingID:    "l1",
		ActorID:      "a1",
		ActorName:    "Camille",
		ActorContact: "camille@example.org",
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// --- Listings ---

func TestHandler_CreateListing_Success(t *testing.T) {
	listingSvc, _, r := setupRouter(t)

	missionDate := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	listing := &domain.Listing{
		ID:             "l1",
		OwnerID:        "o1",
		Title:          "Nettoyage des berges",
		MissionDate:    missionDate,
		AvailableSlots: func() *int { v := 10; return &v }(),
		CreatedAt:      time.Now(),
	}

	listingSvc.EXPECT().
		CreateListing(mock.Anything, mock.MatchedBy(func(in domain.CreateListingInput) bool {
			return in.OwnerID == "o1" && in.MissionDate.Equal(missionDate) && *in.AvailableSlots == 10
		})).
		Return(listing, nil)

	w := doJSON(r, http.MethodPost, "/api/listings", dto.CreateListingRequest{
		OwnerID:        "o1",
		Title:          "Nettoyage des berges",
		MissionDate:    missionDate.Format(time.RFC3339),
		AvailableSlots: listing.AvailableSlots,
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "l1", resp.ID)
	assert.Equal(t, "2026-06-01T08:00:00Z", resp.MissionDate)
	require.NotNil(t, resp.AvailableSlots)
	assert.Equal(t, 10, *resp.AvailableSlots)
}

func TestHandler_CreateListing_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "missing title", body: map[string]any{"owner_id": "o1", "mission_date": "2026-06-01T08:00:00Z"}},
		{name: "bad date", body: map[string]any{"owner_id": "o1", "title": "x", "mission_date": "01/06/2026"}},
		{name: "negative slots", body: map[string]any{"owner_id": "o1", "title": "x", "mission_date": "2026-06-01T08:00:00Z", "available_slots": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, r := setupRouter(t)

			w := doJSON(r, http.MethodPost, "/api/listings", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_GetListing(t *testing.T) {
	listingSvc, _, r := setupRouter(t)

	details := &domain.ListingDetails{
		Listing:      domain.Listing{ID: "l1", Title: "Maraude"},
		Reservations: []domain.Reservation{*sampleReservation(domain.ReservationStatusPending)},
	}
	listingSvc.EXPECT().GetDetails(mock.Anything, "l1").Return(details, nil)

	w := doJSON(r, http.MethodGet, "/api/listings/l1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Maraude", resp.Listing.Title)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "pending", resp.Reservations[0].Status)
}

func TestHandler_ListListings(t *testing.T) {
	listingSvc, _, r := setupRouter(t)

	listingSvc.EXPECT().List(mock.Anything).Return([]*domain.Listing{{ID: "l1"}, {ID: "l2"}}, nil)

	w := doJSON(r, http.MethodGet, "/api/listings", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationSvc.EXPECT().
		CreateReservation(mock.Anything, domain.CreateReservationInput{
			ListingID:    "l1",
			ActorID:      "a1",
			ActorName:    "Camille",
			ActorContact: "camille@example.org",
			Message:      "Bonjour",
		}).
		Return(sampleReservation(domain.ReservationStatusPending), nil)

	w := doJSON(r, http.MethodPost, "/api/listings/l1/reservations", dto.CreateReservationRequest{
		ActorID:      "a1",
		ActorName:    "Camille",
		ActorContact: "camille@example.org",
		Message:      "Bonjour",
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateReservation_MissingActor(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/listings/l1/reservations", map[string]string{"actor_name": "Camille"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "duplicate", err: fmt.Errorf("create reservation: %w", domain.ErrDuplicateReservation), code: http.StatusConflict},
		{name: "no slots", err: domain.ErrNoAvailableSlots, code: http.StatusConflict},
		{name: "listing not found", err: fmt.Errorf("check listing: %w", domain.ErrListingNotFound), code: http.StatusNotFound},
		{name: "validation", err: fmt.Errorf("%w: actor_name is required", domain.ErrValidation), code: http.StatusBadRequest},
		{name: "store down", err: fmt.Errorf("insert: %w: %w", domain.ErrStoreUnavailable, errors.New("dial tcp")), code: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, reservationSvc, r := setupRouter(t)
			reservationSvc.EXPECT().CreateReservation(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doJSON(r, http.MethodPost, "/api/listings/l1/reservations", dto.CreateReservationRequest{
				ActorID:   "a1",
				ActorName: "Camille",
			}, nil)

			assert.Equal(t, tt.code, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandler_ListListingReservations(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationSvc.EXPECT().ListByListing(mock.Anything, "l1").
		Return([]*domain.Reservation{sampleReservation(domain.ReservationStatusPending)}, nil)

	w := doJSON(r, http.MethodGet, "/api/listings/l1/reservations", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListActorReservations_Empty(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationSvc.EXPECT().ListByActor(mock.Anything, "a1").Return([]*domain.Reservation{}, nil)

	w := doJSON(r, http.MethodGet, "/api/actors/a1/reservations", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_HasActiveReservation(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationSvc.EXPECT().HasActiveReservation(mock.Anything, "a1", "l1").Return(true, nil)

	w := doJSON(r, http.MethodGet, "/api/actors/a1/listings/l1/active", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"actor_id":"a1","listing_id":"l1","active":true}`, w.Body.String())
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationSvc.EXPECT().GetReservation(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	w := doJSON(r, http.MethodGet, "/api/reservations/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateReservationStatus(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	confirmed := sampleReservation(domain.ReservationStatusConfirmed)
	comment := "À samedi"
	confirmed.OwnerComment = &comment

	reservationSvc.EXPECT().
		UpdateStatusAs(mock.Anything, "o1", "r1", domain.ReservationStatusConfirmed, &comment).
		Return(confirmed, nil)

	w := doJSON(r, http.MethodPatch, "/api/reservations/r1/status", dto.UpdateStatusRequest{
		Status:       "confirmed",
		OwnerComment: &comment,
	}, map[string]string{ActorHeader: "o1"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.OwnerComment)
	assert.Equal(t, comment, *resp.OwnerComment)
}

func TestHandler_UpdateReservationStatus_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "forbidden", err: domain.ErrForbidden, code: http.StatusForbidden},
		{name: "invalid transition", err: fmt.Errorf("%w: cancelled -> confirmed", domain.ErrInvalidTransition), code: http.StatusConflict},
		{name: "unknown status", err: fmt.Errorf("%w: unknown status", domain.ErrValidation), code: http.StatusBadRequest},
		{name: "not found", err: domain.ErrReservationNotFound, code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, reservationSvc, r := setupRouter(t)
			reservationSvc.EXPECT().
				UpdateStatusAs(mock.Anything, "a1", "r1", mock.Anything, mock.Anything).
				Return(nil, tt.err)

			w := doJSON(r, http.MethodPatch, "/api/reservations/r1/status",
				dto.UpdateStatusRequest{Status: "confirmed"}, map[string]string{ActorHeader: "a1"})

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_UpdateReservationStatus_MissingStatus(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodPatch, "/api/reservations/r1/status", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteReservation(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationSvc.EXPECT().DeleteReservation(mock.Anything, "r1").Return(nil).Once()
	reservationSvc.EXPECT().DeleteReservation(mock.Anything, "r2").Return(domain.ErrReservationNotFound).Once()

	w := doJSON(r, http.MethodDelete, "/api/reservations/r1", nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/reservations/r2", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
