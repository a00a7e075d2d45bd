package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct {
	called string
}

func (h *stubHandler) reply(name string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		h.called = name
		c.Status(http.StatusOK)
	}
}

func (h *stubHandler) CreateListing(c *ginext.Context)           { h.reply("CreateListing")(c) }
func (h *stubHandler) GetListing(c *ginext.Context)              { h.reply("GetListing")(c) }
func (h *stubHandler) ListListings(c *ginext.Context)            { h.reply("ListListings")(c) }
func (h *stubHandler) CreateReservation(c *ginext.Context)       { h.reply("CreateReservation")(c) }
func (h *stubHandler) ListListingReservations(c *ginext.Context) { h.reply("ListListingReservations")(c) }
func (h *stubHandler) ListActorReservations(c *ginext.Context)   { h.reply("ListActorReservations")(c) }
func (h *stubHandler) HasActiveReservation(c *ginext.Context)    { h.reply("HasActiveReservation")(c) }
func (h *stubHandler) GetReservation(c *ginext.Context)          { h.reply("GetReservation")(c) }
func (h *stubHandler) UpdateReservationStatus(c *ginext.Context) { h.reply("UpdateReservationStatus")(c) }
func (h *stubHandler) DeleteReservation(c *ginext.Context)       { h.reply("DeleteReservation")(c) }

func TestInitRouter_Routes(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodPost, "/api/listings", "CreateListing"},
		{http.MethodGet, "/api/listings", "ListListings"},
		{http.MethodGet, "/api/listings/l1", "GetListing"},
		{http.MethodPost, "/api/listings/l1/reservations", "CreateReservation"},
		{http.MethodGet, "/api/listings/l1/reservations", "ListListingReservations"},
		{http.MethodGet, "/api/actors/a1/reservations", "ListActorReservations"},
		{http.MethodGet, "/api/actors/a1/listings/l1/active", "HasActiveReservation"},
		{http.MethodGet, "/api/reservations/r1", "GetReservation"},
		{http.MethodPatch, "/api/reservations/r1/status", "UpdateReservationStatus"},
		{http.MethodDelete, "/api/reservations/r1", "DeleteReservation"},
	}

	h := &stubHandler{}
	r := InitRouter("test", h, nil)

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h.called = ""
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, h.called)
		})
	}
}

func TestInitRouter_NoDeleteInRelease(t *testing.T) {
	h := &stubHandler{}
	r := InitRouter("release", h, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/reservations/r1", nil))

	assert.NotEqual(t, http.StatusOK, w.Code)
	assert.Empty(t, h.called)
}

func TestInitRouter_Health(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r := InitRouter("test", &stubHandler{}, func(context.Context) error { return nil })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("storage down", func(t *testing.T) {
		r := InitRouter("test", &stubHandler{}, func(context.Context) error { return errors.New("ping failed") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestInitRouter_Metrics(t *testing.T) {
	r := InitRouter("test", &stubHandler{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
