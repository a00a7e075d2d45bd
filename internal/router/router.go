package router

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateListing(c *ginext.Context)
	GetListing(c *ginext.Context)
	ListListings(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	ListListingReservations(c *ginext.Context)
	ListActorReservations(c *ginext.Context)
	HasActiveReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	UpdateReservationStatus(c *ginext.Context)
	DeleteReservation(c *ginext.Context)
}

// HealthCheck reports whether the storage backend answers.
type HealthCheck func(ctx context.Context) error

// InitRouter registers the JSON API. The delete route bypasses the status
// graph and is only mounted outside release mode.
func InitRouter(mode string, h Handler, health HealthCheck, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Listings
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)

		// Reservations of a listing
		api.POST("/listings/:id/reservations", h.CreateReservation)
		api.GET("/listings/:id/reservations", h.ListListingReservations)

		// Actors
		api.GET("/actors/:id/reservations", h.ListActorReservations)
		api.GET("/actors/:id/listings/:listingId/active", h.HasActiveReservation)

		// Reservations
		api.GET("/reservations/:id", h.GetReservation)
		api.PATCH("/reservations/:id/status", h.UpdateReservationStatus)
		if mode != "release" {
			api.DELETE("/reservations/:id", h.DeleteReservation)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		if health != nil {
			if err := health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, ginext.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
