package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/handler/dto"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// ActorHeader carries the id of the caller for status changes.
const ActorHeader = "X-Actor-ID"

type ListingSvc interface {
	CreateListing(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error)
	GetDetails(ctx context.Context, id string) (*domain.ListingDetails, error)
	List(ctx context.Context) ([]*domain.Listing, error)
}

type ReservationSvc interface {
	CreateReservation(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	GetReservation(ctx context.Context, id string) (*domain.Reservation, error)
	HasActiveReservation(ctx context.Context, actorID, listingID string) (bool, error)
	ListByActor(ctx context.Context, actorID string) ([]*domain.Reservation, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Reservation, error)
	UpdateStatusAs(
		ctx context.Context,
		callerID, id string,
		status domain.ReservationStatus,
		ownerComment *string,
	) (*domain.Reservation, error)
	DeleteReservation(ctx context.Context, id string) error
}

type Handler struct {
	listingService     ListingSvc
	reservationService ReservationSvc
}

func NewHandler(listingService ListingSvc, reservationService ReservationSvc) *Handler {
	return &Handler{
		listingService:     listingService,
		reservationService: reservationService,
	}
}

// Listings

func (h *Handler) CreateListing(c *ginext.Context) {
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	missionDate, err := time.Parse(time.RFC3339, req.MissionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid mission_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateListingInput{
		OwnerID:        req.OwnerID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		MissionDate:    missionDate,
		AvailableSlots: req.AvailableSlots,
		OwnerChatID:    req.OwnerChatID,
	}

	listing, err := h.listingService.CreateListing(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *Handler) GetListing(c *ginext.Context) {
	details, err := h.listingService.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingDetailsResponse(details))
}

func (h *Handler) ListListings(c *ginext.Context) {
	listings, err := h.listingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateReservationInput{
		ListingID:    c.Param("id"),
		ActorID:      req.ActorID,
		ActorName:    req.ActorName,
		ActorContact: req.ActorContact,
		Message:      req.Message,
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListListingReservations(c *ginext.Context) {
	reservations, err := h.reservationService.ListByListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponses(reservations))
}

func (h *Handler) ListActorReservations(c *ginext.Context) {
	reservations, err := h.reservationService.ListByActor(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponses(reservations))
}

func (h *Handler) HasActiveReservation(c *ginext.Context) {
	actorID, listingID := c.Param("id"), c.Param("listingId")

	active, err := h.reservationService.HasActiveReservation(c.Request.Context(), actorID, listingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ActiveReservationResponse{
		ActorID:   actorID,
		ListingID: listingID,
		Active:    active,
	})
}

func (h *Handler) GetReservation(c *ginext.Context) {
	reservation, err := h.reservationService.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) UpdateReservationStatus(c *ginext.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservationService.UpdateStatusAs(
		c.Request.Context(),
		c.GetHeader(ActorHeader),
		c.Param("id"),
		domain.ReservationStatus(req.Status),
		req.OwnerComment,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) DeleteReservation(c *ginext.Context) {
	if err := h.reservationService.DeleteReservation(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set(middleware.ErrorKey, err.Error())

	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDuplicateReservation),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrNoAvailableSlots):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "storage temporarily unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
