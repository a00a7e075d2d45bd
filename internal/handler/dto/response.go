package dto

import (
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
)

type ListingResponse struct {
	ID             string `json:"id"`
	OwnerID        string `json:"owner_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	MissionDate    string `json:"mission_date"`
	AvailableSlots *int   `json:"available_slots"`
	CreatedAt      string `json:"created_at"`
}

type ListingDetailsResponse struct {
	Listing      ListingResponse       `json:"listing"`
	Reservations []ReservationResponse `json:"reservations"`
}

type ReservationResponse struct {
	ID           string  `json:"id"`
	ListingID    string  `json:"listing_id"`
	ActorID      string  `json:"actor_id"`
	ActorName    string  `json:"actor_name"`
	ActorContact string  `json:"actor_contact"`
	Message      string  `json:"message,omitempty"`
	Status       string  `json:"status"`
	OwnerComment *string `json:"owner_comment,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type ActiveReservationResponse struct {
	ActorID   string `json:"actor_id"`
	ListingID string `json:"listing_id"`
	Active    bool   `json:"active"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:             l.ID,
		OwnerID:        l.OwnerID,
		Title:          l.Title,
		Description:    l.Description,
		Location:       l.Location,
		MissionDate:    l.MissionDate.Format(time.RFC3339),
		AvailableSlots: l.AvailableSlots,
		CreatedAt:      l.CreatedAt.Format(time.RFC3339),
	}
}

func ToListingDetailsResponse(d *domain.ListingDetails) ListingDetailsResponse {
	reservations := make([]ReservationResponse, 0, len(d.Reservations))
	for _, r := range d.Reservations {
		reservations = append(reservations, ToReservationResponse(&r))
	}

	return ListingDetailsResponse{
		Listing:      ToListingResponse(&d.Listing),
		Reservations: reservations,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		ListingID:    r.ListingID,
		ActorID:      r.ActorID,
		ActorName:    r.ActorName,
		ActorContact: r.ActorContact,
		Message:      r.Message,
		Status:       string(r.Status),
		OwnerComment: r.OwnerComment,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponses(rs []*domain.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		resp = append(resp, ToReservationResponse(r))
	}
	return resp
}
