package domain

import "time"

// Listing is a volunteering mission. A nil AvailableSlots means the mission
// takes any number of volunteers.
type Listing struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	MissionDate    time.Time `json:"mission_date"`
	AvailableSlots *int      `json:"available_slots"`
	OwnerChatID    *int64    `json:"owner_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ListingDetails struct {
	Listing      Listing       `json:"listing"`
	Reservations []Reservation `json:"reservations"`
}

type CreateListingInput struct {
	OwnerID        string    `validate:"required,max=64"`
	Title          string    `validate:"required,max=200"`
	Description    string    `validate:"max=5000"`
	Location       string    `validate:"max=200"`
	MissionDate    time.Time `validate:"required"`
	AvailableSlots *int      `validate:"omitempty,min=0"`
	OwnerChatID    *int64
}
