package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusDeclined  ReservationStatus = "declined"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// ActiveStatuses are the statuses counted by the one-active-reservation rule.
var ActiveStatuses = []ReservationStatus{ReservationStatusPending, ReservationStatusConfirmed}

var transitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending: {
		ReservationStatusConfirmed,
		ReservationStatusCancelled,
		ReservationStatusDeclined,
	},
	ReservationStatusConfirmed: {
		ReservationStatusCancelled,
		ReservationStatusCompleted,
	},
}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled,
		ReservationStatusDeclined, ReservationStatusCompleted:
		return true
	}
	return false
}

func (s ReservationStatus) Active() bool {
	return s == ReservationStatusPending || s == ReservationStatusConfirmed
}

// Terminal reports whether no transition leaves s.
func (s ReservationStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// ReleasesSlot reports whether entering s gives the slot back to the listing.
func (s ReservationStatus) ReleasesSlot() bool {
	return s == ReservationStatusCancelled || s == ReservationStatusDeclined
}

func CanTransition(from, to ReservationStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Reservation links a volunteer to a listing. ActorName and ActorContact are
// copied when the reservation is made and are not refreshed afterwards.
type Reservation struct {
	ID           string            `json:"id"`
	ListingID    string            `json:"listing_id"`
	ActorID      string            `json:"actor_id"`
	ActorName    string            `json:"actor_name"`
	ActorContact string            `json:"actor_contact"`
	Message      string            `json:"message"`
	Status       ReservationStatus `json:"status"`
	OwnerComment *string           `json:"owner_comment"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type CreateReservationInput struct {
	ListingID    string `validate:"required,max=64"`
	ActorID      string `validate:"required,max=64"`
	ActorName    string `validate:"required,max=200"`
	ActorContact string `validate:"max=200"`
	Message      string `validate:"max=2000"`
}
