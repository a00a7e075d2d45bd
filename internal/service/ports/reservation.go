package ports

import (
	"context"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
)

type ReservationStore interface {
	// Insert assigns r.ID. It fails with domain.ErrDuplicateReservation when
	// r is active and the pair already has an active reservation.
	Insert(ctx context.Context, r *domain.Reservation) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	FindByActorAndListing(
		ctx context.Context,
		actorID, listingID string,
		statuses []domain.ReservationStatus,
	) ([]*domain.Reservation, error)
	// UpdateStatus writes to only while the stored status is still from.
	// It returns domain.ErrInvalidTransition when the status moved meanwhile.
	UpdateStatus(
		ctx context.Context,
		id string,
		from, to domain.ReservationStatus,
		ownerComment *string,
	) error
	ListByActor(ctx context.Context, actorID string) ([]*domain.Reservation, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
}
