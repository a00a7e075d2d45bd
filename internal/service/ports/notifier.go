package ports

import (
	"context"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, listing *domain.Listing, r *domain.Reservation)
	NotifyStatusChanged(ctx context.Context, listing *domain.Listing, r *domain.Reservation)
}
