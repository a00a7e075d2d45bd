package notification

import (
	"context"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/service/ports"
)

// Multi hands every notification to each notifier in order.
type Multi []ports.ReservationNotifier

func (m Multi) NotifyReservationCreated(ctx context.Context, listing *domain.Listing, r *domain.Reservation) {
	for _, n := range m {
		n.NotifyReservationCreated(ctx, listing, r)
	}
}

func (m Multi) NotifyStatusChanged(ctx context.Context, listing *domain.Listing, r *domain.Reservation) {
	for _, n := range m {
		n.NotifyStatusChanged(ctx, listing, r)
	}
}
