package ports

import (
	"context"
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
)

type ListingStore interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
	ListEndedBefore(ctx context.Context, t time.Time) ([]*domain.Listing, error)
	// UpdateCapacity adds delta to AvailableSlots. It is a no-op for listings
	// without a capacity and fails with domain.ErrNoAvailableSlots instead of
	// going below zero.
	UpdateCapacity(ctx context.Context, id string, delta int) error
}
