package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/service/ports"
)

type ListingService struct {
	repo         ports.ListingStore
	reservations ports.ReservationStore
	validate     *validator.Validate
	now          func() time.Time
}

func NewListingService(repo ports.ListingStore, reservations ports.ReservationStore) *ListingService {
	return &ListingService{
		repo:         repo,
		reservations: reservations,
		validate:     newValidator(),
		now:          time.Now,
	}
}

func (s *ListingService) CreateListing(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}
	if input.MissionDate.Before(s.now()) {
		return nil, fmt.Errorf("%w: mission_date must be in the future", domain.ErrValidation)
	}

	now := s.now().UTC()
	listing := &domain.Listing{
		OwnerID:        input.OwnerID,
		Title:          input.Title,
		Description:    input.Description,
		Location:       input.Location,
		MissionDate:    input.MissionDate.UTC(),
		AvailableSlots: input.AvailableSlots,
		OwnerChatID:    input.OwnerChatID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	return listing, nil
}

func (s *ListingService) GetDetails(ctx context.Context, id string) (*domain.ListingDetails, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservations.ListByListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	details := &domain.ListingDetails{
		Listing:      *listing,
		Reservations: make([]domain.Reservation, len(reservations)),
	}
	for i, r := range reservations {
		details.Reservations[i] = *r
	}

	return details, nil
}

func (s *ListingService) List(ctx context.Context) ([]*domain.Listing, error) {
	return s.repo.List(ctx)
}
