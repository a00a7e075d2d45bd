package service

import (
	"context"
	"testing"
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/repository/memory"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var listingNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newListingService() (*ListingService, *memory.ListingRepository, *memory.ReservationRepository) {
	listings := memory.NewListingRepo()
	reservations := memory.NewReservationRepo()

	svc := NewListingService(listings, reservations)
	svc.now = func() time.Time { return listingNow }
	return svc, listings, reservations
}

func listingInput() domain.CreateListingInput {
	return domain.CreateListingInput{
		OwnerID:        "owner-1",
		Title:          "  Distribution de repas  ",
		Description:    "Aide à la distribution du soir",
		Location:       "Paris 18e",
		MissionDate:    listingNow.Add(48 * time.Hour),
		AvailableSlots: intPtr(4),
	}
}

func TestCreateListing_Success(t *testing.T) {
	svc, listings, _ := newListingService()

	l, err := svc.CreateListing(context.Background(), listingInput())
	require.NoError(t, err)

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "Distribution de repas", l.Title)
	assert.Equal(t, listingNow, l.CreatedAt)
	require.NotNil(t, l.AvailableSlots)
	assert.Equal(t, 4, *l.AvailableSlots)

	stored, err := listings.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.Title, stored.Title)
}

func TestCreateListing_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.CreateListingInput)
	}{
		{name: "missing owner", mutate: func(in *domain.CreateListingInput) { in.OwnerID = "" }},
		{name: "blank title", mutate: func(in *domain.CreateListingInput) { in.Title = "   " }},
		{name: "negative slots", mutate: func(in *domain.CreateListingInput) { in.AvailableSlots = intPtr(-1) }},
		{name: "missing date", mutate: func(in *domain.CreateListingInput) { in.MissionDate = time.Time{} }},
		{name: "date in the past", mutate: func(in *domain.CreateListingInput) { in.MissionDate = listingNow.Add(-time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newListingService()

			in := listingInput()
			tt.mutate(&in)

			_, err := svc.CreateListing(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrValidation)

			all, err := svc.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestCreateListing_UnlimitedSlots(t *testing.T) {
	svc, _, _ := newListingService()

	in := listingInput()
	in.AvailableSlots = nil

	l, err := svc.CreateListing(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, l.AvailableSlots)
}

func TestCreateListing_StoreError(t *testing.T) {
	store := mocks.NewMockListingStore(t)
	store.EXPECT().Create(mock.Anything, mock.Anything).Return(errDB).Once()

	svc := NewListingService(store, mocks.NewMockReservationStore(t))
	svc.now = func() time.Time { return listingNow }

	_, err := svc.CreateListing(context.Background(), listingInput())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestGetDetails(t *testing.T) {
	svc, _, reservations := newListingService()

	l, err := svc.CreateListing(context.Background(), listingInput())
	require.NoError(t, err)

	for i, actor := range []string{"actor-1", "actor-2"} {
		_, err = reservations.Insert(context.Background(), &domain.Reservation{
			ListingID: l.ID,
			ActorID:   actor,
			ActorName: actor,
			Status:    domain.ReservationStatusPending,
			CreatedAt: listingNow.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	details, err := svc.GetDetails(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ID, details.Listing.ID)
	require.Len(t, details.Reservations, 2)
	assert.Equal(t, "actor-2", details.Reservations[0].ActorID)

	_, err = svc.GetDetails(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestListListings_ByMissionDate(t *testing.T) {
	svc, _, _ := newListingService()

	later := listingInput()
	later.MissionDate = listingNow.Add(96 * time.Hour)
	sooner := listingInput()
	sooner.MissionDate = listingNow.Add(24 * time.Hour)

	l1, err := svc.CreateListing(context.Background(), later)
	require.NoError(t, err)
	l2, err := svc.CreateListing(context.Background(), sooner)
	require.NoError(t, err)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, l2.ID, all[0].ID)
	assert.Equal(t, l1.ID, all[1].ID)

	got, err := svc.GetListing(context.Background(), l1.ID)
	require.NoError(t, err)
	assert.Equal(t, l1.MissionDate, got.MissionDate)
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "actor_id", toSnake("ActorID"))
	assert.Equal(t, "available_slots", toSnake("AvailableSlots"))
	assert.Equal(t, "title", toSnake("Title"))
}
