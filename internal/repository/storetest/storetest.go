// Package storetest holds the behaviour every ListingStore and
// ReservationStore adapter must share. Adapter packages call Run from their
// own tests.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Stores struct {
	Listings     ports.ListingStore
	Reservations ports.ReservationStore
}

func Run(t *testing.T, stores Stores) {
	t.Run("listing round trip", func(t *testing.T) { testListingRoundTrip(t, stores) })
	t.Run("listing not found", func(t *testing.T) { testListingNotFound(t, stores) })
	t.Run("capacity", func(t *testing.T) { testCapacity(t, stores) })
	t.Run("unlimited capacity", func(t *testing.T) { testUnlimitedCapacity(t, stores) })
	t.Run("listings ended before", func(t *testing.T) { testListEndedBefore(t, stores) })
	t.Run("reservation round trip", func(t *testing.T) { testReservationRoundTrip(t, stores) })
	t.Run("reservation not found", func(t *testing.T) { testReservationNotFound(t, stores) })
	t.Run("active pair is unique", func(t *testing.T) { testActivePairUnique(t, stores) })
	t.Run("concurrent inserts", func(t *testing.T) { testConcurrentInserts(t, stores) })
	t.Run("status compare and swap", func(t *testing.T) { testUpdateStatusCAS(t, stores) })
	t.Run("terminal status frees the pair", func(t *testing.T) { testTerminalFreesPair(t, stores) })
	t.Run("list ordering", func(t *testing.T) { testListOrdering(t, stores) })
	t.Run("delete", func(t *testing.T) { testDelete(t, stores) })
}

func intPtr(v int) *int { return &v }

func newListing(t *testing.T, s Stores, slots *int, missionDate time.Time) *domain.Listing {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	l := &domain.Listing{
		OwnerID:        "owner-" + uuid.NewString(),
		Title:          "Food bank sorting",
		Description:    "Sort donations for the weekend distribution",
		Location:       "Lyon",
		MissionDate:    missionDate.UTC().Truncate(time.Millisecond),
		AvailableSlots: slots,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, s.Listings.Create(context.Background(), l))
	require.NotEmpty(t, l.ID)
	return l
}

func newReservation(listingID, actorID string, createdAt time.Time) *domain.Reservation {
	return &domain.Reservation{
		ListingID:    listingID,
		ActorID:      actorID,
		ActorName:    "Camille",
		ActorContact: "camille@example.org",
		Message:      "Available all morning",
		Status:       domain.ReservationStatusPending,
		CreatedAt:    createdAt.UTC().Truncate(time.Millisecond),
		UpdatedAt:    createdAt.UTC().Truncate(time.Millisecond),
	}
}

func testListingRoundTrip(t *testing.T, s Stores) {
	ctx := context.Background()
	l := newListing(t, s, intPtr(3), time.Now().Add(48*time.Hour))

	got, err := s.Listings.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.OwnerID, got.OwnerID)
	assert.Equal(t, l.Title, got.Title)
	assert.Equal(t, l.Location, got.Location)
	assert.WithinDuration(t, l.MissionDate, got.MissionDate, time.Millisecond)
	require.NotNil(t, got.AvailableSlots)
	assert.Equal(t, 3, *got.AvailableSlots)
	assert.Nil(t, got.OwnerChatID)

	all, err := s.Listings.List(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(all))
	for _, v := range all {
		ids = append(ids, v.ID)
	}
	assert.Contains(t, ids, l.ID)
}

func testListingNotFound(t *testing.T, s Stores) {
	ctx := context.Background()

	_, err := s.Listings.GetByID(ctx, "000000000000000000000000")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	err = s.Listings.UpdateCapacity(ctx, "000000000000000000000000", 1)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func testCapacity(t *testing.T, s Stores) {
	ctx := context.Background()
	l := newListing(t, s, intPtr(1), time.Now().Add(48*time.Hour))

	require.NoError(t, s.Listings.UpdateCapacity(ctx, l.ID, -1))
	err := s.Listings.UpdateCapacity(ctx, l.ID, -1)
	assert.ErrorIs(t, err, domain.ErrNoAvailableSlots)

	got, err := s.Listings.GetByID(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AvailableSlots)
	assert.Equal(t, 0, *got.AvailableSlots)

	require.NoError(t, s.Listings.UpdateCapacity(ctx, l.ID, 1))
	got, err = s.Listings.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, *got.AvailableSlots)
}

func testUnlimitedCapacity(t *testing.T, s Stores) {
	ctx := context.Background()
	l := newListing(t, s, nil, time.Now().Add(48*time.Hour))

	require.NoError(t, s.Listings.UpdateCapacity(ctx, l.ID, -1))
	require.NoError(t, s.Listings.UpdateCapacity(ctx, l.ID, 1))

	got, err := s.Listings.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AvailableSlots)
}

func testListEndedBefore(t *testing.T, s Stores) {
	ctx := context.Background()
	past := newListing(t, s, nil, time.Now().Add(-24*time.Hour))
	future := newListing(t, s, nil, time.Now().Add(24*time.Hour))

	ended, err := s.Listings.ListEndedBefore(ctx, time.Now())
	require.NoError(t, err)

	ids := make([]string, 0, len(ended))
	for _, l := range ended {
		ids = append(ids, l.ID)
	}
	assert.Contains(t, ids, past.ID)
	assert.NotContains(t, ids, future.ID)
}

func testReservationRoundTrip(t *testing.T, s Stores) {
	ctx := context.Background()
	l := newListing(t, s, nil, time.Now().Add(48*time.Hour))
	r := newReservation(l.ID, "actor-"+uuid.NewString(), time.Now())

	id, err := s.Reservations.Insert(ctx, r)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, id, r.ID)

	got, err := s.Reservations.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, r.ListingID, got.ListingID)
	assert.Equal(t, r.ActorID, got.ActorID)
	assert.Equal(t, r.ActorName, got.ActorName)
	assert.Equal(t, r.ActorContact, got.ActorContact)
	assert.Equal(t, r.Message, got.Message)
	assert.Equal(t, domain.ReservationStatusPending, got.Status)
	assert.Nil(t, got.OwnerComment)
	assert.WithinDuration(t, r.CreatedAt, got.CreatedAt, time.Millisecond)
}

func testReservationNotFound(t *testing.T, s Stores) {
	ctx := context.Background()
	missing := "000000000000000000000000"

	_, err := s.Reservations.GetByID(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)

	err = s.Reservations.UpdateStatus(ctx, missing,
		domain.ReservationStatusPending, domain.ReservationStatusConfirmed, nil)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)

	err = s.Reservations.Delete(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func testActivePairUnique(t *testing.T, s Stores) {
	ctx := context.Background()
	l := newListing(t, s, nil, time.Now().Add(48*time.Hour))
	actorID := "actor-" + uuid.NewString()

	_, err := s.Reservations.Insert(ctx, newReservation(l.ID, actorID, time.Now()))
	require.NoError(t, err)

	_, err = s.Reservations.Insert(ctx, newReservation(l.ID, actorID, time.Now()))
	assert.ErrorIs(t, err, domain.ErrDuplicateReservation)

	// Another actor on the same listing is unaffected.
	_, err = s.Reservations.Insert(ctx, newReservation(l.ID, "actor-"+uuid.NewString(), time.Now()))
	assert.NoError(t, err)

	active, err := s.Reservations.FindByActorAndListing(ctx, actorID, l.ID, domain.ActiveStatuses)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func testConcurrentInserts(t *testing.T, s Stores) {
	ctx := context.Background()
	l := newListing(t, s, nil, time.Now().Add(48*time.Hour))
	actorID := "actor-" + uuid.NewString()

	const workers = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		succeeded  int
		duplicates int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Reservations.Insert(ctx, newReservation(l.ID, actorID, time.Now()))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, domain.ErrDuplicateReservation):
				duplicates++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, duplicates)
}

func testUpdateStatusCAS(t *testing.T, s Stores) {
	ctx := context.Background()
	l := newListing(t, s, nil, time.Now().Add(48*time.Hour))
	r := newReservation(l.ID, "actor-"+uuid.NewString(), time.Now())
	id, err := s.Reservations.Insert(ctx, r)
	require.NoError(t, err)

	comment := "See you there"
	err = s.Reservations.UpdateStatus(ctx, id,
		domain.ReservationStatusPending, domain.ReservationStatusConfirmed, &comment)
	require.NoError(t, err)

	// A second writer that still believes the reservation is pending loses.
	err = s.Reservations.UpdateStatus(ctx, id,
		domain.ReservationStatusPending, domain.ReservationStatusDeclined, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := s.Reservations.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, got.Status)
	require.NotNil(t, got.OwnerComment)
	assert.Equal(t, comment, *got.OwnerComment)
	assert.WithinDuration(t, r.CreatedAt, got.CreatedAt, time.Millisecond)

	// A nil comment keeps the previous one.
	err = s.Reservations.UpdateStatus(ctx, id,
		domain.ReservationStatusConfirmed, domain.ReservationStatusCompleted, nil)
	require.NoError(t, err)

	got, err = s.Reservations.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCompleted, got.Status)
	require.NotNil(t, got.OwnerComment)
	assert.Equal(t, comment, *got.OwnerComment)
}

func testTerminalFreesPair(t *testing.T, s Stores) {
	ctx := context.Background()
	l := newListing(t, s, nil, time.Now().Add(48*time.Hour))
	actorID := "actor-" + uuid.NewString()

	first, err := s.Reservations.Insert(ctx, newReservation(l.ID, actorID, time.Now()))
	require.NoError(t, err)

	err = s.Reservations.UpdateStatus(ctx, first,
		domain.ReservationStatusPending, domain.ReservationStatusCancelled, nil)
	require.NoError(t, err)

	second, err := s.Reservations.Insert(ctx, newReservation(l.ID, actorID, time.Now()))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	active, err := s.Reservations.FindByActorAndListing(ctx, actorID, l.ID, domain.ActiveStatuses)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second, active[0].ID)

	all, err := s.Reservations.FindByActorAndListing(ctx, actorID, l.ID, []domain.ReservationStatus{
		domain.ReservationStatusPending,
		domain.ReservationStatusCancelled,
	})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func testListOrdering(t *testing.T, s Stores) {
	ctx := context.Background()
	l := newListing(t, s, nil, time.Now().Add(48*time.Hour))
	other := newListing(t, s, nil, time.Now().Add(48*time.Hour))
	actorID := "actor-" + uuid.NewString()
	base := time.Now().Add(-time.Hour)

	older, err := s.Reservations.Insert(ctx, newReservation(l.ID, actorID, base))
	require.NoError(t, err)
	newer, err := s.Reservations.Insert(ctx, newReservation(other.ID, actorID, base.Add(time.Minute)))
	require.NoError(t, err)
	onListing, err := s.Reservations.Insert(ctx, newReservation(l.ID, "actor-"+uuid.NewString(), base.Add(2*time.Minute)))
	require.NoError(t, err)

	byActor, err := s.Reservations.ListByActor(ctx, actorID)
	require.NoError(t, err)
	require.Len(t, byActor, 2)
	assert.Equal(t, newer, byActor[0].ID)
	assert.Equal(t, older, byActor[1].ID)

	byListing, err := s.Reservations.ListByListing(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, byListing, 2)
	assert.Equal(t, onListing, byListing[0].ID)
	assert.Equal(t, older, byListing[1].ID)

	none, err := s.Reservations.ListByActor(ctx, "actor-"+uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testDelete(t *testing.T, s Stores) {
	ctx := context.Background()
	l := newListing(t, s, nil, time.Now().Add(48*time.Hour))
	actorID := "actor-" + uuid.NewString()

	id, err := s.Reservations.Insert(ctx, newReservation(l.ID, actorID, time.Now()))
	require.NoError(t, err)

	require.NoError(t, s.Reservations.Delete(ctx, id))

	_, err = s.Reservations.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)

	// The pair is free again once its active reservation is gone.
	_, err = s.Reservations.Insert(ctx, newReservation(l.ID, actorID, time.Now()))
	assert.NoError(t, err)
}
