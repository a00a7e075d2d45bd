package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
)

type pair struct {
	actorID   string
	listingID string
}

// ReservationRepository keeps reservations in process memory. The active
// index plays the role of the partial unique index of the SQL backend.
type ReservationRepository struct {
	mu           sync.RWMutex
	reservations map[string]domain.Reservation
	active       map[pair]string
}

func NewReservationRepo() *ReservationRepository {
	return &ReservationRepository{
		reservations: make(map[string]domain.Reservation),
		active:       make(map[pair]string),
	}
}

func (r *ReservationRepository) Insert(_ context.Context, res *domain.Reservation) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pair{actorID: res.ActorID, listingID: res.ListingID}
	if res.Status.Active() {
		if _, taken := r.active[key]; taken {
			return "", domain.ErrDuplicateReservation
		}
	}

	res.ID = uuid.New().String()
	r.reservations[res.ID] = cloneReservation(*res)
	if res.Status.Active() {
		r.active[key] = res.ID
	}

	return res.ID, nil
}

func (r *ReservationRepository) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	c := cloneReservation(res)
	return &c, nil
}

func (r *ReservationRepository) FindByActorAndListing(
	_ context.Context,
	actorID, listingID string,
	statuses []domain.ReservationStatus,
) ([]*domain.Reservation, error) {
	return r.filter(func(res domain.Reservation) bool {
		return res.ActorID == actorID && res.ListingID == listingID && slices.Contains(statuses, res.Status)
	}), nil
}

func (r *ReservationRepository) UpdateStatus(
	_ context.Context,
	id string,
	from, to domain.ReservationStatus,
	ownerComment *string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.reservations[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	if res.Status != from {
		return domain.ErrInvalidTransition
	}

	key := pair{actorID: res.ActorID, listingID: res.ListingID}
	if to.Active() {
		if owner, taken := r.active[key]; taken && owner != id {
			return domain.ErrDuplicateReservation
		}
		r.active[key] = id
	} else if r.active[key] == id {
		delete(r.active, key)
	}

	res.Status = to
	if ownerComment != nil {
		comment := *ownerComment
		res.OwnerComment = &comment
	}
	res.UpdatedAt = time.Now().UTC()
	r.reservations[id] = res

	return nil
}

func (r *ReservationRepository) ListByActor(_ context.Context, actorID string) ([]*domain.Reservation, error) {
	return r.filter(func(res domain.Reservation) bool { return res.ActorID == actorID }), nil
}

func (r *ReservationRepository) ListByListing(_ context.Context, listingID string) ([]*domain.Reservation, error) {
	return r.filter(func(res domain.Reservation) bool { return res.ListingID == listingID }), nil
}

func (r *ReservationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.reservations[id]
	if !ok {
		return domain.ErrReservationNotFound
	}

	key := pair{actorID: res.ActorID, listingID: res.ListingID}
	if r.active[key] == id {
		delete(r.active, key)
	}
	delete(r.reservations, id)

	return nil
}

// filter returns matches newest first.
func (r *ReservationRepository) filter(keep func(domain.Reservation) bool) []*domain.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Reservation, 0)
	for _, v := range r.reservations {
		if !keep(v) {
			continue
		}
		c := cloneReservation(v)
		res = append(res, &c)
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID > res[j].ID
		}
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res
}

func cloneReservation(res domain.Reservation) domain.Reservation {
	if res.OwnerComment != nil {
		comment := *res.OwnerComment
		res.OwnerComment = &comment
	}
	return res
}
