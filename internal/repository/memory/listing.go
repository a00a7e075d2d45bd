package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
)

// ListingRepository keeps listings in process memory. It backs the
// "memory" storage backend and the service tests.
type ListingRepository struct {
	mu       sync.RWMutex
	listings map[string]domain.Listing
}

func NewListingRepo() *ListingRepository {
	return &ListingRepository{listings: make(map[string]domain.Listing)}
}

func (r *ListingRepository) Create(_ context.Context, l *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	r.listings[l.ID] = cloneListing(*l)
	return nil
}

func (r *ListingRepository) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	res := cloneListing(l)
	return &res, nil
}

func (r *ListingRepository) List(_ context.Context) ([]*domain.Listing, error) {
	return r.filter(func(domain.Listing) bool { return true }), nil
}

func (r *ListingRepository) ListEndedBefore(_ context.Context, t time.Time) ([]*domain.Listing, error) {
	return r.filter(func(l domain.Listing) bool { return l.MissionDate.Before(t) }), nil
}

func (r *ListingRepository) filter(keep func(domain.Listing) bool) []*domain.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		if !keep(l) {
			continue
		}
		c := cloneListing(l)
		res = append(res, &c)
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].MissionDate.Equal(res[j].MissionDate) {
			return res[i].ID < res[j].ID
		}
		return res[i].MissionDate.Before(res[j].MissionDate)
	})
	return res
}

func (r *ListingRepository) UpdateCapacity(_ context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return domain.ErrListingNotFound
	}
	if l.AvailableSlots == nil {
		return nil
	}

	slots := *l.AvailableSlots + delta
	if slots < 0 {
		return domain.ErrNoAvailableSlots
	}
	l.AvailableSlots = &slots
	l.UpdatedAt = time.Now().UTC()
	r.listings[id] = l
	return nil
}

func cloneListing(l domain.Listing) domain.Listing {
	if l.AvailableSlots != nil {
		slots := *l.AvailableSlots
		l.AvailableSlots = &slots
	}
	if l.OwnerChatID != nil {
		chatID := *l.OwnerChatID
		l.OwnerChatID = &chatID
	}
	return l
}
