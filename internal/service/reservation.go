package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/metrics"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	reservations ports.ReservationStore
	listings     ports.ListingStore
	locker       ports.PairLocker
	notifier     ports.ReservationNotifier
	validate     *validator.Validate
	logger       logger.Logger
	now          func() time.Time
	notifyQueue  *notifyQueue
}

func NewReservationService(
	reservations ports.ReservationStore,
	listings ports.ListingStore,
	locker ports.PairLocker,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		listings:     listings,
		locker:       locker,
		notifier:     notifier,
		validate:     newValidator(),
		logger:       logger,
		now:          time.Now,
		notifyQueue:  newNotifyQueue(notifyQueueSize),
	}
}

// Close waits for pending notifications to be handed to the notifier.
func (s *ReservationService) Close(ctx context.Context) error {
	return s.notifyQueue.close(ctx)
}

// notify queues a notification. Jobs run one at a time, so the events of a
// reservation reach the notifier in the order they happened.
func (s *ReservationService) notify(reservationID string, job func(n ports.ReservationNotifier)) {
	n := s.notifier
	if !s.notifyQueue.push(func() { job(n) }) {
		s.logger.Warn("notification dropped, service is closed",
			logger.String("reservation_id", reservationID),
		)
	}
}

func pairKey(actorID, listingID string) string {
	return "reservation:" + actorID + ":" + listingID
}

func (s *ReservationService) CreateReservation(
	ctx context.Context,
	input domain.CreateReservationInput,
) (*domain.Reservation, error) {
	input.ActorName = strings.TrimSpace(input.ActorName)
	input.ActorContact = strings.TrimSpace(input.ActorContact)
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	unlock, err := s.locker.Lock(ctx, pairKey(input.ActorID, input.ListingID))
	if err != nil {
		return nil, fmt.Errorf("lock reservation pair: %w", err)
	}
	defer unlock()

	listing, err := s.listings.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}

	// An actor holding the last slot must still see the duplicate, not "full".
	active, err := s.reservations.FindByActorAndListing(ctx, input.ActorID, input.ListingID, domain.ActiveStatuses)
	if err != nil {
		return nil, fmt.Errorf("check active reservation: %w", err)
	}
	if len(active) > 0 {
		metrics.ReservationsRejectedTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrDuplicateReservation
	}

	if listing.AvailableSlots != nil && *listing.AvailableSlots <= 0 {
		metrics.ReservationsRejectedTotal.WithLabelValues("no_slots").Inc()
		return nil, domain.ErrNoAvailableSlots
	}

	// The slot is taken before the insert so that two actors racing for the
	// last slot cannot both get it. A failed insert gives it back.
	reserved := false
	if listing.AvailableSlots != nil {
		if err = s.listings.UpdateCapacity(ctx, listing.ID, -1); err != nil {
			if errors.Is(err, domain.ErrNoAvailableSlots) {
				metrics.ReservationsRejectedTotal.WithLabelValues("no_slots").Inc()
			}
			return nil, fmt.Errorf("reserve slot: %w", err)
		}
		reserved = true
	}

	now := s.now().UTC()
	r := &domain.Reservation{
		ListingID:    input.ListingID,
		ActorID:      input.ActorID,
		ActorName:    input.ActorName,
		ActorContact: input.ActorContact,
		Message:      input.Message,
		Status:       domain.ReservationStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.reservations.Insert(ctx, r)
	if err != nil {
		if reserved {
			s.releaseSlot(context.WithoutCancel(ctx), listing.ID)
		}
		if errors.Is(err, domain.ErrDuplicateReservation) {
			metrics.ReservationsRejectedTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	r.ID = id

	metrics.ReservationsCreatedTotal.Inc()
	s.logger.Info("reservation created",
		logger.String("reservation_id", r.ID),
		logger.String("listing_id", r.ListingID),
		logger.String("actor_id", r.ActorID),
	)

	// Queued under the pair lock: a status change of this reservation cannot
	// be queued before it.
	created := *r
	notifyCtx := context.WithoutCancel(ctx)
	s.notify(r.ID, func(n ports.ReservationNotifier) {
		n.NotifyReservationCreated(notifyCtx, listing, &created)
	})

	return r, nil
}

func (s *ReservationService) releaseSlot(ctx context.Context, listingID string) {
	metrics.CapacityCompensationsTotal.Inc()
	if err := s.listings.UpdateCapacity(ctx, listingID, 1); err != nil {
		s.logger.Error("failed to give back reserved slot",
			logger.String("listing_id", listingID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReservationService) HasActiveReservation(ctx context.Context, actorID, listingID string) (bool, error) {
	active, err := s.reservations.FindByActorAndListing(ctx, actorID, listingID, domain.ActiveStatuses)
	if err != nil {
		return false, fmt.Errorf("find active reservation: %w", err)
	}
	return len(active) > 0, nil
}

func (s *ReservationService) GetReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// UpdateStatus moves a reservation along the status graph. It does not check
// who is asking; see UpdateStatusAs.
func (s *ReservationService) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.ReservationStatus,
	ownerComment *string,
) (*domain.Reservation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return s.transition(ctx, r, status, ownerComment)
}

// UpdateStatusAs checks that callerID may request status before applying it.
// The actor may cancel; the listing owner may cancel, confirm, decline or
// complete.
func (s *ReservationService) UpdateStatusAs(
	ctx context.Context,
	callerID, id string,
	status domain.ReservationStatus,
	ownerComment *string,
) (*domain.Reservation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	if callerID == "" {
		return nil, domain.ErrForbidden
	}

	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	listing, err := s.listings.GetByID(ctx, r.ListingID)
	if err != nil && !errors.Is(err, domain.ErrListingNotFound) {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	isOwner := listing != nil && listing.OwnerID == callerID
	isActor := r.ActorID == callerID

	allowed := isOwner
	if status == domain.ReservationStatusCancelled {
		allowed = isOwner || isActor
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if !isOwner {
		// Comments are the owner's.
		ownerComment = nil
	}

	return s.transition(ctx, r, status, ownerComment)
}

func (s *ReservationService) transition(
	ctx context.Context,
	r *domain.Reservation,
	to domain.ReservationStatus,
	ownerComment *string,
) (*domain.Reservation, error) {
	if !domain.CanTransition(r.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, r.Status, to)
	}

	unlock, err := s.locker.Lock(ctx, pairKey(r.ActorID, r.ListingID))
	if err != nil {
		return nil, fmt.Errorf("lock reservation pair: %w", err)
	}
	defer unlock()

	if err := s.reservations.UpdateStatus(ctx, r.ID, r.Status, to, ownerComment); err != nil {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}

	from := r.Status
	updated := *r
	updated.Status = to
	updated.UpdatedAt = s.now().UTC()
	if ownerComment != nil {
		updated.OwnerComment = ownerComment
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(to)).Inc()
	s.logger.Info("reservation status changed",
		logger.String("reservation_id", r.ID),
		logger.String("listing_id", r.ListingID),
		logger.String("from", string(from)),
		logger.String("to", string(to)),
	)

	if to.ReleasesSlot() {
		if err := s.listings.UpdateCapacity(ctx, r.ListingID, 1); err != nil {
			if !errors.Is(err, domain.ErrListingNotFound) {
				return nil, fmt.Errorf("release slot: %w", err)
			}
			s.logger.Warn("slot not released, listing is gone",
				logger.String("listing_id", r.ListingID),
				logger.String("reservation_id", r.ID),
			)
		}
	}

	changed := updated
	notifyCtx := context.WithoutCancel(ctx)
	s.notify(r.ID, func(n ports.ReservationNotifier) {
		s.notifyStatusChanged(notifyCtx, n, &changed)
	})

	return &updated, nil
}

func (s *ReservationService) notifyStatusChanged(ctx context.Context, n ports.ReservationNotifier, r *domain.Reservation) {
	listing, err := s.listings.GetByID(ctx, r.ListingID)
	if err != nil {
		s.logger.Error("failed to get listing for status notification",
			logger.String("listing_id", r.ListingID),
			logger.String("error", err.Error()),
		)
		return
	}

	n.NotifyStatusChanged(ctx, listing, r)
}

func (s *ReservationService) ListByActor(ctx context.Context, actorID string) ([]*domain.Reservation, error) {
	return s.reservations.ListByActor(ctx, actorID)
}

func (s *ReservationService) ListByListing(ctx context.Context, listingID string) ([]*domain.Reservation, error) {
	return s.reservations.ListByListing(ctx, listingID)
}

// DeleteReservation removes the record outright. Capacity is left untouched.
func (s *ReservationService) DeleteReservation(ctx context.Context, id string) error {
	if err := s.reservations.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	s.logger.Warn("reservation deleted", logger.String("reservation_id", id))
	return nil
}

// CompleteFinished marks confirmed reservations of past missions completed.
func (s *ReservationService) CompleteFinished(ctx context.Context) ([]*domain.Reservation, error) {
	ended, err := s.listings.ListEndedBefore(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list ended listings: %w", err)
	}

	var completed []*domain.Reservation
	for _, l := range ended {
		reservations, err := s.reservations.ListByListing(ctx, l.ID)
		if err != nil {
			return completed, fmt.Errorf("list reservations of %s: %w", l.ID, err)
		}

		for _, r := range reservations {
			if r.Status != domain.ReservationStatusConfirmed {
				continue
			}

			updated, err := s.transition(ctx, r, domain.ReservationStatusCompleted, nil)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidTransition) {
					continue
				}
				return completed, fmt.Errorf("complete reservation %s: %w", r.ID, err)
			}
			completed = append(completed, updated)
		}
	}

	if len(completed) > 0 {
		s.logger.Info("finished reservations completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}
