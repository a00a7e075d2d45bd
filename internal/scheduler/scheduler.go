package scheduler

import (
	"context"
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationCompleter interface {
	CompleteFinished(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically completes confirmed reservations of missions that
// already took place.
type Scheduler struct {
	reservationService reservationCompleter
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService reservationCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.reservationService.CompleteFinished(ctx)
	for _, r := range completed {
		s.logger.Info("reservation completed",
			logger.String("reservation_id", r.ID),
			logger.String("actor_id", r.ActorID),
			logger.String("listing_id", r.ListingID),
		)
	}
	if err != nil {
		s.logger.Error("failed to complete finished reservations",
			logger.Int("completed", len(completed)),
			logger.String("error", err.Error()),
		)
	}
}
