package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_CompletesFinished(t *testing.T) {
	completer := mocks.NewMockReservationCompleter(t)
	log := newTestLogger(t)

	s := New(completer, 50*time.Millisecond, log)

	completed := []*domain.Reservation{
		{ID: "r1", ListingID: "l1", ActorID: "a1", Status: domain.ReservationStatusCompleted},
	}
	completer.EXPECT().CompleteFinished(mock.Anything).Return(completed, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	completer := mocks.NewMockReservationCompleter(t)
	log := newTestLogger(t)

	s := New(completer, 50*time.Millisecond, log)

	partial := []*domain.Reservation{{ID: "r1", ListingID: "l1", ActorID: "a1"}}
	completer.EXPECT().CompleteFinished(mock.Anything).Return(partial, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	completer := mocks.NewMockReservationCompleter(t)
	log := newTestLogger(t)

	s := New(completer, time.Second, log)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	completer := mocks.NewMockReservationCompleter(t)
	log := newTestLogger(t)

	s := New(completer, 20*time.Millisecond, log)

	completer.EXPECT().CompleteFinished(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 2)
}
