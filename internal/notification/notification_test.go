package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, err := logger.InitLogger(logger.Engine("slog"), "notification-test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func testListing() *domain.Listing {
	chatID := int64(4242)
	return &domain.Listing{
		ID:          "listing-1",
		OwnerID:     "owner-1",
		Title:       "Maraude du soir",
		MissionDate: time.Date(2026, 11, 20, 18, 30, 0, 0, time.UTC),
		OwnerChatID: &chatID,
	}
}

func testReservation(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:           "reservation-1",
		ListingID:    "listing-1",
		ActorID:      "actor-1",
		ActorName:    "Camille",
		ActorContact: "camille@example.org",
		Message:      "Je peux venir en avance",
		Status:       status,
	}
}

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		b.sent = append(b.sent, msg)
	}
	return tgbotapi.Message{}, b.err
}

func TestTelegramNotifier_ReservationCreated(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	n.NotifyReservationCreated(context.Background(), testListing(), testReservation(domain.ReservationStatusPending))

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(4242), bot.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, bot.sent[0].ParseMode)
	assert.Contains(t, bot.sent[0].Text, "Nouvelle réservation")
	assert.Contains(t, bot.sent[0].Text, "Maraude du soir")
	assert.Contains(t, bot.sent[0].Text, "20.11.2026 18:30")
	assert.Contains(t, bot.sent[0].Text, "Je peux venir en avance")
}

func TestTelegramNotifier_StatusChanged(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.ReservationStatus
		wantSent int
	}{
		{name: "cancelled is reported", status: domain.ReservationStatusCancelled, wantSent: 1},
		{name: "confirmed is not", status: domain.ReservationStatusConfirmed, wantSent: 0},
		{name: "declined is not", status: domain.ReservationStatusDeclined, wantSent: 0},
		{name: "completed is not", status: domain.ReservationStatusCompleted, wantSent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := &fakeBot{}
			n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

			n.NotifyStatusChanged(context.Background(), testListing(), testReservation(tt.status))

			assert.Len(t, bot.sent, tt.wantSent)
		})
	}
}

func TestTelegramNotifier_Skips(t *testing.T) {
	log := newTestLogger(t)

	t.Run("no chat id", func(t *testing.T) {
		bot := &fakeBot{}
		n := &TelegramNotifier{bot: bot, logger: log}
		listing := testListing()
		listing.OwnerChatID = nil

		n.NotifyReservationCreated(context.Background(), listing, testReservation(domain.ReservationStatusPending))
		assert.Empty(t, bot.sent)
	})

	t.Run("cancelled context", func(t *testing.T) {
		bot := &fakeBot{}
		n := &TelegramNotifier{bot: bot, logger: log}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		n.NotifyReservationCreated(ctx, testListing(), testReservation(domain.ReservationStatusPending))
		assert.Empty(t, bot.sent)
	})

	t.Run("disabled bot", func(t *testing.T) {
		n, err := NewTelegramNotifier("", log)
		require.NoError(t, err)

		assert.NotPanics(t, func() {
			n.NotifyReservationCreated(context.Background(), testListing(), testReservation(domain.ReservationStatusPending))
		})
	})

	t.Run("send error is swallowed", func(t *testing.T) {
		bot := &fakeBot{err: errors.New("telegram is down")}
		n := &TelegramNotifier{bot: bot, logger: log}

		assert.NotPanics(t, func() {
			n.NotifyReservationCreated(context.Background(), testListing(), testReservation(domain.ReservationStatusPending))
		})
		assert.Len(t, bot.sent, 1)
	})
}

func TestCreatedText_EscapesMarkdown(t *testing.T) {
	r := testReservation(domain.ReservationStatusPending)
	r.ActorName = "jean_paul*"

	text := createdText(testListing(), r)

	assert.Contains(t, text, `jean\_paul\*`)
}

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Events(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, time.Second, newTestLogger(t))
	occurredAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return occurredAt }

	p.NotifyReservationCreated(context.Background(), testListing(), testReservation(domain.ReservationStatusPending))
	p.NotifyStatusChanged(context.Background(), testListing(), testReservation(domain.ReservationStatusConfirmed))

	require.Len(t, w.msgs, 2)

	var created ReservationEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &created))
	assert.Equal(t, EventReservationCreated, created.Type)
	assert.Equal(t, "reservation-1", string(w.msgs[0].Key))
	assert.Equal(t, "listing-1", created.ListingID)
	assert.Equal(t, "owner-1", created.OwnerID)
	assert.Equal(t, domain.ReservationStatusPending, created.Reservation.Status)
	assert.True(t, occurredAt.Equal(created.OccurredAt))

	var changed ReservationEvent
	require.NoError(t, json.Unmarshal(w.msgs[1].Value, &changed))
	assert.Equal(t, EventReservationStatusChanged, changed.Type)
	assert.Equal(t, domain.ReservationStatusConfirmed, changed.Reservation.Status)
	require.Len(t, w.msgs[1].Headers, 1)
	assert.Equal(t, EventReservationStatusChanged, string(w.msgs[1].Headers[0].Value))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteErrorIsLogged(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unreachable")}
	p := newKafkaPublisher(w, time.Second, newTestLogger(t))

	assert.NotPanics(t, func() {
		p.NotifyReservationCreated(context.Background(), testListing(), testReservation(domain.ReservationStatusPending))
	})
}

func TestNewKafkaPublisher_Validation(t *testing.T) {
	log := newTestLogger(t)

	_, err := NewKafkaPublisher(KafkaOptions{Topic: "reservations"}, log)
	assert.Error(t, err)

	_, err = NewKafkaPublisher(KafkaOptions{Brokers: []string{"localhost:9092"}}, log)
	assert.Error(t, err)

	p, err := NewKafkaPublisher(KafkaOptions{Brokers: []string{"localhost:9092"}, Topic: "reservations"}, log)
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

type recordingNotifier struct {
	created []string
	changed []string
}

func (n *recordingNotifier) NotifyReservationCreated(_ context.Context, _ *domain.Listing, r *domain.Reservation) {
	n.created = append(n.created, r.ID)
}

func (n *recordingNotifier) NotifyStatusChanged(_ context.Context, _ *domain.Listing, r *domain.Reservation) {
	n.changed = append(n.changed, r.ID)
}

func TestMulti_FansOut(t *testing.T) {
	a, b := &recordingNotifier{}, &recordingNotifier{}
	m := Multi{a, b}

	m.NotifyReservationCreated(context.Background(), testListing(), testReservation(domain.ReservationStatusPending))
	m.NotifyStatusChanged(context.Background(), testListing(), testReservation(domain.ReservationStatusCancelled))

	for _, n := range []*recordingNotifier{a, b} {
		assert.Equal(t, []string{"reservation-1"}, n.created)
		assert.Equal(t, []string{"reservation-1"}, n.changed)
	}
}
