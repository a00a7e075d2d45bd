package notification

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/logger"
)

const (
	EventReservationCreated       = "reservation.created"
	EventReservationStatusChanged = "reservation.status_changed"
)

// ReservationEvent is the payload published for every lifecycle change.
type ReservationEvent struct {
	Type        string             `json:"type"`
	Reservation domain.Reservation `json:"reservation"`
	ListingID   string             `json:"listing_id"`
	OwnerID     string             `json:"owner_id"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaOptions struct {
	Brokers      []string
	Topic        string
	MaxAttempts  int
	BatchTimeout time.Duration
	WriteTimeout time.Duration
}

// KafkaPublisher writes reservation events keyed by reservation id, so all
// events of one reservation land on the same partition. Events keep their
// order as long as the caller publishes them one at a time.
type KafkaPublisher struct {
	writer       messageWriter
	writeTimeout time.Duration
	logger       logger.Logger
	now          func() time.Time
}

func NewKafkaPublisher(opts KafkaOptions, log logger.Logger) (*KafkaPublisher, error) {
	if len(opts.Brokers) == 0 {
		return nil, errors.New("at least one kafka broker is required")
	}
	if opts.Topic == "" {
		return nil, errors.New("kafka topic cannot be empty")
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(opts.Brokers...),
		Topic:        opts.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  opts.MaxAttempts,
		BatchTimeout: opts.BatchTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("kafka writer error", logger.String("message", msg), logger.Any("args", args))
		}),
	}

	return newKafkaPublisher(writer, opts.WriteTimeout, log), nil
}

func newKafkaPublisher(w messageWriter, writeTimeout time.Duration, log logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer:       w,
		writeTimeout: writeTimeout,
		logger:       log,
		now:          time.Now,
	}
}

func (p *KafkaPublisher) NotifyReservationCreated(ctx context.Context, listing *domain.Listing, r *domain.Reservation) {
	p.publish(ctx, EventReservationCreated, listing, r)
}

func (p *KafkaPublisher) NotifyStatusChanged(ctx context.Context, listing *domain.Listing, r *domain.Reservation) {
	p.publish(ctx, EventReservationStatusChanged, listing, r)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, listing *domain.Listing, r *domain.Reservation) {
	event := ReservationEvent{
		Type:        eventType,
		Reservation: *r,
		ListingID:   listing.ID,
		OwnerID:     listing.OwnerID,
		OccurredAt:  p.now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to encode reservation event",
			logger.String("reservation_id", r.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(r.ID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish reservation event",
			logger.String("type", eventType),
			logger.String("reservation_id", r.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
