package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ListingsCollection     = "listings"
	ReservationsCollection = "reservations"
)

type Timeouts struct {
	Read  time.Duration
	Write time.Duration
}

// withTimeout bounds ctx by timeout unless it already has a tighter deadline.
// Session contexts are returned unchanged so transactions keep working.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}

	return context.WithTimeout(ctx, timeout)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

// objectID parses a hex id. Malformed ids cannot exist in the collection, so
// callers treat ok == false as not found.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
