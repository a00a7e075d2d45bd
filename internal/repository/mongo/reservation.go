package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// reservationDocument carries a derived "active" flag so that the partial
// unique index can use a plain equality filter.
type reservationDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	ListingID    string             `bson:"listing_id"`
	ActorID      string             `bson:"actor_id"`
	ActorName    string             `bson:"actor_name"`
	ActorContact string             `bson:"actor_contact"`
	Message      string             `bson:"message"`
	Status       string             `bson:"status"`
	Active       bool               `bson:"active"`
	OwnerComment *string            `bson:"owner_comment,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *reservationDocument) toDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:           d.ID.Hex(),
		ListingID:    d.ListingID,
		ActorID:      d.ActorID,
		ActorName:    d.ActorName,
		ActorContact: d.ActorContact,
		Message:      d.Message,
		Status:       domain.ReservationStatus(d.Status),
		OwnerComment: d.OwnerComment,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

type ReservationRepository struct {
	collection *mongo.Collection
	timeouts   Timeouts
}

func NewReservationRepo(db *mongo.Database, timeouts Timeouts) *ReservationRepository {
	return &ReservationRepository{
		collection: db.Collection(ReservationsCollection),
		timeouts:   timeouts,
	}
}

func (r *ReservationRepository) Insert(ctx context.Context, res *domain.Reservation) (string, error) {
	ctx, cancel := withTimeout(ctx, r.timeouts.Write)
	defer cancel()

	doc := reservationDocument{
		ID:           primitive.NewObjectID(),
		ListingID:    res.ListingID,
		ActorID:      res.ActorID,
		ActorName:    res.ActorName,
		ActorContact: res.ActorContact,
		Message:      res.Message,
		Status:       string(res.Status),
		Active:       res.Status.Active(),
		OwnerComment: res.OwnerComment,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrDuplicateReservation
		}
		return "", unavailable("insert reservation", err)
	}

	res.ID = doc.ID.Hex()
	return res.ID, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	ctx, cancel := withTimeout(ctx, r.timeouts.Read)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrReservationNotFound
	}

	var doc reservationDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, unavailable("find reservation", err)
	}

	return doc.toDomain(), nil
}

func (r *ReservationRepository) FindByActorAndListing(
	ctx context.Context,
	actorID, listingID string,
	statuses []domain.ReservationStatus,
) ([]*domain.Reservation, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	filter := bson.M{
		"actor_id":   actorID,
		"listing_id": listingID,
		"status":     bson.M{"$in": values},
	}
	return r.find(ctx, "find reservations by actor and listing", filter)
}

func (r *ReservationRepository) UpdateStatus(
	ctx context.Context,
	id string,
	from, to domain.ReservationStatus,
	ownerComment *string,
) error {
	ctx, cancel := withTimeout(ctx, r.timeouts.Write)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return domain.ErrReservationNotFound
	}

	set := bson.M{
		"status":     string(to),
		"active":     to.Active(),
		"updated_at": time.Now().UTC(),
	}
	if ownerComment != nil {
		set["owner_comment"] = *ownerComment
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "status": string(from)},
		bson.M{"$set": set},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateReservation
		}
		return unavailable("update reservation status", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return unavailable("check reservation status", err)
	}
	if count == 0 {
		return domain.ErrReservationNotFound
	}

	return domain.ErrInvalidTransition
}

func (r *ReservationRepository) ListByActor(ctx context.Context, actorID string) ([]*domain.Reservation, error) {
	return r.find(ctx, "list reservations by actor", bson.M{"actor_id": actorID})
}

func (r *ReservationRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Reservation, error) {
	return r.find(ctx, "list reservations by listing", bson.M{"listing_id": listingID})
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.timeouts.Write)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return domain.ErrReservationNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return unavailable("delete reservation", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) find(ctx context.Context, op string, filter bson.M) ([]*domain.Reservation, error) {
	ctx, cancel := withTimeout(ctx, r.timeouts.Read)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, unavailable(op, err)
	}
	defer cursor.Close(ctx)

	var docs []reservationDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, unavailable(op, err)
	}

	res := make([]*domain.Reservation, 0, len(docs))
	for i := range docs {
		res = append(res, docs[i].toDomain())
	}
	return res, nil
}
