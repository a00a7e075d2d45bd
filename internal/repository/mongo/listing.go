package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type listingDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	OwnerID        string             `bson:"owner_id"`
	Title          string             `bson:"title"`
	Description    string             `bson:"description"`
	Location       string             `bson:"location"`
	MissionDate    time.Time          `bson:"mission_date"`
	AvailableSlots *int               `bson:"available_slots"`
	OwnerChatID    *int64             `bson:"owner_chat_id,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (d *listingDocument) toDomain() *domain.Listing {
	return &domain.Listing{
		ID:             d.ID.Hex(),
		OwnerID:        d.OwnerID,
		Title:          d.Title,
		Description:    d.Description,
		Location:       d.Location,
		MissionDate:    d.MissionDate.UTC(),
		AvailableSlots: d.AvailableSlots,
		OwnerChatID:    d.OwnerChatID,
		CreatedAt:      d.CreatedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
}

type ListingRepository struct {
	collection *mongo.Collection
	timeouts   Timeouts
}

func NewListingRepo(db *mongo.Database, timeouts Timeouts) *ListingRepository {
	return &ListingRepository{
		collection: db.Collection(ListingsCollection),
		timeouts:   timeouts,
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	ctx, cancel := withTimeout(ctx, r.timeouts.Write)
	defer cancel()

	doc := listingDocument{
		ID:             primitive.NewObjectID(),
		OwnerID:        l.OwnerID,
		Title:          l.Title,
		Description:    l.Description,
		Location:       l.Location,
		MissionDate:    l.MissionDate,
		AvailableSlots: l.AvailableSlots,
		OwnerChatID:    l.OwnerChatID,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return unavailable("insert listing", err)
	}

	l.ID = doc.ID.Hex()
	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	ctx, cancel := withTimeout(ctx, r.timeouts.Read)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrListingNotFound
	}

	var doc listingDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, unavailable("find listing", err)
	}

	return doc.toDomain(), nil
}

func (r *ListingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	return r.find(ctx, "list listings", bson.M{})
}

func (r *ListingRepository) ListEndedBefore(ctx context.Context, t time.Time) ([]*domain.Listing, error) {
	return r.find(ctx, "list ended listings", bson.M{"mission_date": bson.M{"$lt": t}})
}

func (r *ListingRepository) find(ctx context.Context, op string, filter bson.M) ([]*domain.Listing, error) {
	ctx, cancel := withTimeout(ctx, r.timeouts.Read)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "mission_date", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, unavailable(op, err)
	}
	defer cursor.Close(ctx)

	var docs []listingDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, unavailable(op, err)
	}

	res := make([]*domain.Listing, 0, len(docs))
	for i := range docs {
		res = append(res, docs[i].toDomain())
	}
	return res, nil
}

// UpdateCapacity applies delta with a single conditional $inc. A null
// available_slots never matches $gte, so unlimited listings are untouched.
func (r *ListingRepository) UpdateCapacity(ctx context.Context, id string, delta int) error {
	ctx, cancel := withTimeout(ctx, r.timeouts.Write)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return domain.ErrListingNotFound
	}

	filter := bson.M{
		"_id":             oid,
		"available_slots": bson.M{"$gte": -delta},
	}
	update := bson.M{
		"$inc": bson.M{"available_slots": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return unavailable("update capacity", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	var doc listingDocument
	if err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrListingNotFound
		}
		return unavailable("check capacity", err)
	}
	if doc.AvailableSlots == nil {
		return nil
	}

	return fmt.Errorf("update capacity by %d: %w", delta, domain.ErrNoAvailableSlots)
}
