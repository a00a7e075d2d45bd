package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ActivePairIndex = "reservations_active_pair_uq"

var (
	ListingsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "mission_date", Value: 1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	ReservationsIndexes = []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "actor_id", Value: 1},
				{Key: "listing_id", Value: 1},
			},
			Options: options.Index().
				SetName(ActivePairIndex).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"active": true}),
		},
		{Keys: bson.D{{Key: "actor_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "listing_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	ReservationValidator = bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"listing_id", "actor_id", "actor_name", "status", "active", "created_at"},
			"properties": bson.M{
				"status": bson.M{
					"enum": []string{"pending", "confirmed", "cancelled", "declined", "completed"},
				},
				"active": bson.M{"bsonType": "bool"},
			},
		},
	}
)

// EnsureSchema creates the collections and their indexes if missing. It is
// safe to run on every start.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	collections := map[string]struct {
		Indexes   []mongo.IndexModel
		Validator bson.M
	}{
		ListingsCollection: {
			Indexes: ListingsIndexes,
		},
		ReservationsCollection: {
			Indexes:   ReservationsIndexes,
			Validator: ReservationValidator,
		},
	}

	for name, def := range collections {
		if err := ensureCollection(ctx, db, name, def.Validator); err != nil {
			return fmt.Errorf("ensure collection %s: %w", name, err)
		}
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, def.Indexes); err != nil {
			return fmt.Errorf("ensure indexes for %s: %w", name, err)
		}
	}

	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		opts := options.CreateCollection()
		if validator != nil {
			opts.SetValidator(validator)
		}
		return db.CreateCollection(ctx, name, opts)
	}

	if validator == nil {
		return nil
	}

	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	return db.RunCommand(ctx, command).Err()
}
