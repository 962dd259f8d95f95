package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes backing every uniqueness key.
// The use-case existence checks remain the primary guard; these indexes
// turn the check-then-write race window into a Conflict at the store.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := []struct {
		coll string
		keys bson.D
	}{
		{"users", bson.D{{Key: "username", Value: 1}}},
		{"skills", bson.D{{Key: "name", Value: 1}}},
		{"languages", bson.D{{Key: "name", Value: 1}}},
		{"education", bson.D{{Key: "title", Value: 1}}},
		{"experiences", bson.D{{Key: "role", Value: 1}, {Key: "company", Value: 1}}},
		{"certificates", bson.D{{Key: "name", Value: 1}, {Key: "platform", Value: 1}}},
	}

	for _, spec := range specs {
		model := mongo.IndexModel{
			Keys:    spec.keys,
			Options: options.Index().SetUnique(true),
		}
		if _, err := db.Collection(spec.coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create unique index on %s: %w", spec.coll, err)
		}
	}
	return nil
}
