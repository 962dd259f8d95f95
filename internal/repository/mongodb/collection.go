package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-portfolio-backend/pkg/apperror"
)

// collection wraps a mongo collection with the CRUD shape every entity
// repository shares. D is the bson document type for the entity.
type collection[D any] struct {
	coll        *mongo.Collection
	conflictMsg string
}

func newCollection[D any](db *mongo.Database, name, conflictMsg string) collection[D] {
	return collection[D]{coll: db.Collection(name), conflictMsg: conflictMsg}
}

// findOne returns (nil, nil) when no document matches; absence is not an error.
func (c collection[D]) findOne(ctx context.Context, filter bson.M) (*D, error) {
	var doc D
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &doc, nil
}

func (c collection[D]) findByID(ctx context.Context, id string) (*D, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return c.findOne(ctx, bson.M{"_id": oid})
}

func (c collection[D]) findAll(ctx context.Context) ([]D, error) {
	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	docs := []D{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperror.Internal(err)
	}
	return docs, nil
}

func (c collection[D]) insert(ctx context.Context, doc *D) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, apperror.Conflict(c.conflictMsg)
		}
		return primitive.NilObjectID, apperror.Internal(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, apperror.Internal(fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}
	return oid, nil
}

func (c collection[D]) replace(ctx context.Context, id string, doc *D) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := c.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict(c.conflictMsg)
		}
		return apperror.Internal(err)
	}
	return nil
}

func (c collection[D]) delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperror.BadRequest("Invalid ID format")
	}
	return oid, nil
}
