package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/identora/account-system/internal/core/ports"
)

// Store is a DocumentStore backed by a MongoDB collection, keyed on _id.
// Document types are expected to carry bson tags with an inline _id field.
type Store[D any] struct {
	coll *mongo.Collection
}

var _ ports.DocumentStore[struct{}] = (*Store[struct{}])(nil)

func NewStore[D any](db *mongo.Database, collection string) *Store[D] {
	return &Store[D]{coll: db.Collection(collection)}
}

func (s *Store[D]) Put(ctx context.Context, key string, doc D) error {
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put document: %w", err)
	}
	return nil
}

func (s *Store[D]) Get(ctx context.Context, key string) (D, bool, error) {
	var doc D
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, false, nil
	}
	if err != nil {
		return doc, false, fmt.Errorf("get document: %w", err)
	}
	return doc, true, nil
}

func (s *Store[D]) Remove(ctx context.Context, key string) (D, bool, error) {
	var doc D
	err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, false, nil
	}
	if err != nil {
		return doc, false, fmt.Errorf("remove document: %w", err)
	}
	return doc, true, nil
}

func (s *Store[D]) Values(ctx context.Context) ([]D, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	var docs []D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}
	return docs, nil
}
