// Package repository provides the generic entity/mapper/repository
// persistence abstraction and its account specialization.
package repository

import (
	"context"
	"errors"

	"github.com/identora/account-system/internal/core/domain"
	"github.com/identora/account-system/internal/core/ports"
)

// ErrNotFound signals a delete against an identifier with no stored record.
var ErrNotFound = errors.New("entity not found")

// Mapper converts between persisted documents and domain entities. ToDomain
// must yield a fresh instance on every call.
type Mapper[E domain.Entity, D any] interface {
	ToDomain(doc D) (E, error)
	ToPersistence(entity E) D
}

// Repository is a key-value backed collection of entities. Writes are
// validated: an invalid entity is never stored.
type Repository[E domain.Entity, D any] struct {
	store  ports.DocumentStore[D]
	mapper Mapper[E, D]
}

func New[E domain.Entity, D any](store ports.DocumentStore[D], mapper Mapper[E, D]) *Repository[E, D] {
	return &Repository[E, D]{store: store, mapper: mapper}
}

// Insert validates the entity and, only on success, writes its persisted
// form keyed by uid. Returns the entity's identifier.
func (r *Repository[E, D]) Insert(ctx context.Context, entity E) (string, error) {
	if err := entity.Validate(); err != nil {
		return "", err
	}
	if err := r.store.Put(ctx, entity.UID(), r.mapper.ToPersistence(entity)); err != nil {
		return "", err
	}
	return entity.UID(), nil
}

// FindByID returns the matching entity. Absence is reported through the
// bool, never as an error.
func (r *Repository[E, D]) FindByID(ctx context.Context, id string) (E, bool, error) {
	var zero E
	doc, ok, err := r.store.Get(ctx, id)
	if err != nil || !ok {
		return zero, false, err
	}
	entity, err := r.mapper.ToDomain(doc)
	if err != nil {
		return zero, false, err
	}
	return entity, true, nil
}

// Delete removes and returns the entity stored under id. Deleting an
// unknown id fails with ErrNotFound.
func (r *Repository[E, D]) Delete(ctx context.Context, id string) (E, error) {
	var zero E
	doc, ok, err := r.store.Remove(ctx, id)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrNotFound
	}
	return r.mapper.ToDomain(doc)
}

// Entities maps every stored record through the mapper, producing fresh
// entity instances on each call.
func (r *Repository[E, D]) Entities(ctx context.Context) ([]E, error) {
	docs, err := r.store.Values(ctx)
	if err != nil {
		return nil, err
	}
	entities := make([]E, 0, len(docs))
	for _, doc := range docs {
		entity, err := r.mapper.ToDomain(doc)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// Records returns the raw stored documents.
func (r *Repository[E, D]) Records(ctx context.Context) ([]D, error) {
	return r.store.Values(ctx)
}
