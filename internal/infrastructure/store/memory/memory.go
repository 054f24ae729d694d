// Package memory provides an in-memory DocumentStore. It is the default
// backing engine and the one the test suites run against.
package memory

import (
	"context"
	"sync"

	"github.com/identora/account-system/internal/core/ports"
)

// Store keeps documents in a map guarded by a RWMutex. Keys are unique;
// iteration order is unspecified.
type Store[D any] struct {
	mu   sync.RWMutex
	docs map[string]D
}

var _ ports.DocumentStore[struct{}] = (*Store[struct{}])(nil)

func New[D any]() *Store[D] {
	return &Store[D]{docs: make(map[string]D)}
}

func (s *Store[D]) Put(_ context.Context, key string, doc D) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = doc
	return nil
}

func (s *Store[D]) Get(_ context.Context, key string) (D, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	return doc, ok, nil
}

func (s *Store[D]) Remove(_ context.Context, key string) (D, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[key]
	if ok {
		delete(s.docs, key)
	}
	return doc, ok, nil
}

func (s *Store[D]) Values(_ context.Context) ([]D, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]D, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	return out, nil
}

// Len reports the number of stored documents.
func (s *Store[D]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
