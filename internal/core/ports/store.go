package ports

import "context"

// DocumentStore is the minimal key-value contract the persistence layer
// requires from a backing engine. Any engine satisfying it (in-memory map,
// document database, relational table) can hold the repository's records.
type DocumentStore[D any] interface {
	// Put writes doc under key, replacing any existing record.
	Put(ctx context.Context, key string, doc D) error
	// Get returns the record under key; the bool reports presence.
	Get(ctx context.Context, key string) (D, bool, error)
	// Remove deletes and returns the record under key; the bool reports
	// whether anything was removed.
	Remove(ctx context.Context, key string) (D, bool, error)
	// Values returns every stored record.
	Values(ctx context.Context) ([]D, error)
}
