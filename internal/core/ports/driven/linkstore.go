package driven

import (
	"context"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
)

// LinkStore persists cache records across process restarts. Backed by
// SQLite. One record per topic; records are replaced wholesale, never
// mutated, so repeating a write with the same key and value is safe.
type LinkStore interface {
	// Get retrieves the stored record for a topic.
	// Returns domain.ErrNotFound if the topic has never been stored.
	Get(ctx context.Context, topic domain.Topic) (*domain.CacheRecord, error)

	// Put stores or replaces the record for a topic.
	Put(ctx context.Context, record *domain.CacheRecord) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)

	// Close closes the underlying store.
	Close() error
}

// ReferenceCache is an in-process cache tier for reference lists.
// Implementations bound their own size; all methods are safe for
// concurrent use.
type ReferenceCache interface {
	// Get returns the cached reference list and whether it was present.
	Get(topic domain.Topic) ([]domain.Topic, bool)

	// Put caches the reference list for a topic, evicting as needed.
	Put(topic domain.Topic, refs []domain.Topic)

	// Len returns the number of cached entries.
	Len() int
}
