package services

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
	"github.com/custodia-labs/wikihop-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wikihop-cli/internal/logger"
)

// LinkCache serves filtered reference lists through three cache tiers:
// a small LRU of recent results, a bounded hot map, and a durable store,
// with the link source behind all of them. It is the only component that
// talks to the source; everything above it sees a graph that simply
// answers "what does this topic link to".
//
// Failures never escape: a source error caches and returns an empty
// list in the memory tiers (known-bad topics must not be retried all
// session, but must not be remembered past it either), and durable-tier
// errors are logged and swallowed.
type LinkCache struct {
	source  driven.LinkSource
	durable driven.LinkStore
	recent  driven.ReferenceCache
	hot     driven.ReferenceCache
}

// NewLinkCache creates a link cache over the given tiers.
// The durable store is optional (can be nil); the cache then runs
// memory-only, which tests use for isolation.
func NewLinkCache(
	source driven.LinkSource,
	durable driven.LinkStore,
	recent driven.ReferenceCache,
	hot driven.ReferenceCache,
) *LinkCache {
	return &LinkCache{
		source:  source,
		durable: durable,
		recent:  recent,
		hot:     hot,
	}
}

// References returns the filtered outgoing references of a topic.
// Repeated calls without intervening invalidation return the same list.
// The result is shared cache state; callers must not mutate it.
func (c *LinkCache) References(ctx context.Context, topic domain.Topic) []domain.Topic {
	if topic == "" {
		return nil
	}

	if refs, ok := c.recent.Get(topic); ok {
		return refs
	}
	if refs, ok := c.hot.Get(topic); ok {
		c.recent.Put(topic, refs)
		return refs
	}

	refs, persist := c.lookup(ctx, topic)

	// Write-through. The durable write is best-effort: search correctness
	// must not depend on persistence succeeding. Only successful source
	// fetches are written back: durable hits would be rewriting
	// themselves, and a failed fetch is a session-scoped fact, not a
	// durable one. Persisting it would poison every future session with
	// a permanently empty reference list for a topic that may be fine.
	if persist && c.durable != nil {
		record := &domain.CacheRecord{
			Topic:      topic,
			References: refs,
			FetchedAt:  time.Now().UTC(),
		}
		if err := c.durable.Put(ctx, record); err != nil {
			logger.Warn("Durable cache write for %q failed: %v", topic, err)
		}
	}
	c.hot.Put(topic, refs)
	c.recent.Put(topic, refs)

	return refs
}

// lookup consults the durable tier, then the source. The second return
// reports whether the result is a successful source fetch that should be
// written through to the durable tier.
func (c *LinkCache) lookup(ctx context.Context, topic domain.Topic) ([]domain.Topic, bool) {
	if c.durable != nil {
		record, err := c.durable.Get(ctx, topic)
		if err == nil {
			logger.Debug("Durable cache hit for %q (%d refs)", topic, len(record.References))
			return record.References, false
		}
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Durable cache read for %q failed: %v", topic, err)
		}
	}

	page, err := c.source.Resolve(ctx, topic)
	if err != nil {
		// Not found, ambiguous, or transport failure: cache the empty
		// list in the memory tiers only, so the topic is not retried
		// this session but a fresh session gets a fresh attempt.
		logger.Debug("Source lookup for %q failed: %v", topic, err)
		return []domain.Topic{}, false
	}

	raw := make([]string, 0, len(page.Links)+len(page.Categories))
	raw = append(raw, page.Links...)
	raw = append(raw, page.Categories...)

	refs := make([]domain.Topic, 0, len(raw))
	for _, name := range raw {
		if name != topic && domain.IsContent(name) {
			refs = append(refs, name)
		}
	}
	logger.Debug("Fetched %q: %d raw, %d after filtering", topic, len(raw), len(refs))
	return refs, true
}

// Contains reports whether target is among topic's references.
func (c *LinkCache) Contains(ctx context.Context, topic, target domain.Topic) bool {
	for _, ref := range c.References(ctx, topic) {
		if ref == target {
			return true
		}
	}
	return false
}
