package services

import (
	"context"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
	"github.com/custodia-labs/wikihop-cli/internal/logger"
)

// maxCommonNeighbourTries bounds how many 2-hop candidates are validated
// before giving up on the shortcut.
const maxCommonNeighbourTries = 3

// ShortcutFinder checks for 0-, 1-, and 2-hop connections before any
// full search is committed to. Most topic pairs in a rich link graph are
// within two hops; running the bounded search first would spend the time
// budget on the common case.
type ShortcutFinder struct {
	cache     *LinkCache
	validator *PathValidator
}

// NewShortcutFinder creates a shortcut finder.
func NewShortcutFinder(cache *LinkCache, validator *PathValidator) *ShortcutFinder {
	return &ShortcutFinder{cache: cache, validator: validator}
}

// Find returns a short path from start to end, or nil when no shortcut
// validates. Callers fall through to the full search on nil.
func (f *ShortcutFinder) Find(ctx context.Context, start, end domain.Topic) domain.Path {
	if start == end {
		return domain.Path{start}
	}

	startRefs := f.cache.References(ctx, start)
	for _, ref := range startRefs {
		if ref == end {
			return domain.Path{start, end}
		}
	}

	// 2-hop: intersect start's references with end's.
	endRefs := make(map[domain.Topic]struct{})
	for _, ref := range f.cache.References(ctx, end) {
		endRefs[ref] = struct{}{}
	}

	tried := 0
	for _, neighbour := range startRefs {
		if _, ok := endRefs[neighbour]; !ok {
			continue
		}
		if tried++; tried > maxCommonNeighbourTries {
			break
		}
		// Cached data can be stale, so the candidate is verified before
		// being accepted.
		candidate := domain.Path{start, neighbour, end}
		if f.validator.IsValid(ctx, candidate) {
			logger.Debug("Shortcut via common neighbour %q", neighbour)
			return candidate
		}
	}

	return nil
}
