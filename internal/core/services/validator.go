package services

import (
	"context"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
	"github.com/custodia-labs/wikihop-cli/internal/logger"
)

// PathValidator re-verifies candidate paths against the cache. Search
// heuristics can propose plausible-looking paths built from stale or
// partially-filtered data; nothing is returned to a caller without
// passing this check.
type PathValidator struct {
	cache *LinkCache
}

// NewPathValidator creates a validator over the given cache.
func NewPathValidator(cache *LinkCache) *PathValidator {
	return &PathValidator{cache: cache}
}

// IsValid reports whether every consecutive pair in the path is a real
// edge, fetching reference lists as needed. Paths of length <= 1 are
// trivially valid. A fetch failure during validation shows up as a
// missing edge and invalidates the path: fail closed, never report an
// unverifiable path as good.
func (v *PathValidator) IsValid(ctx context.Context, path domain.Path) bool {
	if len(path) <= 1 {
		return true
	}

	for i := 0; i < len(path)-1; i++ {
		if !v.cache.Contains(ctx, path[i], path[i+1]) {
			logger.Debug("Path invalid: %q does not link to %q", path[i], path[i+1])
			return false
		}
	}
	return true
}
