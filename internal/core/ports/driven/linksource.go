package driven

import (
	"context"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
)

// LinkSource resolves a free-text topic name to a canonical page and its
// raw outgoing references. Implementations wrap a remote link-graph API
// (e.g. MediaWiki) and own disambiguation and fuzzy-search fallback.
type LinkSource interface {
	// Resolve returns the page for a name. Implementations must never
	// return a transport error dressed up as success: a page that cannot
	// be found after all fallbacks yields domain.ErrPageMissing.
	Resolve(ctx context.Context, name string) (*domain.Page, error)

	// Close releases resources.
	Close() error
}
