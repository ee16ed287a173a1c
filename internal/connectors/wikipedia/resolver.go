package wikipedia

import (
	"context"
	"errors"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
	"github.com/custodia-labs/wikihop-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wikihop-cli/internal/logger"
)

// Ensure Resolver implements the interface.
var _ driven.LinkSource = (*Resolver)(nil)

// DefaultFallbackTopic is the substitute page used when every other
// resolution strategy has failed. A well-connected hub keeps the game
// playable even when a name resolves to nothing.
const DefaultFallbackTopic = "Python (programming language)"

// Resolver implements driven.LinkSource over a MediaWiki client with a
// layered fallback chain:
//
//  1. Exact title lookup (redirects followed)
//  2. Full-text search, first hit
//  3. The default fallback topic
//
// Only when all three fail does Resolve report domain.ErrPageMissing.
// Resolve never surfaces "page not found" as a transport error.
type Resolver struct {
	client        *Client
	fallbackTopic string
}

// NewResolver creates a resolver over the given client.
func NewResolver(client *Client) *Resolver {
	return &Resolver{
		client:        client,
		fallbackTopic: DefaultFallbackTopic,
	}
}

// Resolve resolves a free-text name to a page.
func (r *Resolver) Resolve(ctx context.Context, name string) (*domain.Page, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	// First try: exact match.
	page, err := r.client.FetchPage(ctx, name)
	if err == nil {
		return page, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	logger.Debug("Exact lookup for %q failed: %v", name, err)

	// Second try: search and take the first hit.
	hits, searchErr := r.client.Search(ctx, name, 5)
	if searchErr == nil && len(hits) > 0 {
		page, err = r.client.FetchPage(ctx, hits[0])
		if err == nil {
			logger.Debug("Resolved %q via search to %q", name, page.Title)
			return page, nil
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Last try: the fallback topic, so a bad name degrades the round
	// instead of aborting it.
	if r.fallbackTopic != "" && !errors.Is(err, domain.ErrSourceUnavailable) {
		page, fallbackErr := r.client.FetchPage(ctx, r.fallbackTopic)
		if fallbackErr == nil {
			logger.Warn("Falling back to %q for unresolvable name %q", page.Title, name)
			return page, nil
		}
	}

	return nil, domain.ErrPageMissing
}

// Close releases resources. The underlying HTTP client needs none.
func (r *Resolver) Close() error {
	return nil
}
