package services

import (
	"context"
	"time"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
	"github.com/custodia-labs/wikihop-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wikihop-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wikihop-cli/internal/logger"
)

// Ensure PathFinder implements the interface.
var _ driving.PathFinderService = (*PathFinder)(nil)

const (
	// searchDepth is the hop bound handed to the bounded search.
	searchDepth = 6

	// fallbackCategoriesPerSide caps how many categories per endpoint the
	// category fallback considers.
	fallbackCategoriesPerSide = 10

	// fallbackCategoryTries caps how many common categories are validated.
	fallbackCategoryTries = 3
)

// PathFinder sequences the strategies: shortcut-seeded bounded search
// first, then a category-overlap fallback. It is the sole entry point
// the CLI and game loop consume.
type PathFinder struct {
	source    driven.LinkSource
	cache     *LinkCache
	validator *PathValidator
	search    *BoundedSearch
}

// NewPathFinder wires a path finder over its collaborators.
func NewPathFinder(source driven.LinkSource, cache *LinkCache, validator *PathValidator, search *BoundedSearch) *PathFinder {
	return &PathFinder{
		source:    source,
		cache:     cache,
		validator: validator,
		search:    search,
	}
}

// FindPath returns a validated path from start to end, or an empty path
// when none was found within budget. "No path" is an expected outcome,
// not a fault, so there is no error return.
func (f *PathFinder) FindPath(ctx context.Context, start, end domain.Topic, budget time.Duration) domain.Path {
	if start == "" || end == "" {
		return domain.Path{}
	}

	logger.Section("Path Search")
	logger.Debug("From %q to %q, budget %s", start, end, budget)

	path := f.search.Search(ctx, start, end, searchDepth, budget)
	if path != nil {
		// The search validated the path when it accepted it, but that
		// and this re-check are independent safety nets; keep both.
		if f.validator.IsValid(ctx, path) {
			return path
		}
		logger.Warn("Search result failed re-validation: %s", path)
	}

	if path := f.categoryFallback(ctx, start, end); path != nil {
		return path
	}

	logger.Debug("No path found from %q to %q", start, end)
	return domain.Path{}
}

// categoryFallback connects the endpoints through a shared category.
// Two pages that defeat the link search are still often filed together,
// and a category page links back to its members.
func (f *PathFinder) categoryFallback(ctx context.Context, start, end domain.Topic) domain.Path {
	logger.Debug("Trying category fallback")

	startCats := f.endpointCategories(ctx, start)
	endCats := f.endpointCategories(ctx, end)
	if len(startCats) == 0 || len(endCats) == 0 {
		return nil
	}

	endSet := make(map[string]struct{}, len(endCats))
	for _, cat := range endCats {
		endSet[cat] = struct{}{}
	}

	tried := 0
	for _, cat := range startCats {
		if _, ok := endSet[cat]; !ok {
			continue
		}
		if tried++; tried > fallbackCategoryTries {
			break
		}
		candidate := domain.Path{start, cat, end}
		if f.validator.IsValid(ctx, candidate) {
			logger.Debug("Category fallback succeeded via %q", cat)
			return candidate
		}
	}
	return nil
}

// endpointCategories fetches an endpoint's categories, filtered and
// capped. Resolution failure yields nil; the fallback simply has nothing
// to work with.
func (f *PathFinder) endpointCategories(ctx context.Context, topic domain.Topic) []string {
	page, err := f.source.Resolve(ctx, topic)
	if err != nil {
		logger.Debug("Category lookup for %q failed: %v", topic, err)
		return nil
	}

	cats := make([]string, 0, fallbackCategoriesPerSide)
	for _, cat := range page.Categories {
		if !domain.IsContent(cat) {
			continue
		}
		cats = append(cats, cat)
		if len(cats) == fallbackCategoriesPerSide {
			break
		}
	}
	return cats
}
