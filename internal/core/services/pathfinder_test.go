package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
)

func TestPathFinder_SameTopic(t *testing.T) {
	engine := newTestEngine(map[string][]string{"X": {"Y"}})

	path := engine.finder.FindPath(context.Background(), "X", "X", time.Minute)

	assert.Equal(t, domain.Path{"X"}, path)
}

func TestPathFinder_EmptyEndpoints(t *testing.T) {
	engine := newTestEngine(map[string][]string{"A": {"B"}})
	ctx := context.Background()

	assert.Empty(t, engine.finder.FindPath(ctx, "", "B", time.Minute))
	assert.Empty(t, engine.finder.FindPath(ctx, "A", "", time.Minute))
	assert.Equal(t, 0, engine.source.resolveCount("A"), "empty endpoints must short-circuit before any fetch")
}

func TestPathFinder_FindsChain(t *testing.T) {
	engine := newTestEngine(map[string][]string{
		"A": {"B"},
		"B": {"C"},
		"C": {},
	})

	path := engine.finder.FindPath(context.Background(), "A", "C", time.Minute)

	assert.Equal(t, domain.Path{"A", "B", "C"}, path)
}

func TestPathFinder_NoPathReturnsEmpty(t *testing.T) {
	// Start resolves but has no references at all; the search exhausts
	// and the category fallback has nothing to intersect.
	engine := newTestEngine(map[string][]string{
		"A": {},
		"Z": {},
	})

	path := engine.finder.FindPath(context.Background(), "A", "Z", time.Minute)

	assert.NotNil(t, path)
	assert.Empty(t, path)
}

func TestPathFinder_CategoryFallbackWithZeroBudget(t *testing.T) {
	engine := newTestEngine(map[string][]string{
		"A": {},
		"Z": {},
	})
	// Both endpoints share a category and the category page links back
	// to Z, but Z's cached reference list is stale-empty, so neither the
	// shortcut intersection nor the zero-budget search can see the
	// connection. Only the fallback, which re-resolves the endpoints'
	// categories at the source, finds it.
	engine.source.pages["A"].Categories = []string{"Shared interest"}
	engine.source.pages["Z"].Categories = []string{"Shared interest"}
	engine.source.pages["Shared interest"] = &domain.Page{
		Title: "Shared interest",
		Links: []string{"A", "Z"},
	}
	ctx := context.Background()
	engine.durable.seed("Z", []domain.Topic{})

	path := engine.finder.FindPath(ctx, "A", "Z", 0)

	assert.Equal(t, domain.Path{"A", "Shared interest", "Z"}, path)
}

func TestPathFinder_CategoryFallbackRequiresValidation(t *testing.T) {
	engine := newTestEngine(map[string][]string{
		"A": {},
		"Z": {},
	})
	engine.source.pages["A"].Categories = []string{"Dead category"}
	engine.source.pages["Z"].Categories = []string{"Dead category"}
	// The category page exists but does not link to Z, so the fallback
	// path cannot validate.
	engine.source.pages["Dead category"] = &domain.Page{
		Title: "Dead category",
		Links: []string{"A"},
	}

	path := engine.finder.FindPath(context.Background(), "A", "Z", time.Minute)

	assert.Empty(t, path)
}

func TestPathFinder_ReturnedPathsAlwaysValidate(t *testing.T) {
	engine := newTestEngine(map[string][]string{
		"A": {"B", "D"},
		"B": {"C"},
		"C": {},
		"D": {"C", "E"},
		"E": {},
	})
	ctx := context.Background()

	for _, end := range []string{"A", "B", "C", "D", "E", "Missing"} {
		path := engine.finder.FindPath(ctx, "A", end, time.Minute)
		assert.True(t, engine.validator.IsValid(ctx, path),
			"path %v to %q must validate", path, end)
	}
}
