package services

import (
	"context"
	"time"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
	"github.com/custodia-labs/wikihop-cli/internal/logger"
)

const (
	// DefaultMaxNodes is the dequeued-node ceiling per search. It bounds
	// memory and CPU independently of the clock.
	DefaultMaxNodes = 5000

	// DefaultFanout is how many scored neighbours are enqueued per
	// expanded node.
	DefaultFanout = 10

	// maxCandidateLength excludes very long titles from expansion.
	maxCandidateLength = 100
)

// frontierItem is one BFS frontier entry: a topic and the path that
// reached it. Items are owned by a single search invocation.
type frontierItem struct {
	topic domain.Topic
	path  domain.Path
}

// BoundedSearch is the heuristic bounded breadth-first search. The
// frontier is strictly FIFO, so expansion runs in classic layer order;
// within a node, neighbours are enqueued in heuristic-ranked order and
// capped at Fanout. The search aborts on whichever comes first of the
// wall-clock budget, the node ceiling, or frontier exhaustion; all
// three surface identically as "not found".
type BoundedSearch struct {
	cache     *LinkCache
	validator *PathValidator
	shortcut  *ShortcutFinder

	// MaxNodes and Fanout default to the package constants; tests lower
	// them to exercise the ceilings cheaply.
	MaxNodes int
	Fanout   int
}

// NewBoundedSearch creates a bounded search with default ceilings.
func NewBoundedSearch(cache *LinkCache, validator *PathValidator, shortcut *ShortcutFinder) *BoundedSearch {
	return &BoundedSearch{
		cache:     cache,
		validator: validator,
		shortcut:  shortcut,
		MaxNodes:  DefaultMaxNodes,
		Fanout:    DefaultFanout,
	}
}

// Search looks for a validated path from start to end within maxDepth
// hops and the wall-clock budget. Returns nil when nothing was found
// within the bounds.
func (s *BoundedSearch) Search(ctx context.Context, start, end domain.Topic, maxDepth int, budget time.Duration) domain.Path {
	started := time.Now()

	if path := s.shortcut.Find(ctx, start, end); path != nil {
		return path
	}

	frontier := []frontierItem{{topic: start, path: domain.Path{start}}}
	visited := map[domain.Topic]struct{}{start: {}}
	targetWords := titleWords(end)
	dequeued := 0

	for len(frontier) > 0 && dequeued < s.MaxNodes {
		if time.Since(started) > budget {
			logger.Debug("Search budget expired after %d nodes", dequeued)
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		item := frontier[0]
		frontier = frontier[1:]
		dequeued++

		// At max depth the node is dequeued but not expanded.
		if len(item.path) >= maxDepth {
			continue
		}

		neighbours := s.cache.References(ctx, item.topic)

		// Reference lists are not guaranteed deduplicated; a title
		// repeated within one list must not occupy two fanout slots.
		seen := make(map[domain.Topic]struct{}, len(neighbours))

		candidates := make([]scoredCandidate, 0, len(neighbours))
		for _, neighbour := range neighbours {
			if neighbour == end {
				candidate := item.path.Extend(neighbour)
				// Accept only if it re-verifies; stale cached data can
				// propose an edge that no longer exists, and that is a
				// reason to keep searching, not to abort.
				if s.validator.IsValid(ctx, candidate) {
					logger.Debug("Found path after %d nodes: %s", dequeued, candidate)
					return candidate
				}
				logger.Debug("Candidate path failed validation, continuing")
			}

			if _, ok := visited[neighbour]; ok || len(neighbour) >= maxCandidateLength {
				continue
			}
			if _, dup := seen[neighbour]; dup {
				continue
			}
			seen[neighbour] = struct{}{}
			candidates = append(candidates, scoredCandidate{
				topic: neighbour,
				score: scoreAgainst(neighbour, targetWords),
			})
		}

		// Visited is marked at enqueue time, not dequeue time, so the
		// same topic cannot be enqueued twice within one search.
		for _, neighbour := range rankCandidates(candidates, s.Fanout) {
			visited[neighbour] = struct{}{}
			frontier = append(frontier, frontierItem{
				topic: neighbour,
				path:  item.path.Extend(neighbour),
			})
		}
	}

	logger.Debug("Search exhausted: %d nodes dequeued, frontier %d", dequeued, len(frontier))
	return nil
}
