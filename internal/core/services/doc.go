// Package services implements the pathfinding engine's core logic.
//
// The components, leaves first:
//
//   - LinkCache: serves filtered reference lists through three cache
//     tiers (recent LRU, bounded hot map, durable store) with the link
//     source behind them
//   - PathValidator: re-verifies that every consecutive pair in a
//     candidate path is a real edge
//   - ShortcutFinder: cheap 0/1/2-hop pre-check before full search
//   - BoundedSearch: heuristic breadth-first search bounded by node
//     count and wall-clock time
//   - PathFinder: sequences shortcut-seeded search and the
//     category-overlap fallback; the sole driving entry point
//   - GameService: WikiHop rounds on top of the path finder
//
// The engine is safe for concurrent FindPath invocations. The only
// deliberate non-guarantee is optimality: the search trades shortest
// paths for bounded latency and a high probability of finding some
// valid path.
package services
