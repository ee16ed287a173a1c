// Package domain defines the core business entities for Wikihop.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Topic: A canonical node identifier in the link graph
//   - Path: An ordered chain of topics from a start to an end
//   - Page: The raw result of resolving a name against the link source
//   - CacheRecord: One cached, filtered reference lookup
//
// It also hosts IsContent, the content filter that keeps administrative
// and maintenance pages out of the graph.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
