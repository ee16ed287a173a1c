package domain

import "strings"

// A Topic is the canonical identifier of a node in the link graph.
// Equality is exact-string; no normalisation is applied beyond what the
// link source already performed when resolving the name.
type Topic = string

// Path is an ordered chain of topics. The first element is the start,
// the last is the end. A path of length zero means "no path found".
// Paths are never mutated once returned by a service.
type Path []Topic

// Start returns the first topic of the path, or empty for a nil path.
func (p Path) Start() Topic {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// End returns the last topic of the path, or empty for a nil path.
func (p Path) End() Topic {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Hops returns the number of edges the path traverses.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// String renders the path as a human-readable chain.
func (p Path) String() string {
	return strings.Join(p, " -> ")
}

// Extend returns a new path with topic appended. The receiver is copied,
// never aliased: BFS frontier items share prefixes and must not see each
// other's extensions.
func (p Path) Extend(topic Topic) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, topic)
}
