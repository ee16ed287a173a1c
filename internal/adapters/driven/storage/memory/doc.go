// Package memory provides the in-process cache tiers for reference
// lookups: HotStore (bounded map with a drop-oldest-half flush) and
// RecentStore (small LRU for tight repeat lookups). Both implement
// driven.ReferenceCache and are safe for concurrent use.
package memory
