package domain

import "time"

// Page is the raw result of resolving a topic name against the link source.
// Links and Categories are unfiltered; callers apply IsContent before using
// them as graph edges.
type Page struct {
	// Title is the canonical page title after redirect and search resolution.
	Title string

	// Links are the titles of outgoing article links.
	Links []string

	// Categories are the page's category names, without namespace prefix.
	Categories []string

	// Summary is a short plain-text introduction to the page, possibly
	// empty. Presentation only; it never participates in the graph.
	Summary string
}

// CacheRecord is one cached reference lookup. Records are immutable once
// written; a re-fetch produces a replacement record rather than an in-place
// update.
type CacheRecord struct {
	// Topic is the cache key.
	Topic Topic

	// References is the filtered outgoing-reference list at fetch time.
	// It never contains the topic itself and never contains a name
	// rejected by IsContent.
	References []Topic

	// FetchedAt records when the lookup hit the link source.
	FetchedAt time.Time
}
