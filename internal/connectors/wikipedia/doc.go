// Package wikipedia implements the link source over the MediaWiki
// Action API.
//
// It comprises two components:
//
//   - Client: handles API communication (request building, proactive
//     rate limiting, transient-error retries, and continuation paging
//     for link and category lists)
//   - Resolver: implements the driven.LinkSource port with a layered
//     resolution chain (exact title, search fallback, default topic)
//
// # Rate Limiting
//
// The Wikimedia APIs have no hard anonymous read limit but publish an
// etiquette policy. The client throttles proactively with a token bucket
// (ProactiveRate requests per second) and backs off exponentially on
// HTTP 429 and 5xx responses.
//
// # Resolution
//
// MediaWiki titles are fussy: capitalisation, redirects, and
// disambiguation all get in the way of exact lookups. The resolver
// follows redirects on the exact attempt, falls back to full-text search
// and takes the first hit, and finally substitutes a well-connected
// default topic. "Page not found" is reported as domain.ErrPageMissing,
// never as an error dressed up as a crash.
//
// # Categories
//
// Category titles are returned with their namespace prefix stripped, so
// they mix into reference lists as plain topics the way article links do.
// Hidden (maintenance) categories are excluded at the API level.
package wikipedia
