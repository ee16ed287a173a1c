package domain

import "strings"

// maxTitleLength is the longest name still considered content.
// Very long titles are almost always maintenance or tracking pages.
const maxTitleLength = 150

// metaMarkers are case-insensitive substrings that identify administrative
// and maintenance pages. The list is a precision lever: entries removed
// here let noise pollute paths, entries added too eagerly shrink the graph.
var metaMarkers = []string{
	"disambiguation", "stub", "wikidata", "use dmy dates", "use mdy dates",
	"articles with", "short description", "identifier", "automatic", "cs1",
	"wikipedia", "category:", "file:", "template:", "help:", "user:",
	"talk:", "portal:", "book:", "draft:", "all articles", "pages with",
	"coordinates on wikidata", "webarchive template", "citation",
}

// listPrefixes identify collection pages that link everywhere and connect
// nothing meaningfully.
var listPrefixes = []string{"list of", "index of"}

// IsContent reports whether a page name refers to a regular content page
// rather than administrative or meta noise. It is a pure function with no
// I/O; every name entering a reference list must pass it.
func IsContent(name string) bool {
	if name == "" {
		return false
	}
	if len(name) > maxTitleLength {
		return false
	}

	lower := strings.ToLower(name)
	for _, marker := range metaMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	for _, prefix := range listPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return true
}
