package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsContent_RegularPages(t *testing.T) {
	tests := []string{
		"Albert Einstein",
		"Paris",
		"Quantum mechanics",
		"Kevin Bacon",
		"History of mathematics",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			assert.True(t, IsContent(name), "expected %q to be content", name)
		})
	}
}

func TestIsContent_MetaPages(t *testing.T) {
	tests := []struct {
		name   string
		reason string
	}{
		{"", "empty name"},
		{"Category:Physics", "category namespace"},
		{"category:physics", "category namespace, lower case"},
		{"Bacon (disambiguation)", "disambiguation page"},
		{"Einstein Disambiguation page", "disambiguation, mixed case"},
		{"Template:Infobox", "template namespace"},
		{"File:Einstein.jpg", "file namespace"},
		{"Help:Editing", "help namespace"},
		{"User:Example", "user namespace"},
		{"Talk:Physics", "talk namespace"},
		{"Portal:Science", "portal namespace"},
		{"Book:Physics", "book namespace"},
		{"Draft:New article", "draft namespace"},
		{"Wikipedia:Manual of Style", "project page"},
		{"List of physicists", "list page"},
		{"list of rivers", "list page, lower case"},
		{"Index of philosophy articles", "index page"},
		{"Physics stub articles", "stub marker"},
		{"Articles with short description", "tracking page"},
		{"CS1 maint: archived copy", "citation maintenance"},
		{"All articles needing citation", "maintenance bucket"},
		{"Webarchive template wayback links", "archive template"},
		{"Use dmy dates from March 2020", "date style tracker"},
		{strings.Repeat("x", 151), "overlong title"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			assert.False(t, IsContent(tt.name), "expected %q to be rejected (%s)", tt.name, tt.reason)
		})
	}
}

func TestIsContent_LengthBoundary(t *testing.T) {
	assert.True(t, IsContent(strings.Repeat("x", 150)))
	assert.False(t, IsContent(strings.Repeat("x", 151)))
}

func TestIsContent_ListMidTitle(t *testing.T) {
	// The list prefix only counts at the start of the title.
	assert.True(t, IsContent("Schindler's List of names"))
}
