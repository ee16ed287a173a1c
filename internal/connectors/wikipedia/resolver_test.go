package wikipedia

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
)

// resolverServer stubs the two API calls the resolver chain makes: page
// fetches by title and full-text search.
func resolverServer(t *testing.T, pages map[string]string, searchHits []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("list") == "search" {
			fmt.Fprint(w, `{"query": {"search": [`)
			for i, hit := range searchHits {
				if i > 0 {
					fmt.Fprint(w, ",")
				}
				fmt.Fprintf(w, `{"title": %q}`, hit)
			}
			fmt.Fprint(w, `]}}`)
			return
		}

		title := q.Get("titles")
		body, ok := pages[title]
		if !ok {
			fmt.Fprintf(w, `{"query": {"pages": [{"title": %q, "missing": true}]}}`, title)
			return
		}
		fmt.Fprint(w, body)
	}))
}

func pageJSON(title string, links ...string) string {
	body := fmt.Sprintf(`{"query": {"pages": [{"title": %q, "links": [`, title)
	for i, link := range links {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"title": %q}`, link)
	}
	return body + `]}]}}`
}

func TestResolver_ExactMatch(t *testing.T) {
	server := resolverServer(t, map[string]string{
		"Go (programming language)": pageJSON("Go (programming language)", "Goroutine"),
	}, nil)
	defer server.Close()

	resolver := NewResolver(newTestClient(server))
	page, err := resolver.Resolve(context.Background(), "Go (programming language)")

	require.NoError(t, err)
	assert.Equal(t, "Go (programming language)", page.Title)
	assert.Equal(t, []string{"Goroutine"}, page.Links)
}

func TestResolver_FallsBackToSearch(t *testing.T) {
	server := resolverServer(t, map[string]string{
		"Go (programming language)": pageJSON("Go (programming language)", "Goroutine"),
	}, []string{"Go (programming language)", "Go (game)"})
	defer server.Close()

	resolver := NewResolver(newTestClient(server))
	page, err := resolver.Resolve(context.Background(), "golang")

	require.NoError(t, err)
	assert.Equal(t, "Go (programming language)", page.Title)
}

func TestResolver_FallsBackToDefaultTopic(t *testing.T) {
	server := resolverServer(t, map[string]string{
		DefaultFallbackTopic: pageJSON(DefaultFallbackTopic, "Guido van Rossum"),
	}, nil)
	defer server.Close()

	resolver := NewResolver(newTestClient(server))
	page, err := resolver.Resolve(context.Background(), "zxqvbn nonsense")

	require.NoError(t, err)
	assert.Equal(t, DefaultFallbackTopic, page.Title)
}

func TestResolver_AllStrategiesExhausted(t *testing.T) {
	server := resolverServer(t, nil, nil)
	defer server.Close()

	resolver := NewResolver(newTestClient(server))
	_, err := resolver.Resolve(context.Background(), "zxqvbn nonsense")

	assert.ErrorIs(t, err, domain.ErrPageMissing)
}

func TestResolver_EmptyName(t *testing.T) {
	server := resolverServer(t, nil, nil)
	defer server.Close()

	resolver := NewResolver(newTestClient(server))
	_, err := resolver.Resolve(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
