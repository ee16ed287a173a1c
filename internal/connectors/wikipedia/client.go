package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
)

const (
	// DefaultAPIURL is the English Wikipedia Action API endpoint.
	DefaultAPIURL = "https://en.wikipedia.org/w/api.php"

	// DefaultUserAgent identifies the client per the Wikimedia API policy.
	DefaultUserAgent = "wikihop-cli (https://github.com/custodia-labs/wikihop-cli)"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxRetries is the maximum number of retries for transient errors.
	MaxRetries = 3

	// RetryDelay is the initial delay between retries.
	RetryDelay = time.Second

	// ProactiveRate throttles requests to stay well within Wikimedia's
	// published etiquette for anonymous read clients.
	ProactiveRate = 5.0

	// categoryPrefix is the category namespace prefix on returned titles.
	categoryPrefix = "Category:"

	// summaryLength caps the plain-text intro extract, in characters.
	summaryLength = "500"
)

// Options configures a Client. The zero value selects sensible defaults.
type Options struct {
	// APIURL overrides the Action API endpoint (useful for tests and
	// non-English wikis).
	APIURL string

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client

	// RequestsPerSecond overrides the proactive throttle rate.
	RequestsPerSecond float64
}

// Client talks to the MediaWiki Action API. It owns rate limiting,
// retries, and response decoding; it knows nothing about caching or
// search strategy.
type Client struct {
	apiURL    string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient creates a new MediaWiki API client.
func NewClient(opts Options) *Client {
	if opts.APIURL == "" {
		opts.APIURL = DefaultAPIURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = ProactiveRate
	}
	return &Client{
		apiURL:    opts.APIURL,
		userAgent: opts.UserAgent,
		http:      opts.HTTPClient,
		limiter:   rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
	}
}

// FetchPage retrieves a page's outgoing article links, categories, and a
// short intro summary, following redirects. The category namespace
// prefix is stripped so that category names can be mixed into reference
// lists as plain topics.
// Returns domain.ErrPageMissing if no such page exists.
func (c *Client) FetchPage(ctx context.Context, title string) (*domain.Page, error) {
	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"redirects":     {"1"},
		"titles":        {title},
		"prop":          {"links|categories|extracts"},
		"plnamespace":   {"0"},
		"pllimit":       {"max"},
		"cllimit":       {"max"},
		"clshow":        {"!hidden"},
		"exintro":       {"1"},
		"explaintext":   {"1"},
		"exchars":       {summaryLength},
	}

	page := &domain.Page{}

	// The links and categories arrive in continuation batches; each batch
	// echoes a continue token set that must be passed back verbatim.
	cont := map[string]string{}
	for {
		req := cloneValues(params)
		for k, v := range cont {
			req.Set(k, v)
		}

		var resp queryResponse
		if err := c.do(ctx, req, &resp); err != nil {
			return nil, err
		}
		if len(resp.Query.Pages) == 0 {
			return nil, domain.ErrPageMissing
		}

		p := resp.Query.Pages[0]
		if p.Missing || p.Invalid {
			return nil, fmt.Errorf("%w: %q", domain.ErrPageMissing, title)
		}
		page.Title = p.Title
		for _, l := range p.Links {
			page.Links = append(page.Links, l.Title)
		}
		for _, cat := range p.Categories {
			page.Categories = append(page.Categories, strings.TrimPrefix(cat.Title, categoryPrefix))
		}
		// The extract only rides along in one continuation batch.
		if p.Extract != "" {
			page.Summary = p.Extract
		}

		if len(resp.Continue) == 0 {
			return page, nil
		}
		cont = resp.Continue
	}
}

// Search runs a full-text search and returns matching titles, best first.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 5
	}
	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"list":          {"search"},
		"srsearch":      {query},
		"srlimit":       {fmt.Sprintf("%d", limit)},
	}

	var resp searchResponse
	if err := c.do(ctx, params, &resp); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(resp.Query.Search))
	for _, hit := range resp.Query.Search {
		titles = append(titles, hit.Title)
	}
	return titles, nil
}

// do performs one API request with throttling and transient-error retries.
func (c *Client) do(ctx context.Context, params url.Values, out any) error {
	var lastErr error

	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			delay := RetryDelay * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}

		err := c.doOnce(ctx, params, out)
		if err == nil {
			return nil
		}
		if !isTransient(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, lastErr)
}

func (c *Client) doOnce(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", errTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: server status %d", errTransport, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading body: %w", errTransport, err)
	}

	var apiErr errorEnvelope
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Code != "" {
		return fmt.Errorf("api error %s: %s", apiErr.Error.Code, apiErr.Error.Info)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// isTransient reports whether a request is worth retrying.
func isTransient(err error) bool {
	return errors.Is(err, errTransport) || errors.Is(err, domain.ErrRateLimited)
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = vals
	}
	return out
}
