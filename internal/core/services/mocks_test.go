package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/wikihop-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
	"github.com/custodia-labs/wikihop-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockSource implements driven.LinkSource over a fixed in-memory graph.
type mockSource struct {
	mu    sync.Mutex
	pages map[string]*domain.Page
	fail  map[string]error
	calls map[string]int
}

var _ driven.LinkSource = (*mockSource)(nil)

// newMockSource builds a source from adjacency lists. Each topic's refs
// become its Links; categories can be attached afterwards.
func newMockSource(graph map[string][]string) *mockSource {
	pages := make(map[string]*domain.Page, len(graph))
	for topic, refs := range graph {
		pages[topic] = &domain.Page{Title: topic, Links: refs}
	}
	return &mockSource{
		pages: pages,
		fail:  make(map[string]error),
		calls: make(map[string]int),
	}
}

func (m *mockSource) Resolve(_ context.Context, name string) (*domain.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[name]++
	if err, ok := m.fail[name]; ok {
		return nil, err
	}
	page, ok := m.pages[name]
	if !ok {
		return nil, domain.ErrPageMissing
	}
	return page, nil
}

func (m *mockSource) Close() error { return nil }

func (m *mockSource) resolveCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

// mockLinkStore implements driven.LinkStore in memory, with optional
// injected failures.
type mockLinkStore struct {
	mu      sync.Mutex
	records map[string]*domain.CacheRecord
	getErr  error
	putErr  error
}

var _ driven.LinkStore = (*mockLinkStore)(nil)

func newMockLinkStore() *mockLinkStore {
	return &mockLinkStore{records: make(map[string]*domain.CacheRecord)}
}

func (m *mockLinkStore) Get(_ context.Context, topic domain.Topic) (*domain.CacheRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	record, ok := m.records[topic]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *mockLinkStore) Put(_ context.Context, record *domain.CacheRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.records[record.Topic] = record
	return nil
}

// seed inserts a record directly, bypassing error injection.
func (m *mockLinkStore) seed(topic domain.Topic, refs []domain.Topic) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[topic] = &domain.CacheRecord{Topic: topic, References: refs}
}

func (m *mockLinkStore) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.records)), nil
}

func (m *mockLinkStore) Close() error { return nil }

// --- Engine harness ---

// testEngine wires the full service stack over a mock source with
// isolated in-memory cache tiers.
type testEngine struct {
	source    *mockSource
	durable   *mockLinkStore
	cache     *LinkCache
	validator *PathValidator
	shortcut  *ShortcutFinder
	search    *BoundedSearch
	finder    *PathFinder
}

func newTestEngine(graph map[string][]string) *testEngine {
	source := newMockSource(graph)
	durable := newMockLinkStore()
	cache := NewLinkCache(source, durable, memory.NewRecentStore(0), memory.NewHotStore(0))
	validator := NewPathValidator(cache)
	shortcut := NewShortcutFinder(cache, validator)
	search := NewBoundedSearch(cache, validator, shortcut)
	return &testEngine{
		source:    source,
		durable:   durable,
		cache:     cache,
		validator: validator,
		shortcut:  shortcut,
		search:    search,
		finder:    NewPathFinder(source, cache, validator, search),
	}
}
