package memory

import (
	"container/list"
	"sync"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
	"github.com/custodia-labs/wikihop-cli/internal/core/ports/driven"
)

// Ensure RecentStore implements the interface.
var _ driven.ReferenceCache = (*RecentStore)(nil)

// DefaultRecentCapacity is the default entry ceiling for the recent tier.
const DefaultRecentCapacity = 2000

// RecentStore is the bounded recent-result cache tier: a true LRU sitting
// in front of the hot store. It absorbs the tight repeat lookups a search
// makes (validation re-reads the same topics the expansion just fetched)
// so they never touch the lower tiers.
type RecentStore struct {
	mu       sync.Mutex
	capacity int
	items    map[domain.Topic]*list.Element
	order    *list.List // front = most recent
}

type recentEntry struct {
	topic domain.Topic
	refs  []domain.Topic
}

// NewRecentStore creates a recent store with the given entry ceiling.
// A capacity <= 0 falls back to DefaultRecentCapacity.
func NewRecentStore(capacity int) *RecentStore {
	if capacity <= 0 {
		capacity = DefaultRecentCapacity
	}
	return &RecentStore{
		capacity: capacity,
		items:    make(map[domain.Topic]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the cached reference list and marks it most recently used.
func (s *RecentStore) Get(topic domain.Topic) ([]domain.Topic, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[topic]
	if !ok {
		return nil, false
	}
	s.order.MoveToFront(elem)
	return elem.Value.(*recentEntry).refs, true
}

// Put caches the reference list, evicting the least recently used entry
// once the ceiling is reached.
func (s *RecentStore) Put(topic domain.Topic, refs []domain.Topic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[topic]; ok {
		s.order.MoveToFront(elem)
		elem.Value.(*recentEntry).refs = refs
		return
	}

	if s.order.Len() >= s.capacity {
		oldest := s.order.Back()
		if oldest != nil {
			s.order.Remove(oldest)
			delete(s.items, oldest.Value.(*recentEntry).topic)
		}
	}

	s.items[topic] = s.order.PushFront(&recentEntry{topic: topic, refs: refs})
}

// Len returns the number of cached entries.
func (s *RecentStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
