package memory

import (
	"sync"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
	"github.com/custodia-labs/wikihop-cli/internal/core/ports/driven"
)

// Ensure HotStore implements the interface.
var _ driven.ReferenceCache = (*HotStore)(nil)

// DefaultHotCapacity is the default entry ceiling for the hot tier.
const DefaultHotCapacity = 1000

// HotStore is the hot in-process cache tier: a mutex-guarded map with a
// size ceiling. When the ceiling is exceeded the oldest half of the
// entries is dropped in one pass. That is a coarse, O(n) flush rather
// than precise recency tracking; the durable tier below it makes the
// lost entries cheap to recover.
type HotStore struct {
	mu       sync.Mutex
	capacity int
	refs     map[domain.Topic][]domain.Topic
	order    []domain.Topic // insertion order, oldest first
}

// NewHotStore creates a hot store with the given entry ceiling.
// A capacity <= 0 falls back to DefaultHotCapacity.
func NewHotStore(capacity int) *HotStore {
	if capacity <= 0 {
		capacity = DefaultHotCapacity
	}
	return &HotStore{
		capacity: capacity,
		refs:     make(map[domain.Topic][]domain.Topic),
	}
}

// Get returns the cached reference list for a topic.
func (s *HotStore) Get(topic domain.Topic) ([]domain.Topic, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	refs, ok := s.refs[topic]
	return refs, ok
}

// Put caches the reference list for a topic, flushing the oldest half of
// the store first if the ceiling has been reached.
func (s *HotStore) Put(topic domain.Topic, refs []domain.Topic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.refs[topic]; !exists && len(s.refs) >= s.capacity {
		s.flushOldestHalf()
	}

	if _, exists := s.refs[topic]; !exists {
		s.order = append(s.order, topic)
	}
	s.refs[topic] = refs
}

// Len returns the number of cached entries.
func (s *HotStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.refs)
}

// flushOldestHalf drops the oldest half of the entries.
// Caller must hold the lock.
func (s *HotStore) flushOldestHalf() {
	cut := len(s.order) / 2
	for _, topic := range s.order[:cut] {
		delete(s.refs, topic)
	}
	s.order = append(s.order[:0:0], s.order[cut:]...)
}
