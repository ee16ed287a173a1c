package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentStore_PutGet(t *testing.T) {
	store := NewRecentStore(10)

	refs, ok := store.Get("absent")
	assert.False(t, ok)
	assert.Nil(t, refs)

	store.Put("Go", []string{"Concurrency"})

	refs, ok = store.Get("Go")
	assert.True(t, ok)
	assert.Equal(t, []string{"Concurrency"}, refs)
	assert.Equal(t, 1, store.Len())
}

func TestRecentStore_EvictsLeastRecentlyUsed(t *testing.T) {
	store := NewRecentStore(2)

	store.Put("A", nil)
	store.Put("B", nil)

	// Touch A so B becomes the eviction candidate.
	_, ok := store.Get("A")
	assert.True(t, ok)

	store.Put("C", nil)

	_, ok = store.Get("B")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = store.Get("A")
	assert.True(t, ok)
	_, ok = store.Get("C")
	assert.True(t, ok)
	assert.Equal(t, 2, store.Len())
}

func TestRecentStore_OverwriteRefreshesRecency(t *testing.T) {
	store := NewRecentStore(2)

	store.Put("A", []string{"old"})
	store.Put("B", nil)
	store.Put("A", []string{"new"})
	store.Put("C", nil)

	refs, ok := store.Get("A")
	assert.True(t, ok)
	assert.Equal(t, []string{"new"}, refs)
	_, ok = store.Get("B")
	assert.False(t, ok)
}

func TestRecentStore_DefaultCapacity(t *testing.T) {
	store := NewRecentStore(-1)
	assert.Equal(t, DefaultRecentCapacity, store.capacity)
}
