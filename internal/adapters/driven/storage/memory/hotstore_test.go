package memory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHotStore_PutGet(t *testing.T) {
	store := NewHotStore(10)

	refs, ok := store.Get("absent")
	assert.False(t, ok)
	assert.Nil(t, refs)

	store.Put("Go", []string{"Concurrency", "Channels"})

	refs, ok = store.Get("Go")
	assert.True(t, ok)
	assert.Equal(t, []string{"Concurrency", "Channels"}, refs)
	assert.Equal(t, 1, store.Len())
}

func TestHotStore_OverwriteKeepsSingleEntry(t *testing.T) {
	store := NewHotStore(10)

	store.Put("Go", []string{"Old"})
	store.Put("Go", []string{"New"})

	refs, ok := store.Get("Go")
	assert.True(t, ok)
	assert.Equal(t, []string{"New"}, refs)
	assert.Equal(t, 1, store.Len())
}

func TestHotStore_FlushesOldestHalfAtCapacity(t *testing.T) {
	store := NewHotStore(4)
	for i := 0; i < 4; i++ {
		store.Put(fmt.Sprintf("Topic %d", i), nil)
	}
	assert.Equal(t, 4, store.Len())

	// The fifth insert trips the ceiling: the two oldest entries go,
	// the two newest survive.
	store.Put("Topic 4", nil)

	assert.Equal(t, 3, store.Len())
	for _, gone := range []string{"Topic 0", "Topic 1"} {
		_, ok := store.Get(gone)
		assert.False(t, ok, "expected %q to be flushed", gone)
	}
	for _, kept := range []string{"Topic 2", "Topic 3", "Topic 4"} {
		_, ok := store.Get(kept)
		assert.True(t, ok, "expected %q to survive", kept)
	}
}

func TestHotStore_DefaultCapacity(t *testing.T) {
	store := NewHotStore(0)
	assert.Equal(t, DefaultHotCapacity, store.capacity)
}
