package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInsertionOrder(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		c, err := NewInsertionOrder[string, int](3)
		require.NoError(t, err)
		assert.Equal(t, 3, c.Capacity())
		assert.Equal(t, 0, c.Len())
	})

	for _, capacity := range []int{0, -1} {
		c, err := NewInsertionOrder[string, int](capacity)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	}
}

func TestInsertionOrder_Scenario(t *testing.T) {
	c, err := NewInsertionOrder[string, string](3)
	require.NoError(t, err)

	steps := []struct {
		key     string
		evicted string
	}{
		{key: "A"},
		{key: "B"},
		{key: "C"},
		{key: "D", evicted: "A"},
		{key: "E", evicted: "B"},
	}
	for _, step := range steps {
		evicted, ok := c.Put(step.key, step.key)
		if step.evicted == "" {
			assert.False(t, ok, "put(%s)", step.key)
			continue
		}
		require.True(t, ok, "put(%s)", step.key)
		assert.Equal(t, step.evicted, evicted)
	}

	assert.Equal(t, []string{"C", "D", "E"}, c.Keys())
}

func TestInsertionOrder_FIFOEviction(t *testing.T) {
	c, err := NewInsertionOrder[string, int](3)
	require.NoError(t, err)

	c.Put("A", 1)
	c.Put("B", 2)
	c.Put("C", 3)
	evicted, ok := c.Put("D", 4)
	require.True(t, ok)
	assert.Equal(t, "A", evicted)

	v, ok := c.Get("A")
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 3, c.Len())
}

func TestInsertionOrder_GetDoesNotReorder(t *testing.T) {
	c, err := NewInsertionOrder[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)

	// Unlike an access-ordered LRU, reading a must not protect it.
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	evicted, ok := c.Put("c", 3)
	require.True(t, ok)
	assert.Equal(t, "a", evicted)

	v, ok = c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

// Re-putting a present key updates the value in place: no requeue, no
// eviction, and the key keeps its original position in the queue.
func TestInsertionOrder_PutExistingKeyUpdatesWithoutRequeue(t *testing.T) {
	c, err := NewInsertionOrder[string, string](3)
	require.NoError(t, err)

	c.Put("A", "a1")
	c.Put("B", "b1")
	c.Put("C", "c1")

	_, ok := c.Put("A", "a2")
	assert.False(t, ok, "updating a present key must not evict")
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"A", "B", "C"}, c.Keys())

	v, _ := c.Get("A")
	assert.Equal(t, "a2", v)

	// A is still the oldest insertion and goes first.
	evicted, ok := c.Put("D", "d1")
	require.True(t, ok)
	assert.Equal(t, "A", evicted)

	// A second eviction takes B; no stale duplicate of A remains queued.
	evicted, ok = c.Put("E", "e1")
	require.True(t, ok)
	assert.Equal(t, "B", evicted)
	assert.Equal(t, []string{"C", "D", "E"}, c.Keys())
}

func TestInsertionOrder_CapacityInvariant(t *testing.T) {
	c, err := NewInsertionOrder[int, int](4)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		c.Put(i%11, i)
		require.LessOrEqual(t, c.Len(), 4)
		require.Len(t, c.Keys(), c.Len())
	}
}

func TestInsertionOrder_PointerValues(t *testing.T) {
	type Data struct {
		Name string
	}

	c, err := NewInsertionOrder[string, *Data](1)
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("k", &Data{Name: "one"})
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "one", v.Name)
}
