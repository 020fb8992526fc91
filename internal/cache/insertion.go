package cache

import (
	"container/list"
	"fmt"
)

// InsertionOrder is a capacity-bounded key/value cache that evicts strictly in
// the order keys were first inserted. Reads never reorder anything.
//
// The core design mirrors a classic LRU minus the promotion step:
// a map gives O(1) lookup, and a list records insertion order.
// Put and Get are O(1).
type InsertionOrder[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	queue    *list.List // Front = oldest insertion, Back = newest
}

// fifoEntry is the value stored in queue elements.
// The key is kept here because eviction starts from the queue.
type fifoEntry[K comparable, V any] struct {
	key   K
	value V
}

// NewInsertionOrder constructs an empty cache holding at most capacity keys.
func NewInsertionOrder[K comparable, V any](capacity int) (*InsertionOrder[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("insertion-order cache: %w (got %d)", ErrInvalidCapacity, capacity)
	}

	return &InsertionOrder[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		queue:    list.New(),
	}, nil
}

// Put stores value under key and returns the key it evicted, if any.
//
// A key that is already present has its value replaced in place. It keeps its
// original queue position and nothing is evicted, so every key appears in the
// queue exactly once.
func (c *InsertionOrder[K, V]) Put(key K, value V) (evicted K, ok bool) {
	if el, found := c.items[key]; found {
		el.Value.(*fifoEntry[K, V]).value = value
		return evicted, false
	}

	if len(c.items) >= c.capacity {
		oldest := c.queue.Front()
		e := c.queue.Remove(oldest).(*fifoEntry[K, V])
		delete(c.items, e.key)
		evicted, ok = e.key, true
	}

	c.items[key] = c.queue.PushBack(&fifoEntry[K, V]{key: key, value: value})
	return evicted, ok
}

// Get looks up key without affecting eviction order.
func (c *InsertionOrder[K, V]) Get(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return el.Value.(*fifoEntry[K, V]).value, true
}

// Keys returns keys from oldest to newest insertion.
func (c *InsertionOrder[K, V]) Keys() []K {
	out := make([]K, 0, c.queue.Len())
	for el := c.queue.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*fifoEntry[K, V]).key)
	}
	return out
}

func (c *InsertionOrder[K, V]) Len() int { return len(c.items) }

func (c *InsertionOrder[K, V]) Capacity() int { return c.capacity }
