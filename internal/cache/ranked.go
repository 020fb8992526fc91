package cache

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Ranked is a capacity-bounded set of values, each tagged with a recency rank.
//
// Every Put hands out a fresh rank from a monotonically increasing counter, so
// no two entries ever share a rank and eviction never needs a tie-break.
// When full, the policy decides which end of the rank order is evicted.
//
// The eviction scan is O(n) over the current entries. Membership checks and
// inserts are O(1) on average.
type Ranked[T comparable] struct {
	capacity int
	policy   Policy
	ranks    map[T]uint64

	// nextRank is the rank the next Put will assign. It is compacted before
	// it can wrap; see compactRanks.
	nextRank uint64
}

// RankedEntry is a point-in-time view of one entry.
type RankedEntry[T comparable] struct {
	Value T
	Rank  uint64
}

// NewRanked constructs an empty cache holding at most capacity values.
func NewRanked[T comparable](capacity int, policy Policy) (*Ranked[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ranked cache: %w (got %d)", ErrInvalidCapacity, capacity)
	}
	if !policy.valid() {
		return nil, fmt.Errorf("ranked cache: %w: %s", ErrUnknownPolicy, policy)
	}

	return &Ranked[T]{
		capacity: capacity,
		policy:   policy,
		ranks:    make(map[T]uint64, capacity),
	}, nil
}

// Put records an access to value and returns the value it evicted, if any.
//
//   - value already present: its rank is refreshed, nothing is evicted
//   - cache full: the policy's candidate is evicted, then value is inserted
//   - otherwise: value is inserted
func (c *Ranked[T]) Put(value T) (evicted T, ok bool) {
	if c.nextRank == math.MaxUint64 {
		c.compactRanks()
	}

	if _, found := c.ranks[value]; found {
		c.ranks[value] = c.takeRank()
		return evicted, false
	}

	if len(c.ranks) == c.capacity {
		evicted, ok = c.FindEvictionCandidate()
		delete(c.ranks, evicted)
	}

	c.ranks[value] = c.takeRank()
	return evicted, ok
}

// FindEvictionCandidate reports the value the next eviction would remove.
// It does not mutate the cache. ok is false when the cache is empty.
func (c *Ranked[T]) FindEvictionCandidate() (candidate T, ok bool) {
	var best uint64
	for value, rank := range c.ranks {
		if !ok || c.evictsBefore(rank, best) {
			candidate, best, ok = value, rank, true
		}
	}
	return candidate, ok
}

// evictsBefore reports whether an entry ranked a should be evicted ahead of
// one ranked b under the cache's policy.
func (c *Ranked[T]) evictsBefore(a, b uint64) bool {
	switch c.policy {
	case MRU:
		return a > b
	default:
		return a < b
	}
}

func (c *Ranked[T]) takeRank() uint64 {
	r := c.nextRank
	c.nextRank++
	return r
}

// compactRanks renumbers live entries to 0..n-1 keeping their relative order,
// so the counter restarts at n instead of wrapping.
func (c *Ranked[T]) compactRanks() {
	entries := c.Entries()
	for i, e := range entries {
		c.ranks[e.Value] = uint64(i)
	}
	c.nextRank = uint64(len(entries))
}

// Rank returns the current rank of value.
func (c *Ranked[T]) Rank(value T) (uint64, bool) {
	r, ok := c.ranks[value]
	return r, ok
}

func (c *Ranked[T]) Contains(value T) bool {
	_, ok := c.ranks[value]
	return ok
}

// Entries returns a snapshot ordered from lowest to highest rank.
func (c *Ranked[T]) Entries() []RankedEntry[T] {
	out := make([]RankedEntry[T], 0, len(c.ranks))
	for value, rank := range c.ranks {
		out = append(out, RankedEntry[T]{Value: value, Rank: rank})
	}
	slices.SortFunc(out, func(a, b RankedEntry[T]) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
	return out
}

func (c *Ranked[T]) Len() int { return len(c.ranks) }

func (c *Ranked[T]) Capacity() int { return c.capacity }

func (c *Ranked[T]) Policy() Policy { return c.policy }
