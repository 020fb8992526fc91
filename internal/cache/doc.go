// Package cache implements two single-process, bounded in-memory caches.
//
// Goals for this package:
//   - Ranked: policy-driven eviction (LRU or MRU) over a map of key -> rank
//   - InsertionOrder: FIFO eviction at O(1) using a map plus an insertion queue
//   - Plain return values (evicted key, ok) with no dependency on presentation
//
// Neither cache is safe for concurrent use. Callers that share an instance
// across goroutines must guard it with their own mutex.
package cache
