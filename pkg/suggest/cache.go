package suggest

import (
	"container/list"
	"sync"
)

type cacheEntry struct {
	query   string
	matches []Match
}

// resultCache is a small thread-safe LRU over query results.
// When it reaches capacity, the least recently used query is evicted.
type resultCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

// newResultCache creates a cache with the given capacity.
// The capacity must be positive, otherwise it panics.
func newResultCache(capacity int) *resultCache {
	if capacity <= 0 {
		panic("suggest: result cache capacity must be positive")
	}
	return &resultCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// get retrieves the cached matches for a query and marks the entry as
// recently used.
func (c *resultCache) get(query string) ([]Match, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[query]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).matches, true
	}
	return nil, false
}

// put stores the matches for a query, evicting the least recently used
// entry when the cache is at capacity.
func (c *resultCache) put(query string, matches []Match) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[query]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cacheEntry).matches = matches
		return
	}

	elem := c.eviction.PushFront(&cacheEntry{query: query, matches: matches})
	c.items[query] = elem

	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).query)
	}
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}
