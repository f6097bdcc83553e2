package store

import "container/list"

// lruCache is the bounded hot cache layered in front of the authoritative
// map. It is not self-locking: the owning Store serializes access.
type lruCache struct {
	cap   int
	order *list.List // front = most recently used
	items map[PathKey]*list.Element
}

type lruEntry struct {
	key  PathKey
	path *CachedPath
}

func newLRUCache(capacity int) *lruCache {
	return &lruCache{
		cap:   capacity,
		order: list.New(),
		items: make(map[PathKey]*list.Element, capacity),
	}
}

// get returns the cached path and refreshes its recency.
func (c *lruCache) get(key PathKey) (*CachedPath, bool) {
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry).path, true
}

// put inserts or refreshes an entry, evicting the least recently used one
// when over capacity.
func (c *lruCache) put(key PathKey, path *CachedPath) {
	if el, ok := c.items[key]; ok {
		el.Value.(*lruEntry).path = path
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&lruEntry{key: key, path: path})
	if c.order.Len() > c.cap {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*lruEntry).key)
	}
}

func (c *lruCache) len() int {
	return c.order.Len()
}
