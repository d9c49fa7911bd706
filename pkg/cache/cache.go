// Package cache provides a thread-safe LRU cache for compiled numu
// expressions.
//
// The cache is used by the evaluator when the WithCaching option is
// enabled. It avoids re-parsing the same source string on every call,
// which matters when the same expression is evaluated against many
// different variable bindings.
//
// # Example
//
//	c := cache.New(1024)
//	expr, err := c.GetOrCompile("2 + x", parser.Parse)
package cache

import (
	"container/list"
	"sync"

	"github.com/numulang/numu/pkg/types"
)

// entry is a cache entry stored in the doubly-linked list.
type entry struct {
	key  string
	expr *types.Expression
}

// Cache is a thread-safe LRU (Least Recently Used) cache for compiled
// expressions. Once the capacity is reached, the least recently accessed
// entry is evicted. Evicting an Expression also releases its node arena.
//
// Safe for concurrent use by multiple goroutines.
type Cache struct {
	mu       sync.RWMutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

// New creates a new LRU cache with the given capacity.
// capacity must be > 0; if <= 0, a default of 256 is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = 256
	}
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Get retrieves a compiled expression from the cache.
// Returns (expr, true) if found and moves the entry to front (MRU).
// Returns (nil, false) if not present.
func (c *Cache) Get(key string) (*types.Expression, bool) {
	c.mu.RLock()
	el, ok := c.items[key]
	// If the element is already at the front, skip the write lock.
	alreadyFront := ok && c.ll.Front() == el
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !alreadyFront {
		c.mu.Lock()
		// Re-check under the write lock; the entry may have been evicted.
		if el2, still := c.items[key]; still {
			c.ll.MoveToFront(el2)
			el = el2
		} else {
			c.mu.Unlock()
			return nil, false
		}
		c.mu.Unlock()
	}
	return el.Value.(*entry).expr, true
}

// Put stores a compiled expression, evicting the LRU entry if the cache
// is full. Storing an existing key refreshes its value and recency.
func (c *Cache) Put(key string, expr *types.Expression) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(key, expr)
}

func (c *Cache) put(key string, expr *types.Expression) {
	if el, ok := c.items[key]; ok {
		c.ll.MoveToFront(el)
		el.Value.(*entry).expr = expr
		return
	}

	el := c.ll.PushFront(&entry{key: key, expr: expr})
	c.items[key] = el

	if c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.items, oldest.Value.(*entry).key)
		}
	}
}

// GetOrCompile returns the cached expression for source, or compiles it
// with compile and stores the result. Concurrent callers may compile the
// same source more than once; the cache stays consistent either way.
func (c *Cache) GetOrCompile(source string, compile func(string) (*types.Expression, error)) (*types.Expression, error) {
	if expr, ok := c.Get(source); ok {
		return expr, nil
	}

	expr, err := compile(source)
	if err != nil {
		return nil, err
	}

	c.Put(source, expr)
	return expr, nil
}

// Len reports the number of cached expressions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ll.Len()
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[string]*list.Element, c.capacity)
}
