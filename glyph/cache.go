package glyph

import (
	"sync"

	"github.com/glyphtrace/glyphtrace"
)

// outlineCache is a small LRU cache of extracted outlines keyed by rune.
// Tracing apps request the same handful of letters repeatedly, so even a
// modest capacity removes nearly all repeat extraction work.
type outlineCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[rune]*cacheNode
	head     *cacheNode // most recently used
	tail     *cacheNode // least recently used

	hits   uint64
	misses uint64
}

type cacheNode struct {
	key        rune
	outline    glyphtrace.Outline
	prev, next *cacheNode
}

func newOutlineCache(capacity int) *outlineCache {
	return &outlineCache{
		capacity: capacity,
		entries:  make(map[rune]*cacheNode),
	}
}

// get returns a clone of the cached outline, so callers can never mutate
// the cached copy through the returned slice.
func (c *outlineCache) get(r rune) (glyphtrace.Outline, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[r]
	if !ok {
		c.misses++
		return nil, false
	}
	c.moveToFront(n)
	c.hits++
	return n.outline.Clone(), true
}

func (c *outlineCache) put(r rune, out glyphtrace.Outline) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[r]; ok {
		n.outline = out.Clone()
		c.moveToFront(n)
		return
	}
	for len(c.entries) >= c.capacity && c.tail != nil {
		delete(c.entries, c.tail.key)
		c.unlink(c.tail)
	}
	n := &cacheNode{key: r, outline: out.Clone()}
	c.entries[r] = n
	c.pushFront(n)
}

func (c *outlineCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// stats returns hit and miss counts since creation.
func (c *outlineCache) stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *outlineCache) moveToFront(n *cacheNode) {
	if c.head == n {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *outlineCache) pushFront(n *cacheNode) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *outlineCache) unlink(n *cacheNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
