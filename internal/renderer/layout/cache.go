package layout

import (
	"hash/fnv"
	"sync"

	"github.com/danlliu/dvim/internal/renderer/segment"
)

// LineCache caches the cell segmentation of document lines with LRU
// eviction. Entries are keyed by line number and validated by a hash of
// the line content, so edits invalidate them implicitly.
type LineCache struct {
	mu      sync.Mutex
	entries map[int]*cacheEntry
	maxSize int
	tick    uint64

	hits, misses, evictions uint64
}

type cacheEntry struct {
	cells      []segment.Cell
	lineHash   uint64
	lastAccess uint64
}

// NewLineCache creates a line cache holding at most maxSize lines
// (0 = unlimited).
func NewLineCache(maxSize int) *LineCache {
	if maxSize < 0 {
		maxSize = 0
	}
	return &LineCache{
		entries: make(map[int]*cacheEntry),
		maxSize: maxSize,
	}
}

// Get returns the cells of line, computing them if the cached entry is
// missing or stale. The returned slice must not be modified.
func (c *LineCache) Get(line int, text string) []segment.Cell {
	hash := hashLine(text)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick++

	if e, ok := c.entries[line]; ok && e.lineHash == hash {
		e.lastAccess = c.tick
		c.hits++
		return e.cells
	}

	c.misses++
	cells := segment.NewSegmenter().Cells(text)
	c.entries[line] = &cacheEntry{cells: cells, lineHash: hash, lastAccess: c.tick}
	if c.maxSize > 0 && len(c.entries) > c.maxSize {
		c.evict()
	}
	return cells
}

// Invalidate drops the entry for line.
func (c *LineCache) Invalidate(line int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, line)
}

// InvalidateAll clears the entire cache.
func (c *LineCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[int]*cacheEntry)
}

// evict removes the least recently used entry.
// Must be called with the lock held.
func (c *LineCache) evict() {
	oldest, found := 0, false
	var oldestTick uint64
	for line, e := range c.entries {
		if !found || e.lastAccess < oldestTick {
			oldest, oldestTick, found = line, e.lastAccess, true
		}
	}
	if found {
		delete(c.entries, oldest)
		c.evictions++
	}
}

// Size returns the number of cached entries.
func (c *LineCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// CacheStats holds cache statistics.
type CacheStats struct {
	Size      int    // Current number of entries
	MaxSize   int    // Maximum entries allowed
	Hits      uint64 // Number of cache hits
	Misses    uint64 // Number of cache misses
	Evictions uint64 // Number of evicted entries
}

// Stats returns cache statistics.
func (c *LineCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Size:      len(c.entries),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// hashLine computes a hash of line content using FNV-1a.
func hashLine(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
