package cache

import (
	"container/list"
	"sync"
)

// Memory is the in-memory LRU tier. Entries are byte slices keyed by word.
type Memory struct {
	capacity int64
	size     int64

	items    map[string]*list.Element
	eviction *list.List

	mu sync.Mutex

	stats Stats
}

type memoryEntry struct {
	key   string
	value []byte
}

// NewMemory creates a memory tier bounded to capacity bytes.
func NewMemory(capacity int64) *Memory {
	return &Memory{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		stats:    Stats{Capacity: capacity},
	}
}

// Get retrieves a value and marks it most recently used.
func (c *Memory) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}

	c.eviction.MoveToFront(elem)
	c.stats.Hits++
	return elem.Value.(*memoryEntry).value, true
}

// Put stores a value, evicting least recently used entries to make room.
func (c *Memory) Put(key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := int64(len(value))
	if size > c.capacity {
		return ErrItemTooLarge
	}

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*memoryEntry)
		c.size += size - int64(len(entry.value))
		entry.value = value
		c.eviction.MoveToFront(elem)
		return nil
	}

	for c.size+size > c.capacity && c.eviction.Len() > 0 {
		c.evictOldest()
	}

	c.items[key] = c.eviction.PushFront(&memoryEntry{key: key, value: value})
	c.size += size
	return nil
}

// Contains reports whether key is cached, without touching recency.
func (c *Memory) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[key]
	return ok
}

// Clear drops every entry.
func (c *Memory) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.eviction.Init()
	c.size = 0
}

// Size returns the current tier size in bytes.
func (c *Memory) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.size
}

// Stats returns a snapshot of the tier's counters.
func (c *Memory) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := c.stats
	stats.Size = c.size
	stats.ItemCount = int64(len(c.items))
	if total := stats.Hits + stats.Misses; total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total)
	}
	return stats
}

// evictOldest removes the least recently used entry. Caller holds the lock.
func (c *Memory) evictOldest() {
	elem := c.eviction.Back()
	if elem == nil {
		return
	}
	entry := elem.Value.(*memoryEntry)
	c.eviction.Remove(elem)
	delete(c.items, entry.key)
	c.size -= int64(len(entry.value))
	c.stats.Evictions++
}
