package tablesource

import (
	"io/fs"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/couchcryptid/grib-metadata-etl/internal/observability"
)

// CachedFS wraps an fs.FS with an in-memory LRU of whole files. Concurrent
// reads of the same uncached file share one underlying read.
type CachedFS struct {
	inner   fs.FS
	cache   *lruCache
	group   singleflight.Group
	metrics *observability.Metrics
}

// NewCachedFS creates a cache decorator around inner holding at most
// maxEntries files. metrics may be nil.
func NewCachedFS(inner fs.FS, maxEntries int, metrics *observability.Metrics) *CachedFS {
	return &CachedFS{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

// Open implements fs.FS.
func (c *CachedFS) Open(name string) (fs.File, error) {
	data, err := c.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return newMemFile(name, data), nil
}

// ReadFile implements fs.ReadFileFS. Only successful reads are cached, so a
// file that appears on the mirror later is picked up.
func (c *CachedFS) ReadFile(name string) ([]byte, error) {
	if data, ok := c.cache.get(name); ok {
		c.count("hit")
		return data, nil
	}
	c.count("miss")

	v, err, _ := c.group.Do(name, func() (any, error) {
		data, err := fs.ReadFile(c.inner, name)
		if err != nil {
			return nil, err
		}
		c.cache.put(name, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Len reports the number of cached files.
func (c *CachedFS) Len() int {
	return c.cache.len()
}

func (c *CachedFS) count(result string) {
	if c.metrics != nil {
		c.metrics.TableCache.WithLabelValues(result).Inc()
	}
}

// lruCache is a small thread-safe LRU of file contents.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value []byte
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
