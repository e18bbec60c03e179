package source

import (
	"context"
	"sync"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

// CachedLoader wraps a DatasetLoader with an in-memory LRU cache whose
// entries expire after a fixed TTL. Concurrent misses for the same location
// share a single inner load.
type CachedLoader struct {
	inner   domain.DatasetLoader
	cache   *lruCache
	group   singleflight.Group
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics
}

// NewCachedLoader creates a cache decorator around a loader. A nil clock
// uses real time.
func NewCachedLoader(inner domain.DatasetLoader, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedLoader {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedLoader{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
	}
}

func (c *CachedLoader) Load(ctx context.Context, location string) (domain.Dataset, error) {
	now := c.clock.Now()
	if ds, ok := c.cache.get(location, now); ok {
		c.metrics.Cache.WithLabelValues("hit").Inc()
		return ds, nil
	}
	c.metrics.Cache.WithLabelValues("miss").Inc()

	v, err, _ := c.group.Do(location, func() (any, error) {
		ds, err := c.inner.Load(ctx, location)
		if err != nil {
			return domain.Dataset{}, err
		}
		// Empty datasets are never cached.
		if ds.Len() > 0 {
			c.cache.put(location, ds, c.clock.Now().Add(c.ttl))
		}
		return ds, nil
	})
	if err != nil {
		return domain.Dataset{}, err
	}
	return v.(domain.Dataset), nil
}

// Purge drops every cached dataset.
func (c *CachedLoader) Purge() {
	c.cache.purge()
}

// lruCache is a simple thread-safe LRU cache of datasets with per-entry expiry.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key       string
	value     domain.Dataset
	expiresAt time.Time
	prev      *entry
	next      *entry
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

func (c *lruCache) get(key string, now time.Time) (domain.Dataset, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.Dataset{}, false
	}
	if !now.Before(e.expiresAt) {
		delete(c.entries, key)
		c.remove(e)
		return domain.Dataset{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.Dataset, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value, expiresAt: expiresAt}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
	c.head = nil
	c.tail = nil
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
