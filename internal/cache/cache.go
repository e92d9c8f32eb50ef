package cache

import (
	"sync"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"

	"github.com/suryansh-23/secretsieve/internal/matcher"
)

// DefaultMaxMatchers bounds the number of subset matchers kept in memory.
const DefaultMaxMatchers = 64

// Matchers caches built matchers by subset key. Concurrent requests for the
// same key share one build. Entries never expire; the least recently used
// one is evicted when the cache is full. The pinned key is held outside the
// LRU and never evicted.
type Matchers struct {
	lru    *ttlcache.Cache[string, *matcher.Matcher]
	group  singleflight.Group
	pinKey string

	mu     sync.RWMutex
	pinned *matcher.Matcher
}

// New creates a cache holding at most maxEntries unpinned matchers.
func New(maxEntries int, pinKey string) *Matchers {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxMatchers
	}
	return &Matchers{
		lru: ttlcache.New[string, *matcher.Matcher](
			ttlcache.WithCapacity[string, *matcher.Matcher](uint64(maxEntries)),
		),
		pinKey: pinKey,
	}
}

// GetOrBuild returns the matcher for key, calling build at most once per key
// while it is cached. No lock is held while build runs.
func (c *Matchers) GetOrBuild(key string, build func() *matcher.Matcher) *matcher.Matcher {
	if m := c.get(key); m != nil {
		return m
	}
	v, _, _ := c.group.Do(key, func() (any, error) {
		if m := c.get(key); m != nil {
			return m, nil
		}
		m := build()
		c.put(key, m)
		return m, nil
	})
	return v.(*matcher.Matcher)
}

// Len returns the number of cached matchers, pinned one included.
func (c *Matchers) Len() int {
	n := c.lru.Len()
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.pinned != nil {
		n++
	}
	return n
}

func (c *Matchers) get(key string) *matcher.Matcher {
	if key == c.pinKey {
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.pinned
	}
	item := c.lru.Get(key)
	if item == nil {
		return nil
	}
	return item.Value()
}

func (c *Matchers) put(key string, m *matcher.Matcher) {
	if key == c.pinKey {
		c.mu.Lock()
		c.pinned = m
		c.mu.Unlock()
		return
	}
	c.lru.Set(key, m, ttlcache.NoTTL)
}
