package cache

import (
	"log/slog"
	"sync"
	"time"

	"github.com/scipunch/newswire/fetcher/types"
	"github.com/scipunch/newswire/metrics"
)

// DefaultKeys are created empty when the cache starts
var DefaultKeys = []string{"news", "opinions", "videos", "podcasts"}

// Entry is one cached aggregation result. Nil Data means the key was never
// populated.
type Entry struct {
	Data      []types.Article
	Timestamp time.Time
}

// Store persists entries outside the process
type Store interface {
	Save(key string, entry Entry) error
	Load() ([]Record, error)
}

// Record is a persisted entry together with its key
type Record struct {
	Key   string
	Entry Entry
}

// Cache is a process-wide key to article list store with a fixed TTL.
// Entries are replaced whole on Put and expire only logically: a stale
// entry stays readable through Pool.
type Cache struct {
	ttl   time.Duration
	now   func() time.Time
	store Store

	mu      sync.RWMutex
	entries map[string]*Entry
	keys    []string
}

type Option func(*Cache)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithStore writes every Put through to store
func WithStore(store Store) Option {
	return func(c *Cache) { c.store = store }
}

// WithKeys replaces DefaultKeys
func WithKeys(keys ...string) Option {
	return func(c *Cache) {
		c.entries = make(map[string]*Entry, len(keys))
		c.keys = nil
		for _, k := range keys {
			c.ensure(k)
		}
	}
}

func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*Entry, len(DefaultKeys)),
	}
	for _, k := range DefaultKeys {
		c.ensure(k)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key builds the cache key for a request: the type alone, or
// "type_category" when a category is given.
func Key(feedType, category string) string {
	if category == "" {
		return feedType
	}
	return feedType + "_" + category
}

// Get returns the entry for key if it holds data younger than the TTL.
// A key seen for the first time is created as an empty miss.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	var entry Entry
	if ok {
		entry = *e
	}
	c.mu.RUnlock()

	if !ok {
		c.mu.Lock()
		c.ensure(key)
		c.mu.Unlock()
	}

	hit := entry.Data != nil && c.now().Sub(entry.Timestamp) < c.ttl
	metrics.RecordCacheLookup(hit)
	if !hit {
		return Entry{}, false
	}
	return entry, true
}

// Put replaces the entry for key and stamps it with the current time
func (c *Cache) Put(key string, data []types.Article) Entry {
	if data == nil {
		data = []types.Article{}
	}
	entry := Entry{Data: data, Timestamp: c.now()}

	c.mu.Lock()
	e := c.ensure(key)
	*e = entry
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.Save(key, entry); err != nil {
			slog.Warn("cache write-through failed", "key", key, "error", err)
		}
	}
	return entry
}

// Pool returns every cached article regardless of freshness, in key
// creation order
func (c *Cache) Pool() []types.Article {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var n int
	for _, k := range c.keys {
		n += len(c.entries[k].Data)
	}
	pool := make([]types.Article, 0, n)
	for _, k := range c.keys {
		pool = append(pool, c.entries[k].Data...)
	}
	return pool
}

// Keys lists known keys in creation order
func (c *Cache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.keys...)
}

// Restore loads persisted entries. Their original timestamps are kept, so
// entries older than the TTL come back stale.
func (c *Cache) Restore() (int, error) {
	if c.store == nil {
		return 0, nil
	}
	records, err := c.store.Load()
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range records {
		e := c.ensure(r.Key)
		*e = r.Entry
	}
	return len(records), nil
}

// ensure must be called with mu held for writing
func (c *Cache) ensure(key string) *Entry {
	if e, ok := c.entries[key]; ok {
		return e
	}
	e := &Entry{}
	c.entries[key] = e
	c.keys = append(c.keys, key)
	return e
}
