// Package cache keeps rendered pages in memory so repeated requests for
// the same path and query skip rendering. Entries carry dependency tags;
// invalidating a tag drops every page rendered from it.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Cache stores rendered pages
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*Entry
	maxSize  int64
	maxAge   time.Duration
	strategy EvictionStrategy
	stats    Stats
	now      func() time.Time
}

// Entry is a single cached page
type Entry struct {
	Key         string
	Data        []byte
	ETag        string
	ContentType string
	Size        int64
	Created     time.Time
	LastAccess  time.Time
	AccessCount int
	Tags        []string
}

// Stats tracks cache performance
type Stats struct {
	Hits       int64 `json:"hits" yaml:"hits"`
	Misses     int64 `json:"misses" yaml:"misses"`
	Evictions  int64 `json:"evictions" yaml:"evictions"`
	TotalSize  int64 `json:"totalSize" yaml:"totalSize"`
	EntryCount int   `json:"entryCount" yaml:"entryCount"`
}

// EvictionStrategy defines how entries are removed when the cache is full
type EvictionStrategy int

const (
	// LRU removes least recently used entries
	LRU EvictionStrategy = iota
	// LFU removes least frequently used entries
	LFU
	// FIFO removes oldest entries first
	FIFO
)

var strategyNames = map[string]EvictionStrategy{"lru": LRU, "lfu": LFU, "fifo": FIFO}

// ParseStrategy maps "lru", "lfu" or "fifo" to a strategy
func ParseStrategy(name string) (EvictionStrategy, bool) {
	s, ok := strategyNames[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

func (s EvictionStrategy) String() string {
	for name, v := range strategyNames {
		if v == s {
			return name
		}
	}
	return "unknown"
}

// Config holds cache configuration
type Config struct {
	MaxSize  int64            // Maximum total size in bytes, <= 0 for no limit
	MaxAge   time.Duration    // Maximum entry age, <= 0 for no expiry
	Strategy EvictionStrategy // Eviction strategy (default: LRU)
}

// DefaultConfig returns the default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxSize:  32 << 20,
		MaxAge:   10 * time.Minute,
		Strategy: LRU,
	}
}

// New creates a new cache
func New(config Config) *Cache {
	return &Cache{
		entries:  make(map[string]*Entry),
		maxSize:  config.MaxSize,
		maxAge:   config.MaxAge,
		strategy: config.Strategy,
		now:      time.Now,
	}
}

// Get retrieves a cached page
func (c *Cache) Get(key string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}
	if c.isExpired(entry) {
		c.removeLocked(key)
		c.stats.Misses++
		return nil, false
	}

	entry.LastAccess = c.now()
	entry.AccessCount++
	c.stats.Hits++
	return entry, true
}

// Put stores a page. Pages larger than the whole cache are not stored.
func (c *Cache) Put(key string, data []byte, contentType string, tags ...string) *Entry {
	size := int64(len(data))
	now := c.now()
	entry := &Entry{
		Key:         key,
		Data:        data,
		ETag:        `"` + Hash(data)[:16] + `"`,
		ContentType: contentType,
		Size:        size,
		Created:     now,
		LastAccess:  now,
		Tags:        tags,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && size > c.maxSize {
		return entry
	}
	c.removeLocked(key)
	c.ensureSpace(size)
	c.entries[key] = entry
	c.stats.TotalSize += size
	c.stats.EntryCount = len(c.entries)
	return entry
}

// Delete removes an entry
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
}

// Invalidate removes every entry tagged with tag and returns how many went
func (c *Cache) Invalidate(tag string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for key, entry := range c.entries {
		for _, t := range entry.Tags {
			if t == tag {
				c.removeLocked(key)
				count++
				break
			}
		}
	}
	return count
}

// Clear removes all entries
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Entry)
	c.stats.TotalSize = 0
	c.stats.EntryCount = 0
}

// Prune drops expired entries
func (c *Cache) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for key, entry := range c.entries {
		if c.isExpired(entry) {
			c.removeLocked(key)
			count++
		}
	}
	return count
}

// GetStats returns cache statistics
func (c *Cache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Hash returns the hex SHA-256 of data
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// PageKey builds the key for a request. Query parameters are sorted so
// ?a=1&b=2 and ?b=2&a=1 share an entry.
func PageKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

func (c *Cache) removeLocked(key string) {
	entry, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)
	c.stats.TotalSize -= entry.Size
	c.stats.EntryCount = len(c.entries)
}

func (c *Cache) isExpired(entry *Entry) bool {
	if c.maxAge <= 0 {
		return false
	}
	return c.now().Sub(entry.Created) > c.maxAge
}

func (c *Cache) ensureSpace(needed int64) {
	if c.maxSize <= 0 {
		return
	}

	for c.stats.TotalSize+needed > c.maxSize && len(c.entries) > 0 {
		var victim *Entry

		switch c.strategy {
		case LFU:
			for _, entry := range c.entries {
				if victim == nil || entry.AccessCount < victim.AccessCount {
					victim = entry
				}
			}
		case FIFO:
			for _, entry := range c.entries {
				if victim == nil || entry.Created.Before(victim.Created) {
					victim = entry
				}
			}
		default:
			for _, entry := range c.entries {
				if victim == nil || entry.LastAccess.Before(victim.LastAccess) {
					victim = entry
				}
			}
		}

		c.removeLocked(victim.Key)
		c.stats.Evictions++
	}
}
