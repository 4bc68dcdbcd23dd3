package team

import "strings"

// Cache maps upper-cased short codes to resolved full team names
type Cache struct {
	names map[string]string
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{
		names: make(map[string]string),
	}
}

// NewSeededCache creates a cache pre-populated with known mappings
func NewSeededCache(seed map[string]string) *Cache {
	c := NewCache()
	for short, full := range seed {
		c.Set(short, full)
	}
	return c
}

// Get returns the full name for a short code, ignoring case
func (c *Cache) Get(short string) (string, bool) {
	full, ok := c.names[cacheKey(short)]
	return full, ok
}

// Set stores a resolution for a short code
func (c *Cache) Set(short, full string) {
	c.names[cacheKey(short)] = full
}

// Size returns the number of cached resolutions
func (c *Cache) Size() int {
	return len(c.names)
}

// Mappings returns a copy of every cached resolution
func (c *Cache) Mappings() map[string]string {
	out := make(map[string]string, len(c.names))
	for k, v := range c.names {
		out[k] = v
	}
	return out
}

func cacheKey(short string) string {
	return strings.ToUpper(strings.TrimSpace(short))
}
