// Package cache is a small JSON file cache with an age bound, used for
// market-data responses so repeated chart runs stay off the provider.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const DefaultMaxAge = 24 * time.Hour

type envelope struct {
	CachedAt time.Time       `json:"cached_at"`
	Data     json.RawMessage `json:"data"`
}

type Cache struct {
	dir    string
	maxAge time.Duration
}

// New returns a cache rooted at dir, or nil (all methods no-op) when dir is
// empty.
func New(dir string, maxAge time.Duration) *Cache {
	if dir == "" {
		return nil
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Cache{dir: dir, maxAge: maxAge}
}

// Get loads a fresh entry into v. Returns false on miss, decode failure or
// an entry older than the age bound.
func (c *Cache) Get(key string, v interface{}) bool {
	if c == nil {
		return false
	}
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return false
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return false
	}
	if time.Since(env.CachedAt) > c.maxAge {
		return false
	}
	return json.Unmarshal(env.Data, v) == nil
}

// Set stores v under key. Write failures are silent: the cache is advisory.
func (c *Cache) Set(key string, v interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	body, err := json.MarshalIndent(envelope{CachedAt: time.Now().UTC(), Data: raw}, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return
	}
	os.WriteFile(c.path(key), body, 0600)
}

func (c *Cache) path(key string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(c.dir, clean+".json")
}
