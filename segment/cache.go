package segment

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const cacheShards = 16

// Cache memoizes tokenization results for repeated inputs, e.g. when the
// same cell text recurs across a corpus. It is an explicit, caller-owned
// resource: callers that want memoization construct one and share it; the
// tokenizer itself stays stateless. Safe for concurrent use. The returned
// slices are shared between callers and must be treated as read-only.
type Cache struct {
	shards [cacheShards]cacheShard
}

type cacheShard struct {
	mu sync.RWMutex
	m  map[string][]Token
}

// NewCache creates an empty tokenization cache.
func NewCache() *Cache {
	c := &Cache{}
	for i := range c.shards {
		c.shards[i].m = make(map[string][]Token)
	}
	return c
}

func cacheKey(text string, keepBoundaries bool) string {
	if keepBoundaries {
		return "b\x00" + text
	}
	return "n\x00" + text
}

func (c *Cache) shard(key string) *cacheShard {
	return &c.shards[xxhash.Sum64String(key)%cacheShards]
}

// Tokenize behaves like the package-level Tokenize but reuses a previous
// result when the same input and boundary setting were seen before.
func (c *Cache) Tokenize(text string, keepBoundaries bool) []Token {
	key := cacheKey(text, keepBoundaries)
	s := c.shard(key)

	s.mu.RLock()
	tokens, ok := s.m[key]
	s.mu.RUnlock()
	if ok {
		return tokens
	}

	tokens = Tokenize(text, keepBoundaries)
	s.mu.Lock()
	if prev, ok := s.m[key]; ok {
		tokens = prev
	} else {
		s.m[key] = tokens
	}
	s.mu.Unlock()
	return tokens
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.m)
		s.mu.RUnlock()
	}
	return n
}
