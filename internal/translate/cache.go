package translate

import (
	"sync"

	"github.com/ymatsuda/wordglass/internal/dictionary"
)

// Cache stores completed lookups for the lifetime of the process. A hit is
// always returned instead of issuing a new network call for the same key.
type Cache interface {
	Translation(provider, text string) (TranslateResult, bool)
	StoreTranslation(provider, text string, result TranslateResult)

	// Definition reports whether the word was looked up before. A true
	// second return with a nil entry records a word known to have no entry.
	Definition(word string) (*dictionary.Entry, bool)
	StoreDefinition(word string, entry *dictionary.Entry)
}

type translationKey struct {
	provider string
	text     string
}

// MemoryCache is an unbounded in-memory Cache: no TTL, no eviction. The
// mutex only guards map integrity. There is no singleflight: concurrent
// requests for the same key can both miss and both fetch, and the last
// writer wins.
type MemoryCache struct {
	mu           sync.RWMutex
	translations map[translationKey]TranslateResult
	definitions  map[string]*dictionary.Entry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		translations: make(map[translationKey]TranslateResult),
		definitions:  make(map[string]*dictionary.Entry),
	}
}

func (c *MemoryCache) Translation(provider, text string) (TranslateResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.translations[translationKey{provider: provider, text: text}]
	return result, ok
}

func (c *MemoryCache) StoreTranslation(provider, text string, result TranslateResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translations[translationKey{provider: provider, text: text}] = result
}

func (c *MemoryCache) Definition(word string) (*dictionary.Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.definitions[word]
	return entry, ok
}

func (c *MemoryCache) StoreDefinition(word string, entry *dictionary.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.definitions[word] = entry
}
