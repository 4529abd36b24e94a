package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymatsuda/wordglass/internal/dictionary"
)

func TestMemoryCache_translations(t *testing.T) {
	cache := NewMemoryCache()

	_, ok := cache.Translation(ProviderLibreTranslate, "hello")
	assert.False(t, ok)

	result := TranslateResult{Translation: "你好", ProviderName: ProviderLibreTranslate}
	cache.StoreTranslation(ProviderLibreTranslate, "hello", result)

	got, ok := cache.Translation(ProviderLibreTranslate, "hello")
	require.True(t, ok)
	assert.Equal(t, result, got)

	// keys are namespaced per provider
	_, ok = cache.Translation(ProviderMyMemory, "hello")
	assert.False(t, ok)
}

func TestMemoryCache_definitions(t *testing.T) {
	cache := NewMemoryCache()

	_, ok := cache.Definition("breeze")
	assert.False(t, ok)

	entry := &dictionary.Entry{IPA: "/briːz/"}
	cache.StoreDefinition("breeze", entry)

	got, ok := cache.Definition("breeze")
	require.True(t, ok)
	assert.Equal(t, entry, got)

	// a nil entry records a word known to have no dictionary entry
	cache.StoreDefinition("qwzx", nil)
	got, ok = cache.Definition("qwzx")
	require.True(t, ok)
	assert.Nil(t, got)
}
