package translate

import (
	"context"

	"github.com/ymatsuda/wordglass/internal/config"
	"github.com/ymatsuda/wordglass/internal/dictionary"
)

//go:generate mockgen -source=provider.go -destination=../mocks/translate/mock_provider.go -package=mock_translate

// Provider names double as cache key namespaces.
const (
	ProviderLibreTranslate = "libretranslate"
	ProviderMyMemory       = "mymemory"
	ProviderGlossary       = "glossary"
)

// Provider is a translation backend. Translate returns a non-empty
// translation or an error; it is called at most once per request.
type Provider interface {
	Name() string
	Translate(ctx context.Context, text string) (string, error)
}

// Definer resolves a word's dictionary entry. A (nil, nil) return means the
// word definitively has no entry; an error means the outcome is unknown.
type Definer interface {
	Define(ctx context.Context, word string) (*dictionary.Entry, error)
}

// ProviderOrder maps a preference to the ordered list of providers to try.
// The first entry is the primary, the rest are fallbacks. Unknown
// preferences behave like auto.
func ProviderOrder(preference config.Preference) []string {
	switch preference.Normalize() {
	case config.PreferenceLibreTranslate:
		return []string{ProviderLibreTranslate}
	case config.PreferenceMyMemory:
		return []string{ProviderMyMemory}
	default:
		return []string{ProviderLibreTranslate, ProviderMyMemory}
	}
}
