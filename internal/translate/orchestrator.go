// Package translate sequences translation providers with fallback and merges
// in the dictionary lookup for single words.
package translate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ymatsuda/wordglass/internal/config"
	"github.com/ymatsuda/wordglass/internal/dictionary"
	"github.com/ymatsuda/wordglass/internal/glossary"
)

// TranslateRequest is one user interaction: the selected text and whether it
// is a single word.
type TranslateRequest struct {
	Text   string
	IsWord bool
}

// TranslateResult is a successful provider call. Immutable once created.
type TranslateResult struct {
	Translation  string
	ProviderName string
}

// Result is the combined outcome returned to the UI layer. Success reflects
// the translation phase only; a missing dictionary entry never fails the
// request.
type Result struct {
	Success      bool              `json:"success"`
	Translation  string            `json:"translation"`
	ProviderName string            `json:"providerName"`
	Dict         *dictionary.Entry `json:"dict"`
	ErrorMessage string            `json:"errorMessage"`
}

// User-facing messages are fixed and non-technical; details go to the log.
const (
	emptyInputMessage         = "Nothing to translate."
	translationFailureMessage = "Translation failed. Please try again later."
)

type Orchestrator struct {
	providers map[string]Provider
	definer   Definer
	cache     Cache
	glossary  *glossary.Glossary
}

type Option func(*Orchestrator)

// WithGlossary consults a local glossary for single words before any
// network provider.
func WithGlossary(g *glossary.Glossary) Option {
	return func(o *Orchestrator) {
		o.glossary = g
	}
}

func NewOrchestrator(providers []Provider, definer Definer, cache Cache, options ...Option) *Orchestrator {
	byName := make(map[string]Provider, len(providers))
	for _, provider := range providers {
		byName[provider.Name()] = provider
	}
	orchestrator := &Orchestrator{
		providers: byName,
		definer:   definer,
		cache:     cache,
	}
	for _, option := range options {
		option(orchestrator)
	}
	return orchestrator
}

// TranslateAndDefine runs the translation phase over the ordered provider
// list, then the dictionary phase for single words. Calls are strictly
// sequential; each provider is tried at most once.
func (o *Orchestrator) TranslateAndDefine(ctx context.Context, settings config.Settings, request TranslateRequest) Result {
	text := strings.TrimSpace(request.Text)
	if text == "" {
		return Result{Success: false, ErrorMessage: emptyInputMessage}
	}

	var glossaryEntry *glossary.Entry
	translated := o.translateWithGlossary(text, request.IsWord, &glossaryEntry)
	if translated == nil {
		translated = o.translateWithFallback(ctx, settings, text)
	}

	dict := o.define(ctx, text, request.IsWord)
	if dict == nil && glossaryEntry != nil && glossaryEntry.IPA != "" {
		dict = &dictionary.Entry{IPA: glossaryEntry.IPA}
	}

	if translated == nil {
		return Result{
			Success:      false,
			Dict:         dict,
			ErrorMessage: translationFailureMessage,
		}
	}
	return Result{
		Success:      true,
		Translation:  translated.Translation,
		ProviderName: translated.ProviderName,
		Dict:         dict,
	}
}

func (o *Orchestrator) translateWithGlossary(text string, isWord bool, glossaryEntry **glossary.Entry) *TranslateResult {
	if !isWord || o.glossary == nil {
		return nil
	}
	entry, ok := o.glossary.Lookup(text)
	if !ok {
		return nil
	}
	*glossaryEntry = &entry
	return &TranslateResult{
		Translation:  entry.Translation,
		ProviderName: ProviderGlossary,
	}
}

func (o *Orchestrator) translateWithFallback(ctx context.Context, settings config.Settings, text string) *TranslateResult {
	var lastErr error
	for _, name := range ProviderOrder(settings.ProviderPreference) {
		if cached, ok := o.cache.Translation(name, text); ok {
			return &cached
		}

		provider, ok := o.providers[name]
		if !ok {
			slog.Default().Warn("translation provider not configured", "provider", name)
			continue
		}

		translated, err := provider.Translate(ctx, text)
		if err != nil {
			slog.Default().Warn("translation provider failed",
				"provider", name,
				"error", err)
			lastErr = err
			continue
		}

		result := TranslateResult{Translation: translated, ProviderName: name}
		o.cache.StoreTranslation(name, text, result)
		return &result
	}

	if lastErr != nil {
		slog.Default().Info("all translation providers failed", "lastError", lastErr)
	}
	return nil
}

func (o *Orchestrator) define(ctx context.Context, text string, isWord bool) *dictionary.Entry {
	if !isWord || o.definer == nil {
		return nil
	}

	word := strings.ToLower(text)
	if entry, ok := o.cache.Definition(word); ok {
		return entry
	}

	entry, err := o.definer.Define(ctx, word)
	if err != nil {
		// transient failure: try again on the next request
		slog.Default().Warn("dictionary lookup failed", "word", word, "error", err)
		return nil
	}

	// a nil entry records a word known to have no dictionary entry
	o.cache.StoreDefinition(word, entry)
	return entry
}
