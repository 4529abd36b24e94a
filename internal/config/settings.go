package config

import (
	"log/slog"
)

// Preference selects which translation providers to try, and in what order.
type Preference string

const (
	PreferenceAuto           Preference = "auto"
	PreferenceLibreTranslate Preference = "libretranslate"
	PreferenceMyMemory       Preference = "mymemory"
)

// Normalize maps unknown preference values to PreferenceAuto.
func (p Preference) Normalize() Preference {
	switch p {
	case PreferenceLibreTranslate, PreferenceMyMemory:
		return p
	default:
		return PreferenceAuto
	}
}

// Settings is a read-only snapshot of the user's preferences, taken once per
// request. Callers that want live updates re-resolve and re-invoke.
type Settings struct {
	ProviderPreference Preference
}

// DefaultSettings is used whenever the persisted configuration cannot be read.
var DefaultSettings = Settings{
	ProviderPreference: PreferenceAuto,
}

// ResolveSettings reads the persisted user preferences. It never fails: any
// read error (missing store, corrupt value) falls back to DefaultSettings.
func (loader *ConfigLoader) ResolveSettings() Settings {
	cfg, err := loader.Load()
	if err != nil {
		slog.Default().Warn("failed to load settings, using defaults", "error", err)
		return DefaultSettings
	}
	return Settings{
		ProviderPreference: Preference(cfg.Providers.Preference).Normalize(),
	}
}
