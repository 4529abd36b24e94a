package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name          string
		configContent string

		wantPreference  string
		wantTarget      string
		wantServerPort  int
		wantError       bool
		wantErrorString string
	}{
		{
			name:           "defaults when config file is empty",
			configContent:  "",
			wantPreference: "auto",
			wantTarget:     "zh",
			wantServerPort: 8080,
		},
		{
			name: "values from config file override defaults",
			configContent: `providers:
  preference: mymemory
  target_language: ja
server:
  port: 9090
`,
			wantPreference: "mymemory",
			wantTarget:     "ja",
			wantServerPort: 9090,
		},
		{
			name:            "broken yaml fails to load",
			configContent:   "providers: [unbalanced",
			wantError:       true,
			wantErrorString: "configuration file found but could not be read",
		},
		{
			name: "glossary file must exist when configured",
			configContent: `glossary:
  file: /no/such/glossary.yml
`,
			wantError:       true,
			wantErrorString: "glossary.file must be an existing and readable file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.configContent), 0644))

			loader, err := NewConfigLoader(configFile)
			require.NoError(t, err)

			cfg, err := loader.Load()
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorString)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPreference, cfg.Providers.Preference)
			assert.Equal(t, tt.wantTarget, cfg.Providers.TargetLanguage)
			assert.Equal(t, tt.wantServerPort, cfg.Server.Port)
			assert.Equal(t, "https://api.dictionaryapi.dev", cfg.Dictionary.BaseURL)
		})
	}
}

func TestConfigLoader_ResolveSettings(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		brokenFile    bool

		want Settings
	}{
		{
			name:          "explicit preference",
			configContent: "providers:\n  preference: libretranslate\n",
			want:          Settings{ProviderPreference: PreferenceLibreTranslate},
		},
		{
			name:          "unknown preference falls back to auto",
			configContent: "providers:\n  preference: bing\n",
			want:          Settings{ProviderPreference: PreferenceAuto},
		},
		{
			name:          "empty config uses defaults",
			configContent: "",
			want:          DefaultSettings,
		},
		{
			name:          "corrupt store yields defaults instead of an error",
			configContent: "providers: [unbalanced",
			brokenFile:    true,
			want:          DefaultSettings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.configContent), 0644))

			loader, err := NewConfigLoader(configFile)
			require.NoError(t, err)

			assert.Equal(t, tt.want, loader.ResolveSettings())
		})
	}
}

func TestPreference_Normalize(t *testing.T) {
	assert.Equal(t, PreferenceAuto, Preference("").Normalize())
	assert.Equal(t, PreferenceAuto, Preference("google").Normalize())
	assert.Equal(t, PreferenceMyMemory, PreferenceMyMemory.Normalize())
	assert.Equal(t, PreferenceLibreTranslate, PreferenceLibreTranslate.Normalize())
}
