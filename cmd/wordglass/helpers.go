package main

import (
	"fmt"

	"github.com/ymatsuda/wordglass/internal/config"
	"github.com/ymatsuda/wordglass/internal/dictionary"
	"github.com/ymatsuda/wordglass/internal/glossary"
	"github.com/ymatsuda/wordglass/internal/translate"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func resolveSettings() config.Settings {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return config.DefaultSettings
	}
	return loader.ResolveSettings()
}

func newProviders(cfg *config.Config) []translate.Provider {
	return []translate.Provider{
		translate.NewLibreTranslate(cfg.Providers.LibreTranslate, cfg.Providers.SourceLanguage, cfg.Providers.TargetLanguage),
		translate.NewMyMemory(cfg.Providers.MyMemory, cfg.Providers.SourceLanguage, cfg.Providers.TargetLanguage),
	}
}

func newOrchestrator(cfg *config.Config) (*translate.Orchestrator, error) {
	definer := dictionary.NewReader(dictionary.Config{
		BaseURL: cfg.Dictionary.BaseURL,
	})

	var options []translate.Option
	if cfg.Glossary.File != "" {
		g, err := glossary.Load(cfg.Glossary.File)
		if err != nil {
			return nil, fmt.Errorf("glossary.Load() > %w", err)
		}
		options = append(options, translate.WithGlossary(g))
	}

	return translate.NewOrchestrator(newProviders(cfg), definer, translate.NewMemoryCache(), options...), nil
}
