package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/ymatsuda/wordglass/internal/config"
	"github.com/ymatsuda/wordglass/internal/database"
	"github.com/ymatsuda/wordglass/internal/dictionary"
	"github.com/ymatsuda/wordglass/internal/glossary"
	"github.com/ymatsuda/wordglass/internal/history"
	"github.com/ymatsuda/wordglass/internal/server"
	"github.com/ymatsuda/wordglass/internal/translate"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	loader, err := newConfigLoader()
	if err != nil {
		return fmt.Errorf("newConfigLoader() > %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("loader.Load() > %w", err)
	}

	providers := []translate.Provider{
		translate.NewLibreTranslate(cfg.Providers.LibreTranslate, cfg.Providers.SourceLanguage, cfg.Providers.TargetLanguage),
		translate.NewMyMemory(cfg.Providers.MyMemory, cfg.Providers.SourceLanguage, cfg.Providers.TargetLanguage),
	}
	definer := dictionary.NewReader(dictionary.Config{
		BaseURL: cfg.Dictionary.BaseURL,
	})

	var orchestratorOptions []translate.Option
	if cfg.Glossary.File != "" {
		g, err := glossary.Load(cfg.Glossary.File)
		if err != nil {
			return fmt.Errorf("glossary.Load() > %w", err)
		}
		slog.Default().Info("loaded glossary", "file", cfg.Glossary.File, "entries", g.Len())
		orchestratorOptions = append(orchestratorOptions, translate.WithGlossary(g))
	}
	orchestrator := translate.NewOrchestrator(providers, definer, translate.NewMemoryCache(), orchestratorOptions...)

	var handlerOptions []server.Option
	if cfg.History.Enabled {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("database.Open() > %w", err)
		}
		defer func() {
			_ = db.Close()
		}()
		handlerOptions = append(handlerOptions, server.WithLookupRepository(history.NewDBLookupRepository(db)))
	}

	handler := server.NewMessageHandler(orchestrator, loader.ResolveSettings, handlerOptions...)

	mux := http.NewServeMux()
	handler.Register(mux)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Default().Info("starting server", "addr", addr)
	return http.ListenAndServe(addr, server.CORSMiddleware(
		cfg.Server.CORS.AllowedOrigins,
		h2c.NewHandler(mux, &http2.Server{}),
	))
}

func newConfigLoader() (*config.ConfigLoader, error) {
	configFile := os.Getenv("WORDGLASS_CONFIG")
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader, nil
}
