package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Providers  ProvidersConfig  `mapstructure:"providers"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Glossary   GlossaryConfig   `mapstructure:"glossary"`
	History    HistoryConfig    `mapstructure:"history"`
	Database   DatabaseConfig   `mapstructure:"database"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ProvidersConfig struct {
	Preference     string               `mapstructure:"preference"`
	SourceLanguage string               `mapstructure:"source_language"`
	TargetLanguage string               `mapstructure:"target_language"`
	LibreTranslate LibreTranslateConfig `mapstructure:"libretranslate"`
	MyMemory       MyMemoryConfig       `mapstructure:"mymemory"`
}

type LibreTranslateConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type MyMemoryConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Email raises MyMemory's daily request quota when set.
	Email string `mapstructure:"email"`
}

type DictionaryConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type GlossaryConfig struct {
	File string `mapstructure:"file" validate:"omitempty,file"`
}

type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordglass")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("providers.preference", string(PreferenceAuto))
	v.SetDefault("providers.source_language", "en")
	v.SetDefault("providers.target_language", "zh")
	v.SetDefault("providers.libretranslate.base_url", "https://libretranslate.com")
	v.SetDefault("providers.mymemory.base_url", "https://api.mymemory.translated.net")
	v.SetDefault("dictionary.base_url", "https://api.dictionaryapi.dev")
	v.SetDefault("glossary.file", "")
	v.SetDefault("history.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "wordglass")
	v.SetDefault("database.username", "user")

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("providers.libretranslate.api_key", "LIBRETRANSLATE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind LIBRETRANSLATE_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("providers.mymemory.email", "MYMEMORY_EMAIL"); err != nil {
		return nil, fmt.Errorf("failed to bind MYMEMORY_EMAIL environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
