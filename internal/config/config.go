// Package config loads client configuration from a YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	API         APIConfig         `mapstructure:"api"`
	Multiplayer MultiplayerConfig `mapstructure:"multiplayer"`
	Autosave    AutosaveConfig    `mapstructure:"autosave"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// APIConfig points at the deck persistence service.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// MultiplayerConfig points at the realtime game server.
type MultiplayerConfig struct {
	URL string `mapstructure:"url"`
}

// AutosaveConfig tunes the debounced deck saver.
type AutosaveConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the given file path. Environment variables
// prefixed with TABLETOP_ override file values (TABLETOP_API_BASE_URL,
// TABLETOP_LOGGING_LEVEL, ...). A missing file is not an error: defaults
// and environment overrides still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("multiplayer.url", "ws://localhost:8000/ws/game")
	v.SetDefault("autosave.delay", 2*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("TABLETOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
