package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment overrides for the article service.
const (
	EnvAPIKey  = "RUNCALS_API_KEY"
	EnvBaseURL = "RUNCALS_API_BASE_URL"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Storage  StorageConfig  `toml:"storage"`
	History  HistoryConfig  `toml:"history"`
	Articles ArticlesConfig `toml:"articles"`
	Display  DisplayConfig  `toml:"display"`
}

// StorageConfig maps database settings.
type StorageConfig struct {
	DB *string `toml:"db"`
}

// HistoryConfig maps calculator history settings.
type HistoryConfig struct {
	Cap *int `toml:"cap"`
}

// ArticlesConfig maps article service settings. Durations use Go syntax
// such as "1h" or "30s".
type ArticlesConfig struct {
	BaseURL    *string `toml:"base-url"`
	APIKey     *string `toml:"api-key"`
	StaleAfter *string `toml:"stale-after"`
	Timeout    *string `toml:"timeout"`
}

// DisplayConfig maps output preferences.
type DisplayConfig struct {
	Language *string `toml:"language"`
	Theme    *string `toml:"theme"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

// ApplyEnv overlays the environment overrides onto cfg.
func (cfg *FileConfig) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvAPIKey); ok {
		cfg.Articles.APIKey = &v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.Articles.BaseURL = &v
	}
}

func (cfg FileConfig) validate() error {
	if cfg.History.Cap != nil && *cfg.History.Cap <= 0 {
		return fmt.Errorf("history.cap must be positive")
	}
	if _, err := parseDuration("articles.stale-after", cfg.Articles.StaleAfter); err != nil {
		return err
	}
	if _, err := parseDuration("articles.timeout", cfg.Articles.Timeout); err != nil {
		return err
	}
	return nil
}

// StaleAfterDuration returns the configured cache lifetime, or zero when unset.
func (c ArticlesConfig) StaleAfterDuration() time.Duration {
	d, _ := parseDuration("articles.stale-after", c.StaleAfter)
	return d
}

// TimeoutDuration returns the configured request timeout, or zero when unset.
func (c ArticlesConfig) TimeoutDuration() time.Duration {
	d, _ := parseDuration("articles.timeout", c.Timeout)
	return d
}

func parseDuration(name string, v *string) (time.Duration, error) {
	if v == nil || *v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return d, nil
}
