package state

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/steviee/go-gitmoji/internal/gitmoji"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultGitmojiURL is the upstream gitmoji catalog.
	DefaultGitmojiURL = gitmoji.DefaultURL

	// DefaultMaxAgeDays is the number of calendar days a cached catalog stays fresh.
	DefaultMaxAgeDays = 7

	// DefaultFetchTimeout bounds a single catalog download.
	DefaultFetchTimeout = gitmoji.DefaultTimeout
)

// Config represents the user configuration for go-gitmoji.
type Config struct {
	Main      MainConfig      `yaml:"main" json:"main"`
	Cache     CacheConfig     `yaml:"cache" json:"cache"`
	Catalog   CatalogConfig   `yaml:"catalog" json:"catalog"`
	Clipboard ClipboardConfig `yaml:"clipboard" json:"clipboard"`
	History   HistoryConfig   `yaml:"history" json:"history"`
}

// MainConfig holds the picker behaviour settings.
type MainConfig struct {
	DefaultCopyAction string `yaml:"default_copy_action" json:"default_copy_action"`
	MatchMode         string `yaml:"match_mode" json:"match_mode"`
	Notify            bool   `yaml:"notify" json:"notify"`
}

// CacheConfig holds the catalog cache settings.
type CacheConfig struct {
	URL        string        `yaml:"url" json:"url"`
	MaxAgeDays int           `yaml:"max_age_days" json:"max_age_days"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
}

// CatalogConfig holds catalog building settings.
type CatalogConfig struct {
	RequireEntity bool `yaml:"require_entity" json:"require_entity"`
}

// ClipboardConfig selects the clipboard backend.
type ClipboardConfig struct {
	Backend string `yaml:"backend" json:"backend"`
}

// HistoryConfig holds copy history settings.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Path    string `yaml:"path" json:"path"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Main: MainConfig{
			DefaultCopyAction: "copy_code",
			MatchMode:         "substring",
			Notify:            false,
		},
		Cache: CacheConfig{
			URL:        DefaultGitmojiURL,
			MaxAgeDays: DefaultMaxAgeDays,
			Timeout:    DefaultFetchTimeout,
		},
		Catalog: CatalogConfig{
			RequireEntity: false,
		},
		Clipboard: ClipboardConfig{
			Backend: "auto",
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "",
		},
	}
}

// LoadConfig loads the configuration from the config file.
// If the file doesn't exist, it creates a new one with defaults.
// If the file is corrupted, it moves it aside and creates a fresh one.
func LoadConfig(ctx context.Context) (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(ctx, cfg); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset keys keep their defaults.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		backupPath := configPath + ".corrupted"
		if backupErr := os.Rename(configPath, backupPath); backupErr != nil {
			return nil, fmt.Errorf("config file is corrupted and failed to create backup: %w (original error: %v)", backupErr, err)
		}

		fresh := DefaultConfig()
		if saveErr := SaveConfig(ctx, fresh); saveErr != nil {
			return nil, fmt.Errorf("config file was corrupted (backed up to %s), failed to save fresh config: %w (original error: %v)", backupPath, saveErr, err)
		}
		return fresh, nil
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveConfig validates cfg and writes it to the config file atomically.
func SaveConfig(ctx context.Context, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := AtomicWrite(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ValidateConfig validates the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := ValidateCopyAction(cfg.Main.DefaultCopyAction); err != nil {
		return fmt.Errorf("invalid default copy action: %w", err)
	}

	if err := ValidateMatchMode(cfg.Main.MatchMode); err != nil {
		return fmt.Errorf("invalid match mode: %w", err)
	}

	if err := ValidateURL(cfg.Cache.URL); err != nil {
		return fmt.Errorf("invalid cache url: %w", err)
	}

	if cfg.Cache.MaxAgeDays < 1 {
		return fmt.Errorf("cache max age must be >= 1 day, got %d", cfg.Cache.MaxAgeDays)
	}

	if cfg.Cache.Timeout < time.Second {
		return fmt.Errorf("cache timeout must be >= 1s, got %v", cfg.Cache.Timeout)
	}

	if err := ValidateClipboardBackend(cfg.Clipboard.Backend); err != nil {
		return fmt.Errorf("invalid clipboard backend: %w", err)
	}

	return nil
}
