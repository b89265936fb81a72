// Package config provides configuration management for stm32bridge.
//
// Config file locations (priority order):
//  1. $STM32BRIDGE_CONFIG
//  2. ./stm32bridge.yaml
//  3. ~/.config/stm32bridge/config.yaml
//  4. /etc/stm32bridge/config.yaml
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the persistent settings. Everything has a working default:
// a missing config file is not an error.
type Config struct {
	Version int         `yaml:"version"`
	Fetch   FetchConfig `yaml:"fetch"`
	Cache   CacheConfig `yaml:"cache"`
	Board   BoardConfig `yaml:"board"`
}

// FetchConfig controls page retrieval
type FetchConfig struct {
	// TimeoutSeconds bounds a single page fetch
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// UserAgent sent with fetches; vendors block empty agents
	UserAgent string `yaml:"user_agent"`
	// PageCacheSize is the in-memory fetched-document cache capacity
	PageCacheSize int `yaml:"page_cache_size"`
}

// Timeout returns the fetch timeout as a duration
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// CacheConfig controls the persistent specification cache
type CacheConfig struct {
	// Path of the SQLite database file
	Path string `yaml:"path"`
	// Enabled toggles the cache; extraction works without it
	Enabled bool `yaml:"enabled"`
}

// BoardConfig holds board generation defaults
type BoardConfig struct {
	// HSEValueHz is the assumed external oscillator frequency
	HSEValueHz int64 `yaml:"hse_value_hz"`
	// Format is the default export format (json, yaml or ini)
	Format string `yaml:"format"`
	// OutputDir is where generated board files land
	OutputDir string `yaml:"output_dir"`
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Fetch: FetchConfig{
			TimeoutSeconds: 45,
			UserAgent:      "stm32bridge/1.0",
			PageCacheSize:  32,
		},
		Cache: CacheConfig{
			Path:    "./stm32bridge.db",
			Enabled: true,
		},
		Board: BoardConfig{
			HSEValueHz: 8_000_000,
			Format:     "json",
			OutputDir:  "boards",
		},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		c.Fetch.TimeoutSeconds = 45
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "stm32bridge/1.0"
	}
	if c.Fetch.PageCacheSize < 0 {
		c.Fetch.PageCacheSize = 0
	}
	if c.Cache.Path == "" {
		c.Cache.Path = "./stm32bridge.db"
	}
	if c.Board.HSEValueHz <= 0 {
		c.Board.HSEValueHz = 8_000_000
	}
	if c.Board.Format == "" {
		c.Board.Format = "json"
	}
	if c.Board.OutputDir == "" {
		c.Board.OutputDir = "boards"
	}
}
