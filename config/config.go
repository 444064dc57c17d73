// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ortelius/pdvd-sbom/internal/licenses"
	"github.com/ortelius/pdvd-sbom/model"
	"github.com/ortelius/pdvd-sbom/util"
	"gopkg.in/yaml.v2"
)

// Config is the root configuration document.
type Config struct {
	Server     ServerConfig           `yaml:"server"`
	Pagination model.PaginationConfig `yaml:"pagination"`
	Sort       SortConfig             `yaml:"sort"`
	Metadata   MetadataConfig         `yaml:"metadata"`
	Stats      StatsConfig            `yaml:"stats"`
	Licenses   licenses.Policy        `yaml:"licenses"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port        string   `yaml:"port"`
	BodyLimitMB int      `yaml:"body_limit_mb"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// SortConfig tunes the sort engine.
type SortConfig struct {
	LegacyStringDirection bool `yaml:"legacy_string_direction"`
}

// MetadataConfig configures the package metadata lookups.
type MetadataConfig struct {
	Enabled       bool          `yaml:"enabled"`
	BaseURL       string        `yaml:"base_url"`
	Timeout       time.Duration `yaml:"timeout"`
	CacheSize     int           `yaml:"cache_size"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
	MaxConcurrent int           `yaml:"max_concurrent"`
}

// StatsConfig bounds the multi-project fan-out.
type StatsConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:        "8080",
			BodyLimitMB: 50,
			CORSOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
		Pagination: model.PaginationConfig{
			MaxEntriesPerPage:     100,
			DefaultEntriesPerPage: 20,
		},
		Metadata: MetadataConfig{
			Enabled:       true,
			BaseURL:       "https://api.deps.dev/v3",
			Timeout:       10 * time.Second,
			CacheSize:     4096,
			CacheTTL:      time.Hour,
			MaxConcurrent: 10,
		},
		Stats: StatsConfig{
			MaxConcurrent: 8,
		},
		Licenses: licenses.DefaultPolicy(),
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := Parse(content, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Parse decodes YAML content into cfg, keeping the values the document leaves unset.
func Parse(content []byte, cfg *Config) error {
	return yaml.Unmarshal(content, cfg)
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = util.GetEnvDefault("PORT", cfg.Server.Port)
	cfg.Pagination.MaxEntriesPerPage = util.GetEnvInt("SBOM_MAX_ENTRIES_PER_PAGE", cfg.Pagination.MaxEntriesPerPage)
	cfg.Pagination.DefaultEntriesPerPage = util.GetEnvInt("SBOM_DEFAULT_ENTRIES_PER_PAGE", cfg.Pagination.DefaultEntriesPerPage)
	cfg.Metadata.BaseURL = util.GetEnvDefault("DEPSDEV_BASE_URL", cfg.Metadata.BaseURL)
	if util.GetEnvDefault("DEPSDEV_ENABLED", "") == "false" {
		cfg.Metadata.Enabled = false
	}
	if util.GetEnvDefault("SBOM_LEGACY_STRING_SORT", "") == "true" {
		cfg.Sort.LegacyStringDirection = true
	}
}
