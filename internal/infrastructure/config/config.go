package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging LogConfig
	Layout  LayoutConfig
	Metrics MetricsConfig
	Render  RenderConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// LayoutConfig holds defaults applied to split layouts built from blueprints.
type LayoutConfig struct {
	Orientation   string   `envconfig:"LAYOUT_ORIENTATION" default:"horizontal"`
	ThemeVariants []string `envconfig:"LAYOUT_THEME_VARIANTS"`
}

// MetricsConfig holds Prometheus configuration.
type MetricsConfig struct {
	Enabled   bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"splitlayout"`
}

// RenderConfig holds settings for the blueprint preview command.
type RenderConfig struct {
	Pattern string `envconfig:"BLUEPRINT_PATTERN" default:"**/*.bp.json"`
	Changes bool   `envconfig:"RENDER_CHANGES" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Layout: LayoutConfig{
			Orientation: "horizontal",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "splitlayout",
		},
		Render: RenderConfig{
			Pattern: "**/*.bp.json",
		},
	}
}
