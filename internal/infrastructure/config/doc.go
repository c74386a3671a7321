// Package config provides environment-driven configuration.
//
// Configuration is loaded from environment variables with defaults.
// Command-line flags of cmd/render override the loaded values.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Layout: Defaults for split layouts built from blueprints
//   - Metrics: Prometheus namespace and toggle
//   - Render: Blueprint glob and change log output of cmd/render
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	logger, err := logging.New(logging.Config{Level: cfg.Logging.Level})
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - LAYOUT_ORIENTATION, LAYOUT_THEME_VARIANTS
//   - METRICS_ENABLED, METRICS_NAMESPACE
//   - BLUEPRINT_PATTERN, RENDER_CHANGES
package config
