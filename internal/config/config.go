package config

import (
	"github.com/caarlos0/env/v11"

	"ad-dashboard/internal/config/configs"
)

// Config aggregates all configuration sections for the dashboard. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are parsed with their envPrefix. Use Load to construct a
// Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Report selects and locates the report source (REPORT_ prefix).
	Report configs.Report `envPrefix:"REPORT_"`

	// Psql configures the postgres report source (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
