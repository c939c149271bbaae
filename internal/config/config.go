package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port        int    `envconfig:"PORT" default:"5000"`
	Environment string `envconfig:"ENV" default:"development"`

	// Database
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// Storage for captured reference photos
	PhotoDir string `envconfig:"PHOTO_DIR" default:"data/known_faces"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DashboardConfig configures the dashboard session agent.
type DashboardConfig struct {
	APIBaseURL   string        `envconfig:"API_BASE_URL" default:"http://localhost:5000/api"`
	Environment  string        `envconfig:"ENV" default:"development"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"30s"`
	FetchLimit   int           `envconfig:"FETCH_LIMIT" default:"10"`
	ExportDir    string        `envconfig:"EXPORT_DIR" default:"exports"`
	MetricsAddr  string        `envconfig:"METRICS_ADDR" default:""`
}

func LoadDashboard() (*DashboardConfig, error) {
	var cfg DashboardConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load dashboard config: %w", err)
	}
	return &cfg, nil
}
