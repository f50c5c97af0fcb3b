// Package config loads and validates the server configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the top-level server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Data     DataConfig     `yaml:"data"`
	Feed     FeedConfig     `yaml:"feed"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Port     int    `yaml:"port" validate:"min=1,max=65535"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// DataConfig points at the transaction records and the category table.
type DataConfig struct {
	CSVPath      string `yaml:"csv_path"`
	CategoryFile string `yaml:"category_file"`
}

// FeedConfig configures the optional live transaction feed.
type FeedConfig struct {
	Enabled   bool   `yaml:"enabled"`
	BrokerURL string `yaml:"broker_url" validate:"required_if=Enabled true"`
}

// PostgresConfig configures the optional database ingestion source. When URL
// is empty the source is disabled.
type PostgresConfig struct {
	URL   string `yaml:"url"`
	Query string `yaml:"query"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:     8080,
			LogLevel: "info",
		},
	}
}

// Load reads a YAML config file, fills unset fields with defaults, and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = Default().Server.Port
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = Default().Server.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration's field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
