package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration loaded from YAML.
type Config struct {
	Port          int    `yaml:"port"`
	MetricsPort   int    `yaml:"metrics_port"`
	LogLevel      string `yaml:"log_level"`
	StartingCoins int    `yaml:"starting_coins"`
	Profile       struct {
		Name        string `yaml:"name"`
		PartnerName string `yaml:"partner_name"`
		StartDate   string `yaml:"start_date"`
	} `yaml:"profile"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{
		Port:          8080,
		MetricsPort:   9090,
		LogLevel:      "info",
		StartingCoins: 120,
	}
	cfg.Profile.Name = "Alex"
	cfg.Profile.PartnerName = "Sam"
	return cfg
}

// Load reads and validates the configuration file at path. Fields left out
// of the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads the file at path, falling back to defaults when the
// file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// StartDate parses the configured relationship start date, defaulting to
// process start when unset.
func (c *Config) StartDate() time.Time {
	if c.Profile.StartDate == "" {
		return time.Now()
	}
	t, err := time.Parse("2006-01-02", c.Profile.StartDate)
	if err != nil {
		return time.Now()
	}
	return t
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.MetricsPort <= 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("metrics port %d out of range", c.MetricsPort)
	}
	if c.Port == c.MetricsPort {
		return fmt.Errorf("port and metrics port both %d", c.Port)
	}
	if c.StartingCoins < 0 {
		return fmt.Errorf("starting coins %d negative", c.StartingCoins)
	}
	return nil
}
