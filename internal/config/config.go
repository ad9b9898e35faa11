package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Chart struct {
		LabelLayout        string         `yaml:"label_layout"`
		Timezone           string         `yaml:"timezone"`
		PlaceholderSpanStr string         `yaml:"placeholder_span"`
		Location           *time.Location `yaml:"-"`
		PlaceholderSpan    time.Duration  `yaml:"-"`
	} `yaml:"chart"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`

	// SeedDemo preloads a sample auction on startup
	SeedDemo bool `yaml:"seed_demo"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 8080
	cfg.Chart.LabelLayout = "15:04:05"
	cfg.Chart.Timezone = "UTC"
	cfg.Chart.PlaceholderSpanStr = "1m"
	cfg.Logging.Level = "info"
	return &cfg
}

// Load reads the YAML file at path on top of the defaults, applies
// environment overrides and resolves derived fields. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CHART_LABEL_LAYOUT"); v != "" {
		cfg.Chart.LabelLayout = v
	}
	if v := os.Getenv("CHART_TIMEZONE"); v != "" {
		cfg.Chart.Timezone = v
	}
	if v := os.Getenv("CHART_PLACEHOLDER_SPAN"); v != "" {
		cfg.Chart.PlaceholderSpanStr = v
	}
}

func (c *Config) resolve() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Chart.LabelLayout == "" {
		return errors.New("chart label layout must not be empty")
	}

	loc, err := time.LoadLocation(c.Chart.Timezone)
	if err != nil {
		return fmt.Errorf("invalid chart timezone %q: %w", c.Chart.Timezone, err)
	}
	c.Chart.Location = loc

	span, err := time.ParseDuration(c.Chart.PlaceholderSpanStr)
	if err != nil {
		return fmt.Errorf("invalid placeholder span %q: %w", c.Chart.PlaceholderSpanStr, err)
	}
	if span <= 0 {
		return fmt.Errorf("placeholder span must be positive, got %s", span)
	}
	c.Chart.PlaceholderSpan = span

	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
