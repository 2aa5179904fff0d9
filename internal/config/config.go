package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultIntervalMs = 500
	DefaultTheme      = "cyberpunk"
	DefaultLogLevel   = "info"
	DefaultCategory   = "Sorting"
	DefaultAlgorithm  = "Bubble"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	IntervalMs       int    `yaml:"interval_ms"`
	Theme            string `yaml:"theme"`
	LogLevel         string `yaml:"log_level"`
	LogFile          string `yaml:"log_file,omitempty"`
	DefaultCategory  string `yaml:"default_category"`
	DefaultAlgorithm string `yaml:"default_algorithm"`
}

func DefaultConfig() *Config {
	return &Config{
		IntervalMs:       DefaultIntervalMs,
		Theme:            DefaultTheme,
		LogLevel:         DefaultLogLevel,
		DefaultCategory:  DefaultCategory,
		DefaultAlgorithm: DefaultAlgorithm,
	}
}

// Load reads a YAML file on top of DefaultConfig, so a partial file only
// overrides the keys it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.IntervalMs <= 0 {
		return fmt.Errorf("%w: interval_ms must be positive, got %d", ErrInvalidConfig, c.IntervalMs)
	}
	return nil
}
