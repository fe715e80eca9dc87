// Package config loads purekata settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig classifies every validation and decoding failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the CLI and HTTP surface need.
type Config struct {
	Log   Log
	Serve Serve
}

// Log configures the stderr logger.
type Log struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

// Serve configures the HTTP surface.
type Serve struct {
	Addr         string
	Timeout      time.Duration
	MaxBodyBytes int64
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Serve: Serve{
			Addr:         ":8080",
			Timeout:      5 * time.Second,
			MaxBodyBytes: 64 << 10,
		},
	}
}

// Load reads path on top of Default. An empty path means defaults only.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, fmt.Errorf("config %s: %w: %v", path, ErrInvalidConfig, err)
	}
	if err := y.apply(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q: must be debug, info, warn or error", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q: must be text or json", ErrInvalidConfig, c.Log.Format)
	}
	if c.Serve.Addr == "" {
		return fmt.Errorf("%w: serve addr is empty", ErrInvalidConfig)
	}
	if c.Serve.Timeout <= 0 {
		return fmt.Errorf("%w: serve timeout must be positive", ErrInvalidConfig)
	}
	if c.Serve.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: serve max_body_bytes must be positive", ErrInvalidConfig)
	}
	return nil
}

type yamlConfig struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Serve struct {
		Addr         string `yaml:"addr"`
		Timeout      string `yaml:"timeout"`
		MaxBodyBytes *int64 `yaml:"max_body_bytes"`
	} `yaml:"serve"`
}

func (y yamlConfig) apply(cfg *Config) error {
	if y.Log.Level != "" {
		cfg.Log.Level = y.Log.Level
	}
	if y.Log.Format != "" {
		cfg.Log.Format = y.Log.Format
	}
	if y.Serve.Addr != "" {
		cfg.Serve.Addr = y.Serve.Addr
	}
	if y.Serve.Timeout != "" {
		d, err := time.ParseDuration(y.Serve.Timeout)
		if err != nil {
			return fmt.Errorf("%w: serve timeout: %v", ErrInvalidConfig, err)
		}
		cfg.Serve.Timeout = d
	}
	if y.Serve.MaxBodyBytes != nil {
		cfg.Serve.MaxBodyBytes = *y.Serve.MaxBodyBytes
	}
	return nil
}
