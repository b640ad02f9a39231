// Package config handles skelwatch configuration from YAML files.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level skelwatch configuration.
type Config struct {
	Browser Browser `yaml:"browser"`
	Overlay Overlay `yaml:"overlay"`
	History History `yaml:"history"`
	Sinks   []Sink  `yaml:"sinks"`
}

// Browser controls Chrome lifecycle.
type Browser struct {
	// Remote is the WebSocket URL of an external Chrome instance.
	// Empty = launch a local Chrome via launcher.
	Remote string `yaml:"remote"`
	// Headless runs Chrome without a window. Interactive overlay use wants
	// headful; one-shot capture defaults to headless.
	Headless bool `yaml:"headless"`
}

// Overlay controls the in-page session.
type Overlay struct {
	// TriggerKey is the key that captures the hovered element. Default: "s".
	TriggerKey string `yaml:"trigger_key"`
	// IndicatorTTL is how long the "copied" label stays up. Default: 2s.
	IndicatorTTL time.Duration `yaml:"indicator_ttl"`
	// CoalesceWindow batches pointer moves, applying only the latest per
	// window. 0 (the default) handles every move, matching the original
	// unthrottled behaviour; setting it is a deliberate deviation.
	CoalesceWindow time.Duration `yaml:"coalesce_window"`
}

// History configures the capture history database.
type History struct {
	// Path of the SQLite file. Empty disables history.
	Path string `yaml:"path"`
}

// Sink defines an output backend for captures.
type Sink struct {
	Type string `yaml:"type"` // stdout | webhook | sqlite
	URL  string `yaml:"url"`  // for webhook
	Path string `yaml:"path"` // for sqlite
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills zero values with the documented defaults.
func (c *Config) ApplyDefaults() {
	if c.Overlay.TriggerKey == "" {
		c.Overlay.TriggerKey = "s"
	}
	if c.Overlay.IndicatorTTL <= 0 {
		c.Overlay.IndicatorTTL = 2 * time.Second
	}
}
