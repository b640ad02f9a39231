package skelwatch

import (
	"github.com/hazyhaar/skelwatch/internal/config"
)

// Config is the top-level skelwatch configuration. Re-exported from internal.
type Config = config.Config

// BrowserConfig controls Chrome lifecycle.
type BrowserConfig = config.Browser

// OverlayConfig controls the interactive session.
type OverlayConfig = config.Overlay

// HistoryConfig configures the capture history database.
type HistoryConfig = config.History

// SinkConfig defines an output backend.
type SinkConfig = config.Sink

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	return config.LoadFile(path)
}
