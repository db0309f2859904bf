package config

import "pmdd/internal/logging"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`           // debug, info, warn, error
	File       string          `yaml:"file" json:"file,omitempty"`             // JSON lines log file
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode,omitempty"` // Master toggle - false = no logging
	Categories map[string]bool `yaml:"categories,omitempty" json:"categories,omitempty"`
}

// Options converts the section into the form logging.Initialize takes.
func (c *LoggingConfig) Options() logging.Config {
	return logging.Config{
		DebugMode:  c.DebugMode,
		Level:      c.Level,
		File:       c.File,
		Categories: c.Categories,
	}
}
