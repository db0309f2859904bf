package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"pmdd/internal/dosing"
)

// ErrInvalidCatalog is returned (wrapped) when the configured fertilizer
// catalog cannot be used for dosing.
var ErrInvalidCatalog = errors.New("invalid fertilizer catalog")

var validate = validator.New()

// Config holds all pmdd configuration.
type Config struct {
	// Fertilizers available to the calculator, in lookup order.
	Catalog dosing.Catalog `yaml:"catalog"`

	UI UIConfig `yaml:"ui"`

	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog: dosing.DefaultCatalog(),
		UI:      DefaultUIConfig(),
		Logging: LoggingConfig{
			Level:     "info",
			File:      filepath.Join(DefaultDir(), "logs", "pmdd.log"),
			DebugMode: false,
		},
	}
}

// DefaultDir returns ~/.pmdd, or .pmdd when the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pmdd"
	}
	return filepath.Join(home, ".pmdd")
}

// DefaultPath returns $PMDD_CONFIG, falling back to ~/.pmdd/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("PMDD_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load loads configuration from a YAML file.
// A missing file is not an error: defaults are used.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	cfg.Catalog = cfg.Catalog.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// envOverrides are the PMDD_* variables that win over the config file.
// Empty values count as unset.
type envOverrides struct {
	Theme    string `envconfig:"PMDD_THEME"`
	LogLevel string `envconfig:"PMDD_LOG_LEVEL"`
	LogFile  string `envconfig:"PMDD_LOG_FILE"`
	Debug    string `envconfig:"PMDD_DEBUG"`
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	if env.Theme != "" {
		c.UI.Theme = env.Theme
	}
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.LogFile != "" {
		c.Logging.File = env.LogFile
	}
	if env.Debug != "" {
		if debug, err := strconv.ParseBool(env.Debug); err == nil {
			c.Logging.DebugMode = debug
		}
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Catalog.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	if err := validate.Var(c.UI.Theme, "oneof="+strings.Join(ValidThemes, " ")); err != nil {
		return fmt.Errorf("invalid ui.theme: %q (valid: %v)", c.UI.Theme, ValidThemes)
	}

	return nil
}
