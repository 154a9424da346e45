// Package config loads pol2cart's configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/polar"
)

var (
	ErrInvalidPrecision = errors.New("precision must not be negative")
	ErrInvalidMode      = errors.New("invalid output mode")
	ErrInvalidUnit      = errors.New("invalid angle unit")
	ErrInvalidLogging   = errors.New("invalid logging configuration")
)

// Config holds all pol2cart configuration.
type Config struct {
	// Decimal places of output.
	Precision int `yaml:"precision"`

	// Output layout for one-shot conversions: plain or nice.
	Mode string `yaml:"mode"`

	// Unit forced for every angle, overriding any suffix. Empty means
	// degrees unless the angle carries a radians suffix.
	Unit string `yaml:"unit"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Precision: polar.DefaultPrecision,
		Mode:      "plain",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultPath returns the default location of the config file,
// $XDG_CONFIG_HOME/pol2cart/config.yaml or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pol2cart", "config.yaml")
}

// Load loads configuration from a YAML file and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Use defaults.
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("POL2CART_PRECISION"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("POL2CART_PRECISION=%q: %w", v, ErrInvalidPrecision)
		}
		c.Precision = p
	}
	if v := os.Getenv("POL2CART_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("POL2CART_UNIT"); v != "" {
		c.Unit = v
	}
	if v := os.Getenv("POL2CART_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("POL2CART_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, c.Precision)
	}
	if _, err := c.OutputMode(); err != nil {
		return err
	}
	if _, _, err := c.ForcedUnit(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: level %q", ErrInvalidLogging, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidLogging, c.Logging.Format)
	}
	return nil
}

// OutputMode returns the configured one-shot output mode. Interactive
// output is reserved for interactive sessions.
func (c *Config) OutputMode() (polar.Mode, error) {
	m, err := polar.ParseMode(c.Mode)
	if err != nil || m == polar.Interactive {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	return m, nil
}

// Preferences returns the formatting preferences described by c.
func (c *Config) Preferences() (polar.Preferences, error) {
	m, err := c.OutputMode()
	if err != nil {
		return polar.Preferences{}, err
	}
	return polar.Preferences{Precision: c.Precision, Mode: m}, nil
}

// ForcedUnit returns the unit forced by the configuration, if any.
func (c *Config) ForcedUnit() (unit polar.AngleUnit, forced bool, err error) {
	switch strings.ToLower(c.Unit) {
	case "":
		return polar.Degrees, false, nil
	case "degrees", "deg", "d":
		return polar.Degrees, true, nil
	case "radians", "rad", "c":
		return polar.Radians, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidUnit, c.Unit)
	}
}
