// Package config loads the floormap tool configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/floormap/chaikin"
	"github.com/katalvlaran/floormap/contour"
	"github.com/katalvlaran/floormap/pipeline"
	"github.com/katalvlaran/floormap/rdp"
)

// Environment overrides.
const (
	EnvStoreDSN = "FLOORMAP_STORE_DSN"
	EnvMapsDir  = "FLOORMAP_MAPS_DIR"
	EnvLogLevel = "FLOORMAP_LOG_LEVEL"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all floormap configuration.
type Config struct {
	// Contour pipeline tunables
	Contours ContoursConfig `yaml:"contours"`

	// Map catalogue
	Store StoreConfig `yaml:"store"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ContoursConfig configures the contour pipeline.
type ContoursConfig struct {
	Epsilon    float64 `yaml:"epsilon"`
	Iterations int     `yaml:"iterations"`
	MaxSteps   int     `yaml:"max_steps"`
}

// StoreConfig configures where maps are kept.
type StoreConfig struct {
	DSN     string `yaml:"dsn"`      // SQLite file or ":memory:"
	MapsDir string `yaml:"maps_dir"` // directory of JSON documents
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Contours: ContoursConfig{
			Epsilon:    rdp.DefaultEpsilon,
			Iterations: chaikin.DefaultIterations,
			MaxSteps:   contour.DefaultMaxSteps,
		},
		Store: StoreConfig{
			DSN:     "floormap.db",
			MapsDir: "maps",
		},
		Logging: LoggingConfig{
			Level: "info",
			JSON:  true,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dsn := os.Getenv(EnvStoreDSN); dsn != "" {
		c.Store.DSN = dsn
	}
	if dir := os.Getenv(EnvMapsDir); dir != "" {
		c.Store.MapsDir = dir
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Logging.Level = lvl
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Contours.Epsilon < 0 || math.IsNaN(c.Contours.Epsilon):
		return fmt.Errorf("%w: contours.epsilon = %v", ErrInvalid, c.Contours.Epsilon)
	case c.Contours.Iterations < 0:
		return fmt.Errorf("%w: contours.iterations = %d", ErrInvalid, c.Contours.Iterations)
	case c.Contours.MaxSteps <= 0:
		return fmt.Errorf("%w: contours.max_steps = %d", ErrInvalid, c.Contours.MaxSteps)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level = %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// PipelineOptions converts the contour section into pipeline options.
func (c *Config) PipelineOptions() []pipeline.Option {
	return []pipeline.Option{
		pipeline.WithEpsilon(c.Contours.Epsilon),
		pipeline.WithIterations(c.Contours.Iterations),
		pipeline.WithMaxSteps(c.Contours.MaxSteps),
	}
}
