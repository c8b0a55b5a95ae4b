// Package config provides YAML-based configuration for the kaleido daemon.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/labstack/gommon/bytes"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kaleido/internal/logx"
	"github.com/katalvlaran/kaleido/schema"
	"github.com/katalvlaran/kaleido/tiling"
)

// ErrInvalidConfig is returned by Validate and wraps every rejected field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration document.
type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Lattice  LatticeConfig   `yaml:"lattice"`
	Spinner  SpinnerConfig   `yaml:"spinner"`
	Generate GenerateConfig  `yaml:"generate"`
	Viewport tiling.Viewport `yaml:"viewport"`
	Log      LogConfig       `yaml:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr               string `yaml:"addr"`
	BodyLimit          string `yaml:"body_limit"`
	RequestLogging     bool   `yaml:"request_logging"`
	ReadTimeoutSeconds int    `yaml:"read_timeout_seconds"`
}

// ReadTimeout returns the configured timeout as a duration.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// LatticeConfig bounds lattice requests.
type LatticeConfig struct {
	// Depth is used when a request names none.
	Depth int `yaml:"depth"`
	// MaxDepth caps requested depths.
	MaxDepth int `yaml:"max_depth"`
}

// SpinnerConfig contains generation defaults.
type SpinnerConfig struct {
	RadiusRatio float64 `yaml:"radius_ratio"`
}

// GenerateConfig bounds scene generation requests.
type GenerateConfig struct {
	// MaxObjects caps the total object count of one generated scene.
	MaxObjects int `yaml:"max_objects"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:               ":8080",
			BodyLimit:          "1M",
			RequestLogging:     true,
			ReadTimeoutSeconds: 30,
		},
		Lattice: LatticeConfig{
			Depth:    7,
			MaxDepth: 12,
		},
		Spinner:  SpinnerConfig{RadiusRatio: schema.DefaultSpinnerRadiusRatio},
		Generate: GenerateConfig{MaxObjects: 10000},
		Viewport: tiling.DefaultViewport(),
		Log: LogConfig{
			Level:  "info",
			Format: logx.FormatText,
		},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to open config file: %w", err)
		default:
			defer f.Close()
			if err := cfg.decode(f); err != nil {
				return nil, err
			}
		}
	}
	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads a YAML document from r over the defaults and validates it.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// applyEnvironmentOverrides lets KALEIDO_ADDR, KALEIDO_LOG_LEVEL and
// KALEIDO_LATTICE_DEPTH override file values. A malformed value is an
// ErrInvalidConfig.
func (c *Config) applyEnvironmentOverrides() error {
	if addr := os.Getenv("KALEIDO_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if lvl := os.Getenv("KALEIDO_LOG_LEVEL"); lvl != "" {
		c.Log.Level = lvl
	}
	if d := os.Getenv("KALEIDO_LATTICE_DEPTH"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			return fmt.Errorf("%w: KALEIDO_LATTICE_DEPTH %q: %v", ErrInvalidConfig, d, err)
		}
		c.Lattice.Depth = n
	}
	return nil
}

// Validate checks every field and returns the first violation wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if _, err := bytes.Parse(c.Server.BodyLimit); err != nil {
		return fmt.Errorf("%w: server.body_limit %q: %v", ErrInvalidConfig, c.Server.BodyLimit, err)
	}
	if c.Server.ReadTimeoutSeconds < 0 {
		return fmt.Errorf("%w: server.read_timeout_seconds %d", ErrInvalidConfig, c.Server.ReadTimeoutSeconds)
	}
	if c.Lattice.Depth < 0 || c.Lattice.MaxDepth < 0 {
		return fmt.Errorf("%w: negative lattice depth", ErrInvalidConfig)
	}
	if c.Lattice.Depth > c.Lattice.MaxDepth {
		return fmt.Errorf("%w: lattice.depth %d exceeds max_depth %d",
			ErrInvalidConfig, c.Lattice.Depth, c.Lattice.MaxDepth)
	}
	if !(c.Spinner.RadiusRatio > 0) {
		return fmt.Errorf("%w: spinner.radius_ratio %v", ErrInvalidConfig, c.Spinner.RadiusRatio)
	}
	if c.Generate.MaxObjects <= 0 {
		return fmt.Errorf("%w: generate.max_objects %d", ErrInvalidConfig, c.Generate.MaxObjects)
	}
	if err := c.Viewport.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := logx.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !logx.ValidFormat(c.Log.Format) {
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
