package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/phanxgames/raytracer"
)

// Config holds the defaults of the command line tool. Every field can be
// overridden from the environment with the RAYTRACER_ prefix, and again by
// command line flags.
type Config struct {
	Width    int    `envconfig:"WIDTH" default:"1000"`
	Height   int    `envconfig:"HEIGHT" default:"1000"`
	Ext      string `envconfig:"EXT" default:"ppm"`
	Out      string `envconfig:"OUT" default:"out"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the RAYTRACER_* environment variables over the defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("raytracer", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects dimensions that cannot hold a pixel and extensions the
// exporter does not know.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if _, err := raytracer.ParseFormat(c.Ext); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}
