// Package config loads the CLI configuration from the environment.
package config

import (
	"fmt"
	"io"
	"strings"

	"go-simpler.org/env"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/substrate-codec/ss58"
)

// C is the environment configuration of the substrate CLI. Command line
// flags override these values.
type C struct {
	LogLevel    string `env:"SUBSTRATE_LOG_LEVEL" default:"warn" usage:"log level: debug info warn error"`
	LogFormat   string `env:"SUBSTRATE_LOG_FORMAT" default:"console" usage:"log encoding: console or json"`
	SS58Version int    `env:"SUBSTRATE_SS58_VERSION" default:"42" usage:"network version used to render account identifiers"`
}

// Env is an in-memory environment, for loading configuration from a source
// other than the process environment.
type Env map[string]string

// LookupEnv returns the value of key and whether it was set.
func (e Env) LookupEnv(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Load loads and validates the configuration from src, or from the process
// environment when src is nil.
func Load(src env.Source) (*C, error) {
	c, err := Read(src)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Read parses src like Load but leaves validation to the caller, so that
// command line overrides can replace invalid environment values first.
func Read(src env.Source) (*C, error) {
	c := &C{}
	var opts *env.Options
	if src != nil {
		opts = &env.Options{Source: src}
	}
	if err := env.Load(c, opts); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	return c, nil
}

// Override replaces the logging settings with the non-empty arguments.
func (c *C) Override(level, format string) {
	if level != "" {
		c.LogLevel = level
	}
	if format != "" {
		c.LogFormat = format
	}
}

// Validate checks field values that the environment parser cannot.
func (c *C) Validate() error {
	if _, err := ss58.ValidateVersion(c.SS58Version); err != nil {
		return fmt.Errorf("SUBSTRATE_SS58_VERSION: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("SUBSTRATE_LOG_LEVEL: %w", err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("SUBSTRATE_LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	return nil
}

// Level parses LogLevel.
func (c *C) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// Usage prints the environment variables and their defaults to w.
func Usage(w io.Writer) {
	env.Usage(&C{}, w, nil)
}
