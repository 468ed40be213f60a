// Package config provides configuration for the san-codec tool.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/sanmove-go/internal/errors"
)

// OutputFormat selects how parsed moves are written.
type OutputFormat int

const (
	SAN  OutputFormat = iota // Canonical SAN, one game line per input
	JSON                     // One JSON object per move
)

// String returns the flag spelling of a format.
func (f OutputFormat) String() string {
	switch f {
	case SAN:
		return "san"
	case JSON:
		return "json"
	}
	return "unknown"
}

// ParseOutputFormat decodes a -W flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "san":
		return SAN, nil
	case "json":
		return JSON, nil
	}
	return SAN, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Sub-configurations
	Input  *InputConfig
	Output *OutputConfig
	Server *ServerConfig

	// Number of parser workers. 1 parses sequentially.
	Workers int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// InputConfig holds settings for reading movetext.
type InputConfig struct {
	// KeepVariations parses moves inside RAVs as well as the main line.
	KeepVariations bool

	// Strict stops at the first token that fails to parse.
	Strict bool

	// RoundTrip reports tokens whose canonical text differs from the input.
	RoundTrip bool
}

// ServerConfig holds settings for the HTTP codec service.
type ServerConfig struct {
	// Addr is the listen address; empty disables the service.
	Addr string

	// MaxBatch caps the number of moves accepted by one batch request.
	MaxBatch int

	// AllowOrigins is the CORS origin list, comma separated.
	AllowOrigins string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Input:      &InputConfig{},
		Output:     NewOutputConfig(),
		Server:     &ServerConfig{MaxBatch: 1024, AllowOrigins: "*"},
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// DefaultWorkers returns the worker count used for "-workers 0".
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity (%d) must be 0, 1 or 2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Server.Addr != "" && c.Server.MaxBatch < 1 {
		return fmt.Errorf("max batch (%d) must be at least 1: %w", c.Server.MaxBatch, errors.ErrInvalidConfig)
	}
	if c.Output.Format != SAN && c.Output.Format != JSON {
		return fmt.Errorf("output format %d: %w", c.Output.Format, errors.ErrInvalidConfig)
	}
	return nil
}
