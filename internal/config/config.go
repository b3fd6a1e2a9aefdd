// Package config handles configuration parsing for calc-average.
//
// Only ambient settings live here. The numbers the program works on always
// come from the command line.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/acolita/calc-average/internal/logging"
	"github.com/acolita/calc-average/internal/ports"
)

// Config represents the top-level configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: logging.FormatJSON,
		},
	}
}

// Load loads configuration from a YAML file on top of DefaultConfig.
// An empty path returns the defaults. Unknown keys are rejected.
// An optional FileSystem can be passed for testing; if omitted, the real OS is used.
func Load(path string, fsys ...ports.FileSystem) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	var data []byte
	var err error
	if len(fsys) > 0 && fsys[0] != nil {
		data, err = fsys[0].ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		result = multierror.Append(result, fmt.Errorf("logging.level %q: must be one of debug, info, warn, error", c.Logging.Level))
	}
	if !logging.ValidFormat(c.Logging.Format) {
		result = multierror.Append(result, fmt.Errorf("logging.format %q: must be json or text", c.Logging.Format))
	}

	return result.ErrorOrNil()
}

// ApplyDebug forces debug logging, as the --debug flag does.
func (c *Config) ApplyDebug(debug bool) {
	if debug {
		c.Logging.Level = "debug"
	}
}
