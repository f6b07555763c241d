// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config holds the command line tool configuration.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONP = "jsonp"
	FormatYAML  = "yaml"
)

// DefaultJSONPFile is the output file used for the jsonp format when none is
// given.
const DefaultJSONPFile = "circuit.jsonp"

// Config is the configuration of a simulation run.
type Config struct {
	// Format of the structured report. The text probe listing is always
	// printed to stdout.
	Format string `yaml:"format"`
	// Output file of the structured report. Empty means stdout.
	Output string `yaml:"output"`
	// ProbeAll probes every gate during the run.
	ProbeAll bool `yaml:"probe_all"`
	// MaxSteps aborts the run after that many steps. 0 means no limit.
	MaxSteps int `yaml:"max_steps"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
	// MetricsFile is where Prometheus metrics are written after the run.
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Format:   FormatText,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Load reads a YAML configuration file. Fields missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	c := Default()
	f, err := os.Open(path)
	if err != nil {
		return c, errors.Wrap(err, "load config")
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return c, errors.Wrapf(err, "decode config %s", path)
	}
	return c, c.Validate()
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatJSONP, FormatYAML:
	default:
		return errors.Errorf("unsupported format %q", c.Format)
	}
	if c.MaxSteps < 0 {
		return errors.Errorf("invalid max steps %d", c.MaxSteps)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}

// OutputFile returns the output file for structured reports, applying the
// jsonp default.
func (c *Config) OutputFile() string {
	if c.Output == "" && c.Format == FormatJSONP {
		return DefaultJSONPFile
	}
	return c.Output
}
