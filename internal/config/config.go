// Package config loads scrub settings from an optional .scrub.yaml file and
// SCRUB_* environment variables.
//
// Precedence, highest first: command-line flags, environment, config file,
// built-in defaults. Flags are applied by the CLI; this package resolves the
// remaining layers.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/scrub/internal/report"
	"github.com/vvka-141/scrub/pkg/scrub"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variable names.
const (
	EnvHeaderLines = "SCRUB_HEADER_LINES"
	EnvVerbose     = "SCRUB_VERBOSE"
	EnvReport      = "SCRUB_REPORT"
	EnvWorkers     = "SCRUB_WORKERS"
)

// Config holds settings shared by every scrub command.
type Config struct {
	HeaderLines int      `yaml:"header_lines"`
	Verbose     bool     `yaml:"verbose"`
	Report      string   `yaml:"report"`
	RawStrings  bool     `yaml:"raw_strings"`
	Lifetimes   bool     `yaml:"lifetimes"`
	Workers     int      `yaml:"workers"`
	Exclude     []string `yaml:"exclude"`
}

// Defaults returns the built-in settings.
func Defaults() *Config {
	return &Config{
		HeaderLines: scrub.DefaultHeaderLines,
		Report:      string(report.FormatTable),
		RawStrings:  true,
		Workers:     scrub.DefaultWorkers,
	}
}

// Load reads the YAML file at path on top of the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", scrub.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Resolve loads .env (best effort), then the config file, then environment
// overrides, and validates the result. An empty explicitPath means the
// optional .scrub.yaml in dir; an explicit path that does not exist is an error.
func Resolve(dir, explicitPath string) (*Config, error) {
	_ = godotenv.Load()

	path := explicitPath
	if path == "" {
		path = filepath.Join(dir, scrub.ConfigFileName)
	}

	cfg, err := Load(path)
	switch {
	case errors.Is(err, ErrConfigNotFound) && explicitPath == "":
		cfg = Defaults()
	case errors.Is(err, ErrConfigNotFound):
		return nil, fmt.Errorf("%w: %s: %v", scrub.ErrInvalidConfig, path, err)
	case err != nil:
		return nil, err
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from SCRUB_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookupTrimmed(lookup, EnvHeaderLines); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", scrub.ErrInvalidConfig, EnvHeaderLines, v)
		}
		c.HeaderLines = n
	}
	if v, ok := lookupTrimmed(lookup, EnvVerbose); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", scrub.ErrInvalidConfig, EnvVerbose, v)
		}
		c.Verbose = b
	}
	if v, ok := lookupTrimmed(lookup, EnvReport); ok {
		c.Report = v
	}
	if v, ok := lookupTrimmed(lookup, EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", scrub.ErrInvalidConfig, EnvWorkers, v)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.HeaderLines < 0 {
		return fmt.Errorf("%w: header_lines must be >= 0, got %d", scrub.ErrInvalidConfig, c.HeaderLines)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", scrub.ErrInvalidConfig, c.Workers)
	}
	if _, err := report.ParseFormat(c.Report); err != nil {
		return err
	}
	return nil
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
