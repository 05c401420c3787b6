// SPDX-License-Identifier: MIT
// Package config loads chembalance settings from an optional YAML file and
// CHEMBALANCE_* environment variables, in that order of precedence (env wins).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chembalance/balancer"
	"github.com/katalvlaran/chembalance/fallback"
	"github.com/katalvlaran/chembalance/internal/logging"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CHEMBALANCE_"

// Config holds the settings of one process.
type Config struct {
	MaxDenominator  int64  `yaml:"max_denominator" env:"MAX_DENOMINATOR"`
	MaxInputLength  int    `yaml:"max_input_length" env:"MAX_INPUT_LENGTH"`
	Arrow           string `yaml:"arrow" env:"ARROW"`
	Lang            string `yaml:"lang" env:"LANG"`
	LogLevel        string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat       string `yaml:"log_format" env:"LOG_FORMAT"`
	MetricsTextfile string `yaml:"metrics_textfile" env:"METRICS_TEXTFILE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxDenominator: balancer.DefaultMaxDenominator,
		MaxInputLength: balancer.DefaultMaxInputLength,
		Arrow:          balancer.DefaultArrow,
		Lang:           "en",
		LogLevel:       "info",
		LogFormat:      string(logging.FormatText),
	}
}

// Load reads path (skipped when empty) over the defaults, applies the process
// environment, and validates the result.
func Load(path string) (Config, error) {
	return LoadEnviron(path, nil)
}

// LoadEnviron is Load with an explicit environment; nil means the process environment.
func LoadEnviron(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects settings the balancer or logger cannot use.
func (c Config) Validate() error {
	if c.MaxDenominator < 1 {
		return fmt.Errorf("config: max_denominator must be >= 1, got %d", c.MaxDenominator)
	}
	if c.MaxInputLength < 0 {
		return fmt.Errorf("config: max_input_length must be >= 0, got %d", c.MaxInputLength)
	}
	if c.Arrow == "" {
		return errors.New("config: arrow must be non-empty")
	}
	if _, err := language.Parse(c.Lang); err != nil {
		return fmt.Errorf("config: lang: %w", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// BalancerOptions maps the settings onto balancer options.
// The config must be valid.
func (c Config) BalancerOptions() []balancer.Option {
	return []balancer.Option{
		balancer.WithMaxDenominator(c.MaxDenominator),
		balancer.WithMaxInputLength(c.MaxInputLength),
		balancer.WithArrow(c.Arrow),
	}
}

// Language returns the closest supported language for Lang.
func (c Config) Language() language.Tag {
	return fallback.MatchLanguage(c.Lang)
}
