// Package config loads tcosecheck's CLI defaults from an optional YAML file,
// then lets environment variables override them. Neither layer is required:
// every field except LogTextFormat also has a corresponding cobra flag, which
// takes precedence over both when set explicitly on the command line.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// envPrefix is the environment variable prefix passed to envconfig, e.g.
// TCOSECHECK_KEY_PATH.
const envPrefix = "tcosecheck"

// Config holds the default flag values for tcosecheck's subcommands.
type Config struct {
	KeyPath           string `yaml:"key_path" envconfig:"KEY_PATH"`
	RequireKID        bool   `yaml:"require_kid" envconfig:"REQUIRE_KID"`
	AllowShortCircuit bool   `yaml:"allow_short_circuit" envconfig:"ALLOW_SHORT_CIRCUIT"`
	LogTextFormat     bool   `yaml:"log_text_format" envconfig:"LOG_TEXT_FORMAT"`
}

// Load reads path (if non-empty) as a YAML config file, then applies any
// TCOSECHECK_* environment variable overrides on top of it.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	return envconfig.Process(envPrefix, c)
}
