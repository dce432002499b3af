// Package config loads taskroll settings from a YAML file with
// environment overrides.
//
// Precedence, highest first:
//  1. Environment variables (TASKROLL_LOG_LEVEL, TASKROLL_LOG_FORMAT,
//     TASKROLL_LOG_FILE, TASKROLL_SCHEDULER_ENABLED)
//  2. The YAML file (--config, or ~/.config/taskroll/config.yaml)
//  3. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const EnvPrefix = "TASKROLL_"

type Config struct {
	Log       LogConfig       `yaml:"log" json:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler" json:"scheduler"`
	Seed      []SeedTask      `yaml:"seed" json:"seed"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	// File receives log output. Empty means stderr for CLI commands and
	// discard for the board, which owns the terminal.
	File string `yaml:"file" json:"file"`
}

type SchedulerConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// SeedTask holds raw form values; they go through the same validation as
// anything typed into the board.
type SeedTask struct {
	Description string `yaml:"description" json:"description"`
	Due         string `yaml:"due" json:"due"`
	Difficulty  string `yaml:"difficulty" json:"difficulty"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Scheduler: SchedulerConfig{Enabled: true},
	}
}

// DefaultPath returns ~/.config/taskroll/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "taskroll", "config.yaml"), nil
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok && v != "" {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FILE"); ok && v != "" {
		c.Log.File = v
	}
	if v, ok := lookup(EnvPrefix + "SCHEDULER_ENABLED"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sSCHEDULER_ENABLED: %w", EnvPrefix, err)
		}
		c.Scheduler.Enabled = b
	}
	return nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: must be text or json, got %q", c.Log.Format)
	}
	return nil
}
