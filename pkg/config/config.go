// Package config loads the TOML configuration of the command line tool.
// Missing items fall back to the defaults, so running without a
// configuration file is fine.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoggerConfig contains logger configuration.
type LoggerConfig struct {
	Format    string     `toml:"format"`
	Level     slog.Level `toml:"level"`
	AddSource bool       `toml:"add-source"`
	OutputTo  string     `toml:"output-to"`
}

// tidy normalizes the values and validates the configuration.
func (lc *LoggerConfig) tidy() error {
	switch v := strings.ToLower(lc.Format); v {
	case "json", "text":
		lc.Format = v
	default:
		return fmt.Errorf("unknown log format: %s", lc.Format)
	}

	switch v := strings.ToLower(lc.OutputTo); v {
	case "stderr", "stdout", "discard":
		lc.OutputTo = v
	default:
		return fmt.Errorf("unknown log output: %s", lc.OutputTo)
	}

	return nil
}

// ShellConfig contains configuration of the interactive shell.
type ShellConfig struct {
	Prompt             string `toml:"prompt"`
	ContinuationPrompt string `toml:"continuation-prompt"`
}

func (sc *ShellConfig) tidy() error {
	if sc.Prompt == "" {
		sc.Prompt = "> "
	}
	if sc.ContinuationPrompt == "" {
		sc.ContinuationPrompt = ". "
	}
	return nil
}

// Config contains all of the configuration.
type Config struct {
	Logger LoggerConfig `toml:"logger"`
	Shell  ShellConfig  `toml:"shell"`
}

func (c *Config) tidy() error {
	if err := c.Logger.tidy(); err != nil {
		return err
	}
	return c.Shell.tidy()
}

func defaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			Format:   "text",
			Level:    slog.LevelInfo,
			OutputTo: "stderr",
		},
		Shell: ShellConfig{
			Prompt:             "> ",
			ContinuationPrompt: ". ",
		},
	}
}

var cfg = defaultConfig()

// Load loads the configuration from the file at 'path'. An empty path
// loads the defaults. Keys absent from the file keep their default values;
// unknown keys are ignored.
func Load(path string) error {
	c := defaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return err
		}
	}
	if err := c.tidy(); err != nil {
		return err
	}
	cfg = c
	return nil
}

// Logger returns the logger configuration.
func Logger() LoggerConfig {
	return cfg.Logger
}

// Shell returns the shell configuration.
func Shell() ShellConfig {
	return cfg.Shell
}
