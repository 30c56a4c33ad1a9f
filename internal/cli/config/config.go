// Package config loads CLI configuration from file, environment and flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultLogLevel    = 1
	DefaultHistoryFile = ".kasd_history"
)

// Config holds the driver configuration.
type Config struct {
	// LogLevel selects logging verbosity: 0 none, 1 error, 2 warning,
	// 3 info, 4 debug.
	LogLevel int `koanf:"log_level"`

	// HistoryFile is the REPL history file; relative paths resolve against
	// the user's home directory.
	HistoryFile string `koanf:"history_file"`
}

// HistoryPath returns the resolved history file path.
func (c *Config) HistoryPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c.HistoryFile
	}
	return filepath.Join(home, c.HistoryFile)
}

var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > kasd.yaml > kasd.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("kasd.yaml"); err == nil {
		return "kasd.yaml"
	}
	if _, err := os.Stat("kasd.yml"); err == nil {
		return "kasd.yml"
	}
	return ""
}

// Load loads configuration from file, environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"log_level":    DefaultLogLevel,
		"history_file": DefaultHistoryFile,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables: KASD_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider("KASD_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "KASD_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (only those explicitly set)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.LogLevel < 0 || cfg.LogLevel > 4 {
		return nil, fmt.Errorf("invalid log level: %d (must be 0-4)", cfg.LogLevel)
	}

	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}
