// Package cli wires Poligras's core packages (datasets, partition, policy,
// reward, engine, summary, dynamic) into a cobra command tree, grounded on
// the pack's pkg/config + cmd/cli/cmd layering.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/poligras/internal/obslog"
)

// Config holds the run's global settings: the dataset root directory and
// log level, resolvable from a poligras.yaml via viper. CLI flags
// win over the config file, which wins over these defaults.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	LogLevel string `mapstructure:"log_level"`
}

// loadConfig reads poligras.yaml (or the file at configPath) if present,
// falling back to defaults when no config file exists; it never errors on
// a missing file, only on one that exists but fails to parse.
func loadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("data_dir", "./data")
	v.SetDefault("log_level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("poligras")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("cli: read config: %w", err)
			}
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cli: unmarshal config: %w", err)
	}
	return &cfg, nil
}

// levelFromString maps a config/flag log level name to obslog.Level,
// defaulting to LevelInfo for an empty or unrecognized value.
func levelFromString(s string) obslog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return obslog.LevelDebug
	case "warn", "warning":
		return obslog.LevelWarn
	case "error":
		return obslog.LevelError
	default:
		return obslog.LevelInfo
	}
}
