package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/quarry-ml/quarry/internal/logging"
)

// quarry config.toml key mapping to CLI settings.
type fileConfig struct {
	LogLevel string `toml:"log_level"`
	Splits   int    `toml:"splits"`
	Seed     int64  `toml:"seed"`
}

// cliConfig holds the resolved CLI settings after defaults and the config
// file have been overlaid.
type cliConfig struct {
	LogLevel logging.Level
	Splits   int   // default fold count for the split command
	Seed     int64 // 0 means unseeded (global source)
}

func defaultConfig() cliConfig {
	return cliConfig{
		LogLevel: logging.LevelInfo,
		Splits:   10,
		Seed:     0,
	}
}

// loadConfig decodes a TOML config file, overlaying only the keys the file
// actually defines onto the defaults.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = logging.Level(strings.TrimSpace(raw.LogLevel))
	}
	if meta.IsDefined("splits") {
		if raw.Splits < 1 {
			return cliConfig{}, fmt.Errorf("load config: splits must be >= 1, got %d", raw.Splits)
		}
		cfg.Splits = raw.Splits
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}

	return cfg, nil
}
