// Package logging builds the zap logger used by the command-line tools.
// Library packages stay silent; only the CLI logs.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names a logging verbosity accepted in configuration.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func (l Level) String() string {
	return string(l)
}

// Zap maps the level onto a zap atomic level, accepting the common
// spelling variants. Unknown levels fall back to info.
func (l Level) Zap() zap.AtomicLevel {
	switch l {
	case LevelDebug, "trace":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LevelInfo, "":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LevelWarn, "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case LevelError:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

// New builds a console logger writing to stderr at the given level.
func New(level Level) (*zap.Logger, error) {
	cfg := zap.Config{
		Level:            level.Zap(),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}
