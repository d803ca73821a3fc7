// Package logging builds the zap logger used by the desksort commands.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration.
type Config struct {
	Level       string `json:"level" yaml:"level"`
	Format      string `json:"format" yaml:"format"` // "json" or "console"
	OutputPath  string `json:"output_path" yaml:"output_path"`
	Development bool   `json:"development" yaml:"development"`
}

// DefaultConfig logs warnings and above to stderr in console format, so
// command output on stdout stays clean.
func DefaultConfig() Config {
	return Config{Level: "warn", Format: FormatConsole, OutputPath: "stderr"}
}

// New creates a logger from config. An unparsable level falls back to info.
func New(config Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if config.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	switch config.Format {
	case FormatJSON:
		zapConfig.Encoding = FormatJSON
	case FormatConsole, "":
		zapConfig.Encoding = FormatConsole
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, fmt.Errorf("unknown log format %q", config.Format)
	}

	output := config.OutputPath
	if output == "" {
		output = "stderr"
	}
	zapConfig.OutputPaths = []string{output}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	zapConfig.Sampling = nil

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("service", "desksort")), nil
}
