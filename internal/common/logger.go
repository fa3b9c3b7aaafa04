package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/berrythewa/copycopy/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOptions are command-line overrides applied on top of the config
type LoggerOptions struct {
	Verbose bool // force debug level
	Quiet   bool // only warnings and errors
}

// NewLogger creates a new logger instance from the log section of cfg.
// Output goes to stderr, or to cfg.Log.File when set.
func NewLogger(cfg *config.Config, opts LoggerOptions) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	switch {
	case opts.Verbose:
		level = zapcore.DebugLevel
	case opts.Quiet && level < zapcore.WarnLevel:
		level = zapcore.WarnLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoding := "json"
	if cfg.Log.Format == "console" {
		encoding = "console"
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	outputs := []string{"stderr"}
	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		outputs = []string{cfg.Log.File}
	}

	zc := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}

	return zc.Build()
}
