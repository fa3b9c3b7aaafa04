package cmd

import (
	"fmt"

	"github.com/berrythewa/copycopy/internal/common"
	"github.com/berrythewa/copycopy/internal/config"
	"go.uber.org/zap"
)

// SetupLogger creates the zap logger described by cfg, honoring --verbose and --quiet
func SetupLogger(cfg *config.Config) (*zap.Logger, error) {
	return common.NewLogger(cfg, common.LoggerOptions{Verbose: verbose, Quiet: quiet})
}

// GetLogger returns the configured logger, creating it if necessary
func GetLogger() (*zap.Logger, error) {
	if zapLogger != nil {
		return zapLogger, nil
	}

	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	logger, err := SetupLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	zapLogger = logger
	return logger, nil
}
