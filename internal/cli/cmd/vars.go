package cmd

import (
	"github.com/berrythewa/copycopy/internal/config"
	"go.uber.org/zap"
)

// Shared variables across all commands
var (
	cfg       *config.Config
	zapLogger *zap.Logger

	configFile string
	verbose    bool
	quiet      bool
	useJSON    bool
	noColor    bool
)

// SetConfig sets the configuration for commands
func SetConfig(config *config.Config) {
	cfg = config
}

func GetZapLogger() *zap.Logger {
	if zapLogger == nil {
		return zap.NewNop()
	}
	return zapLogger
}
