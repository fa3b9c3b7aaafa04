package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/berrythewa/copycopy/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Level = "warn"

	logger, err := NewLogger(cfg, LoggerOptions{})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = NewLogger(cfg, LoggerOptions{Verbose: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	cfg.Log.Level = "debug"
	logger, err = NewLogger(cfg, LoggerOptions{Quiet: true})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	cfg.Log.Level = "error"
	logger, err = NewLogger(cfg, LoggerOptions{Quiet: true})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLoggerFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Format = "json"
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "copycopy.log")

	logger, err := NewLogger(cfg, LoggerOptions{})
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
