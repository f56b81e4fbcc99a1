package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

func TestInitLogger(t *testing.T) {
	t.Run("JSON handler at the configured level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := initLogger(&config.Config{LogLevel: "warn", LogFormat: "json"}, buf)

		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
	})

	t.Run("Text handler", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := initLogger(&config.Config{LogLevel: "debug", LogFormat: "text"}, buf)

		assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
		logger.Debug("move")

		assert.Contains(t, buf.String(), "msg=move")
	})
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	t.Run("Reads config.yml from the directory", func(t *testing.T) {
		// Given: a directory with a config file
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, configFile), []byte("log-level: debug\n"), 0o600))

		// When: loading the configuration
		conf := loadConfig(dir)

		// Then: the file value is used
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		conf := loadConfig(t.TempDir())

		assert.Equal(t, "info", conf.LogLevel)
	})
}
