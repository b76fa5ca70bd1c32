package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/automark/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.NotNil(t, cfg)
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.False(t, cfg.AddCaller)
		assert.Equal(t, "stderr", cfg.Output)
	})

	t.Run("NewLoggerFromConfig writes to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "automark.log")

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "debug",
			Format: "json",
			Output: path,
			Fields: map[string]any{"run": "test"},
		})
		logger.Info().Msg("test message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "test message")
		assert.Contains(t, string(content), `"run":"test"`)
	})

	t.Run("Configure filters below level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "automark.log")

		logging.Configure(&logging.Config{
			Level:  "warn",
			Format: "json",
			Output: path,
		})
		logging.Debug().Msg("debug message")
		logging.Info().Msg("info message")
		logging.Warn().Msg("warn message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "debug message")
		assert.NotContains(t, string(content), "info message")
		assert.Contains(t, string(content), "warn message")
	})

	t.Run("auto format on discard does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			logger := logging.NewLoggerFromConfig(&logging.Config{Level: "info", Format: "auto", Output: "discard"})
			logger.Info().Msg("dropped")
		})
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logging.NewLoggerFromConfig(&logging.Config{Level: "loud", Format: "json", Output: "discard"})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})
}
