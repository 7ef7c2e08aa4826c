package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
)

func TestInitLogger(t *testing.T) {
	t.Run("Debug level keeps debug records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := initLogger(&buf, &config.Config{LogLevel: "debug"})

		logger.Debug("visible")

		assert.Contains(t, buf.String(), `"msg":"visible"`)
	})

	t.Run("Warn level drops info records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := initLogger(&buf, &config.Config{LogLevel: "warn"})

		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := initLogger(&buf, &config.Config{LogLevel: "loud"})

		logger.Debug("hidden")
		logger.Info("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}

func TestOpenLogFile(t *testing.T) {
	t.Run("Appends to the file", func(t *testing.T) {
		// Given: an existing log file
		path := filepath.Join(t.TempDir(), "game.log")
		require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

		// When: opening and writing to it
		file, err := openLogFile(path)
		require.NoError(t, err)
		_, err = io.WriteString(file, "new\n")
		require.NoError(t, err)
		require.NoError(t, file.Close())

		// Then: both lines are kept
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old\nnew\n", string(content))
	})

	t.Run("Rejects an empty path", func(t *testing.T) {
		_, err := openLogFile("")

		assert.ErrorIs(t, err, ErrEmptyLogPath)
	})
}

func TestRootCmd(t *testing.T) {
	t.Run("Rejects positional arguments", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetArgs([]string{"extra"})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)

		assert.Error(t, cmd.Execute())
	})

	t.Run("Reports a broken config file before starting", func(t *testing.T) {
		// Given: a malformed config file
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [unterminated"), 0o600))

		cmd := newRootCmd()
		cmd.SetArgs([]string{"--config", path})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)

		// When: executing the command
		err := cmd.Execute()

		// Then: the config error is returned
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})

	t.Run("Registers the flags", func(t *testing.T) {
		cmd := newRootCmd()

		for _, name := range []string{"config", "log-level", "no-animation"} {
			assert.NotNil(t, cmd.Flags().Lookup(name), name)
		}
	})
}
