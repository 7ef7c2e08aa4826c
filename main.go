package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-tui/internal"
	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
)

var ErrEmptyLogPath = errors.New("log file path is empty")

// main - is the entry point of the application. It parses flags, loads the configuration, sets up the logger and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		logLevel    string
		noAnimation bool
	)

	cmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Play Tic-Tac-Toe in the terminal",
		Long:         "Two players share one keyboard. Reset keeps the score, New Game clears it.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if cmd.Flags().Changed("log-level") {
				conf.LogLevel = logLevel
			}
			if noAnimation {
				conf.Animation.Disabled = true
			}

			logFile, err := openLogFile(conf.LogFile)
			if err != nil {
				return err
			}
			defer logFile.Close()

			return app.RunApp(initLogger(logFile, conf), conf)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath(), "path to the yml config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&noAnimation, "no-animation", false, "disable all animations")

	return cmd
}

// default config lives next to the working directory.
func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		return "config.yml"
	}

	return filepath.Join(baseDir, "config.yml")
}

// the terminal belongs to the game, so logs go to a file.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, ErrEmptyLogPath
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// initialize logger.
func initLogger(w io.Writer, conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
