package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tui"
	"github.com/rocketscienceinc/tictactoe-tui/internal/usecase"
)

var ErrNotATerminal = errors.New("stdout is not a terminal")

// RunApp - runs the game until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if err := checkTerminal(os.Stdout.Fd()); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	manager := usecase.NewGameManager(logger)
	model := tui.New(logger, manager, conf)

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	log.Info("Starting game", "round", manager.RoundID(), "animation", !conf.Animation.Disabled)

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			log.Info("Program context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("tui program failed: %w", err)
	}

	final := manager.Game()
	log.Info("Game closed", "score_x", final.Score.X, "score_o", final.Score.O)

	return nil
}

func checkTerminal(fd uintptr) error {
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}

	return ErrNotATerminal
}
