package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-rock/internal/config"
	"github.com/vovakirdan/dodge-rock/internal/core"
	"github.com/vovakirdan/dodge-rock/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Dodge Rock in the terminal. The playfield is scaled to fit.

Controls:
  Arrows/WASD/hjkl  - Move
  X or Shift+arrow  - Slow movement
  Any key           - Start from the title screen
  R/Enter           - Play again (after game over)
  T/Backspace       - Back to title (after game over)
  Q/Esc             - Quit (after game over)
  Ctrl+S            - Save a text screenshot
  Ctrl+C            - Exit at any time

Terminals do not report key releases, so a key counts as held until it
stops repeating (tui.key_hold_ms in the config).

Logs go to ~/.dodgerock/dodgerock.log.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	game, err := newGame(logger)
	if err != nil {
		return err
	}

	rc := core.DefaultRuntimeConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = game.Config().TickRate
	rc.Seed = flagSeed

	return tui.Run(game, rc, logger)
}

// openLogFile opens the terminal frontend's log, which cannot share the
// screen with the game.
func openLogFile() (*os.File, error) {
	dir := config.UserDir()
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := filepath.Join(dir, "dodgerock.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
