package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-rock/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Dodge Rock in a desktop window.

Controls:
  Arrows/WASD/hjkl, d-pad, left stick  - Move
  Shift, X, shoulder buttons           - Slow movement
  Any key or button                    - Start from the title screen
  R/Enter, Start/A                     - Play again (after game over)
  T/Backspace, Back/B                  - Back to title (after game over)
  Q/Esc, Guide                         - Quit (after game over)
  F1                                   - Spawn a rock (debug mode only)`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	game, err := newGame(logger)
	if err != nil {
		return err
	}
	return window.Run(game, logger)
}
