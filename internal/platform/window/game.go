// Package window runs the game in a desktop window through Ebitengine.
// Ebitengine's fixed TPS update loop supplies the simulation ticks.
package window

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dodge-rock/internal/core"
	"github.com/vovakirdan/dodge-rock/internal/games/dodge"
)

// Game adapts a simulation to ebiten.Game.
type Game struct {
	sim    *dodge.Game
	input  *core.InputState
	reader inputReader
	score  *dodge.ScoreCard
	logger *log.Logger
}

// New wraps sim for Ebitengine.
func New(sim *dodge.Game, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Game{
		sim:    sim,
		input:  core.NewInputState(),
		score:  dodge.NewScoreCard(logger),
		logger: logger,
	}
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	g.reader.poll(g.input)

	res := g.sim.Step(g.input)
	if res.Quit {
		g.logger.Info("quit from game over", "frames", g.sim.System().Frame)
		return ebiten.Termination
	}
	return nil
}

// Draw renders the active scene.
func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.sim, g.score)
}

// Layout keeps the logical screen at the simulation's window size.
func (g *Game) Layout(_, _ int) (int, int) {
	sys := g.sim.System()
	return sys.WindowW, sys.WindowH
}

// Run opens the window and blocks until the player quits or closes it.
func Run(sim *dodge.Game, logger *log.Logger) error {
	cfg := sim.Config()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(New(sim, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
