package tui

import (
	"math"

	"github.com/vovakirdan/dodge-rock/internal/config"
	"github.com/vovakirdan/dodge-rock/internal/core"
	"github.com/vovakirdan/dodge-rock/internal/games/dodge"
)

// Visual characters for rendering
const (
	ShipChar   = '▲'
	BlockChar  = '█'
	HitboxChar = '·'
)

// viewport maps window pixels onto the cells inside the playfield border.
type viewport struct {
	x, y   int // Top-left inner cell
	w, h   int // Inner size in cells
	sx, sy float64
}

func newViewport(screenW, screenH, worldW, worldH int) viewport {
	v := viewport{x: 1, y: 1, w: screenW - 2, h: screenH - 2}
	if v.w < 1 {
		v.w = 1
	}
	if v.h < 1 {
		v.h = 1
	}
	v.sx = float64(v.w) / float64(worldW)
	v.sy = float64(v.h) / float64(worldH)
	return v
}

// cells converts a pixel rectangle to screen cells, clipped to the
// viewport. Anything visible covers at least one cell. ok is false when the
// rectangle is entirely outside.
func (v viewport) cells(r core.Rect) (x, y, w, h int, ok bool) {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = core.Max(x0, 0), core.Min(x1, v.w)
	y0, y1 = core.Max(y0, 0), core.Min(y1, v.h)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return v.x + x0, v.y + y0, x1 - x0, y1 - y0, true
}

// Draw renders the current scene of g into screen.
func Draw(screen *core.Screen, g *dodge.Game, score *dodge.ScoreCard) {
	screen.Clear()
	cfg := g.Config()

	switch g.Scene() {
	case dodge.SceneTitle:
		drawTitle(screen, cfg)
	case dodge.SceneMainPlay:
		drawField(screen, g)
	case dodge.SceneGameOver:
		drawField(screen, g)
		drawGameOver(screen, g, score)
	}
}

func drawTitle(screen *core.Screen, cfg config.Config) {
	w, h := screen.Width(), screen.Height()
	screen.DrawBox(0, 0, w, h, core.ColorDefault)
	screen.DrawTextCentered(h/3, cfg.Text.Title, core.ColorTitle)
	screen.DrawTextCentered(h/2, cfg.Text.PressAnyKey, core.ColorHint)
}

func drawField(screen *core.Screen, g *dodge.Game) {
	sys := g.System()
	screen.DrawBox(0, 0, screen.Width(), screen.Height(), core.ColorDefault)
	v := newViewport(screen.Width(), screen.Height(), sys.WindowW, sys.WindowH)

	for _, e := range g.Enemies() {
		if x, y, w, h, ok := v.cells(e.Hitbox); ok {
			screen.FillRect(x, y, w, h, BlockChar, core.ColorBlock)
		}
	}

	p := g.Player()
	sprite := core.NewRect(p.X, p.Y, float64(p.Width), float64(p.Height))
	if x, y, w, h, ok := v.cells(sprite); ok {
		screen.FillRect(x, y, w, h, ShipChar, core.ColorShip)
	}
	if g.Config().Debug {
		if x, y, w, h, ok := v.cells(p.Hitbox); ok {
			screen.FillRect(x, y, w, h, HitboxChar, core.ColorHitbox)
		}
	}

	screen.DrawTextColored(2, 0, " "+dodge.FormatScore(sys.Frame)+" ", core.ColorScore)
}

func drawGameOver(screen *core.Screen, g *dodge.Game, score *dodge.ScoreCard) {
	cfg := g.Config()

	lines := len(cfg.Text.GameOverTips) + 3
	top := (screen.Height() - lines) / 2

	screen.DrawTextCentered(top, cfg.Text.GameOverTitle, core.ColorTitle)
	screen.DrawTextCentered(top+1, score.Line(g), core.ColorScore)
	for i, tip := range cfg.Text.GameOverTips {
		screen.DrawTextCentered(top+3+i, tip, core.ColorHint)
	}
}
