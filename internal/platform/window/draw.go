package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dodge-rock/internal/core"
	"github.com/vovakirdan/dodge-rock/internal/games/dodge"
)

// basicfont.Face7x13 glyph metrics
const (
	glyphW = 7
	lineH  = 16
)

var (
	colorBackground = color.RGBA{R: 12, G: 14, B: 24, A: 255}
	colorShip       = color.RGBA{R: 90, G: 220, B: 240, A: 255}
	colorHitbox     = color.RGBA{R: 240, G: 70, B: 70, A: 255}
	colorBlock      = color.RGBA{R: 130, G: 120, B: 110, A: 255}
	colorBlockEdge  = color.RGBA{R: 70, G: 62, B: 56, A: 255}
	colorTitle      = color.RGBA{R: 250, G: 220, B: 90, A: 255}
	colorScore      = color.RGBA{R: 120, G: 230, B: 120, A: 255}
	colorHint       = color.RGBA{R: 180, G: 180, B: 190, A: 255}
)

func drawScene(screen *ebiten.Image, g *dodge.Game, score *dodge.ScoreCard) {
	screen.Fill(colorBackground)
	cfg := g.Config()

	switch g.Scene() {
	case dodge.SceneTitle:
		h := screen.Bounds().Dy()
		drawCentered(screen, cfg.Text.Title, h/3, colorTitle)
		drawCentered(screen, cfg.Text.PressAnyKey, h/2, colorHint)
	case dodge.SceneMainPlay:
		drawField(screen, g)
	case dodge.SceneGameOver:
		drawField(screen, g)
		drawGameOver(screen, g, score)
	}
}

func drawField(screen *ebiten.Image, g *dodge.Game) {
	for _, e := range g.Enemies() {
		fillRect(screen, e.Hitbox, colorBlock)
		strokeRect(screen, e.Hitbox, colorBlockEdge)
	}

	p := g.Player()
	body := core.NewRect(p.X, p.Y, float64(p.Width), float64(p.Height))
	// Narrow nose over a wide hull, roughly the shape the hitbox follows
	fillRect(screen, body.Inset(float64(p.Width)/3, 0, float64(p.Width)*2/3, float64(p.Height)/3), colorShip)
	fillRect(screen, body.Inset(0, float64(p.Height)/3, 0, float64(p.Height)/3), colorShip)

	if g.Config().Debug {
		strokeRect(screen, p.Hitbox, colorHitbox)
	}

	text.Draw(screen, dodge.FormatScore(g.System().Frame), basicfont.Face7x13, 8, lineH, colorScore)
}

func drawGameOver(screen *ebiten.Image, g *dodge.Game, score *dodge.ScoreCard) {
	cfg := g.Config()

	lines := len(cfg.Text.GameOverTips) + 3
	y := (screen.Bounds().Dy() - lines*lineH) / 2

	drawCentered(screen, cfg.Text.GameOverTitle, y, colorTitle)
	drawCentered(screen, score.Line(g), y+lineH, colorScore)
	for i, tip := range cfg.Text.GameOverTips {
		drawCentered(screen, tip, y+(3+i)*lineH, colorHint)
	}
}

func drawCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	x := (screen.Bounds().Dx() - len([]rune(s))*glyphW) / 2
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}

func fillRect(screen *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(screen *ebiten.Image, r core.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
}
