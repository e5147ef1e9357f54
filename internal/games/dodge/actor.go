package dodge

import (
	"github.com/vovakirdan/dodge-rock/internal/config"
	"github.com/vovakirdan/dodge-rock/internal/core"
)

// playerBottomMargin is the gap between the ship and the bottom edge at spawn.
const playerBottomMargin = 16

// Player is the ship controlled by the user.
type Player struct {
	X, Y          float64
	Width, Height uint32
	Hitbox        core.Rect // Inset from the sprite bounds
}

func (p *Player) updateHitbox() {
	p.Hitbox = core.NewRect(p.X, p.Y, float64(p.Width), float64(p.Height)).Inset(
		config.PlayerHitboxOffsetX, config.PlayerHitboxOffsetY,
		config.PlayerHitboxShrinkW, config.PlayerHitboxShrinkH,
	)
}

// Enemy is a falling block.
type Enemy struct {
	X, Y          float64
	Width, Height uint32
	Hitbox        core.Rect // Equal to the sprite bounds
}

func (e *Enemy) updateHitbox() {
	e.Hitbox = core.NewRect(e.X, e.Y, float64(e.Width), float64(e.Height))
}

// Template is the immutable prototype used to stamp out a fresh player and
// new enemies. It is built once per game and never changes.
type Template struct {
	player Player
	enemy  Enemy
}

// NewTemplate derives the player and enemy prototypes from the configured
// sprite sizes and window. The player starts centred near the bottom edge.
func NewTemplate(cfg config.Config) Template {
	p := Player{
		Width:  uint32(cfg.Player.Width),
		Height: uint32(cfg.Player.Height),
	}
	p.X = float64(cfg.Window.Width-cfg.Player.Width) / 2
	p.Y = float64(cfg.Window.Height - cfg.Player.Height - playerBottomMargin)
	if p.Y < 0 {
		p.Y = 0
	}
	p.updateHitbox()

	e := Enemy{
		Width:  uint32(cfg.Enemy.Width),
		Height: uint32(cfg.Enemy.Height),
	}
	e.updateHitbox()

	return Template{player: p, enemy: e}
}

// Player returns the player prototype.
func (t Template) Player() Player {
	return t.player
}

// Enemy returns the enemy prototype at the origin.
func (t Template) Enemy() Enemy {
	return t.enemy
}

func (t Template) newEnemy(x, y float64) Enemy {
	e := t.enemy
	e.X = x
	e.Y = y
	e.updateHitbox()
	return e
}

// Actor owns the player, the enemy pool and the template they come from.
// The pool only grows during play; it is emptied by a full reset.
type Actor struct {
	Player   Player
	Enemies  []Enemy
	template Template
}

func (t Template) newActor() Actor {
	return Actor{
		Player:   t.player,
		Enemies:  make([]Enemy, 0, 16),
		template: t,
	}
}

func (a *Actor) addEnemy(x, y float64) {
	a.Enemies = append(a.Enemies, a.template.newEnemy(x, y))
}
