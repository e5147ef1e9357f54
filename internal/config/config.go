// Package config provides YAML-based configuration loading for the game:
// window geometry, tick rate, sprite sizes, difficulty and spawn tuning and
// the texts shown by the frontends.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete game configuration.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	TickRate   int              `yaml:"tick_rate"`
	Debug      bool             `yaml:"debug"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Text       TextConfig       `yaml:"text"`
	TUI        TUIConfig        `yaml:"tui"`
}

// WindowConfig defines the simulation area in pixels.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig defines the ship sprite and its speed multiplier.
type PlayerConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	MoveSpeed float64 `yaml:"move_speed"` // Multiplier on the base speed of 3px/tick
}

// EnemyConfig defines the falling block sprite.
type EnemyConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines how often new blocks appear.
type SpawnConfig struct {
	Every      int `yaml:"every"`       // Ticks between spawns
	MaxEnemies int `yaml:"max_enemies"` // 0 = unbounded
}

// TextConfig holds the strings drawn by the frontends.
type TextConfig struct {
	Title         string   `yaml:"title"`
	PressAnyKey   string   `yaml:"press_any_key"`
	GameOverTitle string   `yaml:"game_over_title"`
	GameOverScore string   `yaml:"game_over_score"`
	GameOverTips  []string `yaml:"game_over_tips"`
}

// TUIConfig holds terminal frontend tuning.
type TUIConfig struct {
	// KeyHoldMS is how long a key counts as held after its last press event.
	// Terminals do not report key releases.
	KeyHoldMS int `yaml:"key_hold_ms"`
}

// Validate rejects configurations that would produce degenerate geometry.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.TickRate <= 0 {
		return invalid("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.Player.Width <= PlayerHitboxShrinkW || c.Player.Height <= PlayerHitboxShrinkH {
		return invalid("player sprite %dx%d is too small for its %dx%d hitbox inset",
			c.Player.Width, c.Player.Height, PlayerHitboxShrinkW, PlayerHitboxShrinkH)
	}
	if c.Player.Width > c.Window.Width || c.Player.Height > c.Window.Height {
		return invalid("player sprite %dx%d does not fit the %dx%d window",
			c.Player.Width, c.Player.Height, c.Window.Width, c.Window.Height)
	}
	if !nonNegative(c.Player.MoveSpeed) {
		return invalid("player.move_speed must be finite and not negative, got %g", c.Player.MoveSpeed)
	}
	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 {
		return invalid("enemy size must be positive, got %dx%d", c.Enemy.Width, c.Enemy.Height)
	}
	if c.Enemy.Width >= c.Window.Width {
		return invalid("enemy width %d leaves no horizontal spawn range in a %d wide window",
			c.Enemy.Width, c.Window.Width)
	}
	if c.Spawn.Every <= 0 {
		return invalid("spawn.every must be positive, got %d", c.Spawn.Every)
	}
	if c.Spawn.MaxEnemies < 0 {
		return invalid("spawn.max_enemies must not be negative, got %d", c.Spawn.MaxEnemies)
	}
	if c.TUI.KeyHoldMS < 0 {
		return invalid("tui.key_hold_ms must not be negative, got %d", c.TUI.KeyHoldMS)
	}
	return c.Difficulty.validate()
}

// nonNegative reports whether v is a finite number >= 0. NaN fails every
// ordered comparison, so it has to be ruled out explicitly.
func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// The player hitbox approximates the visible ship silhouette: its origin is
// offset into the sprite and its size shrunk from the sprite's.
const (
	PlayerHitboxOffsetX = 10
	PlayerHitboxOffsetY = 22
	PlayerHitboxShrinkW = 20
	PlayerHitboxShrinkH = 35
)
