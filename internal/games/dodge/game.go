// Package dodge implements the Dodge Rock simulation: a ship dodges blocks
// that fall ever faster and spawn ever more often.
//
// The package is a pure fixed-timestep state machine. A platform layer owns
// the loop, writes input into a core.InputState, calls Step once per tick and
// reads the state back for drawing.
package dodge

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-rock/internal/config"
	"github.com/vovakirdan/dodge-rock/internal/core"
)

// Scene is one of the mutually exclusive top-level modes.
type Scene int

const (
	SceneTitle Scene = iota
	SceneMainPlay
	SceneGameOver
)

func (s Scene) String() string {
	switch s {
	case SceneTitle:
		return "title"
	case SceneMainPlay:
		return "main-play"
	case SceneGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// System holds the simulation-wide scalars. It is rebuilt from configuration
// on every reset; the window size never changes.
type System struct {
	WindowW, WindowH int
	Frame            uint64 // Ticks spent in the current session
	Seconds          uint64

	IsTitle        bool
	IsGameOver     bool
	IsScoreWritten bool

	PlayerMoveSpeed float64
	EnemySpeed      float64
}

// StepResult describes what a tick did to the scene.
type StepResult struct {
	Scene        Scene
	Transitioned bool
	Quit         bool // The player asked to leave from the game over screen
}

// Game is the orchestrator. It owns the actors, the clock and the spawner.
type Game struct {
	cfg      config.Config
	template Template
	clock    *Difficulty
	spawner  *Spawner

	sys   System
	actor Actor

	debugHeld bool // DebugSpawn state on the previous tick
	logger    *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New validates the configuration and builds a game in the title scene with
// a fresh session already prepared.
func New(cfg config.Config, seed int64, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dodge: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		template: NewTemplate(cfg),
		clock:    NewDifficulty(cfg.Difficulty, cfg.TickRate),
		spawner:  NewSpawner(cfg, seed),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Reset()
	g.sys.IsTitle = true

	g.logger.Info("game created",
		"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"tick_rate", cfg.TickRate,
		"seed", seed,
		"debug", cfg.Debug,
	)
	return g, nil
}

func newSystem(cfg config.Config, initialSpeed float64) System {
	return System{
		WindowW:         cfg.Window.Width,
		WindowH:         cfg.Window.Height,
		PlayerMoveSpeed: cfg.Player.MoveSpeed,
		EnemySpeed:      initialSpeed,
	}
}

// Reset starts a new session: counters, speed and scene flags go back to
// their initial values, the player returns to its spawn point and the enemy
// pool is replaced by a single fresh enemy above the window.
func (g *Game) Reset() {
	g.sys = newSystem(g.cfg, g.clock.InitialSpeed())
	g.actor = g.template.newActor()
	g.debugHeld = false
	g.spawner.Spawn(&g.actor, -offscreenMargin)
}

// Step advances the simulation by one tick in whichever scene is active.
func (g *Game) Step(in *core.InputState) StepResult {
	before := g.Scene()

	var quit bool
	switch before {
	case SceneTitle:
		g.UpdateTitle(in)
	case SceneMainPlay:
		g.UpdateMainPlay(in)
	case SceneGameOver:
		quit = g.UpdateGameOver(in)
	}

	after := g.Scene()
	if after != before {
		g.logger.Debug("scene changed", "from", before, "to", after, "frame", g.sys.Frame)
	}
	return StepResult{Scene: after, Transitioned: after != before, Quit: quit}
}

// UpdateTitle waits for any key. The session prepared by the last reset is
// used as is.
func (g *Game) UpdateTitle(in *core.InputState) {
	if in.AnyKey {
		g.sys.IsTitle = false
	}
}

// UpdateMainPlay runs one tick of play.
func (g *Game) UpdateMainPlay(in *core.InputState) {
	if g.clock.Advance(&g.sys) {
		g.logger.Debug("speed up", "frame", g.sys.Frame, "speed", g.sys.EnemySpeed)
	}

	movePlayer(&g.actor.Player, in, &g.sys)
	moveEnemies(&g.actor, &g.sys, g.spawner)

	g.spawner.Tick(g.sys.Frame, &g.actor)
	if g.cfg.Debug {
		if in.DebugSpawn && !g.debugHeld && g.spawner.Spawn(&g.actor, 0) {
			g.logger.Debug("debug spawn", "enemies", len(g.actor.Enemies))
		}
		g.debugHeld = in.DebugSpawn
	}

	if anyCollision(g.actor.Player.Hitbox, g.actor.Enemies) {
		g.sys.IsGameOver = true
		g.sys.IsScoreWritten = false
		g.logger.Info("game over", "frames", g.sys.Frame, "seconds", g.sys.Seconds, "enemies", len(g.actor.Enemies))
	}
}

// UpdateGameOver handles the exits from the game over screen. Restart wins
// over going back to the title, which wins over quitting. It returns true
// when the player chose to quit.
func (g *Game) UpdateGameOver(in *core.InputState) bool {
	switch {
	case in.Restart:
		g.Reset()
	case in.ToTitle:
		g.Reset()
		in.Reset()
		g.sys.IsTitle = true
	case in.Quit:
		return true
	}
	return false
}

// Scene returns the active scene.
func (g *Game) Scene() Scene {
	switch {
	case g.sys.IsTitle:
		return SceneTitle
	case g.sys.IsGameOver:
		return SceneGameOver
	default:
		return SceneMainPlay
	}
}

// WriteScore returns the frame count of the finished session. The first call
// in each game over episode marks the score written and reports fresh.
func (g *Game) WriteScore() (frames uint64, fresh bool) {
	if !g.sys.IsGameOver {
		return g.sys.Frame, false
	}
	fresh = !g.sys.IsScoreWritten
	g.sys.IsScoreWritten = true
	return g.sys.Frame, fresh
}

// FormatScore renders a score the way the game over screen shows it.
func FormatScore(frames uint64) string {
	return fmt.Sprintf("**%d**", frames)
}

// Player returns a copy of the player state.
func (g *Game) Player() Player {
	return g.actor.Player
}

// Enemies returns the enemy pool. Callers must not modify it.
func (g *Game) Enemies() []Enemy {
	return g.actor.Enemies
}

// System returns a copy of the simulation scalars.
func (g *Game) System() System {
	return g.sys
}

// Template returns the prototype the actors are built from.
func (g *Game) Template() Template {
	return g.template
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}
