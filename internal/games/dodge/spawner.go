package dodge

import (
	"math/rand"

	"github.com/vovakirdan/dodge-rock/internal/config"
)

// Spawner adds enemies on a fixed tick interval and owns the random source
// used to pick spawn columns.
type Spawner struct {
	every      uint64
	maxEnemies int // 0 = unbounded
	spanX      float64
	rng        *rand.Rand
}

// NewSpawner creates a spawner for the configured interval and window.
// The same seed always yields the same sequence of spawn columns.
func NewSpawner(cfg config.Config, seed int64) *Spawner {
	return &Spawner{
		every:      uint64(cfg.Spawn.Every),
		maxEnemies: cfg.Spawn.MaxEnemies,
		spanX:      float64(cfg.Window.Width - cfg.Enemy.Width),
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// randomX returns a column in [0, window_w - enemy_w).
func (s *Spawner) randomX() float64 {
	return s.rng.Float64() * s.spanX
}

func (s *Spawner) full(a *Actor) bool {
	return s.maxEnemies > 0 && len(a.Enemies) >= s.maxEnemies
}

// Spawn appends one enemy at a random column and the given height.
// It reports false when the pool is capped.
func (s *Spawner) Spawn(a *Actor, y float64) bool {
	if s.full(a) {
		return false
	}
	a.addEnemy(s.randomX(), y)
	return true
}

// Tick spawns an enemy above the window on frames that are a multiple of the
// spawn interval.
func (s *Spawner) Tick(frame uint64, a *Actor) bool {
	if frame%s.every != 0 {
		return false
	}
	return s.Spawn(a, -offscreenMargin)
}
