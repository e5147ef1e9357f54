package dodge

import "github.com/vovakirdan/dodge-rock/internal/config"

// Difficulty drives the simulation clock: the frame counter, elapsed seconds
// and the enemy speed ramp. All timing is in fixed ticks, never wall-clock.
type Difficulty struct {
	cfg      config.DifficultyConfig
	tickRate uint64
}

// NewDifficulty creates a clock for the given ramp and tick rate.
func NewDifficulty(cfg config.DifficultyConfig, tickRate int) *Difficulty {
	return &Difficulty{cfg: cfg, tickRate: uint64(tickRate)}
}

// InitialSpeed is the enemy speed at the start of a session.
func (d *Difficulty) InitialSpeed() float64 {
	return d.cfg.InitialSpeed
}

// Advance counts one tick. It returns true when the enemy speed was ramped.
func (d *Difficulty) Advance(sys *System) bool {
	sys.Frame++

	if sys.Frame%d.tickRate == 0 {
		sys.Seconds++
	}

	if sys.Frame%uint64(d.cfg.CheckEvery) != 0 {
		return false
	}
	step := d.cfg.StepFor(sys.EnemySpeed)
	sys.EnemySpeed += step
	return step > 0
}
