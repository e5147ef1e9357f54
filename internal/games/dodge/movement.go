package dodge

import "github.com/vovakirdan/dodge-rock/internal/core"

// Movement tuning, in pixels per tick.
const (
	baseSpeed     = 3.0 // Multiplied by the configured move speed
	slowModifier  = 0.6 // While the slow flag is held
	diagonalScale = 0.8 // Digital contribution when two or more directions are held

	// Enemies past the bottom edge by this much restart above the top edge
	// at the same distance.
	offscreenMargin = 50.0
)

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// keyAxis turns an opposed key pair into -1, 0 or +1.
func keyAxis(neg, pos bool) float64 {
	return -b2f(neg) + b2f(pos)
}

func axisUnit(v int16) float64 {
	return float64(v) / core.AxisUnit
}

// playerDisplacement computes this tick's player motion. The diagonal
// reduction only applies to the digital part; stick input passes through
// unscaled.
func playerDisplacement(in *core.InputState, moveSpeed float64) (dx, dy float64) {
	kx := keyAxis(in.Left, in.Right)
	ky := keyAxis(in.Up, in.Down)
	if in.ActiveDirections() >= 2 {
		kx *= diagonalScale
		ky *= diagonalScale
	}

	speed := baseSpeed * moveSpeed
	if in.Slow {
		speed *= slowModifier
	}

	dx = (kx + axisUnit(in.AxisLX)) * speed
	dy = (ky + axisUnit(in.AxisLY)) * speed
	return dx, dy
}

// movePlayer applies input to the player, keeps it inside the window and
// refreshes its hitbox.
func movePlayer(p *Player, in *core.InputState, sys *System) {
	dx, dy := playerDisplacement(in, sys.PlayerMoveSpeed)

	maxX := float64(sys.WindowW) - float64(p.Width)
	maxY := float64(sys.WindowH) - float64(p.Height)
	p.X = core.ClampF(p.X+dx, 0, maxX)
	p.Y = core.ClampF(p.Y+dy, 0, maxY)

	p.updateHitbox()
}

// moveEnemies drops every enemy by the current speed. Enemies that left the
// bottom of the window are recycled in place at a new column above the top.
func moveEnemies(a *Actor, sys *System, sp *Spawner) {
	limit := float64(sys.WindowH) + offscreenMargin

	for i := range a.Enemies {
		e := &a.Enemies[i]
		e.Y += 1.0 * sys.EnemySpeed
		if e.Y >= limit {
			e.X = sp.randomX()
			e.Y = -offscreenMargin
		}
		e.updateHitbox()
	}
}
