package dodge

import "github.com/vovakirdan/dodge-rock/internal/core"

// anyCollision reports whether any enemy overlaps the player hitbox.
// The only effect of a hit is a flag, so the scan stops at the first one.
func anyCollision(player core.Rect, enemies []Enemy) bool {
	for i := range enemies {
		if enemies[i].Hitbox.Intersects(player) {
			return true
		}
	}
	return false
}
