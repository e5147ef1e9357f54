package dodge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dodge-rock/internal/config"
	"github.com/vovakirdan/dodge-rock/internal/core"
)

func TestSpawnerTick(t *testing.T) {
	cfg := config.DefaultConfig()
	sp := NewSpawner(cfg, 42)
	a := NewTemplate(cfg).newActor()

	for frame := uint64(1); frame < 240; frame++ {
		require.False(t, sp.Tick(frame, &a), "frame %d", frame)
	}
	assert.Empty(t, a.Enemies)

	assert.True(t, sp.Tick(240, &a))
	require.Len(t, a.Enemies, 1)

	e := a.Enemies[0]
	assert.Equal(t, -50.0, e.Y)
	assert.Equal(t, uint32(32), e.Width)
	assert.Equal(t, core.NewRect(e.X, -50, 32, 32), e.Hitbox)

	assert.True(t, sp.Tick(480, &a))
	assert.Len(t, a.Enemies, 2)
}

func TestSpawnerColumnsStayInRange(t *testing.T) {
	cfg := config.DefaultConfig()
	sp := NewSpawner(cfg, 7)
	limit := float64(cfg.Window.Width - cfg.Enemy.Width)

	for i := 0; i < 10000; i++ {
		x := sp.randomX()
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, limit)
	}
}

func TestSpawnerSeedIsDeterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	a, b := NewSpawner(cfg, 99), NewSpawner(cfg, 99)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.randomX(), b.randomX())
	}
}

func TestSpawnerCap(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Spawn.MaxEnemies = 2
	sp := NewSpawner(cfg, 1)
	a := NewTemplate(cfg).newActor()

	assert.True(t, sp.Spawn(&a, 0))
	assert.True(t, sp.Spawn(&a, 0))
	assert.False(t, sp.Spawn(&a, 0))
	assert.False(t, sp.Tick(240, &a))
	assert.Len(t, a.Enemies, 2)
}

func TestAnyCollision(t *testing.T) {
	tpl := NewTemplate(config.DefaultConfig())
	player := core.NewRect(0, 0, 10, 10)

	assert.False(t, anyCollision(player, nil))

	enemies := []Enemy{
		tpl.newEnemy(20, 20),
		tpl.newEnemy(100, 0),
	}
	assert.False(t, anyCollision(player, enemies))

	enemies = append(enemies, tpl.newEnemy(5, 5))
	assert.True(t, anyCollision(player, enemies))

	// Touching edges are not a hit
	assert.False(t, anyCollision(player, []Enemy{tpl.newEnemy(10, 0)}))
}
