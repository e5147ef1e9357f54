package tui

import (
	"testing"

	"github.com/vovakirdan/dodge-rock/internal/core"
)

func TestHeldKeysReleaseAfterHold(t *testing.T) {
	h := newHeldKeys(250, 60) // 15 ticks

	if !h.press(core.KeyUp, 0) {
		t.Error("first press should report the key was up")
	}

	var released []core.Key
	release := func(k core.Key) { released = append(released, k) }

	for tick := uint64(1); tick < 15; tick++ {
		h.expire(tick, release)
	}
	if len(released) != 0 {
		t.Fatalf("released too early: %v", released)
	}

	h.expire(15, release)
	if len(released) != 1 || released[0] != core.KeyUp {
		t.Errorf("released = %v, expected [Up]", released)
	}
	if h.isHeld(core.KeyUp) {
		t.Error("released key should no longer be held")
	}
}

func TestHeldKeysRepeatExtendsHold(t *testing.T) {
	h := newHeldKeys(250, 60)
	h.press(core.KeyLeft, 0)

	if h.press(core.KeyLeft, 10) {
		t.Error("repeat should report the key was already held")
	}

	var released []core.Key
	release := func(k core.Key) { released = append(released, k) }

	h.expire(20, release)
	if len(released) != 0 {
		t.Errorf("repeat at tick 10 should keep the key until tick 25, released %v", released)
	}
	h.expire(25, release)
	if len(released) != 1 {
		t.Errorf("released = %v, expected one release at tick 25", released)
	}
}

func TestHeldKeysIndependent(t *testing.T) {
	h := newHeldKeys(100, 60) // 6 ticks
	h.press(core.KeyUp, 0)
	h.press(core.KeyLShift, 4)

	var released []core.Key
	h.expire(6, func(k core.Key) { released = append(released, k) })

	if len(released) != 1 || released[0] != core.KeyUp {
		t.Errorf("released = %v, expected only Up", released)
	}
	if !h.isHeld(core.KeyLShift) {
		t.Error("shift should still be held")
	}
}

func TestHeldKeysMinimumHold(t *testing.T) {
	h := newHeldKeys(0, 60)
	h.press(core.KeyR, 5)

	var released []core.Key
	h.expire(5, func(k core.Key) { released = append(released, k) })
	if len(released) != 0 {
		t.Error("a key is held for at least one tick")
	}
	h.expire(6, func(k core.Key) { released = append(released, k) })
	if len(released) != 1 {
		t.Error("zero hold should release on the next tick")
	}
}

func TestHeldKeysClear(t *testing.T) {
	h := newHeldKeys(250, 60)
	h.press(core.KeyT, 0)
	h.clear()

	called := false
	h.expire(100, func(core.Key) { called = true })
	if called {
		t.Error("cleared keys must not be released")
	}
}
