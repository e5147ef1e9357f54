package tui

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/dodge-rock/internal/core"
)

// heldKeys emulates key releases. Terminals only report presses, repeated
// while a key is held, so a key counts as released once no press for it has
// arrived within the hold window.
type heldKeys struct {
	holdTicks uint64
	lastSeen  *intmap.Map[core.Key, uint64] // Tick of the latest press
}

func newHeldKeys(holdMS, tickRate int) *heldKeys {
	ticks := uint64(holdMS * tickRate / 1000)
	if ticks < 1 {
		ticks = 1
	}
	return &heldKeys{
		holdTicks: ticks,
		lastSeen:  intmap.New[core.Key, uint64](int(core.KeyCount)),
	}
}

// press records a press at tick. It reports whether the key was up before.
func (h *heldKeys) press(k core.Key, tick uint64) bool {
	_, held := h.lastSeen.Get(k)
	h.lastSeen.Put(k, tick)
	return !held
}

// expire calls release for every key whose hold window has run out at tick.
func (h *heldKeys) expire(tick uint64, release func(core.Key)) {
	if h.lastSeen.Len() == 0 {
		return
	}
	for k := core.KeyUnknown; k < core.KeyCount; k++ {
		seen, ok := h.lastSeen.Get(k)
		if !ok || tick-seen < h.holdTicks {
			continue
		}
		h.lastSeen.Del(k)
		release(k)
	}
}

func (h *heldKeys) isHeld(k core.Key) bool {
	_, ok := h.lastSeen.Get(k)
	return ok
}

func (h *heldKeys) clear() {
	h.lastSeen.Clear()
}
