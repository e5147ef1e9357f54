package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-rock/internal/core"
	"github.com/vovakirdan/dodge-rock/internal/games/dodge"
)

// keyCodes maps Bubble Tea key strings to logical keys.
var keyCodes = map[string]core.Key{
	"up":        core.KeyUp,
	"down":      core.KeyDown,
	"left":      core.KeyLeft,
	"right":     core.KeyRight,
	"w":         core.KeyW,
	"a":         core.KeyA,
	"s":         core.KeyS,
	"d":         core.KeyD,
	"h":         core.KeyH,
	"j":         core.KeyJ,
	"k":         core.KeyK,
	"l":         core.KeyL,
	"x":         core.KeyX,
	"r":         core.KeyR,
	"t":         core.KeyT,
	"q":         core.KeyQ,
	"enter":     core.KeyReturn,
	"backspace": core.KeyBackspace,
	"esc":       core.KeyEscape,
	" ":         core.KeySpace,
	"f1":        core.KeyF1,
}

// translateKey turns a key message into the logical keys it presses.
// Terminals cannot report a bare shift, so shifted arrows and capital
// letters press the shift key alongside the base key. Unmapped keys come
// back as KeyUnknown so they still count as "any key".
func translateKey(msg tea.KeyMsg) []core.Key {
	s := msg.String()
	if k, ok := keyCodes[s]; ok {
		return []core.Key{k}
	}

	if base, ok := strings.CutPrefix(s, "shift+"); ok {
		if k, ok := keyCodes[base]; ok {
			return []core.Key{core.KeyLShift, k}
		}
	}

	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		if k, ok := keyCodes[strings.ToLower(s)]; ok {
			return []core.Key{core.KeyLShift, k}
		}
	}

	return []core.Key{core.KeyUnknown}
}

// KeyMap defines the key bindings shown in the help footer plus the
// frontend-only keys that never reach the simulation.
type KeyMap struct {
	Start      key.Binding
	Move       key.Binding
	Slow       key.Binding
	Restart    key.Binding
	ToTitle    key.Binding
	Quit       key.Binding
	DebugSpawn key.Binding
	Screenshot key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default bindings. The debug spawn key is only
// enabled in debug mode.
func DefaultKeyMap(debug bool) KeyMap {
	km := KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " "), // Any key starts; these are just for help
			key.WithHelp("any key", "start"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d", "h", "j", "k", "l"),
			key.WithHelp("arrows/wasd/hjkl", "move"),
		),
		Slow: key.NewBinding(
			key.WithKeys("x", "shift+up", "shift+down", "shift+left", "shift+right"),
			key.WithHelp("x/shift", "slow"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "play again"),
		),
		ToTitle: key.NewBinding(
			key.WithKeys("t", "backspace"),
			key.WithHelp("t", "title"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		DebugSpawn: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "spawn"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
	km.DebugSpawn.SetEnabled(debug)
	return km
}

// HelpFor returns the bindings worth showing in a scene.
func (k KeyMap) HelpFor(scene dodge.Scene) []key.Binding {
	switch scene {
	case dodge.SceneTitle:
		return []key.Binding{k.Start, k.ForceQuit}
	case dodge.SceneGameOver:
		return []key.Binding{k.Restart, k.ToTitle, k.Quit, k.Screenshot}
	default:
		return []key.Binding{k.Move, k.Slow, k.DebugSpawn, k.ForceQuit}
	}
}
