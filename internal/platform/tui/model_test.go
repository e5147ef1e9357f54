package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-rock/internal/config"
	"github.com/vovakirdan/dodge-rock/internal/core"
	"github.com/vovakirdan/dodge-rock/internal/games/dodge"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	g, err := dodge.New(config.DefaultConfig(), 42)
	if err != nil {
		t.Fatalf("dodge.New: %v", err)
	}
	rc := core.DefaultRuntimeConfig()
	return NewModel(g, rc, log.New(io.Discard))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartsOnKey(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, TickMsg{})
	if m.game.Scene() != dodge.SceneTitle {
		t.Fatalf("scene = %s, expected title", m.game.Scene())
	}

	m, _ = update(t, m, runes("w"))
	if !m.input.Up || !m.input.AnyKey {
		t.Errorf("key press should reach the input snapshot: %+v", *m.input)
	}

	m, cmd := update(t, m, TickMsg{})
	if m.game.Scene() != dodge.SceneMainPlay {
		t.Errorf("scene = %s, expected main-play", m.game.Scene())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelReleasesKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("l"))

	// 250ms at 60 ticks per second
	for i := 0; i < 15; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if m.input.Right {
		t.Error("key should be released after the hold window")
	}
}

func TestModelForceQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelQuitFromGameOver(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("w"))

	for i := 0; i < 100000 && m.game.Scene() != dodge.SceneGameOver; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if m.game.Scene() != dodge.SceneGameOver {
		t.Fatal("game never ended")
	}

	m, _ = update(t, m, runes("q"))
	_, cmd := update(t, m, TickMsg{})
	if !isQuit(cmd) {
		t.Error("q on the game over screen should quit")
	}
}

func TestModelGameOverShowsScore(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("w"))

	for i := 0; i < 100000 && m.game.Scene() != dodge.SceneGameOver; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if m.game.Scene() != dodge.SceneGameOver {
		t.Fatal("game never ended")
	}

	want := "score " + dodge.FormatScore(m.game.System().Frame)
	for i := 0; i < 2; i++ {
		if view := m.View(); !strings.Contains(view, want) {
			t.Errorf("game over view should show %q, got:\n%s", want, view)
		}
	}
	if !m.game.System().IsScoreWritten {
		t.Error("drawing the game over screen should write the score")
	}
}

func TestModelViewShowsScene(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "DODGE ROCK") {
		t.Errorf("title view should show the title, got:\n%s", view)
	}
	if !strings.Contains(view, "any key") {
		t.Error("title view should show the help footer")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 40-footerLines {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 40-footerLines)
	}
}

func TestScreenshotTextTrimsRows(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawTextColored(1, 0, "ab", core.ColorTitle)
	s.FillRect(0, 2, 8, 1, '#', core.ColorBlock)

	got := screenshotText(s)
	want := " ab\n\n########\n"
	if got != want {
		t.Errorf("screenshotText() = %q, expected %q", got, want)
	}
}
