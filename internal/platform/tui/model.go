package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-rock/internal/config"
	"github.com/vovakirdan/dodge-rock/internal/core"
	"github.com/vovakirdan/dodge-rock/internal/games/dodge"
)

// footerLines is the height reserved below the playfield for the help line.
const footerLines = 1

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *dodge.Game
	input    *core.InputState
	held     *heldKeys
	screen   *core.Screen
	score    *dodge.ScoreCard
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	tickRate int
	tick     uint64
	quitting bool
}

// NewModel creates a model for g drawn on a terminal of the given size.
func NewModel(g *dodge.Game, rc core.RuntimeConfig, logger *log.Logger) Model {
	cfg := g.Config()
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		game:     g,
		input:    core.NewInputState(),
		held:     newHeldKeys(cfg.TUI.KeyHoldMS, cfg.TickRate),
		screen:   core.NewScreen(rc.ScreenW, core.Max(rc.ScreenH-footerLines, 3)),
		score:    dodge.NewScoreCard(logger),
		keys:     DefaultKeyMap(cfg.Debug),
		help:     h,
		logger:   logger,
		tickRate: cfg.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-footerLines, 3))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey feeds key presses into the input snapshot. Releases are
// synthesised by the held-key tracker on later ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	for _, code := range translateKey(msg) {
		m.held.press(code, m.tick)
		m.input.ApplyKey(code, true)
	}
	return m, nil
}

// handleTick releases expired keys and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	m.held.expire(m.tick, func(code core.Key) {
		m.input.ApplyKey(code, false)
	})

	res := m.game.Step(m.input)
	if res.Quit {
		m.logger.Info("quit from game over", "frames", m.game.System().Frame)
		m.quitting = true
		return m, tea.Quit
	}
	// The simulation cleared the input; forget the keys that caused it too
	if res.Transitioned && res.Scene == dodge.SceneTitle {
		m.held.clear()
	}

	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	Draw(m.screen, m.game, m.score)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("dodgerock_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(screenshotText(m.screen)), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// screenshotText is the screen as plain text with trailing blanks trimmed
// from every row.
func screenshotText(s *core.Screen) string {
	var sb strings.Builder
	for y := 0; y < s.Height(); y++ {
		sb.WriteString(strings.TrimRight(s.Row(y), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.game, m.score)
	return RenderScreen(m.screen) + "\n" + m.help.ShortHelpView(m.keys.HelpFor(m.game.Scene()))
}

// Run starts the Bubble Tea program for g and blocks until it exits.
func Run(g *dodge.Game, rc core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(g, rc, logger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
