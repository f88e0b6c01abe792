// Package tui is the Bubble Tea frontend: the game model, the game picker
// menu, the scoreboard and the SSH server that hosts them.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/platform/loop"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// TickMsg advances the simulation by one step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	driver   *loop.Driver
	screen   *core.Screen
	keys     *KeyMapper
	input    *loop.HeldInput
	tickRate int
	quitting bool

	// Inside an SSH session Back leaves the game instead of quitting.
	embedded   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts loop.Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	opts.Runtime = cfg

	return Model{
		driver:   loop.New(game, opts),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     NewKeyMapper(game.Mode()),
		input:    loop.NewHeldInput(loop.HoldTicks(cfg.TickRate)),
		tickRate: cfg.TickRate,
	}
}

// Init starts the tick loop. The driver has already reset the game.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.driver.Resize(msg.Width, msg.Height)
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.driver.Tick(m.input.Frame())
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	b, ok, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if !ok {
		return m, nil
	}

	if b.Action == core.ActionBack {
		st := m.driver.State()
		if m.embedded && (st.GameOver || st.Paused) {
			m.backToMenu = true
		}
		return m, nil
	}

	m.input.Press(b)
	return m, nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the state of the running game.
func (m Model) State() core.GameState {
	return m.driver.State()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.driver.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.driver.Game().ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.driver.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, opts loop.Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
