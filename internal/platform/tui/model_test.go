package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
	"github.com/vovakirdan/retro-arcade/internal/platform/loop"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// paddleGame is a tiny game that records input and ends on demand.
type paddleGame struct {
	mode   multiplayer.MatchMode
	inputs []core.InputFrame
	resets int
	over   bool
	paused bool
}

func (g *paddleGame) ID() string                  { return "paddle-test" }
func (g *paddleGame) Title() string               { return "Paddle Test" }
func (g *paddleGame) Mode() multiplayer.MatchMode { return g.mode }
func (g *paddleGame) Reset(core.RuntimeConfig)    { g.resets++; g.over = false }
func (g *paddleGame) Render(dst *core.Screen)     { dst.Clear(); dst.DrawText(0, 0, "PADDLE") }

func (g *paddleGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	return core.StepResult{State: g.State()}
}

func (g *paddleGame) State() core.GameState {
	return core.GameState{GameOver: g.over, Paused: g.paused}
}

func testOptions() loop.Options {
	return loop.Options{
		Runtime: core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1},
		Logger:  log.New(io.Discard),
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelKeyReachesGame(t *testing.T) {
	g := &paddleGame{mode: multiplayer.MatchModeVsCPU}
	m := NewModel(g, testOptions())

	m = update(t, m, runeKey('w'))
	m = update(t, m, TickMsg(time.Now()))

	if len(g.inputs) != 1 || !g.inputs[0].Has(core.ActionUp) {
		t.Fatalf("expected Up on first tick, got %+v", g.inputs)
	}

	// The key stays held for a few ticks, then releases
	for i := 0; i < loop.HoldTicks(60)+1; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	if last := g.inputs[len(g.inputs)-1]; last.Has(core.ActionUp) {
		t.Error("Up should be released once key repeats stop")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&paddleGame{}, testOptions())
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Error("q should quit the program")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &paddleGame{}
	m := NewModel(g, testOptions())
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize reset the game, resets = %d", g.resets)
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("view has %d lines, expected 30", len(lines))
	}
	if !strings.Contains(lines[0], "PADDLE") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestModelBackOnlyWhenEmbedded(t *testing.T) {
	g := &paddleGame{}
	m := NewModel(g, testOptions())
	g.over = true
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("standalone model has no menu to return to")
	}

	m.embedded = true
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc after game over should return to menu")
	}
}

func TestModelBackIgnoredWhilePlaying(t *testing.T) {
	m := NewModel(&paddleGame{}, testOptions())
	m.embedded = true
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("back should be ignored during play")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func init() {
	registry.Register("paddle-test", func() registry.Game {
		return &paddleGame{mode: multiplayer.MatchModeSolo}
	})
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60}
	s := NewSessionModel(nil, cfg, "alice")
	s.logger = log.New(io.Discard)

	// Move the cursor to the test game
	for i, item := range s.menu.items {
		if item.GameID == "paddle-test" {
			s.menu.cursor = i
		}
	}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.InGame() {
		t.Fatal("enter should start the selected game")
	}
	if s.game.driver.Game().ID() != "paddle-test" {
		t.Fatalf("started %q", s.game.driver.Game().ID())
	}

	next, _ = s.Update(runeKey('p'))
	s = next.(SessionModel)
	next, _ = s.Update(TickMsg(time.Now()))
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)

	if s.InGame() {
		t.Error("esc while paused should return to the menu")
	}
	if !strings.Contains(s.View(), "Paddle Test") {
		t.Error("menu should list the games again")
	}
}
