// Package pong implements the paddle games: Pong against a CPU opponent
// and two-player Tennis on one keyboard. Both share the same court.
package pong

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// match is the state and bookkeeping common to both variants.
type match struct {
	court     *Court
	paused    bool
	tickCount int

	runtime  core.RuntimeConfig
	cfg      config.PongConfig
	fixedCfg *config.PongConfig
	events   core.EventLog

	names  [2]string // HUD names, left then right
	labels [2]string // Win labels, left then right
	hint   string    // Controls footer
}

func (m *match) reset(runtime core.RuntimeConfig) {
	m.runtime = runtime
	m.cfg = m.loadConfig()
	m.events.Drain()
	m.court = NewCourt(m.cfg, &m.events)
	m.paused = false
	m.tickCount = 0
}

func (m *match) loadConfig() config.PongConfig {
	if m.fixedCfg != nil {
		return *m.fixedCfg
	}
	cfg, err := config.LoadPong(configPath)
	if err != nil {
		log.Warn("config rejected, using defaults", "game", "pong", "path", configPath, "error", err)
		cfg = config.DefaultPongConfig()
	}
	config.ApplyPongPreset(&cfg, difficultyPreset)
	return cfg
}

// begin handles the pause toggle and reports whether the tick should run.
func (m *match) begin(pause bool) bool {
	if m.court.Over() {
		return false
	}
	if pause {
		m.paused = !m.paused
	}
	if m.paused {
		return false
	}
	m.tickCount++
	return true
}

func (m *match) result() core.StepResult {
	return core.StepResult{State: m.State(), Events: m.events.Drain()}
}

// Scores returns the current points of the left and right side.
func (m *match) Scores() (left, right int) {
	return m.court.ScoreLeft, m.court.ScoreRight
}

// Court exposes the simulation for rendering and tests.
func (m *match) Court() *Court {
	return m.court
}

// State returns the current game state. Score is the left side's points.
func (m *match) State() core.GameState {
	st := core.GameState{
		Score:    m.court.ScoreLeft,
		GameOver: m.court.Over(),
		Paused:   m.paused,
	}
	switch m.court.Winner() {
	case SideLeft:
		st.Winner = m.labels[0]
	case SideRight:
		st.Winner = m.labels[1]
	}
	return st
}

// Game is Pong against the CPU. The human plays the left paddle.
type Game struct {
	match
	cpu        CPU
	difficulty *config.DifficultyManager
}

// New creates a new Pong game instance.
func New() *Game {
	g := &Game{}
	g.names = [2]string{"YOU", "CPU"}
	g.labels = [2]string{"YOU WIN!", "CPU WINS!"}
	g.hint = "W/S or ↑/↓ move  P pause  Q quit"
	return g
}

// NewWithConfig creates a Pong game that always uses cfg.
func NewWithConfig(cfg config.PongConfig) *Game {
	g := New()
	g.fixedCfg = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong vs CPU"
}

// Mode reports that the right paddle is played by the computer.
func (g *Game) Mode() multiplayer.MatchMode {
	return multiplayer.MatchModeVsCPU
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.reset(runtime)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.cpu = CPU{
		Speed:    g.cfg.CPU.Speed,
		DeadZone: g.cfg.CPU.DeadZone,
		Skill:    g.cfg.CPU.MinSkill,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.begin(in.Has(core.ActionPause)) {
		return g.result()
	}

	if in.Has(core.ActionUp) {
		g.court.Left.MoveUp()
	}
	if in.Has(core.ActionDown) {
		g.court.Left.MoveDown()
	}

	g.cpu.Skill = g.difficulty.Lerp(g.cfg.CPU.MinSkill, g.cfg.CPU.MaxSkill, g.court.ScoreLeft, g.tickCount)
	g.cpu.Update(&g.court.Right, g.court.Ball, g.cfg.Field.Height)

	g.court.Advance()
	return g.result()
}

// Tennis is two-player Pong: Player 1 on the left, Player 2 on the right.
type Tennis struct {
	match
}

// NewVersus creates a new two-player Tennis game instance.
func NewVersus() *Tennis {
	t := &Tennis{}
	t.names = [2]string{"P1", "P2"}
	t.labels = [2]string{"LEFT PLAYER WINS!", "RIGHT PLAYER WINS!"}
	t.hint = "P1 W/S  P2 ↑/↓  P pause  Q quit"
	return t
}

// NewVersusWithConfig creates a Tennis game that always uses cfg.
func NewVersusWithConfig(cfg config.PongConfig) *Tennis {
	t := NewVersus()
	t.fixedCfg = &cfg
	return t
}

// ID returns the unique identifier for this game.
func (t *Tennis) ID() string {
	return "tennis"
}

// Title returns the display name for this game.
func (t *Tennis) Title() string {
	return "Tennis (2 Players)"
}

// Mode reports that two humans share the keyboard.
func (t *Tennis) Mode() multiplayer.MatchMode {
	return multiplayer.MatchModeLocalVersus
}

// Reset initializes or restarts the game.
func (t *Tennis) Reset(runtime core.RuntimeConfig) {
	t.reset(runtime)
}

// Step treats the frame as Player 1 input only.
func (t *Tennis) Step(in core.InputFrame) core.StepResult {
	multi := core.NewMultiInputFrame()
	multi.SetPlayer(core.Player1, in)
	return t.StepMulti(multi)
}

// StepMulti advances the game using input from both players.
func (t *Tennis) StepMulti(in core.MultiInputFrame) core.StepResult {
	if !t.begin(in.Combined().Has(core.ActionPause)) {
		return t.result()
	}

	p1, p2 := in.Player1(), in.Player2()
	if p1.Has(core.ActionUp) {
		t.court.Left.MoveUp()
	}
	if p1.Has(core.ActionDown) {
		t.court.Left.MoveDown()
	}
	if p2.Has(core.ActionUp) {
		t.court.Right.MoveUp()
	}
	if p2.Has(core.ActionDown) {
		t.court.Right.MoveDown()
	}

	t.court.Advance()
	return t.result()
}

// Register the games with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
	registry.Register("tennis", func() registry.Game {
		return NewVersus()
	})
}
