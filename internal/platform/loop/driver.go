// Package loop drives a game one fixed tick at a time, independent of the
// frontend that collects input and draws frames. It owns restart handling,
// result persistence and sound cues so every frontend behaves the same.
package loop

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// ScoreSaver persists finished single-player scores.
// Implemented by storage.Store.
type ScoreSaver interface {
	SaveScore(gameID string, score int) (int64, error)
}

// SoundSink receives the events of every tick. Implemented by audio.Player.
type SoundSink interface {
	Play(events []core.Event)
}

// sideScorer is implemented by games with a left and a right side.
type sideScorer interface {
	Scores() (left, right int)
}

// Options configures a Driver. Every dependency is optional.
type Options struct {
	Runtime core.RuntimeConfig
	Scores  ScoreSaver
	Matches multiplayer.MatchResultSaver
	Sound   SoundSink
	Session multiplayer.SessionID
	Logger  *log.Logger
	Now     func() time.Time
	// Reseed picks the seed for each restart. Defaults to the wall clock.
	Reseed func() int64
}

// Driver advances a game and reacts to its results.
type Driver struct {
	game   registry.Game
	versus registry.VersusGame
	opts   Options

	match    *multiplayer.Match
	state    core.GameState
	recorded bool
	ticks    int
}

// New resets the game and prepares the first match.
func New(game registry.Game, opts Options) *Driver {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Reseed == nil {
		opts.Reseed = func() int64 { return time.Now().UnixNano() }
	}
	if opts.Session == "" {
		opts.Session = "local"
	}

	d := &Driver{game: game, opts: opts}
	d.versus, _ = game.(registry.VersusGame)
	d.start()
	return d
}

func (d *Driver) start() {
	d.game.Reset(d.opts.Runtime)
	d.state = d.game.State()
	d.recorded = false
	d.ticks = 0
	d.match = multiplayer.NewMatch(d.game.ID(), d.game.Mode(), d.opts.Session)
	d.opts.Logger.Debug("game started", "game", d.game.ID(), "seed", d.opts.Runtime.Seed, "match", d.match.ID())
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game {
	return d.game
}

// State returns the state after the last tick.
func (d *Driver) State() core.GameState {
	return d.state
}

// Versus reports whether input for both players is used.
func (d *Driver) Versus() bool {
	return d.versus != nil
}

// Runtime returns the current runtime configuration.
func (d *Driver) Runtime() core.RuntimeConfig {
	return d.opts.Runtime
}

// Resize records a new screen size. The simulation runs in field units, so
// the game keeps its state.
func (d *Driver) Resize(w, h int) {
	d.opts.Runtime.ScreenW = w
	d.opts.Runtime.ScreenH = h
}

// Restart begins a new game with a fresh seed.
func (d *Driver) Restart() {
	d.opts.Runtime.Seed = d.opts.Reseed()
	d.start()
}

// Tick advances the game by one step. After game over, Restart from
// either player starts a new game.
func (d *Driver) Tick(in core.MultiInputFrame) core.StepResult {
	if d.state.GameOver && in.Combined().Has(core.ActionRestart) {
		d.Restart()
		return core.StepResult{State: d.state}
	}

	var res core.StepResult
	if d.versus != nil {
		res = d.versus.StepMulti(in)
	} else {
		res = d.game.Step(in.Player1())
	}
	d.state = res.State
	d.ticks++

	if d.opts.Sound != nil {
		d.opts.Sound.Play(res.Events)
	}

	if d.state.GameOver && !d.recorded {
		d.record()
	}
	return res
}

// record persists the finished game once. Failures are logged; play goes on.
func (d *Driver) record() {
	d.recorded = true
	id := d.game.ID()
	d.opts.Logger.Info("game over", "game", id, "score", d.state.Score, "result", d.state.Winner, "ticks", d.ticks)

	if d.game.Mode() != multiplayer.MatchModeLocalVersus && d.opts.Scores != nil && d.state.Score > 0 {
		if _, err := d.opts.Scores.SaveScore(id, d.state.Score); err != nil {
			d.opts.Logger.Warn("could not save score", "game", id, "error", err)
		}
	}

	scorer, ok := d.game.(sideScorer)
	if !ok || d.opts.Matches == nil {
		return
	}
	left, right := scorer.Scores()
	result := d.match.Finish(left, right, d.opts.Now())
	if err := d.opts.Matches.SaveMatchResult(result); err != nil {
		d.opts.Logger.Warn("could not save match", "game", id, "match", result.MatchID, "error", err)
		return
	}
	d.opts.Logger.Debug("match saved", "game", id, "match", result.MatchID, "winner", result.Winner)
}

// Render draws the current frame.
func (d *Driver) Render(dst *core.Screen) {
	d.game.Render(dst)
}
