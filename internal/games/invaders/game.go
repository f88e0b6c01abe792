// Package invaders implements a Space Invaders-style shooter.
// The player's ship slides along the bottom of the field and shoots at a
// descending formation of enemies that fires back.
package invaders

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Result labels shown when the game ends.
const (
	LabelGameOver = "GAME OVER"
	LabelVictory  = "VICTORY!"
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

// Game implements the Invaders game logic.
type Game struct {
	ship         Ship
	bullets      []Bullet // Player bullets
	enemyBullets []Bullet
	formation    *Formation

	score      int
	lives      int
	gameOver   bool
	victory    bool
	paused     bool
	enemyTimer int // Ticks since the last enemy fire attempt
	tickCount  int

	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	fixedCfg   *config.InvadersConfig // Set by NewWithConfig; skips file loading
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	events     core.EventLog
	stars      []star
}

// New creates a new Invaders game instance.
// Configuration is loaded from disk on every Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Mode reports that invaders is a single-player game.
func (g *Game) Mode() multiplayer.MatchMode {
	return multiplayer.MatchModeSolo
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	field := g.cfg.Field
	p := g.cfg.Player
	g.ship = Ship{
		Rect:  core.NewRect(field.Width/2-p.Width/2, field.Height-p.BottomMargin, p.Width, p.Height),
		Speed: p.Speed,
	}
	g.bullets = nil
	g.enemyBullets = nil
	g.formation = NewFormation(g.cfg.Formation)

	g.score = 0
	g.lives = p.Lives
	g.gameOver = false
	g.victory = false
	g.paused = false
	g.enemyTimer = 0
	g.tickCount = 0
	g.events.Drain()
	g.stars = newStarfield(runtime.Seed, field.Width, field.Height)
}

func (g *Game) loadConfig() config.InvadersConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		log.Warn("config rejected, using defaults", "game", "invaders", "path", configPath, "error", err)
		cfg = config.DefaultInvadersConfig()
	}
	config.ApplyInvadersPreset(&cfg, difficultyPreset)
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver || g.victory {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.handleInput(in)
	g.ship.Tick()
	g.updateBullets()

	speed := g.difficulty.Speed(float64(g.cfg.Formation.SpeedX), g.score, g.tickCount)
	g.formation.Step(speed, g.cfg.Field.Width)

	g.enemyFire()
	g.updateEnemyBullets()
	g.collidePlayerBullets()
	g.collideEnemyBullets()
	g.checkInvasion()

	if !g.gameOver && len(g.formation.Enemies) == 0 {
		g.victory = true
		g.events.Emit(core.EventVictory)
	}

	return core.StepResult{State: g.State(), Events: g.events.Drain()}
}

// handleInput moves the ship and fires when allowed.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.ship.MoveLeft(g.cfg.Field.Width)
	}
	if in.Has(core.ActionRight) {
		g.ship.MoveRight(g.cfg.Field.Width)
	}
	if in.Has(core.ActionFire) && g.ship.CanShoot() {
		b := g.cfg.Bullets
		x := g.ship.Rect.X + g.ship.Rect.W/2
		g.bullets = append(g.bullets, Bullet{
			Rect: core.NewRect(x, g.ship.Rect.Y, b.Width, b.Height),
			VY:   -b.PlayerSpeed,
		})
		g.ship.Cooldown = g.cfg.Player.ShootCooldown
		g.events.Emit(core.EventShoot)
	}
}

// updateBullets moves player bullets and drops those above the field.
func (g *Game) updateBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.Update()
		if b.Rect.Y >= 0 {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// enemyFire makes a random enemy shoot once per interval, by chance.
func (g *Game) enemyFire() {
	g.enemyTimer++
	if g.enemyTimer <= g.cfg.EnemyFire.Interval || len(g.formation.Enemies) == 0 {
		return
	}
	g.enemyTimer = 0

	chance := g.difficulty.Chance(g.cfg.EnemyFire.Chance, g.score, g.tickCount)
	if g.rng.Float64() >= chance {
		return
	}

	shooter := g.formation.Enemies[g.rng.Intn(len(g.formation.Enemies))]
	b := g.cfg.Bullets
	g.enemyBullets = append(g.enemyBullets, Bullet{
		Rect: core.NewRect(shooter.Rect.X+shooter.Rect.W/2, shooter.Rect.Bottom(), b.Width, b.Height),
		VY:   b.EnemySpeed,
	})
	g.events.Emit(core.EventEnemyShoot)
}

// updateEnemyBullets moves enemy bullets and drops those below the field.
func (g *Game) updateEnemyBullets() {
	kept := g.enemyBullets[:0]
	for _, b := range g.enemyBullets {
		b.Update()
		if b.Rect.Y <= g.cfg.Field.Height {
			kept = append(kept, b)
		}
	}
	g.enemyBullets = kept
}

// collidePlayerBullets resolves hits. A bullet destroys at most one
// enemy and is consumed by it.
func (g *Game) collidePlayerBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		hit := -1
		for i, e := range g.formation.Enemies {
			if b.Rect.Intersects(e.Rect) {
				hit = i
				break
			}
		}
		if hit < 0 {
			kept = append(kept, b)
			continue
		}
		g.score += pointsFor(g.cfg.Formation.Points, g.formation.Enemies[hit].Type)
		g.formation.Remove(hit)
		g.events.Emit(core.EventEnemyHit)
	}
	g.bullets = kept
}

// collideEnemyBullets costs the player a life per hit.
func (g *Game) collideEnemyBullets() {
	kept := g.enemyBullets[:0]
	for _, b := range g.enemyBullets {
		if !b.Rect.Intersects(g.ship.Rect) {
			kept = append(kept, b)
			continue
		}
		if g.lives > 0 {
			g.lives--
		}
		g.events.Emit(core.EventPlayerHit)
	}
	g.enemyBullets = kept

	if g.lives == 0 && !g.gameOver {
		g.gameOver = true
		g.events.Emit(core.EventGameOver)
	}
}

// checkInvasion ends the game once the formation reaches the ship's row.
func (g *Game) checkInvasion() {
	if g.gameOver {
		return
	}
	if lowest := g.formation.Lowest(); lowest >= 0 && lowest >= g.ship.Rect.Y {
		g.gameOver = true
		g.events.Emit(core.EventGameOver)
	}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// EnemiesLeft returns how many enemies are still alive.
func (g *Game) EnemiesLeft() int {
	return len(g.formation.Enemies)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.victory,
		Paused:   g.paused,
	}
	switch {
	case g.victory:
		st.Winner = LabelVictory
	case g.gameOver:
		st.Winner = LabelGameOver
	}
	return st
}

// Register the game with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
