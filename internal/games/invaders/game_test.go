package invaders

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// quietConfig returns the default config with enemy fire and difficulty
// progression turned off, so tests control every bullet.
func quietConfig() config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.EnemyFire.Chance = 0
	cfg.Difficulty.Enabled = false
	return cfg
}

func newTestGame(t *testing.T, cfg config.InvadersConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func hasEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func TestResetLayout(t *testing.T) {
	g := newTestGame(t, quietConfig())

	if g.ship.Rect != core.NewRect(375, 550, 50, 30) {
		t.Errorf("ship = %+v, expected (375,550) 50x30", g.ship.Rect)
	}
	if g.EnemiesLeft() != 50 {
		t.Errorf("EnemiesLeft() = %d, expected 50", g.EnemiesLeft())
	}
	if g.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", g.Lives())
	}

	first := g.formation.Enemies[0]
	last := g.formation.Enemies[49]
	if first.Rect != core.NewRect(80, 50, 40, 30) || first.Type != 0 {
		t.Errorf("first enemy = %+v", first)
	}
	if last.Rect != core.NewRect(620, 250, 40, 30) || last.Type != 2 {
		t.Errorf("last enemy = %+v", last)
	}
}

func TestShipClampedToField(t *testing.T) {
	g := newTestGame(t, quietConfig())

	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame(core.ActionLeft))
	}
	if g.ship.Rect.X != 0 {
		t.Errorf("ship X = %d after moving left, expected 0", g.ship.Rect.X)
	}

	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame(core.ActionRight))
	}
	if g.ship.Rect.X != 750 {
		t.Errorf("ship X = %d after moving right, expected 750", g.ship.Rect.X)
	}
}

func TestShootCooldown(t *testing.T) {
	g := newTestGame(t, quietConfig())

	shots := 0
	for i := 0; i < 31; i++ {
		res := g.Step(core.NewInputFrame(core.ActionFire))
		if hasEvent(res.Events, core.EventShoot) {
			shots++
		}
	}

	// Shots on ticks 1, 16 and 31
	if shots != 3 {
		t.Errorf("shots = %d with fire held for 31 ticks, expected 3", shots)
	}
}

func TestBulletSpawnPosition(t *testing.T) {
	g := newTestGame(t, quietConfig())

	g.Step(core.NewInputFrame(core.ActionFire))
	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(g.bullets))
	}
	b := g.bullets[0]
	// Spawned at the ship's top center, then advanced once
	if b.Rect.X != 400 || b.Rect.Y != 542 || b.VY != -8 {
		t.Errorf("bullet = %+v, expected x=400 y=542 vy=-8", b)
	}
}

func TestBulletLeavesField(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.bullets = []Bullet{{Rect: core.NewRect(5, 4, 3, 10), VY: -8}}

	g.Step(core.NewInputFrame())
	if len(g.bullets) != 0 {
		t.Errorf("bullet above the field should be removed, got %+v", g.bullets)
	}
}

func TestBulletHitsExactlyOneEnemy(t *testing.T) {
	g := newTestGame(t, quietConfig())

	// Wide enough to overlap the first two enemies of the top row
	g.bullets = []Bullet{{Rect: core.NewRect(100, 60, 60, 10), VY: -8}}

	res := g.Step(core.NewInputFrame())

	if g.EnemiesLeft() != 49 {
		t.Errorf("EnemiesLeft() = %d, expected 49", g.EnemiesLeft())
	}
	if len(g.bullets) != 0 {
		t.Errorf("bullet should be consumed, got %d left", len(g.bullets))
	}
	if res.State.Score != 10 {
		t.Errorf("Score = %d, expected 10 for a top-row enemy", res.State.Score)
	}
	if !hasEvent(res.Events, core.EventEnemyHit) {
		t.Error("expected EnemyHit event")
	}
}

func TestEnemyPointsByRow(t *testing.T) {
	tests := []struct {
		row      int
		expected int
	}{
		{0, 10}, {1, 10}, {2, 20}, {3, 20}, {4, 30},
	}

	for _, tc := range tests {
		g := newTestGame(t, quietConfig())
		target := g.formation.Enemies[tc.row*10]
		g.bullets = []Bullet{{Rect: core.NewRect(target.Rect.X+10, target.Rect.Y+10, 3, 10), VY: -8}}

		res := g.Step(core.NewInputFrame())
		if res.State.Score != tc.expected {
			t.Errorf("row %d: Score = %d, expected %d", tc.row, res.State.Score, tc.expected)
		}
	}
}

func TestFormationDropsAndReverses(t *testing.T) {
	f := NewFormation(quietConfig().Formation)

	// Rightmost enemy starts at x=620 and touches x=760 after 140 steps
	for i := 0; i < 139; i++ {
		if f.Step(1, 800) {
			t.Fatalf("unexpected drop at step %d", i+1)
		}
	}
	if !f.Step(1, 800) {
		t.Fatal("expected drop when the formation reaches the right edge")
	}
	if f.Direction() != -1 {
		t.Errorf("Direction() = %d after drop, expected -1", f.Direction())
	}
	if f.Enemies[0].Rect.Y != 70 {
		t.Errorf("top row Y = %d after drop, expected 70", f.Enemies[0].Rect.Y)
	}

	f.Step(1, 800)
	if f.Enemies[0].Rect.X != 219 {
		t.Errorf("first enemy X = %d after reversing, expected 219", f.Enemies[0].Rect.X)
	}
}

func TestFormationFractionalSpeed(t *testing.T) {
	f := NewFormation(quietConfig().Formation)

	f.Step(1.5, 800)
	f.Step(1.5, 800)
	if f.Enemies[0].Rect.X != 83 {
		t.Errorf("X = %d after two 1.5 steps, expected 83", f.Enemies[0].Rect.X)
	}
}

func TestEnemyBulletCostsLife(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.enemyBullets = []Bullet{{Rect: core.NewRect(390, 540, 3, 10), VY: 4}}

	res := g.Step(core.NewInputFrame())
	if g.Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", g.Lives())
	}
	if len(g.enemyBullets) != 0 {
		t.Error("enemy bullet should be removed on hit")
	}
	if !hasEvent(res.Events, core.EventPlayerHit) || res.State.GameOver {
		t.Errorf("expected PlayerHit without game over, got %+v", res)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.Lives = 1
	g := newTestGame(t, cfg)
	g.enemyBullets = []Bullet{
		{Rect: core.NewRect(390, 540, 3, 10), VY: 4},
		{Rect: core.NewRect(400, 545, 3, 10), VY: 4},
	}

	res := g.Step(core.NewInputFrame())
	if g.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0 (never negative)", g.Lives())
	}
	if !res.State.GameOver || res.State.Winner != LabelGameOver {
		t.Errorf("expected game over, got %+v", res.State)
	}

	// Further steps are ignored
	before := g.tickCount
	g.Step(core.NewInputFrame(core.ActionFire))
	if g.tickCount != before {
		t.Error("game should not advance after game over")
	}
}

func TestInvasionEndsGame(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.formation.Enemies[0].Rect.Y = 530 // Bottom edge reaches the ship's top

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Winner != LabelGameOver {
		t.Errorf("expected game over on invasion, got %+v", res.State)
	}
}

func TestVictory(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.formation.Enemies = g.formation.Enemies[:1]
	g.bullets = []Bullet{{Rect: core.NewRect(95, 60, 3, 10), VY: -8}}

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Winner != LabelVictory {
		t.Errorf("expected victory, got %+v", res.State)
	}
	if !hasEvent(res.Events, core.EventVictory) {
		t.Error("expected Victory event")
	}
}

func TestLastLifeBeatsLastEnemy(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.Lives = 1
	g := newTestGame(t, cfg)
	g.formation.Enemies = g.formation.Enemies[:1]
	g.bullets = []Bullet{{Rect: core.NewRect(95, 60, 3, 10), VY: -8}}
	g.enemyBullets = []Bullet{{Rect: core.NewRect(390, 540, 3, 10), VY: 4}}

	res := g.Step(core.NewInputFrame())
	if g.EnemiesLeft() != 0 || g.Lives() != 0 {
		t.Fatalf("expected both the last enemy and the last life gone, got enemies=%d lives=%d",
			g.EnemiesLeft(), g.Lives())
	}
	if !res.State.GameOver || res.State.Winner != LabelGameOver {
		t.Errorf("losing the last life should win over clearing the field, got %+v", res.State)
	}
	if hasEvent(res.Events, core.EventVictory) {
		t.Error("no Victory event expected when the ship is destroyed")
	}
}

func TestRejectedConfigFileIsLogged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: 0\n  speed: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	prev := log.Default()
	log.SetDefault(log.New(&buf))
	SetConfigPath(path)
	t.Cleanup(func() {
		log.SetDefault(prev)
		SetConfigPath("")
	})

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if g.Lives() != config.DefaultInvadersConfig().Player.Lives {
		t.Errorf("Lives() = %d, expected the default", g.Lives())
	}
	out := buf.String()
	if !strings.Contains(out, "config rejected") || !strings.Contains(out, path) {
		t.Errorf("expected a warning naming %s, got %q", path, out)
	}
}

func TestEnemyFireSpawnsBelowShooter(t *testing.T) {
	cfg := quietConfig()
	cfg.EnemyFire.Chance = 1
	g := newTestGame(t, cfg)

	var fired bool
	for i := 0; i < 61; i++ {
		res := g.Step(core.NewInputFrame())
		fired = fired || hasEvent(res.Events, core.EventEnemyShoot)
	}
	if !fired || len(g.enemyBullets) != 1 {
		t.Fatalf("expected one enemy bullet after the fire interval, got %d", len(g.enemyBullets))
	}
	if g.enemyBullets[0].VY != 4 {
		t.Errorf("enemy bullet VY = %d, expected 4", g.enemyBullets[0].VY)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, quietConfig())

	res := g.Step(core.NewInputFrame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	x := g.ship.Rect.X
	g.Step(core.NewInputFrame(core.ActionLeft))
	if g.ship.Rect.X != x {
		t.Error("ship should not move while paused")
	}
	if res := g.Step(core.NewInputFrame(core.ActionPause)); res.State.Paused {
		t.Error("expected resume")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.EnemyFire.Chance = 1

	run := func() (int, int, int) {
		g := newTestGame(t, cfg)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame(core.ActionFire)
			if i%90 < 45 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.score, g.lives, g.tickCount
	}

	s1, l1, t1 := run()
	s2, l2, t2 := run()
	if s1 != s2 || l1 != l2 || t1 != t2 {
		t.Errorf("Determinism failed: run1=(%d,%d,%d) run2=(%d,%d,%d)", s1, l1, t1, s2, l2, t2)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, quietConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Lives: 3") {
		t.Errorf("HUD row = %q", hud)
	}
	out := screen.String()
	if !strings.ContainsRune(out, EnemyChar) || !strings.ContainsRune(out, ShipNoseChar) {
		t.Error("expected enemies and ship on screen")
	}

	g.gameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), LabelGameOver) {
		t.Error("expected game over banner")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, quietConfig())
	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected size warning on a tiny screen")
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("invaders")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Space Invaders" {
		t.Errorf("Title() = %q", g.Title())
	}
}
