package invaders

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Visual characters for rendering
const (
	ShipChar         = '█'
	ShipNoseChar     = '▲'
	EnemyChar        = '▓'
	EnemyEyeChar     = 'o'
	PlayerBulletChar = '│'
	EnemyBulletChar  = '!'
	StarChar         = '.'
)

const (
	minScreenW = 30
	minScreenH = 12
	starCount  = 60
)

const controlsHint = "←/→ A/D move  Space shoot  P pause  Q quit"

// star is a background dot. Stars twinkle but never affect the simulation.
type star struct {
	X, Y  int
	Phase int
}

// newStarfield scatters stars over the field using its own RNG.
func newStarfield(seed int64, fieldW, fieldH int) []star {
	rng := rand.New(rand.NewSource(seed ^ 0x5eed))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{X: rng.Intn(fieldW), Y: rng.Intn(fieldH), Phase: rng.Intn(8)}
	}
	return stars
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	vp := core.NewViewport(g.cfg.Field.Width, g.cfg.Field.Height, dst.Width(), dst.Height())
	vp.Top = 1
	vp.Bottom = 1

	g.renderStars(dst, vp)
	g.renderEnemies(dst, vp)
	g.renderBullets(dst, vp)
	g.renderShip(dst, vp)
	g.renderHUD(dst)

	switch {
	case g.victory:
		dst.DrawMessageBox(LabelVictory, fmt.Sprintf("Score %d  |  Press R to play again", g.score), core.ColorGreen)
	case g.gameOver:
		dst.DrawMessageBox(LabelGameOver, fmt.Sprintf("Score %d  |  Press R to restart", g.score), core.ColorRed)
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume", core.ColorYellow)
	}
}

func (g *Game) renderStars(dst *core.Screen, vp core.Viewport) {
	for _, s := range g.stars {
		// Each star is hidden for one eighth of its cycle
		if (g.tickCount/8+s.Phase)%8 == 0 {
			continue
		}
		dst.SetColor(vp.X(s.X), vp.Y(s.Y), StarChar, core.ColorGray)
	}
}

func (g *Game) renderEnemies(dst *core.Screen, vp core.Viewport) {
	for _, e := range g.formation.Enemies {
		color := colorFor(e.Type)
		dst.DrawRectColor(vp.Rect(e.Rect), EnemyChar, color)

		// Eyes sit in the upper part of the body, one per side
		if cell := vp.Rect(e.Rect); cell.W >= 3 {
			left := vp.Rect(core.NewRect(e.Rect.X+e.Rect.W/8, e.Rect.Y+e.Rect.H/6, 1, 1))
			right := vp.Rect(core.NewRect(e.Rect.X+e.Rect.W*5/8, e.Rect.Y+e.Rect.H/6, 1, 1))
			dst.SetColor(left.X, left.Y, EnemyEyeChar, core.ColorWhite)
			dst.SetColor(right.X, right.Y, EnemyEyeChar, core.ColorWhite)
		}
	}
}

func (g *Game) renderBullets(dst *core.Screen, vp core.Viewport) {
	for _, b := range g.bullets {
		dst.DrawRectColor(vp.Rect(b.Rect), PlayerBulletChar, core.ColorCyan)
	}
	for _, b := range g.enemyBullets {
		dst.DrawRectColor(vp.Rect(b.Rect), EnemyBulletChar, core.ColorRed)
	}
}

func (g *Game) renderShip(dst *core.Screen, vp core.Viewport) {
	cell := vp.Rect(g.ship.Rect)
	dst.DrawRectColor(cell, ShipChar, core.ColorGreen)
	dst.SetColor(cell.X+cell.W/2, cell.Y, ShipNoseChar, core.ColorGreen)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextColor(dst.Width()-len(lives)-1, 0, lives, core.ColorWhite)
	dst.DrawTextCenteredColor(dst.Height()-1, controlsHint, core.ColorGray)
}
