package invaders

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Ship is the player's cannon at the bottom of the field.
type Ship struct {
	Rect     core.Rect
	Speed    int
	Cooldown int // Ticks until the next shot is allowed
}

// MoveLeft moves the ship left, never past the field edge.
func (s *Ship) MoveLeft(fieldW int) {
	s.Rect.X = core.Clamp(s.Rect.X-s.Speed, 0, fieldW-s.Rect.W)
}

// MoveRight moves the ship right, never past the field edge.
func (s *Ship) MoveRight(fieldW int) {
	s.Rect.X = core.Clamp(s.Rect.X+s.Speed, 0, fieldW-s.Rect.W)
}

// CanShoot reports whether the cooldown has expired.
func (s *Ship) CanShoot() bool {
	return s.Cooldown <= 0
}

// Tick counts the cooldown down.
func (s *Ship) Tick() {
	if s.Cooldown > 0 {
		s.Cooldown--
	}
}

// Bullet is a projectile moving vertically.
type Bullet struct {
	Rect core.Rect
	VY   int // Negative moves up
}

// Update advances the bullet by one tick.
func (b *Bullet) Update() {
	b.Rect = b.Rect.Translate(0, b.VY)
}

// Enemy is one invader in the formation.
type Enemy struct {
	Rect core.Rect
	Type int // Row / 2; selects color and points
}

// Formation is the grid of enemies moving as one body.
type Formation struct {
	Enemies []Enemy
	dir     int     // +1 right, -1 left
	carry   float64 // Fractional horizontal movement not applied yet
	drop    int
}

// NewFormation builds the enemy grid from configuration.
func NewFormation(cfg config.InvadersFormation) *Formation {
	f := &Formation{
		Enemies: make([]Enemy, 0, cfg.Rows*cfg.Cols),
		dir:     1,
		drop:    cfg.Drop,
	}
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			f.Enemies = append(f.Enemies, Enemy{
				Rect: core.NewRect(
					col*cfg.SpacingX+cfg.OffsetX,
					row*cfg.SpacingY+cfg.OffsetY,
					cfg.EnemyWidth,
					cfg.EnemyHeight,
				),
				Type: row / 2,
			})
		}
	}
	return f
}

// Direction returns +1 while moving right and -1 while moving left.
func (f *Formation) Direction() int {
	return f.dir
}

// Step moves every enemy horizontally by speed (fractions accumulate).
// If any enemy ends at or beyond a side edge, the whole formation drops
// and reverses. Returns true when a drop happened.
func (f *Formation) Step(speed float64, fieldW int) bool {
	f.carry += speed
	dx := int(f.carry)
	f.carry -= float64(dx)
	if dx == 0 {
		return false
	}

	hitEdge := false
	for i := range f.Enemies {
		e := &f.Enemies[i]
		e.Rect = e.Rect.Translate(dx*f.dir, 0)
		if e.Rect.X <= 0 || e.Rect.X >= fieldW-e.Rect.W {
			hitEdge = true
		}
	}

	if hitEdge {
		for i := range f.Enemies {
			f.Enemies[i].Rect = f.Enemies[i].Rect.Translate(0, f.drop)
		}
		f.dir = -f.dir
	}
	return hitEdge
}

// Remove deletes the enemy at index i.
func (f *Formation) Remove(i int) {
	f.Enemies = append(f.Enemies[:i], f.Enemies[i+1:]...)
}

// Lowest returns the largest bottom edge in the formation, or -1 if empty.
func (f *Formation) Lowest() int {
	lowest := -1
	for _, e := range f.Enemies {
		lowest = core.Max(lowest, e.Rect.Bottom())
	}
	return lowest
}

// pointsFor returns the points awarded for destroying an enemy of the given type.
func pointsFor(points []int, enemyType int) int {
	if len(points) == 0 {
		return 0
	}
	return points[enemyType%len(points)]
}

// colorFor returns the render color of an enemy type.
func colorFor(enemyType int) core.Color {
	colors := []core.Color{core.ColorRed, core.ColorMagenta, core.ColorYellow}
	return colors[enemyType%len(colors)]
}
