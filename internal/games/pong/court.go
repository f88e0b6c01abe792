package pong

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Side identifies one half of the court.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// Paddle is a vertical bat that moves along its side wall.
type Paddle struct {
	Rect   core.Rect
	Speed  int
	fieldH int
}

// MoveUp moves the paddle up by its speed, staying inside the field.
func (p *Paddle) MoveUp() {
	p.Move(-p.Speed)
}

// MoveDown moves the paddle down by its speed, staying inside the field.
func (p *Paddle) MoveDown() {
	p.Move(p.Speed)
}

// Move shifts the paddle by dy and clamps it to [0, fieldH - height].
func (p *Paddle) Move(dy int) {
	p.Rect.Y = core.Clamp(p.Rect.Y+dy, 0, p.fieldH-p.Rect.H)
}

// Ball is the square ball.
type Ball struct {
	Rect   core.Rect
	VX, VY int
}

// Court holds the state shared by both paddle games: two paddles, the
// ball and the score.
type Court struct {
	Left, Right Paddle
	Ball        Ball

	ScoreLeft  int
	ScoreRight int

	serveDelay int // Ticks until the ball moves again
	winner     Side

	cfg    config.PongConfig
	events *core.EventLog
}

// NewCourt lays out paddles and ball for a fresh match.
func NewCourt(cfg config.PongConfig, events *core.EventLog) *Court {
	w, h := cfg.Field.Width, cfg.Field.Height
	pw, ph := cfg.Paddles.Width, cfg.Paddles.Height

	c := &Court{
		Left: Paddle{
			Rect:   core.NewRect(cfg.Paddles.Offset, h/2-ph/2, pw, ph),
			Speed:  cfg.Paddles.Speed,
			fieldH: h,
		},
		Right: Paddle{
			Rect:   core.NewRect(w-cfg.Paddles.Offset-pw, h/2-ph/2, pw, ph),
			Speed:  cfg.Paddles.Speed,
			fieldH: h,
		},
		Ball: Ball{
			Rect: core.NewRect(0, 0, cfg.Ball.Size, cfg.Ball.Size).CenteredAt(w/2, h/2),
			VX:   cfg.Ball.SpeedX,
			VY:   cfg.Ball.SpeedY,
		},
		cfg:    cfg,
		events: events,
	}
	return c
}

// Winner returns the side that reached the winning score, or SideNone.
func (c *Court) Winner() Side {
	return c.winner
}

// Over reports whether the match has a winner.
func (c *Court) Over() bool {
	return c.winner != SideNone
}

// Serving reports whether the ball is resting after a point.
func (c *Court) Serving() bool {
	return c.serveDelay > 0
}

// Advance runs one tick of ball physics: movement, wall bounces, paddle
// hits and scoring.
func (c *Court) Advance() {
	if c.Over() {
		return
	}
	if c.serveDelay > 0 {
		c.serveDelay--
		return
	}

	c.moveBall()
	c.collidePaddles()
	c.checkScore()
}

func (c *Court) moveBall() {
	b := &c.Ball
	b.Rect = b.Rect.Translate(b.VX, b.VY)

	maxY := c.cfg.Field.Height - b.Rect.H
	switch {
	case b.Rect.Y <= 0:
		b.Rect.Y = 0
		b.VY = core.Abs(b.VY)
		c.events.Emit(core.EventWallBounce)
	case b.Rect.Y >= maxY:
		b.Rect.Y = maxY
		b.VY = -core.Abs(b.VY)
		c.events.Emit(core.EventWallBounce)
	}
}

// collidePaddles reflects the ball only while it moves toward the paddle
// it overlaps, then pushes it out to the paddle face.
func (c *Court) collidePaddles() {
	b := &c.Ball
	switch {
	case b.VX < 0 && b.Rect.Intersects(c.Left.Rect):
		b.VX = -b.VX
		b.Rect.X = c.Left.Rect.Right()
		c.applySpin(c.Left)
		c.events.Emit(core.EventPaddleHit)
	case b.VX > 0 && b.Rect.Intersects(c.Right.Rect):
		b.VX = -b.VX
		b.Rect.X = c.Right.Rect.X - b.Rect.W
		c.applySpin(c.Right)
		c.events.Emit(core.EventPaddleHit)
	}
}

// applySpin adds vertical speed proportional to how far from the paddle
// center the ball struck.
func (c *Court) applySpin(p Paddle) {
	spin := c.cfg.Ball.Spin
	if spin == 0 {
		return
	}
	_, by := c.Ball.Rect.Center()
	_, py := p.Rect.Center()
	vy := c.Ball.VY + int(math.Round(float64(by-py)*spin))
	if limit := c.cfg.Ball.MaxSpeedY; limit > 0 {
		vy = core.Clamp(vy, -limit, limit)
	}
	c.Ball.VY = vy
}

func (c *Court) checkScore() {
	switch {
	case c.Ball.Rect.X <= 0:
		c.point(SideRight)
	case c.Ball.Rect.Right() >= c.cfg.Field.Width:
		c.point(SideLeft)
	}
}

func (c *Court) point(side Side) {
	score := &c.ScoreLeft
	if side == SideRight {
		score = &c.ScoreRight
	}
	*score++
	c.events.Emit(core.EventPoint)

	c.ResetBall()
	if *score >= c.cfg.Gameplay.WinScore {
		c.winner = side
		c.events.Emit(core.EventGameOver)
	}
}

// ResetBall recenters the ball and sends it back the other way.
// Vertical speed is kept.
func (c *Court) ResetBall() {
	w, h := c.cfg.Field.Width, c.cfg.Field.Height
	c.Ball.Rect = c.Ball.Rect.CenteredAt(w/2, h/2)
	c.Ball.VX = -c.Ball.VX
	c.serveDelay = c.cfg.Gameplay.ServeDelay
}
