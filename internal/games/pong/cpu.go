package pong

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// CPU drives the right paddle.
type CPU struct {
	Speed    int     // Paddle speed at full skill
	DeadZone int     // Stop chasing when this close to the target
	Skill    float64 // 0..1, scales Speed
}

// Update moves the paddle one tick. While the ball approaches, the paddle
// tracks its center; otherwise it drifts back to the middle of the field.
func (c CPU) Update(p *Paddle, ball Ball, fieldH int) {
	target := fieldH / 2
	if ball.VX > 0 {
		_, target = ball.Rect.Center()
	}

	_, center := p.Rect.Center()
	diff := target - center
	if core.Abs(diff) <= c.DeadZone {
		return
	}

	step := core.Min(c.speed(), core.Abs(diff))
	p.Move(step * core.Sign(diff))
}

func (c CPU) speed() int {
	return core.Max(int(math.Round(float64(c.Speed)*c.Skill)), 1)
}
