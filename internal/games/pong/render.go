package pong

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┊'
)

const (
	minScreenW = 30
	minScreenH = 10
)

// Render draws the court, scores and any end-of-match banner.
func (m *match) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	vp := core.NewViewport(m.cfg.Field.Width, m.cfg.Field.Height, dst.Width(), dst.Height())
	vp.Top = 1
	vp.Bottom = 1

	dst.DrawVLine(vp.X(m.cfg.Field.Width/2), vp.Top, vp.Rows(), NetChar, core.ColorGray)

	c := m.court
	dst.DrawRectColor(vp.Rect(c.Left.Rect), PaddleChar, core.ColorCyan)
	dst.DrawRectColor(vp.Rect(c.Right.Rect), PaddleChar, core.ColorMagenta)

	// Blink the ball while it waits to be served
	if !c.Serving() || (c.serveDelay/10)%2 == 0 {
		ball := vp.Rect(c.Ball.Rect)
		dst.SetColor(ball.X, ball.Y, BallChar, core.ColorWhite)
	}

	// Scores over each half
	dst.DrawTextColor(1, 0, m.names[0], core.ColorCyan)
	dst.DrawTextColor(dst.Width()-len(m.names[1])-1, 0, m.names[1], core.ColorMagenta)
	left := fmt.Sprintf("%d", c.ScoreLeft)
	right := fmt.Sprintf("%d", c.ScoreRight)
	dst.DrawTextColor(dst.Width()/4, 0, left, core.ColorWhite)
	dst.DrawTextColor(3*dst.Width()/4, 0, right, core.ColorWhite)
	dst.DrawTextCenteredColor(dst.Height()-1, m.hint, core.ColorGray)

	switch {
	case c.Over():
		title := m.labels[0]
		if c.Winner() == SideRight {
			title = m.labels[1]
		}
		dst.DrawMessageBox(title, fmt.Sprintf("%d - %d  |  Press R to restart", c.ScoreLeft, c.ScoreRight), core.ColorYellow)
	case m.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume", core.ColorYellow)
	}
}
