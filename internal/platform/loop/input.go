package loop

import "github.com/vovakirdan/retro-arcade/internal/core"

// HeldInput turns key presses into per-tick input frames.
//
// Terminals report presses and auto-repeats but never releases, so a
// movement key counts as held for a few ticks after each press. Other
// actions fire on exactly one tick.
type HeldInput struct {
	hold    int
	tick    int
	pressed map[Binding]int // Movement binding -> tick of last press
	pending core.MultiInputFrame
}

// NewHeldInput creates an input buffer that keeps movement keys down for
// hold ticks after a press.
func NewHeldInput(hold int) *HeldInput {
	return &HeldInput{
		hold:    core.Max(hold, 1),
		pressed: make(map[Binding]int),
		pending: core.NewMultiInputFrame(),
	}
}

// Press records a key press for the next frame.
func (h *HeldInput) Press(b Binding) {
	if opposite, ok := opposites[b.Action]; ok {
		delete(h.pressed, Binding{Player: b.Player, Action: opposite})
		h.pressed[b] = h.tick
		return
	}
	h.pending.Set(b.Player, b.Action)
}

// Frame returns the input for the current tick and advances the clock.
func (h *HeldInput) Frame() core.MultiInputFrame {
	frame := h.pending
	h.pending = core.NewMultiInputFrame()

	for b, at := range h.pressed {
		if h.tick-at >= h.hold {
			delete(h.pressed, b)
			continue
		}
		frame.Set(b.Player, b.Action)
	}

	h.tick++
	return frame
}

// Reset forgets every press.
func (h *HeldInput) Reset() {
	h.pressed = make(map[Binding]int)
	h.pending = core.NewMultiInputFrame()
}

// opposites lists the movement actions; pressing one releases the other.
var opposites = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HoldTicks returns a hold window covering typical keyboard auto-repeat
// (about 80ms) at the given tick rate.
func HoldTicks(tickRate int) int {
	return core.Max(tickRate*80/1000, 1)
}
