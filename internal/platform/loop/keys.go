package loop

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
)

// Binding is the action a key triggers and the player it belongs to.
type Binding struct {
	Player core.PlayerID
	Action core.Action
}

// Keymap translates frontend key names to bindings. Key names follow
// Bubble Tea's KeyMsg.String(): "up", "left", "enter", "esc", " ", "a"...
type Keymap struct {
	bindings map[string]Binding
}

// NewKeymap returns the bindings for a game mode.
func NewKeymap(mode multiplayer.MatchMode) Keymap {
	p1 := func(a core.Action) Binding { return Binding{Player: core.Player1, Action: a} }
	p2 := func(a core.Action) Binding { return Binding{Player: core.Player2, Action: a} }

	b := map[string]Binding{
		"p":   p1(core.ActionPause),
		"r":   p1(core.ActionRestart),
		"esc": p1(core.ActionBack),
		"b":   p1(core.ActionBack),
	}

	switch mode {
	case multiplayer.MatchModeSolo:
		b["left"] = p1(core.ActionLeft)
		b["a"] = p1(core.ActionLeft)
		b["right"] = p1(core.ActionRight)
		b["d"] = p1(core.ActionRight)
		b[" "] = p1(core.ActionFire)
		b["space"] = p1(core.ActionFire)
		b["up"] = p1(core.ActionFire)
		b["w"] = p1(core.ActionFire)
	case multiplayer.MatchModeVsCPU:
		b["w"] = p1(core.ActionUp)
		b["up"] = p1(core.ActionUp)
		b["s"] = p1(core.ActionDown)
		b["down"] = p1(core.ActionDown)
	case multiplayer.MatchModeLocalVersus:
		b["w"] = p1(core.ActionUp)
		b["s"] = p1(core.ActionDown)
		b["up"] = p2(core.ActionUp)
		b["down"] = p2(core.ActionDown)
	}

	return Keymap{bindings: b}
}

// Lookup returns the binding for a key.
func (k Keymap) Lookup(key string) (Binding, bool) {
	b, ok := k.bindings[key]
	return b, ok
}

// IsQuitKey reports whether the key exits the program.
func IsQuitKey(key string) bool {
	return key == "q" || key == "ctrl+c"
}
