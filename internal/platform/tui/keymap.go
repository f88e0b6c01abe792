package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
	"github.com/vovakirdan/retro-arcade/internal/platform/loop"
)

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// Game bindings depend on the match mode; see loop.NewKeymap.
type KeyMapper struct {
	keys loop.Keymap
}

// NewKeyMapper creates a key mapper for games of the given mode.
func NewKeyMapper(mode multiplayer.MatchMode) *KeyMapper {
	return &KeyMapper{keys: loop.NewKeymap(mode)}
}

// MapKey translates a key message to a player binding.
// isQuit is set for the global quit keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (b loop.Binding, ok, isQuit bool) {
	key := msg.String()
	if loop.IsQuitKey(key) {
		return loop.Binding{}, false, true
	}
	b, ok = km.keys.Lookup(key)
	return b, ok, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuAction(msg.String())
}

func menuAction(key string) MenuAction {
	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
