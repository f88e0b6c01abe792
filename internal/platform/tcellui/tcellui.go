// Package tcellui runs a game directly on a tcell screen. It is a lighter
// alternative to the Bubble Tea frontend with no menu, only the game.
package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/platform/loop"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Run opens the terminal, plays the game until the player quits and
// restores the terminal.
func Run(ctx context.Context, game registry.Game, opts loop.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellui: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: cannot init screen: %w", err)
	}
	defer screen.Fini()

	return run(ctx, screen, game, opts)
}

func run(ctx context.Context, screen tcell.Screen, game registry.Game, opts loop.Options) error {
	screen.HideCursor()
	w, h := screen.Size()

	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rt.ScreenW, rt.ScreenH = w, h
	opts.Runtime = rt

	driver := loop.New(game, opts)
	keys := loop.NewKeymap(game.Mode())
	input := loop.NewHeldInput(loop.HoldTicks(rt.TickRate))
	buf := core.NewScreen(w, h)

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(time.Second / time.Duration(rt.TickRate))
	defer ticker.Stop()

	draw(screen, driver, buf)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				name := keyName(ev)
				if loop.IsQuitKey(name) {
					return nil
				}
				if b, ok := keys.Lookup(name); ok && b.Action != core.ActionBack {
					input.Press(b)
				}
			case *tcell.EventResize:
				w, h := screen.Size()
				driver.Resize(w, h)
				buf.Resize(w, h)
				screen.Sync()
			}

		case <-ticker.C:
			driver.Tick(input.Frame())
			draw(screen, driver, buf)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// keyName names a key the way the shared keymap expects.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	}
	return ""
}

func styleFor(c core.Color) tcell.Style {
	n, ok := c.ANSI()
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
}

// draw renders the game into buf and copies buf to the terminal.
func draw(screen tcell.Screen, driver *loop.Driver, buf *core.Screen) {
	driver.Render(buf)
	blit(screen, buf)
	screen.Show()
}

func blit(screen tcell.Screen, buf *core.Screen) {
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			cell := buf.GetCell(x, y)
			screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
}
