package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/retro-arcade/internal/audio"
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/invaders"
	"github.com/vovakirdan/retro-arcade/internal/games/pong"
	"github.com/vovakirdan/retro-arcade/internal/platform/loop"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// runtimeConfig sizes the runtime to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameSettings passes --config and --difficulty to every game.
// A custom config file only makes sense for one game; the others fall back
// to their defaults when it does not validate for them.
func applyGameSettings(configFile string, preset config.DifficultyPreset) {
	invaders.SetConfigPath(configFile)
	invaders.SetDifficultyPreset(preset)
	pong.SetConfigPath(configFile)
	pong.SetDifficultyPreset(preset)
}

// checkConfig loads configFile the way gameID will, so a file that does
// not parse or validate fails the command instead of being replaced by
// defaults.
func checkConfig(gameID, configFile string) error {
	if configFile == "" {
		return nil
	}
	var err error
	switch gameID {
	case "invaders":
		_, err = config.LoadInvaders(configFile)
	case "pong", "tennis":
		_, err = config.LoadPong(configFile)
	}
	return err
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSound starts the speaker. Returns nil when sound is off or unavailable.
func openSound(enabled bool) *audio.Player {
	if !enabled {
		return nil
	}
	p := audio.NewPlayer()
	if err := p.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return p
}

// driverOptions wires persistence, sound and logging into a game driver.
func driverOptions(cfg core.RuntimeConfig, store *storage.Store, sound *audio.Player) loop.Options {
	opts := loop.Options{
		Runtime: cfg,
		Logger:  logger,
	}
	if store != nil {
		opts.Scores = store
		opts.Matches = store
	}
	if sound != nil {
		opts.Sound = sound
	}
	return opts
}
