package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/platform/tcellui"
	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagFrontend   string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  invaders   Left/Right or A/D move, Space fires
  pong       W/S or Up/Down move your paddle
  tennis     W/S left paddle, Up/Down right paddle
  P          Pause
  R          Restart (after game over)
  Ctrl+S     Screenshot (bubbletea frontend)
  Q/Ctrl+C   Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Frontends:
  bubbletea  - Default, renders through Bubble Tea
  tcell      - Draws directly with tcell

Examples:
  arcade play invaders
  arcade play pong --difficulty hard
  arcade play tennis --frontend tcell
  arcade play invaders --sound
  arcade play invaders --config ./my-invaders.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "bubbletea", "Frontend: bubbletea or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")

	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if flagFrontend != "bubbletea" && flagFrontend != "tcell" {
		return fmt.Errorf("unknown frontend %q: use bubbletea or tcell", flagFrontend)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := checkConfig(gameID, flagConfig); err != nil {
		return err
	}
	applyGameSettings(flagConfig, preset)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound := openSound(flagSound)
	if sound != nil {
		defer sound.Close()
	}

	opts := driverOptions(runtimeConfig(), store, sound)
	logger.Info("playing", "game", gameID, "frontend", flagFrontend, "difficulty", preset)

	if flagFrontend == "tcell" {
		err = tcellui.Run(cmd.Context(), game, opts)
	} else {
		err = tui.Run(game, opts)
	}
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
