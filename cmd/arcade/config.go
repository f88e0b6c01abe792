package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config",
	Long: `Print the built-in configuration of a game as YAML.
Save it, edit it and pass it back with 'arcade play <game> --config'.
pong and tennis share one config.

Examples:
  arcade config invaders > my-invaders.yaml
  arcade play invaders --config my-invaders.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("%s has no config file", gameID)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
