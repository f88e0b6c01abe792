// arcade is a terminal arcade with Space Invaders, Pong against the CPU and
// two-player Tennis.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores and match results for a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Log destination, "-" for stderr (default: ~/.arcade/arcade.log)
//	--profile cpu|mem     - Write a pprof profile to the working directory
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/retro-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/retro-arcade/internal/games/pong"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagProfile  string

	logger   = log.Default()
	logClose func() error
	profiler interface{ Stop() }
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Retro Arcade - Play retro games in your terminal",
	Long: `Retro Arcade is a terminal-based gaming platform with three classics:

  invaders - Space Invaders: shoot down the descending formation
  pong     - Pong against a CPU opponent
  tennis   - Pong for two players at one keyboard

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and match results
  config   - Print a game's default config

Examples:
  arcade list
  arcade play invaders
  arcade play tennis --frontend tcell
  arcade menu
  arcade serve --ssh :2222
  arcade scores pong`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", `Log file ("-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Write a profile: cpu or mem")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup configures logging and profiling before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	l, closer, err := newLogger(flagLogFile, level)
	if err != nil {
		return err
	}
	logger, logClose = l, closer
	log.SetDefault(logger)

	switch flagProfile {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	case "mem":
		profiler = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	default:
		return fmt.Errorf("invalid --profile %q: use cpu or mem", flagProfile)
	}

	logger.Debug("starting", "command", cmd.Name(), "fps", flagFPS, "seed", flagSeed)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if profiler != nil {
		profiler.Stop()
	}
	if logClose != nil {
		return logClose()
	}
	return nil
}

// newLogger writes to path, or stderr for "-".
// Games run in the alternate screen, so logging to the terminal is opt-in.
func newLogger(path string, level log.Level) (*log.Logger, func() error, error) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	}
	if path == "-" || path == "" {
		return log.NewWithOptions(os.Stderr, opts), nil, nil
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), f.Close, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
