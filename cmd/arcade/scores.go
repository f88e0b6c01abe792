package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.
For pong and tennis the win tally and the latest matches are shown too.

Examples:
  arcade scores invaders
  arcade scores invaders --all
  arcade scores tennis
  arcade scores pong --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

var (
	flagScoresAll   bool
	flagScoresClear bool
)

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded score, not only the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and matches of the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(info.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores and matches for %s\n", info.Title)
		return nil
	}

	if info.Mode != multiplayer.MatchModeLocalVersus {
		if err := printHighScores(store, info); err != nil {
			return err
		}
	}
	if info.Mode != multiplayer.MatchModeSolo {
		return printMatches(store, info)
	}
	return nil
}

func printHighScores(store *storage.Store, info registry.GameInfo) error {
	var scores []storage.ScoreEntry
	var err error
	if flagScoresAll {
		scores, err = store.AllScores(info.ID)
	} else {
		scores, err = store.TopScores(info.ID, 10)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "When")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, humanize.Comma(int64(entry.Score)), humanize.Time(entry.CreatedAt))
	}

	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Println(statsLine(stats))
	return nil
}

// statsLine summarizes every recorded game, not just the listed ones.
func statsLine(stats *storage.GameStats) string {
	return fmt.Sprintf("Best: %s  Average: %s  Played: %s %s, last %s",
		humanize.Comma(int64(stats.HighScore)),
		humanize.CommafWithDigits(stats.AvgScore, 1),
		humanize.Comma(int64(stats.GamesCount)), plural(stats.GamesCount, "game", "games"),
		humanize.Time(stats.LastPlayed))
}

func printMatches(store *storage.Store, info registry.GameInfo) error {
	tally, err := store.Tally(info.ID)
	if err != nil {
		return err
	}
	matches, err := store.RecentMatches(info.ID, 10)
	if err != nil {
		return err
	}

	left, right := "Left", "Right"
	if info.Mode == multiplayer.MatchModeVsCPU {
		left, right = "You", "CPU"
		fmt.Println()
	}

	fmt.Printf("Matches - %s\n", info.Title)
	fmt.Println()
	if tally.Total() == 0 {
		fmt.Println("No matches recorded yet.")
		return nil
	}

	fmt.Printf("  %s %d : %d %s over %s %s\n", left, tally.LeftWins, tally.RightWins, right,
		humanize.Comma(int64(tally.Total())), plural(tally.Total(), "match", "matches"))
	fmt.Println()

	fmt.Printf("  %-7s  %-6s  %-8s  %s\n", "Score", "Winner", "Length", "When")
	fmt.Printf("  %-7s  %-6s  %-8s  %s\n", "-----", "------", "------", "----")
	for _, m := range matches {
		winner := "-"
		switch m.Winner {
		case int(multiplayer.Player1):
			winner = left
		case int(multiplayer.Player2):
			winner = right
		}
		fmt.Printf("  %-7s  %-6s  %-8s  %s\n",
			fmt.Sprintf("%d-%d", m.Score1, m.Score2), winner,
			m.Duration.Round(time.Second), humanize.Time(m.CreatedAt))
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
