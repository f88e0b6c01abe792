package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/storage"
)

func TestPort(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{":2222", "2222"},
		{"0.0.0.0:23234", "23234"},
		{"garbage", "23234"},
	}
	for _, tc := range tests {
		if got := port(tc.addr); got != tc.expected {
			t.Errorf("port(%q) = %q, expected %q", tc.addr, got, tc.expected)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := expandHome("~/.arcade/arcade.log"); got != filepath.Join(home, ".arcade", "arcade.log") {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/var/log/arcade.log"); got != "/var/log/arcade.log" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arcade.log")

	l, closer, err := newLogger(path, log.InfoLevel)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	l.Debug("hidden")
	l.Info("game over", "game", "invaders")
	if err := closer(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "game over") || strings.Contains(out, "hidden") {
		t.Errorf("log file = %q", out)
	}
}

func TestNewLoggerStderr(t *testing.T) {
	l, closer, err := newLogger("-", log.WarnLevel)
	if err != nil || l == nil {
		t.Fatalf("newLogger: %v", err)
	}
	if closer != nil {
		t.Error("stderr logger needs no closer")
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"list", "play", "menu", "serve", "scores", "config"} {
		if c, _, err := rootCmd.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("command %q not found", name)
		}
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckConfig(t *testing.T) {
	badInvaders := writeFile(t, "invaders.yaml", "player:\n  lives: 0\n  speed: 40\n")
	goodPong := writeFile(t, "pong.yaml", "gameplay:\n  win_score: 7\n")

	tests := []struct {
		name    string
		game    string
		path    string
		wantErr bool
	}{
		{"no config", "invaders", "", false},
		{"invalid invaders", "invaders", badInvaders, true},
		{"valid pong", "pong", goodPong, false},
		{"pong config for tennis", "tennis", goodPong, false},
		{"missing file", "tennis", filepath.Join(t.TempDir(), "nope.yaml"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkConfig(tc.game, tc.path)
			if (err != nil) != tc.wantErr {
				t.Errorf("checkConfig() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRunConfigPrintsDefaults(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := runConfig(cmd, []string{"tennis"}); err != nil {
		t.Fatalf("runConfig: %v", err)
	}
	if !strings.Contains(buf.String(), "win_score: 5") {
		t.Errorf("expected the pong defaults, got %q", buf.String())
	}

	if err := runConfig(cmd, []string{"chess"}); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestStatsLine(t *testing.T) {
	stats := &storage.GameStats{
		GamesCount: 3,
		HighScore:  1500,
		AvgScore:   733.333,
		LastPlayed: time.Now().Add(-2 * time.Hour),
	}
	got := statsLine(stats)
	for _, want := range []string{"Best: 1,500", "Average: 733.3", "Played: 3 games", "2 hours ago"} {
		if !strings.Contains(got, want) {
			t.Errorf("statsLine() = %q, missing %q", got, want)
		}
	}
}

func TestScoresClear(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore("invaders", 900); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore("pong", 3); err != nil {
		t.Fatal(err)
	}
	store.Close()

	prevDB, prevClear := flagDBPath, flagScoresClear
	flagDBPath, flagScoresClear = dbPath, true
	t.Cleanup(func() { flagDBPath, flagScoresClear = prevDB, prevClear })

	if err := runScores(scoresCmd, []string{"invaders"}); err != nil {
		t.Fatalf("runScores --clear: %v", err)
	}

	store, err = storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if best, _ := store.HighScore("invaders"); best != 0 {
		t.Errorf("invaders high score = %d after clear, expected 0", best)
	}
	if best, _ := store.HighScore("pong"); best != 3 {
		t.Errorf("pong high score = %d, other games must be kept", best)
	}
}
