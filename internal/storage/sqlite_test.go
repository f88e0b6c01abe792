package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("invaders", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("pong", 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].GameID != "invaders" || scores[0].CreatedAt.IsZero() {
		t.Errorf("Unexpected entry: %+v", scores[0])
	}

	pongScores, err := store.TopScores("pong", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(pongScores) != 1 {
		t.Errorf("Expected 1 pong score, got %d", len(pongScores))
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("invaders", -10); err == nil {
		t.Error("negative score should be rejected")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 with no scores, got %d", high)
	}

	store.SaveScore("invaders", 300)
	store.SaveScore("invaders", 1200)
	store.SaveScore("invaders", 700)

	high, err = store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1200 {
		t.Errorf("Expected high score 1200, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("invaders", 100)
	store.SaveScore("pong", 3)
	store.SaveMatch(MatchRecord{MatchID: "m1", GameID: "invaders", Mode: "Solo"})

	if err := store.ClearScores("invaders"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.AllScores("invaders")
	if len(scores) != 0 {
		t.Errorf("Expected no invaders scores after clear, got %d", len(scores))
	}
	matches, _ := store.RecentMatches("invaders", 10)
	if len(matches) != 0 {
		t.Errorf("Expected no invaders matches after clear, got %d", len(matches))
	}

	// Other games untouched
	scores, _ = store.AllScores("pong")
	if len(scores) != 1 {
		t.Errorf("Expected pong score to survive, got %d", len(scores))
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("Database not created under HOME: %v", err)
	}
}

func TestStoreSaveMatchResult(t *testing.T) {
	store := openTestStore(t)

	start := time.Now()
	match := multiplayer.NewMatch("tennis", multiplayer.MatchModeLocalVersus, "local")
	result := match.Finish(5, 3, start.Add(90*time.Second))

	if err := store.SaveMatchResult(result); err != nil {
		t.Fatalf("SaveMatchResult() failed: %v", err)
	}

	matches, err := store.RecentMatches("tennis", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	got := matches[0]
	if got.MatchID != string(result.MatchID) {
		t.Errorf("MatchID = %q, expected %q", got.MatchID, result.MatchID)
	}
	if got.GameID != "tennis" || got.Mode != "2 Players" || got.Session != "local" {
		t.Errorf("Unexpected match metadata: %+v", got)
	}
	if got.Score1 != 5 || got.Score2 != 3 || got.Winner != 1 {
		t.Errorf("Unexpected match outcome: %+v", got)
	}
	if got.Duration < 89*time.Second || got.Duration > 91*time.Second {
		t.Errorf("Duration = %v, expected about 90s", got.Duration)
	}
}

func TestStoreDuplicateMatchID(t *testing.T) {
	store := openTestStore(t)

	m := MatchRecord{MatchID: "same", GameID: "tennis", Mode: "2 Players"}
	if _, err := store.SaveMatch(m); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch(m); err == nil {
		t.Error("duplicate match ID should be rejected")
	}
}

func TestStoreRecentMatchesAndTally(t *testing.T) {
	store := openTestStore(t)

	records := []MatchRecord{
		{MatchID: "a", GameID: "tennis", Mode: "2 Players", Score1: 5, Score2: 1, Winner: 1},
		{MatchID: "b", GameID: "tennis", Mode: "2 Players", Score1: 2, Score2: 5, Winner: 2},
		{MatchID: "c", GameID: "tennis", Mode: "2 Players", Score1: 5, Score2: 4, Winner: 1},
		{MatchID: "d", GameID: "tennis", Mode: "2 Players", Score1: 1, Score2: 1, Winner: 0},
		{MatchID: "e", GameID: "pong", Mode: "vs CPU", Score1: 5, Score2: 0, Winner: 1},
	}
	for _, r := range records {
		if _, err := store.SaveMatch(r); err != nil {
			t.Fatalf("SaveMatch(%s) failed: %v", r.MatchID, err)
		}
	}

	recent, err := store.RecentMatches("tennis", 3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 recent matches, got %d", len(recent))
	}
	// Newest first
	if recent[0].MatchID != "d" || recent[2].MatchID != "b" {
		t.Errorf("Unexpected order: %s, %s, %s", recent[0].MatchID, recent[1].MatchID, recent[2].MatchID)
	}

	tally, err := store.Tally("tennis")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.LeftWins != 2 || tally.RightWins != 1 || tally.Draws != 1 || tally.Total() != 4 {
		t.Errorf("Unexpected tally: %+v", tally)
	}

	empty, err := store.Tally("invaders")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if empty.Total() != 0 {
		t.Errorf("Expected empty tally, got %+v", empty)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("invaders", 100)
	store.SaveScore("invaders", 300)

	stats, err := store.GetGameStats("invaders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	none, err := store.GetGameStats("pong")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if none.GamesCount != 0 || !none.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for unplayed game: %+v", none)
	}
}
