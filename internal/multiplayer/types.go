// Package multiplayer describes who is playing a match: a single player,
// a player against the CPU, or two players sharing one keyboard.
package multiplayer

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// PlayerID is an alias to core.PlayerID for convenience.
// Player1 is always the local human player, Player2 can be CPU or a second human.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// SessionID uniquely identifies a player's session (e.g., SSH connection).
type SessionID string

// MatchID uniquely identifies a game match.
type MatchID string

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single-player game (invaders).
	MatchModeSolo MatchMode = iota

	// MatchModeVsCPU is player vs computer (pong).
	MatchModeVsCPU

	// MatchModeLocalVersus is two humans on one keyboard (tennis).
	MatchModeLocalVersus
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeVsCPU:
		return "vs CPU"
	case MatchModeLocalVersus:
		return "2 Players"
	default:
		return "Unknown"
	}
}

// Match tracks one play-through of a game from start to finish.
// The platform creates a match per game start and finishes it on game over.
type Match struct {
	id        MatchID
	gameID    string
	mode      MatchMode
	session   SessionID
	startedAt time.Time
}

// NewMatch creates a new match with a random ID.
func NewMatch(gameID string, mode MatchMode, session SessionID) *Match {
	return &Match{
		id:        MatchID(uuid.NewString()),
		gameID:    gameID,
		mode:      mode,
		session:   session,
		startedAt: time.Now(),
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// GameID returns the game this match is played in.
func (m *Match) GameID() string {
	return m.gameID
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// Session returns the session that started the match.
func (m *Match) Session() SessionID {
	return m.session
}

// MatchResult contains the outcome of a completed versus match.
type MatchResult struct {
	MatchID  MatchID
	GameID   string
	Mode     MatchMode
	Session  SessionID
	Score1   int      // Left / Player 1 points
	Score2   int      // Right / Player 2 points
	Winner   PlayerID // 0 if no winner (abandoned)
	Duration time.Duration
}

// Finish builds the result of the match from final scores.
// The side with more points wins; equal scores produce no winner.
func (m *Match) Finish(score1, score2 int, now time.Time) MatchResult {
	var winner PlayerID
	switch {
	case score1 > score2:
		winner = Player1
	case score2 > score1:
		winner = Player2
	}

	return MatchResult{
		MatchID:  m.id,
		GameID:   m.gameID,
		Mode:     m.mode,
		Session:  m.session,
		Score1:   score1,
		Score2:   score2,
		Winner:   winner,
		Duration: now.Sub(m.startedAt),
	}
}

// MatchResultSaver persists finished matches.
// Implemented by storage.Store; kept as an interface so the platform can run
// without a database.
type MatchResultSaver interface {
	SaveMatchResult(result MatchResult) error
}
