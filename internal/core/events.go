package core

// Event is a notable thing that happened during a tick.
// The platform turns events into sound cues; games never depend on audio.
type Event int

const (
	EventShoot      Event = iota // Player fired
	EventEnemyShoot              // Enemy fired
	EventEnemyHit                // Player bullet destroyed an enemy
	EventPlayerHit               // Enemy bullet hit the player
	EventPaddleHit               // Ball bounced off a paddle
	EventWallBounce              // Ball bounced off the top or bottom wall
	EventPoint                   // A side scored in a paddle game
	EventGameOver                // Game lost / match over
	EventVictory                 // Game won
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventShoot:
		return "Shoot"
	case EventEnemyShoot:
		return "EnemyShoot"
	case EventEnemyHit:
		return "EnemyHit"
	case EventPlayerHit:
		return "PlayerHit"
	case EventPaddleHit:
		return "PaddleHit"
	case EventWallBounce:
		return "WallBounce"
	case EventPoint:
		return "Point"
	case EventGameOver:
		return "GameOver"
	case EventVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// EventLog collects events during a single tick.
type EventLog struct {
	events []Event
}

// Emit records an event.
func (l *EventLog) Emit(e Event) {
	l.events = append(l.events, e)
}

// Drain returns the recorded events and empties the log.
func (l *EventLog) Drain() []Event {
	if len(l.events) == 0 {
		return nil
	}
	out := l.events
	l.events = nil
	return out
}
