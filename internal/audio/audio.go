// Package audio turns game events into short synthesized beeps.
// Sound is optional: a Player that was never initialized, or a nil
// Player, stays silent.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a single sine note. A zero frequency is a rest.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// cues maps each event to the notes played for it.
var cues = map[core.Event][]Tone{
	core.EventShoot:      {{Freq: 880, Duration: 30 * time.Millisecond}},
	core.EventEnemyShoot: {{Freq: 220, Duration: 40 * time.Millisecond}},
	core.EventEnemyHit:   {{Freq: 660, Duration: 30 * time.Millisecond}, {Freq: 440, Duration: 40 * time.Millisecond}},
	core.EventPlayerHit:  {{Freq: 180, Duration: 120 * time.Millisecond}},
	core.EventPaddleHit:  {{Freq: 520, Duration: 35 * time.Millisecond}},
	core.EventWallBounce: {{Freq: 390, Duration: 25 * time.Millisecond}},
	core.EventPoint:      {{Freq: 300, Duration: 80 * time.Millisecond}, {Freq: 0, Duration: 20 * time.Millisecond}, {Freq: 300, Duration: 80 * time.Millisecond}},
	core.EventGameOver:   {{Freq: 392, Duration: 150 * time.Millisecond}, {Freq: 330, Duration: 150 * time.Millisecond}, {Freq: 262, Duration: 300 * time.Millisecond}},
	core.EventVictory:    {{Freq: 523, Duration: 120 * time.Millisecond}, {Freq: 659, Duration: 120 * time.Millisecond}, {Freq: 784, Duration: 250 * time.Millisecond}},
}

// CueFor returns the notes for an event.
func CueFor(e core.Event) ([]Tone, bool) {
	tones, ok := cues[e]
	return tones, ok
}

// Player mixes event cues onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device. Failure is not fatal; the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether sound will actually be heard.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues the cues of one tick's events. Repeated events within the
// same tick play once.
func (p *Player) Play(events []core.Event) {
	if p == nil || len(events) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	seen := make(map[core.Event]bool, len(events))
	for _, e := range events {
		if seen[e] {
			continue
		}
		seen[e] = true

		tones, ok := CueFor(e)
		if !ok {
			continue
		}
		if s, err := Sequence(sampleRate, tones); err == nil {
			speaker.Lock()
			p.mixer.Add(s)
			speaker.Unlock()
		}
	}
}

// Close silences anything still playing.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Sequence renders tones back to back into a single finite streamer.
func Sequence(sr beep.SampleRate, tones []Tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		n := sr.N(t.Duration)
		if t.Freq <= 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		sine, err := generators.SineTone(sr, t.Freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(n, sine))
	}
	return beep.Seq(parts...), nil
}
