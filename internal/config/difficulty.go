package config

import "github.com/vovakirdan/retro-arcade/internal/core"

// Progression types accepted in difficulty.progression.type.
const (
	ProgressionScore = "score" // Level follows points scored
	ProgressionTime  = "time"  // Level follows ticks played
	ProgressionNone  = "none"
)

// DifficultyManager turns a score or play time into a level in [0, 1]
// and scales game parameters with it.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		start: core.ClampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// progress is how far along the progression axis the game is, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) (float64, bool) {
	maxAt := float64(core.Max(d.cfg.Progression.MaxAt, 1))

	var p float64
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		p = float64(score) / maxAt
	case ProgressionTime:
		p = float64(ticks) / maxAt
	default:
		return 0, false
	}
	return core.ClampF(p, 0, 1), true
}

// Level rises linearly from the initial level to 1 as the game progresses.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.start
	}
	p, ok := d.progress(score, ticks)
	if !ok {
		return d.start
	}
	return d.start + p*(1-d.start)
}

// Speed scales base up to base * (1 + speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(base float64, score int, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Chance scales a per-roll probability like Speed, capped at 1.
func (d *DifficultyManager) Chance(base float64, score int, ticks int) float64 {
	return core.ClampF(base*(1+d.Level(score, ticks)*d.cfg.Scaling.ChanceMultiplier), 0, 1)
}

// Lerp interpolates between lo (level 0) and hi (level 1).
func (d *DifficultyManager) Lerp(lo, hi float64, score int, ticks int) float64 {
	return lo + (hi-lo)*d.Level(score, ticks)
}
