// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// FieldConfig is the logical playing field that games simulate in.
// Rendering scales it onto whatever terminal size is available.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InvadersConfig contains all configuration for the Invaders game.
type InvadersConfig struct {
	Field      FieldConfig       `yaml:"field"`
	Player     InvadersPlayer    `yaml:"player"`
	Bullets    InvadersBullets   `yaml:"bullets"`
	Formation  InvadersFormation `yaml:"formation"`
	EnemyFire  InvadersEnemyFire `yaml:"enemy_fire"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// InvadersPlayer defines the player's ship.
type InvadersPlayer struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	Speed         int `yaml:"speed"`
	BottomMargin  int `yaml:"bottom_margin"`  // Distance from ship top to field bottom
	Lives         int `yaml:"lives"`          // Lives at game start
	ShootCooldown int `yaml:"shoot_cooldown"` // Ticks between shots
}

// InvadersBullets defines bullet sizes and speeds.
type InvadersBullets struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	PlayerSpeed int `yaml:"player_speed"` // Upward speed of player bullets
	EnemySpeed  int `yaml:"enemy_speed"`  // Downward speed of enemy bullets
}

// InvadersFormation defines the enemy grid and its movement.
type InvadersFormation struct {
	Rows        int   `yaml:"rows"`
	Cols        int   `yaml:"cols"`
	EnemyWidth  int   `yaml:"enemy_width"`
	EnemyHeight int   `yaml:"enemy_height"`
	SpacingX    int   `yaml:"spacing_x"`
	SpacingY    int   `yaml:"spacing_y"`
	OffsetX     int   `yaml:"offset_x"`
	OffsetY     int   `yaml:"offset_y"`
	SpeedX      int   `yaml:"speed_x"` // Horizontal step per tick
	Drop        int   `yaml:"drop"`    // Descent when the formation hits an edge
	Points      []int `yaml:"points"`  // Points per enemy type (row / 2)
}

// InvadersEnemyFire defines how often the formation shoots back.
type InvadersEnemyFire struct {
	Interval int     `yaml:"interval"` // Ticks between fire attempts
	Chance   float64 `yaml:"chance"`   // Probability an attempt fires
}

// PongConfig contains configuration shared by the paddle games
// (two-player tennis and pong against the CPU).
type PongConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Ball       PongBall         `yaml:"ball"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPaddles defines paddle geometry and speed.
type PongPaddles struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
	Offset int `yaml:"offset"` // Distance from the side wall
}

// PongBall defines the ball.
type PongBall struct {
	Size      int     `yaml:"size"`
	SpeedX    int     `yaml:"speed_x"`
	SpeedY    int     `yaml:"speed_y"`
	Spin      float64 `yaml:"spin"`        // Vertical speed added per paddle hit offset (0 = plain reflection)
	MaxSpeedY int     `yaml:"max_speed_y"` // Cap for vertical speed when spin is on
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore   int `yaml:"win_score"`
	ServeDelay int `yaml:"serve_delay"` // Ticks the ball rests after a point
}

// PongCPU defines the computer opponent.
type PongCPU struct {
	Speed    int     `yaml:"speed"`     // Paddle speed at full skill
	DeadZone int     `yaml:"dead_zone"` // Distance at which the paddle stops chasing
	MinSkill float64 `yaml:"min_skill"` // Skill at difficulty level 0
	MaxSkill float64 `yaml:"max_skill"` // Skill at difficulty level 1
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	ChanceMultiplier float64 `yaml:"chance_multiplier"` // Multiplier added to random-event chances at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// An empty string means "use the config file as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: %w %q (want easy, normal, hard or fixed)", ErrUnknownPreset, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports configuration values the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return errors.New("field width and height must be positive")
	case c.Player.Width <= 0 || c.Player.Width > c.Field.Width:
		return errors.New("player width must fit the field")
	case c.Player.Lives <= 0:
		return errors.New("player lives must be positive")
	case c.Formation.Rows <= 0 || c.Formation.Cols <= 0:
		return errors.New("formation needs at least one row and column")
	case len(c.Formation.Points) == 0:
		return errors.New("formation points must not be empty")
	case c.EnemyFire.Chance < 0 || c.EnemyFire.Chance > 1:
		return errors.New("enemy fire chance must be within [0, 1]")
	}
	return nil
}

// Validate reports configuration values the simulation cannot run with.
func (c PongConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return errors.New("field width and height must be positive")
	case c.Paddles.Height <= 0 || c.Paddles.Height > c.Field.Height:
		return errors.New("paddle height must fit the field")
	case c.Ball.Size <= 0:
		return errors.New("ball size must be positive")
	case c.Ball.SpeedX == 0:
		return errors.New("ball horizontal speed must not be zero")
	case c.Gameplay.WinScore <= 0:
		return errors.New("win score must be positive")
	}
	return nil
}
