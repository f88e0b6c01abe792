package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultInvadersConfig returns the default Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Player: InvadersPlayer{
			Width:         50,
			Height:        30,
			Speed:         5,
			BottomMargin:  50,
			Lives:         3,
			ShootCooldown: 15,
		},
		Bullets: InvadersBullets{
			Width:       3,
			Height:      10,
			PlayerSpeed: 8,
			EnemySpeed:  4,
		},
		Formation: InvadersFormation{
			Rows:        5,
			Cols:        10,
			EnemyWidth:  40,
			EnemyHeight: 30,
			SpacingX:    60,
			SpacingY:    50,
			OffsetX:     80,
			OffsetY:     50,
			SpeedX:      1,
			Drop:        20,
			Points:      []int{10, 20, 30},
		},
		EnemyFire: InvadersEnemyFire{
			Interval: 60,
			Chance:   0.02,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				ChanceMultiplier: 2.0,
			},
		},
	}
}

// DefaultPongConfig returns the default configuration for the paddle games.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Paddles: PongPaddles{
			Width:  10,
			Height: 100,
			Speed:  8,
			Offset: 20,
		},
		Ball: PongBall{
			Size:      20,
			SpeedX:    6,
			SpeedY:    6,
			Spin:      0,
			MaxSpeedY: 12,
		},
		Gameplay: PongGameplay{
			WinScore:   5,
			ServeDelay: 30,
		},
		CPU: PongCPU{
			Speed:    6,
			DeadZone: 10,
			MinSkill: 0.6,
			MaxSkill: 1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionTime,
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "invaders":
		return defaultInvadersYAML
	case "pong", "tennis":
		return defaultPongYAML
	default:
		return nil
	}
}
