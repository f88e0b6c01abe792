package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// loadInto fills cfg (pre-populated with defaults) from the first config
// source found. Search order: customPath -> ~/.arcade/configs/<name>.yaml
// -> ./configs/<name>.yaml -> embedded default.
//
// A broken customPath is an error; broken files found by searching are
// logged and skipped.
func loadInto[T validator](name, customPath string, embedded []byte, cfg *T) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		log.Debug("loaded config", "game", name, "path", customPath)
		return nil
	}

	candidates := []string{filepath.Join("configs", name+".yaml")}
	if userCfgPath := userConfigPath(name + ".yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// Decode into a copy so a half-parsed file does not leak into cfg
		attempt := *cfg
		if err := decode(data, &attempt); err != nil {
			log.Warn("ignoring config file", "game", name, "path", path, "error", err)
			continue
		}
		*cfg = attempt
		log.Debug("loaded config", "game", name, "path", path)
		return nil
	}

	if err := decode(embedded, cfg); err != nil {
		log.Warn("embedded config unusable, using built-in defaults", "game", name, "error", err)
	}
	return nil
}

// decode unmarshals YAML over the existing values and validates the result.
func decode[T validator](data []byte, cfg *T) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return (*cfg).Validate()
}

// LoadInvaders loads Invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := loadInto("invaders", customPath, defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), err
	}
	return cfg, nil
}

// LoadPong loads the paddle game configuration.
// Search order: customPath -> ~/.arcade/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := loadInto("pong", customPath, defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// applyDifficultyPreset sets progression fields shared by every game.
func applyDifficultyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyDifficultyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.EnemyFire.Chance /= 2
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Player.ShootCooldown = cfg.Player.ShootCooldown * 3 / 2
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyDifficultyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.CPU.MaxSkill = 0.8
	case DifficultyHard:
		cfg.CPU.MinSkill = 0.85
		cfg.CPU.DeadZone /= 2
	}
}
