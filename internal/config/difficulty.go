package config

import (
	"fmt"
	"math"
	"strings"
)

// Preset names a difficulty preset.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset parses a preset name. An empty name means normal.
func ParsePreset(s string) (Preset, error) {
	switch Preset(strings.ToLower(strings.TrimSpace(s))) {
	case "", PresetNormal:
		return PresetNormal, nil
	case PresetEasy:
		return PresetEasy, nil
	case PresetHard:
		return PresetHard, nil
	}
	return PresetNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width *= 1.25
		cfg.Ball.Speed = math.Max(cfg.Ball.Speed-0.6, 2)
	case PresetHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width *= 0.8
		cfg.Ball.Speed = math.Min(cfg.Ball.Speed+0.8, cfg.Ball.MaxSpeed)
		cfg.PowerUps.DropChance *= 0.75
	}
	if cfg.Gameplay.MaxLives < cfg.Gameplay.Lives {
		cfg.Gameplay.MaxLives = cfg.Gameplay.Lives
	}
}

// Assist computes the relief a struggling player gets after repeated losses.
type Assist struct {
	ConsecutiveLosses int // Terminal game overs in a row, cleared by a level win
	BossFailures      int // Terminal game overs on boss levels in a row
}

// AssistThreshold is the number of straight losses that triggers ball relief.
const AssistThreshold = 3

// Active reports whether the player should get ball speed relief.
func (a Assist) Active() bool {
	return a.ConsecutiveLosses >= AssistThreshold
}

// BallSpeed returns the relieved ball speed: 0.5 slower once active,
// never below base.
func (a Assist) BallSpeed(current, base float64) float64 {
	if !a.Active() {
		return current
	}
	return math.Max(base, current-0.5)
}

// BossHP returns the boss hit points after the failure discount.
// At least 3 hit points always remain.
func (a Assist) BossHP(maxHP int) int {
	if a.BossFailures <= 0 || maxHP <= 3 {
		return maxHP
	}
	reduction := min(a.BossFailures*2, maxHP-3)
	return maxHP - reduction
}
