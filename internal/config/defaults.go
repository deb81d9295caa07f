package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/glowbreak.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration, matching defaults/glowbreak.yaml.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:         800,
			Height:        600,
			FrameInterval: 16.67,
			MaxTimeScale:  3,
		},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       15,
			Speed:        10,
			BottomOffset: 40,
		},
		Ball: BallConfig{
			Radius:        10,
			Speed:         4.6,
			MaxSpeed:      7,
			LevelStep:     0.26,
			MinHorizontal: 0.3,
			Tolerance:     0.5,
		},
		Bricks: BricksConfig{
			Columns:    10,
			Rows:       6,
			BossRows:   8,
			Width:      68,
			Height:     25,
			Padding:    8,
			OffsetTop:  50,
			OffsetLeft: 24,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			MaxLives:        10,
			ContinueCost:    15000,
			ContinueMs:      5000,
			InitialCredits:  0,
			InvincibleMs:    3000,
			IdleDropMs:      3000,
			BossDamageCDMs:  50,
			ExplosionChain:  100,
			ExplosionSettle: 150,
		},
		PowerUps: PowerUpConfig{
			FallSpeed:       3,
			Size:            25,
			DropChance:      0.2,
			FewBricksChance: 0.5,
			LastBricksBonus: 0.8,
			ShieldMs:        8000,
			FreezeMs:        5000,
			EliteSlowMs:     1000,
			Durations: map[string]float64{
				"expand":       10000,
				"shrink":       5000,
				"multiball":    0,
				"pierce":       8000,
				"slow":         8000,
				"fireball":     6000,
				"magnet":       8000,
				"invincible":   10000,
				"score_double": 15000,
				"time_slow":    10000,
			},
		},
		Endless: EndlessConfig{
			RowIntervalMs: 15000,
			DangerMargin:  50,
			BombChance:    0.1,
			ToughChance:   0.3,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			MusicVolume:  0.3,
			SampleRate:   44100,
		},
		Leaderboard: LeaderboardConfig{
			Limit:       10,
			CacheTTL:    2 * time.Minute,
			MaxNameLen:  12,
			DefaultName: "anonymous",
		},
	}
}
