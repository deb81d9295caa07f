// Package config provides YAML-based game configuration loading and
// difficulty presets for glowbreak.
package config

import "time"

// Config contains all tunables of the game. Distances are world units on an
// 800×600 field, durations are milliseconds unless the field says otherwise.
type Config struct {
	Field       FieldConfig       `yaml:"field"`
	Paddle      PaddleConfig      `yaml:"paddle"`
	Ball        BallConfig        `yaml:"ball"`
	Bricks      BricksConfig      `yaml:"bricks"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	PowerUps    PowerUpConfig     `yaml:"powerups"`
	Endless     EndlessConfig     `yaml:"endless"`
	Audio       AudioConfig       `yaml:"audio"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// FieldConfig defines the playfield.
type FieldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	FrameInterval float64 `yaml:"frame_interval_ms"` // Reference frame for time scaling
	MaxTimeScale  float64 `yaml:"max_time_scale"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the field bottom to the paddle top
}

// BallConfig defines ball motion.
type BallConfig struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	LevelStep     float64 `yaml:"level_step"`     // Speed added per cleared level
	MinHorizontal float64 `yaml:"min_horizontal"` // Fraction of speed kept on the x axis after a paddle bounce
	Tolerance     float64 `yaml:"tolerance"`      // Allowed speed drift before renormalizing
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	BossRows   int     `yaml:"boss_rows"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// GameplayConfig defines lives, continues and idle handling.
type GameplayConfig struct {
	Lives           int     `yaml:"lives"`
	MaxLives        int     `yaml:"max_lives"`
	ContinueCost    float64 `yaml:"continue_cost"`
	ContinueMs      float64 `yaml:"continue_ms"`
	InitialCredits  int     `yaml:"initial_credits"`
	InvincibleMs    float64 `yaml:"invincible_ms"` // Paddle protection after a continue
	IdleDropMs      float64 `yaml:"idle_drop_ms"`
	BossDamageCDMs  float64 `yaml:"boss_damage_cooldown_ms"`
	ExplosionChain  float64 `yaml:"explosion_chain_ms"`
	ExplosionSettle float64 `yaml:"explosion_settle_ms"`
}

// PowerUpConfig defines pickups and timed effects.
type PowerUpConfig struct {
	FallSpeed       float64            `yaml:"fall_speed"`
	Size            float64            `yaml:"size"`
	DropChance      float64            `yaml:"drop_chance"`
	FewBricksChance float64            `yaml:"few_bricks_chance"`  // With ≤10 bricks left
	LastBricksBonus float64            `yaml:"last_bricks_chance"` // With ≤5 bricks left
	Durations       map[string]float64 `yaml:"durations_ms"`
	ShieldMs        float64            `yaml:"shield_ms"` // Shield brick
	FreezeMs        float64            `yaml:"freeze_ms"` // Freeze brick
	EliteSlowMs     float64            `yaml:"elite_slow_ms"`
}

// EndlessConfig defines endless mode.
type EndlessConfig struct {
	RowIntervalMs float64 `yaml:"row_interval_ms"`
	DangerMargin  float64 `yaml:"danger_margin"` // Game over when a brick gets this close to the paddle
	BombChance    float64 `yaml:"bomb_chance"`
	ToughChance   float64 `yaml:"tough_chance"`
}

// AudioConfig defines the sound output.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
	SampleRate   int     `yaml:"sample_rate"`
}

// LeaderboardConfig defines the daily leaderboard.
type LeaderboardConfig struct {
	Limit       int           `yaml:"limit"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	MaxNameLen  int           `yaml:"max_name_len"`
	DefaultName string        `yaml:"default_name"`
}

// Duration returns the configured duration of a named power-up, or fallback.
func (p PowerUpConfig) Duration(name string, fallback float64) float64 {
	if d, ok := p.Durations[name]; ok && d >= 0 {
		return d
	}
	return fallback
}
