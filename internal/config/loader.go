package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in every search location.
const FileName = "glowbreak.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.glowbreak/configs/glowbreak.yaml -> ./configs/glowbreak.yaml -> embedded default
//
// Files are decoded on top of Default(), so a partial file only overrides the
// keys it names.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	case c.Field.FrameInterval <= 0:
		return fmt.Errorf("frame_interval_ms must be positive, got %v", c.Field.FrameInterval)
	case c.Bricks.Columns <= 0 || c.Bricks.Rows <= 0:
		return fmt.Errorf("brick grid must have rows and columns, got %dx%d", c.Bricks.Columns, c.Bricks.Rows)
	case c.Bricks.BossRows < c.Bricks.Rows:
		return fmt.Errorf("boss_rows (%d) must not be below rows (%d)", c.Bricks.BossRows, c.Bricks.Rows)
	case c.Ball.Speed <= 0 || c.Ball.MaxSpeed < c.Ball.Speed:
		return fmt.Errorf("ball speed %v must be positive and not above max_speed %v", c.Ball.Speed, c.Ball.MaxSpeed)
	case c.Paddle.Width <= 0:
		return fmt.Errorf("paddle width must be positive, got %v", c.Paddle.Width)
	case c.Gameplay.Lives <= 0 || c.Gameplay.MaxLives < c.Gameplay.Lives:
		return fmt.Errorf("lives %d must be positive and not above max_lives %d", c.Gameplay.Lives, c.Gameplay.MaxLives)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".glowbreak", "configs", filename)
}
