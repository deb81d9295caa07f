package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded yaml and Default() differ:\n yaml: %+v\n code: %+v", cfg, Default())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ball:\n  speed: 5.5\nleaderboard:\n  cache_ttl: 30s\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Ball.Speed != 5.5 {
		t.Errorf("Ball.Speed = %v, expected 5.5", cfg.Ball.Speed)
	}
	if cfg.Leaderboard.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, expected 30s", cfg.Leaderboard.CacheTTL)
	}
	if cfg.Paddle.Width != Default().Paddle.Width {
		t.Errorf("unset keys should keep defaults, Paddle.Width = %v", cfg.Paddle.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("bricks:\n  columns: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected validation error for zero columns")
	}
}

func TestPowerUpDuration(t *testing.T) {
	p := Default().PowerUps
	tests := []struct {
		name     string
		fallback float64
		expected float64
	}{
		{"expand", 1, 10000},
		{"multiball", 1, 0},
		{"unknown", 42, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Duration(tt.name, tt.fallback); got != tt.expected {
				t.Errorf("Duration(%q) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected Preset
		wantErr  bool
	}{
		{"", PresetNormal, false},
		{"Easy", PresetEasy, false},
		{" hard ", PresetHard, false},
		{"nightmare", PresetNormal, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePreset(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParsePreset(%q) = %v, expected %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	easy := Default()
	ApplyPreset(&easy, PresetEasy)
	if easy.Gameplay.Lives != 5 || easy.Paddle.Width <= Default().Paddle.Width {
		t.Errorf("easy preset: lives=%d width=%v", easy.Gameplay.Lives, easy.Paddle.Width)
	}

	hard := Default()
	ApplyPreset(&hard, PresetHard)
	if hard.Gameplay.Lives != 2 || hard.Ball.Speed <= Default().Ball.Speed {
		t.Errorf("hard preset: lives=%d speed=%v", hard.Gameplay.Lives, hard.Ball.Speed)
	}
	if hard.Ball.Speed > hard.Ball.MaxSpeed {
		t.Errorf("hard preset exceeded max speed: %v", hard.Ball.Speed)
	}
}

func TestAssist(t *testing.T) {
	tests := []struct {
		name      string
		assist    Assist
		current   float64
		maxHP     int
		wantSpeed float64
		wantHP    int
	}{
		{"fresh player", Assist{}, 5.0, 10, 5.0, 10},
		{"two losses", Assist{ConsecutiveLosses: 2}, 5.0, 10, 5.0, 10},
		{"three losses", Assist{ConsecutiveLosses: 3}, 5.0, 10, 4.5, 10},
		{"relief floors at base", Assist{ConsecutiveLosses: 4}, 4.8, 10, 4.6, 10},
		{"one boss failure", Assist{BossFailures: 1}, 5.0, 10, 5.0, 8},
		{"boss hp keeps three", Assist{BossFailures: 9}, 5.0, 12, 5.0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.assist.BallSpeed(tt.current, 4.6); got != tt.wantSpeed {
				t.Errorf("BallSpeed() = %v, expected %v", got, tt.wantSpeed)
			}
			if got := tt.assist.BossHP(tt.maxHP); got != tt.wantHP {
				t.Errorf("BossHP() = %v, expected %v", got, tt.wantHP)
			}
		})
	}
}
