package glowbreak

import (
	"testing"

	"github.com/vovakirdan/glowbreak/internal/core"
)

func TestComputeRank(t *testing.T) {
	tests := []struct {
		name     string
		miss     int
		combo    int
		score    float64
		expected Rank
	}{
		{"flawless", 0, 25, 2000, RankS},
		{"one miss", 1, 15, 1200, RankA},
		{"combo short of S", 0, 19, 2000, RankA},
		{"solid", 2, 10, 1000, RankB},
		{"low score", 2, 30, 999, RankC},
		{"three misses", 3, 0, 0, RankC},
		{"four misses", 4, 50, 10000, RankD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeRank(tt.miss, tt.combo, tt.score, 1000); got != tt.expected {
				t.Errorf("ComputeRank() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestParseRank(t *testing.T) {
	for _, r := range []Rank{RankD, RankC, RankB, RankA, RankS} {
		if got := ParseRank(r.String()); got != r {
			t.Errorf("ParseRank(%q) = %v, expected %v", r.String(), got, r)
		}
	}
	if got := ParseRank("Z"); got != RankNone {
		t.Errorf("ParseRank(Z) = %v, expected none", got)
	}
}

func TestTargetScore(t *testing.T) {
	if got := TargetScore(1); got != 1000 {
		t.Errorf("TargetScore(1) = %v, expected 1000", got)
	}
	if got := TargetScore(5); got != 3000 {
		t.Errorf("TargetScore(5) = %v, expected 3000", got)
	}
}

func TestRewardFor(t *testing.T) {
	tests := []struct {
		level    int
		mode     GameMode
		expected Reward
	}{
		{1, ModeCampaign, Reward{Lives: 1}},
		{1, ModeEndless, Reward{Score: 100}},
		{7, ModeCampaign, Reward{Lives: 2, Score: 300}},
		{14, ModeCampaign, Reward{Lives: 3, Score: 500, Credits: 1}},
		{21, ModeCampaign, Reward{Lives: 3, Score: 600, Credits: 1}},
		{28, ModeCampaign, Reward{Lives: 3, Score: 800, Credits: 1, Complete: true}},
		{28, ModeEndless, Reward{Lives: 3, Score: 800, Credits: 1}},
	}
	for _, tt := range tests {
		if got := RewardFor(tt.level, tt.mode); got != tt.expected {
			t.Errorf("RewardFor(%d, %v) = %+v, expected %+v", tt.level, tt.mode, got, tt.expected)
		}
	}
}

func TestThemeForLevel(t *testing.T) {
	tests := []struct {
		level    int
		expected core.Theme
	}{
		{1, core.ThemeNormal},
		{2, core.ThemeJourney},
		{7, core.ThemeBoss},
		{8, core.ThemeTriumph},
		{14, core.ThemeBoss},
		{15, core.ThemeFast},
		{22, core.ThemeMystic},
	}
	for _, tt := range tests {
		if got := ThemeForLevel(tt.level); got != tt.expected {
			t.Errorf("ThemeForLevel(%d) = %v, expected %v", tt.level, got, tt.expected)
		}
	}
}
