package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/glowbreak/internal/core"
)

const testRate = beep.SampleRate(44100)

func TestEverySoundRenders(t *testing.T) {
	for ev := core.SoundEvent(0); int(ev) < core.SoundEventCount; ev++ {
		t.Run(ev.String(), func(t *testing.T) {
			buf := generateSound(keyFor(ev, core.SoundParams{Row: 2, Combo: 3}), testRate)
			if len(buf) == 0 {
				t.Fatal("empty sound")
			}
			for i, v := range buf {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("sample %d = %v", i, v)
				}
			}
		})
	}
}

func TestPaddleHitLength(t *testing.T) {
	buf := generateSound(soundKey{event: core.SoundPaddleHit}, testRate)
	if want := testRate.N(100 * time.Millisecond); len(buf) != want {
		t.Errorf("len = %d, expected %d", len(buf), want)
	}
}

func TestLoseLifeIncludesOffsets(t *testing.T) {
	// Last tone starts at 300ms and lasts 200ms
	buf := generateSound(soundKey{event: core.SoundLoseLife}, testRate)
	if want := testRate.N(300*time.Millisecond) + testRate.N(200*time.Millisecond); len(buf) != want {
		t.Errorf("len = %d, expected %d", len(buf), want)
	}
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		name     string
		ev       core.SoundEvent
		p        core.SoundParams
		expected soundKey
	}{
		{"row", core.SoundBrickHit, core.SoundParams{Row: 3}, soundKey{core.SoundBrickHit, 3}},
		{"negative row", core.SoundBrickHit, core.SoundParams{Row: -2}, soundKey{core.SoundBrickHit, 0}},
		{"deep row", core.SoundBrickHit, core.SoundParams{Row: 40}, soundKey{core.SoundBrickHit, maxRowVariant}},
		{"combo", core.SoundCombo, core.SoundParams{Combo: 5}, soundKey{core.SoundCombo, 5}},
		{"zero combo", core.SoundCombo, core.SoundParams{}, soundKey{core.SoundCombo, 1}},
		{"huge combo", core.SoundCombo, core.SoundParams{Combo: 500}, soundKey{core.SoundCombo, maxComboVariant}},
		{"plain", core.SoundWallHit, core.SoundParams{Row: 3, Combo: 9}, soundKey{event: core.SoundWallHit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyFor(tt.ev, tt.p); got != tt.expected {
				t.Errorf("keyFor() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestComboFreq(t *testing.T) {
	tests := []struct {
		combo    int
		expected float64
	}{
		{1, 261.6},
		{5, 392},
		{8, 523.2},
		{9, 523.2},
		{10, 587.2},
		{17, 784.8},
	}
	for _, tt := range tests {
		if got := comboFreq(tt.combo); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("comboFreq(%d) = %v, expected %v", tt.combo, got, tt.expected)
		}
	}
}

func TestThemeLength(t *testing.T) {
	for theme, m := range melodies {
		t.Run(string(theme), func(t *testing.T) {
			beat := time.Duration(float64(time.Minute) / m.bpm)
			want := 0
			for _, n := range m.notes {
				want += testRate.N(beat * time.Duration(n.dur) / 4)
			}
			if got := len(generateTheme(theme, testRate)); got != want {
				t.Errorf("len = %d, expected %d", got, want)
			}
		})
	}
}

func TestUnknownTheme(t *testing.T) {
	if buf := generateTheme("disco", testRate); buf != nil {
		t.Errorf("generateTheme(disco) = %d samples, expected none", len(buf))
	}
}

func TestCacheReuses(t *testing.T) {
	c := newSoundCache(testRate)
	k := soundKey{event: core.SoundCoin}
	a := c.get(k)
	b := c.get(k)
	if len(a) == 0 || &a[0] != &b[0] {
		t.Error("cache should return the same buffer")
	}
	if len(c.theme(core.ThemeBoss)) == 0 {
		t.Error("boss theme should render")
	}
}
