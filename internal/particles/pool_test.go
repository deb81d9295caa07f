package particles

import (
	"testing"

	"github.com/vovakirdan/glowbreak/internal/core"
)

func TestSpawnBurst(t *testing.T) {
	p := NewPool(0, 1)
	p.SpawnBurst(400, 300, core.ColorGold, 12, false)
	if p.Len() != 12 {
		t.Errorf("Len() = %d, expected 12", p.Len())
	}
	for _, pt := range p.live {
		if pt.life != 1 || pt.color != core.ColorGold {
			t.Errorf("fresh particle = %+v", pt)
		}
		if pt.size < 2 || pt.size > 5 {
			t.Errorf("spark size = %v, expected [2, 5]", pt.size)
		}
	}
}

func TestPoolRecyclesOldest(t *testing.T) {
	p := NewPool(10, 1)
	p.SpawnBurst(0, 0, core.ColorRed, 8, false)
	p.SpawnBurst(0, 0, core.ColorBlue, 5, true)

	if p.Len() != 10 {
		t.Fatalf("Len() = %d, expected 10", p.Len())
	}
	if p.Spawned() != 13 {
		t.Errorf("Spawned() = %d, expected 13", p.Spawned())
	}
	reds := 0
	for _, pt := range p.live {
		if pt.color == core.ColorRed {
			reds++
		}
	}
	if reds != 5 {
		t.Errorf("red particles = %d, expected the 3 oldest recycled", reds)
	}
	if p.live[len(p.live)-1].color != core.ColorBlue {
		t.Error("newest particle should be last")
	}
}

func TestUpdateRetires(t *testing.T) {
	p := NewPool(DefaultSize, 1)
	p.SpawnBurst(400, 300, core.ColorWhite, 20, true)

	p.Update(0)
	if p.Len() != 20 {
		t.Fatalf("Update(0) changed Len() to %d", p.Len())
	}
	for range 49 {
		p.Update(1)
	}
	if p.Len() != 20 {
		t.Errorf("Len() = %d after 49 frames, expected 20", p.Len())
	}
	p.Update(1.5)
	if p.Len() != 0 {
		t.Errorf("Len() = %d, expected every particle retired", p.Len())
	}
}

func TestRender(t *testing.T) {
	s := core.NewScreen(80, 24)
	vp := core.NewViewport(0, 0, 80, 24, 800, 600)

	p := NewPool(DefaultSize, 1)
	p.live = append(p.live,
		particle{x: 405, y: 305, life: 1, color: core.ColorCyan},
		particle{x: 105, y: 105, life: 0.1, color: core.ColorCyan},
		particle{x: -50, y: 300, life: 1},
	)
	s.Set(10, 4, 'O')
	p.Render(s, vp)

	if got := s.Get(40, 12); got != '*' {
		t.Errorf("fresh particle glyph = %q, expected '*'", got)
	}
	if got := s.GetCell(40, 12).Color; got != core.ColorCyan {
		t.Errorf("color = %v, expected cyan", got)
	}
	if got := s.Get(10, 4); got != 'O' {
		t.Errorf("particle drew over %q", got)
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		life     float64
		expected rune
	}{
		{1, '*'},
		{0.6, '+'},
		{0.3, '·'},
		{0.1, '.'},
	}
	for _, tt := range tests {
		if got := glyph(tt.life); got != tt.expected {
			t.Errorf("glyph(%v) = %q, expected %q", tt.life, got, tt.expected)
		}
	}
}

func TestReset(t *testing.T) {
	p := NewPool(DefaultSize, 1)
	p.SpawnBurst(0, 0, core.ColorRed, 5, false)
	p.Reset()
	if p.Len() != 0 {
		t.Errorf("Len() = %d after Reset, expected 0", p.Len())
	}
}
