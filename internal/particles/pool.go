// Package particles animates the spark bursts thrown off by bricks, bosses
// and explosions, and draws them over the game screen.
package particles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/glowbreak/internal/core"
)

// DefaultSize is the pool capacity used by the frontends.
const DefaultSize = 200

// Motion tuning, per reference frame.
const (
	sparkSpeed     = 4.0
	explosionSpeed = 6.0
	lifeDecay      = 0.02
	sizeDecay      = 0.96
	gravity        = 0.05
)

type particle struct {
	x, y   float64
	dx, dy float64
	size   float64
	life   float64 // 1 at spawn, retired at 0
	color  core.Color
}

// Pool is a bounded particle system. When full, spawning recycles the
// oldest live particle. Not safe for concurrent use.
type Pool struct {
	max   int
	live  []particle // Oldest first
	rng   *rand.Rand
	spawn uint64
}

var _ core.ParticleSink = (*Pool)(nil)

// NewPool creates a pool of at most size particles. size <= 0 selects
// DefaultSize.
func NewPool(size int, seed int64) *Pool {
	if size <= 0 {
		size = DefaultSize
	}
	return &Pool{
		max:  size,
		live: make([]particle, 0, size),
		rng:  rand.New(rand.NewSource(seed)), //#nosec G404 -- visual effect only
	}
}

// SpawnBurst emits count particles at world point (x, y).
func (p *Pool) SpawnBurst(x, y float64, c core.Color, count int, explosion bool) {
	speed, size := sparkSpeed, 3.0
	if explosion {
		speed, size = explosionSpeed, 6.0
	}
	for range count {
		angle := p.rng.Float64() * 2 * math.Pi
		v := p.rng.Float64() * speed
		p.add(particle{
			x:     x,
			y:     y,
			dx:    math.Cos(angle) * v,
			dy:    math.Sin(angle) * v,
			size:  p.rng.Float64()*size + 2,
			life:  1,
			color: c,
		})
	}
}

func (p *Pool) add(pt particle) {
	p.spawn++
	if len(p.live) < p.max {
		p.live = append(p.live, pt)
		return
	}
	// Recycle the oldest
	copy(p.live, p.live[1:])
	p.live[len(p.live)-1] = pt
}

// Update advances every particle by ts reference frames and retires the
// burnt-out ones.
func (p *Pool) Update(ts float64) {
	if ts <= 0 {
		return
	}
	kept := p.live[:0]
	for _, pt := range p.live {
		pt.x += pt.dx * ts
		pt.y += pt.dy * ts
		pt.dy += gravity * ts
		pt.life -= lifeDecay * ts
		pt.size *= math.Pow(sizeDecay, ts)
		if pt.life > 0 {
			kept = append(kept, pt)
		}
	}
	p.live = kept
}

// Len returns the number of live particles.
func (p *Pool) Len() int {
	return len(p.live)
}

// Spawned returns the number of particles ever emitted.
func (p *Pool) Spawned() uint64 {
	return p.spawn
}

// Reset retires every particle.
func (p *Pool) Reset() {
	p.live = p.live[:0]
}

// glyph picks a character for the remaining life.
func glyph(life float64) rune {
	switch {
	case life > 0.75:
		return '*'
	case life > 0.5:
		return '+'
	case life > 0.25:
		return '·'
	default:
		return '.'
	}
}

// Render draws live particles that fall inside the viewport. Cells already
// holding a glyph are left alone so sparks never hide the ball or paddle.
func (p *Pool) Render(s *core.Screen, vp core.Viewport) {
	for _, pt := range p.live {
		cx, cy := vp.Cell(pt.x, pt.y)
		if !vp.Inside(cx, cy) {
			continue
		}
		if r := s.Get(cx, cy); r != ' ' && r != 0 {
			continue
		}
		s.SetColor(cx, cy, glyph(pt.life), pt.color)
	}
}
