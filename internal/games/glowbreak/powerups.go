package glowbreak

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/glowbreak/internal/core"
)

// Kind is a power-up type.
type Kind int

const (
	KindExpand Kind = iota
	KindMultiball
	KindPierce
	KindSlow
	KindShrink
	KindFireball
	KindMagnet
	KindInvincible
	KindScoreDouble
	KindTimeSlow
	kindCount
)

// NormalKinds can drop from bricks. Special kinds only come from idle drops
// and random bricks.
var NormalKinds = []Kind{KindExpand, KindMultiball, KindPierce, KindSlow, KindShrink}

// AllKinds lists every power-up.
var AllKinds = []Kind{
	KindExpand, KindMultiball, KindPierce, KindSlow, KindShrink,
	KindFireball, KindMagnet, KindInvincible, KindScoreDouble, KindTimeSlow,
}

// Effect tunables.
const (
	ExpandFactor     = 1.5
	ShrinkFactor     = 0.6
	FreezeWidth      = 1.2
	ScoreDoubleValue = 2.0
	TimeSlowFactor   = 0.5
	MultiballSpread  = 0.7
	InvincibleHeight = 5
)

// String returns the config key of the kind.
func (k Kind) String() string {
	switch k {
	case KindExpand:
		return "expand"
	case KindMultiball:
		return "multiball"
	case KindPierce:
		return "pierce"
	case KindSlow:
		return "slow"
	case KindShrink:
		return "shrink"
	case KindFireball:
		return "fireball"
	case KindMagnet:
		return "magnet"
	case KindInvincible:
		return "invincible"
	case KindScoreDouble:
		return "score_double"
	case KindTimeSlow:
		return "time_slow"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Label returns the name shown to the player.
func (k Kind) Label() string {
	switch k {
	case KindExpand:
		return "Expand"
	case KindMultiball:
		return "Multiball"
	case KindPierce:
		return "Pierce"
	case KindSlow:
		return "Slow"
	case KindShrink:
		return "Shrink"
	case KindFireball:
		return "Fireball"
	case KindMagnet:
		return "Magnet"
	case KindInvincible:
		return "Invincible"
	case KindScoreDouble:
		return "Score x2"
	case KindTimeSlow:
		return "Time Slow"
	default:
		return k.String()
	}
}

// Glyph returns the display character for a pickup.
func (k Kind) Glyph() rune {
	switch k {
	case KindExpand:
		return 'E'
	case KindMultiball:
		return 'M'
	case KindPierce:
		return 'P'
	case KindSlow:
		return 'S'
	case KindShrink:
		return 'X'
	case KindFireball:
		return 'F'
	case KindMagnet:
		return 'G'
	case KindInvincible:
		return 'I'
	case KindScoreDouble:
		return '$'
	case KindTimeSlow:
		return 'T'
	default:
		return '?'
	}
}

// Color returns the pickup colour.
func (k Kind) Color() core.Color {
	switch k {
	case KindExpand, KindFireball:
		return core.ColorBrightRed
	case KindMultiball:
		return core.ColorBrightCyan
	case KindPierce, KindScoreDouble:
		return core.ColorGold
	case KindSlow:
		return core.ColorBrightGreen
	case KindShrink, KindTimeSlow:
		return core.ColorPurple
	case KindMagnet:
		return core.ColorOrange
	case KindInvincible:
		return core.ColorIce
	default:
		return core.ColorWhite
	}
}

// Timed reports whether the kind registers an active effect.
func (k Kind) Timed() bool {
	return k != KindMultiball
}

// defaultDurations are used when the config lacks an entry.
var defaultDurations = [kindCount]float64{
	KindExpand:      10000,
	KindMultiball:   0,
	KindPierce:      8000,
	KindSlow:        8000,
	KindShrink:      5000,
	KindFireball:    6000,
	KindMagnet:      8000,
	KindInvincible:  10000,
	KindScoreDouble: 15000,
	KindTimeSlow:    10000,
}

// Effects maps each active timed kind to its remaining time in ms.
// A kind present in the map has its effect applied.
type Effects map[Kind]float64

// Active reports whether k is applied.
func (e Effects) Active(k Kind) bool {
	_, ok := e[k]
	return ok
}

// Sorted returns the active kinds in a stable order.
func (e Effects) Sorted() []Kind {
	out := make([]Kind, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// powerUpTarget is the part of the session the power-up manager mutates.
type powerUpTarget interface {
	balls() []*Ball
	addBalls(bs ...*Ball)
	paddle() *Paddle
	shield() *Shield
	setScoreMultiplier(v float64)
	setTimeFactor(v float64)
	refreshPaddleWidth()
}

// PowerUps applies and reverts power-up effects.
type PowerUps struct {
	Effects   Effects
	durations [kindCount]float64
	shieldY   float64
}

// NewPowerUps creates a manager with durations taken from cfg, falling back
// to the built-in defaults.
func NewPowerUps(durations map[string]float64, shieldY float64) *PowerUps {
	p := &PowerUps{Effects: make(Effects), shieldY: shieldY}
	for k := range kindCount {
		p.durations[k] = defaultDurations[k]
		if d, ok := durations[k.String()]; ok && d >= 0 {
			p.durations[k] = d
		}
	}
	return p
}

// Duration returns the configured duration of k.
func (p *PowerUps) Duration(k Kind) float64 {
	if k < 0 || k >= kindCount {
		return 0
	}
	return p.durations[k]
}

// Apply activates k. Expand and Shrink cancel each other first, so the paddle
// width always reflects the most recent of the two.
func (p *PowerUps) Apply(t powerUpTarget, k Kind) {
	switch k {
	case KindExpand:
		delete(p.Effects, KindShrink)
		p.Effects[k] = p.durations[k]
		t.refreshPaddleWidth()
	case KindShrink:
		delete(p.Effects, KindExpand)
		p.Effects[k] = p.durations[k]
		t.refreshPaddleWidth()
	case KindMultiball:
		var clones []*Ball
		for _, b := range t.balls() {
			if b.Held {
				continue
			}
			s := b.ExpectedSpeed() * MultiballSpread
			left, right := b.Clone(), b.Clone()
			left.DX, left.DY = s, -s
			right.DX, right.DY = -s, -s
			clones = append(clones, left, right)
		}
		t.addBalls(clones...)
	case KindPierce:
		p.setAll(t, ModPierce)
		p.Effects[k] = p.durations[k]
	case KindSlow:
		p.setAll(t, ModSlowed)
		p.Effects[k] = p.durations[k]
	case KindFireball:
		p.setAll(t, ModFireball)
		p.Effects[k] = p.durations[k]
	case KindMagnet:
		p.setAll(t, ModMagnet)
		p.Effects[k] = p.durations[k]
	case KindInvincible:
		s := t.shield()
		s.Active = true
		s.Y = p.shieldY
		s.Height = InvincibleHeight
		s.RemainingMs = max(s.RemainingMs, p.durations[k])
		p.Effects[k] = p.durations[k]
	case KindScoreDouble:
		t.setScoreMultiplier(ScoreDoubleValue)
		p.Effects[k] = p.durations[k]
	case KindTimeSlow:
		t.setTimeFactor(TimeSlowFactor)
		p.Effects[k] = p.durations[k]
	default:
		panic(fmt.Sprintf("glowbreak: unhandled power-up %v", k))
	}
}

// Revert undoes k. Callers remove k from Effects first, so the paddle width
// refresh sees the remaining effects.
func (p *PowerUps) Revert(t powerUpTarget, k Kind) {
	switch k {
	case KindExpand, KindShrink:
		t.refreshPaddleWidth()
	case KindMultiball:
		// Instant, nothing to undo
	case KindPierce:
		p.clearAll(t, ModPierce)
	case KindSlow:
		p.clearAll(t, ModSlowed)
	case KindFireball:
		p.clearAll(t, ModFireball)
	case KindMagnet:
		p.clearAll(t, ModMagnet)
	case KindInvincible:
		// The shield keeps running if a shield brick extended it
		if s := t.shield(); s.RemainingMs <= 0 {
			s.Active = false
		}
	case KindScoreDouble:
		t.setScoreMultiplier(1)
	case KindTimeSlow:
		t.setTimeFactor(1)
	default:
		panic(fmt.Sprintf("glowbreak: unhandled power-up %v", k))
	}
}

// Tick decrements every active effect by dt and reverts those that run out,
// exactly once each. It returns the expired kinds in order.
func (p *PowerUps) Tick(t powerUpTarget, dt float64) []Kind {
	var expired []Kind
	for _, k := range p.Effects.Sorted() {
		p.Effects[k] -= dt
		if p.Effects[k] <= 0 {
			delete(p.Effects, k)
			p.Revert(t, k)
			expired = append(expired, k)
		}
	}
	return expired
}

// RevertAll removes every active effect, reverting each once.
func (p *PowerUps) RevertAll(t powerUpTarget) {
	for _, k := range p.Effects.Sorted() {
		delete(p.Effects, k)
		p.Revert(t, k)
	}
}

// WidthFactor returns the paddle width factor of the size effects.
func (p *PowerUps) WidthFactor() float64 {
	switch {
	case p.Effects.Active(KindExpand):
		return ExpandFactor
	case p.Effects.Active(KindShrink):
		return ShrinkFactor
	default:
		return 1
	}
}

// BallMods returns the modifiers a newly spawned ball should carry.
func (p *PowerUps) BallMods() Modifier {
	var m Modifier
	if p.Effects.Active(KindPierce) {
		m |= ModPierce
	}
	if p.Effects.Active(KindFireball) {
		m |= ModFireball
	}
	if p.Effects.Active(KindMagnet) {
		m |= ModMagnet
	}
	return m
}

func (p *PowerUps) setAll(t powerUpTarget, m Modifier) {
	for _, b := range t.balls() {
		b.SetMod(m)
	}
}

func (p *PowerUps) clearAll(t powerUpTarget, m Modifier) {
	for _, b := range t.balls() {
		b.ClearMod(m)
	}
}
