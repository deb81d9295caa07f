package glowbreak

import (
	"math"

	"github.com/vovakirdan/glowbreak/internal/core"
)

// EliteKind identifies an elite brick from the catalogue.
type EliteKind int

const (
	EliteFlameLord EliteKind = iota
	EliteThunderGuard
	EliteMagnetCore
)

// EliteKinds is the round-robin order elites are placed in.
var EliteKinds = []EliteKind{EliteFlameLord, EliteThunderGuard, EliteMagnetCore}

// EliteInfo is the static description of an elite brick.
type EliteInfo struct {
	Name            string
	HP              int
	Interval        float64 // ms between attacks; 0 for continuous abilities
	ProjectileSpeed float64
	Pull            float64
	PullRange       float64
	Points          float64
	Color           core.Color
}

var eliteCatalogue = [...]EliteInfo{
	EliteFlameLord:    {Name: "FlameLord", HP: 8, Interval: 3000, ProjectileSpeed: 4, Points: 500, Color: core.ColorOrange},
	EliteThunderGuard: {Name: "ThunderGuard", HP: 6, Interval: 4000, Points: 400, Color: core.ColorBrightYellow},
	EliteMagnetCore:   {Name: "MagnetCore", HP: 10, Pull: 0.3, PullRange: 200, Points: 600, Color: core.ColorPurple},
}

// Info returns the catalogue entry of k.
func (k EliteKind) Info() EliteInfo {
	return eliteCatalogue[k]
}

func (k EliteKind) String() string {
	return k.Info().Name
}

// Elite tunables.
const (
	EliteChargeLeadMs     = 500
	EliteProjectileSize   = 15
	EliteProjectileBottom = 620 // Elite shots are removed below this y
	eliteMinPullDistance  = 10
)

// EliteState is the mutable part of an elite brick.
type EliteState struct {
	Kind    EliteKind
	Timer   float64 // ms since the last attack
	Charged bool    // Charge cue already given for the current cycle
}

// EliteAction is what an elite does on a tick.
type EliteAction int

const (
	EliteIdle EliteAction = iota
	EliteCharge
	EliteFire      // FlameLord fireball
	EliteLightning // ThunderGuard flash and paddle slow
)

// Update advances the timer of a timed elite and reports the action due.
func (e *EliteState) Update(dt float64) EliteAction {
	info := e.Kind.Info()
	if info.Interval <= 0 {
		return EliteIdle
	}
	e.Timer += dt
	if e.Timer >= info.Interval {
		e.Timer -= info.Interval
		e.Charged = false
		if e.Kind == EliteFlameLord {
			return EliteFire
		}
		return EliteLightning
	}
	if !e.Charged && e.Timer >= info.Interval-EliteChargeLeadMs {
		e.Charged = true
		return EliteCharge
	}
	return EliteIdle
}

// Fireball creates a FlameLord shot from the bottom centre of a brick.
// sway is a random value in [0,1) giving the horizontal drift.
func Fireball(cx, bottom, sway float64) *Projectile {
	return &Projectile{
		X:      cx - EliteProjectileSize/2,
		Y:      bottom,
		DX:     (sway - 0.5) * 2,
		DY:     EliteFlameLord.Info().ProjectileSpeed,
		Size:   EliteProjectileSize,
		Damage: 1,
		Owner:  OwnerElite,
		Attack: AttackFireball,
	}
}

// MagnetPull drags a ball toward a MagnetCore at (cx, cy). The ball is
// displaced, its velocity is left alone, so its speed never changes. The pull
// fades linearly to zero at the edge of the range and is skipped very close in.
func MagnetPull(b *Ball, cx, cy, ts float64) {
	info := EliteMagnetCore.Info()
	dx, dy := cx-b.X, cy-b.Y
	dist := math.Hypot(dx, dy)
	if dist >= info.PullRange || dist <= eliteMinPullDistance {
		return
	}
	force := info.Pull * (1 - dist/info.PullRange) * ts
	b.X += dx / dist * force
	b.Y += dy / dist * force
}
