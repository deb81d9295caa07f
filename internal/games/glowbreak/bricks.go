package glowbreak

import (
	"fmt"
	"math"

	"github.com/vovakirdan/glowbreak/internal/core"
)

// Base points per brick type, before the combo and score multipliers.
const (
	PointsNormal    = 10
	PointsGold      = 20
	PointsLightning = 15 // Per brick cleared from the row
	PointsSpecial   = 15 // Shield, freeze, teleport and random bricks
	PointsBomb      = 20
	PointsBlast     = 10 // Per non-bomb neighbour destroyed by a bomb
	PointsBurn      = 10 // Per brick destroyed by a fireball burn
)

// Combo feedback thresholds.
const (
	ComboFeedback = 3
	ComboSuper    = 10
	ComboUltimate = 16
)

// ComboMultiplier returns 1 + (combo-1)*0.5, treating a combo below 1 as 1.
func ComboMultiplier(combo int) float64 {
	return 1 + float64(max(combo, 1)-1)*0.5
}

// award adds base points scaled by the current combo and score multiplier.
func (g *Game) award(base float64) float64 {
	pts := base * ComboMultiplier(g.combo) * g.scoreMult
	g.score += pts
	return pts
}

// addCombo raises the combo and gives the combo feedback.
func (g *Game) addCombo(n int) {
	prev := g.combo
	g.combo += n
	g.maxCombo = max(g.maxCombo, g.combo)
	if g.combo < ComboFeedback {
		return
	}
	g.svc.Audio.Play(core.SoundCombo, core.SoundParams{Combo: g.combo})
	g.progress.CheckCombo(g.combo)
	switch {
	case prev < ComboUltimate && g.combo >= ComboUltimate:
		g.svc.Notify.Notify(fmt.Sprintf("ULTIMATE COMBO x%d", g.combo), core.SeveritySuccess)
	case prev < ComboSuper && g.combo >= ComboSuper:
		g.svc.Notify.Notify(fmt.Sprintf("SUPER COMBO x%d", g.combo), core.SeveritySuccess)
	}
}

// ComboLabel returns the HUD text of a combo.
func ComboLabel(combo int) string {
	switch {
	case combo >= ComboUltimate:
		return fmt.Sprintf("ULTIMATE x%d", combo)
	case combo >= ComboSuper:
		return fmt.Sprintf("SUPER x%d", combo)
	case combo >= ComboFeedback:
		return fmt.Sprintf("COMBO x%d", combo)
	default:
		return ""
	}
}

// hitBrick resolves a ball striking a live brick.
func (g *Game) hitBrick(b *Ball, brick *Brick) {
	if !b.Mods.Has(ModPierce) {
		b.DY = -b.DY
	}
	g.idleMs = 0
	id := brick.ID

	switch {
	case brick.Elite != nil:
		g.damageElite(brick)
	case brick.Special == SpecialNone:
		g.hitNormal(brick)
	default:
		g.hitSpecial(b, brick)
	}

	if b.Mods.Has(ModFireball) {
		g.burn(id)
	}
	g.checkWin()
}

// hitNormal takes one hit point; a destroyed brick may drop a pickup.
func (g *Game) hitNormal(brick *Brick) {
	destroyed := brick.Hit()
	g.addCombo(1)
	g.award(PointsNormal)
	g.svc.Audio.Play(core.SoundBrickHit, core.SoundParams{Row: brick.ID.Row})

	cx, cy := g.grid.Center(brick)
	if !destroyed {
		g.svc.Particles.SpawnBurst(cx, cy, brick.Color, 3, false)
		return
	}
	g.svc.Particles.SpawnBurst(cx, cy, brick.Color, 8, false)
	g.rollDrop(cx, cy)
}

// hitSpecial destroys a special brick and runs its effect.
func (g *Game) hitSpecial(b *Ball, brick *Brick) {
	cx, cy := g.grid.Center(brick)

	switch brick.Special {
	case SpecialBomb:
		g.detonate(brick)
		return

	case SpecialGold:
		brick.Destroy()
		g.addCombo(1)
		g.award(PointsGold)
		g.svc.Audio.Play(core.SoundCoin, core.SoundParams{})
		g.svc.Particles.SpawnBurst(cx, cy, core.ColorGold, 15, false)

	case SpecialLightning:
		cleared := 0
		for _, other := range g.grid.Row(brick.ID.Row) {
			target := g.grid.At(other.ID)
			if !target.Alive {
				continue
			}
			if target.Elite != nil {
				g.damageElite(target)
				continue
			}
			target.Destroy()
			cleared++
			tx, ty := g.grid.Center(target)
			g.svc.Particles.SpawnBurst(tx, ty, core.ColorBrightYellow, 4, false)
		}
		g.addCombo(cleared)
		g.award(PointsLightning * float64(cleared))
		g.progress.Stats.LightningTriggers++
		g.svc.Audio.Play(core.SoundLightning, core.SoundParams{})

	case SpecialShield:
		brick.Destroy()
		g.addCombo(1)
		g.award(PointsSpecial)
		g.barrier.Active = true
		g.barrier.Y = g.shieldY()
		g.barrier.Height = 8
		g.barrier.RemainingMs = math.Max(g.barrier.RemainingMs, g.cfg.PowerUps.ShieldMs)
		g.svc.Audio.Play(core.SoundShield, core.SoundParams{})
		g.svc.Particles.SpawnBurst(cx, cy, core.ColorBrightCyan, 10, false)

	case SpecialFreeze:
		brick.Destroy()
		g.addCombo(1)
		g.award(PointsSpecial)
		g.freeze(b)
		g.svc.Particles.SpawnBurst(cx, cy, core.ColorIce, 10, false)

	case SpecialTeleport:
		brick.Destroy()
		g.addCombo(1)
		g.award(PointsSpecial)
		w, h := g.cfg.Field.Width, g.cfg.Field.Height
		b.X = 100 + g.rng.NextFloat()*(w-200)
		b.Y = 100 + g.rng.NextFloat()*(h/2-100)
		g.svc.Audio.Play(core.SoundTeleport, core.SoundParams{})
		g.svc.Particles.SpawnBurst(b.X, b.Y, core.ColorPurple, 10, false)

	case SpecialRandom:
		brick.Destroy()
		g.addCombo(1)
		g.award(PointsSpecial)
		g.spawnPickup(cx, cy, NormalKinds[g.rng.Intn(len(NormalKinds))])
		g.svc.Particles.SpawnBurst(cx, cy, core.ColorBrightMagenta, 10, false)
	}
}

// freeze slows the struck ball and enlarges the paddle for a while. The
// slow is guarded by the ball's Frozen flag so it never stacks on itself.
func (g *Game) freeze(b *Ball) {
	b.SetMod(ModFrozen)
	if !g.freezeActive {
		g.freezeActive = true
		g.refreshPaddleWidth()
	}
	g.freezeUntil = g.clock + g.cfg.PowerUps.FreezeMs
	g.progress.Stats.FreezeTriggers++
	g.svc.Audio.Play(core.SoundFreeze, core.SoundParams{})
	g.sched.After(g.clock, g.cfg.PowerUps.FreezeMs, g.thaw)
}

// thaw ends the freeze once the latest freeze has run its course.
func (g *Game) thaw() {
	if g.clock < g.freezeUntil {
		return
	}
	for _, b := range g.ballSet {
		b.ClearMod(ModFrozen)
	}
	if g.freezeActive {
		g.freezeActive = false
		g.refreshPaddleWidth()
	}
}

// detonate explodes a bomb brick: it destroys the live non-bomb neighbours
// of its 3×3 block, schedules neighbouring bombs to chain, and schedules its
// own completion. The completion that brings the pending counter to zero
// runs the win check.
func (g *Game) detonate(brick *Brick) {
	g.pendingExplosions++
	brick.Destroy()
	g.addCombo(1)
	g.award(PointsBomb)
	g.progress.Stats.BombExplosions++

	cx, cy := g.grid.Center(brick)
	g.svc.Audio.Play(core.SoundExplosion, core.SoundParams{})
	g.svc.Particles.SpawnBurst(cx, cy, core.ColorOrange, 20, true)

	chain := g.cfg.Gameplay.ExplosionChain
	for _, n := range g.grid.Neighbors(brick.ID) {
		switch {
		case n.Elite != nil:
			g.damageElite(n)
		case n.Special == SpecialBomb:
			id := n.ID
			g.sched.After(g.clock, chain, func() {
				if next := g.grid.At(id); next != nil && next.Alive && next.Special == SpecialBomb {
					g.detonate(next)
				}
			})
		default:
			n.Destroy()
			g.award(PointsBlast)
			nx, ny := g.grid.Center(n)
			g.svc.Particles.SpawnBurst(nx, ny, n.Color, 6, true)
		}
	}

	g.sched.After(g.clock, g.cfg.Gameplay.ExplosionSettle, func() {
		g.pendingExplosions--
		if g.pendingExplosions == 0 {
			g.checkWin()
		}
	})
}

// burn is the fireball modifier: one hit on each orthogonal neighbour.
func (g *Game) burn(id BrickID) {
	for _, n := range g.grid.Orthogonal(id) {
		switch {
		case n.Elite != nil:
			g.damageElite(n)
		case n.Special == SpecialBomb:
			g.detonate(n)
		default:
			if n.Hit() {
				g.award(PointsBurn)
			}
			nx, ny := g.grid.Center(n)
			g.svc.Particles.SpawnBurst(nx, ny, core.ColorOrange, 4, false)
		}
	}
}

// damageElite takes one hit point from an elite brick. A destroyed elite
// leaves the tracking list and awards its bonus.
func (g *Game) damageElite(brick *Brick) {
	destroyed := brick.Hit()
	g.addCombo(1)
	g.award(PointsNormal)
	cx, cy := g.grid.Center(brick)
	if !destroyed {
		g.svc.Audio.Play(core.SoundBrickHit, core.SoundParams{Row: brick.ID.Row})
		g.svc.Particles.SpawnBurst(cx, cy, brick.Color, 3, false)
		return
	}

	info := brick.Elite.Kind.Info()
	g.score += info.Points * g.scoreMult
	for i, id := range g.elites {
		if id == brick.ID {
			g.elites = append(g.elites[:i], g.elites[i+1:]...)
			break
		}
	}
	g.svc.Audio.Play(core.SoundExplosion, core.SoundParams{})
	g.svc.Particles.SpawnBurst(cx, cy, info.Color, 20, true)
	g.svc.Notify.Notify(fmt.Sprintf("%s destroyed! +%d", info.Name, int(info.Points*g.scoreMult)), core.SeveritySuccess)
}

// dropChance grows as the level empties.
func (g *Game) dropChance() float64 {
	p := g.cfg.PowerUps
	switch remaining := g.grid.AliveCount(); {
	case remaining <= 5:
		return p.LastBricksBonus
	case remaining <= 10:
		return p.FewBricksChance
	default:
		return p.DropChance
	}
}

// rollDrop may spawn a normal pickup where a brick was destroyed.
func (g *Game) rollDrop(x, y float64) {
	if g.rng.NextFloat() >= g.dropChance() {
		return
	}
	g.spawnPickup(x, y, NormalKinds[g.rng.Intn(len(NormalKinds))])
}

func (g *Game) spawnPickup(x, y float64, k Kind) {
	g.pickups = append(g.pickups, &Pickup{X: x, Y: y, VY: g.cfg.PowerUps.FallSpeed, Kind: k})
}

// updatePickups moves pickups, applies those the paddle catches, and drops
// those that left the field.
func (g *Game) updatePickups(ts float64) {
	size := g.cfg.PowerUps.Size
	var caught []Kind
	kept := g.pickups[:0]
	for _, p := range g.pickups {
		p.Y += p.VY * ts
		if p.Y+size/2 > g.pad.Y && p.Y-size/2 < g.pad.Y+g.pad.Height && p.X > g.pad.X && p.X < g.pad.X+g.pad.Width {
			caught = append(caught, p.Kind)
			continue
		}
		if p.Y > g.cfg.Field.Height+size {
			continue
		}
		kept = append(kept, p)
	}
	g.pickups = kept

	for _, k := range caught {
		g.power.Apply(g, k)
		g.svc.Audio.Play(core.SoundPowerUp, core.SoundParams{})
		g.svc.Notify.Notify(k.Label(), core.SeverityInfo)
		g.log.Debug("power-up", "kind", k)
	}
}

// updateIdleDrop releases three pickups of any kind when no brick has been
// hit for a while. The timer only runs while every ball is in play.
func (g *Game) updateIdleDrop(dt float64) {
	for _, b := range g.ballSet {
		if b.Held {
			return
		}
	}
	g.idleMs += dt
	if g.idleMs < g.cfg.Gameplay.IdleDropMs {
		return
	}
	g.idleMs = 0
	for i := range 3 {
		k := AllKinds[g.rng.Intn(len(AllKinds))]
		x := 100 + g.rng.NextFloat()*600
		g.spawnPickup(x, 180+30*float64(i), k)
	}
	g.svc.Notify.Notify("Power-ups incoming!", core.SeverityInfo)
}
