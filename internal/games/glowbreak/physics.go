package glowbreak

import (
	"math"

	"github.com/vovakirdan/glowbreak/internal/core"
)

// Physics constants
const (
	BounceSpread        = 0.6 * math.Pi // Total paddle reflection arc (±54°)
	PerfectEdge         = 0.4           // |u-0.5| beyond this is a perfect bounce
	MagnetSteer         = 0.15          // Horizontal nudge per tick of the magnet power-up
	BossProjectileFloor = 700           // Boss shots are removed below this y
)

// TimeScale converts an elapsed interval into a multiple of the reference
// frame, capped so that a stall cannot teleport objects through bricks.
func TimeScale(dt, frame, maxScale float64) float64 {
	if frame <= 0 || dt <= 0 {
		return 0
	}
	return math.Min(dt/frame, maxScale)
}

// wallResult is the outcome of the wall test of one ball.
type wallResult int

const (
	wallNone wallResult = iota
	wallBounce
	wallShield
	wallExit
)

// collideWalls reflects a ball off the side and top walls and the shield.
// Reflection uses the absolute velocity toward the field and clamps the
// position to the boundary so a ball never sticks in a wall.
func collideWalls(b *Ball, width, height float64, s *Shield) wallResult {
	res := wallNone
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.DX = math.Abs(b.DX)
		res = wallBounce
	} else if b.X+b.Radius > width {
		b.X = width - b.Radius
		b.DX = -math.Abs(b.DX)
		res = wallBounce
	}
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.DY = math.Abs(b.DY)
		res = wallBounce
	}

	if s.Active && b.DY > 0 && b.Y+b.Radius > s.Y {
		b.Y = s.Y - b.Radius
		b.DY = -math.Abs(b.DY)
		return wallShield
	}
	if b.Y+b.Radius > height {
		return wallExit
	}
	return res
}

// bounceResult describes a paddle bounce.
type bounceResult struct {
	hit     bool
	perfect bool
}

// bouncePaddle reflects a descending ball that overlaps the paddle. The
// angle depends on where the ball meets the paddle, the horizontal component
// never drops below minHorizontal of the speed, and the speed is restored to
// the expected value when it drifted more than tolerance.
func bouncePaddle(b *Ball, p *Paddle, minHorizontal, tolerance float64) bounceResult {
	if b.DY <= 0 {
		return bounceResult{}
	}
	if !(b.Y+b.Radius > p.Y && b.Y-b.Radius < p.Y+p.Height && b.X > p.X && b.X < p.X+p.Width) {
		return bounceResult{}
	}

	u := (b.X - p.X) / p.Width
	angle := (u - 0.5) * BounceSpread
	speed := b.ExpectedSpeed()

	b.DX = speed * math.Sin(angle)
	b.DY = -math.Abs(speed * math.Cos(angle))
	if minDX := minHorizontal * speed; math.Abs(b.DX) < minDX {
		b.DX = math.Copysign(minDX, b.DX)
		b.DY = -math.Sqrt(math.Max(speed*speed-minDX*minDX, 0))
	}
	renormalize(b, tolerance)
	b.Y = p.Y - b.Radius

	return bounceResult{hit: true, perfect: math.Abs(u-0.5) > PerfectEdge}
}

// renormalize rescales the velocity to the expected speed when the drift
// exceeds tolerance.
func renormalize(b *Ball, tolerance float64) {
	want := b.ExpectedSpeed()
	got := b.CurrentSpeed()
	if got == 0 || math.Abs(got-want) <= tolerance {
		return
	}
	f := want / got
	b.DX *= f
	b.DY *= f
}

// steerToPaddle bends a falling ball toward the paddle centre without
// changing its speed.
func steerToPaddle(b *Ball, p *Paddle, ts float64) {
	if b.DY <= 0 {
		return
	}
	speed := b.CurrentSpeed()
	if d := p.CenterX() - b.X; d != 0 {
		b.DX += math.Copysign(MagnetSteer*ts, d)
	}
	if cur := b.CurrentSpeed(); cur > 0 {
		b.DX *= speed / cur
		b.DY *= speed / cur
	}
}

// updatePaddle moves the paddle by the held directions.
func (g *Game) updatePaddle(in core.InputFrame, ts float64) {
	speed := g.pad.Speed * ts
	if g.eliteSlowMs > 0 {
		speed /= 2
	}
	if in.Has(core.ActionLeft) {
		g.pad.X -= speed
	}
	if in.Has(core.ActionRight) {
		g.pad.X += speed
	}
	g.pad.X = core.ClampF(g.pad.X, 0, g.cfg.Field.Width-g.pad.Width)
}

// updateBalls integrates every ball and resolves its collisions. Balls that
// leave through the bottom are removed together after the loop, and losing
// the last ball costs exactly one life however many left this tick.
func (g *Game) updateBalls(ts float64) {
	var lost []int

	for i, b := range g.ballSet {
		if b.Held {
			b.X = g.pad.CenterX()
			b.Y = g.pad.Y - b.Radius
			continue
		}

		b.X += b.DX * ts
		b.Y += b.DY * ts
		if b.Mods.Has(ModMagnet) {
			steerToPaddle(b, &g.pad, ts)
		}
		g.pullTowardMagnetCores(b, ts)

		switch collideWalls(b, g.cfg.Field.Width, g.cfg.Field.Height, &g.barrier) {
		case wallBounce:
			g.svc.Audio.Play(core.SoundWallHit, core.SoundParams{})
		case wallShield:
			g.svc.Audio.Play(core.SoundShield, core.SoundParams{})
		case wallExit:
			lost = append(lost, i)
			continue
		}

		if res := bouncePaddle(b, &g.pad, g.cfg.Ball.MinHorizontal, g.cfg.Ball.Tolerance); res.hit {
			g.combo = 0
			if res.perfect {
				g.progress.Stats.PerfectBounces++
			}
			g.svc.Audio.Play(core.SoundPaddleHit, core.SoundParams{})
			continue
		}

		if brick := g.grid.BrickAt(b.X, b.Y); brick != nil {
			g.hitBrick(b, brick)
			if g.state != StatePlaying {
				return
			}
		}

		g.collideBoss(b)
		g.collideBossProjectiles(b)
		if g.state != StatePlaying {
			return
		}
	}

	for i := len(lost) - 1; i >= 0; i-- {
		idx := lost[i]
		g.ballSet = append(g.ballSet[:idx], g.ballSet[idx+1:]...)
	}
	if len(g.ballSet) == 0 {
		g.loseLife()
	}
}

// pullTowardMagnetCores applies the pull of every live MagnetCore elite.
func (g *Game) pullTowardMagnetCores(b *Ball, ts float64) {
	for _, id := range g.elites {
		brick := g.grid.At(id)
		if brick == nil || !brick.Alive || brick.Elite == nil || brick.Elite.Kind != EliteMagnetCore {
			continue
		}
		cx, cy := g.grid.Center(brick)
		MagnetPull(b, cx, cy, ts)
	}
}

// collideBoss damages the boss when a ball overlaps it. Hits inside the
// damage cooldown are ignored entirely.
func (g *Game) collideBoss(b *Ball) {
	if g.boss == nil || g.boss.Dead() {
		return
	}
	box := core.NewRect(b.X-b.Radius, b.Y-b.Radius, 2*b.Radius, 2*b.Radius)
	if !box.Intersects(g.boss.Rect()) {
		return
	}
	if !g.boss.RegisterHit(g.clock, 1) {
		return
	}
	b.DY = math.Abs(b.DY)
	g.svc.Audio.Play(core.SoundBossHit, core.SoundParams{})
	g.svc.Particles.SpawnBurst(b.X, b.Y, g.boss.Kind.Info().Color, 8, false)
	g.afterBossDamage()
}

// collideBossProjectiles lets a ball shoot down boss projectiles, which
// deals 2 damage to the boss.
func (g *Game) collideBossProjectiles(b *Ball) {
	if g.boss == nil || g.boss.Dead() {
		return
	}
	kept := g.projectiles[:0]
	hit := false
	for _, p := range g.projectiles {
		if !hit && p.Owner == OwnerBoss {
			cx, cy := p.Center()
			if math.Hypot(b.X-cx, b.Y-cy) < b.Radius+p.Size/2 {
				hit = true
				g.svc.Particles.SpawnBurst(cx, cy, p.Attack.Color(), 10, true)
				continue
			}
		}
		kept = append(kept, p)
	}
	g.projectiles = kept
	if !hit {
		return
	}
	g.boss.TakeDamage(2)
	g.svc.Audio.Play(core.SoundBossHit, core.SoundParams{})
	g.afterBossDamage()
}

// afterBossDamage schedules the win check once the boss dies.
func (g *Game) afterBossDamage() {
	if !g.boss.Dead() {
		return
	}
	g.svc.Audio.Play(core.SoundExplosion, core.SoundParams{})
	r := g.boss.Rect().Center()
	g.svc.Particles.SpawnBurst(r.X, r.Y, g.boss.Kind.Info().Color, 40, true)
	g.svc.Notify.Notify(g.boss.Kind.String()+" defeated!", core.SeveritySuccess)
	g.log.Info("boss defeated", "boss", g.boss.Kind, "level", g.level)
	g.sched.After(g.clock, 100, g.checkWin)
}

// updateBoss moves the boss and fires its attacks.
func (g *Game) updateBoss(dt, ts float64) {
	if g.boss == nil {
		return
	}
	if p := g.boss.Update(dt, ts, g.cfg.Field.Width); p != nil {
		g.projectiles = append(g.projectiles, p)
	}
}

// updateElites runs the timed attacks of elite bricks.
func (g *Game) updateElites(dt float64) {
	for _, id := range g.elites {
		brick := g.grid.At(id)
		if brick == nil || !brick.Alive || brick.Elite == nil {
			continue
		}
		switch brick.Elite.Update(dt) {
		case EliteCharge:
			g.svc.Audio.Play(core.SoundEliteCharge, core.SoundParams{})
		case EliteFire:
			cx, _ := g.grid.Center(brick)
			g.projectiles = append(g.projectiles, Fireball(cx, brick.Y+g.grid.Layout().BrickH, g.rng.NextFloat()))
			g.svc.Audio.Play(core.SoundEliteFireball, core.SoundParams{})
		case EliteLightning:
			g.eliteSlowMs = math.Max(g.eliteSlowMs, g.cfg.PowerUps.EliteSlowMs)
			cx, cy := g.grid.Center(brick)
			g.svc.Particles.SpawnBurst(cx, cy, core.ColorBrightYellow, 12, true)
			g.svc.Audio.Play(core.SoundEliteRumble, core.SoundParams{})
		}
	}
}

// updateProjectiles moves every projectile, removes those past the bottom,
// and applies paddle hits after the list has been rebuilt.
func (g *Game) updateProjectiles(ts float64) {
	var hits []*Projectile
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.X += p.DX * ts
		p.Y += p.DY * ts
		if p.Rect().Intersects(g.pad.Rect()) {
			hits = append(hits, p)
			continue
		}
		floor := float64(BossProjectileFloor)
		if p.Owner == OwnerElite {
			floor = EliteProjectileBottom
		}
		if p.Y > floor {
			continue
		}
		kept = append(kept, p)
	}
	g.projectiles = kept

	for _, p := range hits {
		if g.state != StatePlaying {
			return
		}
		g.projectileHit(p)
	}
}

// projectileHit costs a life unless the paddle is invincible. Ice also
// slows the paddle.
func (g *Game) projectileHit(p *Projectile) {
	cx, cy := p.Center()
	g.svc.Particles.SpawnBurst(cx, cy, p.Attack.Color(), 12, true)
	if g.pad.Invincible() {
		return
	}
	if p.Attack == AttackIce {
		g.eliteSlowMs = math.Max(g.eliteSlowMs, g.cfg.PowerUps.EliteSlowMs)
	}

	g.lives = max(0, g.lives-p.Damage)
	g.missCount++
	g.combo = 0
	if g.lives == 0 {
		g.gameOver()
		return
	}
	g.svc.Audio.Play(core.SoundLoseLife, core.SoundParams{})
	g.svc.Notify.Notify(p.Attack.String()+" hit!", core.SeverityWarning)
}
