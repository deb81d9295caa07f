package glowbreak

import (
	"math"
	"testing"
)

func launchedGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	g.state = StatePlaying
	g.ballSet = []*Ball{{X: 400, Y: 300, DX: 2, DY: -3, Radius: 10, Speed: math.Hypot(2, 3)}}
	return g
}

func TestApplyRevertEveryKind(t *testing.T) {
	for _, k := range AllKinds {
		t.Run(k.String(), func(t *testing.T) {
			g := launchedGame(t)
			b := g.ballSet[0]
			dx, dy := b.DX, b.DY

			g.power.Apply(g, k)
			if k.Timed() && !g.power.Effects.Active(k) {
				t.Fatalf("%v should be active after Apply", k)
			}
			g.power.RevertAll(g)

			if len(g.power.Effects) != 0 {
				t.Errorf("effects left after RevertAll: %v", g.power.Effects)
			}
			if b.Mods != 0 {
				t.Errorf("ball mods = %b, expected none", b.Mods)
			}
			if math.Abs(b.DX-dx) > 1e-9 || math.Abs(b.DY-dy) > 1e-9 {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", b.DX, b.DY, dx, dy)
			}
			if g.pad.Width != g.pad.BaseWidth {
				t.Errorf("paddle width = %v, expected %v", g.pad.Width, g.pad.BaseWidth)
			}
			if g.scoreMult != 1 || g.timeFactor != 1 {
				t.Errorf("multipliers = %v/%v, expected 1/1", g.scoreMult, g.timeFactor)
			}
		})
	}
}

func TestExpandShrinkExclusive(t *testing.T) {
	g := launchedGame(t)
	base := g.pad.BaseWidth
	center := g.pad.CenterX()

	g.power.Apply(g, KindExpand)
	if math.Abs(g.pad.Width-base*ExpandFactor) > 1e-9 {
		t.Errorf("expanded width = %v, expected %v", g.pad.Width, base*ExpandFactor)
	}
	if math.Abs(g.pad.CenterX()-center) > 1e-9 {
		t.Errorf("paddle centre moved: %v -> %v", center, g.pad.CenterX())
	}

	g.power.Apply(g, KindShrink)
	if g.power.Effects.Active(KindExpand) {
		t.Error("shrink should cancel expand")
	}
	if math.Abs(g.pad.Width-base*ShrinkFactor) > 1e-9 {
		t.Errorf("shrunk width = %v, expected %v", g.pad.Width, base*ShrinkFactor)
	}

	g.power.Apply(g, KindExpand)
	if g.power.Effects.Active(KindShrink) {
		t.Error("expand should cancel shrink")
	}
}

func TestTickExpiresOnce(t *testing.T) {
	g := launchedGame(t)
	g.power.Apply(g, KindSlow)
	b := g.ballSet[0]
	if !b.Mods.Has(ModSlowed) {
		t.Fatal("ball should be slowed")
	}

	expired := g.power.Tick(g, g.power.Duration(KindSlow))
	if len(expired) != 1 || expired[0] != KindSlow {
		t.Fatalf("Tick() = %v, expected [slow]", expired)
	}
	if b.Mods.Has(ModSlowed) {
		t.Error("slow should be cleared")
	}
	if math.Abs(b.CurrentSpeed()-b.Speed) > 1e-9 {
		t.Errorf("speed = %v, expected %v", b.CurrentSpeed(), b.Speed)
	}
	if expired := g.power.Tick(g, 1000); len(expired) != 0 {
		t.Errorf("Tick() = %v, expected nothing", expired)
	}
}

func TestSlowAndFreezeStack(t *testing.T) {
	b := &Ball{DX: 3, DY: -4, Speed: 5}

	b.SetMod(ModSlowed)
	if b.SetMod(ModSlowed) {
		t.Error("second slow should be a no-op")
	}
	b.SetMod(ModFrozen)
	want := 5 * SlowFactor * FreezeFactor
	if math.Abs(b.CurrentSpeed()-want) > 1e-9 {
		t.Errorf("speed = %v, expected %v", b.CurrentSpeed(), want)
	}
	if math.Abs(b.ExpectedSpeed()-want) > 1e-9 {
		t.Errorf("ExpectedSpeed() = %v, expected %v", b.ExpectedSpeed(), want)
	}

	b.ClearMod(ModSlowed)
	if math.Abs(b.CurrentSpeed()-5*FreezeFactor) > 1e-9 {
		t.Errorf("speed = %v, expected %v", b.CurrentSpeed(), 5*FreezeFactor)
	}
	b.ClearMod(ModFrozen)
	if math.Abs(b.CurrentSpeed()-5) > 1e-9 {
		t.Errorf("speed = %v, expected 5", b.CurrentSpeed())
	}
}

func TestMultiball(t *testing.T) {
	g := launchedGame(t)
	g.power.Apply(g, KindMultiball)
	if len(g.ballSet) != 3 {
		t.Fatalf("len(balls) = %d, expected 3", len(g.ballSet))
	}
	for _, b := range g.ballSet[1:] {
		if b.DY >= 0 {
			t.Errorf("clone DY = %v, expected upward", b.DY)
		}
	}
	if g.power.Effects.Active(KindMultiball) {
		t.Error("multiball should not register a timed effect")
	}
}

func TestInvincibleShield(t *testing.T) {
	g := launchedGame(t)
	g.power.Apply(g, KindInvincible)
	if !g.barrier.Active {
		t.Fatal("invincible should raise the shield")
	}

	b := g.ballSet[0]
	b.Y = g.barrier.Y - b.Radius + 1
	b.DY = 3
	if res := collideWalls(b, 800, 600, &g.barrier); res != wallShield {
		t.Errorf("collideWalls() = %v, expected shield bounce", res)
	}
	if b.DY >= 0 {
		t.Error("shield should send the ball back up")
	}
}

func TestNewPowerUpsDurations(t *testing.T) {
	p := NewPowerUps(map[string]float64{"expand": 1234}, 590)
	if got := p.Duration(KindExpand); got != 1234 {
		t.Errorf("Duration(expand) = %v, expected 1234", got)
	}
	if got := p.Duration(KindPierce); got != 8000 {
		t.Errorf("Duration(pierce) = %v, expected 8000", got)
	}
}

func TestFreezeBrick(t *testing.T) {
	g := launchedGame(t)
	fullGrid(g)
	brick := g.grid.At(BrickID{Col: 1, Row: 1})
	brick.Special = SpecialFreeze
	b := g.ballSet[0]
	base := g.pad.Width

	g.hitBrick(b, brick)
	if !b.Mods.Has(ModFrozen) || !g.freezeActive {
		t.Fatal("freeze brick should freeze the ball")
	}
	if math.Abs(g.pad.Width-base*FreezeWidth) > 1e-9 {
		t.Errorf("paddle width = %v, expected %v", g.pad.Width, base*FreezeWidth)
	}

	g.clock += g.cfg.PowerUps.FreezeMs
	g.sched.Poll(g.clock)
	if b.Mods.Has(ModFrozen) || g.freezeActive {
		t.Error("freeze should end after its duration")
	}
	if math.Abs(g.pad.Width-base) > 1e-9 {
		t.Errorf("paddle width = %v, expected %v", g.pad.Width, base)
	}
}
