package glowbreak

import (
	"slices"
	"testing"
)

func TestSpecialBricks(t *testing.T) {
	tests := []struct {
		name    string
		special Special
		check   func(t *testing.T, g *Game, b *Ball)
	}{
		{"gold", SpecialGold, func(t *testing.T, g *Game, _ *Ball) {
			if g.score != PointsGold {
				t.Errorf("score = %v, expected %d", g.score, PointsGold)
			}
		}},
		{"shield", SpecialShield, func(t *testing.T, g *Game, _ *Ball) {
			if !g.barrier.Active {
				t.Fatal("shield brick should raise the barrier")
			}
			if g.barrier.RemainingMs != g.cfg.PowerUps.ShieldMs {
				t.Errorf("barrier RemainingMs = %v, expected %v", g.barrier.RemainingMs, g.cfg.PowerUps.ShieldMs)
			}
			if g.score != PointsSpecial {
				t.Errorf("score = %v, expected %d", g.score, PointsSpecial)
			}
		}},
		{"freeze", SpecialFreeze, func(t *testing.T, g *Game, b *Ball) {
			if !b.Mods.Has(ModFrozen) || !g.freezeActive {
				t.Error("freeze brick should freeze the ball and the paddle")
			}
		}},
		{"teleport", SpecialTeleport, func(t *testing.T, g *Game, b *Ball) {
			w, h := g.cfg.Field.Width, g.cfg.Field.Height
			if b.X < 100 || b.X > w-100 || b.Y < 100 || b.Y > h/2 {
				t.Errorf("ball at (%v, %v), expected inside the teleport box", b.X, b.Y)
			}
		}},
		{"random", SpecialRandom, func(t *testing.T, g *Game, _ *Ball) {
			if len(g.pickups) != 1 {
				t.Fatalf("len(pickups) = %d, expected 1", len(g.pickups))
			}
			if !slices.Contains(NormalKinds, g.pickups[0].Kind) {
				t.Errorf("pickup kind = %v, expected a normal kind", g.pickups[0].Kind)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.state = StatePlaying
			fullGrid(g)
			g.pickups = nil
			brick := g.grid.At(BrickID{Col: 3, Row: 2})
			brick.Special = tt.special

			ball := &Ball{X: 400, Y: 500, DY: -3, Radius: 10, Speed: 4.6}
			g.hitBrick(ball, brick)

			if brick.Alive {
				t.Error("special brick should be destroyed")
			}
			if g.combo != 1 {
				t.Errorf("combo = %d, expected 1", g.combo)
			}
			tt.check(t, g, ball)
		})
	}
}

func TestLightningClearsRow(t *testing.T) {
	g := newTestGame(t)
	g.state = StatePlaying
	fullGrid(g)
	brick := g.grid.At(BrickID{Col: 0, Row: 5})
	brick.Special = SpecialLightning

	g.hitBrick(&Ball{X: 400, Y: 500, DY: -3, Radius: 10, Speed: 4.6}, brick)

	cleared := g.grid.Cols
	for _, b := range g.grid.Row(5) {
		if b.Alive {
			t.Errorf("brick %v should be cleared", b.ID)
		}
	}
	for _, b := range g.grid.Row(4) {
		if !b.Alive {
			t.Errorf("brick %v outside the row should survive", b.ID)
		}
	}
	if g.combo != cleared {
		t.Errorf("combo = %d, expected %d", g.combo, cleared)
	}
	expected := PointsLightning * float64(cleared) * ComboMultiplier(cleared)
	if g.score != expected {
		t.Errorf("score = %v, expected %v", g.score, expected)
	}
	if g.progress.Stats.LightningTriggers != 1 {
		t.Errorf("LightningTriggers = %d, expected 1", g.progress.Stats.LightningTriggers)
	}
}

func TestFireballBurnsOrthogonalNeighbours(t *testing.T) {
	g := newTestGame(t)
	g.state = StatePlaying
	fullGrid(g)
	g.pickups = nil
	target := g.grid.At(BrickID{Col: 3, Row: 2})

	g.hitBrick(&Ball{X: 400, Y: 500, DY: -3, Radius: 10, Speed: 4.6, Mods: ModFireball}, target)

	for _, id := range []BrickID{{3, 2}, {2, 2}, {4, 2}, {3, 1}, {3, 3}} {
		if g.grid.At(id).Alive {
			t.Errorf("brick %v should be burnt", id)
		}
	}
	for _, id := range []BrickID{{2, 1}, {4, 1}, {2, 3}, {4, 3}, {5, 2}} {
		if !g.grid.At(id).Alive {
			t.Errorf("brick %v should survive the burn", id)
		}
	}
	// 10 for the hit, 10 for each of the four burnt neighbours
	if g.score != 50 {
		t.Errorf("score = %v, expected 50", g.score)
	}
}

func TestPickupCatch(t *testing.T) {
	g := newTestGame(t)
	g.state = StatePlaying
	width := g.pad.Width
	g.pickups = []*Pickup{
		{X: g.pad.CenterX(), Y: g.pad.Y - 5, VY: 3, Kind: KindExpand},
		{X: g.pad.CenterX(), Y: g.cfg.Field.Height + 100, VY: 3, Kind: KindShrink},
		{X: 50, Y: 100, VY: 3, Kind: KindPierce},
	}

	g.updatePickups(1)

	if len(g.pickups) != 1 || g.pickups[0].Kind != KindPierce {
		t.Fatalf("pickups = %d, expected only the falling pierce", len(g.pickups))
	}
	if !g.power.Effects.Active(KindExpand) {
		t.Error("caught expand should be active")
	}
	if g.pad.Width <= width {
		t.Errorf("paddle width = %v, expected wider than %v", g.pad.Width, width)
	}
}

func TestIdleDrop(t *testing.T) {
	g := newTestGame(t)
	g.state = StatePlaying
	g.pickups = nil
	idle := g.cfg.Gameplay.IdleDropMs

	// A held ball keeps the timer stopped
	g.updateIdleDrop(idle)
	if len(g.pickups) != 0 {
		t.Fatalf("len(pickups) = %d, expected none while the ball is held", len(g.pickups))
	}

	g.ballSet[0].Held = false
	g.updateIdleDrop(idle - 1)
	if len(g.pickups) != 0 {
		t.Fatalf("len(pickups) = %d, expected none before the idle time", len(g.pickups))
	}
	g.updateIdleDrop(1)
	if len(g.pickups) != 3 {
		t.Fatalf("len(pickups) = %d, expected 3", len(g.pickups))
	}
	if g.idleMs != 0 {
		t.Errorf("idleMs = %v, expected the timer restarted", g.idleMs)
	}
}

func TestBrickHitResetsIdleTimer(t *testing.T) {
	g := newTestGame(t)
	g.state = StatePlaying
	fullGrid(g)
	g.idleMs = 2000

	g.hitBrick(&Ball{X: 400, Y: 500, DY: -3, Radius: 10, Speed: 4.6}, g.grid.At(BrickID{Col: 0, Row: 5}))
	if g.idleMs != 0 {
		t.Errorf("idleMs = %v, expected 0 after a brick hit", g.idleMs)
	}
}
