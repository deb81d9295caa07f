package glowbreak

import "math"

// Snapshot is a flattened view of the session for replay and determinism
// checks. Positions are stored in hundredths of a world unit.
type Snapshot struct {
	ClockMs         int
	State           string
	Level           int
	Score           int
	Lives           int
	Combo           int
	MaxCombo        int
	MissCount       int
	Credits         int
	BallSpeed       int
	PaddleX         int
	PaddleWidth     int
	BricksRemaining int
	BossHP          int
	Pending         int // Scheduled tasks

	// Each ball is 6 ints: X, Y, DX, DY, Held, Mods
	BallData []int

	// Each pickup is 3 ints: Kind, X, Y
	PickupData []int

	// Each projectile is 3 ints: Attack, X, Y
	ProjectileData []int

	// Each effect is 2 ints: Kind, remaining ms
	EffectData []int

	// Each cell is 2 ints, column-major: Alive, Hits
	BrickData []int

	RNGState       uint64
	LayoutRNGState uint64
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current session as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	balls := make([]int, 0, len(g.ballSet)*6)
	for _, b := range g.ballSet {
		balls = append(balls, fixed(b.X), fixed(b.Y), fixed(b.DX), fixed(b.DY), flag(b.Held), int(b.Mods))
	}

	pickups := make([]int, 0, len(g.pickups)*3)
	for _, p := range g.pickups {
		pickups = append(pickups, int(p.Kind), fixed(p.X), fixed(p.Y))
	}

	projectiles := make([]int, 0, len(g.projectiles)*3)
	for _, p := range g.projectiles {
		projectiles = append(projectiles, int(p.Attack), fixed(p.X), fixed(p.Y))
	}

	kinds := g.power.Effects.Sorted()
	effects := make([]int, 0, len(kinds)*2)
	for _, k := range kinds {
		effects = append(effects, int(k), int(g.power.Effects[k]))
	}

	bricks := make([]int, 0, g.grid.Cols*g.grid.Rows*2)
	g.grid.Each(func(b *Brick) {
		bricks = append(bricks, flag(b.Alive), b.Hits)
	})

	bossHP := 0
	if g.boss != nil {
		bossHP = g.boss.HP
	}

	return Snapshot{
		ClockMs:         int(g.clock),
		State:           g.state,
		Level:           g.level,
		Score:           int(math.Floor(g.score)),
		Lives:           g.lives,
		Combo:           g.combo,
		MaxCombo:        g.maxCombo,
		MissCount:       g.missCount,
		Credits:         g.credits,
		BallSpeed:       fixed(g.ballSpeed),
		PaddleX:         fixed(g.pad.X),
		PaddleWidth:     fixed(g.pad.Width),
		BricksRemaining: g.grid.AliveCount(),
		BossHP:          bossHP,
		Pending:         g.sched.Pending(),

		BallData:       balls,
		PickupData:     pickups,
		ProjectileData: projectiles,
		EffectData:     effects,
		BrickData:      bricks,

		RNGState:       g.rng.State(),
		LayoutRNGState: g.layoutRNG.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.ClockMs) //#nosec G115 -- hash computation
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, v := range []int{
		snap.Level, snap.Score, snap.Lives, snap.Combo, snap.MaxCombo, snap.MissCount,
		snap.Credits, snap.BallSpeed, snap.PaddleX, snap.PaddleWidth, snap.BricksRemaining,
		snap.BossHP, snap.Pending,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, data := range [][]int{snap.BallData, snap.PickupData, snap.ProjectileData, snap.EffectData, snap.BrickData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	h = h*31 + snap.RNGState
	h = h*31 + snap.LayoutRNGState

	return h
}
