package glowbreak

import "github.com/vovakirdan/glowbreak/internal/core"

// updateEndless pushes a new row in at the top on every interval and ends
// the run, with no continue, once a live brick comes within the danger
// margin of the paddle.
// A push waits while explosions are pending so chained bombs keep their cells.
func (g *Game) updateEndless(dt float64) {
	e := g.cfg.Endless
	g.endlessMs += dt
	if g.endlessMs >= e.RowIntervalMs && g.pendingExplosions == 0 {
		g.endlessMs -= e.RowIntervalMs
		g.pushRow()
	}

	if g.grid.LowestAliveBottom() > g.pad.Y-e.DangerMargin {
		g.log.Debug("bricks reached the paddle", "level", g.level)
		g.lives = 0
		g.endRun(false)
	}
}

// pushRow shifts the grid down and fills the new top row.
func (g *Game) pushRow() {
	e := g.cfg.Endless
	g.grid.PushDown()
	for _, cell := range g.grid.Row(0) {
		b := g.grid.At(cell.ID)
		b.Alive = true
		b.Color = core.BrickColors[g.rng.Intn(len(core.BrickColors))]
		b.Hits, b.MaxHits = 1, 1
		switch {
		case g.rng.NextFloat() < e.BombChance:
			b.Special = SpecialBomb
		case g.rng.NextFloat() < e.ToughChance:
			b.Hits, b.MaxHits = 2, 2
		}
	}
	g.refreshElites()
	g.svc.Audio.Play(core.SoundWallHit, core.SoundParams{})
}
