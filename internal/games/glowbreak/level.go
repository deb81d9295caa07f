package glowbreak

// pattern marks which cells of the first five rows hold a brick.
type pattern [5][10]uint8

// fullPattern fills every cell of every row.
var fullPattern *pattern

var (
	pyramidPattern = &pattern{
		{0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	diamondPattern = &pattern{
		{0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
	}
	checkerPattern = &pattern{
		{1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
		{1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
		{1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
	}
	heartPattern = &pattern{
		{0, 1, 1, 0, 0, 0, 0, 1, 1, 0},
		{1, 1, 1, 1, 0, 0, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 1, 1, 1, 1, 0, 0, 0},
	}
	wavePattern = &pattern{
		{1, 1, 0, 0, 1, 1, 0, 0, 1, 1},
		{1, 1, 1, 0, 0, 1, 1, 0, 0, 1},
		{0, 1, 1, 1, 0, 0, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 1, 1, 0},
		{0, 0, 0, 1, 1, 1, 0, 0, 1, 1},
	}
	crownPattern = &pattern{
		{1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
	}
)

// levelPatterns cycle by (level-1) % len.
var levelPatterns = []*pattern{fullPattern, pyramidPattern, diamondPattern, checkerPattern, heartPattern, wavePattern}

// PatternName returns the name of the pattern used for a level.
func PatternName(level int) string {
	if IsBossLevel(level) {
		return "crown"
	}
	return [...]string{"full", "pyramid", "diamond", "checker", "heart", "wave"}[patternIndex(level)]
}

func patternIndex(level int) int {
	if level < 1 {
		level = 1
	}
	return (level - 1) % len(levelPatterns)
}

// filled reports whether a pattern places a brick at (col, row).
// Rows and columns outside a pattern are empty; the full pattern fills all.
func (p *pattern) filled(col, row int) bool {
	if p == nil {
		return true
	}
	if row < 0 || row >= len(p) || col < 0 || col >= len(p[row]) {
		return false
	}
	return p[row][col] == 1
}

// LevelOptions is the grid geometry a level is built with.
type LevelOptions struct {
	Columns  int
	Rows     int // Rows on a normal level
	BossRows int // Rows on a boss level
	Layout   Layout
}

// specialBand is one threshold of a level's special-brick table.
type specialBand struct {
	below   float64
	special Special
}

// specialBands returns the special-brick table for a level. Levels unlock
// special types progressively; from level 5 on every type can appear.
func specialBands(level int) []specialBand {
	switch {
	case level <= 1:
		return []specialBand{{0.20, SpecialBomb}}
	case level == 2:
		return []specialBand{{0.10, SpecialBomb}, {0.25, SpecialGold}}
	case level == 3:
		return []specialBand{{0.08, SpecialBomb}, {0.16, SpecialGold}, {0.26, SpecialLightning}}
	case level == 4:
		return []specialBand{{0.05, SpecialBomb}, {0.13, SpecialGold}, {0.18, SpecialLightning}, {0.23, SpecialShield}}
	default:
		return []specialBand{
			{0.04, SpecialBomb}, {0.10, SpecialGold}, {0.14, SpecialLightning}, {0.18, SpecialShield},
			{0.22, SpecialFreeze}, {0.26, SpecialTeleport}, {0.30, SpecialRandom},
		}
	}
}

// SpecialFor draws one special type for a level.
func SpecialFor(level int, rng *SeededRNG) Special {
	v := rng.NextFloat()
	for _, band := range specialBands(level) {
		if v < band.below {
			return band.special
		}
	}
	return SpecialNone
}

// MaxExtraBricks is the number of bricks added to empty cells on late levels.
const MaxExtraBricks = 5

// BuildLevel creates the grid of a level. All randomness comes from rng, so
// the same seed always yields the same layout.
func BuildLevel(level int, rng *SeededRNG, opts LevelOptions) *Grid {
	boss := IsBossLevel(level)
	rows := opts.Rows
	pat := levelPatterns[patternIndex(level)]
	if boss {
		rows = opts.BossRows
		pat = crownPattern
	}

	g := NewGrid(opts.Columns, rows, opts.Layout)
	g.Each(func(b *Brick) {
		col, row := b.ID.Col, b.ID.Row
		present := pat.filled(col, row)
		if level == 1 && row == 0 {
			present = false
		}

		// The hit-point roll happens for every cell so that the sequence does
		// not depend on the pattern.
		maxHits := rowHits(row, boss, rng)

		if !present {
			return
		}
		b.Alive = true
		b.Special = SpecialFor(level, rng)
		if b.Special != SpecialNone {
			maxHits = 1
		}
		b.Hits, b.MaxHits = maxHits, maxHits
	})

	if level >= 8 && !boss {
		addExtraBricks(g, min(opts.Rows, 5), rng)
	}
	if boss {
		placeElites(g, level, rng)
	}
	return g
}

// rowHits returns the hit points of a plain brick in a row.
func rowHits(row int, boss bool, rng *SeededRNG) int {
	switch {
	case boss:
		if rng.NextFloat() < 0.5 {
			return 3
		}
		return 2
	case row >= 4:
		if rng.NextFloat() < 0.5 {
			return 3
		}
		return 1
	case row >= 2:
		return 2
	default:
		return 1
	}
}

// addExtraBricks revives up to MaxExtraBricks empty cells in the first rows
// as plain bricks.
func addExtraBricks(g *Grid, rows int, rng *SeededRNG) {
	var empty []BrickID
	for c := range g.Cols {
		for r := range rows {
			if b := g.At(BrickID{Col: c, Row: r}); b != nil && !b.Alive {
				empty = append(empty, b.ID)
			}
		}
	}
	shuffle(empty, rng)
	for _, id := range empty[:min(len(empty), MaxExtraBricks)] {
		b := g.At(id)
		hits := rowHits(id.Row, false, rng)
		b.Alive = true
		b.Special = SpecialNone
		b.Hits, b.MaxHits = hits, hits
	}
}

// EliteCount returns how many elite bricks a boss level places.
func EliteCount(level int) int {
	return min(BossTier(level), 3)
}

// placeElites turns randomly chosen live bricks into elites, assigning the
// elite catalogue round-robin.
func placeElites(g *Grid, level int, rng *SeededRNG) {
	var live []BrickID
	g.Each(func(b *Brick) {
		if b.Alive {
			live = append(live, b.ID)
		}
	})
	shuffle(live, rng)
	n := min(EliteCount(level), len(live))
	for i, id := range live[:n] {
		kind := EliteKinds[i%len(EliteKinds)]
		b := g.At(id)
		info := kind.Info()
		b.Special = SpecialNone
		b.Hits, b.MaxHits = info.HP, info.HP
		b.Color = info.Color
		b.Elite = &EliteState{Kind: kind}
	}
}

// shuffle is a Fisher-Yates shuffle driven by the seeded generator.
func shuffle(ids []BrickID, rng *SeededRNG) {
	for i := len(ids) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
}
