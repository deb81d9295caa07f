package glowbreak

import (
	"math"

	"github.com/vovakirdan/glowbreak/internal/core"
)

// Modifier is a set of per-ball status flags.
//
// Composition rule: Slowed and Frozen are each idempotent on a ball (applying
// one twice changes nothing) and stack multiplicatively with each other.
// A ball's expected speed is its base speed times the factor of every set
// speed modifier, and clearing a modifier divides out exactly its own factor.
type Modifier uint8

const (
	ModPierce   Modifier = 1 << iota // Passes through bricks without bouncing
	ModSlowed                        // Velocity scaled by SlowFactor
	ModFrozen                        // Velocity scaled by FreezeFactor
	ModFireball                      // Burns orthogonal neighbours on impact
	ModMagnet                        // Steers toward the paddle while falling
)

// Speed factors of the speed modifiers.
const (
	SlowFactor   = 0.5
	FreezeFactor = 0.3
)

// Has reports whether every flag in m2 is set.
func (m Modifier) Has(m2 Modifier) bool { return m&m2 == m2 }

// Factor returns the combined speed factor of the set speed modifiers.
func (m Modifier) Factor() float64 {
	f := 1.0
	if m.Has(ModSlowed) {
		f *= SlowFactor
	}
	if m.Has(ModFrozen) {
		f *= FreezeFactor
	}
	return f
}

// Ball is a ball in play or held on the paddle.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
	Speed  float64 // Base scalar speed, before modifiers
	Held   bool
	Mods   Modifier
}

// ExpectedSpeed is the scalar speed the ball should have with its modifiers.
func (b *Ball) ExpectedSpeed() float64 {
	return b.Speed * b.Mods.Factor()
}

// CurrentSpeed is the magnitude of the velocity vector.
func (b *Ball) CurrentSpeed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// SetMod sets a modifier, scaling the velocity for speed modifiers.
// It reports false when the flag was already set.
func (b *Ball) SetMod(m Modifier) bool {
	if b.Mods.Has(m) {
		return false
	}
	b.Mods |= m
	if f := m.Factor(); f != 1 {
		b.DX *= f
		b.DY *= f
	}
	return true
}

// ClearMod clears a modifier, dividing out its speed factor.
// It reports false when the flag was not set.
func (b *Ball) ClearMod(m Modifier) bool {
	if !b.Mods.Has(m) {
		return false
	}
	b.Mods &^= m
	if f := m.Factor(); f != 1 {
		b.DX /= f
		b.DY /= f
	}
	return true
}

// Clone returns an independent copy.
func (b *Ball) Clone() *Ball {
	c := *b
	return &c
}

// Paddle is the player's paddle.
type Paddle struct {
	X, Y         float64
	Width        float64
	Height       float64
	Speed        float64
	BaseWidth    float64
	InvincibleMs float64 // Remaining protection from projectiles
}

// Rect returns the paddle bounds.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal centre.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Invincible reports whether projectiles are currently ignored.
func (p *Paddle) Invincible() bool {
	return p.InvincibleMs > 0
}

// Special is the special behaviour of a brick.
type Special int

const (
	SpecialNone Special = iota
	SpecialBomb
	SpecialGold
	SpecialLightning
	SpecialShield
	SpecialFreeze
	SpecialTeleport
	SpecialRandom
)

func (s Special) String() string {
	switch s {
	case SpecialBomb:
		return "bomb"
	case SpecialGold:
		return "gold"
	case SpecialLightning:
		return "lightning"
	case SpecialShield:
		return "shield"
	case SpecialFreeze:
		return "freeze"
	case SpecialTeleport:
		return "teleport"
	case SpecialRandom:
		return "random"
	default:
		return "none"
	}
}

// BrickID is the stable identity of a brick: its grid cell.
type BrickID struct {
	Col, Row int
}

// Brick is one grid cell.
type Brick struct {
	ID      BrickID
	X, Y    float64
	Alive   bool
	Color   core.Color
	Special Special
	Hits    int
	MaxHits int
	Elite   *EliteState // Non-nil for elite bricks
}

// Hit removes one hit point and reports whether the brick died.
func (b *Brick) Hit() bool {
	if !b.Alive {
		return false
	}
	if b.Hits > 0 {
		b.Hits--
	}
	if b.Hits == 0 {
		b.Alive = false
		return true
	}
	return false
}

// Destroy forces the brick dead regardless of hit points.
func (b *Brick) Destroy() bool {
	if !b.Alive {
		return false
	}
	b.Alive = false
	b.Hits = 0
	return true
}

// Grid is the brick arena. Cells are addressed by (col, row) and neighbour
// lookups are bounds-checked index arithmetic.
type Grid struct {
	Cols, Rows int
	cells      [][]Brick // [row][col]
	layout     Layout
}

// Layout is the world geometry of the grid.
type Layout struct {
	BrickW, BrickH float64
	Padding        float64
	OffsetTop      float64
	OffsetLeft     float64
}

// NewGrid creates an empty grid of dead bricks.
func NewGrid(cols, rows int, layout Layout) *Grid {
	g := &Grid{Cols: cols, layout: layout}
	for range rows {
		g.appendRow()
	}
	return g
}

func (g *Grid) appendRow() {
	row := g.Rows
	cells := make([]Brick, g.Cols)
	for c := range cells {
		cells[c] = Brick{ID: BrickID{Col: c, Row: row}, Color: core.BrickColor(row)}
		cells[c].X, cells[c].Y = g.cellPos(c, row)
	}
	g.cells = append(g.cells, cells)
	g.Rows++
}

func (g *Grid) cellPos(col, row int) (float64, float64) {
	l := g.layout
	return float64(col)*(l.BrickW+l.Padding) + l.OffsetLeft, float64(row)*(l.BrickH+l.Padding) + l.OffsetTop
}

// Layout returns the grid geometry.
func (g *Grid) Layout() Layout {
	return g.layout
}

// InBounds reports whether id names a cell of the grid.
func (g *Grid) InBounds(id BrickID) bool {
	return id.Col >= 0 && id.Col < g.Cols && id.Row >= 0 && id.Row < g.Rows
}

// At returns the brick at id, or nil when out of bounds.
func (g *Grid) At(id BrickID) *Brick {
	if !g.InBounds(id) {
		return nil
	}
	return &g.cells[id.Row][id.Col]
}

// Rect returns the world bounds of a brick.
func (g *Grid) Rect(b *Brick) core.Rect {
	return core.NewRect(b.X, b.Y, g.layout.BrickW, g.layout.BrickH)
}

// Center returns the world centre of a brick.
func (g *Grid) Center(b *Brick) (float64, float64) {
	return b.X + g.layout.BrickW/2, b.Y + g.layout.BrickH/2
}

// Each calls fn for every cell in column-major order, the order bricks are
// generated and scanned in.
func (g *Grid) Each(fn func(b *Brick)) {
	for c := range g.Cols {
		for r := range g.Rows {
			fn(&g.cells[r][c])
		}
	}
}

// Neighbors returns the live bricks of the 3×3 block around id, excluding id.
func (g *Grid) Neighbors(id BrickID) []*Brick {
	var out []*Brick
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			if b := g.At(BrickID{Col: id.Col + dc, Row: id.Row + dr}); b != nil && b.Alive {
				out = append(out, b)
			}
		}
	}
	return out
}

// Orthogonal returns the live bricks directly left, right, above and below id.
func (g *Grid) Orthogonal(id BrickID) []*Brick {
	var out []*Brick
	for _, d := range [4]BrickID{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if b := g.At(BrickID{Col: id.Col + d.Col, Row: id.Row + d.Row}); b != nil && b.Alive {
			out = append(out, b)
		}
	}
	return out
}

// Row returns the bricks of one row.
func (g *Grid) Row(row int) []Brick {
	if row < 0 || row >= g.Rows {
		return nil
	}
	return g.cells[row]
}

// AliveCount returns the number of live bricks.
func (g *Grid) AliveCount() int {
	n := 0
	g.Each(func(b *Brick) {
		if b.Alive {
			n++
		}
	})
	return n
}

// Cleared reports whether no brick is alive.
func (g *Grid) Cleared() bool {
	return g.AliveCount() == 0
}

// BrickAt returns the live brick whose interior contains (x, y), or nil.
func (g *Grid) BrickAt(x, y float64) *Brick {
	l := g.layout
	stepX, stepY := l.BrickW+l.Padding, l.BrickH+l.Padding
	col := int(math.Floor((x - l.OffsetLeft) / stepX))
	row := int(math.Floor((y - l.OffsetTop) / stepY))
	b := g.At(BrickID{Col: col, Row: row})
	if b == nil || !b.Alive {
		return nil
	}
	if !g.Rect(b).ContainsOpen(x, y) {
		return nil
	}
	return b
}

// PushDown shifts every brick one row down, growing the grid by one row, and
// leaves a fresh dead row 0 for the caller to fill.
func (g *Grid) PushDown() {
	g.appendRow()
	for r := g.Rows - 1; r > 0; r-- {
		for c := range g.Cols {
			b := g.cells[r-1][c]
			b.ID = BrickID{Col: c, Row: r}
			b.X, b.Y = g.cellPos(c, r)
			g.cells[r][c] = b
		}
	}
	for c := range g.Cols {
		g.cells[0][c] = Brick{ID: BrickID{Col: c, Row: 0}, Color: core.BrickColor(0)}
		g.cells[0][c].X, g.cells[0][c].Y = g.cellPos(c, 0)
	}
}

// LowestAliveBottom returns the bottom edge of the lowest live brick, or 0.
func (g *Grid) LowestAliveBottom() float64 {
	bottom := 0.0
	g.Each(func(b *Brick) {
		if b.Alive {
			bottom = math.Max(bottom, b.Y+g.layout.BrickH)
		}
	})
	return bottom
}

// ProjectileOwner tells who fired a projectile.
type ProjectileOwner int

const (
	OwnerBoss ProjectileOwner = iota
	OwnerElite
)

// Projectile is a hostile shot falling toward the paddle. (X, Y) is the
// top-left corner of its Size×Size box.
type Projectile struct {
	X, Y   float64
	DX, DY float64
	Size   float64
	Damage int
	Owner  ProjectileOwner
	Attack AttackKind
}

// Rect returns the projectile bounds.
func (p *Projectile) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Center returns the projectile centre.
func (p *Projectile) Center() (float64, float64) {
	return p.X + p.Size/2, p.Y + p.Size/2
}

// Pickup is a falling power-up.
type Pickup struct {
	X, Y float64 // Centre
	VY   float64
	Kind Kind
}

// Shield is the protective bar at the bottom of the field.
type Shield struct {
	Active      bool
	Y           float64
	Height      float64
	RemainingMs float64
}
