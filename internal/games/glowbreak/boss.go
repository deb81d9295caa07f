package glowbreak

import "github.com/vovakirdan/glowbreak/internal/core"

// AttackKind is the element of a projectile.
type AttackKind int

const (
	AttackFire AttackKind = iota
	AttackIce
	AttackLightning
	AttackFireball // Elite FlameLord shot
)

func (a AttackKind) String() string {
	switch a {
	case AttackFire:
		return "fire"
	case AttackIce:
		return "ice"
	case AttackLightning:
		return "lightning"
	case AttackFireball:
		return "fireball"
	default:
		return "unknown"
	}
}

// Color returns the display colour of the attack.
func (a AttackKind) Color() core.Color {
	switch a {
	case AttackIce:
		return core.ColorIce
	case AttackLightning:
		return core.ColorBrightYellow
	default:
		return core.ColorOrange
	}
}

// BossKind identifies a boss from the catalogue.
type BossKind int

const (
	BossDragon BossKind = iota
	BossKraken
	BossMecha
)

// BossInfo is the static description of a boss.
type BossInfo struct {
	Name            string
	HP              int
	Width, Height   float64
	AttackInterval  float64 // ms
	ProjectileSpeed float64
	ProjectileSize  float64
	Attack          AttackKind
	Color           core.Color
}

var bossCatalogue = [...]BossInfo{
	BossDragon: {Name: "Dragon", HP: 10, Width: 120, Height: 100, AttackInterval: 3000, ProjectileSpeed: 4, ProjectileSize: 45, Attack: AttackFire, Color: core.ColorBrightRed},
	BossKraken: {Name: "Kraken", HP: 12, Width: 140, Height: 110, AttackInterval: 2500, ProjectileSpeed: 3.5, ProjectileSize: 40, Attack: AttackIce, Color: core.ColorBrightCyan},
	BossMecha:  {Name: "Mecha", HP: 15, Width: 130, Height: 120, AttackInterval: 2000, ProjectileSpeed: 5, ProjectileSize: 35, Attack: AttackLightning, Color: core.ColorGray},
}

// Info returns the catalogue entry of k.
func (k BossKind) Info() BossInfo {
	return bossCatalogue[k]
}

func (k BossKind) String() string {
	return k.Info().Name
}

// BossTier returns the boss tier of a level: level/7 on every seventh level,
// 0 otherwise. This is the single rule deciding boss levels.
func BossTier(level int) int {
	if level >= 7 && level%7 == 0 {
		return level / 7
	}
	return 0
}

// IsBossLevel reports whether a level uses the boss layout.
func IsBossLevel(level int) bool {
	return BossTier(level) > 0
}

// BossKindForTier returns the boss fought at a tier. Tier 1 is a mini-boss
// level with elites only and reports false.
func BossKindForTier(tier int) (BossKind, bool) {
	switch {
	case tier <= 1:
		return 0, false
	case tier == 2:
		return BossDragon, true
	case tier == 3:
		return BossKraken, true
	default:
		return BossMecha, true
	}
}

// BossPhase is the life cycle of a boss.
type BossPhase int

const (
	BossAlive BossPhase = iota
	BossHurt
	BossDead
)

// Boss timings and motion.
const (
	BossHurtMs     = 200
	BossFadeMs     = 1000
	BossMargin     = 20
	BossMoveSpeed  = 1
	BossSpawnY     = 30
	BossCooldownMs = 50
)

// Boss is the boss entity of a boss level.
type Boss struct {
	Kind          BossKind
	X, Y          float64
	Width, Height float64
	HP, MaxHP     int
	Dir           float64
	Phase         BossPhase
	PhaseMs       float64 // Time left in Hurt or Dead
	attackTimer   float64
	lastHit       float64
	hitOnce       bool
	cooldown      float64
}

// NewBoss creates a boss centred at the top of a field of width fieldW.
// hp <= 0 uses the catalogue hit points.
func NewBoss(kind BossKind, fieldW float64, hp int, cooldownMs float64) *Boss {
	info := kind.Info()
	if hp <= 0 {
		hp = info.HP
	}
	if cooldownMs <= 0 {
		cooldownMs = BossCooldownMs
	}
	return &Boss{
		Kind:     kind,
		X:        (fieldW - info.Width) / 2,
		Y:        BossSpawnY,
		Width:    info.Width,
		Height:   info.Height,
		HP:       hp,
		MaxHP:    hp,
		Dir:      1,
		cooldown: cooldownMs,
	}
}

// Rect returns the boss bounds.
func (b *Boss) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Dead reports whether the boss has been defeated.
func (b *Boss) Dead() bool {
	return b.Phase == BossDead
}

// Gone reports whether the death fade has finished.
func (b *Boss) Gone() bool {
	return b.Phase == BossDead && b.PhaseMs <= 0
}

// Update moves the boss, advances its timers, and returns a projectile when
// an attack is due. dt is in ms and ts is the time scale.
func (b *Boss) Update(dt, ts, fieldW float64) *Projectile {
	switch b.Phase {
	case BossDead:
		b.PhaseMs -= dt
		return nil
	case BossHurt:
		b.PhaseMs -= dt
		if b.PhaseMs <= 0 {
			b.Phase = BossAlive
		}
	}

	b.X += b.Dir * BossMoveSpeed * ts
	if b.X <= BossMargin {
		b.X = BossMargin
		b.Dir = 1
	} else if b.X+b.Width >= fieldW-BossMargin {
		b.X = fieldW - BossMargin - b.Width
		b.Dir = -1
	}

	info := b.Kind.Info()
	b.attackTimer += dt
	if b.attackTimer < info.AttackInterval {
		return nil
	}
	b.attackTimer -= info.AttackInterval
	return &Projectile{
		X:      b.X + b.Width/2 - info.ProjectileSize/2,
		Y:      b.Y + b.Height,
		DY:     info.ProjectileSpeed,
		Size:   info.ProjectileSize,
		Damage: 1,
		Owner:  OwnerBoss,
		Attack: info.Attack,
	}
}

// RegisterHit applies dmg at session time now unless the boss is dead or the
// previous registered hit was less than the cooldown ago. It reports whether
// the hit counted.
func (b *Boss) RegisterHit(now float64, dmg int) bool {
	if b.Dead() {
		return false
	}
	if b.hitOnce && now-b.lastHit < b.cooldown {
		return false
	}
	b.hitOnce = true
	b.lastHit = now
	b.TakeDamage(dmg)
	return true
}

// TakeDamage lowers the hit points and moves the boss to Hurt or Dead.
func (b *Boss) TakeDamage(dmg int) {
	if b.Dead() {
		return
	}
	b.HP = max(b.HP-dmg, 0)
	if b.HP == 0 {
		b.Phase = BossDead
		b.PhaseMs = BossFadeMs
		return
	}
	b.Phase = BossHurt
	b.PhaseMs = BossHurtMs
}
