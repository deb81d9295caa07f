package glowbreak

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/glowbreak/internal/core"
)

// Stats are the lifetime counters the stat-based achievements watch.
type Stats struct {
	PerfectBounces    int
	BombExplosions    int
	LightningTriggers int
	FreezeTriggers    int
	SRankCount        int
	BossKills         int
}

// fields pairs each counter with its persistence name.
func (s *Stats) fields() []struct {
	name string
	ptr  *int
} {
	return []struct {
		name string
		ptr  *int
	}{
		{"perfect_bounces", &s.PerfectBounces},
		{"bomb_explosions", &s.BombExplosions},
		{"lightning_triggers", &s.LightningTriggers},
		{"freeze_triggers", &s.FreezeTriggers},
		{"s_rank_count", &s.SRankCount},
		{"boss_kills", &s.BossKills},
	}
}

// Achievement is an unlockable badge.
type Achievement struct {
	ID          string
	Name        string
	Description string
	stat        func(Stats) int // nil for event-based achievements
	goal        int
}

// Achievements is the full catalogue in display order.
var Achievements = []Achievement{
	{ID: "chain_reaction", Name: "Chain Reaction", Description: "Reach a 10 combo"},
	{ID: "combo_maniac", Name: "Combo Maniac", Description: "Reach a 20 combo"},
	{ID: "ultimate_combo", Name: "Ultimate Combo", Description: "Reach a 30 combo"},
	{ID: "speed_demon", Name: "Speed Demon", Description: "Clear a level at top ball speed"},
	{ID: "physicist", Name: "Physicist", Description: "100 perfect edge bounces", stat: func(s Stats) int { return s.PerfectBounces }, goal: 100},
	{ID: "demolition", Name: "Demolition", Description: "Detonate 100 bombs", stat: func(s Stats) int { return s.BombExplosions }, goal: 100},
	{ID: "electrical", Name: "Electrical", Description: "Trigger 50 lightning bricks", stat: func(s Stats) int { return s.LightningTriggers }, goal: 50},
	{ID: "cryogenic", Name: "Cryogenic", Description: "Trigger 50 freeze bricks", stat: func(s Stats) int { return s.FreezeTriggers }, goal: 50},
	{ID: "perfectionist", Name: "Perfectionist", Description: "Earn 10 S ranks", stat: func(s Stats) int { return s.SRankCount }, goal: 10},
	{ID: "boss_hunter", Name: "Boss Hunter", Description: "Defeat 10 bosses", stat: func(s Stats) int { return s.BossKills }, goal: 10},
}

// Goal reports the progress of a stat-based achievement. ok is false for
// achievements that unlock on an event.
func (a Achievement) Goal(s Stats) (current, goal int, ok bool) {
	if a.stat == nil {
		return 0, 0, false
	}
	return min(a.stat(s), a.goal), a.goal, true
}

// comboAchievements unlock when a combo reaches their threshold.
var comboAchievements = []struct {
	combo int
	id    string
}{
	{10, "chain_reaction"},
	{20, "combo_maniac"},
	{30, "ultimate_combo"},
}

// Persistence keys.
const (
	keyAchievement = "achievement/"
	keyStat        = "stat/"
	keyBestRank    = "best_rank/"
	keyHighScore   = "high_score/"
)

// Progress tracks stats and unlocked achievements and writes them through
// the injected store. Store failures are logged and shown as a warning; the
// in-memory value stays authoritative for the session.
type Progress struct {
	Stats    Stats
	unlocked map[string]bool
	svc      core.Services
}

// NewProgress loads stats and achievements from the store.
func NewProgress(svc core.Services) *Progress {
	p := &Progress{unlocked: make(map[string]bool), svc: svc}
	for _, f := range p.Stats.fields() {
		if v, ok := p.get(keyStat + f.name); ok {
			n, err := strconv.Atoi(v)
			if err == nil {
				*f.ptr = n
			}
		}
	}
	for _, a := range Achievements {
		if v, ok := p.get(keyAchievement + a.ID); ok && v == "1" {
			p.unlocked[a.ID] = true
		}
	}
	return p
}

// Unlocked reports whether an achievement has been earned.
func (p *Progress) Unlocked(id string) bool {
	return p.unlocked[id]
}

// UnlockedCount returns the number of earned achievements.
func (p *Progress) UnlockedCount() int {
	return len(p.unlocked)
}

// Unlock marks an achievement as earned and announces it. It reports false
// when it was already unlocked.
func (p *Progress) Unlock(id string) bool {
	if p.unlocked[id] {
		return false
	}
	p.unlocked[id] = true
	name := id
	for _, a := range Achievements {
		if a.ID == id {
			name = a.Name
		}
	}
	p.svc.Log.Info("achievement unlocked", "id", id)
	p.svc.Notify.Notify(fmt.Sprintf("Achievement unlocked: %s", name), core.SeveritySuccess)
	p.set(keyAchievement+id, "1")
	return true
}

// CheckCombo unlocks the combo achievements reached by combo.
func (p *Progress) CheckCombo(combo int) {
	for _, c := range comboAchievements {
		if combo >= c.combo {
			p.Unlock(c.id)
		}
	}
}

// CheckStats unlocks every stat-based achievement whose goal is met.
func (p *Progress) CheckStats() {
	for _, a := range Achievements {
		if a.stat != nil && a.stat(p.Stats) >= a.goal {
			p.Unlock(a.ID)
		}
	}
}

// Flush writes every stat counter to the store.
func (p *Progress) Flush() {
	for _, f := range p.Stats.fields() {
		p.set(keyStat+f.name, strconv.Itoa(*f.ptr))
	}
}

// BestRank returns the best stored rank of a level.
func (p *Progress) BestRank(level int) Rank {
	v, ok := p.get(keyBestRank + strconv.Itoa(level))
	if !ok {
		return RankNone
	}
	return ParseRank(v)
}

// SaveBestRank stores r when it beats the stored rank and reports whether it did.
func (p *Progress) SaveBestRank(level int, r Rank) bool {
	if r <= p.BestRank(level) {
		return false
	}
	return p.set(keyBestRank+strconv.Itoa(level), r.String())
}

// HighScore returns the stored high score of a mode.
func (p *Progress) HighScore(mode string) float64 {
	v, ok := p.get(keyHighScore + mode)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// SaveHighScore stores score when it beats the stored one.
func (p *Progress) SaveHighScore(mode string, score float64) bool {
	if score <= p.HighScore(mode) {
		return false
	}
	return p.set(keyHighScore+mode, strconv.FormatFloat(score, 'f', 0, 64))
}

func (p *Progress) get(key string) (string, bool) {
	v, ok, err := p.svc.Store.Get(key)
	if err != nil {
		p.svc.Log.Warn("cannot read progress", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

func (p *Progress) set(key, value string) bool {
	if err := p.svc.Store.Set(key, value); err != nil {
		p.svc.Log.Warn("cannot save progress", "key", key, "err", err)
		p.svc.Notify.Notify("Progress not saved", core.SeverityWarning)
		return false
	}
	return true
}
