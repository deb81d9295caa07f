package glowbreak

import (
	"errors"
	"testing"

	"github.com/vovakirdan/glowbreak/internal/core"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(msg string, _ core.Severity) {
	n.messages = append(n.messages, msg)
}

type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (failingStore) Set(string, string) error         { return errors.New("disk gone") }

func TestProgressPersists(t *testing.T) {
	store := core.NewMemoryStore()
	svc := core.Services{Store: store}.WithDefaults()

	p := NewProgress(svc)
	if !p.Unlock("chain_reaction") {
		t.Fatal("first unlock should report true")
	}
	if p.Unlock("chain_reaction") {
		t.Error("second unlock should report false")
	}
	p.Stats.BombExplosions = 7
	p.Flush()

	reloaded := NewProgress(svc)
	if !reloaded.Unlocked("chain_reaction") {
		t.Error("unlock should survive a reload")
	}
	if reloaded.Stats.BombExplosions != 7 {
		t.Errorf("BombExplosions = %d, expected 7", reloaded.Stats.BombExplosions)
	}
}

func TestCheckCombo(t *testing.T) {
	p := NewProgress(core.Services{}.WithDefaults())
	p.CheckCombo(20)
	if !p.Unlocked("chain_reaction") || !p.Unlocked("combo_maniac") {
		t.Error("a 20 combo should unlock the 10 and 20 combo achievements")
	}
	if p.Unlocked("ultimate_combo") {
		t.Error("ultimate combo needs 30")
	}
}

func TestCheckStats(t *testing.T) {
	p := NewProgress(core.Services{}.WithDefaults())
	p.Stats.LightningTriggers = 49
	p.CheckStats()
	if p.Unlocked("electrical") {
		t.Error("49 triggers should not unlock")
	}
	p.Stats.LightningTriggers++
	p.CheckStats()
	if !p.Unlocked("electrical") {
		t.Error("50 triggers should unlock")
	}
	if p.UnlockedCount() != 1 {
		t.Errorf("UnlockedCount() = %d, expected 1", p.UnlockedCount())
	}
}

func TestBestRank(t *testing.T) {
	p := NewProgress(core.Services{}.WithDefaults())
	if p.BestRank(3) != RankNone {
		t.Error("unplayed level should have no rank")
	}
	if !p.SaveBestRank(3, RankB) {
		t.Error("first rank should be saved")
	}
	if p.SaveBestRank(3, RankC) {
		t.Error("worse rank should not replace the best")
	}
	if !p.SaveBestRank(3, RankS) {
		t.Error("better rank should be saved")
	}
	if got := p.BestRank(3); got != RankS {
		t.Errorf("BestRank(3) = %v, expected S", got)
	}
}

func TestHighScore(t *testing.T) {
	p := NewProgress(core.Services{}.WithDefaults())
	if !p.SaveHighScore("glowbreak", 1500) {
		t.Error("first score should be saved")
	}
	if p.SaveHighScore("glowbreak", 900) {
		t.Error("lower score should not be saved")
	}
	if got := p.HighScore("glowbreak"); got != 1500 {
		t.Errorf("HighScore() = %v, expected 1500", got)
	}
	if got := p.HighScore("glowbreak_endless"); got != 0 {
		t.Errorf("HighScore(endless) = %v, expected 0", got)
	}
}

func TestProgressStoreFailure(t *testing.T) {
	n := &recordingNotifier{}
	p := NewProgress(core.Services{Store: failingStore{}, Notify: n}.WithDefaults())

	if !p.Unlock("speed_demon") {
		t.Fatal("unlock should succeed in memory when the store fails")
	}
	if !p.Unlocked("speed_demon") {
		t.Error("in-memory state should stay authoritative")
	}

	found := false
	for _, m := range n.messages {
		if m == "Progress not saved" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a save warning, got %v", n.messages)
	}
}

func TestAchievementGoal(t *testing.T) {
	s := Stats{BossKills: 12, BombExplosions: 40}
	for _, a := range Achievements {
		cur, goal, ok := a.Goal(s)
		switch a.ID {
		case "boss_hunter":
			if !ok || cur != 10 || goal != 10 {
				t.Errorf("Goal(boss_hunter) = %d/%d %v, expected 10/10 true", cur, goal, ok)
			}
		case "demolition":
			if !ok || cur != 40 || goal != 100 {
				t.Errorf("Goal(demolition) = %d/%d %v, expected 40/100 true", cur, goal, ok)
			}
		case "chain_reaction":
			if ok {
				t.Error("combo achievements have no stat goal")
			}
		}
	}
}
