package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/glowbreak/internal/config"
	"github.com/vovakirdan/glowbreak/internal/leaderboard"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestKeyValue(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("glowbreak.stats"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v, expected a miss", ok, err)
	}

	if err := store.Set("glowbreak.stats", `{"bossKills":1}`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("glowbreak.stats", `{"bossKills":2}`); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("glowbreak.stats")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if v != `{"bossKills":2}` {
		t.Errorf("Get() = %q, expected the latest value", v)
	}
}

func TestKeyValueSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set("glowbreak.rank.3", "S"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if v, ok, _ := store.Get("glowbreak.rank.3"); !ok || v != "S" {
		t.Errorf("Get() = %q, %v, expected S", v, ok)
	}
}

func TestDailyScores(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, e := range []leaderboard.Entry{
		{Name: "amy", Score: 300, MaxCombo: 4, Seed: "20240101"},
		{Name: "bob", Score: 900, MaxCombo: 12, Seed: "20240101"},
		{Name: "cat", Score: 300, MaxCombo: 2, Seed: "20240101"},
		{Name: "dan", Score: 5000, MaxCombo: 30, Seed: "20240102"},
	} {
		if err := store.InsertScore(ctx, e); err != nil {
			t.Fatalf("InsertScore() failed: %v", err)
		}
	}

	top, err := store.QueryTopScores(ctx, "20240101", 10)
	if err != nil {
		t.Fatalf("QueryTopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("len = %d, expected 3 for the seed", len(top))
	}
	names := []string{top[0].Name, top[1].Name, top[2].Name}
	if names[0] != "bob" || names[1] != "amy" || names[2] != "cat" {
		t.Errorf("order = %v, expected [bob amy cat]", names)
	}
	if top[0].MaxCombo != 12 || top[0].Seed != "20240101" {
		t.Errorf("top entry = %+v", top[0])
	}

	limited, err := store.QueryTopScores(ctx, "20240101", 2)
	if err != nil {
		t.Fatalf("QueryTopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len = %d, expected 2 with limit", len(limited))
	}
}

func TestLeaderboardServiceOnSQLite(t *testing.T) {
	store := openTestStore(t)
	svc := leaderboard.New(store, config.Default().Leaderboard, nil)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "  a very long player name  ", 1234.7, 9, "20240101"); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	top, err := svc.Top(ctx, "20240101")
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 1 || top[0].Name != "a very long" || top[0].Score != 1234 {
		t.Errorf("Top() = %+v", top)
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("glowbreak", 100)
	store.SaveScore("glowbreak", 300)
	store.SaveScore("glowbreak_endless", 50)

	stats, err := store.GetGameStats("glowbreak")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("GetGameStats() = %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["glowbreak_endless"].HighScore != 50 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}
