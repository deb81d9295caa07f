package registry_test

import (
	"testing"

	_ "github.com/vovakirdan/glowbreak/internal/games/glowbreak"
	"github.com/vovakirdan/glowbreak/internal/registry"
)

func TestListSortedByID(t *testing.T) {
	games := registry.List()
	if len(games) != 2 {
		t.Fatalf("List() returned %d games, expected 2", len(games))
	}
	if games[0].ID != "glowbreak" || games[1].ID != "glowbreak_endless" {
		t.Errorf("List() IDs = %q, %q", games[0].ID, games[1].ID)
	}
	for _, g := range games {
		if g.Title == "" {
			t.Errorf("game %q has no title", g.ID)
		}
	}
}

func TestCreate(t *testing.T) {
	if !registry.Exists("glowbreak_endless") {
		t.Fatal("Exists(glowbreak_endless) = false, expected true")
	}
	g, err := registry.Create("glowbreak", registry.DefaultEnv())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "glowbreak" {
		t.Errorf("ID() = %q, expected glowbreak", g.ID())
	}
	if _, err := registry.Create("breakout", registry.DefaultEnv()); err == nil {
		t.Error("Create() of an unregistered game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering an existing ID should panic")
		}
	}()
	registry.Register("glowbreak", nil)
}
