package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glowbreak/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7, DailySeed: 20250101}
}

func TestNewModelUnknownGame(t *testing.T) {
	if _, err := NewModel("no_such_mode", Deps{}, testRuntime()); err == nil {
		t.Error("NewModel() with an unknown game should fail")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m, err := NewModel(CampaignID, Deps{}, testRuntime())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	m.Init()

	_, cmd := m.Update(TickMsg{Loop: m.loop + 1, Time: time.Now()})
	if cmd != nil {
		t.Error("a tick from another loop should not schedule a new tick")
	}

	_, cmd = m.Update(TickMsg{Loop: m.loop, Time: time.Now()})
	if cmd == nil {
		t.Error("a tick from the current loop should schedule the next tick")
	}
}

func TestModelMuteWithoutAudio(t *testing.T) {
	m, err := NewModel(CampaignID, Deps{}, testRuntime())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	m.Update(runeKey('m'))
	if m.toasts.Len() != 1 {
		t.Fatalf("toasts = %d, expected 1", m.toasts.Len())
	}
	if got := m.toasts.items[0].msg; got != "Sound unavailable" {
		t.Errorf("toast = %q, expected Sound unavailable", got)
	}
}

func TestModelQuit(t *testing.T) {
	m, err := NewModel(EndlessID, Deps{}, testRuntime())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if !next.(Model).IsQuitting() {
		t.Error("IsQuitting() = false, expected true")
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	m, err := NewModel(CampaignID, Deps{}, testRuntime())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	next, _ := m.Update(runeKey('b'))
	if next.(Model).BackToMenu() {
		t.Error("back during play should be ignored")
	}

	m.gameState.Paused = true
	next, _ = m.Update(runeKey('b'))
	if !next.(Model).BackToMenu() {
		t.Error("back while paused should return to the menu")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, err := NewModel(CampaignID, Deps{}, testRuntime())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	got := next.(Model)
	if got.screen.Width() != 100 || got.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", got.screen.Width(), got.screen.Height())
	}
	if got.game != m.game {
		t.Error("resize should keep the running game")
	}
}
