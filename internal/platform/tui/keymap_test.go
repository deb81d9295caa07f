package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glowbreak/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionLaunch, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"c", runeKey('c'), core.ActionContinue, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"m", runeKey('m'), core.ActionMute, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected || quit != tt.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tt.expected, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestHoldTracker(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	var h holdTracker

	frame := core.NewInputFrame()
	h.press(core.ActionLeft, start)
	h.apply(&frame, start.Add(100*time.Millisecond))
	if !frame.Has(core.ActionLeft) {
		t.Error("direction should be held inside the window")
	}

	frame.Clear()
	h.press(core.ActionRight, start.Add(120*time.Millisecond))
	h.apply(&frame, start.Add(150*time.Millisecond))
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("opposite key should take over, got %v", frame.Actions)
	}

	frame.Clear()
	h.apply(&frame, start.Add(time.Second))
	if frame.Has(core.ActionRight) {
		t.Error("direction should be released after the window")
	}

	frame.Clear()
	h.press(core.ActionLeft, start)
	h.release()
	h.apply(&frame, start)
	if frame.Has(core.ActionLeft) {
		t.Error("release should drop the direction")
	}
}
