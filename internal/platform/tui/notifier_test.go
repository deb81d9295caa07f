package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/glowbreak/internal/core"
)

func TestToastsExpire(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	toasts := NewToasts()
	toasts.now = func() time.Time { return now }

	toasts.Notify("hello", core.SeverityInfo)
	toasts.Prune()
	if toasts.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", toasts.Len())
	}

	now = now.Add(toastLifetime)
	toasts.Prune()
	if toasts.Len() != 0 {
		t.Errorf("Len() = %d, expected 0 after the lifetime", toasts.Len())
	}
}

func TestToastsKeepNewest(t *testing.T) {
	toasts := NewToasts()
	for _, msg := range []string{"one", "two", "three", "four"} {
		toasts.Notify(msg, core.SeverityInfo)
	}
	if toasts.Len() != maxToasts {
		t.Fatalf("Len() = %d, expected %d", toasts.Len(), maxToasts)
	}
	if toasts.items[0].msg != "two" {
		t.Errorf("oldest kept = %q, expected two", toasts.items[0].msg)
	}
}

func TestToastsDraw(t *testing.T) {
	s := core.NewScreen(40, 10)
	toasts := NewToasts()
	toasts.Notify("Sound off", core.SeverityWarning)
	toasts.Draw(s)

	row := s.Row(toastTop)
	if !strings.Contains(row, "Sound off") {
		t.Fatalf("row %d = %q, expected the toast", toastTop, row)
	}
	x := strings.Index(row, "Sound off")
	if c := s.GetCell(x, toastTop).Color; c != core.ColorBrightYellow {
		t.Errorf("toast color = %v, expected bright yellow", c)
	}
	if !strings.HasSuffix(strings.TrimRight(row, " "), "Sound off") {
		t.Errorf("toast should be right aligned, row = %q", row)
	}
}
