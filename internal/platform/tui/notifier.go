package tui

import (
	"time"

	"github.com/vovakirdan/glowbreak/internal/core"
)

const (
	toastLifetime = 2500 * time.Millisecond
	maxToasts     = 3
	toastTop      = 2 // First row below the HUD
)

type toast struct {
	msg     string
	sev     core.Severity
	expires time.Time
}

// Toasts is a core.Notifier that shows short-lived messages in the top
// right corner of the game screen. Only the newest few are kept.
type Toasts struct {
	items []toast
	now   func() time.Time
}

var _ core.Notifier = (*Toasts)(nil)

// NewToasts creates an empty toast stack.
func NewToasts() *Toasts {
	return &Toasts{now: time.Now}
}

// Notify queues a message.
func (t *Toasts) Notify(msg string, sev core.Severity) {
	t.items = append(t.items, toast{msg: msg, sev: sev, expires: t.now().Add(toastLifetime)})
	if len(t.items) > maxToasts {
		t.items = t.items[len(t.items)-maxToasts:]
	}
}

// Prune drops expired toasts.
func (t *Toasts) Prune() {
	now := t.now()
	kept := t.items[:0]
	for _, it := range t.items {
		if now.Before(it.expires) {
			kept = append(kept, it)
		}
	}
	t.items = kept
}

// Len returns the number of visible toasts.
func (t *Toasts) Len() int {
	return len(t.items)
}

// Draw renders the visible toasts onto the screen, newest last.
func (t *Toasts) Draw(s *core.Screen) {
	for i, it := range t.items {
		y := toastTop + i
		if y >= s.Height() {
			return
		}
		text := " " + it.msg + " "
		x := max(s.Width()-len([]rune(text))-1, 0)
		s.DrawTextColor(x, y, text, severityColor(it.sev))
	}
}

func severityColor(sev core.Severity) core.Color {
	switch sev {
	case core.SeveritySuccess:
		return core.ColorBrightGreen
	case core.SeverityWarning:
		return core.ColorBrightYellow
	case core.SeverityError:
		return core.ColorBrightRed
	default:
		return core.ColorBrightCyan
	}
}
