package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vovakirdan/glowbreak/internal/core"
)

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColor(2, 0, "GLOW", core.ColorBrightCyan)
	s.DrawText(8, 0, "break")
	s.DrawTextColor(0, 2, "###", core.ColorGold)
	s.SetColor(3, 2, '#', core.ColorOrange)

	lines := strings.Split(ansiSeq.ReplaceAllString(RenderScreen(s), ""), "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() has %d lines, expected 3", len(lines))
	}
	for y, line := range lines {
		if line != s.Row(y) {
			t.Errorf("line %d = %q, expected %q", y, line, s.Row(y))
		}
	}
}

func TestPaletteCoversGameColors(t *testing.T) {
	for c := core.ColorRed; c <= core.ColorPurple; c++ {
		if _, ok := cellStyles[c]; !ok {
			t.Errorf("color %v has no style", c)
		}
	}
	if _, ok := cellStyles[core.ColorDefault]; ok {
		t.Error("default color should render unstyled")
	}
}
