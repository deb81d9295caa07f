package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/glowbreak/internal/core"
)

// neonPalette is the 256-color code of every game color. Brick rows, special
// bricks and bosses use the saturated end of the cube so they read as neon on
// a dark terminal.
var neonPalette = map[core.Color]string{
	core.ColorRed:           "160",
	core.ColorGreen:         "34",
	core.ColorYellow:        "178",
	core.ColorBlue:          "33",
	core.ColorMagenta:       "163",
	core.ColorCyan:          "37",
	core.ColorWhite:         "252",
	core.ColorBrightRed:     "197",
	core.ColorBrightGreen:   "48",
	core.ColorBrightYellow:  "227",
	core.ColorBrightBlue:    "75",
	core.ColorBrightMagenta: "207",
	core.ColorBrightCyan:    "87",
	core.ColorBrightWhite:   "231",
	core.ColorOrange:        "208", // Bombs, fireballs
	core.ColorGray:          "245", // Steel, Mecha
	core.ColorGold:          "220", // Gold bricks
	core.ColorIce:           "153", // Freeze
	core.ColorPurple:        "135", // Teleport, MagnetCore
}

// glowing colors are drawn bold.
var glowing = map[core.Color]bool{
	core.ColorBrightRed:     true,
	core.ColorBrightGreen:   true,
	core.ColorBrightYellow:  true,
	core.ColorBrightMagenta: true,
	core.ColorBrightCyan:    true,
	core.ColorGold:          true,
}

var cellStyles = buildCellStyles()

func buildCellStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(neonPalette))
	for c, code := range neonPalette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code)).Bold(glowing[c])
	}
	return styles
}

// RenderScreen turns the cell screen into terminal output. Cells are grouped
// into runs of one color; blank default cells are written unstyled.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			style, ok := cellStyles[color]
			if !ok {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
