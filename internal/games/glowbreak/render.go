package glowbreak

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/glowbreak/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar     = '='
	BallChar       = '●'
	ShieldChar     = '═'
	ProjectileChar = '▼'
	BorderHoriz    = '─'
)

// Rows reserved around the field: two HUD rows on top, one hint row below.
const (
	hudRows    = 2
	footerRows = 1
	minScreenW = 40
	minScreenH = 16
)

// hitGlyphs shade plain bricks by remaining hit points.
var hitGlyphs = []rune{'▒', '▓', '█'}

// specialGlyph returns the marker drawn in the middle of a special brick.
func specialGlyph(s Special) rune {
	switch s {
	case SpecialBomb:
		return '*'
	case SpecialGold:
		return '$'
	case SpecialLightning:
		return '%'
	case SpecialShield:
		return '#'
	case SpecialFreeze:
		return '~'
	case SpecialTeleport:
		return '@'
	case SpecialRandom:
		return '?'
	default:
		return 0
	}
}

// specialColor returns the colour of a special brick.
func specialColor(s Special, fallback core.Color) core.Color {
	switch s {
	case SpecialBomb:
		return core.ColorRed
	case SpecialGold:
		return core.ColorGold
	case SpecialLightning:
		return core.ColorBrightYellow
	case SpecialShield:
		return core.ColorBrightCyan
	case SpecialFreeze:
		return core.ColorIce
	case SpecialTeleport:
		return core.ColorPurple
	case SpecialRandom:
		return core.ColorBrightMagenta
	default:
		return fallback
	}
}

// FieldViewport maps the world onto the field area of a screen.
func (g *Game) FieldViewport(dst *core.Screen) core.Viewport {
	return core.NewViewport(0, hudRows, dst.Width(), dst.Height()-hudRows-footerRows, g.cfg.Field.Width, g.cfg.Field.Height)
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	vp := g.FieldViewport(dst)
	g.renderHUD(dst)
	g.renderBricks(dst, vp)
	g.renderBoss(dst, vp)
	g.renderShield(dst, vp)
	g.renderPickups(dst, vp)
	g.renderProjectiles(dst, vp)
	g.renderPaddle(dst, vp)
	g.renderBalls(dst, vp)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives, level, the combo and active effects.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d  Hi: %d", int(g.score), int(math.Max(g.score, g.highScore))), core.ColorBrightWhite)
	dst.DrawTextCenteredColor(0, fmt.Sprintf("Lives: %d", g.lives), core.ColorBrightRed)

	levelText := fmt.Sprintf("Level %d", g.level)
	if IsBossLevel(g.level) {
		levelText += " BOSS"
	}
	if g.credits > 0 {
		levelText = fmt.Sprintf("Credits %d  %s", g.credits, levelText)
	}
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(levelText)-1, 0, levelText, core.ColorBrightYellow)

	var parts []string
	if label := ComboLabel(g.combo); label != "" {
		parts = append(parts, label)
	}
	for _, k := range g.power.Effects.Sorted() {
		parts = append(parts, fmt.Sprintf("%s %ds", k.Label(), int(math.Ceil(g.power.Effects[k]/1000))))
	}
	if g.freezeActive {
		parts = append(parts, "Frozen")
	}
	if g.eliteSlowMs > 0 {
		parts = append(parts, "Slowed")
	}
	if len(parts) == 0 {
		dst.DrawHLine(0, 1, dst.Width(), BorderHoriz, core.ColorGray)
		return
	}
	dst.DrawTextColor(1, 1, strings.Join(parts, "  "), core.ColorBrightCyan)
}

// renderBricks draws every live brick.
func (g *Game) renderBricks(dst *core.Screen, vp core.Viewport) {
	l := g.grid.Layout()
	g.grid.Each(func(b *Brick) {
		if !b.Alive {
			return
		}
		x, w := vp.Span(b.X, l.BrickW)
		_, y := vp.Cell(b.X, b.Y+l.BrickH/2)
		if !vp.Inside(x, y) {
			return
		}

		glyph := hitGlyphs[core.Clamp(b.Hits, 1, len(hitGlyphs))-1]
		color := specialColor(b.Special, b.Color)
		if b.Elite != nil {
			glyph = '▓'
			color = b.Elite.Kind.Info().Color
		}
		// Leave the last cell as a gap between neighbours
		dst.FillRect(x, y, max(w-1, 1), 1, glyph, color)

		mark := specialGlyph(b.Special)
		if b.Elite != nil {
			mark = rune(b.Elite.Kind.String()[0])
		}
		if mark != 0 {
			dst.SetColor(x+max(w-1, 1)/2, y, mark, core.ColorBrightWhite)
		}
	})
}

// renderBoss draws the boss box with its health bar.
func (g *Game) renderBoss(dst *core.Screen, vp core.Viewport) {
	if g.boss == nil || g.boss.Gone() {
		return
	}
	info := g.boss.Kind.Info()
	x, w := vp.Span(g.boss.X, g.boss.Width)
	_, top := vp.Cell(g.boss.X, g.boss.Y)
	_, bottom := vp.Cell(g.boss.X, g.boss.Y+g.boss.Height)
	h := max(bottom-top, 3)

	color := info.Color
	switch g.boss.Phase {
	case BossHurt:
		color = core.ColorBrightWhite
	case BossDead:
		color = core.ColorGray
	}
	dst.DrawBox(x, top, w, h, color)

	name := info.Name
	if utf8.RuneCountInString(name) > w-2 {
		name = name[:max(w-2, 0)]
	}
	dst.DrawTextColor(x+(w-utf8.RuneCountInString(name))/2, top+1, name, color)

	if inner := w - 2; inner > 0 && h > 3 {
		filled := int(math.Ceil(float64(inner) * float64(g.boss.HP) / float64(max(g.boss.MaxHP, 1))))
		dst.DrawHLine(x+1, top+2, filled, '█', core.ColorBrightRed)
		dst.DrawHLine(x+1+filled, top+2, inner-filled, '░', core.ColorGray)
	}
}

// renderShield draws the shield line.
func (g *Game) renderShield(dst *core.Screen, vp core.Viewport) {
	if !g.barrier.Active {
		return
	}
	_, y := vp.Cell(0, g.barrier.Y)
	y = min(y, vp.Top+vp.Rows-1)
	dst.DrawHLine(vp.Left, y, vp.Cols, ShieldChar, core.ColorBrightCyan)
}

// renderPickups draws falling power-ups.
func (g *Game) renderPickups(dst *core.Screen, vp core.Viewport) {
	for _, p := range g.pickups {
		x, y := vp.Cell(p.X, p.Y)
		if vp.Inside(x, y) {
			dst.SetColor(x, y, p.Kind.Glyph(), p.Kind.Color())
		}
	}
}

// renderProjectiles draws boss and elite shots.
func (g *Game) renderProjectiles(dst *core.Screen, vp core.Viewport) {
	for _, p := range g.projectiles {
		x, w := vp.Span(p.X, p.Size)
		_, y := vp.Cell(p.X, p.Y+p.Size/2)
		if !vp.Inside(x, y) {
			continue
		}
		dst.DrawHLine(x, y, w, ProjectileChar, p.Attack.Color())
	}
}

// renderPaddle draws the paddle; it glows gold while invincible.
func (g *Game) renderPaddle(dst *core.Screen, vp core.Viewport) {
	x, w := vp.Span(g.pad.X, g.pad.Width)
	_, y := vp.Cell(g.pad.X, g.pad.Y)
	color := core.ColorBrightWhite
	switch {
	case g.pad.Invincible():
		color = core.ColorGold
	case g.freezeActive:
		color = core.ColorIce
	}
	dst.DrawHLine(x, y, w, PaddleChar, color)
}

// renderBalls draws all balls.
func (g *Game) renderBalls(dst *core.Screen, vp core.Viewport) {
	for _, b := range g.ballSet {
		x, y := vp.Cell(b.X, b.Y)
		if !vp.Inside(x, y) {
			continue
		}
		color := core.ColorBrightWhite
		switch {
		case b.Mods.Has(ModFireball):
			color = core.ColorOrange
		case b.Mods.Has(ModFrozen):
			color = core.ColorIce
		case b.Mods.Has(ModPierce):
			color = core.ColorGold
		}
		dst.SetColor(x, y, BallChar, color)
	}
}

// renderOverlay draws the state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	hint := dst.Height() - 1
	switch g.state {
	case StateIdle:
		g.drawCenteredBox(dst, "GLOWBREAK", fmt.Sprintf("Daily seed %s  |  SPACE to start", SeedString(g.dailySeed)))

	case StatePlaying:
		for _, b := range g.ballSet {
			if b.Held {
				dst.DrawTextCenteredColor(hint, "SPACE to launch", core.ColorGray)
				break
			}
		}

	case StatePaused:
		if g.pause == pauseLifeLost {
			g.drawCenteredBox(dst, fmt.Sprintf("Lives left: %d", g.lives), "SPACE to launch")
		} else {
			g.drawCenteredBox(dst, "PAUSED", "P to resume")
		}

	case StateWin:
		title := fmt.Sprintf("LEVEL %d CLEAR  Rank %s", g.lastLevel, g.lastRank)
		if g.newBest {
			title += " (new best)"
		}
		g.drawCenteredBox(dst, title, fmt.Sprintf("%s  |  SPACE for level %d", g.rewardText(), g.level))

	case StateGameOver:
		if g.continueMs > 0 {
			cost := fmt.Sprintf("C: pay %d score", int(g.cfg.Gameplay.ContinueCost))
			if g.score < g.cfg.Gameplay.ContinueCost {
				cost = fmt.Sprintf("C: insert 1 credit (%d left)", g.credits)
			}
			g.drawCenteredBox(dst, fmt.Sprintf("CONTINUE? %d", int(math.Ceil(g.continueMs/1000))), cost)
			return
		}
		g.drawCenteredBox(dst, g.overTitle, fmt.Sprintf("Score: %d  |  R to restart", int(g.score)))
	}
}

// rewardText summarises the last reward.
func (g *Game) rewardText() string {
	var parts []string
	r := g.lastReward
	if r.Lives > 0 {
		parts = append(parts, fmt.Sprintf("+%d lives", r.Lives))
	}
	if r.Score > 0 {
		parts = append(parts, fmt.Sprintf("+%d score", int(r.Score)))
	}
	if r.Credits > 0 {
		parts = append(parts, fmt.Sprintf("+%d credit", r.Credits))
	}
	return strings.Join(parts, " ")
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightCyan)

	dst.DrawTextColor(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-utf8.RuneCountInString(subtitle))/2, boxY+3, subtitle)
}
