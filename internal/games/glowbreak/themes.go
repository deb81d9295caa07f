package glowbreak

import "github.com/vovakirdan/glowbreak/internal/core"

// themeTiers rotate the music through level ranges so that neighbouring
// levels never share a theme.
var themeTiers = []struct {
	last   int // Last level of the tier
	first  int
	themes [6]core.Theme
}{
	{6, 1, [6]core.Theme{core.ThemeNormal, core.ThemeJourney, core.ThemeAdventure, core.ThemeMystic, core.ThemeFast, core.ThemeTriumph}},
	{13, 8, [6]core.Theme{core.ThemeTriumph, core.ThemeFast, core.ThemeMystic, core.ThemeAdventure, core.ThemeJourney, core.ThemeNormal}},
	{20, 15, [6]core.Theme{core.ThemeFast, core.ThemeTriumph, core.ThemeJourney, core.ThemeMystic, core.ThemeNormal, core.ThemeAdventure}},
}

var lastTier = [6]core.Theme{core.ThemeMystic, core.ThemeAdventure, core.ThemeNormal, core.ThemeTriumph, core.ThemeJourney, core.ThemeFast}

// ThemeForLevel returns the background theme of a level.
func ThemeForLevel(level int) core.Theme {
	if IsBossLevel(level) {
		return core.ThemeBoss
	}
	for _, tier := range themeTiers {
		if level <= tier.last {
			return tier.themes[core.Clamp(level-tier.first, 0, 5)]
		}
	}
	return lastTier[core.Clamp(level-22, 0, 5)]
}
