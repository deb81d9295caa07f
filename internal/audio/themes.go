package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/glowbreak/internal/core"
)

// note is one step of a theme. A zero frequency is a rest; dur is in
// sixteenths of a bar, so 4 is one beat.
type note struct {
	freq float64
	dur  int
}

type melody struct {
	bpm   float64
	notes []note
}

var melodies = map[core.Theme]melody{
	core.ThemeNormal: {120, []note{
		{262, 4}, {330, 4}, {392, 4}, {523, 8}, {392, 4}, {330, 4}, {262, 8},
		{294, 4}, {349, 4}, {440, 4}, {587, 8}, {440, 4}, {349, 4}, {294, 8},
	}},
	core.ThemeJourney: {125, []note{
		{349, 4}, {440, 4}, {523, 4}, {698, 8}, {523, 4}, {440, 4}, {349, 8},
		{392, 4}, {493, 4}, {587, 4}, {783, 8}, {587, 4}, {493, 4}, {392, 8},
	}},
	core.ThemeAdventure: {130, []note{
		{440, 2}, {0, 2}, {440, 2}, {523, 2}, {440, 4}, {349, 4}, {329, 8},
		{294, 2}, {0, 2}, {294, 2}, {349, 2}, {392, 4}, {330, 4}, {220, 8},
	}},
	core.ThemeFast: {150, []note{
		{523, 2}, {0, 2}, {523, 2}, {659, 2}, {392, 4}, {0, 2}, {392, 2},
		{440, 2}, {0, 2}, {440, 2}, {523, 2}, {349, 4}, {0, 2}, {349, 2},
	}},
	core.ThemeBoss: {180, []note{
		{82, 2}, {0, 1}, {82, 2}, {0, 1}, {98, 2}, {0, 1}, {98, 2}, {110, 2},
		{110, 2}, {123, 2}, {130, 2}, {146, 2},
		{164, 1}, {0, 1}, {164, 1}, {0, 1}, {174, 2}, {146, 2}, {130, 4},
		{82, 4}, {0, 2}, {65, 4},
	}},
	core.ThemeMystic: {100, []note{
		{220, 8}, {0, 2}, {277, 4}, {330, 4}, {440, 8}, {0, 4},
		{349, 4}, {392, 2}, {440, 2}, {523, 8}, {440, 4}, {349, 4}, {330, 8},
		{262, 2}, {294, 2}, {330, 2}, {392, 2}, {440, 4}, {0, 2}, {330, 6},
	}},
	core.ThemeTriumph: {140, []note{
		{392, 2}, {523, 2}, {659, 4}, {784, 8}, {659, 4}, {523, 4},
		{440, 2}, {523, 2}, {659, 2}, {784, 2}, {880, 8}, {0, 2},
		{659, 2}, {784, 2}, {880, 4}, {784, 2}, {659, 2}, {523, 8},
	}},
}

// themeGain is the level of a theme note before the music volume.
const themeGain = 0.3

// generateTheme renders one pass of a theme as a loopable buffer.
func generateTheme(t core.Theme, rate beep.SampleRate) floatBuffer {
	m, ok := melodies[t]
	if !ok {
		return nil
	}
	beat := time.Duration(float64(time.Minute) / m.bpm)

	parts := make([]beep.Streamer, 0, len(m.notes))
	for _, n := range m.notes {
		dur := beat * time.Duration(n.dur) / 4
		if n.freq == 0 {
			parts = append(parts, beep.Silence(rate.N(dur)))
			continue
		}
		parts = append(parts, synth(rate, tone{freq: n.freq, dur: dur, wave: WaveSquare, gain: themeGain}))
	}
	return render(beep.Seq(parts...))
}
