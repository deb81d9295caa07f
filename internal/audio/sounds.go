package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/glowbreak/internal/core"
)

const ms = time.Millisecond

// comboScale is the C major scale the combo sound climbs, one octave per
// eight combo steps.
var comboScale = [...]float64{261.6, 293.6, 329.6, 349.2, 392.0, 440.0, 493.9, 523.2}

// Variant limits keep the cache bounded.
const (
	maxRowVariant   = 15
	maxComboVariant = 32
)

// soundKey identifies a cached sound. Variant carries the brick row or the
// combo count for the pitched events.
type soundKey struct {
	event   core.SoundEvent
	variant int
}

// keyFor maps a request to its cache key.
func keyFor(ev core.SoundEvent, p core.SoundParams) soundKey {
	switch ev {
	case core.SoundBrickHit:
		return soundKey{ev, min(max(p.Row, 0), maxRowVariant)}
	case core.SoundCombo:
		return soundKey{ev, min(max(p.Combo, 1), maxComboVariant)}
	default:
		return soundKey{event: ev}
	}
}

// comboFreq returns the pitch of a combo step.
func comboFreq(combo int) float64 {
	combo = max(combo, 1)
	note := comboScale[(combo-1)%len(comboScale)]
	octave := (combo-1)/len(comboScale) + 1
	return note * float64(octave)
}

// arpeggio plays freqs one after another, step apart.
func arpeggio(step, dur time.Duration, wave WaveType, gain float64, freqs ...float64) []tone {
	out := make([]tone, len(freqs))
	for i, f := range freqs {
		out[i] = tone{at: time.Duration(i) * step, freq: f, dur: dur, wave: wave, gain: gain}
	}
	return out
}

// recipe returns the tones of a sound.
func recipe(k soundKey) []tone {
	switch k.event {
	case core.SoundStart:
		return []tone{
			{0, 440, 100 * ms, WaveSine, 0.5},
			{100 * ms, 554, 100 * ms, WaveSine, 0.5},
			{200 * ms, 659, 150 * ms, WaveSine, 0.6},
		}
	case core.SoundPaddleHit:
		return []tone{{0, 220, 100 * ms, WaveSine, 0.8}}
	case core.SoundBrickHit:
		f := 400 + float64(k.variant)*50
		return []tone{
			{0, f, 100 * ms, WaveSquare, 0.6},
			{50 * ms, f * 1.5, 50 * ms, WaveSine, 0.3},
		}
	case core.SoundCombo:
		f := comboFreq(k.variant)
		return []tone{
			{0, f, 100 * ms, WaveTriangle, 0.7},
			{20 * ms, f * 1.5, 100 * ms, WaveSquare, 0.3},
		}
	case core.SoundWallHit:
		return []tone{{0, 150, 50 * ms, WaveTriangle, 0.4}}
	case core.SoundExplosion:
		return []tone{
			{0, 100, 100 * ms, WaveSaw, 0.8},
			{50 * ms, 80, 150 * ms, WaveSquare, 0.6},
			{150 * ms, 50, 200 * ms, WaveSaw, 0.5},
			{0, 0, 250 * ms, WaveNoise, 0.3},
		}
	case core.SoundPowerUp:
		return []tone{
			{0, 880, 80 * ms, WaveSine, 0.5},
			{80 * ms, 1100, 80 * ms, WaveSine, 0.5},
			{160 * ms, 1320, 120 * ms, WaveSine, 0.6},
		}
	case core.SoundLoseLife:
		return []tone{
			{0, 200, 150 * ms, WaveSaw, 0.5},
			{150 * ms, 150, 150 * ms, WaveSaw, 0.4},
			{300 * ms, 100, 200 * ms, WaveSaw, 0.3},
		}
	case core.SoundGameOver:
		return arpeggio(200*ms, 300*ms, WaveSine, 0.5, 392, 330, 294, 262)
	case core.SoundLevelComplete:
		return arpeggio(100*ms, 150*ms, WaveSine, 0.6, 523, 659, 784, 1047)
	case core.SoundWin:
		return append(arpeggio(120*ms, 200*ms, WaveSquare, 0.4, 523, 659, 784, 1047, 1319),
			tone{600 * ms, 1568, 500 * ms, WaveSine, 0.5})
	case core.SoundBossHit:
		return []tone{
			{0, 120, 120 * ms, WaveSquare, 0.7},
			{40 * ms, 90, 160 * ms, WaveSaw, 0.5},
		}
	case core.SoundEliteCharge:
		return arpeggio(60*ms, 80*ms, WaveSaw, 0.35, 300, 400, 500, 600)
	case core.SoundEliteFireball:
		return []tone{
			{0, 0, 200 * ms, WaveNoise, 0.4},
			{0, 180, 200 * ms, WaveSaw, 0.4},
		}
	case core.SoundEliteRumble:
		return []tone{
			{0, 60, 300 * ms, WaveSquare, 0.5},
			{0, 0, 300 * ms, WaveNoise, 0.2},
		}
	case core.SoundLightning:
		return []tone{
			{0, 800, 50 * ms, WaveSaw, 0.7},
			{40 * ms, 1200, 80 * ms, WaveSquare, 0.5},
			{80 * ms, 600, 100 * ms, WaveSaw, 0.6},
			{140 * ms, 1000, 60 * ms, WaveSquare, 0.4},
		}
	case core.SoundFreeze:
		return []tone{
			{0, 1500, 100 * ms, WaveSine, 0.5},
			{50 * ms, 1800, 80 * ms, WaveTriangle, 0.4},
			{100 * ms, 2000, 120 * ms, WaveSine, 0.3},
		}
	case core.SoundTeleport:
		return []tone{
			{0, 300, 100 * ms, WaveSine, 0.5},
			{100 * ms, 600, 150 * ms, WaveSine, 0.6},
			{200 * ms, 1200, 100 * ms, WaveSine, 0.4},
			{300 * ms, 400, 100 * ms, WaveTriangle, 0.3},
		}
	case core.SoundShield:
		return arpeggio(100*ms, 150*ms, WaveSine, 0.45, 400, 500, 600)
	case core.SoundCoin:
		return []tone{
			{0, 1200, 80 * ms, WaveSine, 0.6},
			{60 * ms, 1500, 100 * ms, WaveSine, 0.5},
			{120 * ms, 1800, 120 * ms, WaveSine, 0.4},
		}
	case core.SoundBip:
		return []tone{{0, 880, 80 * ms, WaveSquare, 0.4}}
	default:
		return nil
	}
}

// generateSound renders a sound at unity master gain.
func generateSound(k soundKey, rate beep.SampleRate) floatBuffer {
	tones := recipe(k)
	if len(tones) == 0 {
		return nil
	}
	return render(synth(rate, tones...))
}
