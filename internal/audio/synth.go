package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a streamer of one wave shape.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq*1000) + 1)), //#nosec G404 -- audio noise
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Envelope shape
const (
	attackTime = 2 * time.Millisecond
	decayFloor = 0.01 // Gain reached at the end of a tone
)

// envelope applies a short linear attack and an exponential decay down to
// decayFloor over the whole tone.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

// NewEnvelope shapes s over duration.
func NewEnvelope(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attackTime),
		total:    max(rate.N(duration), 1),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := math.Pow(decayFloor, float64(e.position)/float64(e.total))
		if e.position < e.attack && e.attack > 0 {
			vol *= float64(e.position) / float64(e.attack)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain. math.Log2(0) is -Inf, so a zero gain
// is expressed as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one enveloped note.
type tone struct {
	at   time.Duration // Offset from the start of the sound
	freq float64
	dur  time.Duration
	wave WaveType
	gain float64
}

// synth mixes tones into one streamer.
func synth(rate beep.SampleRate, tones ...tone) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		var s beep.Streamer = NewOscillator(t.freq, t.dur, t.wave, rate)
		s = newVolume(NewEnvelope(s, t.dur, rate), t.gain)
		if n := rate.N(t.at); n > 0 {
			s = beep.Seq(beep.Silence(n), s)
		}
		parts = append(parts, s)
	}
	return beep.Mix(parts...)
}

// maxRenderSamples caps a rendered buffer (about 20s at 48kHz).
const maxRenderSamples = 1 << 20

// render drains a streamer into a mono buffer.
func render(s beep.Streamer) floatBuffer {
	var out floatBuffer
	chunk := make([][2]float64, 512)
	for len(out) < maxRenderSamples {
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			out = append(out, chunk[i][0])
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}
