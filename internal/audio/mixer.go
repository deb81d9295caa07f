package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/glowbreak/internal/core"
)

// Mixer timing
const (
	bufferDuration = 10 * time.Millisecond
	queueSize      = 32
	drainBatch     = 4
)

// activeSound tracks a playing sound instance
type activeSound struct {
	buffer floatBuffer
	pos    int
	volume float64
}

// musicTrack is the looping theme, nil buffer means no music
type musicTrack struct {
	buffer floatBuffer
	pos    int
	volume float64
}

type playRequest struct {
	key    soundKey
	volume float64
}

type themeRequest struct {
	theme  core.Theme // Empty stops the music
	volume float64
}

// Mixer sums active sounds and the music loop into an s16le stereo stream.
type Mixer struct {
	output  io.Writer
	cache   *soundCache
	samples int // Samples per tick

	playQueue  chan playRequest
	themeQueue chan themeRequest
	stopChan   chan struct{}
	doneChan   chan struct{}
	stopped    atomic.Bool

	// Accessed only by mix goroutine
	active []activeSound
	music  musicTrack

	// Stats
	statsMu sync.Mutex
	played  uint64
	dropped uint64

	// Error signaling
	errChan chan error
}

// NewMixer creates a mixer writing to out
func NewMixer(out io.Writer, cache *soundCache) *Mixer {
	return &Mixer{
		output:     out,
		cache:      cache,
		samples:    max(cache.rate.N(bufferDuration), 1),
		playQueue:  make(chan playRequest, queueSize),
		themeQueue: make(chan themeRequest, 1),
		stopChan:   make(chan struct{}),
		doneChan:   make(chan struct{}),
		active:     make([]activeSound, 0, 8),
		errChan:    make(chan error, 1),
	}
}

// Start begins the mixing loop
func (m *Mixer) Start() {
	go m.loop()
}

// Stop signals the mixer to halt and waits for the loop to exit
func (m *Mixer) Stop() {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.stopChan)
	}
	<-m.doneChan
}

// Play queues a sound at the given volume. A full queue drops the sound.
func (m *Mixer) Play(k soundKey, volume float64) {
	if m.stopped.Load() {
		return
	}

	select {
	case m.playQueue <- playRequest{key: k, volume: volume}:
	default:
		m.statsMu.Lock()
		m.dropped++
		m.statsMu.Unlock()
	}
}

// SetTheme switches the music loop. Only the latest request is kept.
func (m *Mixer) SetTheme(t core.Theme, volume float64) {
	if m.stopped.Load() {
		return
	}
	req := themeRequest{theme: t, volume: volume}
	for {
		select {
		case m.themeQueue <- req:
			return
		default:
		}
		select {
		case <-m.themeQueue:
		default:
		}
	}
}

// Errors returns channel for pipe errors
func (m *Mixer) Errors() <-chan error {
	return m.errChan
}

// loop is the main mixing goroutine
func (m *Mixer) loop() {
	defer close(m.doneChan)

	ticker := time.NewTicker(bufferDuration)
	defer ticker.Stop()

	mixBuf := make([]float64, m.samples)
	outBytes := make([]byte, m.samples*bytesPerFrame)

	for {
		select {
		case <-m.stopChan:
			return

		case req := <-m.playQueue:
			m.start(req)
			m.drainQueue(drainBatch)

		case req := <-m.themeQueue:
			m.music = musicTrack{volume: req.volume}
			if req.theme != "" {
				m.music.buffer = m.cache.theme(req.theme)
			}

		case <-ticker.C:
			if len(m.active) == 0 && len(m.music.buffer) == 0 {
				// Write silence to keep pipe alive
				clear(outBytes)
			} else {
				clear(mixBuf)
				m.active = m.mixActive(mixBuf)
				m.mixMusic(mixBuf)
				floatToBytes(mixBuf, outBytes)
			}

			if _, err := m.output.Write(outBytes); err != nil {
				select {
				case m.errChan <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
				default:
				}
				return
			}
		}
	}
}

func (m *Mixer) start(req playRequest) {
	buf := m.cache.get(req.key)
	if len(buf) == 0 {
		return
	}
	m.active = append(m.active, activeSound{buffer: buf, volume: req.volume})
	m.statsMu.Lock()
	m.played++
	m.statsMu.Unlock()
}

// drainQueue processes up to n additional queued requests
func (m *Mixer) drainQueue(n int) {
	for range n {
		select {
		case req := <-m.playQueue:
			m.start(req)
		default:
			return
		}
	}
}

// mixActive mixes all active sounds into buf, returns remaining sounds
func (m *Mixer) mixActive(buf []float64) []activeSound {
	remaining := m.active[:0]

	for i := range m.active {
		s := &m.active[i]
		for j := 0; j < len(buf) && s.pos < len(s.buffer); j++ {
			buf[j] += s.buffer[s.pos] * s.volume
			s.pos++
		}
		if s.pos < len(s.buffer) {
			remaining = append(remaining, *s)
		}
	}

	return remaining
}

// mixMusic adds the theme loop into buf, wrapping at the end of the loop
func (m *Mixer) mixMusic(buf []float64) {
	t := &m.music
	if len(t.buffer) == 0 {
		return
	}
	for j := range buf {
		buf[j] += t.buffer[t.pos] * t.volume
		t.pos++
		if t.pos >= len(t.buffer) {
			t.pos = 0
		}
	}
}

// floatToBytes converts float64 mono to interleaved stereo int16 LE bytes
// Applies soft limiting before hard clip
func floatToBytes(in []float64, out []byte) {
	for i, v := range in {
		if v > 0.8 {
			v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
		} else if v < -0.8 {
			v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
		}

		v = min(max(v, -1), 1)

		i16 := int16(v * 32767)
		idx := i * bytesPerFrame
		binary.LittleEndian.PutUint16(out[idx:], uint16(i16))   // L
		binary.LittleEndian.PutUint16(out[idx+2:], uint16(i16)) // R
	}
}

// Stats returns played and dropped counts
func (m *Mixer) Stats() (played, dropped uint64) {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	return m.played, m.dropped
}
