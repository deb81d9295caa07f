package audio

import (
	"encoding/binary"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/glowbreak/internal/config"
	"github.com/vovakirdan/glowbreak/internal/core"
)

// syncWriter collects mixer output
type syncWriter struct {
	mu sync.Mutex
	n  int
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.n += len(p)
	return len(p), nil
}

func (w *syncWriter) written() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.n
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func testAudioConfig() config.AudioConfig {
	return config.AudioConfig{Enabled: true, MasterVolume: 0.5, MusicVolume: 0.3, SampleRate: 8000}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestEnginePlays(t *testing.T) {
	w := &syncWriter{}
	e := NewEngine(testAudioConfig(), nil)
	if err := e.StartWriter(w); err != nil {
		t.Fatalf("StartWriter() error = %v", err)
	}
	defer e.Stop()

	if !e.Enabled() {
		t.Fatal("engine should be enabled")
	}
	e.Play(core.SoundPaddleHit, core.SoundParams{})
	e.Play(core.SoundBrickHit, core.SoundParams{Row: 4})

	waitFor(t, "two played sounds", func() bool {
		played, _ := e.Stats()
		return played == 2
	})
	waitFor(t, "output", func() bool { return w.written() > 0 })
	if w.written()%bytesPerFrame != 0 {
		t.Errorf("written = %d, expected whole frames", w.written())
	}
}

func TestEngineDoubleStart(t *testing.T) {
	e := NewEngine(testAudioConfig(), nil)
	if err := e.StartWriter(&syncWriter{}); err != nil {
		t.Fatalf("StartWriter() error = %v", err)
	}
	defer e.Stop()
	if err := e.StartWriter(&syncWriter{}); !errors.Is(err, ErrRunning) {
		t.Errorf("second StartWriter() error = %v, expected %v", err, ErrRunning)
	}
}

func TestEngineMuted(t *testing.T) {
	cfg := testAudioConfig()
	cfg.Enabled = false
	e := NewEngine(cfg, nil)
	if err := e.StartWriter(&syncWriter{}); err != nil {
		t.Fatalf("StartWriter() error = %v", err)
	}
	defer e.Stop()

	if !e.Muted() || e.Enabled() {
		t.Fatal("disabled config should start muted")
	}
	e.Play(core.SoundCoin, core.SoundParams{})
	time.Sleep(30 * time.Millisecond)
	if played, _ := e.Stats(); played != 0 {
		t.Errorf("played = %d while muted", played)
	}

	if !e.ToggleMute() {
		t.Error("ToggleMute() should report sound on")
	}
	e.Play(core.SoundCoin, core.SoundParams{})
	waitFor(t, "played sound", func() bool {
		played, _ := e.Stats()
		return played == 1
	})
}

func TestEngineTheme(t *testing.T) {
	e := NewEngine(testAudioConfig(), nil)
	if err := e.StartWriter(&syncWriter{}); err != nil {
		t.Fatalf("StartWriter() error = %v", err)
	}
	defer e.Stop()

	e.StartTheme(core.ThemeBoss)
	e.StartTheme(core.ThemeBoss)
	if got := e.Theme(); got != core.ThemeBoss {
		t.Errorf("Theme() = %q, expected boss", got)
	}
	e.ToggleMute()
	if got := e.Theme(); got != core.ThemeBoss {
		t.Errorf("Theme() = %q after mute, expected boss to resume later", got)
	}
	e.StopTheme()
	if got := e.Theme(); got != "" {
		t.Errorf("Theme() = %q, expected none", got)
	}
}

func TestEngineSilentWithoutStart(t *testing.T) {
	e := NewEngine(testAudioConfig(), nil)
	e.Play(core.SoundStart, core.SoundParams{})
	e.StartTheme(core.ThemeNormal)
	e.StopTheme()
	e.Stop()
	if e.Enabled() {
		t.Error("engine that never started should not be enabled")
	}
	if e.Backend() != nil {
		t.Error("Backend() should be nil")
	}
}

func TestEngineStartWithoutBackend(t *testing.T) {
	stubLookPath(t)
	e := NewEngine(testAudioConfig(), nil)
	if err := e.Start(); err != nil {
		t.Fatalf("Start() error = %v, expected silent mode", err)
	}
	defer e.Stop()
	if e.Enabled() {
		t.Error("silent engine should not be enabled")
	}
	e.Play(core.SoundStart, core.SoundParams{})
}

func TestEngineOutputFailure(t *testing.T) {
	e := NewEngine(testAudioConfig(), nil)
	if err := e.StartWriter(failWriter{}); err != nil {
		t.Fatalf("StartWriter() error = %v", err)
	}
	defer e.Stop()
	waitFor(t, "silent mode", func() bool { return !e.Enabled() })
}

func TestFloatToBytes(t *testing.T) {
	in := []float64{0, 0.5, 1, 5, -1}
	out := make([]byte, len(in)*bytesPerFrame)
	floatToBytes(in, out)

	sample := func(i int) (l, r int16) {
		idx := i * bytesPerFrame
		return int16(binary.LittleEndian.Uint16(out[idx:])), int16(binary.LittleEndian.Uint16(out[idx+2:]))
	}

	for i := range in {
		if l, r := sample(i); l != r {
			t.Errorf("sample %d: L=%d R=%d, expected equal channels", i, l, r)
		}
	}
	if l, _ := sample(0); l != 0 {
		t.Errorf("silence = %d", l)
	}
	if l, _ := sample(1); l != 16383 {
		t.Errorf("0.5 = %d, expected linear below the knee", l)
	}
	one, _ := sample(2)
	loud, _ := sample(3)
	if one >= 32767 || loud >= 32767 || loud <= one {
		t.Errorf("limited values %d, %d should stay under full scale and keep order", one, loud)
	}
	if neg, _ := sample(4); neg != -one {
		t.Errorf("-1 = %d, expected %d", neg, -one)
	}
}
