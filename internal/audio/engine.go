// Package audio synthesizes glowbreak's sound effects and music themes and
// streams them to a system playback tool through a pipe.
package audio

import (
	"io"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/glowbreak/internal/config"
	"github.com/vovakirdan/glowbreak/internal/core"
)

// Engine implements core.AudioSink on top of a Mixer. When no backend is
// available it runs in silent mode and drops every request.
type Engine struct {
	cfg    config.AudioConfig
	cache  *soundCache
	mixer  *Mixer
	logger *log.Logger

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu    sync.Mutex // Protects theme
	theme core.Theme

	wg sync.WaitGroup
}

var _ core.AudioSink = (*Engine)(nil)

// NewEngine creates an engine. Start must be called before anything plays.
func NewEngine(cfg config.AudioConfig, logger *log.Logger) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = config.Default().Audio.SampleRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Engine{
		cfg:    cfg,
		cache:  newSoundCache(beep.SampleRate(cfg.SampleRate)),
		logger: logger.WithPrefix("audio"),
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// Start launches the playback backend and the mixer. A missing backend is not
// an error; the engine falls back to silent mode.
func (e *Engine) Start() error {
	if e.running.Load() {
		return ErrRunning
	}

	backend, err := DetectBackend(e.cfg.SampleRate)
	if err != nil {
		e.logger.Info("running without sound", "err", err)
		e.goSilent()
		return nil
	}

	cmd := exec.Command(backend.Path, backend.Args...) //#nosec G204 -- fixed backend list
	stdin, err := cmd.StdinPipe()
	if err != nil {
		e.logger.Warn("backend pipe failed", "backend", backend.Name, "err", err)
		e.goSilent()
		return nil
	}
	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		e.logger.Warn("backend start failed", "backend", backend.Name, "err", err)
		e.goSilent()
		return nil
	}

	e.backend = backend
	e.cmd = cmd
	e.stdin = stdin

	e.wg.Add(1)
	go e.monitorProcess()

	e.logger.Debug("backend started", "backend", backend.Name, "rate", e.cfg.SampleRate)
	return e.StartWriter(stdin)
}

// StartWriter runs the mixer against an arbitrary sink of s16le stereo
// samples.
func (e *Engine) StartWriter(w io.Writer) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	e.cache.preload()

	e.mixer = NewMixer(w, e.cache)
	e.mixer.Start()

	e.wg.Add(1)
	go e.monitorMixer(e.mixer)
	return nil
}

func (e *Engine) goSilent() {
	e.silentMode.Store(true)
	e.running.Store(true)
}

// monitorProcess watches for subprocess exit
func (e *Engine) monitorProcess() {
	defer e.wg.Done()

	err := e.cmd.Wait()
	if err != nil && e.running.Load() && !e.silentMode.Load() {
		e.logger.Warn("backend exited", "err", err)
		e.silentMode.Store(true)
	}
}

// monitorMixer watches for pipe errors
func (e *Engine) monitorMixer(m *Mixer) {
	defer e.wg.Done()

	select {
	case err := <-m.Errors():
		e.logger.Warn("output failed", "err", err)
		e.silentMode.Store(true)
	case <-m.doneChan:
	}
}

// Stop terminates the engine
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}

	if e.mixer != nil {
		e.mixer.Stop()
	}
	if e.stdin != nil {
		_ = e.stdin.Close()
	}
	if e.cmd != nil && e.cmd.Process != nil {
		_ = e.cmd.Process.Kill()
	}

	e.wg.Wait()
}

func (e *Engine) active() bool {
	return e.running.Load() && !e.silentMode.Load() && e.mixer != nil
}

// Play queues a one-shot sound.
func (e *Engine) Play(ev core.SoundEvent, p core.SoundParams) {
	if !e.active() || e.muted.Load() {
		return
	}
	e.mixer.Play(keyFor(ev, p), e.cfg.MasterVolume)
}

// StartTheme loops a music theme. Restarting the playing theme is a no-op.
func (e *Engine) StartTheme(t core.Theme) {
	e.mu.Lock()
	if e.theme == t {
		e.mu.Unlock()
		return
	}
	e.theme = t
	e.mu.Unlock()

	if !e.active() || e.muted.Load() {
		return
	}
	e.mixer.SetTheme(t, e.cfg.MusicVolume)
}

// StopTheme silences the music.
func (e *Engine) StopTheme() {
	e.mu.Lock()
	e.theme = ""
	e.mu.Unlock()

	if e.active() {
		e.mixer.SetTheme("", 0)
	}
}

// ToggleMute flips the mute state and reports whether sound is now on.
// Music stops while muted and resumes with the last theme.
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)

	if e.active() {
		e.mu.Lock()
		t := e.theme
		e.mu.Unlock()
		if muted || t == "" {
			e.mixer.SetTheme("", 0)
		} else {
			e.mixer.SetTheme(t, e.cfg.MusicVolume)
		}
	}
	return !muted
}

// Muted reports the mute state.
func (e *Engine) Muted() bool {
	return e.muted.Load()
}

// Enabled returns true if running, unmuted and attached to a backend.
func (e *Engine) Enabled() bool {
	return e.active() && !e.muted.Load()
}

// Theme returns the requested music theme.
func (e *Engine) Theme() core.Theme {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.theme
}

// Backend returns the detected backend, nil in silent mode.
func (e *Engine) Backend() *BackendConfig {
	return e.backend
}

// Stats returns played and dropped counts
func (e *Engine) Stats() (played, dropped uint64) {
	if e.mixer == nil {
		return 0, 0
	}
	return e.mixer.Stats()
}
