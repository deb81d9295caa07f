package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/glowbreak/internal/audio"
	"github.com/vovakirdan/glowbreak/internal/config"
	"github.com/vovakirdan/glowbreak/internal/core"
	"github.com/vovakirdan/glowbreak/internal/leaderboard"
	"github.com/vovakirdan/glowbreak/internal/platform/tui"
	"github.com/vovakirdan/glowbreak/internal/storage"
)

// app bundles what every command sets up from the global flags.
type app struct {
	cfg     config.Config
	preset  config.Preset
	logger  *log.Logger
	logFile io.Closer
	store   *storage.Store
	board   *leaderboard.Service
	audio   *audio.Engine
}

// appOptions selects the optional parts of the setup.
type appOptions struct {
	logToStderr bool // Servers and print commands log to stderr, TUIs to a file
	sound       bool
	noStore     bool // The caller opens its own store
}

// openApp loads the configuration, opens the log, the store and the
// leaderboard, and starts the audio engine when asked. A store that fails to
// open is reported and the app continues without persistence.
func openApp(opts appOptions) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	a := &app{cfg: cfg, preset: preset}

	var out io.Writer = os.Stderr
	if !opts.logToStderr {
		out = io.Discard
		if f, fileErr := openLogFile(flagLogFile); fileErr == nil {
			out = f
			a.logFile = f
		}
	}
	a.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "glowbreak",
		Level:           level,
	})

	if !opts.noStore {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			a.logger.Warn("running without persistence", "error", err)
		} else {
			a.store = store
		}
	}

	var scores leaderboard.Store
	if a.store != nil {
		scores = a.store
	}
	a.board = leaderboard.New(scores, cfg.Leaderboard, a.logger)

	if opts.sound {
		audioCfg := cfg.Audio
		if flagNoSound {
			audioCfg.Enabled = false
		}
		a.audio = audio.NewEngine(audioCfg, a.logger)
		if audioCfg.Enabled {
			if err := a.audio.Start(); err != nil {
				a.logger.Warn("audio start failed", "error", err)
			}
		}
	}

	return a, nil
}

// close releases everything openApp acquired.
func (a *app) close() {
	if a.audio != nil {
		a.audio.Stop()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing store", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// deps returns the collaborators a terminal session runs with.
func (a *app) deps() tui.Deps {
	d := tui.Deps{
		Store:      a.store,
		Board:      a.board,
		Config:     a.cfg,
		Preset:     a.preset,
		Logger:     a.logger,
		PlayerName: playerName(),
	}
	if a.audio != nil {
		d.Audio = a.audio
	}
	return d
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		DailySeed: flagDailySeed,
	}
}

// playerName returns the leaderboard name from --name or the login name.
func playerName() string {
	if flagName != "" {
		return flagName
	}
	return os.Getenv("USER")
}

// openLogFile opens the log file for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
