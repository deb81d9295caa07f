package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glowbreak/internal/config"
	"github.com/vovakirdan/glowbreak/internal/core"
	"github.com/vovakirdan/glowbreak/internal/games/glowbreak"
	"github.com/vovakirdan/glowbreak/internal/leaderboard"
	"github.com/vovakirdan/glowbreak/internal/particles"
	"github.com/vovakirdan/glowbreak/internal/registry"
	"github.com/vovakirdan/glowbreak/internal/storage"
)

// submitTimeout bounds a daily leaderboard submission.
const submitTimeout = 5 * time.Second

// Deps are the long-lived collaborators shared by every game a process or
// SSH session starts. Nil fields run the game without that feature.
type Deps struct {
	Store      *storage.Store
	Board      *leaderboard.Service
	Audio      core.AudioSink
	Config     config.Config
	Preset     config.Preset // Applied on top of Config when a game starts
	Logger     *log.Logger
	PlayerName string
}

// logger returns the configured logger or a discarding one.
func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return core.Services{}.WithDefaults().Log
	}
	return d.Logger
}

// gameConfig returns the tunables with the difficulty preset applied.
func (d Deps) gameConfig() config.Config {
	cfg := d.Config
	if cfg.Field.Width <= 0 {
		cfg = config.Default()
	}
	config.ApplyPreset(&cfg, d.Preset)
	return cfg
}

// muter is implemented by audio sinks that can be silenced at runtime.
type muter interface {
	ToggleMute() bool
}

// fieldMapper is implemented by games that draw a scaled playfield, so the
// particle overlay can use the same mapping.
type fieldMapper interface {
	FieldViewport(dst *core.Screen) core.Viewport
}

// seeded is implemented by games whose layout comes from a daily seed.
type seeded interface {
	DailySeed() int64
}

// submitResultMsg reports the outcome of a leaderboard submission.
type submitResultMsg struct {
	entry leaderboard.Entry
	err   error
}

// Model is the Bubble Tea model for running a glowbreak session.
type Model struct {
	game       registry.Game
	deps       Deps
	log        *log.Logger
	screen     *core.Screen
	config     core.RuntimeConfig
	particles  *particles.Pool
	toasts     *Toasts
	keyMapper  *KeyMapper
	hold       *holdTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	loop       int64
	lastTick   time.Time
	exitOnBack bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a Bubble Tea model for the given game mode.
func NewModel(gameID string, deps Deps, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	pool := particles.NewPool(particles.DefaultSize, cfg.Seed)
	toasts := NewToasts()
	logger := deps.logger()

	svc := core.Services{
		Audio:     deps.Audio,
		Particles: pool,
		Notify:    toasts,
		Log:       logger,
	}
	if deps.Store != nil {
		svc.Store = deps.Store
	}

	game, err := registry.Create(gameID, registry.Env{Config: deps.gameConfig(), Services: svc.WithDefaults()})
	if err != nil {
		return Model{}, err
	}

	return Model{
		game:       game,
		deps:       deps,
		log:        logger.WithPrefix("tui"),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		particles:  pool,
		toasts:     toasts,
		keyMapper:  NewKeyMapper(),
		hold:       &holdTracker{},
		inputFrame: core.NewInputFrame(),
		loop:       time.Now().UnixNano(),
	}, nil
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield scales with the viewport, so a resize keeps the run
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)

	case submitResultMsg:
		m.handleSubmitResult(msg)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.leave()
		return m, tea.Quit

	case action == core.ActionLeft || action == core.ActionRight:
		m.hold.press(action, time.Now())

	case action == core.ActionMute:
		m.toggleMute()

	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			m.leave()
			if m.exitOnBack {
				return m, tea.Quit
			}
		}

	case action == core.ActionPause:
		m.hold.release()
		m.inputFrame.Set(action)

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// toggleMute flips the sound and tells the player.
func (m Model) toggleMute() {
	mu, ok := m.deps.Audio.(muter)
	if !ok {
		m.toasts.Notify("Sound unavailable", core.SeverityWarning)
		return
	}
	if mu.ToggleMute() {
		m.toasts.Notify("Sound on", core.SeverityInfo)
	} else {
		m.toasts.Notify("Sound off", core.SeverityInfo)
	}
}

// leave silences the music when the game is left.
func (m Model) leave() {
	if m.deps.Audio != nil {
		m.deps.Audio.StopTheme()
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.config.FrameInterval()
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.hold.apply(&m.inputFrame, now)

	wasOver := m.gameState.GameOver
	var result core.StepResult
	if vs, ok := m.game.(registry.VariableStepper); ok {
		result = vs.StepElapsed(m.inputFrame, elapsed)
	} else {
		result = m.game.Step(m.inputFrame)
	}
	m.gameState = result.State

	// A restart from the game over screen starts a fresh run
	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.particles.Reset()
	}

	if !m.gameState.Paused {
		m.particles.Update(float64(elapsed) / float64(core.DefaultConfig().FrameInterval()))
	}
	m.toasts.Prune()

	var cmds []tea.Cmd
	if m.gameState.GameOver && !m.scoreSaved {
		m.scoreSaved = true
		if cmd := m.recordScore(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	cmds = append(cmds, tickCmd(m.config.TickRate, m.loop))
	return m, tea.Batch(cmds...)
}

// recordScore saves the final score locally and returns the daily
// leaderboard submission, if one applies.
func (m Model) recordScore() tea.Cmd {
	score := m.gameState.Score
	if score <= 0 {
		return nil
	}

	if m.deps.Store != nil {
		if _, err := m.deps.Store.SaveScore(m.game.ID(), score); err != nil {
			m.log.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
	}

	g, ok := m.game.(seeded)
	if !ok || m.deps.Board == nil {
		return nil
	}
	board := m.deps.Board
	name := m.deps.PlayerName
	combo := m.gameState.MaxCombo
	seed := glowbreak.SeedString(g.DailySeed())

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		entry, err := board.Submit(ctx, name, float64(score), combo, seed)
		return submitResultMsg{entry: entry, err: err}
	}
}

func (m Model) handleSubmitResult(msg submitResultMsg) {
	switch {
	case errors.Is(msg.err, leaderboard.ErrOffline):
		m.log.Warn("leaderboard submission failed", "error", msg.err)
		m.toasts.Notify("Leaderboard offline", core.SeverityWarning)
	case msg.err != nil:
		m.log.Error("leaderboard submission failed", "error", msg.err)
		m.toasts.Notify("Score not submitted", core.SeverityError)
	default:
		m.toasts.Notify(fmt.Sprintf("Submitted as %s", msg.entry.Name), core.SeveritySuccess)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".glowbreak", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}
	m.toasts.Notify("Screenshot saved", core.SeverityInfo)
}

// draw renders the game, the particle overlay and the toasts.
func (m Model) draw() {
	m.game.Render(m.screen)
	if fm, ok := m.game.(fieldMapper); ok {
		m.particles.Render(m.screen, fm.FieldViewport(m.screen))
	}
	m.toasts.Draw(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game mode. Back on the
// game over or pause screen exits the program.
func Run(gameID string, deps Deps, cfg core.RuntimeConfig) error {
	model, err := NewModel(gameID, deps, cfg)
	if err != nil {
		return err
	}
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
