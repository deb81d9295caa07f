package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/glowbreak/internal/config"
	"github.com/vovakirdan/glowbreak/internal/core"
	"github.com/vovakirdan/glowbreak/internal/games/glowbreak"
	"github.com/vovakirdan/glowbreak/internal/leaderboard"
	"github.com/vovakirdan/glowbreak/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.glowbreak/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game holds the gameplay tunables and Preset the difficulty every
	// session starts with.
	Game   config.Config
	Preset config.Preset

	// Logger receives server and session logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.glowbreak/glowbreak.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.Default(),
		Preset:      config.PresetNormal,
	}
}

// SSHServer wraps a Wish SSH server for glowbreak.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	board  *leaderboard.Service
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "glowbreak-ssh",
		})
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	// Sessions share one leaderboard so its cache serves every player
	var scores leaderboard.Store
	if store != nil {
		scores = store
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		board:  leaderboard.New(scores, cfg.Game.Leaderboard, logger),
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".glowbreak", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Create runtime config from PTY size
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	// Remote sessions have no sound; the store and leaderboard are shared
	deps := Deps{
		Store:      s.store,
		Board:      s.board,
		Config:     s.config.Game,
		Preset:     s.config.Preset,
		Logger:     s.logger.With("user", sshSession.User()),
		PlayerName: sshSession.User(),
	}

	model := NewSessionModel(deps, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionStage is the screen a session is showing.
type sessionStage int

const (
	stageMenu sessionStage = iota
	stageMode
	stageGame
	stageScores
	stageStats
)

// SessionModel manages the full session flow: menu -> mode -> game -> menu,
// plus the scoreboard and stats screens. It is the top-level model used for
// SSH sessions and the local menu command.
type SessionModel struct {
	deps      Deps
	config    core.RuntimeConfig
	stage     sessionStage
	menu      MenuModel
	mode      ModeModel
	scores    ScoreboardModel
	stats     StatsModel
	gameModel *Model
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		deps:   deps,
		config: cfg,
		menu:   NewMenuModel(cfg, menuSubtitle(cfg)),
	}
}

// dailySeed returns the leaderboard key the session plays on.
func dailySeed(cfg core.RuntimeConfig) string {
	seed := cfg.DailySeed
	if seed == 0 {
		seed = glowbreak.DailySeed(time.Now())
	}
	return glowbreak.SeedString(seed)
}

func menuSubtitle(cfg core.RuntimeConfig) string {
	return "Daily seed " + dailySeed(cfg)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.stage {
	case stageMode:
		return m.updateMode(msg)
	case stageGame:
		return m.updateGame(msg)
	case stageScores:
		return m.updateScores(msg)
	case stageStats:
		return m.updateStats(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu returns to a fresh main menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.stage = stageMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.config, menuSubtitle(m.config))
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// updateMenu handles updates when in menu mode. Sub-screens end with
// tea.Quit when run on their own; the session swallows it and switches.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		return m.quit()
	case ChoicePlay:
		m.stage = stageMode
		m.mode = NewModeModel(m.config.ScreenW, m.config.ScreenH, m.deps.Preset)
		return m, m.mode.Init()
	case ChoiceScores, ChoiceDaily:
		m.stage = stageScores
		m.scores = NewScoreboardModel(m.deps.Store, m.deps.Board, dailySeed(m.config),
			m.config.ScreenW, m.config.ScreenH, m.menu.Choice() == ChoiceDaily)
		return m, m.scores.Init()
	case ChoiceStats:
		m.stage = stageStats
		m.stats = NewStatsModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH)
		return m, m.stats.Init()
	}

	return m, cmd
}

// updateMode handles the mode selector.
func (m SessionModel) updateMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMode, cmd := m.mode.Update(msg)
	if modeModel, ok := newMode.(ModeModel); ok {
		m.mode = modeModel
	}

	switch {
	case m.mode.IsQuitting():
		return m.quit()
	case m.mode.WantsBack():
		return m.toMenu()
	}

	sel := m.mode.Selected()
	if sel == nil {
		return m, cmd
	}

	deps := m.deps
	deps.Preset = sel.Preset
	m.deps.Preset = sel.Preset // Remembered for the next game
	gameModel, err := NewModel(sel.GameID, deps, m.config)
	if err != nil {
		// Shouldn't happen since the selector only offers registered modes
		deps.logger().Error("cannot start game", "game", sel.GameID, "error", err)
		return m.toMenu()
	}
	m.gameModel = &gameModel
	m.stage = stageGame
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	// Check if user quit entirely
	if m.gameModel.IsQuitting() {
		return m.quit()
	}

	// Check if user left the game (back to menu)
	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}
	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.stats.Update(msg)
	if sm, ok := newModel.(StatsModel); ok {
		m.stats = sm
	}
	switch {
	case m.stats.IsQuitting():
		return m.quit()
	case m.stats.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stageMode:
		return m.mode.View()
	case stageGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case stageScores:
		return m.scores.View()
	case stageStats:
		return m.stats.View()
	}
	return m.menu.View()
}

// RunSession runs the full menu-driven session in the local terminal.
func RunSession(deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewSessionModel(deps, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
