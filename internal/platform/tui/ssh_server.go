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
	"github.com/google/uuid"

	"github.com/vovakirdan/memylon/internal/config"
	"github.com/vovakirdan/memylon/internal/core"
	"github.com/vovakirdan/memylon/internal/registry"
	"github.com/vovakirdan/memylon/internal/storage"
)

// GameFactory builds a game for a menu selection.
type GameFactory func(gameID string, preset config.DifficultyPreset, logger *log.Logger) (registry.Game, error)

// registryFactory ignores the preset and logger.
func registryFactory(gameID string, _ config.DifficultyPreset, _ *log.Logger) (registry.Game, error) {
	return registry.Create(gameID)
}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.memylon/host_key.
	HostKeyPath string

	// DBPath is the path to the results database.
	// Empty keeps results in memory for the lifetime of the server.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// FrameTime is the simulation tick interval for every session.
	FrameTime time.Duration

	// Difficulty is preselected in each session's menu.
	Difficulty config.DifficultyPreset

	// Factory builds games. Nil falls back to the registry.
	Factory GameFactory
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      storage.Memory,
		IdleTimeout: 30 * time.Minute,
		FrameTime:   core.DefaultFrameTime,
		Difficulty:  config.DifficultyNormal,
	}
}

// SSHServer wraps a Wish SSH server for memylon.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "memylon-ssh",
	})

	if cfg.Factory == nil {
		cfg.Factory = registryFactory
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".memylon", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

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

	sessionID := uuid.NewString()
	logger := s.logger.With("session", sessionID, "user", sshSession.User())

	cfg := core.RuntimeConfig{
		ScreenW:   pty.Window.Width,
		ScreenH:   pty.Window.Height,
		FrameTime: s.config.FrameTime,
		Seed:      time.Now().UnixNano(),
	}

	model := NewSessionModel(SessionOptions{
		Store:      s.store,
		Config:     cfg,
		Difficulty: s.config.Difficulty,
		Factory:    s.config.Factory,
		Logger:     logger,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
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

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errc:
		s.logger.Error("server error", "error", err)
		//nolint:errcheck // the listen error is the one worth reporting
		s.Shutdown()
		return err
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Sessions still draining may save a run.
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

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store      *storage.Store
	Config     core.RuntimeConfig
	Difficulty config.DifficultyPreset
	Factory    GameFactory
	Logger     *log.Logger
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewResults
)

// SessionModel manages the full session flow: menu -> game or results -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	opts      SessionOptions
	view      sessionView
	menu      MenuModel
	gameModel *GameModel
	results   *ResultsModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Factory == nil {
		opts.Factory = registryFactory
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Config, opts.Difficulty),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Config.ScreenW = wsm.Width
		m.opts.Config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewResults:
		return m.updateResults(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	res := m.menu.Result()
	switch {
	case res.WantsResults:
		results := NewResultsModel(m.opts.Store, m.opts.Config.ScreenW, m.opts.Config.ScreenH)
		m.results = &results
		m.view = viewResults
		return m, m.results.Init()

	case res.GameID != "":
		m.opts.Difficulty = res.Difficulty
		game, err := m.opts.Factory(res.GameID, res.Difficulty, m.opts.Logger)
		if err != nil {
			m.opts.Logger.Error("cannot create game", "game", res.GameID, "err", err)
			m.menu = NewMenuModel(m.opts.Config, m.opts.Difficulty)
			return m, nil
		}
		m.opts.Logger.Info("game started", "game", res.GameID, "difficulty", res.Difficulty)

		cfg := m.opts.Config
		cfg.Seed = time.Now().UnixNano()
		gameModel := NewGameModel(game, m.opts.Store, cfg, WithModelLogger(m.opts.Logger))
		m.gameModel = &gameModel
		m.view = viewGame
		return m, m.gameModel.Init()

	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateResults handles updates when the results board is shown.
func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.results.Update(msg)
	if results, ok := newModel.(ResultsModel); ok {
		m.results = &results
	}

	if m.results.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.results.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu discards the current sub-model and shows a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.gameModel = nil
	m.results = nil
	m.menu = NewMenuModel(m.opts.Config, m.opts.Difficulty)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewResults:
		return m.results.View()
	default:
		return m.menu.View()
	}
}
