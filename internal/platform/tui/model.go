package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memylon/internal/core"
	"github.com/vovakirdan/memylon/internal/registry"
	"github.com/vovakirdan/memylon/internal/storage"
)

// GameModel is the Bubble Tea model for running a single game.
// It is used directly by `memylon play` and embedded by SSH sessions.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	log        *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	standalone bool // back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current win has been recorded
}

// ModelOption configures a GameModel.
type ModelOption func(*GameModel)

// WithModelLogger sets the logger used for run bookkeeping.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *GameModel) {
		if l != nil {
			m.log = l
		}
	}
}

// Standalone makes the back key quit the program.
func Standalone() ModelOption {
	return func(m *GameModel) {
		m.standalone = true
	}
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		log:        log.New(io.Discard),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	// Reset here rather than in Init: Init has a value receiver and the
	// game must be dealt before the first click can arrive.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.Frame())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.standalone {
			m.quitting = true
		} else {
			m.backToMenu = true
		}
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse forwards left clicks to games that accept pointer input.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if c, ok := m.game.(registry.Clicker); ok {
		c.ClickCell(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
// Games lay themselves out on every render, so the board survives resizes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.Won && !m.runSaved:
		m.saveRun()
		m.runSaved = true
	case !m.gameState.Won:
		// A restart begins a new run.
		m.runSaved = false
	}

	return m, tickCmd(m.config.Frame())
}

// saveRun records a finished game. Failures are logged and otherwise ignored.
func (m *GameModel) saveRun() {
	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Misses:   m.gameState.Misses,
		Winner:   m.gameState.Winner,
		Duration: m.gameState.Elapsed,
	})
	if err != nil {
		m.log.Error("failed to save run", "game", m.game.ID(), "err", err)
		return
	}
	m.log.Info("run saved",
		"id", id,
		"game", m.game.ID(),
		"misses", m.gameState.Misses,
		"winner", m.gameState.Winner,
		"elapsed", m.gameState.Elapsed,
	)
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m *GameModel) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".memylon", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// BackToMenu reports whether the player asked to leave the game.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Quitting reports whether the player asked to quit.
func (m GameModel) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// RunGame runs a game until the player quits or goes back.
// Returns true if the player asked to go back to the menu.
func RunGame(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewGameModel(game, store, cfg, opts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}

// Run starts the Bubble Tea program for a single game. Back quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	opts = append([]ModelOption{Standalone()}, opts...)
	_, err := RunGame(game, store, cfg, opts...)
	return err
}
