package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// ScoreRecorder persists finished runs. *storage.Store satisfies it.
type ScoreRecorder interface {
	SaveScore(entry storage.ScoreEntry) (int64, error)
	HighScore(gameID string) (int, error)
}

// SoundPlayer plays an effect for a simulation event. *audio.Player satisfies it.
type SoundPlayer interface {
	Play(kind core.EventKind)
}

// Options wires the optional collaborators of a Model.
type Options struct {
	Store  ScoreRecorder // nil disables score saving
	Sound  SoundPlayer   // nil disables sound
	Logger *log.Logger   // nil discards log output
	Mode   string        // Recorded with saved scores
	Fill   bool          // Playfield follows the window while on the welcome screen

	// Renderer carries the output's color profile; nil uses stdout's.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	palette    Palette
	helpStyle  lipgloss.Style
	warnStyle  lipgloss.Style
	runID      string
	width      int // Window size, zero until the first WindowSizeMsg
	height     int
	quitting   bool
	scoreSaved bool // Whether the current run has been recorded
}

// NewModel creates a Bubble Tea model for the given game and resets it to cfg.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		palette:    NewPalette(renderer),
		helpStyle:  renderer.NewStyle().Foreground(lipgloss.Color("241")),
		warnStyle:  renderer.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		runID:      uuid.NewString(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"game", m.game.ID(),
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
		"seed", m.config.Seed,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick. Quit takes effect at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.logger.Info("quit", "score", m.gameState.Score, "phase", m.gameState.Phase)
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize tracks the window size. In fill mode the playfield follows
// the window until the ball is first launched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	if !m.opts.Fill || m.gameState.Phase != core.PhaseWelcome {
		return m, nil
	}
	if msg.Width < config.MinWidth || msg.Height < config.MinHeight {
		return m, nil
	}
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Debug("playfield resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	restarted := m.inputFrame.Has(core.ActionRestart) && m.gameState.Phase != core.PhaseWelcome

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if restarted {
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.logger.Info("run restarted", "run", m.runID)
	}

	for _, ev := range result.Events {
		m.logger.Debug("event", "kind", ev.Kind, "x", ev.X, "y", ev.Y, "points", ev.Points)
		if m.opts.Sound != nil {
			m.opts.Sound.Play(ev.Kind)
		}
	}

	if m.gameState.Over() && !m.scoreSaved {
		m.recordScore()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordScore saves the finished run once. Failures are logged and ignored.
func (m *Model) recordScore() {
	m.scoreSaved = true
	m.logger.Info("run finished",
		"run", m.runID,
		"phase", m.gameState.Phase,
		"score", m.gameState.Score,
		"level", m.gameState.Level,
	)

	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}

	best, err := m.opts.Store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
	} else if m.gameState.Score > best {
		m.logger.Info("new high score", "score", m.gameState.Score, "previous", best)
	}

	_, err = m.opts.Store.SaveScore(storage.ScoreEntry{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Mode:   m.opts.Mode,
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir, err := config.ExpandHome(filepath.Join("~", ".breakout", "screenshots"))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the board centered in the window with a help footer below it
// when there is room.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width > 0 && (m.width < m.config.ScreenW || m.height < m.config.ScreenH) {
		msg := fmt.Sprintf("Window too small\nneed %dx%d, have %dx%d",
			m.config.ScreenW, m.config.ScreenH, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.warnStyle.Render(msg))
	}

	m.game.Render(m.screen)
	board := m.palette.Render(m.screen)

	if m.width == 0 {
		return board
	}
	if m.height > m.config.ScreenH {
		board = lipgloss.JoinVertical(lipgloss.Center, board, m.helpStyle.Render(m.help.View(m.keys)))
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, board)
}

// State returns the state after the latest tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Config returns the runtime configuration the game was reset with.
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// RunID identifies the current run in the score table.
func (m Model) RunID() string {
	return m.runID
}

// Run starts the Bubble Tea program and blocks until the player quits or ctx
// is cancelled. Cancellation is not an error.
func Run(ctx context.Context, model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
