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
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// shutdownTimeout bounds how long open sessions get to finish on shutdown.
const shutdownTimeout = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.breakout/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Modes and Levels are offered by each session's menu.
	Modes  []ModeOption
	Levels []LevelOption

	// Game is passed to every session's factory. Config is shared read-only.
	Game registry.Options

	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      storage.DefaultPath,
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultConfig().TickRate,
	}
}

// SSHServer serves one game per SSH session through Wish.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "breakout-ssh",
		})
	}

	if len(cfg.Modes) == 0 {
		return nil, errors.New("tui: no game modes to serve")
	}
	for _, mode := range cfg.Modes {
		if !registry.Exists(mode.GameID) {
			return nil, fmt.Errorf("tui: unknown game %q", mode.GameID)
		}
	}

	// Scores are optional; sessions still play without them
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = filepath.Join("~", ".breakout", "host_key")
	}
	hostKeyPath, err = config.ExpandHome(hostKeyPath)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		fmt.Fprintln(sess.Stderr(), "breakout requires an interactive terminal (ssh -t)")
		return nil, nil
	}

	renderer := bubbletea.MakeRenderer(sess)
	logger := s.logger.With("user", sess.User())
	store := s.store

	start := func(choice MenuChoice, width, height int) (Model, error) {
		field, err := config.ResolvePlayfield(
			config.PlayfieldRequest{Fill: true},
			func() (int, int, error) { return width, height, nil },
		)
		if err != nil {
			return Model{}, err
		}

		gameOpts := s.config.Game
		gameOpts.Level = choice.Level.ID
		game, err := registry.Create(choice.Mode.GameID, gameOpts)
		if err != nil {
			return Model{}, err
		}

		cfg := core.RuntimeConfig{
			ScreenW:  field.Width,
			ScreenH:  field.Height,
			TickRate: s.config.TickRate,
			Seed:     time.Now().UnixNano(),
		}
		opts := Options{
			Logger:   logger,
			Mode:     choice.Mode.Mode,
			Fill:     true,
			Renderer: renderer,
		}
		if store != nil {
			opts.Store = store
		}
		logger.Info("game selected", "game", choice.Mode.GameID, "level", choice.Level.ID)
		return NewModel(game, cfg, opts), nil
	}

	menu := NewMenuModel(s.config.Modes, s.config.Levels, renderer)
	session := NewSessionModel(menu, start, pty.Window.Width, pty.Window.Height)

	return session, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until ctx is cancelled or
// the listener fails, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: SSH server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// GameStarter builds the game model for a menu choice at the given window size.
type GameStarter func(choice MenuChoice, width, height int) (Model, error)

// SessionModel manages one SSH session: menu first, then the chosen game.
type SessionModel struct {
	menu   MenuModel
	game   *Model
	start  GameStarter
	width  int
	height int
}

// NewSessionModel creates a session that starts on the menu.
func NewSessionModel(menu MenuModel, start GameStarter, width, height int) SessionModel {
	return SessionModel{
		menu:   menu,
		start:  start,
		width:  width,
		height: height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the menu or the running game.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.game != nil {
		next, cmd := m.game.Update(msg)
		if game, ok := next.(Model); ok {
			m.game = &game
		}
		return m, cmd
	}

	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}
	if m.menu.IsQuitting() {
		return m, cmd
	}

	choice := m.menu.Choice()
	if choice == nil {
		return m, cmd
	}

	game, err := m.start(*choice, m.width, m.height)
	if err != nil {
		m.menu.choice = nil
		m.menu.notice = err.Error()
		return m, nil
	}

	// The game only learns the window size from messages
	next, _ = game.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	if sized, ok := next.(Model); ok {
		game = sized
	}
	m.game = &game
	return m, game.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// Playing reports whether the session has left the menu.
func (m SessionModel) Playing() bool {
	return m.game != nil
}
