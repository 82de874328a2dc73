package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func newServeCmd(s settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Breakout SSH server",
		Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game, sized to the client's terminal,
after picking a mode and starting level.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.breakout/host_key

Examples:
  breakout serve                           # Listen on :23234 with auto-generated key
  breakout serve --ssh :2222               # Listen on port 2222
  breakout serve --host-key ./my_host_key  # Use specific host key
  breakout serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, s)
		},
	}

	def := tui.DefaultSSHServerConfig()
	cmd.Flags().String("ssh", def.Address, "SSH server address (host:port)")
	cmd.Flags().String("host-key", "", "Path to host key file (auto-generated if not specified)")
	cmd.Flags().Int("idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	cmd.Flags().String("difficulty", "", "Difficulty preset for every session: easy, normal, hard")
	cmd.Flags().String("config", "", "Path to custom game config YAML")

	return cmd
}

// serveModes lists every registered mode for the session menu.
func serveModes() []tui.ModeOption {
	titles := make(map[string]string)
	for _, g := range registry.List() {
		titles[g.ID] = g.Title
	}

	modes := []breakout.Mode{breakout.ModeSingle, breakout.ModeCampaign, breakout.ModeEndless}
	opts := make([]tui.ModeOption, 0, len(modes))
	for _, m := range modes {
		opts = append(opts, tui.ModeOption{
			GameID: m.GameID(),
			Mode:   m.String(),
			Title:  titles[m.GameID()],
		})
	}
	return opts
}

// serveLevels lists the level catalog for the session menu.
func serveLevels(extra []breakout.LevelSpec) []tui.LevelOption {
	levels := breakout.Catalog(extra)
	opts := make([]tui.LevelOption, len(levels))
	for i, l := range levels {
		opts[i] = tui.LevelOption{ID: l.ID, Name: l.Name}
	}
	return opts
}

func runServe(cmd *cobra.Command, s settings) error {
	level, err := logging.ParseLevel(s.String("log-level"))
	if err != nil {
		return err
	}
	preset, err := config.ParseDifficulty(s.String("difficulty"))
	if err != nil {
		return err
	}
	gameCfg, err := config.LoadBreakout(s.String("config"))
	if err != nil {
		return err
	}
	config.ApplyBreakoutPreset(&gameCfg, preset)
	if err := gameCfg.Validate(); err != nil {
		return err
	}
	cmd.SilenceUsage = true

	logger := logging.New(os.Stderr, level, "breakout-ssh")

	levelDir := s.String("levels-dir")
	extra, err := breakout.LoadLevelDir(levelDir)
	if err != nil {
		logger.Warn("some custom levels were skipped", "error", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = s.String("ssh")
	cfg.HostKeyPath = s.String("host-key")
	cfg.DBPath = s.String("db")
	cfg.IdleTimeout = time.Duration(s.Int("idle-timeout")) * time.Minute
	cfg.TickRate = s.Int("fps")
	cfg.Modes = serveModes()
	cfg.Levels = serveLevels(extra)
	cfg.Game = registry.Options{Config: &gameCfg, LevelDir: levelDir}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Starting Breakout SSH server on %s\n", cfg.Address)
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
