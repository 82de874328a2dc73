package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// soundVolume is the linear effect volume.
const soundVolume = 0.4

// runProgram runs the game model, replaceable in tests.
var runProgram = tui.Run

func addPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("width", "w", config.DefaultWidth, fmt.Sprintf("Playfield width (minimum %d, rounded down to whole bricks)", config.MinWidth))
	f.IntP("height", "h", config.DefaultHeight, fmt.Sprintf("Playfield height (minimum %d)", config.MinHeight))
	f.BoolP("fill", "f", false, "Use the terminal size instead of --width/--height")
	f.String("mode", "single", "Game mode: single, campaign, endless")
	f.String("level", "", "Starting level (see 'breakout levels')")
	f.String("difficulty", "", "Difficulty preset: easy, normal, hard")
	f.String("config", "", "Path to custom game config YAML")
	f.Bool("sound", false, "Play sound effects")

	// -h is height; help is long-form only
	f.Bool("help", false, "Help for breakout")
}

// playRequest is the validated play configuration.
type playRequest struct {
	mode    breakout.Mode
	level   string
	game    config.BreakoutConfig
	field   config.Playfield
	runtime core.RuntimeConfig

	// levelErr reports custom level files that were skipped.
	levelErr error
}

// parsePlay validates every play setting. Errors are usage errors.
func parsePlay(s settings) (playRequest, error) {
	mode, err := breakout.ParseMode(s.String("mode"))
	if err != nil {
		return playRequest{}, err
	}

	extra, levelErr := breakout.LoadLevelDir(s.String("levels-dir"))
	level := s.String("level")
	if level != "" && !hasLevel(breakout.Catalog(extra), level) {
		return playRequest{}, fmt.Errorf("unknown level %q (run 'breakout levels')", level)
	}

	preset, err := config.ParseDifficulty(s.String("difficulty"))
	if err != nil {
		return playRequest{}, err
	}

	gameCfg, err := config.LoadBreakout(s.String("config"))
	if err != nil {
		return playRequest{}, err
	}
	config.ApplyBreakoutPreset(&gameCfg, preset)
	if err := gameCfg.Validate(); err != nil {
		return playRequest{}, err
	}

	field, err := config.ResolvePlayfield(config.PlayfieldRequest{
		Width:     s.Int("width"),
		Height:    s.Int("height"),
		Fill:      s.Bool("fill"),
		CellWidth: gameCfg.Bricks.Width,
	}, terminalSize)
	if err != nil {
		return playRequest{}, err
	}

	fps := s.Int("fps")
	if fps < 1 || fps > 1000 {
		return playRequest{}, fmt.Errorf("--fps must be between 1 and 1000, got %d", fps)
	}

	return playRequest{
		mode:  mode,
		level: level,
		game:  gameCfg,
		field: field,
		runtime: core.RuntimeConfig{
			ScreenW:  field.Width,
			ScreenH:  field.Height,
			TickRate: fps,
			Seed:     s.Int64("seed"),
		},
		levelErr: levelErr,
	}, nil
}

func runPlay(cmd *cobra.Command, s settings) error {
	req, err := parsePlay(s)
	if err != nil {
		return err
	}
	if !isTerminal() {
		return ErrNotTerminal
	}

	// Past validation: failures from here on are not usage mistakes
	cmd.SilenceUsage = true

	logger, closer, err := logging.OpenFile(s.String("log-file"), s.String("log-level"))
	if err != nil {
		return err
	}
	defer closer.Close()

	if req.levelErr != nil {
		logger.Warn("some custom levels were skipped", "error", req.levelErr)
	}

	game, err := registry.Create(req.mode.GameID(), registry.Options{
		Config:   &req.game,
		Level:    req.level,
		LevelDir: s.String("levels-dir"),
	})
	if err != nil {
		return err
	}

	opts := tui.Options{
		Logger: logger,
		Mode:   req.mode.String(),
		Fill:   s.Bool("fill"),
	}

	// Scores are optional; the game still works without them
	store, err := storage.Open(s.String("db"))
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	if s.Bool("sound") {
		if player := openSound(logger); player != nil {
			defer player.Close()
			opts.Sound = player
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := runProgram(ctx, tui.NewModel(game, req.runtime, opts)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openSound starts the audio device, or returns nil when there is none.
func openSound(logger *log.Logger) *audio.Player {
	player := audio.NewPlayer(soundVolume)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return player
}

func hasLevel(levels []breakout.LevelSpec, id string) bool {
	for _, l := range levels {
		if l.ID == id {
			return true
		}
	}
	return false
}
