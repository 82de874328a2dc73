package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// scoreTableWidth is used when stdout has no size.
const scoreTableWidth = 80

func newScoresCmd(s settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show high scores",
		Long: `Display the top scores for each game mode, or for one mode with --mode.

Examples:
  breakout scores
  breakout scores --mode campaign --limit 5
  breakout scores --mode endless --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScores(cmd, s)
		},
	}

	cmd.Flags().Int("limit", 10, "Number of scores to show per mode")
	cmd.Flags().String("mode", "", "Only show this mode: single, campaign, endless")
	cmd.Flags().Bool("clear", false, "Delete the scores of the selected modes")

	return cmd
}

func runScores(cmd *cobra.Command, s settings) error {
	limit := s.Int("limit")
	if limit < 1 {
		return fmt.Errorf("--limit must be positive, got %d", limit)
	}

	modes := []breakout.Mode{breakout.ModeSingle, breakout.ModeCampaign, breakout.ModeEndless}
	if name := s.String("mode"); name != "" {
		mode, err := breakout.ParseMode(name)
		if err != nil {
			return err
		}
		modes = []breakout.Mode{mode}
	}
	cmd.SilenceUsage = true

	store, err := storage.Open(s.String("db"))
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if s.Bool("clear") {
		for _, mode := range modes {
			if err := store.ClearScores(mode.GameID()); err != nil {
				return fmt.Errorf("clearing scores: %w", err)
			}
			fmt.Fprintf(out, "Cleared %s scores\n", mode)
		}
		return nil
	}

	width := scoreTableWidth
	if w, _, err := terminalSize(); err == nil {
		width = w
	}

	titles := make(map[string]string)
	for _, g := range registry.List() {
		titles[g.ID] = g.Title
	}

	for i, mode := range modes {
		if i > 0 {
			fmt.Fprintln(out)
		}

		gameID := mode.GameID()
		scores, err := store.TopScores(gameID, limit)
		if err != nil {
			return fmt.Errorf("retrieving scores: %w", err)
		}
		fmt.Fprint(out, tui.RenderScoreTable(titles[gameID], scores, width))

		if len(scores) == 0 {
			continue
		}
		stats, err := store.GetGameStats(gameID)
		if err != nil {
			return fmt.Errorf("retrieving stats: %w", err)
		}
		fmt.Fprintf(out, "Games: %d  Best: %d  Best level: %d  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestLevel, stats.AvgScore)
	}
	return nil
}
