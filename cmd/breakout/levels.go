package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func newLevelsCmd(s settings) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List built-in and custom levels",
		Long: `List the levels in campaign order: built-in levels first, then the
custom levels found in --levels-dir.

Start on a level with:
  breakout --level <id>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			extra, err := breakout.LoadLevelDir(s.String("levels-dir"))
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), levelTable(breakout.Catalog(extra)))
			return nil
		},
	}
}

// levelTable renders the level list.
func levelTable(levels []breakout.LevelSpec) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "ID", "NAME", "ROWS", "SOURCE")

	for i, l := range levels {
		rows := "fill"
		if len(l.Pattern) > 0 {
			rows = strconv.Itoa(len(l.Pattern))
		}
		source := "built-in"
		if l.Source != "" {
			source = l.Source
		}
		t.Row(strconv.Itoa(i+1), l.ID, l.Name, rows, source)
	}
	return t.String()
}
