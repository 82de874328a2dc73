package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	scoreFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// scoreColumns are the table columns, with the date column absorbing spare width.
func scoreColumns(width int) []table.Column {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 14},
	}

	// Borders, padding and column gaps
	spare := width - 4 - 2*len(columns)
	for _, c := range columns {
		spare -= c.Width
	}
	if spare > 0 {
		columns[3].Width += min(spare, 6)
	}
	return columns
}

// scoreRows formats entries as table rows, ranked in the given order.
func scoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Level),
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// RenderScoreTable renders a static high-score table for title.
func RenderScoreTable(title string, entries []storage.ScoreEntry, width int) string {
	var b strings.Builder
	b.WriteString(scoreTitleStyle.Render("HIGH SCORES - " + title))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(scoreEmptyStyle.Render("No scores yet. Play a game to set a record!"))
		b.WriteString("\n")
		return b.String()
	}

	t := table.New(
		table.WithColumns(scoreColumns(width)),
		table.WithRows(scoreRows(entries)),
		table.WithHeight(len(entries)+2),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No cursor highlight in a static table
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	b.WriteString(scoreFrameStyle.Render(t.View()))
	b.WriteString("\n")
	return b.String()
}
