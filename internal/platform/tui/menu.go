package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModeOption is a selectable game mode.
type ModeOption struct {
	GameID string // Registry ID
	Mode   string // Name recorded with scores
	Title  string
}

// LevelOption is a selectable starting level.
type LevelOption struct {
	ID   string
	Name string
}

// MenuChoice is what the player picked.
type MenuChoice struct {
	Mode  ModeOption
	Level LevelOption
}

// MenuKeyMap defines the key bindings for the menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns the default menu key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel lets a player choose a mode and then a starting level.
type MenuModel struct {
	modes         []ModeOption
	levels        []LevelOption
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keys          MenuKeyMap
	help          help.Model
	choice        *MenuChoice
	notice        string // Why the last choice could not start
	quitting      bool

	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	itemStyle     lipgloss.Style
	noticeStyle   lipgloss.Style
}

// NewMenuModel creates a menu over the given modes and levels.
// A nil renderer uses lipgloss's default.
func NewMenuModel(modes []ModeOption, levels []LevelOption, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return MenuModel{
		modes:         modes,
		levels:        levels,
		keys:          DefaultMenuKeyMap(),
		help:          help.New(),
		titleStyle:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		selectedStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		itemStyle:     r.NewStyle().Foreground(lipgloss.Color("250")),
		noticeStyle:   r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inLevelSelect {
		return m.handleLevelKey(msg), nil
	}
	return m.handleModeKey(msg), nil
}

func (m MenuModel) handleModeKey(msg tea.KeyMsg) MenuModel {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.modes) == 0 {
			return m
		}
		if len(m.levels) == 0 {
			m.choice = &MenuChoice{Mode: m.modes[m.cursor]}
			return m
		}
		m.inLevelSelect = true
		m.levelCursor = 0
	}
	return m
}

func (m MenuModel) handleLevelKey(msg tea.KeyMsg) MenuModel {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choice = &MenuChoice{
			Mode:  m.modes[m.cursor],
			Level: m.levels[m.levelCursor],
		}
	case key.Matches(msg, m.keys.Back):
		m.inLevelSelect = false
	}
	return m
}

// View renders the mode or level list.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var (
		title  string
		lines  []string
		cursor int
	)
	if m.inLevelSelect {
		title = fmt.Sprintf("%s - starting level", m.modes[m.cursor].Title)
		for i, l := range m.levels {
			lines = append(lines, fmt.Sprintf("%2d. %s", i+1, l.Name))
		}
		cursor = m.levelCursor
	} else {
		title = "B R E A K O U T"
		for _, mode := range m.modes {
			lines = append(lines, mode.Title)
		}
		cursor = m.cursor
	}

	var b strings.Builder
	b.WriteString(m.titleStyle.Render(title))
	b.WriteString("\n\n")
	for i, line := range lines {
		if i == cursor {
			b.WriteString(m.selectedStyle.Render("> " + line))
		} else {
			b.WriteString(m.itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(m.noticeStyle.Render(m.notice))
		b.WriteString("\n\n")
	}
	b.WriteString(m.help.View(m.keys))

	if m.width == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Choice returns the selection, or nil while still choosing.
func (m MenuModel) Choice() *MenuChoice {
	return m.choice
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
