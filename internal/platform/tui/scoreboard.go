package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappyx/internal/registry"
	"github.com/vovakirdan/flappyx/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show mode list sidebar
	sidebarWidth       = 22  // Width of mode list sidebar
	maxScores          = 100 // Max scores to load
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevMode, k.NextMode, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevMode, k.NextMode, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best lives of each mode with aggregate stats.
type ScoreboardModel struct {
	modes       []registry.GameInfo
	cursor      int
	store       *storage.Store
	scores      []storage.ScoreEntry
	stats       *storage.ModeStats
	err         error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard opened on the given mode.
// An unknown or empty mode opens the first registered one.
func NewScoreboardModel(store *storage.Store, mode string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:       registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, g := range m.modes {
		if g.ID == mode {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

// current returns the selected mode, or an empty info when none is registered.
func (m ScoreboardModel) current() registry.GameInfo {
	if len(m.modes) == 0 {
		return registry.GameInfo{}
	}
	return m.modes[m.cursor]
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth > 40 {
		columns[1].Width = 12
		columns[2].Width = min(tableWidth-22, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches scores and stats for the selected mode.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.err = nil, nil, nil
	mode := m.current().ID
	if m.store == nil || mode == "" {
		m.updateTableRows()
		return
	}

	m.scores, m.err = m.store.TopScores(mode, maxScores)
	if m.err == nil {
		m.stats, m.err = m.store.Stats(mode)
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) move(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.modes)) % len(m.modes)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.move(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if g := m.current(); g.ID != "" {
		title = fmt.Sprintf("HIGH SCORES - %s", g.Title)
	}
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderSidebar(), "  ", boardFrameStyle.Render(m.renderTableContent())))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.current().ID), m.width))
		b.WriteString("\n\n")
		b.WriteString(boardFrameStyle.Render(m.renderTableContent()))
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.renderStats()))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderSidebar() string {
	var sidebar strings.Builder
	sidebar.WriteString("Modes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.modes {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := g.ID
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return boardFrameStyle.Width(sidebarWidth).Render(sidebar.String())
}

// renderTableContent renders the table or an empty/error message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := boardDimStyle.Italic(true).Padding(2, 4)
	switch {
	case m.store == nil:
		return emptyStyle.Render("Score storage is unavailable.")
	case m.err != nil:
		return emptyStyle.Render("Cannot load scores:\n" + m.err.Error())
	case len(m.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nFlap through a few pipes first!")
	}
	return m.table.View()
}

func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.LivesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Lives: %d  Best: %d  Avg: %.1f  Last played: %s",
		m.stats.LivesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Format("Jan 02 15:04"))
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the interactive scoreboard until the user quits.
func RunScoreboard(store *storage.Store, mode string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, mode, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
