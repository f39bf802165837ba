package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kids-arcade/internal/storage"
)

// Stats layout constants
const (
	maxRecentVisits = 100
	statsChrome     = 8 // Title, tabs, help and margins
)

// StatsView selects which table the stats screen shows.
type StatsView int

const (
	StatsViewTotals StatsView = iota
	StatsViewRecent
)

// VisitSource is the read side of the launch history.
type VisitSource interface {
	VisitCounts() ([]storage.RouteCount, error)
	RecentVisits(limit int) ([]storage.Visit, error)
}

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Switch, k.Quit}}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "totals/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the launch history screen.
type StatsModel struct {
	source   VisitSource
	view     StatsView
	counts   []storage.RouteCount
	recent   []storage.Visit
	loadErr  error
	table    table.Model
	help     help.Model
	keys     StatsKeyMap
	width    int
	height   int
	quitting bool
}

// NewStatsModel creates a new stats model. source may be nil.
func NewStatsModel(source VisitSource, width, height int) StatsModel {
	m := StatsModel{
		source: source,
		help:   help.New(),
		keys:   DefaultStatsKeyMap(),
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	return m
}

// load reads both views from the source.
func (m *StatsModel) load() {
	if m.source == nil {
		return
	}
	if counts, err := m.source.VisitCounts(); err != nil {
		m.loadErr = err
	} else {
		m.counts = counts
	}
	if recent, err := m.source.RecentVisits(maxRecentVisits); err != nil {
		m.loadErr = err
	} else {
		m.recent = recent
	}
}

// createTable creates a table for the current view.
func (m *StatsModel) createTable() table.Model {
	var columns []table.Column
	var rows []table.Row

	switch m.view {
	case StatsViewTotals:
		columns = []table.Column{
			{Title: "Route", Width: 22},
			{Title: "Opened", Width: 8},
			{Title: "Last", Width: 14},
		}
		for _, c := range m.counts {
			rows = append(rows, table.Row{c.Route, fmt.Sprintf("%d", c.Count), formatWhen(c.Last)})
		}
	case StatsViewRecent:
		columns = []table.Column{
			{Title: "When", Width: 14},
			{Title: "Route", Width: 22},
			{Title: "OK", Width: 4},
			{Title: "Session", Width: 10},
		}
		for _, v := range m.recent {
			ok := "yes"
			if !v.Resolved {
				ok = "no"
			}
			rows = append(rows, table.Row{formatWhen(v.CreatedAt), v.Route, ok, shortID(v.SessionID)})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-statsChrome)),
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

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == StatsViewTotals {
				m.view = StatsViewRecent
			} else {
				m.view = StatsViewTotals
			}
			m.table = m.createTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View returns the current table view.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("LAUNCH HISTORY"), m.width))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := []string{"Totals", "Recent"}
	for i := range tabs {
		if StatsView(i) == m.view {
			tabs[i] = activeTabStyle.Render(tabs[i])
		} else {
			tabs[i] = tabStyle.Render(tabs[i])
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.tableContent()), m.width))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tableContent renders the table or an explanatory message.
func (m StatsModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.source == nil:
		return emptyStyle.Render("Launch history is unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read launch history:\n" + m.loadErr.Error())
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("Nothing opened yet.\nPick a game to start the history!")
	}
	return m.table.View()
}

// CurrentView returns which table is shown.
func (m StatsModel) CurrentView() StatsView {
	return m.view
}

// RunStats runs the launch history screen.
func RunStats(store *storage.Store, width, height int) error {
	var source VisitSource
	if store != nil {
		source = store
	}

	p := tea.NewProgram(
		NewStatsModel(source, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

func formatWhen(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 02 15:04")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}
