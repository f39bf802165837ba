package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kids-arcade/internal/catalog"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/nav"
)

// Grid layout constants
const (
	gridColumns  = 2
	tileHeight   = 4 // Border + glyph + label + border
	tileMinWidth = 16
	tileMaxWidth = 34
	tileGap      = 2
	gridChrome   = 6 // Title, greeting and help lines around the tiles
)

// BackMsg asks the host to pop the navigation history.
type BackMsg struct{}

func backCmd() tea.Msg {
	return BackMsg{}
}

// GridModel is the Bubble Tea model for the games menu: a two-column grid of
// tiles, one per catalog entry.
type GridModel struct {
	items     []catalog.MenuItem
	nav       nav.Navigator
	theme     Theme
	title     string
	greeting  string
	keyMapper *KeyMapper
	help      help.Model
	cursor    int
	offset    int // First visible row
	width     int
	height    int
	quitting  bool
}

// NewGridModel creates the games menu for c. Activating a tile calls
// n.Navigate with that tile's route.
func NewGridModel(c *catalog.Catalog, n nav.Navigator, theme Theme) GridModel {
	return GridModel{
		items:     c.Items(),
		nav:       n,
		theme:     theme,
		title:     "Pick a game",
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		width:     80,
		height:    24,
	}
}

// WithTitle returns a copy of the grid with a different heading.
func (m GridModel) WithTitle(title string) GridModel {
	m.title = title
	return m
}

// SetGreeting sets the line shown under the heading.
func (m *GridModel) SetGreeting(greeting string) {
	m.greeting = greeting
}

// Init initializes the grid model.
func (m GridModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the games menu.
func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for tile focus and activation.
func (m GridModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)

	switch m.keyMapper.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		return m, backCmd

	case core.ActionLeft:
		if m.cursor%gridColumns > 0 {
			m.cursor--
		}

	case core.ActionRight:
		if m.cursor%gridColumns < gridColumns-1 && m.cursor+1 < n {
			m.cursor++
		}

	case core.ActionUp:
		if m.cursor-gridColumns >= 0 {
			m.cursor -= gridColumns
		}

	case core.ActionDown:
		if m.cursor+gridColumns < n {
			m.cursor += gridColumns
		}

	case core.ActionNext:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}

	case core.ActionPrev:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}

	case core.ActionActivate:
		if n > 0 {
			m.nav.Navigate(m.items[m.cursor].Route.String())
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	m.scrollToCursor()
	return m, nil
}

// SetSize updates the layout dimensions.
func (m *GridModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.scrollToCursor()
}

// Cursor returns the index of the focused tile.
func (m GridModel) Cursor() int {
	return m.cursor
}

// Selected returns the focused catalog entry.
func (m GridModel) Selected() (catalog.MenuItem, bool) {
	if len(m.items) == 0 {
		return catalog.MenuItem{}, false
	}
	return m.items[m.cursor], true
}

// rows returns the number of grid rows.
func (m GridModel) rows() int {
	return (len(m.items) + gridColumns - 1) / gridColumns
}

// visibleRows returns how many tile rows fit on screen.
func (m GridModel) visibleRows() int {
	v := (m.height - gridChrome) / tileHeight
	if v < 1 {
		v = 1
	}
	return v
}

// scrollToCursor keeps the focused row on screen.
func (m *GridModel) scrollToCursor() {
	row := m.cursor / gridColumns
	visible := m.visibleRows()
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+visible {
		m.offset = row - visible + 1
	}
	if maxOffset := m.rows() - visible; m.offset > maxOffset {
		m.offset = max(0, maxOffset)
	}
}

// tileWidth returns the outer width of one tile.
func (m GridModel) tileWidth() int {
	w := (m.width - tileGap - 4) / gridColumns
	return min(max(w, tileMinWidth), tileMaxWidth)
}

// View renders the games menu.
func (m GridModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render(m.title), m.width))
	b.WriteString("\n")
	if m.greeting != "" {
		b.WriteString(centerText(m.theme.Subtitle.Render(m.greeting), m.width))
	}
	b.WriteString("\n")

	rows := make([]string, 0, m.visibleRows())
	end := min(m.offset+m.visibleRows(), m.rows())
	for r := m.offset; r < end; r++ {
		cells := make([]string, 0, gridColumns*2)
		for c := range gridColumns {
			i := r*gridColumns + c
			if i >= len(m.items) {
				break
			}
			if c > 0 {
				cells = append(cells, strings.Repeat(" ", tileGap))
			}
			cells = append(cells, m.renderTile(m.items[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, grid))
	b.WriteString("\n")

	if m.offset > 0 || end < m.rows() {
		b.WriteString(centerText(m.theme.Muted.Render(scrollHint(m.offset > 0, end < m.rows())), m.width))
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Muted.Render(m.help.View(m.keyMapper.Keys())), m.width))

	return b.String()
}

// renderTile draws one catalog entry with its accent color.
func (m GridModel) renderTile(item catalog.MenuItem, focused bool) string {
	inner := m.tileWidth() - 2
	accent := Accent(item.Accent)

	style := m.theme.NewStyle().
		Width(inner).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent)

	label := item.Label
	if focused {
		style = style.Border(lipgloss.ThickBorder())
		label = m.theme.NewStyle().Bold(true).Foreground(accent).Render("▸ " + label + " ◂")
	}

	return style.Render(Glyph(item.Icon) + "\n" + label)
}

func scrollHint(up, down bool) string {
	switch {
	case up && down:
		return "▲ more ▼"
	case up:
		return "▲ more"
	case down:
		return "more ▼"
	}
	return ""
}
