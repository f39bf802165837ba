package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kids-arcade/internal/catalog"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/i18n"
	"github.com/vovakirdan/kids-arcade/internal/nav"
	"github.com/vovakirdan/kids-arcade/internal/route"
)

// ProfileMsg carries the name entered on a login screen.
type ProfileMsg struct {
	Name   string
	Parent bool
}

// LoginModel stands in for the external login flow. It asks for a name and
// then opens the games menu.
type LoginModel struct {
	nav    nav.Navigator
	tr     *i18n.Translator
	theme  Theme
	input  textinput.Model
	parent bool
	width  int
	height int
}

// NewLoginModel creates a login screen. parent selects the parent variant.
func NewLoginModel(n nav.Navigator, tr *i18n.Translator, theme Theme, parent bool) LoginModel {
	ti := textinput.New()
	ti.Placeholder = tr.Translate("login_placeholder", "Type your name")
	ti.CharLimit = 24
	ti.Width = 24
	ti.Focus()

	return LoginModel{
		nav:    n,
		tr:     tr,
		theme:  theme,
		input:  ti,
		parent: parent,
		width:  80,
		height: 24,
	}
}

// Init starts the cursor blink.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login screen.
func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, backCmd
		case tea.KeyEnter:
			name := strings.TrimSpace(m.input.Value())
			m.nav.Navigate(route.GameMenu.String())
			profile := ProfileMsg{Name: name, Parent: m.parent}
			return m, func() tea.Msg { return profile }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Value returns the text typed so far.
func (m LoginModel) Value() string {
	return m.input.Value()
}

// View renders the login screen.
func (m LoginModel) View() string {
	titleID, fallback := "login_child_title", "Child login"
	if m.parent {
		titleID, fallback = "login_parent_title", "Parent login"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(m.tr.Translate(titleID, fallback)),
		"",
		m.tr.Translate("login_prompt", "What's your name?"),
		m.input.View(),
		"",
		m.theme.Muted.Render("enter: continue • esc: back"),
	)
	box := m.theme.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.focus).
		Padding(1, 3).
		Render(body)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// LaunchCounter reports how often a route has been opened.
type LaunchCounter interface {
	VisitCount(route string) (int, error)
}

// GameModel stands in for an external mini-game: it shows which game was
// chosen and how often it has been opened, then returns to the menu.
type GameModel struct {
	item      catalog.MenuItem
	tr        *i18n.Translator
	theme     Theme
	keyMapper *KeyMapper
	launches  int // -1 when unknown
	width     int
	height    int
	quitting  bool
}

// NewGameModel creates the placeholder screen for item. counter may be nil.
func NewGameModel(item catalog.MenuItem, tr *i18n.Translator, theme Theme, counter LaunchCounter) GameModel {
	launches := -1
	if counter != nil {
		if n, err := counter.VisitCount(item.Route.String()); err == nil {
			launches = n
		}
	}

	return GameModel{
		item:      item,
		tr:        tr,
		theme:     theme,
		keyMapper: NewKeyMapper(),
		launches:  launches,
		width:     80,
		height:    24,
	}
}

// Init initializes the game screen.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the game screen.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKey(msg) {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionBack, core.ActionActivate:
			return m, backCmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// Launches returns the recorded launch count, or -1 if unknown.
func (m GameModel) Launches() int {
	return m.launches
}

// View renders the game screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	accent := Accent(m.item.Accent)
	lines := []string{
		Glyph(m.item.Icon),
		m.theme.NewStyle().Bold(true).Foreground(accent).Render(m.item.Label),
		"",
		m.tr.TranslateWith("game_external", "{{.Title}} runs as its own program.",
			map[string]any{"Title": m.item.Label}),
	}
	if m.launches >= 0 {
		lines = append(lines, m.theme.Muted.Render(m.tr.TranslateWith("game_launches", "Opened {{.Count}} times",
			map[string]any{"Count": m.launches})))
	}
	lines = append(lines, "", m.theme.Muted.Render("esc: back to games"))

	box := m.theme.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// NotFoundModel is shown when a dispatched route resolves to nothing.
type NotFoundModel struct {
	token     string
	tr        *i18n.Translator
	theme     Theme
	keyMapper *KeyMapper
	width     int
	height    int
	quitting  bool
}

// NewNotFoundModel creates the fallback screen for token.
func NewNotFoundModel(token string, tr *i18n.Translator, theme Theme) NotFoundModel {
	return NotFoundModel{
		token:     token,
		tr:        tr,
		theme:     theme,
		keyMapper: NewKeyMapper(),
		width:     80,
		height:    24,
	}
}

// Init initializes the not-found screen.
func (m NotFoundModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the not-found screen.
func (m NotFoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKey(msg) {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionBack, core.ActionActivate:
			return m, backCmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// Token returns the route token that failed to resolve.
func (m NotFoundModel) Token() string {
	return m.token
}

// View renders the not-found screen.
func (m NotFoundModel) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render(m.tr.Translate("not_found_title", "Nothing here")),
		"",
		m.tr.TranslateWith("not_found_body", "No screen is registered for {{.Route}}.",
			map[string]any{"Route": `"` + m.token + `"`}),
		"",
		m.theme.Muted.Render("esc: back"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
