package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/i18n"
	"github.com/vovakirdan/kids-arcade/internal/nav"
	"github.com/vovakirdan/kids-arcade/internal/route"
)

// landingButton is one of the welcome screen's action buttons.
type landingButton struct {
	labelID  string
	fallback string
	hotkey   string
	target   route.Route
}

// landingButtons are fixed: the first leads to the parent login, the second to
// the child login.
var landingButtons = [2]landingButton{
	{labelID: "button_parent", fallback: "I'm a parent", hotkey: "1", target: route.ParentLogin},
	{labelID: "button_child", fallback: "I'm a kid", hotkey: "2", target: route.ChildLogin},
}

// LandingModel is the Bubble Tea model for the welcome screen.
type LandingModel struct {
	nav       nav.Navigator
	tr        *i18n.Translator
	theme     Theme
	keyMapper *KeyMapper
	help      help.Model
	focus     int
	width     int
	height    int
	quitting  bool
}

// NewLandingModel creates the welcome screen.
func NewLandingModel(n nav.Navigator, tr *i18n.Translator, theme Theme) LandingModel {
	return LandingModel{
		nav:       n,
		tr:        tr,
		theme:     theme,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		width:     80,
		height:    24,
	}
}

// Init initializes the landing model.
func (m LandingModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the welcome screen.
func (m LandingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Each activation dispatches exactly once.
func (m LandingModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, b := range landingButtons {
		if msg.String() == b.hotkey {
			m.nav.Navigate(b.target.String())
			return m, nil
		}
	}

	switch m.keyMapper.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionUp:
		m.focus = 0

	case core.ActionRight, core.ActionDown:
		m.focus = len(landingButtons) - 1

	case core.ActionNext:
		m.focus = (m.focus + 1) % len(landingButtons)

	case core.ActionPrev:
		m.focus = (m.focus + len(landingButtons) - 1) % len(landingButtons)

	case core.ActionActivate:
		m.nav.Navigate(landingButtons[m.focus].target.String())

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// SetSize updates the layout dimensions.
func (m *LandingModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Focus returns the index of the focused button.
func (m LandingModel) Focus() int {
	return m.focus
}

// View renders the welcome screen.
func (m LandingModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(starfield(m.width, 3, 0))
	b.WriteString("\n\n")

	title := m.theme.Title.Render(strings.ToUpper(m.tr.Translate("welcome_title", "Kids Arcade")))
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n")
	subtitle := m.theme.Subtitle.Render(m.tr.Translate("welcome_subtitle", ""))
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	buttons := make([]string, len(landingButtons))
	for i, btn := range landingButtons {
		buttons[i] = m.renderButton(btn, i == m.focus)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, buttons[0], "   ", buttons[1])
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, row))
	b.WriteString("\n\n")

	b.WriteString(starfield(m.width, 3, 7))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.theme.Muted.Render(m.help.View(m.keyMapper.Keys())), m.width))

	return b.String()
}

func (m LandingModel) renderButton(btn landingButton, focused bool) string {
	label := btn.hotkey + "  " + m.tr.Translate(btn.labelID, btn.fallback)
	style := m.theme.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 3)
	if focused {
		style = style.
			Border(lipgloss.ThickBorder()).
			BorderForeground(m.theme.focus).
			Bold(true)
	} else {
		style = style.BorderForeground(m.theme.muted)
	}
	return style.Render(label)
}

// starfield draws the decorative layer: rows of sparse stars whose pattern
// depends only on the width and the seed, so redraws are stable.
func starfield(width, rows, seed int) string {
	if width <= 0 {
		return ""
	}
	marks := []rune{'·', '*', '·', '✦'}
	lines := make([]string, rows)
	for y := range rows {
		line := make([]rune, width)
		for x := range line {
			h := (x*31 + (y+seed)*17 + seed*7) % 23
			if h == 0 {
				line[x] = marks[(x+y)%len(marks)]
			} else {
				line[x] = ' '
			}
		}
		lines[y] = string(line)
	}
	return strings.Join(lines, "\n")
}
