package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kids-arcade/internal/catalog"
	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
)

// glyphs maps catalog icon identifiers to the characters drawn on tiles.
var glyphs = map[catalog.Icon]string{
	catalog.IconCards:      "🃏",
	catalog.IconGrid:       "🔢",
	catalog.IconPuzzle:     "🧩",
	catalog.IconTicTacToe:  "⭕",
	catalog.IconBrush:      "🎨",
	catalog.IconLetters:    "🔤",
	catalog.IconSnake:      "🐍",
	catalog.IconPiano:      "🎹",
	catalog.IconCalculator: "➗",
	catalog.IconHammer:     "🔨",
}

// Glyph returns the character for icon, or the identifier in brackets if the
// icon has no glyph.
func Glyph(icon catalog.Icon) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return "[" + string(icon) + "]"
}

// Theme holds the lipgloss styles for one terminal. SSH sessions get their own
// renderer so color support is detected per client.
type Theme struct {
	r        *lipgloss.Renderer
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Focus    lipgloss.Style
	focus    lipgloss.TerminalColor
	muted    lipgloss.TerminalColor
}

// NewTheme builds styles from theme colors. A nil renderer uses the default one.
func NewTheme(r *lipgloss.Renderer, tc config.ThemeConfig) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	focus := colorOrDefault(tc.Focus)
	muted := colorOrDefault(tc.Muted)

	return Theme{
		r:        r,
		Title:    r.NewStyle().Bold(true).Foreground(colorOrDefault(tc.Title)),
		Subtitle: r.NewStyle().Italic(true).Foreground(colorOrDefault(tc.Subtitle)),
		Muted:    r.NewStyle().Foreground(muted),
		Focus:    r.NewStyle().Bold(true).Foreground(focus),
		focus:    focus,
		muted:    muted,
	}
}

// DefaultTheme returns the theme built from the default configuration.
func DefaultTheme() Theme {
	return NewTheme(nil, config.DefaultConfig().Theme)
}

// NewStyle returns a blank style bound to the theme's renderer.
func (t Theme) NewStyle() lipgloss.Style {
	if t.r == nil {
		return lipgloss.NewStyle()
	}
	return t.r.NewStyle()
}

// Accent returns the terminal color for a catalog accent.
func Accent(c core.Color) lipgloss.TerminalColor {
	return colorOrDefault(c.Code())
}

func colorOrDefault(code string) lipgloss.TerminalColor {
	if code == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(code)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
