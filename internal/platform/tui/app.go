// Package tui provides the Bubble Tea integration for the launcher.
// It hosts the welcome screen and games menu, maps keys to actions and turns
// navigation history into the screen on display.
package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kids-arcade/internal/catalog"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/i18n"
	"github.com/vovakirdan/kids-arcade/internal/nav"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/route"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

// AppOptions configures an AppModel.
type AppOptions struct {
	Registry   *registry.Registry // Defaults to registry.Default
	Store      *storage.Store     // Optional launch history
	Translator *i18n.Translator   // Defaults to English
	Theme      *Theme             // Defaults to DefaultTheme
	Logger     *log.Logger
	Config     core.RuntimeConfig
	Start      route.Route // Root of the history, defaults to route.Welcome
	Open       string      // Token dispatched once at startup, if set
}

// AppModel is the top-level model: it owns the router and swaps screens
// whenever the current navigation entry changes.
type AppModel struct {
	router  *nav.Router
	games   *catalog.Catalog
	store   *storage.Store
	tr      *i18n.Translator
	theme   Theme
	config  core.RuntimeConfig
	screen  tea.Model
	serial  uint64
	profile string
}

// NewAppModel creates the launcher host.
func NewAppModel(opts AppOptions) AppModel {
	tr := opts.Translator
	if tr == nil {
		tr = i18n.MustNew("en")
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	games := newLocalizedGames(tr)

	reg := opts.Registry
	if reg == nil {
		reg = registry.Default(games.title)
	}

	routerOpts := []nav.Option{
		nav.WithLogger(logger),
		nav.WithSession(opts.Config.SessionID),
	}
	if opts.Store != nil {
		routerOpts = append(routerOpts, nav.WithRecorder(opts.Store))
	}

	start := opts.Start
	if !start.Valid() {
		start = route.Welcome
	}

	cfg := opts.Config
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	m := AppModel{
		router: nav.NewRouter(reg, start, routerOpts...),
		games:  games.Catalog,
		store:  opts.Store,
		tr:     tr,
		theme:  theme,
		config: cfg,
	}
	if opts.Open != "" {
		m.router.Navigate(opts.Open)
	}
	m.screen = m.buildScreen()
	m.serial = m.router.Serial()

	return m
}

// Init initializes the current screen.
func (m AppModel) Init() tea.Cmd {
	return m.screen.Init()
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case BackMsg:
		m.router.Back()
		return m.syncScreen(nil)

	case ProfileMsg:
		m.profile = msg.Name
		if grid, ok := m.screen.(GridModel); ok {
			grid.SetGreeting(m.greeting())
			m.screen = grid
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m.syncScreen(cmd)
}

// syncScreen rebuilds the screen if the router moved since the last build.
func (m AppModel) syncScreen(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.router.Serial() == m.serial {
		return m, cmd
	}
	m.serial = m.router.Serial()
	m.screen = m.buildScreen()
	return m, tea.Batch(cmd, m.screen.Init())
}

// buildScreen creates the model for the current navigation entry.
func (m AppModel) buildScreen() tea.Model {
	entry := m.router.Current()
	w, h := m.config.ScreenW, m.config.ScreenH

	if !entry.Resolved {
		s := NewNotFoundModel(entry.Token, m.tr, m.theme)
		s.width, s.height = w, h
		return s
	}

	switch entry.Destination.Kind {
	case registry.KindHome:
		s := NewLandingModel(m.router, m.tr, m.theme)
		s.SetSize(w, h)
		return s

	case registry.KindMenu:
		s := NewGridModel(m.games, m.router, m.theme).
			WithTitle(m.tr.Translate("games_title", "Pick a game"))
		s.SetGreeting(m.greeting())
		s.SetSize(w, h)
		return s

	case registry.KindLogin:
		s := NewLoginModel(m.router, m.tr, m.theme, entry.Route == route.ParentLogin)
		s.width, s.height = w, h
		return s

	case registry.KindGame:
		item, ok := m.games.Find(entry.Route)
		if !ok {
			item = catalog.MenuItem{Label: entry.Destination.Title, Icon: catalog.Icon(entry.Token), Route: entry.Route}
		}
		var counter LaunchCounter
		if m.store != nil {
			counter = m.store
		}
		s := NewGameModel(item, m.tr, m.theme, counter)
		s.width, s.height = w, h
		return s
	}

	s := NewNotFoundModel(entry.Token, m.tr, m.theme)
	s.width, s.height = w, h
	return s
}

// localizedGames is the games catalog translated for one language.
type localizedGames struct {
	*catalog.Catalog
}

func newLocalizedGames(tr *i18n.Translator) localizedGames {
	return localizedGames{catalog.Games().Localize(tr)}
}

// title returns the localized label for a game route, or "" if unknown.
func (g localizedGames) title(rt route.Route) string {
	item, _ := g.Find(rt)
	return item.Label
}

func (m AppModel) greeting() string {
	if m.profile == "" {
		return ""
	}
	return m.tr.TranslateWith("games_greeting", "Hi, {{.Name}}!", map[string]any{"Name": m.profile})
}

// View renders the current screen.
func (m AppModel) View() string {
	return m.screen.View()
}

// Router returns the navigation router.
func (m AppModel) Router() *nav.Router {
	return m.router
}

// Screen returns the model currently on display.
func (m AppModel) Screen() tea.Model {
	return m.screen
}

// RunApp runs the launcher in the local terminal.
func RunApp(opts AppOptions) error {
	model := NewAppModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
