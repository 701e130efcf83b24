package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// SessionDeps are the shared services a session draws on.
type SessionDeps struct {
	Store      *storage.Store // may be nil
	Log        core.Logger
	ConfigPath string
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full flow for one remote player:
// menu -> game -> menu, with the scoreboard reachable from the menu.
type SessionModel struct {
	deps     SessionDeps
	prefs    core.PrefStore
	config   core.RuntimeConfig
	username string

	view       sessionView
	difficulty string
	menu       MenuModel
	scoreboard ScoreboardModel
	game       *Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps SessionDeps, cfg core.RuntimeConfig, username string) SessionModel {
	if deps.Log == nil {
		deps.Log = core.NopLogger{}
	}
	var prefs core.PrefStore = core.NewMemoryPrefs()
	if deps.Store != nil {
		prefs = core.PrefixPrefs{Prefix: username + "/", Store: deps.Store}
	}

	m := SessionModel{
		deps:     deps,
		prefs:    prefs,
		config:   cfg,
		username: username,
	}
	m.menu = NewMenuModel(m.scores(), cfg, "")
	return m
}

// scores returns the store as a ScoreSource, or a nil interface.
func (m SessionModel) scores() ScoreSource {
	if m.deps.Store == nil {
		return nil
	}
	return m.deps.Store
}

func (m SessionModel) board() BoardSource {
	if m.deps.Store == nil {
		return nil
	}
	return m.deps.Store
}

func (m SessionModel) runs() RunRecorder {
	if m.deps.Store == nil {
		return nil
	}
	return m.deps.Store
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode. The menu ends its own
// program on selection, so those commands are dropped here.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.view = viewScores
		m.scoreboard = NewScoreboardModel(m.board(), m.prefs, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		m.difficulty = m.menu.Difficulty()
		return m.startGame(m.menu.Selected().GameID)
	}

	return m, cmd
}

func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	toasts := NewToasts()
	env := core.Env{
		Prefs:      m.prefs,
		Sound:      core.NopSound{},
		Notifier:   toasts,
		Log:        m.deps.Log,
		ConfigPath: m.deps.ConfigPath,
		Difficulty: m.difficulty,
	}
	game, err := registry.Create(id, env)
	if err != nil {
		// The menu only lists registered modes
		m.deps.Log.Error("cannot create game", "id", id, "err", err)
		m.menu = NewMenuModel(m.scores(), m.config, m.difficulty)
		return m, nil
	}

	gm := NewModel(game, Options{
		Runtime: m.config,
		Runs:    m.runs(),
		Toasts:  toasts,
		Log:     m.deps.Log,
		Player:  m.username,
	})
	m.game = &gm
	m.view = viewGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if m.game.BackToMenu() {
		m.view = viewMenu
		m.game = nil
		m.menu = NewMenuModel(m.scores(), m.config, m.difficulty)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.view = viewMenu
		m.menu = NewMenuModel(m.scores(), m.config, m.difficulty)
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
