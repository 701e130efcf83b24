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

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

const boardRuns = 50

// BoardSource is the run history the scoreboard reads. *storage.Store
// implements it.
type BoardSource interface {
	ScoreSource
	RecentRuns(mode string, limit int) ([]storage.RunEntry, error)
	GetModeStats(mode string) (*storage.ModeStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Recent key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Recent, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Recent, k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("tab/→", "next mode")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev mode")),
		Recent: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "best/recent")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// modeBoard is everything shown for one mode.
type modeBoard struct {
	runs    []storage.RunEntry
	stats   *storage.ModeStats
	profile skyhop.Profile
	err     error
}

// ScoreboardModel shows run history, aggregate stats and profile progress
// for each mode.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	cursor int
	store  BoardSource   // may be nil
	prefs  core.PrefStore // may be nil
	recent bool
	board  modeBoard

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over store. Profiles are read
// from prefs, which is scoped to the viewing player.
func NewScoreboardModel(store BoardSource, prefs core.PrefStore, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		prefs:  prefs,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = newRunTable(height)
	m.load()
	return m
}

func newRunTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Lvl", Width: 4},
			{Title: "Jumps", Width: 6},
			{Title: "Cleared", Width: 8},
			{Title: "Time", Width: 7},
			{Title: "Player", Width: 10},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		// title, tabs, stats, profile, detail and help around the table
		table.WithHeight(max(height-14, 3)),
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

func (m ScoreboardModel) mode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.cursor].ID
}

// load refreshes the board for the selected mode.
func (m *ScoreboardModel) load() {
	mode := m.mode()
	b := modeBoard{}
	if m.prefs != nil && mode != "" {
		b.profile = skyhop.LoadProfile(m.prefs, mode)
	}
	if m.store != nil && mode != "" {
		if m.recent {
			b.runs, b.err = m.store.RecentRuns(mode, boardRuns)
		} else {
			b.runs, b.err = m.store.TopScores(mode, boardRuns)
		}
		if b.err == nil {
			b.stats, b.err = m.store.GetModeStats(mode)
		}
	}
	m.board = b

	rows := make([]table.Row, len(b.runs))
	for i, r := range b.runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.Score),
			fmt.Sprint(r.Level),
			fmt.Sprint(r.Jumps),
			fmt.Sprint(r.ObstaclesCleared),
			r.Duration.Round(time.Second).String(),
			player,
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.Recent):
			m.recent = !m.recent
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(m.height-14, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.modes)) % len(m.modes)
	m.load()
}

var (
	boardTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTab    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardValue  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	boardFrame  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "BEST RUNS"
	if m.recent {
		title = "RECENT RUNS"
	}

	sections := []string{
		centerText(boardTitle.Render(title), m.width),
		centerText(m.tabs(), m.width),
		m.statsLine(),
		m.profileLine(),
		boardFrame.Render(m.runsView()),
		m.selectedLine(),
		boardLabel.Render(m.help.View(m.keys)),
	}
	return strings.Join(sections, "\n")
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.cursor {
			tabs[i] = boardActive.Render(g.Title)
		} else {
			tabs[i] = boardTab.Render(g.Title)
		}
	}
	return strings.Join(tabs, " ")
}

func stat(label string, value any) string {
	return boardLabel.Render(label+" ") + boardValue.Render(fmt.Sprint(value))
}

// statsLine summarizes every recorded run of the mode.
func (m ScoreboardModel) statsLine() string {
	st := m.board.stats
	if st == nil || st.RunsCount == 0 {
		return boardLabel.Render("No runs recorded yet.")
	}
	parts := []string{
		stat("Runs", st.RunsCount),
		stat("Best", st.HighScore),
		stat("Avg", fmt.Sprintf("%.1f", st.AvgScore)),
		stat("Jumps", st.TotalJumps),
		stat("Played", st.TotalTime.Round(time.Second)),
	}
	return strings.Join(parts, "   ")
}

// profileLine shows the viewer's progress and achievement icons.
func (m ScoreboardModel) profileLine() string {
	p := m.board.profile
	var icons strings.Builder
	for _, a := range skyhop.Achievements {
		if p.Unlocked(a.ID) {
			icons.WriteString(a.Icon)
		} else {
			icons.WriteString("·")
		}
	}
	parts := []string{
		stat("High", p.HighScore),
		stat("Games", p.GamesPlayed),
		stat("Cleared", p.ObstaclesCleared),
		stat("Achievements", fmt.Sprintf("%d/%d", len(p.Achievements), len(skyhop.Achievements))),
		icons.String(),
	}
	return strings.Join(parts, "   ")
}

func (m ScoreboardModel) runsView() string {
	switch {
	case m.board.err != nil:
		return boardLabel.Render("Could not load runs: " + m.board.err.Error())
	case len(m.board.runs) == 0:
		return boardLabel.Italic(true).Padding(1, 2).Render("Finish a run to set a high score!")
	}
	return m.table.View()
}

// selectedLine details the highlighted run.
func (m ScoreboardModel) selectedLine() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.board.runs) {
		return ""
	}
	r := m.board.runs[i]
	id := r.RunID
	if len(id) > 8 {
		id = id[:8]
	}
	return boardLabel.Render(fmt.Sprintf("run %s  %d power-ups  %s", id, r.PowerUpsCollected, r.CreatedAt.Local().Format(time.DateTime)))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store BoardSource, prefs core.PrefStore, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, prefs, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
