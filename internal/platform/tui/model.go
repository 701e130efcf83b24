package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// RunRecorder persists finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(r storage.RunRecord) (string, error)
}

// resizer is implemented by games that can adapt to a new terminal size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// Options configures a game Model.
type Options struct {
	Runtime core.RuntimeConfig
	Runs    RunRecorder // optional
	Toasts  *Toasts     // must be the game's notifier to show toasts
	Log     core.Logger
	Player  string

	// ScreenshotDir defaults to ~/.skyhop/screenshots.
	ScreenshotDir string

	// Standalone makes the menu key quit the program so the caller can
	// show the menu again. Embedded models only raise BackToMenu.
	Standalone bool
}

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	runs       RunRecorder
	toasts     *Toasts
	log        core.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState

	visible []toast

	player        string
	screenshotDir string
	standalone    bool
	fullscreen    bool
	quitting      bool
	backToMenu    bool
	lastRunID     string
	failure       string // set when the loop stops on a panic
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	log := opts.Log
	if log == nil {
		log = core.NopLogger{}
	}
	toasts := opts.Toasts
	if toasts == nil {
		toasts = NewToasts()
	}

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		runs:          opts.Runs,
		toasts:        toasts,
		log:           log,
		config:        cfg,
		keys:          DefaultKeyMap(),
		inputFrame:    core.NewInputFrame(),
		player:        opts.Player,
		screenshotDir: opts.ScreenshotDir,
		standalone:    opts.Standalone,
		fullscreen:    true,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case toastExpiredMsg:
		m.visible = removeToast(m.visible, msg.id)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Host actions are handled here;
// everything else is queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionFullscreen:
		m.fullscreen = !m.fullscreen
		if m.fullscreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen
	case core.ActionMenu:
		if m.gameState.Running() {
			// Esc pauses a live run instead of abandoning it
			m.inputFrame.Set(core.ActionPause)
			return m, nil
		}
		if m.gameState.Paused && !m.gameState.GameOver && m.failure == "" {
			m.abandonRun()
		}
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks. A panic inside the game stops
// the loop and leaves a banner on screen instead of killing the program.
func (m Model) handleTick() (next tea.Model, cmd tea.Cmd) {
	if m.failure != "" || m.backToMenu {
		return m, nil
	}

	defer func() {
		if r := recover(); r != nil {
			m.failure = fmt.Sprint(r)
			m.log.Error("game loop stopped", "game", m.game.ID(), "panic", r)
			next, cmd = m, nil
		}
	}()

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.RunEnded {
		m.saveRun(result.Run)
	}

	cmds := m.showToasts()
	cmds = append(cmds, tickCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// abandonRun ends a paused run so it is recorded before the model leaves.
func (m *Model) abandonRun() {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("could not end run", "game", m.game.ID(), "panic", r)
		}
	}()
	in := core.NewInputFrame()
	in.Set(core.ActionMenu)
	result := m.game.Step(in)
	m.gameState = result.State
	if result.RunEnded {
		m.saveRun(result.Run)
	}
}

// saveRun records a finished run. Failures are logged and play continues.
func (m *Model) saveRun(run core.RunSummary) {
	if m.runs == nil {
		return
	}
	id, err := m.runs.SaveRun(storage.RunRecord{
		Mode:     m.game.ID(),
		Player:   m.player,
		Summary:  run,
		Duration: time.Duration(run.Ticks) * time.Second / time.Duration(m.config.TickRate),
	})
	if err != nil {
		m.log.Warn("could not save run", "game", m.game.ID(), "err", err)
		return
	}
	m.lastRunID = id
	m.log.Debug("run saved", "game", m.game.ID(), "run", id, "score", run.Score)
}

// showToasts moves drained notifications onto the screen and schedules
// their expiry.
func (m *Model) showToasts() []tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range m.toasts.Drain() {
		id := nextToastID()
		m.visible = append(m.visible, toast{id: id, n: n})
		cmds = append(cmds, expireToast(id))
	}
	if extra := len(m.visible) - maxToasts; extra > 0 {
		m.visible = append([]toast(nil), m.visible[extra:]...)
	}
	return cmds
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() error {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".skyhop", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.failure != "" {
		return failureBanner(m.failure, m.config.ScreenW, m.config.ScreenH)
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	drawToasts(m.screen, m.visible)
	return RenderScreen(m.screen)
}

func failureBanner(reason string, w, h int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("9")).
		Padding(1, 3).
		Render("The game stopped unexpectedly.\n\n" + truncate(reason, 60) + "\n\nPress q to quit.")
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Failed returns the panic message if the game loop stopped.
func (m Model) Failed() string {
	return m.failure
}

// LastRunID returns the id of the most recently saved run.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Result is how a standalone game session ended.
type Result struct {
	BackToMenu bool
	Runtime    core.RuntimeConfig
}

// Run starts a Bubble Tea program for game.
func Run(game registry.Game, opts Options) (Result, error) {
	opts.Standalone = true
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Result{Runtime: opts.Runtime}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return Result{Runtime: opts.Runtime}, nil
	}
	return Result{BackToMenu: fm.backToMenu, Runtime: fm.config}, nil
}
