package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

func init() {
	registry.Register("stub", func(env core.Env) registry.Game {
		return &stubGame{notifier: env.Notifier}
	})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "hard")
	if m.Difficulty() != "hard" {
		t.Fatalf("Difficulty() = %q, expected hard", m.Difficulty())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Difficulty() != "fixed" {
		t.Errorf("after right = %q, expected fixed", m.Difficulty())
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Difficulty() != "" || m.difficultyLabel() != "default" {
		t.Errorf("cycle should wrap to the mode default, got %q", m.Difficulty())
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	if m.Difficulty() != "fixed" {
		t.Errorf("after left = %q, expected fixed", m.Difficulty())
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "menu.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.RunRecord{Mode: "stub", Summary: core.RunSummary{Score: 77}}); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, core.DefaultConfig(), "")
	for _, item := range m.items {
		if item.GameID == "stub" && item.Best != 77 {
			t.Errorf("best = %d, expected 77", item.Best)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m := NewSessionModel(SessionDeps{Store: store}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "alice")

	// Select the stub mode
	for m.menu.items[m.menu.cursor].GameID != "stub" {
		m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.game == nil {
		t.Fatal("enter should start the game")
	}

	// End a run; it is recorded under the ssh user
	m = sessionUpdate(t, m, keyMsg(" "))
	m = sessionUpdate(t, m, TickMsg{})
	runs, err := store.TopScores("stub", 10)
	if err != nil || len(runs) != 1 || runs[0].Player != "alice" {
		t.Fatalf("runs = %+v, %v", runs, err)
	}

	// Game over: back to the menu
	m = sessionUpdate(t, m, keyMsg("b"))
	if m.view != viewMenu || m.game != nil {
		t.Fatal("b after game over should return to the menu")
	}

	// Scoreboard and back
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatal("tab should open the scoreboard")
	}
	m = sessionUpdate(t, m, keyMsg("esc"))
	if m.view != viewMenu {
		t.Fatal("esc should leave the scoreboard")
	}

	m = sessionUpdate(t, m, keyMsg("q"))
	if !m.quitting || m.View() != "" {
		t.Error("q should end the session")
	}
}

func TestSessionPrefsAreScopedToUser(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m := NewSessionModel(SessionDeps{Store: store}, core.DefaultConfig(), "bob")
	if err := m.prefs.Save("skyhop.theme", "neon"); err != nil {
		t.Fatal(err)
	}
	if v, ok := store.Load("bob/skyhop.theme"); !ok || v != "neon" {
		t.Errorf("stored under wrong key: %q, %v", v, ok)
	}

	// No database: preferences live in memory
	mem := NewSessionModel(SessionDeps{}, core.DefaultConfig(), "carol")
	if _, ok := mem.prefs.(*core.MemoryPrefs); !ok {
		t.Errorf("prefs = %T, expected in-memory", mem.prefs)
	}
}
