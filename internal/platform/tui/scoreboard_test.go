package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/storage"
)

func boardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sb
}

func selectMode(t *testing.T, m ScoreboardModel, mode string) ScoreboardModel {
	t.Helper()
	for i := 0; i < len(m.modes); i++ {
		if m.mode() == mode {
			return m
		}
		m = boardUpdate(t, m, keyMsg("tab"))
	}
	t.Fatalf("mode %q not listed", mode)
	return m
}

func TestScoreboardShowsStatsAndProfile(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, score := range []int{120, 480} {
		_, err := store.SaveRun(storage.RunRecord{
			Mode:     config.ModeSkyhop,
			Player:   "alice",
			Summary:  core.RunSummary{Score: score, Level: 2, Jumps: 7, ObstaclesCleared: 4, PowerUpsCollected: 1},
			Duration: 30 * time.Second,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	_ = store.Save("skyhop.highScore", "480")
	_ = store.Save("skyhop.gamesPlayed", "2")
	_ = store.Save("skyhop.achievements", `["first_jump","century"]`)

	m := selectMode(t, NewScoreboardModel(store, store, 100, 40), config.ModeSkyhop)
	if len(m.board.runs) != 2 || m.board.runs[0].Score != 480 {
		t.Fatalf("runs = %+v", m.board.runs)
	}

	view := m.View()
	for _, want := range []string{"BEST RUNS", "Runs 2", "Best 480", "Avg 300.0", "Jumps 14", "Games 2", "Achievements 2/"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.Contains(m.selectedLine(), "1 power-ups") {
		t.Errorf("selected line = %q", m.selectedLine())
	}
}

func TestScoreboardRecentToggle(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "recent.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, score := range []int{90, 10} {
		if _, err := store.SaveRun(storage.RunRecord{Mode: config.ModeClassic, Summary: core.RunSummary{Score: score}}); err != nil {
			t.Fatal(err)
		}
	}

	m := selectMode(t, NewScoreboardModel(store, store, 80, 30), config.ModeClassic)
	if m.board.runs[0].Score != 90 {
		t.Fatalf("best first = %d, expected 90", m.board.runs[0].Score)
	}

	m = boardUpdate(t, m, keyMsg("r"))
	if !m.recent || m.board.runs[0].Score != 10 {
		t.Errorf("recent first = %d, expected the latest run", m.board.runs[0].Score)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("title should switch to recent")
	}
}

func TestScoreboardModeSwitchWraps(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 80, 24)
	if len(m.modes) < 2 {
		t.Fatalf("modes = %+v, expected skyhop and classic", m.modes)
	}
	first := m.mode()
	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.mode() != m.modes[len(m.modes)-1].ID {
		t.Errorf("left from the first mode = %q, expected the last", m.mode())
	}
	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.mode() != first {
		t.Errorf("right should wrap back to %q, got %q", first, m.mode())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 80, 24)
	view := m.View()
	if !strings.Contains(view, "No runs recorded yet.") || !strings.Contains(view, "Finish a run") {
		t.Error("empty board should say so")
	}
	if m.selectedLine() != "" {
		t.Error("no run should be selected")
	}

	m = boardUpdate(t, m, keyMsg("b"))
	if !m.IsGoingBack() || m.View() != "" {
		t.Error("b should go back")
	}
}
