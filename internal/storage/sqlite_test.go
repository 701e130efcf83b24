package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/skyhop/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStorePrefs(t *testing.T) {
	store := openTestStore(t)

	if _, ok := store.Load("skyhop.highScore"); ok {
		t.Error("missing key should not load")
	}

	if err := store.Save("skyhop.highScore", "120"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Save("skyhop.highScore", "340"); err != nil {
		t.Fatalf("Save() overwrite failed: %v", err)
	}

	v, ok := store.Load("skyhop.highScore")
	if !ok || v != "340" {
		t.Errorf("Load() = (%q, %v), expected (\"340\", true)", v, ok)
	}
}

func TestStorePrefsSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	prefixed := core.PrefixPrefs{Prefix: "alice/", Store: store}
	if err := prefixed.Save("classic.theme", "neon"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if v, _ := store.Load("alice/classic.theme"); v != "neon" {
		t.Errorf("after reopen theme = %q, expected neon", v)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveRun(RunRecord{
			Mode:     "skyhop",
			Summary:  core.RunSummary{Score: score, Level: 1, Jumps: 4},
			Duration: 1500 * time.Millisecond,
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// Different mode
	if _, err := store.SaveRun(RunRecord{Mode: "classic", Summary: core.RunSummary{Score: 500}}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("skyhop", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Duration != 1500*time.Millisecond || scores[0].Jumps != 4 {
		t.Errorf("run fields not round-tripped: %+v", scores[0])
	}

	limited, err := store.TopScores("skyhop", 2)
	if err != nil || len(limited) != 2 {
		t.Errorf("TopScores(limit=2) = %d entries, err %v", len(limited), err)
	}

	high, err := store.HighScore("classic")
	if err != nil || high != 500 {
		t.Errorf("HighScore(classic) = %d, %v", high, err)
	}
	none, err := store.HighScore("unknown")
	if err != nil || none != 0 {
		t.Errorf("HighScore(unknown) = %d, %v", none, err)
	}
}

func TestStoreRunIDs(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{Mode: "skyhop", Player: "alice", Summary: core.RunSummary{Score: 42}})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run id %q is not a uuid: %v", id, err)
	}

	run, err := store.RunByID(id)
	if err != nil || run == nil {
		t.Fatalf("RunByID() = %v, %v", run, err)
	}
	if run.Player != "alice" || run.Score != 42 {
		t.Errorf("RunByID() = %+v", run)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v", missing, err)
	}
}

func TestStoreRecentRunsAndClear(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		_, _ = store.SaveRun(RunRecord{Mode: "skyhop", Summary: core.RunSummary{Score: i * 10}})
	}

	recent, err := store.RecentRuns("skyhop", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 30 || recent[1].Score != 20 {
		t.Errorf("RecentRuns() = %+v", recent)
	}

	_ = store.Save("skyhop.highScore", "30")
	if err := store.ClearScores("skyhop"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if left, _ := store.TopScores("skyhop", 10); len(left) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(left))
	}
	if v, _ := store.Load("skyhop.highScore"); v != "30" {
		t.Error("ClearScores must keep preferences")
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetModeStats("skyhop")
	if err != nil {
		t.Fatalf("GetModeStats() on empty: %v", err)
	}
	if empty.RunsCount != 0 || empty.HighScore != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	_, _ = store.SaveRun(RunRecord{Mode: "skyhop", Summary: core.RunSummary{Score: 100, Jumps: 3}, Duration: time.Second})
	_, _ = store.SaveRun(RunRecord{Mode: "skyhop", Summary: core.RunSummary{Score: 300, Jumps: 7}, Duration: 2 * time.Second})

	stats, err := store.GetModeStats("skyhop")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalJumps != 10 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalTime != 3*time.Second {
		t.Errorf("TotalTime = %v, expected 3s", stats.TotalTime)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.skyhop/skyhop.db")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, home) {
		t.Errorf("ExpandHome = %q, expected prefix %q", got, home)
	}
	if got, _ := ExpandHome("/abs/path.db"); got != "/abs/path.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
