// Package storage provides SQLite-based persistence for preferences and
// run history, plus an INI-file preference store.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/skyhop/internal/core"
)

// Store manages the SQLite database connection.
// It implements core.PrefStore on the prefs table.
type Store struct {
	db *sql.DB
}

var _ core.PrefStore = (*Store)(nil)

// RunRecord is a finished run to be stored.
type RunRecord struct {
	Mode     string
	Player   string // empty for local play
	Summary  core.RunSummary
	Duration time.Duration
}

// RunEntry is a stored run.
type RunEntry struct {
	RunID             string
	Mode              string
	Player            string
	Score             int
	Level             int
	Jumps             int
	ObstaclesCleared  int
	PowerUpsCollected int
	Duration          time.Duration
	CreatedAt         time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions and the API share one file; serialize writers
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			jumps INTEGER NOT NULL DEFAULT 0,
			obstacles INTEGER NOT NULL DEFAULT 0,
			powerups INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns a preference value. Query errors read as missing.
func (s *Store) Load(key string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Save upserts a preference value.
func (s *Store) Save(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save pref %s: %w", key, err)
	}
	return nil
}

// SaveRun records a finished run and returns its generated run id.
func (s *Store) SaveRun(rec RunRecord) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, mode, player, score, level, jumps, obstacles, powerups, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		rec.Mode,
		rec.Player,
		rec.Summary.Score,
		rec.Summary.Level,
		rec.Summary.Jumps,
		rec.Summary.ObstaclesCleared,
		rec.Summary.PowerUpsCollected,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return runID, nil
}

// TopScores retrieves the best N runs for a mode, highest score first.
func (s *Store) TopScores(mode string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`WHERE mode = ? ORDER BY score DESC, created_at ASC LIMIT ?`,
		mode, limit,
	)
}

// RecentRuns retrieves the latest N runs for a mode.
func (s *Store) RecentRuns(mode string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(`WHERE mode = ? ORDER BY id DESC LIMIT ?`, mode, limit)
}

// RunByID retrieves a single run. Returns nil, nil if it doesn't exist.
func (s *Store) RunByID(runID string) (*RunEntry, error) {
	runs, err := s.queryRuns(`WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func (s *Store) queryRuns(where string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, mode, player, score, level, jumps, obstacles, powerups, duration_ms, created_at
		 FROM runs `+where,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.RunID, &e.Mode, &e.Player, &e.Score, &e.Level, &e.Jumps,
			&e.ObstaclesCleared, &e.PowerUpsCollected, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score for a mode.
// Returns 0 if no runs exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all runs for a mode. Preferences are untouched.
func (s *Store) ClearScores(mode string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// ModeStats contains aggregated run statistics for a mode.
type ModeStats struct {
	Mode       string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	TotalJumps int64
	TotalTime  time.Duration
	LastPlayed time.Time
}

// GetModeStats retrieves aggregated statistics for a mode.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}
	var totalMS int64
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(jumps), 0), COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.TotalJumps, &totalMS, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.TotalTime = time.Duration(totalMS) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
