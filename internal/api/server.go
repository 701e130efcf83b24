// Package api serves read-only run statistics over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Store is the data the API reads. *storage.Store implements it.
type Store interface {
	core.PrefStore
	TopScores(mode string, limit int) ([]storage.RunEntry, error)
	RunByID(runID string) (*storage.RunEntry, error)
	GetModeStats(mode string) (*storage.ModeStats, error)
}

// Server handles HTTP requests.
type Server struct {
	store     Store
	log       core.Logger
	startTime time.Time
}

// NewServer creates an API server over store.
func NewServer(store Store, log core.Logger) *Server {
	if log == nil {
		log = core.NopLogger{}
	}
	return &Server{store: store, log: log, startTime: time.Now()}
}

// Routes sets up the HTTP routes with middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/modes", s.handleModes)
		r.Route("/modes/{mode}", func(r chi.Router) {
			r.Use(requireMode)
			r.Get("/scores", s.handleScores)
			r.Get("/stats", s.handleStats)
			r.Get("/profile", s.handleProfile)
		})
		r.Get("/runs/{id}", s.handleRun)
	})

	return r
}

// logRequests logs each request at debug level, failures at warn.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		kv := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"dur", time.Since(start),
			"req", middleware.GetReqID(r.Context()),
		}
		if ww.Status() >= http.StatusInternalServerError {
			s.log.Warn("request failed", kv...)
			return
		}
		s.log.Debug("request", kv...)
	})
}

// requireMode rejects unregistered modes with 404.
func requireMode(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mode := chi.URLParam(r, "mode")
		if !registry.Exists(mode) {
			writeError(w, r, http.StatusNotFound, "unknown mode "+strconv.Quote(mode))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ModeInfo describes a registered mode.
type ModeInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// RunView is the JSON form of a recorded run.
type RunView struct {
	RunID             string    `json:"run_id"`
	Mode              string    `json:"mode"`
	Player            string    `json:"player,omitempty"`
	Score             int       `json:"score"`
	Level             int       `json:"level"`
	Jumps             int       `json:"jumps"`
	ObstaclesCleared  int       `json:"obstacles_cleared"`
	PowerUpsCollected int       `json:"power_ups_collected"`
	DurationMS        int64     `json:"duration_ms"`
	CreatedAt         time.Time `json:"created_at"`
}

func runView(e storage.RunEntry) RunView {
	return RunView{
		RunID:             e.RunID,
		Mode:              e.Mode,
		Player:            e.Player,
		Score:             e.Score,
		Level:             e.Level,
		Jumps:             e.Jumps,
		ObstaclesCleared:  e.ObstaclesCleared,
		PowerUpsCollected: e.PowerUpsCollected,
		DurationMS:        e.Duration.Milliseconds(),
		CreatedAt:         e.CreatedAt,
	}
}

// StatsView aggregates a mode's runs.
type StatsView struct {
	Mode       string    `json:"mode"`
	Runs       int       `json:"runs"`
	HighScore  int       `json:"high_score"`
	AvgScore   float64   `json:"avg_score"`
	TotalJumps int64     `json:"total_jumps"`
	TotalMS    int64     `json:"total_time_ms"`
	LastPlayed time.Time `json:"last_played,omitempty"`
}

// AchievementView is an unlocked achievement.
type AchievementView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProfileView is a player's persisted progress for a mode.
type ProfileView struct {
	Mode             string            `json:"mode"`
	Player           string            `json:"player,omitempty"`
	HighScore        int               `json:"high_score"`
	Theme            string            `json:"theme,omitempty"`
	SoundEnabled     bool              `json:"sound_enabled"`
	TotalJumps       int               `json:"total_jumps"`
	ObstaclesCleared int               `json:"obstacles_cleared"`
	GamesPlayed      int               `json:"games_played"`
	Achievements     []AchievementView `json:"achievements"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleModes(w http.ResponseWriter, r *http.Request) {
	games := registry.List()
	out := make([]ModeInfo, 0, len(games))
	for _, g := range games {
		out = append(out, ModeInfo{ID: g.ID, Title: g.Title})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := s.store.TopScores(chi.URLParam(r, "mode"), limit)
	if err != nil {
		s.log.Error("top scores query failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "could not load scores")
		return
	}
	out := make([]RunView, 0, len(entries))
	for _, e := range entries {
		out = append(out, runView(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.GetModeStats(chi.URLParam(r, "mode"))
	if err != nil {
		s.log.Error("stats query failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "could not load stats")
		return
	}
	writeJSON(w, http.StatusOK, StatsView{
		Mode:       st.Mode,
		Runs:       st.RunsCount,
		HighScore:  st.HighScore,
		AvgScore:   st.AvgScore,
		TotalJumps: st.TotalJumps,
		TotalMS:    st.TotalTime.Milliseconds(),
		LastPlayed: st.LastPlayed,
	})
}

// handleProfile reads a profile; ?player= selects an SSH player's
// namespace, otherwise the local profile is returned.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	mode := chi.URLParam(r, "mode")
	player := r.URL.Query().Get("player")

	var prefs core.PrefStore = s.store
	if player != "" {
		prefs = core.PrefixPrefs{Prefix: player + "/", Store: s.store}
	}
	p := skyhop.LoadProfile(prefs, mode)

	view := ProfileView{
		Mode:             mode,
		Player:           player,
		HighScore:        p.HighScore,
		Theme:            p.Theme,
		SoundEnabled:     p.SoundEnabled,
		TotalJumps:       p.TotalJumps,
		ObstaclesCleared: p.ObstaclesCleared,
		GamesPlayed:      p.GamesPlayed,
		Achievements:     []AchievementView{},
	}
	for _, id := range p.Achievements {
		a, ok := skyhop.AchievementByID(id)
		if !ok {
			continue
		}
		view.Achievements = append(view.Achievements, AchievementView{ID: a.ID, Name: a.Name, Description: a.Description})
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.RunByID(chi.URLParam(r, "id"))
	if err != nil {
		s.log.Error("run query failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "could not load run")
		return
	}
	if run == nil {
		writeError(w, r, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, runView(*run))
}

var errBadLimit = errors.New("limit must be an integer between 1 and 100")

func parseLimit(v string) (int, error) {
	if v == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > maxLimit {
		return 0, errBadLimit
	}
	return n, nil
}

// ErrorView is the JSON error body.
type ErrorView struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, ErrorView{Error: msg, RequestID: middleware.GetReqID(r.Context())})
}

// writeJSON writes a JSON response with proper headers.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// ListenAndServe serves the API on addr until the server fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info("api listening", "addr", addr)
	return srv.ListenAndServe()
}
