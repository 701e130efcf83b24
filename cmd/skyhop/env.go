package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/audio"
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// newLogger builds the process logger. While a TUI owns the terminal the
// log goes to --log-file; otherwise to stderr.
func newLogger(toFile bool) (*log.Logger, io.Closer) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if toFile {
		w = io.Discard
		if f, ferr := openLogFile(flagLogFile); ferr != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", ferr)
		} else {
			w, closer = f, f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "skyhop",
		Level:           level,
	})
	return logger, closer
}

func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// openStore opens the database. A failure is logged and play continues
// without run history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// prefsFor picks the preference backend: the INI file when requested,
// then the database, then memory.
func prefsFor(store *storage.Store, logger *log.Logger) core.PrefStore {
	if flagPrefsFile != "" {
		ini, err := storage.OpenINI(flagPrefsFile)
		if err == nil {
			return ini
		}
		logger.Warn("could not open prefs file", "path", flagPrefsFile, "err", err)
	}
	if store != nil {
		return store
	}
	return core.NewMemoryPrefs()
}

// soundFor opens the speaker unless muted.
func soundFor(logger *log.Logger) core.SoundSink {
	if flagMute {
		return core.NopSound{}
	}
	vol := core.ClampF(flagVolume, 0, 1)
	return audio.New(audio.Config{Volume: vol, MusicVolume: vol / 2}, logger)
}

func closeSound(s core.SoundSink) {
	s.StopMusic()
	if c, ok := s.(interface{ Close() }); ok {
		c.Close()
	}
}

// checkFlags validates flags that would otherwise fail silently.
func checkFlags() error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	return nil
}

// runtimeConfig sizes the field to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// session bundles the services shared by every game started in one
// process.
type session struct {
	log   *log.Logger
	store *storage.Store
	prefs core.PrefStore
	sound core.SoundSink
	close func()
}

func newSession() *session {
	logger, logCloser := newLogger(true)
	store := openStore(logger)
	s := &session{
		log:   logger,
		store: store,
		prefs: prefsFor(store, logger),
		sound: soundFor(logger),
	}
	s.close = func() {
		closeSound(s.sound)
		if store != nil {
			store.Close()
		}
		logCloser.Close()
	}
	return s
}

// env wires a new game to the session's services.
func (s *session) env(toasts *tui.Toasts, difficulty string) core.Env {
	return core.Env{
		Prefs:      s.prefs,
		Sound:      s.sound,
		Notifier:   toasts,
		Log:        s.log,
		ConfigPath: flagConfig,
		Difficulty: difficulty,
		Theme:      flagTheme,
	}
}

// runs returns the store as a recorder, or a nil interface without one.
func (s *session) runs() tui.RunRecorder {
	if s.store == nil {
		return nil
	}
	return s.store
}

func (s *session) scores() tui.ScoreSource {
	if s.store == nil {
		return nil
	}
	return s.store
}

func (s *session) board() tui.BoardSource {
	if s.store == nil {
		return nil
	}
	return s.store
}
