package core

import (
	"sort"
	"sync"
)

// PrefStore is a string key-value store for values that outlive a run:
// high score, theme, sound flag, cumulative statistics and unlocked achievements.
type PrefStore interface {
	Load(key string) (string, bool)
	Save(key, value string) error
}

// SoundEvent names a sound the game wants played.
type SoundEvent string

const (
	SoundJump        SoundEvent = "jump"
	SoundCollect     SoundEvent = "collect"
	SoundCollision   SoundEvent = "collision"
	SoundAchievement SoundEvent = "achievement"
)

// SoundSink plays sounds. Implementations must not block the caller and
// must swallow their own failures.
type SoundSink interface {
	Play(ev SoundEvent)
	StartMusic()
	StopMusic()
}

// NotificationKind classifies a notification for display.
type NotificationKind int

const (
	NotifyAchievement NotificationKind = iota
	NotifyHighScore
	NotifyInfo
)

// Notification is a typed UI event emitted by a game.
type Notification struct {
	Kind  NotificationKind
	Title string
	Body  string
}

// Notifier receives notifications. Display and removal are up to the host.
type Notifier interface {
	Notify(n Notification)
}

// Logger is the subset of charmbracelet/log's Logger that games use.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}

// Env carries the host-provided ports into a game.
// Zero-valued fields are replaced with no-op implementations by WithDefaults.
type Env struct {
	Prefs    PrefStore
	Sound    SoundSink
	Notifier Notifier
	Log      Logger

	ConfigPath string // optional YAML config override
	Difficulty string // difficulty preset name, empty means config default
	Theme      string // theme override, empty means the persisted theme
}

// WithDefaults returns a copy of e with nil ports filled in.
func (e Env) WithDefaults() Env {
	if e.Prefs == nil {
		e.Prefs = NewMemoryPrefs()
	}
	if e.Sound == nil {
		e.Sound = NopSound{}
	}
	if e.Notifier == nil {
		e.Notifier = NopNotifier{}
	}
	if e.Log == nil {
		e.Log = NopLogger{}
	}
	return e
}

// NopSound discards all sound requests.
type NopSound struct{}

func (NopSound) Play(SoundEvent) {}
func (NopSound) StartMusic()     {}
func (NopSound) StopMusic()      {}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(Notification) {}

// NopLogger discards log output.
type NopLogger struct{}

func (NopLogger) Debug(any, ...any) {}
func (NopLogger) Info(any, ...any)  {}
func (NopLogger) Warn(any, ...any)  {}
func (NopLogger) Error(any, ...any) {}

// MemoryPrefs is an in-memory PrefStore, safe for concurrent use.
type MemoryPrefs struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryPrefs creates an empty in-memory store.
func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{values: make(map[string]string)}
}

// Load returns the value stored under key.
func (m *MemoryPrefs) Load(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Save stores value under key.
func (m *MemoryPrefs) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Keys returns all stored keys in sorted order.
func (m *MemoryPrefs) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PrefixPrefs namespaces another store, e.g. per SSH user.
type PrefixPrefs struct {
	Prefix string
	Store  PrefStore
}

func (p PrefixPrefs) Load(key string) (string, bool) {
	return p.Store.Load(p.Prefix + key)
}

func (p PrefixPrefs) Save(key, value string) error {
	return p.Store.Save(p.Prefix+key, value)
}
