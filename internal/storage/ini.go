package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/ini.v1"

	"github.com/vovakirdan/skyhop/internal/core"
)

// INIStore is a preference store backed by a hand-editable INI file.
// A key "<mode>.<name>" lives in section [<mode>] as <name>; the file is
// rewritten on every Save.
type INIStore struct {
	mu   sync.Mutex
	path string
	file *ini.File
}

var _ core.PrefStore = (*INIStore)(nil)

// OpenINI loads path, starting empty if the file does not exist yet.
func OpenINI(path string) (*INIStore, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	f, err := ini.Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			if _, statErr := os.Stat(path); statErr == nil {
				return nil, fmt.Errorf("storage: cannot parse %s: %w", path, err)
			}
		}
		f = ini.Empty()
	}
	return &INIStore{path: path, file: f}, nil
}

// splitKey maps "<mode>.<name>" to a section and key name.
func splitKey(key string) (section, name string) {
	if i := strings.LastIndex(key, "."); i > 0 {
		return key[:i], key[i+1:]
	}
	return ini.DefaultSection, key
}

// Load returns a preference value.
func (s *INIStore) Load(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	section, name := splitKey(key)
	sec, err := s.file.GetSection(section)
	if err != nil || !sec.HasKey(name) {
		return "", false
	}
	return sec.Key(name).String(), true
}

// Save sets a preference and writes the file.
func (s *INIStore) Save(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	section, name := splitKey(key)
	s.file.Section(section).Key(name).SetValue(value)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", s.path, err)
	}
	if err := s.file.SaveTo(s.path); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", s.path, err)
	}
	return nil
}

// Path returns the backing file path.
func (s *INIStore) Path() string {
	return s.path
}
