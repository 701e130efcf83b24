package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestINIStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "skyhop.ini")

	s, err := OpenINI(path)
	if err != nil {
		t.Fatalf("OpenINI() failed: %v", err)
	}
	if _, ok := s.Load("skyhop.highScore"); ok {
		t.Error("new store should be empty")
	}

	if err := s.Save("skyhop.highScore", "250"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := s.Save("skyhop.achievements", `["first_jump","century"]`); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := s.Save("classic.theme", "mono"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "[skyhop]") || !strings.Contains(text, "[classic]") {
		t.Errorf("expected one section per mode, got:\n%s", text)
	}

	reopened, err := OpenINI(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	tests := map[string]string{
		"skyhop.highScore":    "250",
		"skyhop.achievements": `["first_jump","century"]`,
		"classic.theme":       "mono",
	}
	for key, want := range tests {
		if got, ok := reopened.Load(key); !ok || got != want {
			t.Errorf("Load(%q) = (%q, %v), expected %q", key, got, ok, want)
		}
	}
}

func TestSplitKey(t *testing.T) {
	tests := []struct {
		key, section, name string
	}{
		{"skyhop.highScore", "skyhop", "highScore"},
		{"alice/skyhop.theme", "alice/skyhop", "theme"},
		{"plain", "DEFAULT", "plain"},
	}
	for _, tt := range tests {
		section, name := splitKey(tt.key)
		if section != tt.section || name != tt.name {
			t.Errorf("splitKey(%q) = (%q, %q), expected (%q, %q)", tt.key, section, name, tt.section, tt.name)
		}
	}
}

func TestOpenINIRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	if err := os.WriteFile(path, []byte("[unterminated\nkey"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenINI(path); err == nil {
		t.Error("expected a parse error")
	}
}
