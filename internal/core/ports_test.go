package core

import (
	"reflect"
	"testing"
)

func TestMemoryPrefs(t *testing.T) {
	m := NewMemoryPrefs()

	if _, ok := m.Load("missing"); ok {
		t.Error("Load of a missing key should report false")
	}

	if err := m.Save("skyhop.highScore", "120"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := m.Save("skyhop.theme", "neon"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	v, ok := m.Load("skyhop.highScore")
	if !ok || v != "120" {
		t.Errorf("Load = (%q, %v), expected (\"120\", true)", v, ok)
	}

	want := []string{"skyhop.highScore", "skyhop.theme"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, expected %v", got, want)
	}
}

func TestPrefixPrefs(t *testing.T) {
	base := NewMemoryPrefs()
	alice := PrefixPrefs{Prefix: "alice/", Store: base}
	bob := PrefixPrefs{Prefix: "bob/", Store: base}

	_ = alice.Save("skyhop.highScore", "300")
	_ = bob.Save("skyhop.highScore", "10")

	if v, _ := alice.Load("skyhop.highScore"); v != "300" {
		t.Errorf("alice high score = %q, expected 300", v)
	}
	if v, _ := bob.Load("skyhop.highScore"); v != "10" {
		t.Errorf("bob high score = %q, expected 10", v)
	}
	if v, _ := base.Load("alice/skyhop.highScore"); v != "300" {
		t.Errorf("underlying key = %q, expected 300", v)
	}
}

func TestEnvWithDefaults(t *testing.T) {
	env := Env{}.WithDefaults()

	if env.Prefs == nil || env.Sound == nil || env.Notifier == nil || env.Log == nil {
		t.Fatalf("WithDefaults left a nil port: %+v", env)
	}

	// Calls on the defaults must be safe
	env.Sound.Play(SoundJump)
	env.Sound.StartMusic()
	env.Sound.StopMusic()
	env.Notifier.Notify(Notification{Kind: NotifyInfo, Title: "hi"})
	env.Log.Warn("ignored", "k", 1)

	custom := NewMemoryPrefs()
	env = Env{Prefs: custom}.WithDefaults()
	if env.Prefs != PrefStore(custom) {
		t.Error("WithDefaults should keep a provided store")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionMute)
	if !f.Has(ActionJump) || !f.Has(ActionMute) || f.Has(ActionPause) {
		t.Errorf("unexpected actions: %v", f.Actions)
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionJump, "Jump"},
		{ActionFullscreen, "Fullscreen"},
		{ActionTheme, "Theme"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("%d.String() = %q, expected %q", tt.a, got, tt.want)
		}
	}
}

func TestGameStateRunning(t *testing.T) {
	tests := []struct {
		name string
		s    GameState
		want bool
	}{
		{"idle", GameState{}, false},
		{"running", GameState{Started: true}, true},
		{"paused", GameState{Started: true, Paused: true}, false},
		{"over", GameState{Started: true, GameOver: true}, false},
	}
	for _, tt := range tests {
		if got := tt.s.Running(); got != tt.want {
			t.Errorf("%s: Running() = %v, expected %v", tt.name, got, tt.want)
		}
	}
}
