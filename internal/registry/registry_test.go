package registry

import (
	"testing"

	"github.com/vovakirdan/skyhop/internal/core"
)

type stubGame struct {
	env core.Env
}

func (g *stubGame) ID() string                          { return "stub" }
func (g *stubGame) Title() string                       { return "Stub Mode" }
func (g *stubGame) Reset(core.RuntimeConfig)            {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                 {}
func (g *stubGame) State() core.GameState               { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub", func(env core.Env) Game { return &stubGame{env: env} })

	if !Exists("stub") {
		t.Fatal("stub should exist after Register")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub" {
			found = true
			if info.Title != "Stub Mode" {
				t.Errorf("Title = %q, expected \"Stub Mode\"", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include stub")
	}

	prefs := core.NewMemoryPrefs()
	g, err := Create("stub", core.Env{Prefs: prefs})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.(*stubGame).env.Prefs != core.PrefStore(prefs) {
		t.Error("Create should pass the env to the factory")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist", core.Env{}); err == nil {
		t.Error("expected an error for an unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func(core.Env) Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate registration")
		}
	}()
	Register("dup", func(core.Env) Game { return &stubGame{} })
}
