package registry

import (
	"testing"

	"github.com/vovakirdan/helix-drop/internal/core"
)

type stubGame struct {
	id    string
	sink  core.AudioSink
	state core.GameState
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return g.state }
func (g *stubGame) SetAudioSink(s core.AudioSink)        { g.sink = s }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered mode should exist")
	}
	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q, want zz_stub", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include registered mode")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for unknown mode")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestAttachAudio(t *testing.T) {
	g := &stubGame{id: "a"}
	if !AttachAudio(g, core.SilentAudio{}) {
		t.Fatal("AttachAudio should accept an audio-aware mode")
	}
	if g.sink == nil {
		t.Error("sink was not set")
	}
	if AttachAudio(g, nil) {
		t.Error("nil sink should not attach")
	}
}
