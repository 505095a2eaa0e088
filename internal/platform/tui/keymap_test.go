package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/helix-drop/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, false},
		{runeKey('a'), core.ActionRotateLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight, false},
		{runeKey('d'), core.ActionRotateRight, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame) {
		t.Error("left should not quit")
	}
	if !frame.Has(core.ActionRotateLeft) {
		t.Error("frame should hold RotateLeft")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('d'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestDragTracker(t *testing.T) {
	var d DragTracker

	if dx := d.Update(tea.MouseMsg{X: 10, Action: tea.MouseActionMotion}); dx != 0 {
		t.Errorf("motion without press = %v, want 0", dx)
	}

	d.Update(tea.MouseMsg{X: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !d.Dragging() {
		t.Fatal("left press should start a drag")
	}
	if dx := d.Update(tea.MouseMsg{X: 14, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}); dx != 4 {
		t.Errorf("drag right = %v, want 4", dx)
	}
	if dx := d.Update(tea.MouseMsg{X: 11, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}); dx != -3 {
		t.Errorf("drag left = %v, want -3", dx)
	}

	d.Update(tea.MouseMsg{X: 11, Action: tea.MouseActionRelease})
	if d.Dragging() {
		t.Error("release should end the drag")
	}
	if dx := d.Update(tea.MouseMsg{X: 20, Action: tea.MouseActionMotion}); dx != 0 {
		t.Errorf("motion after release = %v, want 0", dx)
	}
}
