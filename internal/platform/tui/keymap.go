package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/helix-drop/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	RotateLeft  key.Binding
	RotateRight key.Binding
	Next        key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Back        key.Binding
	Quit        key.Binding
	Screenshot  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RotateLeft, k.RotateRight, k.Pause, k.Restart, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RotateLeft, k.RotateRight},
		{k.Pause, k.Restart, k.Next},
		{k.Back, k.Quit, k.Screenshot},
	}
}

// DefaultGameKeyMap returns default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		RotateLeft: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "spin left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "spin right"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next level"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Game GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Game: DefaultGameKeyMap()}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.Game
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.RotateLeft):
		return core.ActionRotateLeft, false
	case key.Matches(msg, k.RotateRight):
		return core.ActionRotateRight, false
	case key.Matches(msg, k.Next):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// DragTracker turns left-button mouse motion into horizontal drag distance.
type DragTracker struct {
	active bool
	lastX  int
}

// Update consumes a mouse message and returns the horizontal distance, in
// cells, dragged since the previous message.
func (d *DragTracker) Update(msg tea.MouseMsg) float64 {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			d.active = true
			d.lastX = msg.X
		}
	case tea.MouseActionMotion:
		if d.active {
			dx := msg.X - d.lastX
			d.lastX = msg.X
			return float64(dx)
		}
	case tea.MouseActionRelease:
		d.active = false
	}
	return 0
}

// Dragging reports whether the left button is held.
func (d *DragTracker) Dragging() bool {
	return d.active
}
