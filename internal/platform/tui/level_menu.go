package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/helix-drop/internal/games/helix/sim"
	"github.com/vovakirdan/helix-drop/internal/storage"
)

// minSelectableLevels is the number of levels always offered.
const minSelectableLevels = 10

// levelSelect is the state of the level selector screen.
type levelSelect struct {
	cursor int
	color  int // Index into colors; 0 keeps the default
	colors []string
	best   int // Highest cleared campaign level
	count  int // Levels offered
}

func newLevelSelect(store *storage.Store) levelSelect {
	colors := []string{""}
	for _, c := range sim.Palette(0) {
		colors = append(colors, c.String())
	}

	ls := levelSelect{colors: colors}
	if store != nil {
		if best, err := store.BestLevel("helix"); err == nil {
			ls.best = best
		}
	}
	ls.count = max(ls.best+1, minSelectableLevels)
	return ls
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	ls := &m.levels

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if ls.cursor > 0 {
			ls.cursor--
		}
	case MenuActionDown:
		if ls.cursor < ls.count-1 {
			ls.cursor++
		}
	case MenuActionLeft:
		ls.color = (ls.color - 1 + len(ls.colors)) % len(ls.colors)
	case MenuActionRight:
		ls.color = (ls.color + 1) % len(ls.colors)
	case MenuActionSelect:
		m.selected = &MenuItem{
			GameID: "helix",
			Title:  fmt.Sprintf("Level %d", ls.cursor+1),
			Level:  ls.cursor + 1,
			Color:  ls.colors[ls.color],
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

func (m MenuModel) viewLevelSelect() string {
	ls := m.levels
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	color := ls.colors[ls.color]
	if color == "" {
		color = "default"
	}
	b.WriteString(centerText(fmt.Sprintf("Ball color: < %s >", color), m.width))
	b.WriteString("\n\n")

	// Keep the cursor inside a window that fits the terminal.
	rows := max(m.height-10, 3)
	start := max(0, min(ls.cursor-rows/2, ls.count-rows))
	end := min(ls.count, start+rows)

	cleared := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	for i := start; i < end; i++ {
		cursor := "  "
		if i == ls.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%sLevel %2d", cursor, i+1)
		if i+1 <= ls.best {
			line += " " + cleared.Render("✓")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Left/Right: Color  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}
