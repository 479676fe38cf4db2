package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilim/internal/ui/theme"
)

// AnswerChosenMsg reports the option picked on an AnswerGrid.
type AnswerChosenMsg struct {
	Index int
}

// AnswerGrid shows the four colored answer tiles of a question. Options
// are chosen with 1-4 or the arrows plus enter. Once locked it ignores
// input until Reveal shows the outcome.
type AnswerGrid struct {
	Options  []string
	Selected int
	Chosen   int
	Correct  int
	Locked   bool
	Revealed bool
}

// NewAnswerGrid creates a grid with nothing chosen.
func NewAnswerGrid(options []string) AnswerGrid {
	return AnswerGrid{
		Options: options,
		Chosen:  -1,
		Correct: -1,
	}
}

// Update handles keyboard selection. Choosing an option locks the grid and
// emits AnswerChosenMsg.
func (g AnswerGrid) Update(msg tea.Msg) (AnswerGrid, tea.Cmd) {
	if g.Locked {
		return g, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return g, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k", "left", "h":
		if g.Selected > 0 {
			g.Selected--
		}
	case "down", "j", "right", "l":
		if g.Selected < len(g.Options)-1 {
			g.Selected++
		}
	case "enter":
		return g.choose(g.Selected)
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(g.Options) {
			g.Selected = i
			return g.choose(i)
		}
	}
	return g, nil
}

func (g AnswerGrid) choose(i int) (AnswerGrid, tea.Cmd) {
	g.Chosen = i
	g.Locked = true
	return g, func() tea.Msg { return AnswerChosenMsg{Index: i} }
}

// Lock stops input without choosing, as on a timeout.
func (g *AnswerGrid) Lock() {
	g.Locked = true
}

// Reveal marks the correct option for display.
func (g *AnswerGrid) Reveal(correct int) {
	g.Locked = true
	g.Revealed = true
	g.Correct = correct
}

// View renders the tiles w cells wide.
func (g AnswerGrid) View(w int) string {
	rows := make([]string, 0, len(g.Options))
	for i, opt := range g.Options {
		rows = append(rows, g.tile(i, opt, w))
	}
	return strings.Join(rows, "\n")
}

func (g AnswerGrid) tile(i int, opt string, w int) string {
	color := lipgloss.Color(theme.AnswerColors[i%len(theme.AnswerColors)])
	label := fmt.Sprintf("%d  %s", i+1, opt)

	style := lipgloss.NewStyle().
		Width(w).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case g.Revealed && i == g.Correct:
		return style.Bold(true).Foreground(theme.Success).BorderForeground(theme.Success).Render(label + "  ✓")
	case g.Revealed && i == g.Chosen:
		return style.Bold(true).Foreground(theme.Error).BorderForeground(theme.Error).Render(label + "  ✗")
	case g.Revealed:
		return style.Foreground(theme.TextDim).BorderForeground(theme.Border).Render(label)
	case i == g.Selected && !g.Locked:
		return style.Bold(true).Foreground(theme.Text).BorderForeground(color).Render("▸ " + label)
	default:
		return style.Foreground(color).BorderForeground(theme.Border).Render(label)
	}
}
