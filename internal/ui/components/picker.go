package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilim/internal/ui/theme"
)

// Picker is a horizontal single choice changed with left and right.
type Picker struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
	Wrap     bool
}

// NewPicker creates a picker with selected preselected.
func NewPicker(label string, options []string, selected int) Picker {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Picker{Label: label, Options: options, Selected: selected}
}

// Update moves the selection while focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused || len(p.Options) == 0 {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		switch {
		case p.Selected > 0:
			p.Selected--
		case p.Wrap:
			p.Selected = len(p.Options) - 1
		}
	case "right", "l":
		switch {
		case p.Selected < len(p.Options)-1:
			p.Selected++
		case p.Wrap:
			p.Selected = 0
		}
	}
	return p, nil
}

// Value returns the selected option.
func (p Picker) Value() string {
	if len(p.Options) == 0 {
		return ""
	}
	return p.Options[p.Selected]
}

// View renders the label and the options on one line.
func (p Picker) View() string {
	var b strings.Builder
	if p.Label != "" {
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if p.Focused {
			labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(labelStyle.Render(p.Label))
		b.WriteString("\n")
	}

	for i, opt := range p.Options {
		if i > 0 {
			b.WriteString(" ")
		}
		switch {
		case i == p.Selected && p.Focused:
			b.WriteString(theme.ButtonActive.Render(opt))
		case i == p.Selected:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 2).Render(opt))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2).Render(opt))
		}
	}
	return b.String()
}
