package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilim/internal/ui/theme"
)

// Countdown displays the seconds left on a question as a shrinking bar.
type Countdown struct {
	Remaining int
	Total     int
	Width     int

	// Warn is the number of seconds at or below which the bar turns red.
	Warn int
}

// NewCountdown creates a full countdown bar.
func NewCountdown(total, width int) Countdown {
	return Countdown{
		Remaining: total,
		Total:     total,
		Width:     width,
		Warn:      5,
	}
}

// Percent returns the remaining fraction in [0, 1].
func (c Countdown) Percent() float64 {
	if c.Total <= 0 {
		return 0
	}
	p := float64(c.Remaining) / float64(c.Total)
	return max(0, min(1, p))
}

// View renders the bar followed by the seconds left.
func (c Countdown) View() string {
	label := fmt.Sprintf("  %2ds", c.Remaining)
	barWidth := c.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * c.Percent())
	empty := barWidth - filled

	fill := theme.ProgressFilled
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if c.Remaining <= c.Warn {
		fill = theme.ProgressWarning
		labelStyle = theme.Incorrect
	}

	return fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		labelStyle.Render(label)
}
