package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilim/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for screen sections so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// Heading renders a centered screen heading at width w.
func Heading(text string, w int) string {
	return theme.Title.Width(w).Render(text)
}

// Avatar renders an avatar glyph on its background color.
func Avatar(glyph, color string) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if color != "" {
		style = style.Background(lipgloss.Color(color))
	}
	return style.Render(glyph)
}

// ErrorLine renders a validation or request error, or "" when msg is empty.
func ErrorLine(msg string) string {
	if msg == "" {
		return ""
	}
	return theme.ErrorText.Render("✗ " + msg)
}
