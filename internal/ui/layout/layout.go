// Package layout draws the frame shared by every screen: a header bar with
// the app name, screen title and signed-in player, and a footer of key
// hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilim/internal/ui/theme"
)

// Smallest terminal the frame is drawn in.
const (
	MinWidth  = 60
	MinHeight = 20
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Badge is the signed-in player shown on the right of the header. Lang is
// the active language code.
type Badge struct {
	Avatar string
	Name   string
	Color  string
	Lang   string
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("↔ %d×%d\n\n%d×%d+", width, height, MinWidth, MinHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(msg))
}

// bar is the bordered full-width strip used for the header and footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader lays out the app name on the left, title in the middle and
// badge on the right.
func RenderHeader(title string, badge Badge, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Bilim")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := badge.render()

	inner := max(0, width-4)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max(1, (inner-cw)/2-lw)
	rightGap := max(1, inner-lw-leftGap-cw-rw)

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

func (b Badge) render() string {
	var s string
	if b.Name != "" {
		av := lipgloss.NewStyle()
		if b.Color != "" {
			av = av.Background(lipgloss.Color(b.Color))
		}
		s = av.Render(b.Avatar) + " " + lipgloss.NewStyle().Foreground(theme.Text).Render(b.Name)
	}
	if b.Lang != "" {
		s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + strings.ToUpper(b.Lang))
	}
	return s
}

// RenderFooter lists key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content and footer, padding the content to
// fill the remaining height.
func RenderFrame(header, content, footer string, width, height int) string {
	h := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().Width(width).Height(h).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
