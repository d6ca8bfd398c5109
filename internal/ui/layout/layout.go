// Package layout draws the frame around every screen: the header with the
// player's orbs and level, the key-hint footer, and the too-small notice.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/ui/theme"
)

// Smallest terminal the frame renders in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Mind Arena needs more room"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("Resize to at least %d x %d", MinWidth, MinHeight)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("(now %d x %d)", width, height)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// statusBadge shows the orb balance and level.
func statusBadge(orbs, level int) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(fmt.Sprintf("✪ %d", orbs)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Primary).Render(fmt.Sprintf("Lv %d", level))
}

// RenderHeader renders the top bar: brand on the left, the screen title in
// the middle and the status badge on the right.
func RenderHeader(title string, orbs, level int, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("◆ MIND ARENA")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	badge := statusBadge(orbs, level)

	inner := max(0, width-4)
	bw, cw, rw := lipgloss.Width(brand), lipgloss.Width(center), lipgloss.Width(badge)

	// Centre the title on the bar, then give whatever is left to the right.
	leftGap := max(1, (inner-cw)/2-bw-1)
	rightGap := max(1, inner-2-bw-leftGap-cw-rw)

	row := " " + brand + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + badge + " "
	return theme.Bar.Width(width).Render(row)
}

// RenderFooter renders the key hints separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	sep := lipgloss.NewStyle().Foreground(theme.Border).Render("  ·  ")

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return theme.Bar.Width(width).Render("  " + strings.Join(parts, sep))
}

// RenderFrame stacks header, content and footer, sizing the content to
// fill the remaining height.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
