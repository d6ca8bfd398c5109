package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/ui/theme"
)

// ProgressBar is a one-line bar drawn with block glyphs.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a bar. Percent is a fraction in [0, 1]; values
// outside are clamped.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     min(1, max(0, percent)),
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	var label, pct string
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	if p.ShowPercent {
		pct = lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf(" %3d%%", int(math.Round(p.Percent*100))))
	}

	track := max(4, p.Width-lipgloss.Width(label)-lipgloss.Width(pct))
	filled := int(math.Round(float64(track) * p.Percent))

	return label +
		theme.ProgressFilled.Render(strings.Repeat("█", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("░", track-filled)) +
		pct
}
