package hub

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/ui/components"
	"github.com/abhisek/mindarena/internal/ui/theme"
)

// quickStats are the three counters in the hub's stats bar.
type quickStats struct {
	Streak    int
	BestScore int
	Rank      int
}

// statsFor derives the quick stats. The streak mirrors the level and the
// rank climbs from 100 towards 1 as lessons are completed.
func statsFor(s progress.State, bestScore int) quickStats {
	return quickStats{
		Streak:    s.CurrentLevel,
		BestScore: bestScore,
		Rank:      max(1, 100-s.TotalLessonsCompleted),
	}
}

// renderTitle returns the block banner or its compact fallback.
func renderTitle(width, cw int, compact bool) string {
	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Bold(true).
			Render("M · I · N · D   A · R · E · N · A")
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.RenderBanner(width))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(s progress.State, qs quickStats, cw int, compact bool) string {
	orbStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Info).Bold(true)
	rankStyle := lipgloss.NewStyle().Foreground(theme.Calm).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s %s",
			orbStyle.Render(fmt.Sprintf("✪%d", s.EnergyOrbs)),
			streakStyle.Render(fmt.Sprintf("🔥%d", qs.Streak)),
			bestStyle.Render(fmt.Sprintf("★%d", qs.BestScore)),
			rankStyle.Render(fmt.Sprintf("#%d", qs.Rank)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s  %s",
			orbStyle.Render(fmt.Sprintf("✪ %d ORBS", s.EnergyOrbs)),
			streakStyle.Render(fmt.Sprintf("🔥 %d STREAK", qs.Streak)),
			bestStyle.Render(fmt.Sprintf("★ %d BEST", qs.BestScore)),
			rankStyle.Render(fmt.Sprintf("# %d RANK", qs.Rank)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Info).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderLevelProgress renders the bar towards the next level.
func renderLevelProgress(s progress.State, cw int) string {
	label := fmt.Sprintf("Level %d → %d", s.CurrentLevel, s.CurrentLevel+1)
	return components.NewProgressBar(label, s.LevelProgress(), true, cw).View()
}

// renderAchievements lists the milestones in a card. It returns "" when
// there is nothing to show.
func renderAchievements(s progress.State, cw int) string {
	list := progress.Achievements(s)
	if len(list) == 0 {
		return ""
	}

	lines := []string{theme.Highlight.Render("Recent Achievements")}
	for _, a := range list {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		suffix := ""
		if !a.Unlocked {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
			suffix = "  🔒"
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %s · %s%s", a.Icon, a.Title, a.Description, suffix)))
	}
	return components.ArcadeCard(strings.Join(lines, "\n"), cw)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
