// Package settings shows the player's statistics and the progress reset.
package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/quiz"
	"github.com/abhisek/mindarena/internal/screen"
	"github.com/abhisek/mindarena/internal/store"
	"github.com/abhisek/mindarena/internal/ui/components"
	"github.com/abhisek/mindarena/internal/ui/layout"
	"github.com/abhisek/mindarena/internal/ui/theme"
)

// ResetWarning is shown before progress is wiped.
const ResetWarning = "Are you sure you want to reset all your progress? This action cannot be undone."

// Stat is one row of the statistics card.
type Stat struct {
	Icon  string
	Title string
	Value string
}

// Stats builds the statistics rows for s.
func Stats(s progress.State, catalog *quiz.Catalog, arcadeStats store.RunStats) []Stat {
	return []Stat{
		{Icon: "✪", Title: "Energy Orbs Collected", Value: fmt.Sprintf("%d", s.EnergyOrbs)},
		{Icon: "🏆", Title: "Current Level", Value: fmt.Sprintf("%d", s.CurrentLevel)},
		{Icon: "📖", Title: "Lessons Completed", Value: fmt.Sprintf("%d", s.TotalLessonsCompleted)},
		{Icon: "⏱", Title: "Total Playtime", Value: s.FormattedPlaytime()},
		{Icon: "✓", Title: "Modules Completed", Value: fmt.Sprintf("%d/%d",
			catalog.CompletedCount(s.ModuleCompleted), catalog.Len())},
		{Icon: "★", Title: "Best Score", Value: fmt.Sprintf("%d", arcadeStats.BestScore)},
		{Icon: "🎮", Title: "Games Played", Value: fmt.Sprintf("%d", arcadeStats.Runs)},
	}
}

// SettingsScreen lists statistics and offers a confirmed reset.
type SettingsScreen struct {
	progress   *progress.Store
	catalog    *quiz.Catalog
	menu       components.Menu
	confirming bool
	notice     string
}

var _ screen.Screen = (*SettingsScreen)(nil)

// New creates a SettingsScreen.
func New(p *progress.Store, catalog *quiz.Catalog) *SettingsScreen {
	s := &SettingsScreen{progress: p, catalog: catalog}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Reset Progress", Badge: "Clear all statistics and start fresh", Action: func() tea.Cmd {
			s.confirming = true
			s.notice = ""
			return nil
		}},
	})
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.confirming {
		switch kmsg.String() {
		case "y", "Y":
			s.confirming = false
			if _, err := s.progress.Reset(context.Background()); err != nil {
				s.notice = "Reset could not be saved."
			} else {
				s.notice = "Progress reset."
			}
		case "n", "N":
			s.confirming = false
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(kmsg)
	return s, cmd
}

// Confirming reports whether the reset prompt is open.
func (s *SettingsScreen) Confirming() bool {
	return s.confirming
}

func (s *SettingsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	st := s.progress.State()
	arcadeStats, _ := s.progress.RunStats(context.Background(), store.RunKindArcade)

	var rows []string
	for _, stat := range Stats(st, s.catalog, arcadeStats) {
		left := lipgloss.NewStyle().Foreground(theme.Text).Render(stat.Icon + "  " + stat.Title)
		right := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(stat.Value)
		gap := max(1, cw-6-lipgloss.Width(left)-lipgloss.Width(right))
		rows = append(rows, left+strings.Repeat(" ", gap)+right)
	}

	sections := []string{
		theme.Title.Width(cw).Render("Settings"),
		"",
		theme.Highlight.Render("Your Statistics"),
		components.ArcadeCard(strings.Join(rows, "\n"), cw),
		"",
		theme.Highlight.Render("Actions"),
	}

	if s.confirming {
		prompt := lipgloss.JoinVertical(lipgloss.Center,
			theme.Incorrect.Render("Reset Progress"),
			"",
			theme.Body.Width(cw-6).Align(lipgloss.Center).Render(ResetWarning),
			"",
			theme.Hint.Render("y Reset   n Cancel"),
		)
		sections = append(sections, components.ArcadeCard(prompt, cw))
	} else {
		sections = append(sections, s.menu.View())
	}
	if s.notice != "" {
		sections = append(sections, theme.Hint.Render(s.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "y", Description: "Reset"},
			{Key: "n", Description: "Cancel"},
		}
	}
	return components.Hints(components.Keys.Select, components.Keys.Back)
}
