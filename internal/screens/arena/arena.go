// Package arena lists the skill modules and opens a lesson for the chosen
// one.
package arena

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/quiz"
	"github.com/abhisek/mindarena/internal/router"
	"github.com/abhisek/mindarena/internal/screen"
	"github.com/abhisek/mindarena/internal/screens/lesson"
	"github.com/abhisek/mindarena/internal/ui/components"
	"github.com/abhisek/mindarena/internal/ui/layout"
	"github.com/abhisek/mindarena/internal/ui/theme"
)

// ArenaScreen shows every module with its completion mark.
type ArenaScreen struct {
	progress *progress.Store
	catalog  *quiz.Catalog
	modules  []quiz.Module
	cursor   int
}

var _ screen.Screen = (*ArenaScreen)(nil)

// New creates an ArenaScreen over catalog.
func New(p *progress.Store, catalog *quiz.Catalog) *ArenaScreen {
	return &ArenaScreen{
		progress: p,
		catalog:  catalog,
		modules:  catalog.All(),
	}
}

func (a *ArenaScreen) Init() tea.Cmd {
	return nil
}

func (a *ArenaScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(a.modules) == 0 {
		return a, nil
	}

	switch {
	case key.Matches(kmsg, components.Keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(kmsg, components.Keys.Down):
		if a.cursor < len(a.modules)-1 {
			a.cursor++
		}
	case key.Matches(kmsg, components.Keys.Select):
		s := lesson.New(a.progress, a.modules[a.cursor])
		return a, func() tea.Msg {
			return router.PushScreenMsg{Screen: s}
		}
	}
	return a, nil
}

// Cursor returns the highlighted module index.
func (a *ArenaScreen) Cursor() int {
	return a.cursor
}

func (a *ArenaScreen) View(width, height int) string {
	st := a.progress.State()
	cw := components.ContentWidth(width)

	done := a.catalog.CompletedCount(st.ModuleCompleted)
	total := a.catalog.Len()
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Skill Arena"))
	sections = append(sections, theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("Your Progress: %d of %d modules completed", done, total)))
	sections = append(sections, components.NewProgressBar("", pct, true, cw).View())
	sections = append(sections, "")

	var rows []string
	for i, m := range a.modules {
		rows = append(rows, a.renderRow(i, m, st, cw))
	}
	sections = append(sections, strings.Join(rows, "\n"))

	if len(a.modules) > 0 {
		sections = append(sections, "")
		desc := a.modules[a.cursor].Description
		sections = append(sections, theme.Hint.Width(cw).Render(desc))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (a *ArenaScreen) renderRow(i int, m quiz.Module, st progress.State, cw int) string {
	prefix := "  "
	style := theme.Unselected
	if i == a.cursor {
		prefix = "▸ "
		style = theme.Selected
	}

	left := style.Render(fmt.Sprintf("%s%s %s", prefix, m.Icon, m.Title))

	var right string
	switch {
	case len(m.Tasks) == 0:
		right = lipgloss.NewStyle().Foreground(theme.TextDim).Render("not available")
	case st.ModuleCompleted(m.ID):
		right = theme.Correct.Render("✓ Completed")
	default:
		right = lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d tasks", len(m.Tasks)))
	}

	gap := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (a *ArenaScreen) Title() string {
	return "Skill Arena"
}

func (a *ArenaScreen) KeyHints() []layout.KeyHint {
	return components.Hints(components.Keys.Up, components.Keys.Down, components.Keys.Select, components.Keys.Back)
}
