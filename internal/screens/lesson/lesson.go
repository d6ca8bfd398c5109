// Package lesson plays one skill module through the quiz engine.
package lesson

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/quiz"
	"github.com/abhisek/mindarena/internal/router"
	"github.com/abhisek/mindarena/internal/screen"
	"github.com/abhisek/mindarena/internal/ui/components"
	"github.com/abhisek/mindarena/internal/ui/layout"
	"github.com/abhisek/mindarena/internal/ui/theme"
)

// LessonScreen shows one task at a time: choose, check, read the
// explanation, move on.
type LessonScreen struct {
	engine   *quiz.Engine
	credited bool
	err      error
}

var _ screen.Screen = (*LessonScreen)(nil)

// New starts a lesson over m. Completing it credits c.
func New(c quiz.Completer, m quiz.Module) *LessonScreen {
	return &LessonScreen{engine: quiz.NewEngine(m, c)}
}

func (l *LessonScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, nil
	}

	e := l.engine
	if e.Phase() == quiz.PhaseFinished {
		if key.Matches(kmsg, components.Keys.Select) {
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return l, nil
	}

	switch {
	case key.Matches(kmsg, components.Keys.Up):
		l.moveSelection(-1)
	case key.Matches(kmsg, components.Keys.Down):
		l.moveSelection(1)
	case key.Matches(kmsg, components.Keys.Select):
		l.submit()
	default:
		if i, ok := optionKey(kmsg.String()); ok {
			_ = e.Select(i)
		}
	}
	return l, nil
}

// moveSelection steps the selection by delta, starting from the first
// option when nothing is selected yet. Engine errors for revealed tasks are
// ignored.
func (l *LessonScreen) moveSelection(delta int) {
	e := l.engine
	n := len(e.Task().Options)
	if n == 0 {
		return
	}
	i := e.Selected()
	if i < 0 {
		i = 0
	} else {
		i = (i + delta + n) % n
	}
	_ = e.Select(i)
}

// submit checks a selected task or advances a revealed one.
func (l *LessonScreen) submit() {
	e := l.engine
	if e.Placeholder() {
		_, _ = e.Advance(context.Background())
		return
	}
	switch e.Phase() {
	case quiz.PhaseSelected:
		_, _ = e.Check()
	case quiz.PhaseRevealed:
		out, err := e.Advance(context.Background())
		l.credited = out.Credited
		l.err = err
	}
}

// optionKey maps 1-9 and a-f to option indexes.
func optionKey(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	switch {
	case c >= '1' && c <= '9':
		return int(c - '1'), true
	case c >= 'a' && c <= 'f':
		return int(c - 'a'), true
	}
	return 0, false
}

// Engine exposes the underlying quiz engine.
func (l *LessonScreen) Engine() *quiz.Engine {
	return l.engine
}

func (l *LessonScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	e := l.engine

	var content string
	switch {
	case e.Phase() == quiz.PhaseFinished:
		content = l.viewFinished(cw)
	case e.Placeholder():
		content = l.viewPlaceholder(cw)
	default:
		content = l.viewTask(cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *LessonScreen) viewTask(cw int) string {
	e := l.engine
	task := e.Task()

	header := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d  ·  %d/%d", e.Index()+1, e.Index()+1, e.Total()))
	bar := components.NewProgressBar("", e.Progress(), true, cw).View()

	mc := components.NewMultiChoice(task.Question, task.Options, task.CorrectIndex)
	mc.Selected = e.Selected()
	mc.Revealed = e.Phase() == quiz.PhaseRevealed
	mc.Width = cw

	sections := []string{header, bar, "", mc.View()}

	var label string
	switch e.Phase() {
	case quiz.PhaseRevealed:
		verdict := theme.Incorrect.Render("✗ Not quite")
		if e.Correct() {
			verdict = theme.Correct.Render("✓ Correct!")
		}
		sections = append(sections, verdict)
		sections = append(sections, theme.Hint.Width(cw).Render(task.Explanation), "")
		label = "Next Question"
		if e.LastTask() {
			label = "Finish"
		}
	default:
		label = "Check Answer"
	}
	sections = append(sections, components.ArcadeButton(label, e.Phase() != quiz.PhaseUnanswered, components.ButtonWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (l *LessonScreen) viewPlaceholder(cw int) string {
	m := l.engine.Module()
	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Width(cw).Render(l.engine.Task().Question),
		"",
		theme.Subtitle.Width(cw).Render(fmt.Sprintf("Preparing %s...", m.Title)),
		"",
		components.ArcadeButton("Back", true, components.ButtonWidth),
	)
}

func (l *LessonScreen) viewFinished(cw int) string {
	m := l.engine.Module()
	if !l.credited {
		return lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Width(cw).Render("Module not available"),
			"",
			components.ArcadeButton("Back", true, components.ButtonWidth),
		)
	}

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Render("✪"),
		"",
		theme.Title.Width(cw).Render("Module Complete!"),
		theme.Highlight.Render("You've earned +1 Energy Orb"),
		"",
		theme.Subtitle.Width(cw).Render(
			fmt.Sprintf("Great job completing %s! Your mind is getting stronger.", m.Title)),
	}
	if l.err != nil {
		sections = append(sections, theme.Hint.Render("Progress could not be saved."))
	}
	sections = append(sections, "", components.ArcadeButton("Continue", true, components.ButtonWidth))
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (l *LessonScreen) Title() string {
	return l.engine.Module().Title
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓/1-4", Description: "Choose"},
		{Key: "Enter", Description: "Check / Next"},
		{Key: "Esc", Description: "Back"},
	}
}
