// Package challenge hosts the daily pattern memory challenge.
package challenge

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/pattern"
	"github.com/abhisek/mindarena/internal/router"
	"github.com/abhisek/mindarena/internal/screen"
	"github.com/abhisek/mindarena/internal/timer"
	"github.com/abhisek/mindarena/internal/ui/components"
	"github.com/abhisek/mindarena/internal/ui/layout"
	"github.com/abhisek/mindarena/internal/ui/theme"
)

// padWidth is the width of one colour pad.
const padWidth = 14

// ChallengeScreen bridges the pattern engine's timers to the Bubble Tea
// loop and renders the four pads.
type ChallengeScreen struct {
	engine *pattern.Challenge
	arm    func([]timer.Timer) tea.Cmd
	err    error
}

var (
	_ screen.Screen     = (*ChallengeScreen)(nil)
	_ screen.Teardowner = (*ChallengeScreen)(nil)
)

// New creates a challenge crediting ledger. A nil rng draws from the global
// source.
func New(ledger pattern.Ledger, rng *rand.Rand) *ChallengeScreen {
	return &ChallengeScreen{
		engine: pattern.New(ledger, rng),
		arm:    screen.TimerCmds,
	}
}

func (c *ChallengeScreen) Init() tea.Cmd {
	return c.arm(c.engine.Start())
}

func (c *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.TimerFiredMsg:
		return c, c.arm(c.engine.Fire(msg.Token))

	case tea.KeyPressMsg:
		if c.engine.Phase() == pattern.PhaseResult {
			if key.Matches(msg, components.Keys.Select) {
				return c, c.proceed()
			}
			return c, nil
		}
		if i, ok := padKey(msg.String()); ok {
			res, err := c.engine.Tap(context.Background(), i)
			if res.Credited {
				c.err = err
			}
		}
	}
	return c, nil
}

// proceed starts the next step, or leaves once the run is over.
func (c *ChallengeScreen) proceed() tea.Cmd {
	if c.engine.HasNext() {
		ts, err := c.engine.Next()
		if err != nil {
			return nil
		}
		c.err = nil
		return c.arm(ts)
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// padKey maps 1-4 to pad indexes.
func padKey(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '0'+pattern.NumColors {
		return 0, false
	}
	return int(s[0] - '1'), true
}

// Teardown cancels the reveal.
func (c *ChallengeScreen) Teardown() {
	c.engine.Teardown()
}

// Engine exposes the underlying pattern engine.
func (c *ChallengeScreen) Engine() *pattern.Challenge {
	return c.engine
}

func (c *ChallengeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	e := c.engine

	step := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(
		fmt.Sprintf("Step %d/%d", e.Step()+1, pattern.MaxSteps))

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Daily Mind Challenge"), step, "")

	switch e.Phase() {
	case pattern.PhaseShowing:
		sections = append(sections,
			theme.Highlight.Render("Watch the Pattern"),
			theme.Subtitle.Render("Memorize the sequence of colors"), "")
		sections = append(sections, renderPads(e))
	case pattern.PhaseInput:
		sections = append(sections,
			theme.Highlight.Render("Repeat the Pattern"),
			theme.Subtitle.Render(fmt.Sprintf("Tap the colors in the same order (%d/%d)",
				len(e.Collected()), len(e.Target()))), "")
		sections = append(sections, renderPads(e), "", renderCollected(e.Collected()))
	case pattern.PhaseResult:
		sections = append(sections, c.viewResult(cw)...)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (c *ChallengeScreen) viewResult(cw int) []string {
	e := c.engine
	var out []string
	if e.Correct() {
		out = append(out,
			theme.Correct.Render("✓"),
			theme.Title.Width(cw).Render("Excellent!"),
			theme.Highlight.Render(fmt.Sprintf("You earned +%d Energy Orbs!", pattern.RewardOrbs)))
	} else {
		out = append(out,
			theme.Incorrect.Render("✗"),
			theme.Title.Width(cw).Render("Good Try!"),
			theme.Subtitle.Render("Keep practicing to improve your recall!"))
	}
	if c.err != nil {
		out = append(out, theme.Hint.Render("Progress could not be saved."))
	}

	label := "Complete"
	if e.HasNext() {
		label = "Next Challenge"
	}
	return append(out, "", components.ArcadeButton(label, true, components.ButtonWidth))
}

// renderPads draws the 2x2 pad grid. The highlighted pad is filled.
func renderPads(e *pattern.Challenge) string {
	lit, on := e.Highlighted()
	pads := make([]string, pattern.NumColors)
	for i := range pads {
		style := lipgloss.NewStyle().
			Width(padWidth).
			Height(3).
			Align(lipgloss.Center, lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.PatternColors[i])
		label := fmt.Sprintf("%d %s", i+1, theme.PatternNames[i])
		if on && lit == i {
			style = style.Background(theme.PatternColors[i]).Foreground(theme.BgDark).Bold(true)
		} else {
			style = style.Foreground(theme.PatternColors[i])
		}
		pads[i] = style.Render(label)
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, pads[0], " ", pads[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, pads[2], " ", pads[3])
	return lipgloss.JoinVertical(lipgloss.Center, top, bottom)
}

// renderCollected shows the taps so far as coloured dots.
func renderCollected(taps []int) string {
	if len(taps) == 0 {
		return " "
	}
	dots := make([]string, len(taps))
	for i, t := range taps {
		dots[i] = lipgloss.NewStyle().Foreground(theme.PatternColors[t]).Render("●")
	}
	return strings.Join(dots, " ")
}

func (c *ChallengeScreen) Title() string {
	return "Quick Mind Test"
}

func (c *ChallengeScreen) KeyHints() []layout.KeyHint {
	if c.engine.Phase() == pattern.PhaseResult {
		return components.Hints(components.Keys.Select, components.Keys.Back)
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Tap a color"},
		{Key: "Esc", Description: "Back"},
	}
}
