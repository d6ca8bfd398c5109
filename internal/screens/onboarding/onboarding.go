package onboarding

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/router"
	"github.com/abhisek/mindarena/internal/screen"
	"github.com/abhisek/mindarena/internal/ui/components"
	"github.com/abhisek/mindarena/internal/ui/layout"
	"github.com/abhisek/mindarena/internal/ui/theme"
)

const tickInterval = 400 * time.Millisecond

// sparkle frames cycle around the step icon
var sparkleFrames = []string{"★", "✦"}

// Step is one onboarding page.
type Step struct {
	Icon        string
	Title       string
	Description string
}

// Steps are shown in order. The last one finishes onboarding.
var Steps = []Step{
	{
		Icon:        "🧠",
		Title:       "Train Your Mind",
		Description: "Enhance your cognitive abilities through engaging challenges and interactive lessons.",
	},
	{
		Icon:        "🎮",
		Title:       "Play & Learn",
		Description: "Combine entertainment with education in beautifully designed mini-games.",
	},
	{
		Icon:        "✪",
		Title:       "Collect Energy Orbs",
		Description: "Earn rewards as you progress and unlock new levels of mental agility.",
	},
}

// Completer records that onboarding is done. *progress.Store satisfies it.
type Completer interface {
	CompleteOnboarding(ctx context.Context) (progress.State, error)
}

type tickMsg time.Time

// OnboardingScreen walks a new player through the introduction pages and
// then replaces itself with the hub.
type OnboardingScreen struct {
	completer    Completer
	hubFactory   func() screen.Screen
	step         int
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*OnboardingScreen)(nil)

// New creates an OnboardingScreen that will transition to the screen
// produced by hubFactory once the last page is accepted.
func New(completer Completer, hubFactory func() screen.Screen) *OnboardingScreen {
	return &OnboardingScreen{
		completer:  completer,
		hubFactory: hubFactory,
	}
}

func (o *OnboardingScreen) Title() string {
	return "Welcome"
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if o.transitioned {
			return o, nil
		}
		o.tickCount++
		return o, tick()

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, components.Keys.Right, components.Keys.Select):
			if o.step < len(Steps)-1 {
				o.step++
				return o, nil
			}
			return o, o.finish()
		case key.Matches(msg, components.Keys.Left):
			if o.step > 0 {
				o.step--
			}
		}
	}

	return o, nil
}

// finish marks onboarding complete and swaps in the hub. A failed write is
// logged by the store; the player still moves on.
func (o *OnboardingScreen) finish() tea.Cmd {
	if o.transitioned {
		return nil
	}
	o.transitioned = true
	if o.completer != nil {
		_, _ = o.completer.CompleteOnboarding(context.Background())
	}
	hub := o.hubFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: hub}
	}
}

// Step returns the zero-based page index.
func (o *OnboardingScreen) Step() int {
	return o.step
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	next := "Continue"
	if o.step == len(Steps)-1 {
		next = "Get Started"
	}
	return []layout.KeyHint{
		{Key: "←", Description: "Back"},
		{Key: "→/Enter", Description: next},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (o *OnboardingScreen) View(width, height int) string {
	st := Steps[o.step]
	cw := components.ContentWidth(width)

	var sections []string

	if height >= 26 {
		sections = append(sections, components.RenderBanner(width), "")
	}

	sparkle := sparkleFrames[o.tickCount%len(sparkleFrames)]
	accent := lipgloss.NewStyle().Foreground(theme.Secondary)
	icon := accent.Render(sparkle) + "   " + st.Icon + "   " + accent.Render(sparkle)
	sections = append(sections, icon, "")

	sections = append(sections, theme.Title.Width(cw).Render(st.Title))
	sections = append(sections, "")
	sections = append(sections, theme.Subtitle.Width(cw).Render(st.Description))
	sections = append(sections, "")
	sections = append(sections, renderDots(o.step, len(Steps)))
	sections = append(sections, "")

	label := "Continue →"
	if o.step == len(Steps)-1 {
		label = "Get Started ✦"
	}
	sections = append(sections, components.ArcadeButton(label, true, components.ButtonWidth))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderDots draws the page indicator.
func renderDots(current, total int) string {
	dots := make([]string, total)
	for i := range dots {
		if i == current {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Primary).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}
	return strings.Join(dots, " ")
}

