package screen

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindarena/internal/timer"
	"github.com/abhisek/mindarena/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Teardowner is implemented by screens that own timers. The router calls
// Teardown when the screen leaves the stack.
type Teardowner interface {
	Teardown()
}

// TimerFiredMsg delivers an armed timer back to the screen that owns it.
// Screens pass the token to their engine, which drops tokens it no longer
// owns.
type TimerFiredMsg struct {
	Token timer.Token
	Tag   string
}

// TimerCmd arms t on the Bubble Tea loop.
func TimerCmd(t timer.Timer) tea.Cmd {
	return tea.Tick(t.Interval, func(time.Time) tea.Msg {
		return TimerFiredMsg{Token: t.Token, Tag: t.Tag}
	})
}

// TimerCmds arms every timer in ts.
func TimerCmds(ts []timer.Timer) tea.Cmd {
	if len(ts) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(ts))
	for _, t := range ts {
		cmds = append(cmds, TimerCmd(t))
	}
	return tea.Batch(cmds...)
}
