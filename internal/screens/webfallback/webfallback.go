// Package webfallback is shown when the gate opens: the experience is
// served from the web instead of natively.
package webfallback

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/screen"
	"github.com/abhisek/mindarena/internal/ui/layout"
	"github.com/abhisek/mindarena/internal/ui/theme"
)

// WebFallbackScreen points the player at the web experience.
type WebFallbackScreen struct {
	url string
}

var _ screen.Screen = (*WebFallbackScreen)(nil)

// New creates a WebFallbackScreen for url.
func New(url string) *WebFallbackScreen {
	return &WebFallbackScreen{url: url}
}

func (w *WebFallbackScreen) Init() tea.Cmd {
	return nil
}

func (w *WebFallbackScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "q" {
		return w, tea.Quit
	}
	return w, nil
}

// URL returns the address being shown.
func (w *WebFallbackScreen) URL() string {
	return w.url
}

func (w *WebFallbackScreen) View(width, height int) string {
	link := lipgloss.NewStyle().
		Foreground(theme.Info).
		Underline(true).
		Render(w.url)

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("╌╌ Mind Arena on the Web ╌╌"),
		"",
		theme.Subtitle.Render("Continue in your browser at"),
		"",
		link,
	)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(content)
}

func (w *WebFallbackScreen) Title() string {
	return "Web"
}

func (w *WebFallbackScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "q", Description: "Quit"},
	}
}
