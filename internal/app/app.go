package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/arcade"
	"github.com/abhisek/mindarena/internal/gate"
	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/quiz"
	"github.com/abhisek/mindarena/internal/router"
	"github.com/abhisek/mindarena/internal/screen"
	"github.com/abhisek/mindarena/internal/screens/hub"
	"github.com/abhisek/mindarena/internal/screens/onboarding"
	"github.com/abhisek/mindarena/internal/screens/webfallback"
	"github.com/abhisek/mindarena/internal/store"
	"github.com/abhisek/mindarena/internal/ui/layout"
	"github.com/abhisek/mindarena/internal/ui/theme"
)

// Options holds the dependencies for the app.
type Options struct {
	Progress *progress.Store
	Catalog  *quiz.Catalog
	Arcade   arcade.Config
	Prober   *gate.Prober
	// KV receives the boot flags after the probe.
	KV     store.KV
	Logger *slog.Logger
}

// probeResultMsg carries the gate decision back to the update loop.
type probeResultMsg struct {
	decision gate.Decision
}

// AppModel is the root Bubble Tea model. It shows a spinner until the gate
// probe resolves, then hands the screen to the router.
type AppModel struct {
	opts    Options
	mode    gate.Mode
	spinner spinner.Model
	router  *router.Router
	width   int
	height  int
}

// newAppModel creates an AppModel in the loading mode.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Arcade == (arcade.Config{}) {
		opts.Arcade = arcade.DefaultConfig()
	}
	return AppModel{
		opts: opts,
		mode: gate.ModeLoading,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.probe())
}

// probe runs the gate check off the update loop.
func (m AppModel) probe() tea.Cmd {
	p := m.opts.Prober
	if p == nil {
		p = gate.NewProber("")
	}
	return func() tea.Msg {
		return probeResultMsg{decision: p.Probe(context.Background())}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router != nil && m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case probeResultMsg:
		return m.resolve(msg.decision)

	case spinner.TickMsg:
		if m.mode != gate.ModeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.router == nil {
		return m, nil
	}
	cmd := m.router.Update(msg)
	return m, cmd
}

// resolve leaves the loading mode exactly once.
func (m AppModel) resolve(d gate.Decision) (tea.Model, tea.Cmd) {
	if m.mode != gate.ModeLoading {
		return m, nil
	}
	log := m.opts.Logger

	if m.opts.KV != nil {
		if err := gate.SaveFlags(context.Background(), m.opts.KV, gate.FlagsFor(d)); err != nil {
			log.Warn("save boot flags failed", "error", err)
		}
	}

	onboarded := m.opts.Progress.State().HasCompletedOnboarding
	m.mode = gate.Resolve(d, onboarded)
	log.Info("mode resolved", "mode", m.mode.String(), "open", d.Open, "status", d.StatusCode)

	m.router = router.New(m.rootScreen())
	return m, m.router.Active().Init()
}

func (m AppModel) rootScreen() screen.Screen {
	hubFactory := func() screen.Screen {
		return hub.New(hub.Deps{
			Progress: m.opts.Progress,
			Catalog:  m.opts.Catalog,
			Arcade:   m.opts.Arcade,
			Logger:   m.opts.Logger,
		})
	}

	switch m.mode {
	case gate.ModeWebFallback:
		url := ""
		if m.opts.Prober != nil {
			url = m.opts.Prober.URL()
		}
		return webfallback.New(url)
	case gate.ModeNativeOnboarding:
		return onboarding.New(m.opts.Progress, hubFactory)
	default:
		return hubFactory()
	}
}

// Mode returns the top-level mode.
func (m AppModel) Mode() gate.Mode {
	return m.mode
}

// Close tears down every screen.
func (m AppModel) Close() {
	if m.router != nil {
		m.router.Close()
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if content := m.render(); content != "" {
		v.SetContent(content)
	}
	return v
}

// render composes the frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	if m.router == nil {
		loading := m.spinner.View() + " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading...")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, loading)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	st := m.opts.Progress.State()
	header := layout.RenderHeader(title, st.EnergyOrbs, st.CurrentLevel, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and tears down every screen when it
// exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	final, err := p.Run()
	if am, ok := final.(AppModel); ok {
		am.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
