package hub

import (
	"context"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindarena/internal/arcade"
	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/quiz"
	"github.com/abhisek/mindarena/internal/router"
	"github.com/abhisek/mindarena/internal/screen"
	"github.com/abhisek/mindarena/internal/screens/arena"
	"github.com/abhisek/mindarena/internal/screens/challenge"
	"github.com/abhisek/mindarena/internal/screens/minigame"
	"github.com/abhisek/mindarena/internal/screens/settings"
	"github.com/abhisek/mindarena/internal/store"
	"github.com/abhisek/mindarena/internal/ui/components"
	"github.com/abhisek/mindarena/internal/ui/layout"
)

// Deps are the services the hub hands to the experiences it opens.
type Deps struct {
	Progress *progress.Store
	Catalog  *quiz.Catalog
	Arcade   arcade.Config
	Logger   *slog.Logger
}

// HubScreen is the main menu of the native experience.
type HubScreen struct {
	deps        Deps
	menu        components.Menu
	state       progress.State
	bestScore   int
	unsubscribe func()
}

var (
	_ screen.Screen     = (*HubScreen)(nil)
	_ screen.Teardowner = (*HubScreen)(nil)
)

// New creates a HubScreen and subscribes it to progress changes.
func New(deps Deps) *HubScreen {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	h := &HubScreen{deps: deps}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "SKILL ARENA", Action: func() tea.Cmd {
			return push(arena.New(deps.Progress, deps.Catalog))
		}},
		{Label: "DAILY CHALLENGE", Badge: "+2 ✪", Action: func() tea.Cmd {
			return push(challenge.New(deps.Progress, nil))
		}},
		{Label: "ENERGY CATCH", Action: func() tea.Cmd {
			return push(minigame.New(deps.Arcade, deps.Progress, nil))
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return push(settings.New(deps.Progress, deps.Catalog))
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})

	h.onProgress(deps.Progress.State())
	h.unsubscribe = deps.Progress.Subscribe(h.onProgress)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

// onProgress refreshes the cached state and the best arcade score.
func (h *HubScreen) onProgress(s progress.State) {
	h.state = s
	stats, err := h.deps.Progress.RunStats(context.Background(), store.RunKindArcade)
	if err != nil {
		h.deps.Logger.Warn("load run stats failed", "error", err)
		return
	}
	h.bestScore = stats.BestScore
}

func (h *HubScreen) Init() tea.Cmd {
	return nil
}

func (h *HubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// Teardown drops the progress subscription.
func (h *HubScreen) Teardown() {
	if h.unsubscribe != nil {
		h.unsubscribe()
		h.unsubscribe = nil
	}
}

func (h *HubScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 40 || width < 100

	cw := components.ContentWidth(width)
	qs := statsFor(h.state, h.bestScore)

	var sections []string

	sections = append(sections, renderTitle(width, cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.state), cw))
	}

	sections = append(sections, renderStatsBar(h.state, qs, cw, compact))
	sections = append(sections, renderLevelProgress(h.state, cw))

	if !compact {
		if ach := renderAchievements(h.state, cw); ach != "" {
			sections = append(sections, ach)
		}
		sections = append(sections, components.ArcadeMenu(h.menu, cw))
	} else {
		sections = append(sections, components.CompactMenu(h.menu, cw))
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	content := strings.Join(sections, sep)

	return components.CabinetFrame(content, width, height)
}

func (h *HubScreen) Title() string {
	return "Choose Your Path"
}

func (h *HubScreen) KeyHints() []layout.KeyHint {
	return components.Hints(components.Keys.Up, components.Keys.Down, components.Keys.Select, components.Keys.Quit)
}
