// Package minigame hosts the Energy Catch arcade game.
package minigame

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindarena/internal/arcade"
	"github.com/abhisek/mindarena/internal/screen"
	"github.com/abhisek/mindarena/internal/store"
	"github.com/abhisek/mindarena/internal/timer"
	"github.com/abhisek/mindarena/internal/ui/components"
	"github.com/abhisek/mindarena/internal/ui/layout"
	"github.com/abhisek/mindarena/internal/ui/theme"
)

// Feedback durations, in ticks.
const (
	lightFlashTicks = 8
	heavyFlashTicks = 20
)

// laneWidth is the number of columns drawn per lane.
const laneWidth = 8

// Ledger credits runs and reports the run history. *progress.Store
// satisfies it.
type Ledger interface {
	arcade.Ledger
	RunStats(ctx context.Context, kind string) (store.RunStats, error)
}

// MinigameScreen runs the arcade engine on the Bubble Tea loop.
type MinigameScreen struct {
	engine *arcade.Engine
	ledger Ledger
	arm    func([]timer.Timer) tea.Cmd
	over   components.Menu

	best   int
	flash  int
	signal arcade.Signal
	err    error
}

var (
	_ screen.Screen     = (*MinigameScreen)(nil)
	_ screen.Teardowner = (*MinigameScreen)(nil)
)

// New creates the game in its menu state. A nil rng draws from the global
// source.
func New(cfg arcade.Config, ledger Ledger, rng *rand.Rand) *MinigameScreen {
	m := &MinigameScreen{
		engine: arcade.New(cfg, ledger, rng),
		ledger: ledger,
		arm:    screen.TimerCmds,
	}
	m.over = components.NewMenu([]components.MenuItem{
		{Label: "Play Again", Action: m.start},
		{Label: "Back to Menu", Action: func() tea.Cmd {
			_ = m.engine.ToMenu()
			return nil
		}},
	})
	m.refreshBest()
	return m
}

func (m *MinigameScreen) refreshBest() {
	if m.ledger == nil {
		return
	}
	stats, err := m.ledger.RunStats(context.Background(), store.RunKindArcade)
	if err != nil {
		return
	}
	m.best = stats.BestScore
}

func (m *MinigameScreen) start() tea.Cmd {
	ts, err := m.engine.Start()
	if err != nil {
		return nil
	}
	m.flash = 0
	m.err = nil
	m.over.Selected = 0
	return m.arm(ts)
}

func (m *MinigameScreen) Init() tea.Cmd {
	return nil
}

func (m *MinigameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.TimerFiredMsg:
		return m, m.fire(msg)

	case tea.KeyPressMsg:
		switch m.engine.State() {
		case arcade.StateMenu:
			if key.Matches(msg, components.Keys.Select) {
				return m, m.start()
			}
		case arcade.StatePlaying:
			if lane, ok := m.laneKey(msg.String()); ok {
				sig, err := m.engine.TapLane(context.Background(), lane)
				m.feedback(sig)
				m.afterStep(err)
			}
		case arcade.StateGameOver:
			var cmd tea.Cmd
			m.over, cmd = m.over.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *MinigameScreen) fire(msg screen.TimerFiredMsg) tea.Cmd {
	ts, err := m.engine.Fire(context.Background(), msg.Token)
	if msg.Tag == arcade.TagTick && m.flash > 0 {
		m.flash--
	}
	m.afterStep(err)
	return m.arm(ts)
}

// afterStep records a credit error and refreshes the best score once the
// run has ended.
func (m *MinigameScreen) afterStep(err error) {
	if m.engine.State() != arcade.StateGameOver {
		return
	}
	if err != nil {
		m.err = err
	}
	m.refreshBest()
}

func (m *MinigameScreen) feedback(sig arcade.Signal) {
	switch sig {
	case arcade.SignalLight:
		m.signal, m.flash = sig, lightFlashTicks
	case arcade.SignalHeavy:
		m.signal, m.flash = sig, heavyFlashTicks
	}
}

// laneKey maps 1..Lanes to lane indexes.
func (m *MinigameScreen) laneKey(s string) (int, bool) {
	lanes := m.engine.Config().Lanes
	if len(s) != 1 || s[0] < '1' || int(s[0]-'0') > lanes {
		return 0, false
	}
	return int(s[0] - '1'), true
}

// Teardown abandons a run in progress without credit.
func (m *MinigameScreen) Teardown() {
	m.engine.Teardown()
}

// Engine exposes the underlying arcade engine.
func (m *MinigameScreen) Engine() *arcade.Engine {
	return m.engine
}

func (m *MinigameScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var content string
	switch m.engine.State() {
	case arcade.StatePlaying:
		content = m.viewPlaying(height)
	case arcade.StateGameOver:
		content = m.viewGameOver(cw)
	default:
		content = m.viewMenu(cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *MinigameScreen) viewMenu(cw int) string {
	best := lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render("Your Best"),
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(fmt.Sprintf("%d", m.best)),
		theme.Subtitle.Render("points"),
	)
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Render("★  ✪  ★"),
		"",
		theme.Title.Width(cw).Render("Energy Catch"),
		theme.Subtitle.Width(cw).Render("Catch the falling energy orbs and avoid the obstacles!"),
		"",
		components.ArcadeCard(best, cw/2+2),
		"",
		theme.Hint.Render(fmt.Sprintf("Keys 1-%d catch the lowest object in a lane", m.engine.Config().Lanes)),
		"",
		components.ArcadeButton("Start Game", true, components.ButtonWidth),
	)
}

func (m *MinigameScreen) viewGameOver(cw int) string {
	f := m.engine.Final()
	sections := []string{
		theme.Title.Width(cw).Render("Game Over!"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("Score: %d", f.Score)),
		theme.Highlight.Render(fmt.Sprintf("+%d ✪", f.Orbs)),
		theme.Subtitle.Render("You earned Energy Orbs!"),
	}
	if m.err != nil {
		sections = append(sections, theme.Hint.Render("Progress could not be saved."))
	}
	sections = append(sections, "", components.ArcadeMenu(m.over, cw))
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (m *MinigameScreen) viewPlaying(height int) string {
	cfg := m.engine.Config()
	lanes := max(1, cfg.Lanes)
	cols := lanes * laneWidth
	// HUD (1) + gap (1) + field border (2) + lane labels (1)
	rows := max(4, height-6)

	hud := fmt.Sprintf("%s   %s   %s",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("Score %d", m.engine.Score())),
		lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("♥", m.engine.Lives())+
			strings.Repeat("♡", max(0, cfg.Lives-m.engine.Lives()))),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("x%.1f", m.engine.Speed())),
	)

	border := theme.Border
	if m.flash > 0 {
		border = theme.Secondary
		if m.signal == arcade.SignalHeavy {
			border = theme.Error
		}
	}
	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(renderField(cfg, m.engine.Entities(), rows, cols))

	labels := make([]string, lanes)
	for i := range labels {
		labels[i] = lipgloss.NewStyle().Width(laneWidth).Align(lipgloss.Center).
			Foreground(theme.TextDim).Render(fmt.Sprintf("%d", i+1))
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		hud,
		"",
		field,
		lipgloss.JoinHorizontal(lipgloss.Top, labels...),
	)
}

// cell is one character of the play field.
type cell struct {
	glyph string
	style *lipgloss.Style
}

var (
	orbStyle    = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	hazardStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	guideStyle  = lipgloss.NewStyle().Foreground(theme.BgCard)
)

// renderField scales entity positions from play-area points onto a
// rows x cols grid. Each lane occupies laneWidth columns so a lane key
// lines up with the column it taps.
func renderField(cfg arcade.Config, ents []arcade.Entity, rows, cols int) string {
	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
		for c := range grid[r] {
			grid[r][c] = cell{glyph: " "}
			if c%laneWidth == 0 && c > 0 {
				grid[r][c] = cell{glyph: "┊", style: &guideStyle}
			}
		}
	}

	lanes := max(1, cfg.Lanes)
	span := (cfg.Width - 2*cfg.Margin) / float64(lanes)
	for _, ent := range ents {
		if ent.Y < 0 || ent.Y >= cfg.Height || span <= 0 {
			continue
		}
		row := int(ent.Y / cfg.Height * float64(rows))
		lane := cfg.LaneOf(ent.X)
		frac := (ent.X - cfg.Margin - float64(lane)*span) / span
		frac = min(max(frac, 0), 0.999)
		col := lane*laneWidth + 1 + int(frac*float64(laneWidth-1))
		if row < 0 || row >= rows || col < 0 || col >= cols {
			continue
		}
		if ent.Beneficial {
			grid[row][col] = cell{glyph: "★", style: &orbStyle}
		} else {
			grid[row][col] = cell{glyph: "✖", style: &hazardStyle}
		}
	}

	var b strings.Builder
	for r, line := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, c := range line {
			if c.style != nil {
				b.WriteString(c.style.Render(c.glyph))
			} else {
				b.WriteString(c.glyph)
			}
		}
	}
	return b.String()
}

func (m *MinigameScreen) Title() string {
	return "Energy Catch"
}

func (m *MinigameScreen) KeyHints() []layout.KeyHint {
	switch m.engine.State() {
	case arcade.StatePlaying:
		return []layout.KeyHint{
			{Key: fmt.Sprintf("1-%d", m.engine.Config().Lanes), Description: "Catch"},
			{Key: "Esc", Description: "Quit run"},
		}
	case arcade.StateGameOver:
		return components.Hints(components.Keys.Up, components.Keys.Down, components.Keys.Select, components.Keys.Back)
	default:
		return components.Hints(components.Keys.Select, components.Keys.Back)
	}
}
