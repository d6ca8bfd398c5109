package hub

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindarena/internal/arcade"
	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/quiz"
	"github.com/abhisek/mindarena/internal/router"
	"github.com/abhisek/mindarena/internal/screens/arena"
	"github.com/abhisek/mindarena/internal/screens/minigame"
	"github.com/abhisek/mindarena/internal/store"
)

func newHub(t *testing.T) (*HubScreen, *progress.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "hub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := progress.Open(context.Background(), st.KV(), progress.Options{Runs: st.RunRepo(), Logger: logger})
	require.NoError(t, err)

	h := New(Deps{Progress: p, Catalog: quiz.Builtin(), Arcade: arcade.DefaultConfig(), Logger: logger})
	t.Cleanup(h.Teardown)
	return h, p
}

func press(h *HubScreen, code rune) tea.Cmd {
	_, cmd := h.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func TestMenuLabels(t *testing.T) {
	h, _ := newHub(t)
	assert.Equal(t,
		[]string{"SKILL ARENA", "DAILY CHALLENGE", "ENERGY CATCH", "SETTINGS", "EXIT"},
		h.menu.Labels())
}

func TestSelectOpensScreens(t *testing.T) {
	h, _ := newHub(t)

	cmd := press(h, tea.KeyEnter)
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &arena.ArenaScreen{}, msg.Screen)

	press(h, tea.KeyDown)
	press(h, tea.KeyDown)
	cmd = press(h, tea.KeyEnter)
	require.NotNil(t, cmd)
	msg, ok = cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &minigame.MinigameScreen{}, msg.Screen)
}

func TestExitQuits(t *testing.T) {
	h, _ := newHub(t)
	for i := 0; i < 4; i++ {
		press(h, tea.KeyDown)
	}
	cmd := press(h, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSubscriptionRefreshesStats(t *testing.T) {
	h, p := newHub(t)

	_, err := p.CreditRun(context.Background(), store.RunRecord{
		RunID: "r1", Kind: store.RunKindArcade, Score: 40, Orbs: 4, DurationSecs: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, h.state.EnergyOrbs)
	assert.Equal(t, 40, h.bestScore)
	assert.Contains(t, h.View(120, 60), "40 BEST")
}

func TestTeardownUnsubscribes(t *testing.T) {
	h, p := newHub(t)
	h.Teardown()

	_, err := p.AddOrbs(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 0, h.state.EnergyOrbs)

	h.Teardown()
}

func TestStatsForRank(t *testing.T) {
	s := progress.Default()
	assert.Equal(t, 100, statsFor(s, 0).Rank)

	s.TotalLessonsCompleted = 150
	s.CurrentLevel = 31
	qs := statsFor(s, 90)
	assert.Equal(t, 1, qs.Rank)
	assert.Equal(t, 31, qs.Streak)
	assert.Equal(t, 90, qs.BestScore)
}
