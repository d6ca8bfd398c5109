package settings

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/quiz"
	"github.com/abhisek/mindarena/internal/store"
)

func newSettings(t *testing.T) (*SettingsScreen, *progress.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := progress.Open(context.Background(), st.KV(), progress.Options{Runs: st.RunRepo(), Logger: logger})
	require.NoError(t, err)
	return New(p, quiz.Builtin()), p
}

func text(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestStatsRows(t *testing.T) {
	s := progress.Default()
	s.EnergyOrbs = 12
	s.TotalLessonsCompleted = 2
	s.TotalPlaytime = 3725
	s.CompletedModules["mind_boost"] = true

	rows := Stats(s, quiz.Builtin(), store.RunStats{Runs: 3, BestScore: 90})
	require.Len(t, rows, 7)

	got := map[string]string{}
	for _, r := range rows {
		got[r.Title] = r.Value
	}
	assert.Equal(t, "12", got["Energy Orbs Collected"])
	assert.Equal(t, "1", got["Current Level"])
	assert.Equal(t, "2", got["Lessons Completed"])
	assert.Equal(t, "1h 2m", got["Total Playtime"])
	assert.Equal(t, "1/8", got["Modules Completed"])
	assert.Equal(t, "90", got["Best Score"])
	assert.Equal(t, "3", got["Games Played"])
}

func TestResetConfirmed(t *testing.T) {
	s, p := newSettings(t)
	ctx := context.Background()
	_, err := p.CompleteModule(ctx, "mind_boost")
	require.NoError(t, err)
	_, err = p.CreditRun(ctx, store.RunRecord{RunID: "r1", Kind: store.RunKindArcade, Score: 50, Orbs: 5})
	require.NoError(t, err)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.True(t, s.Confirming())
	assert.Contains(t, s.View(120, 50), "y Reset")

	s.Update(text('y'))
	assert.False(t, s.Confirming())

	st := p.State()
	assert.Equal(t, 0, st.EnergyOrbs)
	assert.False(t, st.ModuleCompleted("mind_boost"))
	assert.True(t, st.HasCompletedOnboarding)

	stats, err := p.RunStats(ctx, store.RunKindArcade)
	require.NoError(t, err)
	assert.Equal(t, store.RunStats{}, stats)
	assert.Contains(t, s.View(120, 50), "Progress reset.")
}

func TestResetCancelled(t *testing.T) {
	s, p := newSettings(t)
	_, err := p.AddOrbs(context.Background(), 3)
	require.NoError(t, err)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(text('x'))
	assert.True(t, s.Confirming(), "other keys keep the prompt open")

	s.Update(text('n'))
	assert.False(t, s.Confirming())
	assert.Equal(t, 3, p.State().EnergyOrbs)
}
