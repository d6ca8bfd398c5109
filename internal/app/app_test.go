package app

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindarena/internal/gate"
	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/quiz"
	"github.com/abhisek/mindarena/internal/screens/hub"
	"github.com/abhisek/mindarena/internal/screens/onboarding"
	"github.com/abhisek/mindarena/internal/screens/webfallback"
	"github.com/abhisek/mindarena/internal/store"
)

func newTestModel(t *testing.T, onboarded bool) (AppModel, *store.MemKV) {
	t.Helper()
	kv := store.NewMemKV()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := progress.Open(context.Background(), kv, progress.Options{Logger: logger})
	require.NoError(t, err)
	if onboarded {
		_, err = p.CompleteOnboarding(context.Background())
		require.NoError(t, err)
	}
	return newAppModel(Options{
		Progress: p,
		Catalog:  quiz.Builtin(),
		Prober:   gate.NewProber("https://example.invalid/gate"),
		KV:       kv,
		Logger:   logger,
	}), kv
}

func resolveWith(t *testing.T, m AppModel, d gate.Decision) AppModel {
	t.Helper()
	next, _ := m.Update(probeResultMsg{decision: d})
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am
}

func TestStartsLoading(t *testing.T) {
	m, _ := newTestModel(t, false)
	assert.Equal(t, gate.ModeLoading, m.Mode())
	assert.NotNil(t, m.Init())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Contains(t, next.(AppModel).render(), "Loading")
}

func TestResolveModes(t *testing.T) {
	tests := []struct {
		name      string
		onboarded bool
		decision  gate.Decision
		want      gate.Mode
	}{
		{"open gate", false, gate.Decision{Open: true, StatusCode: 200}, gate.ModeWebFallback},
		{"open gate onboarded", true, gate.Decision{Open: true, StatusCode: 200}, gate.ModeWebFallback},
		{"closed new player", false, gate.Decision{StatusCode: 404}, gate.ModeNativeOnboarding},
		{"closed returning player", true, gate.Decision{StatusCode: 500}, gate.ModeNativeHub},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, tt.onboarded)
			m = resolveWith(t, m, tt.decision)
			assert.Equal(t, tt.want, m.Mode())
			m.Close()
		})
	}
}

func TestRootScreenMatchesMode(t *testing.T) {
	m, _ := newTestModel(t, false)
	m = resolveWith(t, m, gate.Decision{})
	_, ok := m.router.Active().(*onboarding.OnboardingScreen)
	assert.True(t, ok, "new player should see onboarding")

	m, _ = newTestModel(t, true)
	m = resolveWith(t, m, gate.Decision{})
	_, ok = m.router.Active().(*hub.HubScreen)
	assert.True(t, ok, "returning player should see the hub")
	m.Close()

	m, _ = newTestModel(t, true)
	m = resolveWith(t, m, gate.Decision{Open: true, StatusCode: 200})
	wf, ok := m.router.Active().(*webfallback.WebFallbackScreen)
	require.True(t, ok)
	assert.Equal(t, "https://example.invalid/gate", wf.URL())
}

func TestResolveRunsOnce(t *testing.T) {
	m, _ := newTestModel(t, true)
	m = resolveWith(t, m, gate.Decision{})
	first := m.router

	m = resolveWith(t, m, gate.Decision{Open: true, StatusCode: 200})
	assert.Equal(t, gate.ModeNativeHub, m.Mode())
	assert.Same(t, first, m.router)
	m.Close()
}

func TestResolveSavesFlags(t *testing.T) {
	m, kv := newTestModel(t, true)
	resolveWith(t, m, gate.Decision{Open: true, StatusCode: 200})

	f, err := gate.LoadFlags(context.Background(), kv)
	require.NoError(t, err)
	assert.Equal(t, gate.Flags{IsBlock: false, IsRequested: true}, f)
}

func TestHeaderShowsProgress(t *testing.T) {
	m, _ := newTestModel(t, true)
	_, err := m.opts.Progress.AddOrbs(context.Background(), 7)
	require.NoError(t, err)

	m = resolveWith(t, m, gate.Decision{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := next.(AppModel).render()

	assert.True(t, strings.Contains(view, "✪ 7"), "header should show orbs")
	assert.Contains(t, view, "Lv 1")
	next.(AppModel).Close()
}
