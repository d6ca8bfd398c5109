package minigame

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindarena/internal/arcade"
	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/screen"
	"github.com/abhisek/mindarena/internal/store"
	"github.com/abhisek/mindarena/internal/timer"
)

type harness struct {
	m     *MinigameScreen
	p     *progress.Store
	armed map[string]timer.Timer
}

func newHarness(t *testing.T, cfg arcade.Config) *harness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := progress.Open(context.Background(), store.NewMemKV(), progress.Options{Logger: logger})
	require.NoError(t, err)

	h := &harness{p: p, armed: map[string]timer.Timer{}}
	h.m = New(cfg, p, rand.New(rand.NewPCG(3, 5)))
	h.m.arm = func(ts []timer.Timer) tea.Cmd {
		for _, tm := range ts {
			h.armed[tm.Tag] = tm
		}
		return nil
	}
	return h
}

func (h *harness) press(code rune) {
	h.m.Update(tea.KeyPressMsg{Code: code})
}

func (h *harness) fire(tag string) {
	tm, ok := h.armed[tag]
	if !ok {
		return
	}
	delete(h.armed, tag)
	h.m.Update(screen.TimerFiredMsg{Token: tm.Token, Tag: tm.Tag})
}

func TestStartArmsBothTimers(t *testing.T) {
	h := newHarness(t, arcade.DefaultConfig())
	assert.Contains(t, h.m.View(100, 30), "Energy Catch")

	h.press(tea.KeyEnter)
	assert.Equal(t, arcade.StatePlaying, h.m.Engine().State())
	assert.Contains(t, h.armed, arcade.TagTick)
	assert.Contains(t, h.armed, arcade.TagSpawn)

	h.fire(arcade.TagSpawn)
	assert.Len(t, h.m.Engine().Entities(), 1)
	assert.Contains(t, h.armed, arcade.TagSpawn, "repeating timer should be re-armed")
}

func TestMissedOrbEndsRunAndCredits(t *testing.T) {
	cfg := arcade.DefaultConfig()
	cfg.Lives = 1
	h := newHarness(t, cfg)
	h.press(tea.KeyEnter)

	// Spawn until a beneficial orb is on the field, then let it fall past
	// the bottom edge.
	for i := 0; i < 50; i++ {
		ent, err := h.m.Engine().Spawn()
		require.NoError(t, err)
		if ent.Beneficial {
			break
		}
	}
	for i := 0; i < 2000 && h.m.Engine().State() == arcade.StatePlaying; i++ {
		h.fire(arcade.TagTick)
	}

	require.Equal(t, arcade.StateGameOver, h.m.Engine().State())
	assert.Equal(t, 0, h.m.Engine().Pending())
	assert.Equal(t, 1, h.p.State().EnergyOrbs, "a scoreless run still earns one orb")
	assert.Contains(t, h.m.View(100, 30), "Game Over!")

	// Back to Menu
	h.press(tea.KeyDown)
	h.press(tea.KeyEnter)
	assert.Equal(t, arcade.StateMenu, h.m.Engine().State())
}

func TestPlayAgainRestarts(t *testing.T) {
	cfg := arcade.DefaultConfig()
	cfg.Lives = 1
	h := newHarness(t, cfg)
	h.press(tea.KeyEnter)

	for i := 0; i < 50; i++ {
		ent, _ := h.m.Engine().Spawn()
		if !ent.Beneficial {
			_, err := h.m.Engine().Tap(context.Background(), ent.ID)
			require.NoError(t, err)
			break
		}
	}
	require.Equal(t, arcade.StateGameOver, h.m.Engine().State())

	h.press(tea.KeyEnter)
	assert.Equal(t, arcade.StatePlaying, h.m.Engine().State())
	assert.Equal(t, 0, h.m.Engine().Score())
}

func TestLaneKeyTapsEntityInLane(t *testing.T) {
	h := newHarness(t, arcade.DefaultConfig())
	h.press(tea.KeyEnter)

	ent, err := h.m.Engine().Spawn()
	require.NoError(t, err)
	lives := h.m.Engine().Lives()

	lane := h.m.Engine().Config().LaneOf(ent.X)
	key := rune('1' + lane)
	h.m.Update(tea.KeyPressMsg{Code: key, Text: string(key)})

	assert.Empty(t, h.m.Engine().Entities())
	if ent.Beneficial {
		assert.Equal(t, 10, h.m.Engine().Score())
		assert.Equal(t, lives, h.m.Engine().Lives())
	} else {
		assert.Equal(t, 0, h.m.Engine().Score())
		assert.Equal(t, lives-1, h.m.Engine().Lives())
	}
}

func TestLaneKeyOutOfRangeIgnored(t *testing.T) {
	h := newHarness(t, arcade.DefaultConfig())
	_, ok := h.m.laneKey("0")
	assert.False(t, ok)
	_, ok = h.m.laneKey("6")
	assert.False(t, ok)
	lane, ok := h.m.laneKey("5")
	assert.True(t, ok)
	assert.Equal(t, 4, lane)
}

func TestTeardownAbandonsWithoutCredit(t *testing.T) {
	h := newHarness(t, arcade.DefaultConfig())
	h.press(tea.KeyEnter)
	tick := h.armed[arcade.TagTick]

	h.m.Teardown()
	assert.Equal(t, 0, h.m.Engine().Pending())
	assert.Equal(t, 0, h.p.State().EnergyOrbs)

	delete(h.armed, arcade.TagTick)
	h.m.Update(screen.TimerFiredMsg{Token: tick.Token, Tag: tick.Tag})
	assert.NotContains(t, h.armed, arcade.TagTick)
}

func TestRenderFieldPlacesEntities(t *testing.T) {
	cfg := arcade.DefaultConfig()
	ents := []arcade.Entity{
		{X: cfg.Margin + 1, Y: 10, Beneficial: true},
		{X: cfg.Width - cfg.Margin - 1, Y: cfg.Height - 1},
		{X: 200, Y: -40, Beneficial: true},
	}
	field := renderField(cfg, ents, 10, cfg.Lanes*laneWidth)

	lines := strings.Split(field, "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "★")
	assert.Contains(t, lines[9], "✖")
	assert.Equal(t, 1, strings.Count(field, "★"), "entities above the field are not drawn")
}
