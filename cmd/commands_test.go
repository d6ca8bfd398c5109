package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindarena/internal/gate"
	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/store"
)

// execute runs the root command with args and stdin, returning everything
// written to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MINDARENA_DB", "")
	t.Setenv("MINDARENA_CATALOG", "")
	t.Setenv("MINDARENA_LOG_FILE", "")
	t.Setenv("MINDARENA_GATE_URL", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// seedDB creates a database at a temp path and lets fn write to it.
func seedDB(t *testing.T, fn func(ctx context.Context, st *store.Store)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mindarena.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	fn(context.Background(), st)
	require.NoError(t, st.Close())
	return path
}

func loadProgress(t *testing.T, path string) (progress.State, store.RunStats) {
	t.Helper()
	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	state, err := progress.Load(ctx, st.KV())
	require.NoError(t, err)
	runs, err := st.RunRepo().Stats(ctx, store.RunKindArcade)
	require.NoError(t, err)
	return state, runs
}

func TestStatsCommand(t *testing.T) {
	db := seedDB(t, func(ctx context.Context, st *store.Store) {
		require.NoError(t, st.KV().Set(ctx, progress.KeyEnergyOrbs, 7))
		require.NoError(t, st.KV().Set(ctx, progress.KeyTotalLessonsCompleted, 4))
		require.NoError(t, st.RunRepo().Append(ctx, store.RunRecord{
			RunID:        "run-1",
			Kind:         store.RunKindArcade,
			Score:        42,
			Orbs:         3,
			DurationSecs: 30,
			CreatedAt:    time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local),
		}))
	})

	out, err := execute(t, "", "stats", "--db", db)
	require.NoError(t, err)

	assert.Regexp(t, `Energy orbs\s+7\n`, out)
	assert.Regexp(t, `Lessons completed\s+4\n`, out)
	assert.Regexp(t, `Arcade games\s+1\n`, out)
	assert.Regexp(t, `Arcade best score\s+42\n`, out)
	assert.Contains(t, out, "Recent arcade runs")
	assert.Contains(t, out, "2026-03-01 09:30  score 42")
	assert.Contains(t, out, "+3 orbs")
}

func TestStatsCommandFreshDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "fresh.db")

	out, err := execute(t, "", "stats", "--db", db)
	require.NoError(t, err)

	assert.Regexp(t, `Level\s+1\n`, out)
	assert.Regexp(t, `Arcade games\s+0\n`, out)
	assert.NotContains(t, out, "Recent arcade runs")
	assert.NotContains(t, out, "Achievements")
}

func TestResetCommandRecoversCorruptValue(t *testing.T) {
	db := seedDB(t, func(ctx context.Context, st *store.Store) {
		require.NoError(t, st.KV().Set(ctx, progress.KeyTotalLessonsCompleted, 2.5))
		require.NoError(t, st.KV().Set(ctx, progress.KeyEnergyOrbs, 40))
		require.NoError(t, st.RunRepo().Append(ctx, store.RunRecord{RunID: "run-1", Kind: store.RunKindArcade, Score: 9}))
	})

	out, err := execute(t, "", "reset", "--yes", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "could not be read")
	assert.Contains(t, out, "Progress reset.")

	state, runs := loadProgress(t, db)
	assert.Equal(t, 0, state.EnergyOrbs)
	assert.Equal(t, 0, state.TotalLessonsCompleted)
	assert.Equal(t, 1, state.CurrentLevel)
	assert.True(t, state.HasCompletedOnboarding)
	assert.Equal(t, 0, runs.Runs)
}

func TestResetCommandCancelled(t *testing.T) {
	db := seedDB(t, func(ctx context.Context, st *store.Store) {
		require.NoError(t, st.KV().Set(ctx, progress.KeyEnergyOrbs, 12))
	})

	out, err := execute(t, "n\n", "reset", "--yes=false", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Type y to confirm")
	assert.Contains(t, out, "Cancelled.")

	state, _ := loadProgress(t, db)
	assert.Equal(t, 12, state.EnergyOrbs)
}

func TestPreviewCommand(t *testing.T) {
	// mind_boost answers are options 1, 2 and 1; "x" is rejected first.
	out, err := execute(t, "x\n1\n3\n1\n", "preview", "--module", "mind_boost")
	require.NoError(t, err)

	assert.Contains(t, out, "Module: Mind Boost (3 tasks)")
	assert.Contains(t, out, "(enter an option number)")
	assert.Contains(t, out, "Not quite.")
	assert.Contains(t, out, "Answer: 5")
	assert.Contains(t, out, "Summary: 2/3 correct")
}

func TestPreviewCommandInputClosed(t *testing.T) {
	out, err := execute(t, "1\n", "preview", "--module", "mind_boost")
	require.NoError(t, err)

	assert.Contains(t, out, "(input closed)")
	assert.Contains(t, out, "Summary: 1/3 correct")
}

func TestPreviewCommandUnknownModule(t *testing.T) {
	_, err := execute(t, "", "preview", "--module", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestGateCommandShowsStoredFlags(t *testing.T) {
	db := seedDB(t, func(ctx context.Context, st *store.Store) {
		require.NoError(t, gate.SaveFlags(ctx, st.KV(), gate.Flags{IsBlock: false, IsRequested: true}))
	})

	out, err := execute(t, "", "gate", "--db", db)
	require.NoError(t, err)

	assert.Contains(t, out, "(not configured)")
	assert.Regexp(t, `Mode\s+native-onboarding\n`, out)
	assert.Regexp(t, `Stored\s+isBlock=false isRequested=true\n`, out)
	assert.Regexp(t, `Next\s+isBlock=true isRequested=true\n`, out)

	// The command only reports; the stored flags are untouched.
	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	f, err := gate.LoadFlags(context.Background(), st.KV())
	require.NoError(t, err)
	assert.Equal(t, gate.Flags{IsBlock: false, IsRequested: true}, f)
}

func TestGateCommandFreshInstall(t *testing.T) {
	db := filepath.Join(t.TempDir(), "fresh.db")

	out, err := execute(t, "", "gate", "--db", db)
	require.NoError(t, err)

	assert.Regexp(t, `Stored\s+isBlock=true isRequested=false\n`, out)
	assert.Regexp(t, `Next\s+isBlock=true isRequested=true\n`, out)
}
