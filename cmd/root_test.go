package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindarena/internal/config"
)

func newCmd(t *testing.T, db string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().String("db", "", "")
	if db != "" {
		require.NoError(t, c.Flags().Set("db", db))
	}
	return c
}

func TestResolveDBPathPrefersFlag(t *testing.T) {
	dir := t.TempDir()
	flag := filepath.Join(dir, "flag", "a.db")
	env := filepath.Join(dir, "env", "b.db")

	got, err := resolveDBPath(newCmd(t, flag), config.Config{DBPath: env})
	require.NoError(t, err)
	assert.Equal(t, flag, got)
	assert.DirExists(t, filepath.Dir(flag))
}

func TestResolveDBPathFromConfig(t *testing.T) {
	env := filepath.Join(t.TempDir(), "env", "b.db")

	got, err := resolveDBPath(newCmd(t, ""), config.Config{DBPath: env})
	require.NoError(t, err)
	assert.Equal(t, env, got)
}

func TestResolveDBPathDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	got, err := resolveDBPath(newCmd(t, ""), config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "mindarena.db", filepath.Base(got))
}

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"reset", "stats", "modules", "preview", "probe", "version"} {
		assert.Contains(t, names, want)
	}
}
