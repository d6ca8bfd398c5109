package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mindarena/internal/config"
	"github.com/abhisek/mindarena/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mindarena",
	Short: "Brain training in your terminal",
	Long:  "Mind Arena: short skill modules, a daily pattern challenge and an arcade game, all feeding one pool of energy orbs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINDARENA_DB env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MINDARENA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
