package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/quiz"
	"github.com/abhisek/mindarena/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show player statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		catalog, err := quiz.Load(rt.cfg.Catalog)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		ctx := cmd.Context()
		st := rt.progress.State()
		arcadeStats, err := rt.progress.RunStats(ctx, store.RunKindArcade)
		if err != nil {
			return err
		}
		challengeStats, err := rt.progress.RunStats(ctx, store.RunKindChallenge)
		if err != nil {
			return err
		}
		recent, err := rt.progress.RecentRuns(ctx, store.RunKindArcade, recentRuns)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		row := func(label string, value any) {
			fmt.Fprintf(out, "%-24s %v\n", label, value)
		}
		rule := func() {
			fmt.Fprintln(out, strings.Repeat("─", 40))
		}

		row("Energy orbs", st.EnergyOrbs)
		row("Level", st.CurrentLevel)
		row("Level progress", fmt.Sprintf("%.0f%%", st.LevelProgress()*100))
		row("Lessons completed", st.TotalLessonsCompleted)
		row("Modules completed", fmt.Sprintf("%d/%d", catalog.CompletedCount(st.ModuleCompleted), catalog.Len()))
		row("Playtime", st.FormattedPlaytime())
		rule()
		row("Arcade games", arcadeStats.Runs)
		row("Arcade best score", arcadeStats.BestScore)
		row("Arcade orbs", arcadeStats.TotalOrbs)
		row("Challenges won", challengeStats.Runs)

		if len(recent) > 0 {
			rule()
			fmt.Fprintln(out, "Recent arcade runs")
			for _, r := range recent {
				fmt.Fprintf(out, "  %s  score %-5d +%d orbs  %.0fs\n",
					r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Orbs, r.DurationSecs)
			}
		}

		var unlocked []string
		for _, a := range progress.Achievements(st) {
			if a.Unlocked {
				unlocked = append(unlocked, a.Title)
			}
		}
		if len(unlocked) > 0 {
			rule()
			row("Achievements", strings.Join(unlocked, ", "))
		}
		return nil
	},
}

// recentRuns is how many arcade runs stats lists.
const recentRuns = 5
