package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindarena/internal/config"
	"github.com/abhisek/mindarena/internal/quiz"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play a skill module on the command line (no database)",
	Long: `Answer the tasks of one module interactively.

This is a stateless tool for checking catalog content: nothing is credited
and no progress is saved.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("module", "", "Module ID (required)")
	_ = previewCmd.MarkFlagRequired("module")
}

func runPreview(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("module")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalog, err := quiz.Load(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	m, ok := catalog.ByID(id)
	if !ok {
		return fmt.Errorf("no module found for %q", id)
	}
	out := cmd.OutOrStdout()
	if len(m.Tasks) == 0 {
		fmt.Fprintf(out, "%s has no tasks yet.\n", m.Title)
		return nil
	}

	engine := quiz.NewEngine(m, nil)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	var correct int

	fmt.Fprintf(out, "Module: %s (%d tasks)\n\n", m.Title, engine.Total())

	for engine.Phase() != quiz.PhaseFinished {
		task := engine.Task()
		fmt.Fprintf(out, "── Question %d/%d ──\n", engine.Index()+1, engine.Total())
		fmt.Fprintln(out, task.Question)
		for j, o := range task.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, o)
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || engine.Select(n-1) != nil {
			fmt.Fprintln(out, "(enter an option number)")
			fmt.Fprintln(out)
			continue
		}

		ok, _ := engine.Check()
		if ok {
			correct++
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Not quite.\033[0m Answer: %s\n", task.Options[task.CorrectIndex])
		}
		if task.Explanation != "" {
			fmt.Fprintf(out, "Explanation: %s\n", task.Explanation)
		}
		fmt.Fprintln(out)

		if _, err := engine.Advance(cmd.Context()); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", correct, engine.Total())
	return nil
}
