package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindarena/internal/config"
	"github.com/abhisek/mindarena/internal/quiz"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the skill modules in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		catalog, err := quiz.Load(cfg.Catalog)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		fmt.Printf("%-20s  %-28s  %5s  %s\n", "ID", "Title", "Tasks", "Description")
		fmt.Println(strings.Repeat("─", 100))

		for _, m := range catalog.All() {
			desc := m.Description
			if len(desc) > 40 {
				desc = desc[:37] + "..."
			}
			fmt.Printf("%-20s  %-28s  %5d  %s\n", m.ID, m.Title, len(m.Tasks), desc)
		}

		fmt.Printf("\n%d modules\n", catalog.Len())
		return nil
	},
}
