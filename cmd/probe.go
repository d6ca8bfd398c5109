package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindarena/internal/gate"
)

var probeCmd = &cobra.Command{
	Use:     "probe",
	Aliases: []string{"gate"},
	Short:   "Run the launch gate probe and print the decision",
	Long: `Run the launch gate check once and print the result next to the flags
stored by the last launch. The stored flags are not changed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		stored, err := gate.LoadFlags(ctx, rt.store.KV())
		if err != nil {
			rt.logger.Warn("stored gate flags unreadable", "error", err)
		}

		p := gate.NewProber(rt.cfg.GateURL,
			gate.WithTimeout(rt.cfg.GateTimeout),
			gate.WithLogger(rt.logger))
		d := p.Probe(ctx)

		out := cmd.OutOrStdout()
		url := p.URL()
		if url == "" {
			url = "(not configured)"
		}
		fmt.Fprintf(out, "%-10s %s\n", "URL", url)
		fmt.Fprintf(out, "%-10s %d\n", "Status", d.StatusCode)
		fmt.Fprintf(out, "%-10s %s\n", "Elapsed", d.Elapsed)
		if d.Err != nil {
			fmt.Fprintf(out, "%-10s %v\n", "Error", d.Err)
		}
		fmt.Fprintf(out, "%-10s %s\n", "Mode", gate.Resolve(d, rt.progress.State().HasCompletedOnboarding))
		fmt.Fprintf(out, "%-10s isBlock=%t isRequested=%t\n", "Stored", stored.IsBlock, stored.IsRequested)
		if now := gate.FlagsFor(d); now != stored {
			fmt.Fprintf(out, "%-10s isBlock=%t isRequested=%t\n", "Next", now.IsBlock, now.IsRequested)
		}
		return nil
	},
}
