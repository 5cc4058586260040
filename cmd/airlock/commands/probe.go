package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Run only the network isolation check",
		Long:  "Probes the configured targets and exits 0 only when none of them answer.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.Probe(cmd.Context(), configPath(cmd))
			if result != nil {
				out := cmd.OutOrStdout()
				for _, probe := range result.Probes {
					state := "unreachable"
					if probe.Reachable {
						state = "REACHABLE"
					}
					_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", probe.Target, state, probe.Detail)
				}
			}
			return err
		},
	}
}
