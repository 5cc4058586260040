package commands

import (
	"encoding/json"

	"github.com/airgapci/airlock/internal/adapters/report"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the report of the last verification run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			last, err := c.app.LastReport(configPath(cmd))
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(last); err != nil {
					return zerr.Wrap(err, "failed to encode report")
				}
				return nil
			}

			report.Render(cmd.OutOrStdout(), last)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the raw JSON report")
	return cmd
}
