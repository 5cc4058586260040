package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Run the full hermetic verification pipeline",
		Long: "Runs the four verification steps in order: probe the network (must be\n" +
			"unreachable), load the prefetched dependency environment, build offline,\n" +
			"smoke test the artifact. The first failure aborts the run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Verify(cmd.Context(), configPath(cmd))
		},
	}
}
