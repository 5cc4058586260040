package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env [path]",
		Short: "Load and print a dependency environment file",
		Long: "Validates the environment file the prefetch tool staged and prints the\n" +
			"variables a verification run would inject into the build. Without an\n" +
			"argument the plan's configured file is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envPath := ""
			if len(args) == 1 {
				envPath = args[0]
			}

			overlay, err := c.app.LoadEnv(configPath(cmd), envPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, entry := range overlay.Environ() {
				_, _ = fmt.Fprintln(out, entry)
			}
			return nil
		},
	}
}
