package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/airgapci/airlock/internal/adapters/config"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default airlock.yaml to the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")

			if _, err := os.Stat(config.DefaultFilename); err == nil && !force {
				return zerr.With(zerr.New("config file already exists, use --force to overwrite"), "path", config.DefaultFilename)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return zerr.Wrap(err, "failed to stat config file")
			}

			if err := os.WriteFile(config.DefaultFilename, config.DefaultYAML(), 0o644); err != nil { //nolint:gosec // config file is world-readable
				return zerr.Wrap(err, "failed to write config file")
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.DefaultFilename)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	return cmd
}
