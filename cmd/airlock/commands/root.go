// Package commands implements the CLI commands for the airlock verification harness.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/airgapci/airlock/internal/build"
	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for airlock.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Verify(ctx context.Context, configPath string) error
	Probe(ctx context.Context, configPath string) (*domain.ProbeResult, error)
	LoadEnv(configPath, envPath string) (*domain.Overlay, error)
	LastReport(configPath string) (*domain.Report, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "airlock",
		Short:         "Hermetic-build verification for CI pipelines",
		Long:          "airlock proves a build is hermetic: no network access, all dependencies resolved from a prefetched offline environment.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the airlock.yaml config file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newProbeCmd())
	rootCmd.AddCommand(c.newEnvCmd())
	rootCmd.AddCommand(c.newReportCmd())
	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
