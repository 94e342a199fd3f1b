// Package cli implements the resumepdf command-line interface.
//
// Running resumepdf with no subcommand generates the PDF, exactly like
// "resumepdf generate". All settings come from the environment (or a .env
// file); see internal/config for the variables.
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"resume-pdf/internal/app"
	"resume-pdf/internal/config"
	"resume-pdf/pkg/logging"
)

// cli holds the validated configuration; the logger travels in the command
// context and is read back with logging.FromContext.
type cli struct {
	cfg *config.Config

	// openApp is replaced in tests.
	openApp func(ctx context.Context, cfg *config.Config, logger *log.Logger) (*app.App, error)
}

// Execute runs the CLI with ctx and returns the first error.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	c := &cli{openApp: app.New}

	root := &cobra.Command{
		Use:           "resumepdf",
		Short:         "Render a stored resume to a one-page PDF",
		Long:          "resumepdf reads a resume from MongoDB, composes it into a print-ready HTML document and prints it to PDF with headless Chrome.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.generate(cmd.Context())
		},
	}

	root.AddCommand(c.newGenerateCmd())
	root.AddCommand(c.newSeedCmd())
	root.AddCommand(c.newPreviewCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	c.cfg = cfg
	cmd.SetContext(logging.WithLogger(cmd.Context(), logging.New(os.Stderr, level)))
	return nil
}

// withApp opens the pipeline for the duration of fn.
func (c *cli) withApp(ctx context.Context, fn func(*app.App) error) error {
	logger := logging.FromContext(ctx)
	a, err := c.openApp(ctx, c.cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			logger.Warn("close connections", "err", err)
		}
	}()
	return fn(a)
}
