package cli

import (
	"context"

	"github.com/spf13/cobra"

	"resume-pdf/internal/adapter/artifact"
	"resume-pdf/internal/app"
	"resume-pdf/pkg/logging"
)

func (c *cli) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write the PDF for RESUME_NAME to OUTPUT_FILE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.generate(cmd.Context())
		},
	}
}

func (c *cli) generate(ctx context.Context) error {
	prog := logging.NewProgress(logging.FromContext(ctx))
	return c.withApp(ctx, func(a *app.App) error {
		res, err := a.Processor.Generate(ctx, c.cfg.ResumeName)
		if err != nil {
			return err
		}
		sink, err := artifact.NewSink(ctx, c.cfg.OutputFile)
		if err != nil {
			return err
		}
		loc, err := sink.Write(ctx, res.PDF, "application/pdf")
		if err != nil {
			return err
		}
		prog.Done("Wrote PDF", "dest", loc, "bytes", len(res.PDF), "pages", res.Job.Pages, "fallback", res.Job.Fallback)
		return nil
	})
}
