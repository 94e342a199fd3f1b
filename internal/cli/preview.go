package cli

import (
	"github.com/spf13/cobra"

	"resume-pdf/internal/adapter/artifact"
	"resume-pdf/internal/app"
	"resume-pdf/pkg/logging"
)

func (c *cli) newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Write the composed HTML to PREVIEW_FILE without printing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withApp(ctx, func(a *app.App) error {
				html, fallback, err := a.Processor.ComposeHTML(ctx, c.cfg.ResumeName)
				if err != nil {
					return err
				}
				loc, err := artifact.NewFileSink(c.cfg.PreviewFile).Write(ctx, []byte(html), "text/html; charset=utf-8")
				if err != nil {
					return err
				}
				logging.FromContext(ctx).Info("Wrote preview", "dest", loc, "fallback", fallback)
				return nil
			})
		},
	}
}
