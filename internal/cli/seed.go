package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-pdf/internal/app"
	"resume-pdf/internal/model"
	"resume-pdf/pkg/logging"
)

func (c *cli) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file.json]",
		Short: "Upsert a resume document",
		Long: `Validate a resume JSON file and upsert it by its name field. Without a
file, the built-in sample resume is stored under RESUME_NAME.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, rec, err := c.seedRecord(args)
			if err != nil {
				return err
			}
			return c.seed(cmd.Context(), name, rec)
		},
	}
}

// seedRecord reads and validates the input before any connection is opened.
func (c *cli) seedRecord(args []string) (string, model.Record, error) {
	if len(args) == 0 {
		return c.cfg.ResumeName, model.Default(), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", model.Record{}, err
	}
	if err := model.Validate(data); err != nil {
		return "", model.Record{}, fmt.Errorf("%s: %w", args[0], err)
	}
	rec, err := model.FromJSON(data)
	if err != nil {
		return "", model.Record{}, fmt.Errorf("%s: %w", args[0], err)
	}
	return rec.Name, rec, nil
}

func (c *cli) seed(ctx context.Context, name string, rec model.Record) error {
	return c.withApp(ctx, func(a *app.App) error {
		stored, err := a.Resumes.UpsertByName(ctx, name, rec)
		if err != nil {
			return err
		}
		logging.FromContext(ctx).Info("Upserted resume", "name", stored.Name, "projects", len(stored.Projects), "skills", len(stored.Skills))
		return nil
	})
}
