package migration

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration is one idempotent schema change.
type Migration struct {
	Name  string
	Query string
}

// Migrations lists the render log schema in application order.
var Migrations = []Migration{
	{
		Name: "create_resume_renders",
		Query: `CREATE TABLE IF NOT EXISTS resume_renders (
			id UUID PRIMARY KEY,
			resume_name TEXT NOT NULL,
			status TEXT NOT NULL,
			theme TEXT NOT NULL DEFAULT '',
			page_size TEXT NOT NULL DEFAULT '',
			bytes INTEGER NOT NULL DEFAULT 0,
			pages INTEGER NOT NULL DEFAULT 0,
			cache_hit BOOLEAN NOT NULL DEFAULT FALSE,
			fallback BOOLEAN NOT NULL DEFAULT FALSE,
			error TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
	},
	{
		Name:  "index_resume_renders_name",
		Query: `CREATE INDEX IF NOT EXISTS resume_renders_name_created_idx ON resume_renders (resume_name, created_at DESC);`,
	},
}

// RunMigrations applies every migration on pool. Each statement is safe to
// repeat, so this runs on every startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *log.Logger) error {
	logger = logger.WithPrefix("migration")
	logger.Info("Starting database migrations")

	for _, m := range Migrations {
		if _, err := pool.Exec(ctx, m.Query); err != nil {
			logger.Error("Migration failed", "name", m.Name, "err", err)
			return err
		}
		logger.Debug("Migration completed", "name", m.Name)
	}

	logger.Info("All migrations completed", "count", len(Migrations))
	return nil
}
