package repository

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"resume-pdf/internal/domain"
)

// RendersRepo writes the render log. A repo without a pool discards
// everything, which is how the log is switched off.
type RendersRepo struct {
	pool *pgxpool.Pool
}

func NewRendersRepo(pool *pgxpool.Pool) *RendersRepo {
	return &RendersRepo{pool: pool}
}

// Save upserts j by ID so a job can be written when it starts and again when
// it finishes.
func (r *RendersRepo) Save(ctx context.Context, j *domain.RenderJob) error {
	if r == nil || r.pool == nil {
		return nil
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO resume_renders (id, resume_name, status, theme, page_size, bytes, pages, cache_hit, fallback, error, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, bytes = EXCLUDED.bytes, pages = EXCLUDED.pages, cache_hit = EXCLUDED.cache_hit, fallback = EXCLUDED.fallback, error = EXCLUDED.error, updated_at = EXCLUDED.updated_at`,
		j.ID, j.ResumeName, j.Status, j.Theme, j.PageSize, j.Bytes, j.Pages, j.CacheHit, j.Fallback, j.Error, j.CreatedAt, j.UpdatedAt)
	return err
}
