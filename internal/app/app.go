// Package app wires configuration into a ready-to-use pipeline shared by the
// CLI and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"resume-pdf/internal/adapter/repository"
	"resume-pdf/internal/config"
	"resume-pdf/internal/document"
	"resume-pdf/internal/infrastructure/migration"
	"resume-pdf/internal/usecase"
	"resume-pdf/pkg/cache"
	"resume-pdf/pkg/infrastructure"
)

type App struct {
	Config    *config.Config
	Logger    *log.Logger
	Composer  *document.Composer
	Resumes   *repository.ResumesRepo
	Processor *usecase.Processor

	closers []func(context.Context) error
}

// NewComposer builds the document composer described by cfg.
func NewComposer(cfg *config.Config) (*document.Composer, error) {
	return document.NewComposer(
		document.WithTheme(cfg.Theme),
		document.WithLabels(cfg.Labels),
		document.WithBase(cfg.BaseRecord()),
	)
}

// New connects to MongoDB and, when configured, Redis and the render log
// database. MongoDB must answer a ping; the others degrade to no-ops with a
// warning.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	return build(ctx, cfg, logger, true)
}

// NewServer is New for long-running processes: an unreachable MongoDB is
// logged and the app is built anyway, so each request reports the outage
// instead of the process refusing to start.
func NewServer(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	return build(ctx, cfg, logger, false)
}

func build(ctx context.Context, cfg *config.Config, logger *log.Logger, requireSource bool) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	composer, err := NewComposer(cfg)
	if err != nil {
		return nil, err
	}
	a.Composer = composer

	page, err := cfg.PageOptions()
	if err != nil {
		return nil, err
	}

	client, err := infrastructure.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrSourceUnavailable, err)
	}
	if err := infrastructure.PingMongo(ctx, client); err != nil {
		if requireSource {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("%w: %w", usecase.ErrSourceUnavailable, err)
		}
		logger.Warn("resume store unreachable, requests will fail until it answers", "err", err)
	}
	a.closers = append(a.closers, client.Disconnect)
	a.Resumes = repository.NewResumesRepo(client, cfg.MongoDatabase, cfg.MongoCollection)

	pdfCache := a.openCache(ctx)
	renders := a.openRenderLog(ctx)

	renderer := infrastructure.NewChromedpRenderer(cfg.ChromePath, cfg.RenderTimeout, logger)
	a.Processor = usecase.NewProcessor(a.Resumes, composer, renderer,
		usecase.WithPage(page),
		usecase.WithTheme(composer.Theme().Name),
		usecase.WithAttempts(cfg.RenderAttempts, 0),
		usecase.WithCache(pdfCache, cfg.CacheTTL),
		usecase.WithRecorder(renders),
		usecase.WithLogger(logger),
	)
	return a, nil
}

func (a *App) openCache(ctx context.Context) cache.Cache {
	if a.Config.RedisURL == "" {
		return cache.Disabled()
	}
	c, err := cache.NewRedisCache(ctx, a.Config.RedisURL)
	if err != nil {
		a.Logger.Warn("pdf cache unavailable, continuing without it", "err", err)
		return cache.Disabled()
	}
	a.closers = append(a.closers, func(context.Context) error { return c.Close() })
	return c
}

func (a *App) openRenderLog(ctx context.Context) *repository.RendersRepo {
	if a.Config.RendersDatabaseURL == "" {
		return repository.NewRendersRepo(nil)
	}
	pool, err := infrastructure.NewRendersPool(ctx, a.Config.RendersDatabaseURL)
	if err != nil {
		a.Logger.Warn("render log database not available", "err", err)
		return repository.NewRendersRepo(nil)
	}
	if err := migration.RunMigrations(ctx, pool, a.Logger); err != nil {
		a.Logger.Warn("render log disabled after failed migration", "err", err)
		pool.Close()
		return repository.NewRendersRepo(nil)
	}
	a.closers = append(a.closers, func(context.Context) error { pool.Close(); return nil })
	return repository.NewRendersRepo(pool)
}

// Close releases connections in reverse order of opening.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
