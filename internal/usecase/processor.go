// Package usecase runs the resume pipeline: look up a record, compose it into
// HTML and print it to PDF.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"resume-pdf/internal/domain"
	"resume-pdf/internal/model"
	"resume-pdf/pkg/cache"
	"resume-pdf/pkg/infrastructure"
)

var (
	// ErrSourceUnavailable means the document store could not be queried.
	ErrSourceUnavailable = errors.New("resume source unavailable")
	ErrCompose           = errors.New("compose resume document")
	ErrRender            = errors.New("render resume pdf")

	// ErrInvalidPDF means the renderer returned bytes that do not parse as a PDF.
	ErrInvalidPDF = errors.New("invalid pdf output")
)

type ResumeSource interface {
	FindByName(ctx context.Context, name string) (model.Record, bool, error)
}

type Composer interface {
	Compose(r model.Record) (string, error)
}

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string, opts infrastructure.PageOptions) ([]byte, error)
}

// RenderRecorder persists render jobs. Failures are logged and ignored.
type RenderRecorder interface {
	Save(ctx context.Context, j *domain.RenderJob) error
}

// Result is the outcome of a successful Generate.
type Result struct {
	PDF  []byte
	HTML string
	Job  *domain.RenderJob
}

type Processor struct {
	source   ResumeSource
	composer Composer
	renderer Renderer
	recorder RenderRecorder
	cache    cache.Cache
	cacheTTL time.Duration
	page     infrastructure.PageOptions
	theme    string
	attempts int
	backoff  time.Duration
	logger   *log.Logger
}

type Option func(*Processor)

// WithCache stores rendered PDFs in c for ttl.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(p *Processor) {
		if c != nil {
			p.cache = c
		}
		p.cacheTTL = ttl
	}
}

func WithRecorder(r RenderRecorder) Option {
	return func(p *Processor) { p.recorder = r }
}

func WithPage(opts infrastructure.PageOptions) Option {
	return func(p *Processor) { p.page = opts }
}

// WithTheme names the theme on recorded jobs.
func WithTheme(name string) Option {
	return func(p *Processor) { p.theme = name }
}

// WithAttempts sets how many times rendering is tried. The wait between
// attempts starts at backoff and doubles each time.
func WithAttempts(n int, backoff time.Duration) Option {
	return func(p *Processor) {
		if n > 0 {
			p.attempts = n
		}
		if backoff > 0 {
			p.backoff = backoff
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

func NewProcessor(src ResumeSource, c Composer, r Renderer, opts ...Option) *Processor {
	p := &Processor{
		source:   src,
		composer: c,
		renderer: r,
		cache:    cache.Disabled(),
		page:     infrastructure.DefaultPageOptions(),
		attempts: 1,
		backoff:  time.Second,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.WithPrefix("processor")
	return p
}

// ComposeHTML looks up name and composes its document. When no record
// matches, the built-in default is composed and fallback is true.
func (p *Processor) ComposeHTML(ctx context.Context, name string) (html string, fallback bool, err error) {
	rec, found, err := p.source.FindByName(ctx, name)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if !found {
		p.logger.Warn("resume not found, using built-in default", "name", name)
		rec = model.Default()
		fallback = true
	}

	html, err = p.composer.Compose(rec)
	if err != nil {
		return "", fallback, fmt.Errorf("%w: %w", ErrCompose, err)
	}
	return html, fallback, nil
}

// Generate produces the PDF for the resume stored under name. No bytes are
// returned unless they parse as a PDF.
func (p *Processor) Generate(ctx context.Context, name string) (*Result, error) {
	job := domain.NewRenderJob(name, p.theme, string(p.page.Size))
	logger := p.logger.With("job", job.ID.String(), "name", name)

	html, fallback, err := p.ComposeHTML(ctx, name)
	job.Fallback = fallback
	if err != nil {
		return nil, p.fail(ctx, job, err)
	}

	key := cache.PDFKey(html, p.page.String())
	pdf, info, hit := p.cached(ctx, key, logger)
	if !hit {
		pdf, info, err = p.render(ctx, html, logger)
		if err != nil {
			return nil, p.fail(ctx, job, err)
		}
		if err := p.cache.Set(ctx, key, pdf, p.cacheTTL); err != nil {
			logger.Warn("cache store failed (non-fatal)", "err", err)
		}
	}

	if info.Pages > 1 {
		logger.Warn("resume spans more than one page", "pages", info.Pages)
	}

	job.CacheHit = hit
	job.Complete(len(pdf), info.Pages)
	p.record(ctx, job)
	logger.Info("generated pdf", "bytes", len(pdf), "pages", info.Pages, "cache_hit", hit, "fallback", fallback)
	return &Result{PDF: pdf, HTML: html, Job: job}, nil
}

func (p *Processor) cached(ctx context.Context, key string, logger *log.Logger) ([]byte, infrastructure.PDFInfo, bool) {
	data, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache lookup failed (non-fatal)", "err", err)
		return nil, infrastructure.PDFInfo{}, false
	}
	if !ok {
		return nil, infrastructure.PDFInfo{}, false
	}
	info, err := infrastructure.InspectPDF(data)
	if err != nil {
		logger.Warn("discarding unreadable cache entry", "err", err)
		_ = p.cache.Delete(ctx, key)
		return nil, infrastructure.PDFInfo{}, false
	}
	return data, info, true
}

// render retries with exponential backoff. Output that fails inspection
// counts as a failed attempt.
func (p *Processor) render(ctx context.Context, html string, logger *log.Logger) ([]byte, infrastructure.PDFInfo, error) {
	var lastErr error
	for i := 0; i < p.attempts; i++ {
		data, err := p.renderer.RenderHTMLToPDF(ctx, html, p.page)
		if err == nil {
			info, inspectErr := infrastructure.InspectPDF(data)
			if inspectErr == nil {
				return data, info, nil
			}
			lastErr = fmt.Errorf("%w (len=%d): %w", ErrInvalidPDF, len(data), inspectErr)
		} else {
			lastErr = fmt.Errorf("%w: %w", ErrRender, err)
		}
		logger.Warn("render attempt failed", "attempt", i+1, "of", p.attempts, "err", lastErr)

		if i < p.attempts-1 {
			select {
			case <-time.After(p.backoff * time.Duration(1<<i)):
			case <-ctx.Done():
				return nil, infrastructure.PDFInfo{}, fmt.Errorf("%w: %w", ErrRender, ctx.Err())
			}
		}
	}
	return nil, infrastructure.PDFInfo{}, lastErr
}

func (p *Processor) fail(ctx context.Context, job *domain.RenderJob, err error) error {
	job.Fail(err)
	p.record(ctx, job)
	return err
}

func (p *Processor) record(ctx context.Context, job *domain.RenderJob) {
	if p.recorder == nil {
		return
	}
	if err := p.recorder.Save(ctx, job); err != nil {
		p.logger.Warn("unable to record render (non-fatal)", "job", job.ID.String(), "err", err)
	}
}
