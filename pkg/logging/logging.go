// Package logging builds the charmbracelet loggers used by the CLI and the
// HTTP server and carries them through context.Context.
package logging

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a timestamped logger writing to w at level.
// Timestamps look like "14:32:01.45".
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ParseLevel maps LOG_LEVEL values to a level. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(strings.ToLower(s))
}

// Progress logs how long an operation took once it finishes.
type Progress struct {
	logger *log.Logger
	start  time.Time
}

func NewProgress(l *log.Logger) *Progress {
	return &Progress{logger: l, start: time.Now()}
}

// Done logs msg with the elapsed time, e.g. "Wrote resume.pdf (1.234s)".
func (p *Progress) Done(msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger attached to ctx, or log.Default().
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
