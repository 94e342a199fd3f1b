package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{name: "info at info level", level: log.InfoLevel, logFunc: func(l *log.Logger) { l.Info("test") }, wantLog: true},
		{name: "debug at info level", level: log.InfoLevel, logFunc: func(l *log.Logger) { l.Debug("test") }},
		{name: "debug at debug level", level: log.DebugLevel, logFunc: func(l *log.Logger) { l.Debug("test") }, wantLog: true},
		{name: "warn at error level", level: log.ErrorLevel, logFunc: func(l *log.Logger) { l.Warn("test") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(New(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"":       log.InfoLevel,
		"debug":  log.DebugLevel,
		" WARN ": log.WarnLevel,
		"error":  log.ErrorLevel,
		"Info":   log.InfoLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	NewProgress(New(&buf, log.InfoLevel)).Done("wrote pdf", "bytes", 10)

	out := buf.String()
	assert.Contains(t, out, "wrote pdf")
	assert.Contains(t, out, "bytes=10")
	assert.Contains(t, out, "took=")
}

func TestLoggerContext(t *testing.T) {
	assert.Equal(t, log.Default(), FromContext(context.Background()))

	l := New(&bytes.Buffer{}, log.DebugLevel)
	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
}
