// Package repetlog adapts charmbracelet/log to the repet.Logger
// interface, giving the library structured, leveled output without
// forcing a logging framework choice on callers that pass their own
// implementation instead.
package repetlog

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger wraps a *charmlog.Logger and satisfies repet.Logger.
type Logger struct {
	inner *charmlog.Logger
}

// New returns a Logger writing to stderr at the info level, with
// timestamps in charmbracelet/log's default format and without caller
// reporting.
func New() *Logger {
	l := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		ReportCaller:    false,
		Level:           charmlog.InfoLevel,
	})
	return &Logger{inner: l}
}

// NewWithLevel is like New but sets the minimum level explicitly.
func NewWithLevel(level charmlog.Level) *Logger {
	l := New()
	l.inner.SetLevel(level)
	return l
}

func (l *Logger) Debugf(format string, args ...any) { l.inner.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.inner.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.inner.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.inner.Errorf(format, args...) }
