package repet

import "time"

// Logger is the logging interface consumed by every pipeline. A
// *repetlog.Logger (backed by charmbracelet/log) or any other
// implementation can be dropped in via WithLogger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// MetricsRecorder instruments pipeline invocations. A nil-safe no-op
// implementation is used when Config.Metrics is unset; *repetmetrics.Metrics
// provides a Prometheus-backed implementation.
type MetricsRecorder interface {
	ObserveInvocation(method string, duration time.Duration, err error)
	ObserveDegenerateStructure(method string)
}

type nopMetrics struct{}

func (nopMetrics) ObserveInvocation(string, time.Duration, error) {}
func (nopMetrics) ObserveDegenerateStructure(string)              {}
