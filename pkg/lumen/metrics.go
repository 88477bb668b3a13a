package lumen

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/wayneeseguin/lumen/pkg/backends"
)

// LoggerMetrics contains runtime metrics for the logger
type LoggerMetrics struct {
	// Line counters
	LinesLogged     uint64           // Lines emitted to at least the formatter
	LinesByLevel    map[Level]uint64 // Lines emitted, by level
	LinesSuppressed uint64           // Calls below the threshold or while uninitialized
	LinesDropped    uint64           // Calls whose header did not fit in a line
	LinesTruncated  uint64           // Lines cut to MaxLineLength

	// Sink counters
	BytesBySink  map[string]uint64 // Bytes written to "console" and "file"
	ErrorCount   uint64            // Failed writes and closes
	ErrorsBySink map[string]uint64 // Failures by sink

	// Performance metrics
	AverageWriteTime time.Duration
	MaxWriteTime     time.Duration

	// Backend statistics. Console covers the logger's lifetime; File covers
	// the currently open file only and is nil while no file is open.
	Console backends.BackendStats
	File    *backends.BackendStats
}

// Metrics returns a snapshot of the logger's counters.
func (l *Logger) Metrics() LoggerMetrics {
	m := l.metrics.GetMetrics()

	out := LoggerMetrics{
		LinesByLevel:     make(map[Level]uint64, len(m.LinesLogged)),
		LinesSuppressed:  m.LinesSuppressed,
		LinesDropped:     m.LinesDropped,
		LinesTruncated:   m.LinesTruncated,
		BytesBySink:      m.BytesBySink,
		ErrorCount:       m.ErrorCount,
		ErrorsBySink:     m.ErrorsBySink,
		AverageWriteTime: m.AverageWriteTime,
		MaxWriteTime:     m.MaxWriteTime,
	}
	for level, n := range m.LinesLogged {
		out.LinesByLevel[Level(level)] = n
		out.LinesLogged += n
	}

	out.Console = l.console.GetStats()
	l.view(func() {
		if l.file != nil {
			stats := l.file.GetStats()
			out.File = &stats
		}
	})
	return out
}

// ResetMetrics zeroes the line and sink counters. Backend statistics are
// kept; they belong to the backends.
func (l *Logger) ResetMetrics() {
	l.metrics.ResetMetrics()
}

// MetricsCollector exposes the counters for registration with a Prometheus
// registry. Metric names are prefixed with "lumen_".
//
// Example:
//
//	prometheus.MustRegister(logger.MetricsCollector())
func (l *Logger) MetricsCollector() prometheus.Collector {
	return l.promMetric
}
