package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// LevelNamer maps a numeric level to the label used in exported metrics.
type LevelNamer func(level int) string

// PrometheusCollector exposes a Collector as Prometheus counters. Values are
// read from the collector at scrape time.
type PrometheusCollector struct {
	source    *Collector
	levelName LevelNamer

	lines      *prometheus.Desc
	suppressed *prometheus.Desc
	dropped    *prometheus.Desc
	truncated  *prometheus.Desc
	bytes      *prometheus.Desc
	errors     *prometheus.Desc
}

// NewPrometheusCollector builds a collector whose metric names start with
// namespace. A nil namer labels levels with their number.
func NewPrometheusCollector(source *Collector, namespace string, levelName LevelNamer) *PrometheusCollector {
	if levelName == nil {
		levelName = strconv.Itoa
	}
	return &PrometheusCollector{
		source:    source,
		levelName: levelName,
		lines: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "lines_total"),
			"Lines emitted, by level.",
			[]string{"level"}, nil,
		),
		suppressed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "lines_suppressed_total"),
			"Log calls filtered by the threshold or made while uninitialized.",
			nil, nil,
		),
		dropped: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "lines_dropped_total"),
			"Log calls that could not be formatted.",
			nil, nil,
		),
		truncated: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "lines_truncated_total"),
			"Lines cut to the maximum line length.",
			nil, nil,
		),
		bytes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "sink_bytes_total"),
			"Bytes written, by sink.",
			[]string{"sink"}, nil,
		),
		errors: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "sink_errors_total"),
			"Failed writes, by sink.",
			[]string{"sink"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (p *PrometheusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- p.lines
	ch <- p.suppressed
	ch <- p.dropped
	ch <- p.truncated
	ch <- p.bytes
	ch <- p.errors
}

// Collect implements prometheus.Collector.
func (p *PrometheusCollector) Collect(ch chan<- prometheus.Metric) {
	m := p.source.GetMetrics()

	for level, n := range m.LinesLogged {
		ch <- prometheus.MustNewConstMetric(p.lines, prometheus.CounterValue, float64(n), p.levelName(level))
	}
	ch <- prometheus.MustNewConstMetric(p.suppressed, prometheus.CounterValue, float64(m.LinesSuppressed))
	ch <- prometheus.MustNewConstMetric(p.dropped, prometheus.CounterValue, float64(m.LinesDropped))
	ch <- prometheus.MustNewConstMetric(p.truncated, prometheus.CounterValue, float64(m.LinesTruncated))
	for sink, n := range m.BytesBySink {
		ch <- prometheus.MustNewConstMetric(p.bytes, prometheus.CounterValue, float64(n), sink)
	}
	for sink, n := range m.ErrorsBySink {
		ch <- prometheus.MustNewConstMetric(p.errors, prometheus.CounterValue, float64(n), sink)
	}
}

var _ prometheus.Collector = (*PrometheusCollector)(nil)
