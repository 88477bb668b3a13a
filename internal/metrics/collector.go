package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Collector handles metrics collection for the logger. All methods are safe
// for concurrent use and never block.
type Collector struct {
	// Line counts by level
	linesByLevel sync.Map // map[int]*atomic.Uint64

	linesSuppressed atomic.Uint64
	linesDropped    atomic.Uint64
	linesTruncated  atomic.Uint64

	// Per-sink write metrics
	bytesBySink  sync.Map // map[string]*atomic.Uint64
	errorsBySink sync.Map // map[string]*atomic.Uint64
	errorCount   atomic.Uint64

	// Performance metrics
	writeCount     atomic.Uint64
	totalWriteTime atomic.Int64 // nanoseconds
	maxWriteTime   atomic.Int64 // nanoseconds
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Metrics contains runtime metrics for the logger.
type Metrics struct {
	LinesLogged     map[int]uint64 `json:"lines_logged"`
	LinesSuppressed uint64         `json:"lines_suppressed"`
	LinesDropped    uint64         `json:"lines_dropped"`
	LinesTruncated  uint64         `json:"lines_truncated"`

	BytesBySink  map[string]uint64 `json:"bytes_by_sink"`
	ErrorCount   uint64            `json:"error_count"`
	ErrorsBySink map[string]uint64 `json:"errors_by_sink"`

	AverageWriteTime time.Duration `json:"average_write_time"`
	MaxWriteTime     time.Duration `json:"max_write_time"`
}

// GetMetrics returns current metrics snapshot.
func (c *Collector) GetMetrics() Metrics {
	m := Metrics{
		LinesLogged:     make(map[int]uint64),
		LinesSuppressed: c.linesSuppressed.Load(),
		LinesDropped:    c.linesDropped.Load(),
		LinesTruncated:  c.linesTruncated.Load(),
		BytesBySink:     make(map[string]uint64),
		ErrorCount:      c.errorCount.Load(),
		ErrorsBySink:    make(map[string]uint64),
		MaxWriteTime:    time.Duration(c.maxWriteTime.Load()),
	}

	copyCounters(&c.linesByLevel, func(k interface{}, v uint64) {
		m.LinesLogged[k.(int)] = v
	})
	copyCounters(&c.bytesBySink, func(k interface{}, v uint64) {
		m.BytesBySink[k.(string)] = v
	})
	copyCounters(&c.errorsBySink, func(k interface{}, v uint64) {
		m.ErrorsBySink[k.(string)] = v
	})

	if writes := c.writeCount.Load(); writes > 0 {
		m.AverageWriteTime = time.Duration(c.totalWriteTime.Load()) / time.Duration(writes)
	}
	return m
}

func copyCounters(src *sync.Map, put func(key interface{}, value uint64)) {
	src.Range(func(key, value interface{}) bool {
		if n := value.(*atomic.Uint64).Load(); n > 0 {
			put(key, n)
		}
		return true
	})
}

func counter(m *sync.Map, key interface{}) *atomic.Uint64 {
	if val, ok := m.Load(key); ok {
		return val.(*atomic.Uint64)
	}
	val, _ := m.LoadOrStore(key, &atomic.Uint64{})
	return val.(*atomic.Uint64)
}

// ResetMetrics resets all metrics counters.
func (c *Collector) ResetMetrics() {
	reset := func(key, value interface{}) bool {
		value.(*atomic.Uint64).Store(0)
		return true
	}
	c.linesByLevel.Range(reset)
	c.bytesBySink.Range(reset)
	c.errorsBySink.Range(reset)

	c.linesSuppressed.Store(0)
	c.linesDropped.Store(0)
	c.linesTruncated.Store(0)
	c.errorCount.Store(0)
	c.writeCount.Store(0)
	c.totalWriteTime.Store(0)
	c.maxWriteTime.Store(0)
}

// TrackLineLogged counts a line emitted at level.
func (c *Collector) TrackLineLogged(level int) {
	counter(&c.linesByLevel, level).Add(1)
}

// TrackLineSuppressed counts a call filtered by the threshold or made
// while the logger was not initialized.
func (c *Collector) TrackLineSuppressed() {
	c.linesSuppressed.Add(1)
}

// TrackLineDropped counts a line that could not be formatted at all.
func (c *Collector) TrackLineDropped() {
	c.linesDropped.Add(1)
}

// TrackLineTruncated counts a line cut to the maximum line length.
func (c *Collector) TrackLineTruncated() {
	c.linesTruncated.Add(1)
}

// TrackWrite records a successful write to a sink.
func (c *Collector) TrackWrite(sink string, bytes int, duration time.Duration) {
	counter(&c.bytesBySink, sink).Add(uint64(bytes))
	c.writeCount.Add(1)
	c.totalWriteTime.Add(int64(duration))

	for {
		oldMax := c.maxWriteTime.Load()
		if int64(duration) <= oldMax {
			break
		}
		if c.maxWriteTime.CompareAndSwap(oldMax, int64(duration)) {
			break
		}
	}
}

// TrackError increments the error counter and tracks by sink.
func (c *Collector) TrackError(sink string) {
	c.errorCount.Add(1)
	counter(&c.errorsBySink, sink).Add(1)
}
