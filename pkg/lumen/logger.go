package lumen

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/wayneeseguin/lumen/internal/metrics"
	"github.com/wayneeseguin/lumen/pkg/backends"
	"github.com/wayneeseguin/lumen/pkg/formatters"
)

// Sink names used in metrics.
const (
	sinkConsole = "console"
	sinkFile    = "file"
)

// Logger filters messages by severity, formats them and writes them
// synchronously to the console and/or a file.
//
// A Logger is created uninitialized. Init makes it operational, Cleanup
// returns it to the uninitialized state, and the pair may be repeated.
// While uninitialized, log calls are dropped.
//
// Locking: life guards the initialized flag and the guard itself and is
// only held exclusively by Init, Cleanup and configuration changes made
// while uninitialized. Everything else holds it shared and takes the guard,
// which is a real mutex only when Config.ThreadSafe is set.
type Logger struct {
	life        sync.RWMutex
	initialized bool
	guard       Guard

	// protected by guard while initialized, by life otherwise
	cfg  Config
	file backends.Backend

	console   *backends.ConsoleBackend
	formatter formatters.Formatter
	now       func() time.Time
	newGuard  GuardFactory

	stdout io.Writer
	stderr io.Writer
	detect backends.TerminalDetector

	metrics    *metrics.Collector
	promMetric prometheus.Collector
}

// New creates an uninitialized logger holding DefaultConfig.
//
// Example:
//
//	logger, err := lumen.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := logger.Init(nil); err != nil {
//		log.Fatal(err)
//	}
//	defer logger.Cleanup()
//
//	logger.Infof("listening on %s", addr)
func New(options ...Option) (*Logger, error) {
	l := &Logger{
		cfg:      DefaultConfig(),
		now:      time.Now,
		newGuard: NewMutexGuard,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		detect:   backends.IsTerminal,
		metrics:  metrics.NewCollector(),
	}

	for _, opt := range options {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	l.console = backends.NewConsoleBackend(l.stdout, l.stderr, l.detect)
	opts := formatters.DefaultFormatOptions()
	opts.MaxLineLength = MaxLineLength
	l.formatter = formatters.NewTextFormatterWithOptions(opts)
	l.promMetric = metrics.NewPrometheusCollector(l.metrics, "lumen", levelName)
	return l, nil
}

// Init makes the logger operational. A nil cfg keeps the current
// configuration; otherwise cfg replaces it, except that an out-of-range
// cfg.Level is ignored and the current threshold stays.
//
// When cfg.ThreadSafe is set a guard is allocated, and when file output is
// requested with a non-empty path the file is opened for appending. On any
// failure nothing is changed: the guard is released and the previous
// configuration is kept.
//
// Errors match ErrAlreadyInitialized, ErrLockInitFailed or
// ErrFileOpenFailed under errors.Is. A FilePath of MaxPathLength bytes or
// more fails with ErrFileOpenFailed, and the error also matches
// ErrInvalidPath.
func (l *Logger) Init(cfg *Config) error {
	l.life.Lock()
	defer l.life.Unlock()

	if l.initialized {
		return newError(OpInit, ErrAlreadyInitialized, "", nil)
	}

	next := l.cfg
	if cfg != nil {
		next = *cfg
		if !next.Level.Valid() {
			next.Level = l.cfg.Level
		}
		next.Outputs &= OutputConsole | OutputFile
	}
	if len(next.FilePath) >= MaxPathLength {
		return newError(OpInit, ErrFileOpenFailed, next.FilePath, errors.WithStack(ErrInvalidPath))
	}

	var guard Guard = noopGuard{}
	if next.ThreadSafe {
		g, err := l.newGuard()
		if err == nil && g == nil {
			err = errors.New("guard factory returned no guard")
		}
		if err != nil {
			return newError(OpInit, ErrLockInitFailed, "", errors.WithStack(err))
		}
		guard = g
	}

	var file backends.Backend
	if next.Outputs.Has(OutputFile) && next.FilePath != "" {
		f, err := backends.OpenFile(next.FilePath, next.ProcessSafe)
		if err != nil {
			guard.Destroy()
			return newError(OpInit, ErrFileOpenFailed, next.FilePath, err)
		}
		file = f
	}

	l.cfg = next
	l.guard = guard
	l.file = file
	l.initialized = true
	return nil
}

// Cleanup closes the log file, releases the guard and marks the logger
// uninitialized. The configuration is kept for a later Init(nil). Calling
// Cleanup on an uninitialized logger does nothing.
func (l *Logger) Cleanup() {
	l.life.Lock()
	defer l.life.Unlock()

	if !l.initialized {
		return
	}

	l.guard.Lock()
	l.closeFile()
	l.guard.Unlock()

	l.guard.Destroy()
	l.guard = nil
	l.initialized = false
}

// IsInitialized reports whether Init has succeeded since the last Cleanup.
func (l *Logger) IsInitialized() bool {
	l.life.RLock()
	defer l.life.RUnlock()
	return l.initialized
}

// closeFile drops the file sink. Close errors only show up in metrics.
func (l *Logger) closeFile() {
	if l.file == nil {
		return
	}
	if err := l.file.Close(); err != nil {
		l.metrics.TrackError(sinkFile)
	}
	l.file = nil
}
