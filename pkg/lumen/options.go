package lumen

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/wayneeseguin/lumen/pkg/backends"
)

// Option configures a Logger at construction time.
type Option func(*Logger) error

// WithConfig replaces the configuration the logger starts with. It is used
// by a later Init(nil).
func WithConfig(cfg Config) Option {
	return func(l *Logger) error {
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "invalid config")
		}
		l.cfg = cfg
		return nil
	}
}

// WithClock sets the time source used for line timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		l.now = now
		return nil
	}
}

// WithConsole redirects the console sink. Either writer may be nil, in which
// case lines for that stream are skipped.
func WithConsole(stdout, stderr io.Writer) Option {
	return func(l *Logger) error {
		l.stdout = stdout
		l.stderr = stderr
		return nil
	}
}

// WithTerminalDetector replaces the check deciding whether a console stream
// can display colors.
func WithTerminalDetector(detect backends.TerminalDetector) Option {
	return func(l *Logger) error {
		if detect == nil {
			return errors.New("terminal detector cannot be nil")
		}
		l.detect = detect
		return nil
	}
}

// WithGuardFactory replaces the allocator of the mutual-exclusion guard
// used by thread-safe loggers.
func WithGuardFactory(factory GuardFactory) Option {
	return func(l *Logger) error {
		if factory == nil {
			return errors.New("guard factory cannot be nil")
		}
		l.newGuard = factory
		return nil
	}
}
