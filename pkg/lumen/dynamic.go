package lumen

import (
	"github.com/wayneeseguin/lumen/pkg/backends"
)

// update runs fn with exclusive access to the configuration and file sink.
// fn learns whether the logger is initialized so that it can decide whether
// to touch the file.
func (l *Logger) update(fn func(initialized bool)) {
	l.life.RLock()
	if l.initialized {
		l.guard.Lock()
		fn(true)
		l.guard.Unlock()
		l.life.RUnlock()
		return
	}
	l.life.RUnlock()

	// Nobody holds life, so the state cannot be observed mid-change.
	l.life.Lock()
	defer l.life.Unlock()
	fn(l.initialized)
}

// view runs fn with a consistent view of the configuration.
func (l *Logger) view(fn func()) {
	l.life.RLock()
	defer l.life.RUnlock()
	if l.initialized {
		l.guard.Lock()
		defer l.guard.Unlock()
	}
	fn()
}

// SetLevel changes the threshold. Levels outside LevelDebug..LevelFatal are
// ignored.
//
// Example:
//
//	logger.SetLevel(lumen.LevelError) // only errors and fatals from now on
func (l *Logger) SetLevel(level Level) {
	if !level.Valid() {
		return
	}
	l.update(func(bool) {
		l.cfg.Level = level
	})
}

// SetOutputs replaces the set of active sinks. It never opens or closes the
// log file: enabling OutputFile without an open file leaves the file sink
// silent until SetFile succeeds or the logger is re-initialized.
func (l *Logger) SetOutputs(outputs Output) {
	outputs &= OutputConsole | OutputFile
	l.update(func(bool) {
		l.cfg.Outputs = outputs
	})
}

// SetFile switches the log file. The path must be non-empty and shorter
// than MaxPathLength bytes; otherwise ErrInvalidPath is returned and nothing
// changes.
//
// On an initialized logger the current file is closed first, then, if file
// output is enabled, the new path is opened for appending. If that open
// fails the error matches ErrFileOpenFailed and the logger is left without
// a file until the next successful SetFile. On an uninitialized logger the
// path is only recorded for the next Init.
func (l *Logger) SetFile(path string) error {
	if path == "" || len(path) >= MaxPathLength {
		return newError(OpSetFile, ErrInvalidPath, path, nil)
	}

	var err error
	l.update(func(initialized bool) {
		if !initialized {
			l.cfg.FilePath = path
			return
		}

		l.closeFile()
		l.cfg.FilePath = path
		if !l.cfg.Outputs.Has(OutputFile) {
			return
		}

		f, openErr := backends.OpenFile(path, l.cfg.ProcessSafe)
		if openErr != nil {
			err = newError(OpSetFile, ErrFileOpenFailed, path, openErr)
			return
		}
		l.file = f
	})
	return err
}

// EnableColors turns console colors on or off. Colors are only emitted on
// terminals in any case.
func (l *Logger) EnableColors(enable bool) {
	l.update(func(bool) {
		l.cfg.ColorsEnabled = enable
	})
}

// Config returns a copy of the current configuration.
func (l *Logger) Config() Config {
	var cfg Config
	l.view(func() { cfg = l.cfg })
	return cfg
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	return l.Config().Level
}

// Outputs returns the active sinks.
func (l *Logger) Outputs() Output {
	return l.Config().Outputs
}

// FilePath returns the configured log file path.
func (l *Logger) FilePath() string {
	return l.Config().FilePath
}

// ColorsEnabled reports whether console colors are on.
func (l *Logger) ColorsEnabled() bool {
	return l.Config().ColorsEnabled
}

// FileOpen reports whether a log file is currently open.
func (l *Logger) FileOpen() bool {
	var open bool
	l.view(func() { open = l.file != nil })
	return open
}
