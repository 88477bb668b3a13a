package lumen

import (
	"runtime"
	"time"

	"github.com/wayneeseguin/lumen/pkg/backends"
	"github.com/wayneeseguin/lumen/pkg/formatters"
)

// CallSite identifies where a log call was made.
type CallSite struct {
	File     string
	Line     int
	Function string
}

// Caller captures a call site. skip 0 is the function calling Caller,
// 1 its caller, and so on.
func Caller(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{File: "???", Function: "???"}
	}
	site := CallSite{File: file, Line: line, Function: "???"}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Function = formatters.FunctionName(fn.Name())
	}
	return site
}

// Log formats a message and writes it to every active sink.
//
// Nothing happens when the logger is uninitialized or level is below the
// threshold. Formatting and write failures are never reported: an overlong
// message is truncated to MaxLineLength, a failing sink is skipped and the
// remaining sinks still get the line. With Config.ThreadSafe the whole
// check-format-write sequence runs under the guard, so lines from concurrent
// callers never interleave.
func (l *Logger) Log(level Level, site CallSite, format string, args ...interface{}) {
	l.life.RLock()
	defer l.life.RUnlock()

	if !l.initialized {
		l.metrics.TrackLineSuppressed()
		return
	}

	l.guard.Lock()
	defer l.guard.Unlock()

	l.dispatch(level, site, format, args)
}

// dispatch must be called with the guard held.
func (l *Logger) dispatch(level Level, site CallSite, format string, args []interface{}) {
	defer func() {
		// A sink writer that panics must not take the application down.
		if r := recover(); r != nil {
			l.metrics.TrackLineDropped()
		}
	}()

	cfg := l.cfg
	if !level.Valid() || level < cfg.Level {
		l.metrics.TrackLineSuppressed()
		return
	}
	if cfg.Outputs == OutputNone {
		return
	}

	line, err := l.formatter.Format(formatters.Entry{
		Time:     l.now(),
		Level:    level.String(),
		File:     site.File,
		Line:     site.Line,
		Function: site.Function,
		Format:   format,
		Args:     args,
	})
	if err != nil {
		l.metrics.TrackLineDropped()
		return
	}
	defer l.formatter.Release(line)

	if line.Truncated() {
		l.metrics.TrackLineTruncated()
	}
	data := line.Bytes()

	if cfg.Outputs.Has(OutputConsole) {
		stream := backends.Stdout
		if level >= LevelError {
			stream = backends.Stderr
		}
		color := ""
		if cfg.ColorsEnabled {
			color = level.color()
		}
		l.write(sinkConsole, func() (int, error) {
			return l.console.WriteTo(stream, data, color)
		})
	}

	if cfg.Outputs.Has(OutputFile) && l.file != nil {
		l.write(sinkFile, func() (int, error) {
			return l.file.Write(data)
		})
	}

	l.metrics.TrackLineLogged(int(level))
}

func (l *Logger) write(sink string, w func() (int, error)) {
	start := time.Now()
	n, err := w()
	if err != nil {
		l.metrics.TrackError(sink)
		return
	}
	l.metrics.TrackWrite(sink, n, time.Since(start))
}

// Enabled reports whether a message at level would currently be emitted.
func (l *Logger) Enabled(level Level) bool {
	l.life.RLock()
	defer l.life.RUnlock()
	if !l.initialized || !level.Valid() {
		return false
	}
	l.guard.Lock()
	defer l.guard.Unlock()
	return level >= l.cfg.Level
}

// DebugEnabled reports whether debug messages are currently emitted. Use it
// to skip building expensive debug output.
func (l *Logger) DebugEnabled() bool {
	return l.Enabled(LevelDebug)
}

// Logf logs at level, recording the caller as the call site.
func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	l.Log(level, Caller(1), format, args...)
}

// Debugf logs a debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Log(LevelDebug, Caller(1), format, args...)
}

// Infof logs an informational message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Log(LevelInfo, Caller(1), format, args...)
}

// Warnf logs a warning.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Log(LevelWarn, Caller(1), format, args...)
}

// Errorf logs an error to stderr.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Log(LevelError, Caller(1), format, args...)
}

// Fatalf logs a fatal message to stderr. The process keeps running; exiting
// is left to the caller.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.Log(LevelFatal, Caller(1), format, args...)
}
