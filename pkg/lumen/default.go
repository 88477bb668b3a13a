package lumen

// std is the convenience instance behind the package-level functions.
var std = mustNew()

func mustNew() *Logger {
	l, err := New()
	if err != nil {
		panic(err)
	}
	return l
}

// Default returns the logger used by the package-level functions. Like any
// Logger it starts uninitialized; call Init before logging.
func Default() *Logger {
	return std
}

// Init initializes the default logger. See Logger.Init.
func Init(cfg *Config) error {
	return std.Init(cfg)
}

// Cleanup tears down the default logger. See Logger.Cleanup.
func Cleanup() {
	std.Cleanup()
}

// SetLevel changes the default logger's threshold.
func SetLevel(level Level) {
	std.SetLevel(level)
}

// SetOutputs changes the default logger's sinks.
func SetOutputs(outputs Output) {
	std.SetOutputs(outputs)
}

// SetFile switches the default logger's file. See Logger.SetFile.
func SetFile(path string) error {
	return std.SetFile(path)
}

// EnableColors toggles console colors on the default logger.
func EnableColors(enable bool) {
	std.EnableColors(enable)
}

// Log writes through the default logger with an explicit call site.
func Log(level Level, site CallSite, format string, args ...interface{}) {
	std.Log(level, site, format, args...)
}

// Debugf logs a debug message through the default logger.
func Debugf(format string, args ...interface{}) {
	std.Log(LevelDebug, Caller(1), format, args...)
}

// Infof logs an informational message through the default logger.
func Infof(format string, args ...interface{}) {
	std.Log(LevelInfo, Caller(1), format, args...)
}

// Warnf logs a warning through the default logger.
func Warnf(format string, args ...interface{}) {
	std.Log(LevelWarn, Caller(1), format, args...)
}

// Errorf logs an error through the default logger.
func Errorf(format string, args ...interface{}) {
	std.Log(LevelError, Caller(1), format, args...)
}

// Fatalf logs a fatal message through the default logger without exiting.
func Fatalf(format string, args ...interface{}) {
	std.Log(LevelFatal, Caller(1), format, args...)
}

// DebugEnabled reports whether the default logger emits debug messages.
func DebugEnabled() bool {
	return std.DebugEnabled()
}
