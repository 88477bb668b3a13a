// Package lumen provides a small, embeddable logger that filters messages by
// severity, formats them with a timestamp and call site, and writes them
// synchronously to the console, a file, or both.
//
// Every line has the same shape:
//
//	[2024-03-09 07:05:02] [INFO] [main.go:42 main] listening on :8080
//
// DEBUG, INFO and WARN lines go to stdout, ERROR and FATAL lines to stderr.
// On a terminal, console lines are colored by level unless colors are
// disabled. File lines are never colored and are handed to the operating
// system as soon as they are written, so they survive an abrupt exit.
//
// Basic Usage:
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
//	logger.Infof("Application started")
//	logger.Errorf("Failed to connect to %s", host)
//
// Console and File:
//
//	cfg := lumen.DefaultConfig()
//	cfg.Level = lumen.LevelDebug
//	cfg.Outputs = lumen.OutputConsole | lumen.OutputFile
//	cfg.FilePath = "app.log"
//	if err := logger.Init(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Runtime Changes:
//
//	logger.SetLevel(lumen.LevelError)
//	logger.EnableColors(false)
//	if err := logger.SetFile("other.log"); err != nil {
//		log.Print(err)
//	}
//
// Default Logger:
//
// The package-level functions (Init, Cleanup, Infof, ...) operate on a
// single default instance returned by Default. It follows the same
// lifecycle as any other Logger.
//
// Thread Safety:
//
// With Config.ThreadSafe (the default) every log call and configuration
// change runs under one lock, so lines from concurrent goroutines never
// interleave in any sink. Without it the logger takes no lock at all and
// must only be used from one goroutine at a time. Config.ProcessSafe adds an
// advisory file lock around each file write for logs shared between
// processes.
//
// Errors:
//
// Init and SetFile return *Error values that match ErrAlreadyInitialized,
// ErrLockInitFailed, ErrFileOpenFailed or ErrInvalidPath under errors.Is.
// Log calls never fail: overlong messages are truncated to MaxLineLength and
// failing sinks are skipped. Failures are visible only through Metrics.
package lumen
