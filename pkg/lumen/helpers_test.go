package lumen

import (
	"io"
	"testing"
	"time"

	testhelpers "github.com/wayneeseguin/lumen/internal/testing"
)

var testTime = time.Date(2024, 3, 9, 7, 5, 2, 0, time.Local)

const testStamp = "[2024-03-09 07:05:02]"

type testConsole struct {
	stdout *testhelpers.SyncBuffer
	stderr *testhelpers.SyncBuffer
}

func (c testConsole) all() string {
	return c.stdout.String() + c.stderr.String()
}

func notTerminal(io.Writer) bool { return false }
func isTerminal(io.Writer) bool  { return true }

// newTestLogger builds an uninitialized logger writing to in-memory streams
// with a fixed clock. Extra options are applied last.
func newTestLogger(t *testing.T, opts ...Option) (*Logger, testConsole) {
	t.Helper()
	console := testConsole{
		stdout: &testhelpers.SyncBuffer{},
		stderr: &testhelpers.SyncBuffer{},
	}
	base := []Option{
		WithConsole(console.stdout, console.stderr),
		WithClock(testhelpers.FixedClock(testTime)),
		WithTerminalDetector(notTerminal),
	}
	l, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(l.Cleanup)
	return l, console
}

// mustInit initializes l with cfg and fails the test on error.
func mustInit(t *testing.T, l *Logger, cfg *Config) {
	t.Helper()
	if err := l.Init(cfg); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
}

func site(function string) CallSite {
	return CallSite{File: "/src/app/main.go", Line: 10, Function: function}
}
