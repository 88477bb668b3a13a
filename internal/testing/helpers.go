package testing

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"
)

// LinePattern matches one formatted log line, newline excluded. Groups:
// 1 timestamp, 2 level, 3 file, 4 line, 5 function, 6 message.
var LinePattern = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\] \[(DEBUG|INFO|WARN|ERROR|FATAL)\] \[([^\]/\\ ]+):(\d+) ([^\]]*)\] (.*)$`)

// ansiPattern matches ANSI SGR escapes.
var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Unit returns true if running in unit test mode.
// Unit tests should be fast and not depend on timing.
// Integration tests run only when LUMEN_RUN_INTEGRATION_TESTS=true.
func Unit() bool {
	// Explicit unit mode has the highest priority
	if os.Getenv("LUMEN_UNIT_TESTS_ONLY") == "true" {
		return true
	}

	// Explicitly enabled integration tests override -short
	switch os.Getenv("LUMEN_RUN_INTEGRATION_TESTS") {
	case "true":
		return false
	case "false":
		return true
	}

	// -short always means unit mode
	if testing.Short() {
		return true
	}

	return true
}

// Integration returns true if running in integration test mode.
func Integration() bool {
	return !Unit()
}

// SkipIfUnit skips the test if running in unit test mode.
func SkipIfUnit(t *testing.T, message ...string) {
	t.Helper()
	if Unit() {
		msg := "Skipping integration test in unit mode"
		if len(message) > 0 {
			msg = message[0]
		}
		t.Skip(msg)
	}
}

// TempLogPath returns a path for a log file inside a per-test directory.
func TempLogPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

// ReadLines returns the lines of a file without their newlines. A missing
// file yields no lines.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return lines
}

// ContainsANSI reports whether s holds any ANSI color escape.
func ContainsANSI(s string) bool {
	return ansiPattern.MatchString(s)
}

// StripANSI removes ANSI color escapes from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// FixedClock returns a clock that always reports at.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// SyncBuffer is a bytes sink safe for concurrent writers, used to stand in
// for stdout and stderr.
type SyncBuffer struct {
	mu     sync.Mutex
	data   []byte
	writes int
}

// Write appends p.
func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append(b.data, p...)
	b.writes++
	return len(p), nil
}

// String returns everything written so far.
func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.data)
}

// Writes returns the number of Write calls.
func (b *SyncBuffer) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

// Reset discards the contents.
func (b *SyncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = b.data[:0]
	b.writes = 0
}
