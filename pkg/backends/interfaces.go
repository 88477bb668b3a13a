package backends

import (
	"time"
)

// Backend is a destination for formatted log lines. The logger holds its
// file sink through this interface.
type Backend interface {
	// Write writes one complete line. Implementations must not buffer.
	Write(line []byte) (int, error)

	// Close releases the backend. Further writes fail.
	Close() error

	// GetStats returns backend statistics
	GetStats() BackendStats
}

// BackendStats represents statistics for a backend. Counters cover the
// backend's lifetime; a new file starts from zero.
type BackendStats struct {
	Path         string
	ProcessSafe  bool  // writes hold an advisory file lock
	Size         int64 // file size including content present at open
	WriteCount   uint64
	BytesWritten uint64
	ErrorCount   uint64
	LastError    time.Time
}
