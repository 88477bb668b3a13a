package backends

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// ErrClosed is returned by writes to a closed backend.
var ErrClosed = errors.New("backend is closed")

// FileBackend appends lines to a file. Every Write goes straight to the
// operating system, so a line survives an abrupt exit of the process as soon
// as Write returns.
//
// When opened process-safe, each write also holds an advisory flock on the
// file so that several processes can append to the same log without
// interleaving their lines.
type FileBackend struct {
	file *os.File
	lock *flock.Flock
	path string

	size         atomic.Int64
	writeCount   atomic.Uint64
	bytesWritten atomic.Uint64
	errorCount   atomic.Uint64
	lastError    atomic.Int64 // unix nanos
	closed       atomic.Bool
}

// OpenFile opens path for appending, creating it if needed. The parent
// directory must already exist.
func OpenFile(path string, processSafe bool) (*FileBackend, error) {
	cleanPath := filepath.Clean(path)

	// #nosec G302 - log files need to be readable
	file, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", cleanPath)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close() // Best effort close on error path
		return nil, errors.Wrapf(err, "stat %s", cleanPath)
	}

	fb := &FileBackend{
		file: file,
		path: cleanPath,
	}
	fb.size.Store(info.Size())
	if processSafe {
		fb.lock = flock.New(cleanPath)
	}
	return fb, nil
}

// Write appends line to the file.
func (fb *FileBackend) Write(line []byte) (int, error) {
	if fb.closed.Load() {
		fb.recordError()
		return 0, ErrClosed
	}

	if fb.lock != nil {
		if err := fb.lock.Lock(); err != nil {
			fb.recordError()
			return 0, errors.Wrap(err, "acquire file lock")
		}
		defer func() {
			_ = fb.lock.Unlock() // Best effort unlock
		}()
	}

	n, err := fb.file.Write(line)
	fb.size.Add(int64(n))
	fb.bytesWritten.Add(uint64(n))
	if err != nil {
		fb.recordError()
		return n, errors.Wrapf(err, "write %s", fb.path)
	}
	fb.writeCount.Add(1)
	return n, nil
}

func (fb *FileBackend) recordError() {
	fb.errorCount.Add(1)
	fb.lastError.Store(time.Now().UnixNano())
}

// Close closes the file. Closing twice is a no-op.
func (fb *FileBackend) Close() error {
	if !fb.closed.CompareAndSwap(false, true) {
		return nil
	}

	var lockErr error
	if fb.lock != nil {
		lockErr = fb.lock.Close()
	}
	if err := fb.file.Close(); err != nil {
		return errors.Wrapf(err, "close %s", fb.path)
	}
	if lockErr != nil {
		return errors.Wrap(lockErr, "release file lock")
	}
	return nil
}

// GetStats returns backend statistics
func (fb *FileBackend) GetStats() BackendStats {
	stats := BackendStats{
		Path:         fb.path,
		ProcessSafe:  fb.lock != nil,
		Size:         fb.size.Load(),
		WriteCount:   fb.writeCount.Load(),
		BytesWritten: fb.bytesWritten.Load(),
		ErrorCount:   fb.errorCount.Load(),
	}
	if ns := fb.lastError.Load(); ns != 0 {
		stats.LastError = time.Unix(0, ns)
	}
	return stats
}
