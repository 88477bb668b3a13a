package backends_test

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/wayneeseguin/lumen/pkg/backends"
)

// ===== FILE BACKEND TESTS =====

func TestOpenFile(t *testing.T) {
	tests := []struct {
		name        string
		pathFunc    func(tempDir string) string
		expectError bool
	}{
		{
			name: "new file",
			pathFunc: func(tempDir string) string {
				return filepath.Join(tempDir, "test.log")
			},
		},
		{
			name: "existing file",
			pathFunc: func(tempDir string) string {
				path := filepath.Join(tempDir, "existing.log")
				os.WriteFile(path, []byte("existing content\n"), 0644)
				return path
			},
		},
		{
			name: "missing directory",
			pathFunc: func(tempDir string) string {
				return filepath.Join(tempDir, "missing", "test.log")
			},
			expectError: true,
		},
		{
			name: "path is a directory",
			pathFunc: func(tempDir string) string {
				return tempDir
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.pathFunc(t.TempDir())
			fb, err := backends.OpenFile(path, false)
			if tt.expectError {
				if err == nil {
					fb.Close()
					t.Fatal("expected error, got nil")
				}
				if errors.Cause(err) == err {
					t.Errorf("error should wrap the OS error: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("OpenFile() error = %v", err)
			}
			defer fb.Close()

			stats := fb.GetStats()
			if stats.Path != filepath.Clean(path) {
				t.Errorf("stats.Path = %q, want %q", stats.Path, filepath.Clean(path))
			}
			if stats.ProcessSafe {
				t.Error("stats.ProcessSafe should be false")
			}
		})
	}
}

func TestFileBackend_AppendsAndTracksSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "append.log")
	if err := os.WriteFile(path, []byte("old line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fb, err := backends.OpenFile(path, false)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	if size := fb.GetStats().Size; size != int64(len("old line\n")) {
		t.Errorf("initial stats.Size = %d, want %d", size, len("old line\n"))
	}

	line := []byte("new line\n")
	n, err := fb.Write(line)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len(line) {
		t.Errorf("Write() n = %d, want %d", n, len(line))
	}

	// Written lines are visible before Close.
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "old line\nnew line\n" {
		t.Errorf("file content = %q", content)
	}

	stats := fb.GetStats()
	if stats.WriteCount != 1 || stats.BytesWritten != uint64(len(line)) {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Size != int64(len(content)) {
		t.Errorf("stats.Size = %d, want %d", stats.Size, len(content))
	}

	if err := fb.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestFileBackend_CloseTwiceAndWriteAfterClose(t *testing.T) {
	fb, err := backends.OpenFile(filepath.Join(t.TempDir(), "closed.log"), true)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}

	if err := fb.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := fb.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if _, err := fb.Write([]byte("late\n")); err != backends.ErrClosed {
		t.Errorf("Write() after close error = %v, want %v", err, backends.ErrClosed)
	}

	stats := fb.GetStats()
	if stats.ErrorCount != 1 || stats.LastError.IsZero() {
		t.Errorf("stats after a failed write = %+v", stats)
	}
}

func TestFileBackend_ProcessSafeConcurrentHandles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.log")

	const handles = 4
	const perHandle = 200

	var wg sync.WaitGroup
	for h := 0; h < handles; h++ {
		fb, err := backends.OpenFile(path, true)
		if err != nil {
			t.Fatalf("OpenFile() error = %v", err)
		}
		if !fb.GetStats().ProcessSafe {
			t.Fatal("stats.ProcessSafe should be true")
		}

		wg.Add(1)
		go func(id int, fb *backends.FileBackend) {
			defer wg.Done()
			defer fb.Close()
			for i := 0; i < perHandle; i++ {
				line := fmt.Sprintf("handle-%d line-%03d %s\n", id, i, strings.Repeat("z", 64))
				if _, err := fb.Write([]byte(line)); err != nil {
					t.Errorf("Write() error = %v", err)
					return
				}
			}
		}(h, fb)
	}
	wg.Wait()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
		var id, n int
		var tail string
		if _, err := fmt.Sscanf(scanner.Text(), "handle-%d line-%d %s", &id, &n, &tail); err != nil {
			t.Errorf("torn line %q: %v", scanner.Text(), err)
		}
		if tail != strings.Repeat("z", 64) {
			t.Errorf("torn line %q", scanner.Text())
		}
	}
	if count != handles*perHandle {
		t.Errorf("line count = %d, want %d", count, handles*perHandle)
	}
}
