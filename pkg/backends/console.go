package backends

import (
	"io"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/wayneeseguin/lumen/pkg/formatters"
)

// Stream selects one of the two console streams.
type Stream int

const (
	// Stdout carries DEBUG, INFO and WARN lines.
	Stdout Stream = iota
	// Stderr carries ERROR and FATAL lines.
	Stderr
)

// TerminalDetector reports whether w is an interactive terminal.
type TerminalDetector func(w io.Writer) bool

// IsTerminal detects terminals for writers that expose a file descriptor,
// such as *os.File. Anything else is treated as a plain stream.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ConsoleBackend writes lines to stdout or stderr. Color escapes are only
// emitted when the destination stream is a terminal.
type ConsoleBackend struct {
	stdout     io.Writer
	stderr     io.Writer
	isTerminal TerminalDetector

	writeCount   atomic.Uint64
	bytesWritten atomic.Uint64
	errorCount   atomic.Uint64
}

// NewConsoleBackend creates a console backend. A nil detector falls back to
// IsTerminal.
func NewConsoleBackend(stdout, stderr io.Writer, detect TerminalDetector) *ConsoleBackend {
	if detect == nil {
		detect = IsTerminal
	}
	return &ConsoleBackend{
		stdout:     stdout,
		stderr:     stderr,
		isTerminal: detect,
	}
}

func (c *ConsoleBackend) writer(s Stream) io.Writer {
	if s == Stderr {
		return c.stderr
	}
	return c.stdout
}

// WriteTo writes line to the stream. A non-empty color wraps the whole line
// in the escape and a reset when the stream is a terminal. The colored line
// is emitted with a single Write call.
func (c *ConsoleBackend) WriteTo(s Stream, line []byte, color string) (int, error) {
	w := c.writer(s)
	if w == nil {
		return 0, errors.New("console stream not available")
	}

	out := line
	if color != "" && c.isTerminal(w) {
		out = make([]byte, 0, len(color)+len(line)+len(formatters.ColorReset))
		out = append(out, color...)
		out = append(out, line...)
		out = append(out, formatters.ColorReset...)
	}

	n, err := w.Write(out)
	c.bytesWritten.Add(uint64(n))
	if err != nil {
		c.errorCount.Add(1)
		return n, errors.Wrap(err, "console write")
	}
	c.writeCount.Add(1)
	return n, nil
}

// GetStats returns backend statistics. The console is never closed; the
// process owns the standard streams.
func (c *ConsoleBackend) GetStats() BackendStats {
	return BackendStats{
		Path:         "console",
		WriteCount:   c.writeCount.Load(),
		BytesWritten: c.bytesWritten.Load(),
		ErrorCount:   c.errorCount.Load(),
	}
}

var _ Backend = (*FileBackend)(nil)
