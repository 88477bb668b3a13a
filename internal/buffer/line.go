package buffer

import (
	"sync"
	"unicode/utf8"
)

// Line is a fixed-capacity byte buffer for a single log line.
// Writes past the capacity are discarded and mark the line as truncated;
// the backing array never grows.
type Line struct {
	buf       []byte
	limit     int
	truncated bool
}

// NewLine returns an empty line that holds at most capacity bytes.
func NewLine(capacity int) *Line {
	if capacity < 1 {
		capacity = 1
	}
	return &Line{
		buf:   make([]byte, 0, capacity),
		limit: capacity,
	}
}

// Write appends as much of p as fits and always reports len(p) so that
// fmt.Fprintf keeps going instead of aborting on a short write.
func (l *Line) Write(p []byte) (int, error) {
	l.append(p)
	return len(p), nil
}

// WriteString appends as much of s as fits.
func (l *Line) WriteString(s string) (int, error) {
	room := l.Remaining()
	if len(s) > room {
		l.buf = append(l.buf, s[:room]...)
		l.truncated = true
	} else {
		l.buf = append(l.buf, s...)
	}
	return len(s), nil
}

// WriteByte appends c when there is room.
func (l *Line) WriteByte(c byte) error {
	if l.Remaining() == 0 {
		l.truncated = true
		return nil
	}
	l.buf = append(l.buf, c)
	return nil
}

func (l *Line) append(p []byte) {
	room := l.Remaining()
	if len(p) > room {
		l.buf = append(l.buf, p[:room]...)
		l.truncated = true
		return
	}
	l.buf = append(l.buf, p...)
}

// Reserve lowers the writable limit by n bytes, keeping them free for a
// trailer such as the newline. Release undoes it.
func (l *Line) Reserve(n int) {
	if n > l.limit {
		n = l.limit
	}
	l.limit -= n
}

// Release restores n previously reserved bytes.
func (l *Line) Release(n int) {
	l.limit += n
	if l.limit > cap(l.buf) {
		l.limit = cap(l.buf)
	}
}

// TrimPartialRune drops a trailing incomplete UTF-8 sequence left behind by
// truncation. It is a no-op for lines that were not truncated.
func (l *Line) TrimPartialRune() {
	if !l.truncated || len(l.buf) == 0 {
		return
	}
	// A rune is at most utf8.UTFMax bytes; only the tail can be broken.
	start := len(l.buf) - utf8.UTFMax
	if start < 0 {
		start = 0
	}
	for i := len(l.buf) - 1; i >= start; i-- {
		if utf8.RuneStart(l.buf[i]) {
			if !utf8.FullRune(l.buf[i:]) {
				l.buf = l.buf[:i]
			}
			return
		}
	}
}

// Bytes returns the line contents. The slice is only valid until the line
// is reset or returned to its pool.
func (l *Line) Bytes() []byte { return l.buf }

// String returns a copy of the contents.
func (l *Line) String() string { return string(l.buf) }

// Cap returns the fixed capacity of the line.
func (l *Line) Cap() int { return cap(l.buf) }

// Remaining returns how many more bytes fit under the current limit.
func (l *Line) Remaining() int {
	if n := l.limit - len(l.buf); n > 0 {
		return n
	}
	return 0
}

// Truncated reports whether any write was cut short.
func (l *Line) Truncated() bool { return l.truncated }

// Reset empties the line and clears the truncation flag.
func (l *Line) Reset() {
	l.buf = l.buf[:0]
	l.limit = cap(l.buf)
	l.truncated = false
}

// Pool recycles lines of one fixed capacity.
type Pool struct {
	pool     sync.Pool
	capacity int
}

// NewPool creates a pool handing out lines of the given capacity.
func NewPool(capacity int) *Pool {
	p := &Pool{capacity: capacity}
	p.pool.New = func() interface{} {
		return NewLine(capacity)
	}
	return p
}

// Get returns an empty line.
func (p *Pool) Get() *Line {
	l, ok := p.pool.Get().(*Line)
	if !ok || l.Cap() != p.capacity {
		return NewLine(p.capacity)
	}
	l.Reset()
	return l
}

// Put returns a line to the pool.
func (p *Pool) Put(l *Line) {
	if l == nil || l.Cap() != p.capacity {
		return
	}
	l.Reset()
	p.pool.Put(l)
}
