package formatters

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/wayneeseguin/lumen/internal/buffer"
)

// ErrHeaderOverflow is returned when the bracketed prefix alone does not fit
// in a line. The event is dropped rather than emitted without a message.
var ErrHeaderOverflow = errors.New("line header exceeds maximum line length")

// TextFormatter formats entries as
//
//	[2006-01-02 15:04:05] [LEVEL] [file.go:42 function] message
//
// into pooled fixed-capacity lines. A message that overflows the line is cut
// so that the line still ends with a newline.
type TextFormatter struct {
	Options FormatOptions
	pool    *buffer.Pool
}

// NewTextFormatterWithOptions creates a text formatter. Unset options fall
// back to their defaults; a line must have room for at least the newline.
func NewTextFormatterWithOptions(opts FormatOptions) *TextFormatter {
	if opts.TimestampFormat == "" {
		opts.TimestampFormat = TimestampLayout
	}
	if opts.MaxLineLength < 2 {
		opts.MaxLineLength = DefaultMaxLineLength
	}
	return &TextFormatter{
		Options: opts,
		pool:    buffer.NewPool(opts.MaxLineLength),
	}
}

// Format renders the entry. On error no line is returned.
func (f *TextFormatter) Format(e Entry) (*buffer.Line, error) {
	line := f.pool.Get()
	line.Reserve(1) // newline

	f.writeHeader(line, e)
	if line.Truncated() {
		f.pool.Put(line)
		return nil, errors.WithStack(ErrHeaderOverflow)
	}

	fmt.Fprintf(line, e.Format, e.Args...)
	line.TrimPartialRune()

	line.Release(1)
	_ = line.WriteByte('\n')
	return line, nil
}

// Release hands a formatted line back to the pool.
func (f *TextFormatter) Release(line *buffer.Line) {
	f.pool.Put(line)
}

func (f *TextFormatter) writeHeader(line *buffer.Line, e Entry) {
	ts := e.Time
	if f.Options.TimeZone != nil {
		ts = ts.In(f.Options.TimeZone)
	}

	var scratch [32]byte
	_ = line.WriteByte('[')
	_, _ = line.Write(ts.AppendFormat(scratch[:0], f.Options.TimestampFormat))
	_, _ = line.WriteString("] [")
	_, _ = line.WriteString(e.Level)
	_, _ = line.WriteString("] [")
	_, _ = line.WriteString(Basename(e.File))
	_ = line.WriteByte(':')
	_, _ = line.Write(strconv.AppendInt(scratch[:0], int64(e.Line), 10))
	_ = line.WriteByte(' ')
	_, _ = line.WriteString(e.Function)
	_, _ = line.WriteString("] ")
}
