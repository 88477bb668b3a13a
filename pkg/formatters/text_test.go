package formatters

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var linePattern = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[(DEBUG|INFO|WARN|ERROR|FATAL)\] \[[^\]/\\]+:\d+ [^\]]*\] .*\n$`)

func testEntry() Entry {
	return Entry{
		Time:     time.Date(2024, 3, 9, 7, 5, 2, 0, time.UTC),
		Level:    "INFO",
		File:     "/home/build/src/app/main.go",
		Line:     42,
		Function: "main",
		Format:   "started %s on port %d",
		Args:     []interface{}{"api", 8080},
	}
}

func utcFormatter(maxLen int) *TextFormatter {
	opts := DefaultFormatOptions()
	opts.TimeZone = time.UTC
	opts.MaxLineLength = maxLen
	return NewTextFormatterWithOptions(opts)
}

func TestTextFormatter_Format(t *testing.T) {
	tests := []struct {
		name  string
		entry func() Entry
		want  string
	}{
		{
			name:  "basic line",
			entry: testEntry,
			want:  "[2024-03-09 07:05:02] [INFO] [main.go:42 main] started api on port 8080\n",
		},
		{
			name: "windows path",
			entry: func() Entry {
				e := testEntry()
				e.File = `C:\work\app\handler.go`
				e.Level = "ERROR"
				e.Function = "handle"
				e.Format = "boom"
				e.Args = nil
				return e
			},
			want: "[2024-03-09 07:05:02] [ERROR] [handler.go:42 handle] boom\n",
		},
		{
			name: "bare file name",
			entry: func() Entry {
				e := testEntry()
				e.File = "worker.go"
				e.Line = 7
				e.Level = "DEBUG"
				e.Format = "tick"
				e.Args = nil
				return e
			},
			want: "[2024-03-09 07:05:02] [DEBUG] [worker.go:7 main] tick\n",
		},
		{
			name: "empty message",
			entry: func() Entry {
				e := testEntry()
				e.Format = ""
				e.Args = nil
				return e
			},
			want: "[2024-03-09 07:05:02] [INFO] [main.go:42 main] \n",
		},
	}

	f := utcFormatter(DefaultMaxLineLength)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := f.Format(tt.entry())
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			defer f.Release(line)

			if got := line.String(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
			if !linePattern.MatchString(line.String()) {
				t.Errorf("line %q does not match the line shape", line.String())
			}
		})
	}
}

func TestTextFormatter_LocalTimestamp(t *testing.T) {
	f := NewTextFormatterWithOptions(DefaultFormatOptions())
	e := testEntry()
	e.Time = time.Now()

	line, err := f.Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	defer f.Release(line)

	want := "[" + e.Time.Local().Format(TimestampLayout) + "]"
	if !strings.HasPrefix(line.String(), want) {
		t.Errorf("line %q should start with %q", line.String(), want)
	}
}

func TestTextFormatter_TruncatesLongMessage(t *testing.T) {
	const maxLen = 128
	f := utcFormatter(maxLen)
	e := testEntry()
	e.Format = "%s"
	e.Args = []interface{}{strings.Repeat("x", 1000)}

	line, err := f.Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	defer f.Release(line)

	if len(line.Bytes()) != maxLen {
		t.Errorf("line length = %d, want %d", len(line.Bytes()), maxLen)
	}
	if !strings.HasSuffix(line.String(), "x\n") {
		t.Errorf("truncated line should still end with a newline: %q", line.String())
	}
	if !line.Truncated() {
		t.Error("line should be marked truncated")
	}
	if strings.Count(line.String(), "\n") != 1 {
		t.Errorf("expected exactly one newline in %q", line.String())
	}
}

func TestTextFormatter_HeaderOverflowDrops(t *testing.T) {
	f := utcFormatter(32)
	e := testEntry()
	e.Function = strings.Repeat("f", 64)

	line, err := f.Format(e)
	if err == nil {
		f.Release(line)
		t.Fatal("expected an error for a header that does not fit")
	}
	if line != nil {
		t.Error("no line should be returned on header overflow")
	}
	if !strings.Contains(err.Error(), ErrHeaderOverflow.Error()) {
		t.Errorf("error = %v, want %v", err, ErrHeaderOverflow)
	}
}

func TestTextFormatter_BadVerbsDoNotPanic(t *testing.T) {
	f := utcFormatter(DefaultMaxLineLength)
	e := testEntry()
	e.Format = "%d %s %q"
	e.Args = []interface{}{"not a number"}

	line, err := f.Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	defer f.Release(line)

	if !strings.Contains(line.String(), "%!d(string=not a number)") {
		t.Errorf("expected fmt's bad-verb marker, got %q", line.String())
	}
}

func TestNewTextFormatterWithOptions_Defaults(t *testing.T) {
	f := NewTextFormatterWithOptions(FormatOptions{})
	if f.Options.TimestampFormat != TimestampLayout {
		t.Errorf("TimestampFormat = %q, want %q", f.Options.TimestampFormat, TimestampLayout)
	}
	if f.Options.MaxLineLength != DefaultMaxLineLength {
		t.Errorf("MaxLineLength = %d, want %d", f.Options.MaxLineLength, DefaultMaxLineLength)
	}
}

func TestLevelColor(t *testing.T) {
	tests := map[string]string{
		"DEBUG": ColorCyan,
		"INFO":  ColorGreen,
		"WARN":  ColorYellow,
		"ERROR": ColorRed,
		"FATAL": ColorMagenta,
		"TRACE": "",
	}
	for level, want := range tests {
		if got := LevelColor(level); got != want {
			t.Errorf("LevelColor(%q) = %q, want %q", level, got, want)
		}
	}
}
