package formatters

import (
	"time"
)

// TimestampLayout is the fixed timestamp shape of every line.
const TimestampLayout = "2006-01-02 15:04:05"

// DefaultMaxLineLength bounds a formatted line, trailing newline included.
const DefaultMaxLineLength = 4096

// Entry is one log event as handed to a formatter.
type Entry struct {
	Time     time.Time
	Level    string
	File     string
	Line     int
	Function string
	Format   string
	Args     []interface{}
}

// FormatOptions controls the output format
type FormatOptions struct {
	TimestampFormat string
	TimeZone        *time.Location // nil means the entry's own location
	MaxLineLength   int
}

// DefaultFormatOptions returns default formatting options
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		TimestampFormat: TimestampLayout,
		TimeZone:        time.Local,
		MaxLineLength:   DefaultMaxLineLength,
	}
}
