package lumen

import (
	"strings"

	"github.com/pkg/errors"
)

// Output is a set of sinks. Any combination is valid, including none.
type Output uint8

const (
	// OutputConsole writes to stdout and stderr.
	OutputConsole Output = 1 << iota
	// OutputFile appends to the configured file.
	OutputFile

	// OutputNone disables every sink.
	OutputNone Output = 0
)

// Has reports whether every sink in o is present.
func (set Output) Has(o Output) bool {
	return set&o == o
}

func (set Output) String() string {
	var parts []string
	if set.Has(OutputConsole) {
		parts = append(parts, "console")
	}
	if set.Has(OutputFile) {
		parts = append(parts, "file")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseOutputs parses a list such as "console,file", "console|file" or
// "none".
func ParseOutputs(s string) (Output, error) {
	var set Output
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' '
	})
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "console", "stdout":
			set |= OutputConsole
		case "file":
			set |= OutputFile
		case "none":
		default:
			return OutputNone, errors.Errorf("unknown output %q", f)
		}
	}
	return set, nil
}
