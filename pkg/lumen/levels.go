package lumen

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/wayneeseguin/lumen/pkg/formatters"
)

// Level is a message severity. Levels are totally ordered; a logger emits a
// message when its level is at or above the configured threshold.
type Level int

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = iota
	// LevelInfo is the default threshold.
	LevelInfo
	// LevelWarn marks recoverable problems.
	LevelWarn
	// LevelError marks failures. Error lines go to stderr.
	LevelError
	// LevelFatal marks unrecoverable failures. Logging at this level does
	// not terminate the process.
	LevelFatal

	levelCount
)

var levelNames = [levelCount]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelDebug && l < levelCount
}

// String returns the tag used in formatted lines.
func (l Level) String() string {
	if !l.Valid() {
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// color returns the ANSI escape for console output.
func (l Level) color() string {
	if !l.Valid() {
		return ""
	}
	return formatters.LevelColor(levelNames[l])
}

// ParseLevel converts a level name to a Level. Matching is
// case-insensitive and "WARNING" is accepted as an alias for WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "FATAL":
		return LevelFatal, nil
	}
	return LevelInfo, errors.Errorf("unknown log level %q", s)
}

// levelName is used to label exported metrics.
func levelName(level int) string {
	return Level(level).String()
}
