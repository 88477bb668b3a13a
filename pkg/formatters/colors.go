package formatters

// ANSI escapes used for console output.
const (
	ColorReset   = "\x1b[0m"
	ColorRed     = "\x1b[31m"
	ColorGreen   = "\x1b[32m"
	ColorYellow  = "\x1b[33m"
	ColorMagenta = "\x1b[35m"
	ColorCyan    = "\x1b[36m"
)

var levelColors = map[string]string{
	"DEBUG": ColorCyan,
	"INFO":  ColorGreen,
	"WARN":  ColorYellow,
	"ERROR": ColorRed,
	"FATAL": ColorMagenta,
}

// LevelColor returns the escape for a level name, or "" for unknown levels.
func LevelColor(level string) string {
	return levelColors[level]
}
