package formatters

import (
	"strings"
)

// Basename strips any directory prefix from a source path.
// Both '/' and '\' count as separators so Windows paths are handled
// on every platform.
func Basename(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// FunctionName reduces a fully qualified Go function name such as
// "github.com/acme/app/server.(*Server).Start" to "(*Server).Start".
func FunctionName(qualified string) string {
	name := qualified
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 && i+1 < len(name) {
		name = name[i+1:]
	}
	return name
}
