package formatters

import (
	"github.com/wayneeseguin/lumen/internal/buffer"
)

// Formatter renders an entry into a bounded line.
// The returned line must be handed back with Release once written.
type Formatter interface {
	Format(entry Entry) (*buffer.Line, error)
	Release(line *buffer.Line)
}
