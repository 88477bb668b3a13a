package lumen

import (
	"github.com/pkg/errors"
)

// Errors returned by lifecycle and file reconfiguration calls. Match them
// with errors.Is; the returned values are *Error.
var (
	ErrAlreadyInitialized = errors.New("logger already initialized")
	ErrLockInitFailed     = errors.New("lock initialization failed")
	ErrFileOpenFailed     = errors.New("log file open failed")
	ErrInvalidPath        = errors.New("invalid log file path")
)

// Operations reported in Error.Op.
const (
	OpInit    = "init"
	OpSetFile = "set_file"
)

// Error describes a failed lifecycle or reconfiguration call.
type Error struct {
	Op   string // OpInit or OpSetFile
	Path string // file path involved, if any
	Kind error  // one of the Err* sentinels
	Err  error  // underlying cause, may be nil
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := "lumen: " + e.Op + ": " + e.Kind.Error()
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches the error's sentinel kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Cause lets errors.Cause reach the root failure.
func (e *Error) Cause() error {
	if e.Err != nil {
		return errors.Cause(e.Err)
	}
	return e.Kind
}

// Code returns a numeric status for the failure: -1, -2 and -3 from init,
// -1 and -2 from set_file.
func (e *Error) Code() int {
	switch e.Op {
	case OpInit:
		switch e.Kind {
		case ErrAlreadyInitialized:
			return -1
		case ErrLockInitFailed:
			return -2
		case ErrFileOpenFailed:
			return -3
		}
	case OpSetFile:
		switch e.Kind {
		case ErrInvalidPath:
			return -1
		case ErrFileOpenFailed:
			return -2
		}
	}
	return -1
}

func newError(op string, kind error, path string, cause error) *Error {
	return &Error{Op: op, Path: path, Kind: kind, Err: cause}
}
