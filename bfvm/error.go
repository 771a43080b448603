package bfvm

import "fmt"

const (
	UnmatchedLoopOpen = ErrorKind(iota)
	UnmatchedLoopClose
	DataPointerOutOfRange
	IOFailure
)

var errorKindStrings = []string{
	"unmatched loop open",
	"unmatched loop close",
	"data pointer out of range",
	"i/o failure",
}

// ErrorKind names the ways a program can fail. The unmatched loop kinds
// are structural and surface from Compile, before any execution. The
// other kinds abort a running VM.
type ErrorKind uint8

func (k ErrorKind) String() string {
	if int(k) < len(errorKindStrings) {
		return errorKindStrings[k]
	}
	return "unknown"
}

// Error is a compile or run failure, located at an instruction index.
type Error struct {
	Kind  ErrorKind
	Index int
	Err   error // the underlying error when Kind is IOFailure
}

var _ error = new(Error)

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v at instruction %d: %v", e.Kind, e.Index, e.Err)
	}
	return fmt.Sprintf("%v at instruction %d", e.Kind, e.Index)
}

func (e *Error) Unwrap() error {
	return e.Err
}
