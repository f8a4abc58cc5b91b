package tftlayout

import "fmt"

// Kind classifies an Error. Every Kind is itself an error so callers can test
// for a class of failure with errors.Is(err, tftlayout.ErrImage).
type Kind int

const (
	// ErrImage means a source image could not be decoded, resampled or
	// converted
	ErrImage Kind = iota + 1
	// ErrIO means an output file could not be created or written
	ErrIO
	// ErrValidation means a size, position or name was rejected
	ErrValidation
	// ErrFormat means a layout or manifest document could not be parsed
	ErrFormat
	// ErrNotFound means no element has the given ID or name
	ErrNotFound
)

func (k Kind) Error() string {
	switch k {
	case ErrImage:
		return "image error"
	case ErrIO:
		return "i/o error"
	case ErrValidation:
		return "validation error"
	case ErrFormat:
		return "format error"
	case ErrNotFound:
		return "not found"
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// Error is returned by every Compiler operation that fails.
type Error struct {
	Kind Kind
	Op   string // operation, e.g. "import"
	Path string // file involved, if any
	Err  error
}

func (e *Error) Error() string {
	s := "tftlayout: " + e.Op
	if e.Path != "" {
		s += " " + e.Path
	}
	s += ": " + e.Kind.Error()
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func newError(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}
