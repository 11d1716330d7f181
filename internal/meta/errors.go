package meta

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind classifies a metadata failure so callers can decide between
// substituting an inline marker and escalating.
type ErrorKind int

const (
	// ErrNotFound means the path no longer exists (raced with a delete).
	ErrNotFound ErrorKind = iota
	// ErrPermissionDenied means the stat itself was refused.
	ErrPermissionDenied
	// ErrUnsupported means the platform cannot produce the requested field.
	ErrUnsupported
)

// String returns a short label for the error kind, used in inline markers.
func (k ErrorKind) String() string {
	switch k {
	case ErrNotFound:
		return "not found"
	case ErrPermissionDenied:
		return "permission denied"
	case ErrUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is a typed metadata failure for a single path. It wraps the
// underlying OS error so callers can still unwrap it.
type Error struct {
	Path string
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("metadata for %s: %s: %v", e.Path, e.Kind, e.Err)
}

// Unwrap returns the underlying OS error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Label returns the short marker text shown inline for this failure.
func (e *Error) Label() string {
	return e.Kind.String()
}

// classifyError wraps an OS stat error into a typed metadata error.
func classifyError(path string, err error) *Error {
	kind := ErrUnsupported
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = ErrPermissionDenied
	}
	return &Error{Path: path, Kind: kind, Err: err}
}
