package uniquelines

import (
	"errors"
	"fmt"
	"io/fs"
)

// NotFoundError represents an input path that does not resolve to a readable file
type NotFoundError struct {
	// Path is the input path that failed to resolve
	Path string
	// Err is the underlying error reported by the filesystem
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file %q not found", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// PermissionError represents a stream that could not be opened due to access rights
type PermissionError struct {
	// Path is the path that could not be opened
	Path string
	// Err is the underlying error reported by the filesystem
	Err error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied for %q", e.Path)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

// IOError represents any other fault while opening, reading, writing, or
// closing a stream
type IOError struct {
	// Op is the operation that failed: "open", "create", "read", "write", or "close"
	Op string
	// Path is the file involved, empty when the fault belongs to a bare stream
	Path string
	// Err is the underlying error
	Err error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// classifyInputError maps a failed input open to the error taxonomy:
// a missing file is NotFoundError, an access fault is PermissionError,
// anything else is a generic IOError.
func classifyInputError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &NotFoundError{Path: path, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &PermissionError{Path: path, Err: err}
	default:
		return &IOError{Op: "open", Path: path, Err: err}
	}
}

// classifyOutputError maps a failed output create to the error taxonomy.
// NotFoundError is reserved for the input file, so a missing parent
// directory and every other non-access fault stay generic IOErrors.
func classifyOutputError(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &PermissionError{Path: path, Err: err}
	}
	return &IOError{Op: "create", Path: path, Err: err}
}
