package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
)

// FileError represents a failed read or write of a document
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new file error
func NewFileError(op, path string, err error) *FileError {
	return &FileError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// NotFoundError represents a missing file or directory
type NotFoundError struct {
	Kind string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Path)
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(kind, path string) *NotFoundError {
	return &NotFoundError{
		Kind: kind,
		Path: path,
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// EncodingError is returned for documents that are not valid UTF-8
type EncodingError struct {
	Path string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s is not valid UTF-8 text", e.Path)
}

// NewEncodingError creates a new encoding error
func NewEncodingError(path string) *EncodingError {
	return &EncodingError{Path: path}
}

// IsNotFound reports whether err means the target does not exist.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		return true
	}
	return stderrors.Is(err, fs.ErrNotExist)
}
