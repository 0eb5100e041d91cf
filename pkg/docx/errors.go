// Error types for document construction and packaging.

package docx

import (
	"errors"
	"fmt"

	"github.com/benjaminschreck/go-docx/pkg/docx/markup"
)

// FormatError reports a structurally invalid markup node
type FormatError = markup.FormatError

// IOError represents a failure while staging or cleaning up package parts
type IOError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *IOError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("io error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("io error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("io error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("io error during %s", e.Operation)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// NewIOError creates a new IO error
func NewIOError(operation, path string, cause error) error {
	return &IOError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// PackagingError represents a failure to fold the staged parts into a container
type PackagingError struct {
	Output string
	Cause  error
}

func (e *PackagingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("packaging error for '%s': %v", e.Output, e.Cause)
	}
	return fmt.Sprintf("packaging error for '%s'", e.Output)
}

func (e *PackagingError) Unwrap() error {
	return e.Cause
}

// NewPackagingError creates a new packaging error
func NewPackagingError(output string, cause error) error {
	return &PackagingError{
		Output: output,
		Cause:  cause,
	}
}

// InvalidArgumentError represents an argument outside its valid range
type InvalidArgumentError struct {
	Argument string
	Value    interface{}
	Message  string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%v: %s", e.Argument, e.Value, e.Message)
}

// NewInvalidArgumentError creates a new invalid argument error
func NewInvalidArgumentError(argument string, value interface{}, message string) error {
	return &InvalidArgumentError{
		Argument: argument,
		Value:    value,
		Message:  message,
	}
}

// IsFormatError checks if an error is, or wraps, a format error
func IsFormatError(err error) bool {
	return markup.IsFormatError(err)
}

// IsIOError checks if an error is, or wraps, an IO error
func IsIOError(err error) bool {
	var e *IOError
	return errors.As(err, &e)
}

// IsPackagingError checks if an error is, or wraps, a packaging error
func IsPackagingError(err error) bool {
	var e *PackagingError
	return errors.As(err, &e)
}

// IsInvalidArgumentError checks if an error is, or wraps, an invalid argument error
func IsInvalidArgumentError(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}
