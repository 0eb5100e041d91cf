package markup

import (
	"errors"
	"fmt"
)

// FormatError reports an attempt to build a structurally invalid node
type FormatError struct {
	Tag     string
	Message string
}

func (e *FormatError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("format error on <%s>: %s", e.Tag, e.Message)
	}
	return fmt.Sprintf("format error: %s", e.Message)
}

// NewFormatError creates a new format error for the given tag
func NewFormatError(tag, message string) error {
	return &FormatError{
		Tag:     tag,
		Message: message,
	}
}

// IsFormatError checks if an error is, or wraps, a format error
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
