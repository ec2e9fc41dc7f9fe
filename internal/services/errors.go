package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks missing or invalid settings, including the
	// extraction API credential.
	ErrConfiguration = errors.New("configuration error")
	// ErrExtraction marks failures of the external vision extraction call.
	ErrExtraction = errors.New("extraction error")
	// ErrParse marks text that is not valid JSON after normalization, or an
	// unreadable store document.
	ErrParse = errors.New("parse error")
	// ErrValidation marks annotation records missing required fields.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks missing input files such as the room image.
	ErrNotFound = errors.New("not found")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExtraction
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
