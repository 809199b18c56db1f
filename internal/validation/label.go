package validation

import (
	"errors"
	"strings"
)

// ValidateLabel validates a client or task label
func ValidateLabel(label string) error {
	trimmed := strings.TrimSpace(label)

	if trimmed == "" {
		return errors.New("label is required")
	}

	if len(trimmed) > 200 {
		return errors.New("label is too long (max 200 characters)")
	}

	return nil
}
