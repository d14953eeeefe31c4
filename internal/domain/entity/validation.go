package entity

import (
	"fmt"
	"strings"

	"masthead/internal/utils/text"
)

// ValidateRuneRange checks that a string value is between min and max
// characters long, counting characters rather than bytes so multi-byte
// names are measured the way readers see them.
// Returns a ValidationError naming the field when the value is out of range.
func ValidateRuneRange(field, value string, min, max int) error {
	n := text.CountRunes(value)
	if n < min || n > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters", min, max),
		}
	}
	return nil
}

// ValidateNonBlank checks that a string value contains at least one
// non-whitespace character.
// Returns a ValidationError naming the field when the value is blank.
func ValidateNonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "must not be blank"}
	}
	return nil
}
