// Package validation provides common validation utilities for the goring library.
package validation

import (
	grerrors "github.com/vnykmshr/goring/pkg/common/errors"
)

// ValidatePositive validates that an integer value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func ValidatePositive(module, field string, value int) error {
	if value <= 0 {
		return grerrors.NewValidationError(module, field, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidatePowerOfTwo validates that an integer value is a positive power of
// two. The ring buffer requires this so slot indices can be computed with a
// bit mask. Returns a ValidationError otherwise.
func ValidatePowerOfTwo(module, field string, value int) error {
	if value <= 0 || value&(value-1) != 0 {
		return grerrors.NewValidationError(module, field, value, "must be a positive power of two").
			WithHint("use 1, 2, 4, 8, ...")
	}
	return nil
}

// ValidateNotEmpty validates that a string value is not empty.
// Returns a ValidationError if the string is empty.
func ValidateNotEmpty(module, field string, value string) error {
	if value == "" {
		return grerrors.NewValidationError(module, field, value, "cannot be empty").
			WithHint("provide a non-empty " + field)
	}
	return nil
}
