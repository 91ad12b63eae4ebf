// Package validation provides common validation utilities for configuration
// parameters across the goring library.
//
// This package offers reusable validation functions that help ensure
// consistent error messages and reduce boilerplate code in constructors,
// including the power-of-two capacity check required by the ring buffer.
package validation
