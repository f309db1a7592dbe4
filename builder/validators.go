// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// validators.go - parameter checks shared by constructors.

package builder

import (
	"fmt"
)

// validateMin ensures that got ≥ min, returning a wrapped ErrTooSmall otherwise.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooSmall)
	}

	return nil
}

// validateMax ensures that got ≤ max, returning a wrapped ErrTooLarge otherwise.
// Complexity: O(1).
func validateMax(method, param string, got, max int) error {
	if got > max {
		return fmt.Errorf("%s: %s=%d > max=%d: %w", method, param, got, max, ErrTooLarge)
	}

	return nil
}
