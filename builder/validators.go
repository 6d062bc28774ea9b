// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	minProbability = 0.0
	maxProbability = 1.0
)

// validateMin ensures got ≥ min for the named parameter of method.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [0, 1]; NaN is rejected.
func validateProbability(method string, p float64) error {
	if !(p >= minProbability && p <= maxProbability) {
		return fmt.Errorf("%s: p=%g not in [%g, %g]: %w", method, p, minProbability, maxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateExtent requires a positive finite extent.
func validateExtent(method, name string, v float64) error {
	if !finite(v) || v <= 0 {
		return fmt.Errorf("%s: %s=%g: %w", method, name, v, ErrInvalidSize)
	}

	return nil
}
