// SPDX-License-Identifier: MIT

package polygonizer

import "github.com/pkg/errors"

// Sentinel errors returned by the Polygonizer.
var (
	// ErrNilGeometry indicates that a nil geometry or line was added.
	ErrNilGeometry = errors.New("polygonizer: geometry is nil")

	// ErrAlreadyComputed indicates that input was added after a result
	// accessor ran. A Polygonizer is single-use.
	ErrAlreadyComputed = errors.New("polygonizer: result already computed")

	// ErrInvariant indicates an internal defect detected while tracing rings.
	ErrInvariant = errors.New("polygonizer: internal invariant violated")
)
