// SPDX-License-Identifier: MIT
// Package: polygonize/builder
//
// impl_path.go: free-form lattice lines: Segment and Path.
//
// Contract:
//   • Coordinates are lattice pairs (i0, j0, i1, j1, ...), mapped through the
//     configured origin and cell size.
//   • No noding is performed; callers place endpoints on existing nodes to
//     attach dangles or bridges.

package builder

import "fmt"

// Segment returns a Constructor for the single line (x0,y0)-(x1,y1).
func Segment(x0, y0, x1, y1 float64) Constructor {
	return Path(x0, y0, x1, y1)
}

// Path returns a Constructor for one polyline through the given lattice
// points. At least two points are required and every ordinate must be finite.
func Path(coords ...float64) Constructor {
	return func(lw *Linework, cfg builderConfig) error {
		// 1. Shape checks.
		if len(coords)%2 != 0 {
			return fmt.Errorf("%s: odd ordinate count %d: %w", methodPath, len(coords), ErrConstructFailed)
		}
		if err := validateMin(methodPath, "points", len(coords)/2, MinPathPoints); err != nil {
			return err
		}
		for k, v := range coords {
			if !finite(v) {
				return fmt.Errorf("%s: ordinate #%d=%g: %w", methodPath, k, v, ErrInvalidSize)
			}
		}

		// 2. Emit.
		lw.Polyline(coords...)

		return nil
	}
}
