// SPDX-License-Identifier: MIT
// Package: polygonize/builder
//
// impl_grid.go: rows×cols lattice of unit cells, deterministic or sampled.
//
// Contract:
//   • Every lattice edge is its own two-point line, so the grid is fully
//     noded whatever WithSplitSegments says.
//   • Emission order: horizontal edges row by row, then vertical edges
//     column by column.
//   • RandomGrid keeps every boundary edge and each interior edge with
//     probability p, consuming one RNG draw per interior edge in emission order.
//
// Complexity: O(rows·cols).

package builder

import "fmt"

// Grid returns a Constructor for a rows×cols grid of unit cells.
// Polygonizing it yields rows·cols square faces.
func Grid(rows, cols int) Constructor {
	return func(lw *Linework, cfg builderConfig) error {
		if err := validateGrid(methodGrid, rows, cols); err != nil {
			return err
		}
		emitGrid(lw, rows, cols, func() bool { return true })

		return nil
	}
}

// RandomGrid returns a Constructor for a rows×cols grid whose interior
// edges each survive with probability p. Removed edges merge neighbouring
// cells; surviving interior edges with the same face on both sides become
// dangles or cut edges.
func RandomGrid(rows, cols int, p float64) Constructor {
	return func(lw *Linework, cfg builderConfig) error {
		if err := validateGrid(methodRandomGrid, rows, cols); err != nil {
			return err
		}
		if err := validateProbability(methodRandomGrid, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGrid, ErrNeedRandSource)
		}
		emitGrid(lw, rows, cols, func() bool { return cfg.rng.Float64() < p })

		return nil
	}
}

func validateGrid(method string, rows, cols int) error {
	if err := validateMin(method, "rows", rows, MinGridDim); err != nil {
		return err
	}

	return validateMin(method, "cols", cols, MinGridDim)
}

// emitGrid emits lattice edges; keep is asked only for interior edges.
func emitGrid(lw *Linework, rows, cols int, keep func() bool) {
	// 1. Horizontal edges; rows 0 and rows are boundary.
	for j := 0; j <= rows; j++ {
		boundary := j == 0 || j == rows
		for i := 0; i < cols; i++ {
			if boundary || keep() {
				fi, fj := float64(i), float64(j)
				lw.Polyline(fi, fj, fi+1, fj)
			}
		}
	}

	// 2. Vertical edges; columns 0 and cols are boundary.
	for i := 0; i <= cols; i++ {
		boundary := i == 0 || i == cols
		for j := 0; j < rows; j++ {
			if boundary || keep() {
				fi, fj := float64(i), float64(j)
				lw.Polyline(fi, fj, fi, fj+1)
			}
		}
	}
}
