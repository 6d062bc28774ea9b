// SPDX-License-Identifier: MIT
// Package: polygonize/builder
//
// api.go: public surface: Constructor, Linework and BuildLines.
//
// Contract:
//   • Constructors append lines to a Linework; they never panic.
//   • BuildLines runs constructors in order and stops at the first error.
//   • Output is deterministic for a fixed option set (and seed).

package builder

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

const methodBuildLines = "BuildLines"

// Constructor appends one shape to lw using the resolved configuration.
type Constructor func(lw *Linework, cfg builderConfig) error

// Linework accumulates generated lines.
type Linework struct {
	cfg   builderConfig
	lines []*geom.LineString
}

// Len returns the number of lines accumulated so far.
func (lw *Linework) Len() int { return len(lw.lines) }

// Lines returns the accumulated lines in emission order.
func (lw *Linework) Lines() []*geom.LineString {
	out := make([]*geom.LineString, len(lw.lines))
	copy(out, lw.lines)
	return out
}

// Polyline emits the lattice polyline (i0, j0, i1, j1, ...). With split
// segments enabled each consecutive pair becomes its own line.
// Polylines with fewer than two lattice points are ignored.
func (lw *Linework) Polyline(lattice ...float64) {
	n := len(lattice) / 2
	if n < 2 {
		return
	}

	// 1. Map lattice points to output coordinates.
	flat := make([]float64, 0, 2*n)
	for k := 0; k < n; k++ {
		x, y := lw.cfg.point(lattice[2*k], lattice[2*k+1])
		flat = append(flat, x, y)
	}

	// 2. Emit whole or as consecutive segments.
	if !lw.cfg.split {
		lw.lines = append(lw.lines, geom.NewLineStringFlat(geom.XY, flat))
		return
	}
	for k := 0; k+1 < n; k++ {
		seg := []float64{flat[2*k], flat[2*k+1], flat[2*k+2], flat[2*k+3]}
		lw.lines = append(lw.lines, geom.NewLineStringFlat(geom.XY, seg))
	}
}

// BuildLines resolves bopts and runs every constructor against a fresh
// Linework. Errors are wrapped with the failing constructor's position.
//
// Complexity: sum of the constructors' costs.
func BuildLines(bopts []BuilderOption, cons ...Constructor) ([]*geom.LineString, error) {
	cfg := newBuilderConfig(bopts...)
	lw := &Linework{cfg: cfg}

	for i, con := range cons {
		if con == nil {
			return nil, fmt.Errorf("%s: constructor #%d is nil: %w", methodBuildLines, i, ErrConstructFailed)
		}
		if err := con(lw, cfg); err != nil {
			return nil, fmt.Errorf("%s: constructor #%d: %w", methodBuildLines, i, err)
		}
	}

	return lw.lines, nil
}
