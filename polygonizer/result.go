// SPDX-License-Identifier: MIT

package polygonizer

import "github.com/twpayne/go-geom"

// Result is the output of one pipeline run. Slices are owned by the caller
// after they are returned by an accessor.
type Result struct {
	// Polygons holds one polygon per emitted shell, in shell order.
	Polygons []*geom.Polygon

	// Dangles, CutEdges and InvalidRingLines are the diagnostics. Dangles and
	// cut edges are the caller's own line values in insertion order.
	Dangles          []*geom.LineString
	CutEdges         []*geom.LineString
	InvalidRingLines []*geom.LineString

	// Shells are the valid clockwise rings sorted by envelope; Holes the
	// valid counter-clockwise rings; InvalidRings every invalid ring.
	Shells       []*Ring
	Holes        []*Ring
	InvalidRings []*Ring

	Stats Stats
}

// Stats counts what each pipeline stage saw.
type Stats struct {
	Lines           int // lines accepted by the graph
	IgnoredLines    int // degenerate lines dropped on input
	Nodes           int
	Dangles         int
	CutEdges        int
	Rings           int
	InvalidRings    int
	Shells          int
	Holes           int
	AssignedHoles   int
	UndecidedShells int // polygonal-only shells left undecided and excluded
	Polygons        int
}
