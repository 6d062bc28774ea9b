// SPDX-License-Identifier: MIT

// Package polygonizer rebuilds polygons from noded linework.
//
// Input lines must already be noded: they may meet only at shared endpoints.
// The Polygonizer feeds them into a planar.Graph, prunes what cannot bound an
// area, extracts minimal rings, classifies each ring as shell or hole, assigns
// holes to their innermost enclosing shell and assembles one polygon per
// shell. Edges and rings that do not make it into a polygon are reported
// rather than dropped.
//
// What:
//
//   - Dangles:          input lines hanging off the graph (chains included).
//   - CutEdges:         input lines walked on both sides by one ring.
//   - InvalidRingLines: boundaries of rings that are not simple. A ring is
//     reported only when it does not merely repeat linework of a smaller
//     invalid ring already reported.
//   - Polygons:         one per shell, with its assigned holes.
//
// Orientation:
//
//	Rings are traced with their face on the right. A counter-clockwise ring
//	is a hole, a clockwise ring a shell. Output polygons follow the GeoJSON
//	right-hand rule instead: exterior counter-clockwise, holes clockwise, so
//	geom.Polygon.Area is positive.
//
// Polygonal-only mode:
//
//	By default every shell yields a polygon, and on input with nested rings
//	polygons may overlap (a ring inside another produces both the annulus
//	and the inner face). WithPolygonalOnly(true) selects a subset of
//	shells with pairwise disjoint interiors: shells bordering the unbounded
//	face are included, and inclusion alternates across every shared hole.
//
// Errors:
//
//   - ErrNilGeometry      a nil geometry or line was added.
//   - ErrAlreadyComputed  input was added after the result was computed.
//   - ErrInvariant        the graph violated an internal invariant. This is
//     a defect, never a property of the input.
//
// Invalid rings, dangles, cut edges, degenerate lines and holes without a
// shell are classifications, not errors.
//
// Complexity:
//
//	O((V + E) + R log R + H·k) for V nodes, E edges, R rings and H holes
//	with k candidate shells per hole from the envelope index.
//
// Concurrency:
//
//	A Polygonizer is single-use and not safe for concurrent use. Independent
//	inputs can be processed in parallel with one Polygonizer each.
package polygonizer
