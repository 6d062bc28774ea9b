// SPDX-License-Identifier: MIT

// Package builder generates noded linework for tests, benchmarks and the
// command-line demo. Every constructor emits line strings whose endpoints
// meet exactly at shared coordinates, so the output can be fed straight to a
// polygonizer without a separate noding step.
//
// What:
//
//   - Constructor: a closure that appends lines to a Linework sink.
//   - BuildLines: resolves options, runs constructors in order and returns
//     the accumulated lines.
//   - Shapes: Square, Rect, Nested, Grid, Wheel, Segment, Path and the
//     stochastic RandomGrid.
//   - Parse: turns a short textual form such as "grid:3x3" into a Constructor.
//
// Coordinates:
//
// Constructors work on an integer lattice. Lattice point (i, j) maps to
// origin + cellSize*(i, j), configured with WithOrigin and WithCellSize.
// WithSplitSegments(true) breaks every emitted polyline into two-point
// segments, which changes the edge count but not the faces.
//
// Errors:
//
// Invalid constructor arguments are reported through the sentinels in
// errors.go, wrapped with the constructor name. Option constructors panic on
// meaningless values.
//
// Complexity:
//
// Each constructor is linear in the number of lattice segments it emits.
package builder
