// SPDX-License-Identifier: MIT

// Package planar implements the planar graph that sits underneath polygon
// reconstruction: nodes keyed by coordinate, pairs of directed edges per input
// line, pruning of edges that cannot bound an area, and the two-pass ring
// labeling that decomposes the remaining graph into minimal rings.
//
// What:
//
//   - Graph owns every node and edge of one polygonization job in flat,
//     index-addressed slices (an arena). "sym", "next" and "ring" links are
//     integer indices, -1 meaning none.
//   - Outgoing directed edges of a node are kept in counter-clockwise angular
//     order (quadrant first, then a robust orientation test).
//   - DeleteDangles removes chains of edges hanging off degree-1 nodes.
//   - DeleteCutEdges removes edges traversed on both sides by the same
//     maximal ring.
//   - ExtractRings links next-CW pointers, labels maximal rings, splits them
//     at self-intersection nodes into minimal rings and returns every cycle.
//
// Why:
//
//   - Noded linework (boundaries, parcels, road casings) carries no face
//     structure; this package recovers it without any geometric overlay.
//
// Complexity:
//
//   - AddLine:        O(d) per line for angular insertion (d = node degree).
//   - DeleteDangles:  O(V + E) with an explicit work stack.
//   - DeleteCutEdges: O(V + E).
//   - ExtractRings:   O(V + E) plus O(d) per self-intersection node.
//
// Errors:
//
//   - The graph never returns errors. Degenerate lines are ignored and
//     reported through AddLine's boolean result.
//   - A broken ring trace or a mutation after ExtractRings is a defect of the
//     caller or of this package; it panics with *InvariantError. Use Recover
//     at an API boundary to turn it into an error.
package planar
