// SPDX-License-Identifier: MIT

// Package spatial is a bounding-box index over arbitrary items, backed by the
// R-Tree of github.com/peterstace/simplefeatures/rtree and keyed by go-geom
// envelopes.
//
// The R-Tree stores record IDs only; Index keeps the items in a slice and uses
// their positions as record IDs. Query results come back in insertion order
// so callers that depend on iteration order stay deterministic.
//
// Complexity:
//
//   - BulkLoad: O(n log n).
//   - Insert:   O(log n) amortised.
//   - Query:    O(log n + k log k) for k hits.
package spatial
