// SPDX-License-Identifier: MIT

package planar

import "github.com/twpayne/go-geom"

// none marks an absent index (no next edge, no ring, unlabeled).
const none = -1

// Quadrants of a direction vector, counter-clockwise from the positive x axis.
const (
	quadNE = iota
	quadNW
	quadSW
	quadSE
)

// node is a graph vertex. out holds directed-edge indices leaving the node,
// sorted counter-clockwise by direction.
type node struct {
	pt  geom.Coord
	out []int
}

// dirEdge is one direction of an input line.
type dirEdge struct {
	from, to int // node indices
	edge     int // underlying edge index
	sym      int // opposite direction of the same edge
	forward  bool

	// p0 is the start node coordinate and p1 the next distinct coordinate
	// along the line; together they fix the angular order at the node.
	p0, p1   geom.Coord
	quadrant int

	deleted bool
	label   int
	next    int
	ring    int
}

// edge wraps one input line shared by both directed edges.
type edge struct {
	coords []float64        // deduplicated XY, in input direction
	line   *geom.LineString // caller's line, reported for dangles and cut edges
}

// Graph is the planar graph of one polygonization job.
//
// A Graph is not safe for concurrent use. It is mutable through AddLine,
// DeleteDangles and DeleteCutEdges until ExtractRings is called; after that it
// is read-only.
type Graph struct {
	nodes    []node
	edges    []edge
	dirEdges []dirEdge

	// nodeIndex maps an XY coordinate to its node, so a coordinate is never
	// duplicated.
	nodeIndex map[[2]float64]int

	frozen bool
	rings  [][]int
}

// New returns an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{nodeIndex: make(map[[2]float64]int)}
}
