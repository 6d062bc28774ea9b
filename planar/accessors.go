// SPDX-License-Identifier: MIT

package planar

import "github.com/twpayne/go-geom"

// NumNodes returns the number of distinct node coordinates.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of accepted input lines.
func (g *Graph) NumEdges() int { return len(g.edges) }

// NumDirEdges returns the number of directed edges (twice NumEdges).
func (g *Graph) NumDirEdges() int { return len(g.dirEdges) }

// NodeAt returns the node at coordinate c, if any.
func (g *Graph) NodeAt(c geom.Coord) (int, bool) {
	idx, ok := g.nodeIndex[[2]float64{c[0], c[1]}]
	return idx, ok
}

// NodeCoord returns the coordinate of node n.
func (g *Graph) NodeCoord(n int) geom.Coord { return g.nodes[n].pt }

// OutEdges returns a copy of node n's outgoing directed edges in
// counter-clockwise order, deleted edges included.
func (g *Graph) OutEdges(n int) []int {
	out := make([]int, len(g.nodes[n].out))
	copy(out, g.nodes[n].out)
	return out
}

// Degree returns the number of non-deleted directed edges leaving node n.
func (g *Graph) Degree(n int) int {
	d := 0
	for _, de := range g.nodes[n].out {
		if !g.dirEdges[de].deleted {
			d++
		}
	}
	return d
}

// degreeWithLabel counts outgoing edges of n that carry label.
func (g *Graph) degreeWithLabel(n, label int) int {
	d := 0
	for _, de := range g.nodes[n].out {
		if g.dirEdges[de].label == label {
			d++
		}
	}
	return d
}

// From returns the start node of directed edge de.
func (g *Graph) From(de int) int { return g.dirEdges[de].from }

// To returns the end node of directed edge de.
func (g *Graph) To(de int) int { return g.dirEdges[de].to }

// Sym returns the opposite direction of de.
func (g *Graph) Sym(de int) int { return g.dirEdges[de].sym }

// Next returns the ring successor of de, or -1.
func (g *Graph) Next(de int) int { return g.dirEdges[de].next }

// Label returns the maximal-ring label of de, or -1.
func (g *Graph) Label(de int) int { return g.dirEdges[de].label }

// Deleted reports whether de was removed as a dangle or cut edge.
func (g *Graph) Deleted(de int) bool { return g.dirEdges[de].deleted }

// RingOf returns the index of the extracted ring containing de, or -1.
func (g *Graph) RingOf(de int) int { return g.dirEdges[de].ring }

// Forward reports whether de runs in the direction of its input line.
func (g *Graph) Forward(de int) bool { return g.dirEdges[de].forward }

// Line returns the input line underlying de.
func (g *Graph) Line(de int) *geom.LineString {
	return g.edges[g.dirEdges[de].edge].line
}

// EdgeCoords returns the deduplicated XY coordinates of de's line in the
// direction of de. The slice is a copy.
func (g *Graph) EdgeCoords(de int) []float64 {
	e := &g.dirEdges[de]
	src := g.edges[e.edge].coords
	out := make([]float64, len(src))
	if e.forward {
		copy(out, src)
		return out
	}
	n := len(src) / 2
	for i := 0; i < n; i++ {
		out[2*i] = src[2*(n-1-i)]
		out[2*i+1] = src[2*(n-1-i)+1]
	}
	return out
}
