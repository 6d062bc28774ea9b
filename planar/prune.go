// SPDX-License-Identifier: MIT

package planar

import (
	"sort"

	"github.com/twpayne/go-geom"
)

// DeleteDangles removes every edge that hangs off a node of degree one,
// repeatedly, until no such node remains. Removing a spur can expose the next
// spur further along a chain, so nodes are processed from an explicit work
// stack rather than by recursion.
//
// It returns the input lines of the removed edges in insertion order. Calling
// it on a dangle-free graph changes nothing and returns an empty slice.
//
// Complexity: O(V + E) time, O(V) stack.
func (g *Graph) DeleteDangles() []*geom.LineString {
	g.mustBeMutable("DeleteDangles")

	// 1. Seed the stack with every current degree-1 node.
	var stack []int
	for n := range g.nodes {
		if g.Degree(n) == 1 {
			stack = append(stack, n)
		}
	}

	// 2. Pop a node, delete its remaining edge pair, and push the far node if
	//    that deletion left it dangling too.
	removed := make(map[int]struct{})
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, de := range g.nodes[n].out {
			e := &g.dirEdges[de]
			if e.deleted {
				continue
			}
			e.deleted = true
			g.dirEdges[e.sym].deleted = true
			removed[e.edge] = struct{}{}

			if g.Degree(e.to) == 1 {
				stack = append(stack, e.to)
			}
		}
	}

	return g.linesOf(removed)
}

// DeleteCutEdges removes every edge whose two directions fall in the same
// maximal ring. Such an edge is walked on both sides by one ring, so it cannot
// separate two faces.
//
// It returns the input lines of the removed edges in insertion order.
//
// Complexity: O(V + E).
func (g *Graph) DeleteCutEdges() []*geom.LineString {
	g.mustBeMutable("DeleteCutEdges")

	// 1. Maximal rings under next-CW linking.
	g.linkNextCW()
	g.labelMaximal()

	// 2. An edge pair sharing one label is a cut edge.
	removed := make(map[int]struct{})
	for de := range g.dirEdges {
		e := &g.dirEdges[de]
		if e.deleted {
			continue
		}
		sym := &g.dirEdges[e.sym]
		if e.label == sym.label {
			e.deleted = true
			sym.deleted = true
			removed[e.edge] = struct{}{}
		}
	}

	return g.linesOf(removed)
}

func (g *Graph) linesOf(set map[int]struct{}) []*geom.LineString {
	ids := make([]int, 0, len(set))
	for ei := range set {
		ids = append(ids, ei)
	}
	sort.Ints(ids)

	lines := make([]*geom.LineString, len(ids))
	for i, ei := range ids {
		lines[i] = g.edges[ei].line
	}
	return lines
}
