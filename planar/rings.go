// SPDX-License-Identifier: MIT

package planar

// ExtractRings decomposes the non-deleted edges into minimal rings and
// returns them as cycles of directed-edge indices in traversal order.
//
// Steps:
//  1. next-CW linking at every node (maximal ring boundaries);
//  2. maximal labeling, one label per next-cycle;
//  3. minimal split at nodes a maximal ring visits more than once;
//  4. extraction: every non-deleted edge not yet in a ring starts a new one.
//
// ExtractRings freezes the graph. Later calls return the same rings; AddLine,
// DeleteDangles and DeleteCutEdges panic with *InvariantError.
//
// Complexity: O(V + E).
func (g *Graph) ExtractRings() [][]int {
	if g.frozen {
		return g.rings
	}
	g.frozen = true

	g.linkNextCW()
	starts := g.labelMaximal()
	g.splitMinimal(starts)

	var rings [][]int
	for de := range g.dirEdges {
		e := &g.dirEdges[de]
		if e.deleted || e.ring != none {
			continue
		}

		id := len(rings)
		var cycle []int
		g.traceCycle(de, func(x int) {
			if r := g.dirEdges[x].ring; r != none {
				fatalf("directed edge %d already belongs to ring %d", x, r)
			}
			g.dirEdges[x].ring = id
			cycle = append(cycle, x)
		})
		rings = append(rings, cycle)
	}
	g.rings = rings

	return rings
}

// Frozen reports whether ExtractRings has run.
func (g *Graph) Frozen() bool { return g.frozen }
