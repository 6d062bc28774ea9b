// SPDX-License-Identifier: MIT

package planar

// linkNextCW sets, at every node, the next pointer of each incoming edge to
// the outgoing edge that follows its sym in counter-clockwise order. Following
// next then walks the boundary of a face keeping it on the right, which is the
// maximal ring through each edge. Deleted edges are skipped.
//
// Complexity: O(V + E).
func (g *Graph) linkNextCW() {
	for n := range g.nodes {
		start, prev := none, none
		for _, out := range g.nodes[n].out {
			if g.dirEdges[out].deleted {
				continue
			}
			if start == none {
				start = out
			}
			if prev != none {
				g.dirEdges[g.dirEdges[prev].sym].next = out
			}
			prev = out
		}
		if prev != none {
			g.dirEdges[g.dirEdges[prev].sym].next = start
		}
	}
}

// labelMaximal clears every label and gives each next-cycle of non-deleted
// edges a fresh label. It returns one start edge per labeled cycle.
func (g *Graph) labelMaximal() []int {
	for i := range g.dirEdges {
		g.dirEdges[i].label = none
	}

	var starts []int
	label := 0
	for de := range g.dirEdges {
		e := &g.dirEdges[de]
		if e.deleted || e.label != none {
			continue
		}
		starts = append(starts, de)
		g.traceCycle(de, func(x int) {
			if g.dirEdges[x].label != none {
				fatalf("directed edge %d reached twice while labeling ring %d", x, label)
			}
			g.dirEdges[x].label = label
		})
		label++
	}

	return starts
}

// splitMinimal converts maximal rings into minimal ones. A maximal ring that
// visits a node more than once is re-linked at that node using only its own
// edges, which separates it into cycles that share the node but no edge.
func (g *Graph) splitMinimal(starts []int) {
	for _, start := range starts {
		label := g.dirEdges[start].label
		for _, n := range g.intersectionNodes(start, label) {
			g.linkNextCCW(n, label)
		}
	}
}

// intersectionNodes lists, in trace order and without repeats, the nodes of
// the ring through start where more than one of its edges leaves.
func (g *Graph) intersectionNodes(start, label int) []int {
	var nodes []int
	seen := make(map[int]struct{})
	g.traceCycle(start, func(de int) {
		n := g.dirEdges[de].from
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		if g.degreeWithLabel(n, label) > 1 {
			nodes = append(nodes, n)
		}
	})

	return nodes
}

// linkNextCCW re-links, at node n, the incoming edges carrying label to
// outgoing edges carrying label. Walking the star clockwise, each incoming
// edge is paired with the first outgoing edge after it.
func (g *Graph) linkNextCCW(n, label int) {
	out := g.nodes[n].out
	firstOut, prevIn := none, none

	for i := len(out) - 1; i >= 0; i-- {
		de := out[i]
		sym := g.dirEdges[de].sym

		outDE, inDE := none, none
		if g.dirEdges[de].label == label {
			outDE = de
		}
		if g.dirEdges[sym].label == label {
			inDE = sym
		}
		if outDE == none && inDE == none {
			continue
		}

		if inDE != none {
			prevIn = inDE
		}
		if outDE != none {
			if prevIn != none {
				g.dirEdges[prevIn].next = outDE
				prevIn = none
			}
			if firstOut == none {
				firstOut = outDE
			}
		}
	}

	if prevIn != none {
		if firstOut == none {
			fatalf("node %d has incoming edges but no outgoing edge for label %d", n, label)
		}
		g.dirEdges[prevIn].next = firstOut
	}
}

// traceCycle calls visit for every edge of the next-cycle through start,
// beginning with start. A missing or deleted successor, or a walk longer than
// the graph, is an invariant violation.
func (g *Graph) traceCycle(start int, visit func(de int)) {
	de := start
	for steps := 0; ; steps++ {
		if steps >= len(g.dirEdges) {
			fatalf("ring from directed edge %d does not return to its start", start)
		}
		visit(de)

		next := g.dirEdges[de].next
		if next == none {
			fatalf("directed edge %d has no next edge", de)
		}
		if g.dirEdges[next].deleted {
			fatalf("directed edge %d links to deleted edge %d", de, next)
		}
		if next == start {
			return
		}
		de = next
	}
}
