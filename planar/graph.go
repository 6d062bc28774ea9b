// SPDX-License-Identifier: MIT

package planar

import (
	"sort"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// AddLine inserts ls as a pair of directed edges between its first and last
// coordinate. Consecutive duplicate coordinates are dropped; a line with
// fewer than two distinct points is ignored and AddLine returns false.
// Only the first two ordinates of each coordinate are used.
//
// Complexity: O(n + d) for n coordinates and d edges at the end nodes.
func (g *Graph) AddLine(ls *geom.LineString) bool {
	if ls == nil || ls.NumCoords() == 0 {
		return false
	}
	flat := xyCoords(ls.FlatCoords(), ls.Stride())

	return g.addEdge(flat, ls)
}

// AddCoords is AddLine for a raw coordinate sequence. The reported line for
// dangles and cut edges is an XY line built from the deduplicated sequence.
func (g *Graph) AddCoords(coords []geom.Coord) bool {
	flat := make([]float64, 0, 2*len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		flat = append(flat, c[0], c[1])
	}
	flat = dedupe(flat)
	if len(flat) < 4 {
		return false
	}

	return g.addEdge(flat, geom.NewLineStringFlat(geom.XY, flat))
}

func (g *Graph) addEdge(flat []float64, line *geom.LineString) bool {
	g.mustBeMutable("AddLine")

	// 1. Drop repeated points; a single distinct point carries no topology.
	flat = dedupe(flat)
	n := len(flat) / 2
	if n < 2 {
		return false
	}

	// 2. Resolve end nodes, creating them on first reference.
	start := geom.Coord{flat[0], flat[1]}
	end := geom.Coord{flat[2*n-2], flat[2*n-1]}
	from := g.nodeFor(start)
	to := g.nodeFor(end)

	// 3. Append the underlying edge and its two directions.
	ei := len(g.edges)
	g.edges = append(g.edges, edge{coords: flat, line: line})

	fwd := len(g.dirEdges)
	bwd := fwd + 1
	g.dirEdges = append(g.dirEdges,
		newDirEdge(from, to, ei, bwd, true, start, geom.Coord{flat[2], flat[3]}),
		newDirEdge(to, from, ei, fwd, false, end, geom.Coord{flat[2*n-4], flat[2*n-3]}),
	)

	// 4. Keep the angular order at both end nodes.
	g.insertOut(from, fwd)
	g.insertOut(to, bwd)

	return true
}

func newDirEdge(from, to, ei, sym int, forward bool, p0, p1 geom.Coord) dirEdge {
	return dirEdge{
		from:     from,
		to:       to,
		edge:     ei,
		sym:      sym,
		forward:  forward,
		p0:       p0,
		p1:       p1,
		quadrant: quadrant(p1[0]-p0[0], p1[1]-p0[1]),
		label:    none,
		next:     none,
		ring:     none,
	}
}

func (g *Graph) nodeFor(c geom.Coord) int {
	key := [2]float64{c[0], c[1]}
	if idx, ok := g.nodeIndex[key]; ok {
		return idx
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, node{pt: geom.Coord{c[0], c[1]}})
	g.nodeIndex[key] = idx

	return idx
}

// insertOut places de into the node's outgoing list after every edge that
// does not sort after it, so equal directions keep insertion order.
func (g *Graph) insertOut(n, de int) {
	out := g.nodes[n].out
	i := sort.Search(len(out), func(k int) bool {
		return g.compareDirection(out[k], de) > 0
	})
	out = append(out, 0)
	copy(out[i+1:], out[i:])
	out[i] = de
	g.nodes[n].out = out
}

// compareDirection orders two directed edges leaving the same node
// counter-clockwise from the positive x axis: -1 if a comes first.
func (g *Graph) compareDirection(a, b int) int {
	ea, eb := &g.dirEdges[a], &g.dirEdges[b]
	switch {
	case ea.quadrant > eb.quadrant:
		return 1
	case ea.quadrant < eb.quadrant:
		return -1
	}
	// Same quadrant: a is after b when a's direction is CCW of b's.
	switch xy.OrientationIndex(eb.p0, eb.p1, ea.p1) {
	case orientation.CounterClockwise:
		return 1
	case orientation.Clockwise:
		return -1
	}

	return 0
}

func quadrant(dx, dy float64) int {
	if dx >= 0 {
		if dy >= 0 {
			return quadNE
		}
		return quadSE
	}
	if dy >= 0 {
		return quadNW
	}

	return quadSW
}

func (g *Graph) mustBeMutable(op string) {
	if g.frozen {
		fatalf("%s called after ring extraction", op)
	}
}

// xyCoords projects flat coordinates of any stride onto XY.
func xyCoords(flat []float64, stride int) []float64 {
	if stride == 2 {
		out := make([]float64, len(flat))
		copy(out, flat)
		return out
	}
	out := make([]float64, 0, 2*len(flat)/stride)
	for i := 0; i+1 < len(flat); i += stride {
		out = append(out, flat[i], flat[i+1])
	}

	return out
}

// dedupe removes consecutive repeated XY points in place.
func dedupe(flat []float64) []float64 {
	if len(flat) < 4 {
		return flat
	}
	w := 2
	for r := 2; r+1 < len(flat); r += 2 {
		if flat[r] == flat[w-2] && flat[r+1] == flat[w-1] {
			continue
		}
		flat[w], flat[w+1] = flat[r], flat[r+1]
		w += 2
	}

	return flat[:w]
}
