// SPDX-License-Identifier: MIT

package planar

// SetNext overwrites the next pointer of de. Test-only.
func SetNext(g *Graph, de, next int) { g.dirEdges[de].next = next }

// TraceCycle returns the next-cycle through start. Test-only.
func TraceCycle(g *Graph, start int) []int {
	var out []int
	g.traceCycle(start, func(de int) { out = append(out, de) })
	return out
}
