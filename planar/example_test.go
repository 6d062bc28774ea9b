// SPDX-License-Identifier: MIT

package planar_test

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/polygonize/planar"
)

// A square with a spur: pruning removes the spur, and the square splits into
// its inside and outside ring.
func ExampleGraph_ExtractRings() {
	g := planar.New()
	for _, flat := range [][]float64{
		{0, 0, 10, 0}, {10, 0, 10, 10}, {10, 10, 0, 10}, {0, 10, 0, 0},
		{10, 10, 14, 14},
	} {
		g.AddLine(geom.NewLineStringFlat(geom.XY, flat))
	}

	dangles := g.DeleteDangles()
	cuts := g.DeleteCutEdges()
	rings := g.ExtractRings()

	fmt.Printf("nodes=%d dangles=%d cut=%d rings=%d\n", g.NumNodes(), len(dangles), len(cuts), len(rings))
	for _, r := range rings {
		fmt.Println(len(r))
	}
	// Output:
	// nodes=5 dangles=1 cut=0 rings=2
	// 4
	// 4
}
