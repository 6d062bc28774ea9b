// SPDX-License-Identifier: MIT

package polygonizer_test

import (
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/katalvlaran/polygonize/polygonizer"
)

// ExamplePolygonize rebuilds a square from its four sides and reports a
// spur hanging off one corner.
func ExamplePolygonize() {
	lines := []*geom.LineString{
		geom.NewLineStringFlat(geom.XY, []float64{0, 0, 10, 0}),
		geom.NewLineStringFlat(geom.XY, []float64{10, 0, 10, 10}),
		geom.NewLineStringFlat(geom.XY, []float64{10, 10, 0, 10}),
		geom.NewLineStringFlat(geom.XY, []float64{0, 10, 0, 0}),
		geom.NewLineStringFlat(geom.XY, []float64{10, 10, 15, 15}),
	}

	res, err := polygonizer.Polygonize(lines)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("polygons=%d area=%.0f dangles=%d\n",
		len(res.Polygons), res.Polygons[0].Area(), len(res.Dangles))
	// Output: polygons=1 area=100 dangles=1
}

// ExampleWithPolygonalOnly keeps a ring inside another as a hole only.
func ExampleWithPolygonalOnly() {
	outer, _ := wkt.Unmarshal("LINESTRING (0 0, 10 0, 10 10, 0 10, 0 0)")
	inner, _ := wkt.Unmarshal("LINESTRING (3 3, 3 7, 7 7, 7 3, 3 3)")

	for _, only := range []bool{false, true} {
		p := polygonizer.New(polygonizer.WithPolygonalOnly(only))
		if err := p.Add(outer); err != nil {
			fmt.Println("error:", err)
			return
		}
		if err := p.Add(inner); err != nil {
			fmt.Println("error:", err)
			return
		}
		g, err := p.Geometry()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		out, err := wkt.Marshal(g)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(out)
	}
	// Output:
	// GEOMETRYCOLLECTION (POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (3 3, 3 7, 7 7, 7 3, 3 3)), POLYGON ((3 3, 7 3, 7 7, 3 7, 3 3)))
	// MULTIPOLYGON (((0 0, 10 0, 10 10, 0 10, 0 0), (3 3, 3 7, 7 7, 7 3, 3 3)))
}
