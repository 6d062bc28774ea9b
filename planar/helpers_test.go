// SPDX-License-Identifier: MIT

package planar_test

import (
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/polygonize/planar"
)

// line builds an XY line from alternating x, y values.
func line(xy ...float64) *geom.LineString {
	return geom.NewLineStringFlat(geom.XY, xy)
}

// squareSegments returns the four sides of the axis-aligned square
// (x, y)-(x+s, y+s) as separate segments, counter-clockwise from (x, y).
func squareSegments(x, y, s float64) []*geom.LineString {
	return []*geom.LineString{
		line(x, y, x+s, y),
		line(x+s, y, x+s, y+s),
		line(x+s, y+s, x, y+s),
		line(x, y+s, x, y),
	}
}

func buildGraph(lines ...[]*geom.LineString) *planar.Graph {
	g := planar.New()
	for _, group := range lines {
		for _, ls := range group {
			g.AddLine(ls)
		}
	}
	return g
}

// signedArea is the shoelace area of a closed flat XY ring; positive when
// counter-clockwise.
func signedArea(flat []float64) float64 {
	var a float64
	for i := 0; i+3 < len(flat); i += 2 {
		a += flat[i]*flat[i+3] - flat[i+2]*flat[i+1]
	}
	return a / 2
}

// ringCoords concatenates the oriented coordinates of a ring's edges,
// dropping the shared joints.
func ringCoords(g *planar.Graph, ring []int) []float64 {
	var flat []float64
	for _, de := range ring {
		c := g.EdgeCoords(de)
		if len(flat) > 0 {
			c = c[2:]
		}
		flat = append(flat, c...)
	}
	return flat
}
