// SPDX-License-Identifier: MIT

package polygonizer_test

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/location"
)

// line builds an XY line from alternating x, y values.
func line(coords ...float64) *geom.LineString {
	return geom.NewLineStringFlat(geom.XY, coords)
}

// squareSides returns the four sides of an axis-aligned square as separate
// segments, counter-clockwise from (x, y).
func squareSides(x, y, s float64) []*geom.LineString {
	return []*geom.LineString{
		line(x, y, x+s, y),
		line(x+s, y, x+s, y+s),
		line(x+s, y+s, x, y+s),
		line(x, y+s, x, y),
	}
}

// closedSquare returns an axis-aligned square as one closed line.
func closedSquare(x, y, s float64) *geom.LineString {
	return line(x, y, x+s, y, x+s, y+s, x, y+s, x, y)
}

// covered reports whether p lies in the interior of poly: inside the
// exterior ring and outside every hole.
func covered(poly *geom.Polygon, p geom.Coord) bool {
	if xy.LocatePointInRing(geom.XY, p, poly.LinearRing(0).FlatCoords()) != location.Interior {
		return false
	}
	for i := 1; i < poly.NumLinearRings(); i++ {
		if xy.LocatePointInRing(geom.XY, p, poly.LinearRing(i).FlatCoords()) != location.Exterior {
			return false
		}
	}
	return true
}

// maxOverlap samples cell centres of a unit grid over [minXY, maxXY] and
// returns the largest number of polygons covering one sample.
func maxOverlap(polys []*geom.Polygon, minXY, maxXY float64) int {
	most := 0
	for x := minXY + 0.5; x < maxXY; x++ {
		for y := minXY + 0.5; y < maxXY; y++ {
			n := 0
			for _, poly := range polys {
				if covered(poly, geom.Coord{x, y}) {
					n++
				}
			}
			if n > most {
				most = n
			}
		}
	}
	return most
}

// vertexSet returns the distinct XY vertices of flat.
func vertexSet(flat []float64) map[[2]float64]struct{} {
	set := make(map[[2]float64]struct{})
	for i := 0; i+1 < len(flat); i += 2 {
		set[[2]float64{flat[i], flat[i+1]}] = struct{}{}
	}
	return set
}

func totalArea(polys []*geom.Polygon) float64 {
	sum := 0.0
	for _, p := range polys {
		sum += p.Area()
	}
	return sum
}
