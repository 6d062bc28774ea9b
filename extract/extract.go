// SPDX-License-Identifier: MIT

// Package extract flattens input geometries into the line work a polygonizer
// consumes, and converts results between go-geom and orb.
//
// Linear components contribute lines: line strings as they are, every ring of
// a polygon as a closed line, collections recursively. Points carry no line
// work and are skipped. Both go-geom (geom.T) and orb (orb.Geometry) inputs
// are accepted; orb coordinates become XY go-geom lines.
package extract

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// ErrUnsupportedGeometry is returned for geometry types extract does not know.
var ErrUnsupportedGeometry = errors.New("extract: unsupported geometry type")

// Lines returns the linear components of g in document order.
func Lines(g geom.T) ([]*geom.LineString, error) {
	var out []*geom.LineString
	if err := appendLines(&out, g); err != nil {
		return nil, err
	}
	return out, nil
}

func appendLines(out *[]*geom.LineString, g geom.T) error {
	switch g := g.(type) {
	case nil:
		return nil
	case *geom.Point, *geom.MultiPoint:
		return nil
	case *geom.LineString:
		*out = append(*out, g)
	case *geom.LinearRing:
		*out = append(*out, geom.NewLineStringFlat(g.Layout(), g.FlatCoords()))
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			*out = append(*out, g.LineString(i))
		}
	case *geom.Polygon:
		for i := 0; i < g.NumLinearRings(); i++ {
			lr := g.LinearRing(i)
			*out = append(*out, geom.NewLineStringFlat(lr.Layout(), lr.FlatCoords()))
		}
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			if err := appendLines(out, g.Polygon(i)); err != nil {
				return err
			}
		}
	case *geom.GeometryCollection:
		for _, child := range g.Geoms() {
			if err := appendLines(out, child); err != nil {
				return err
			}
		}
	default:
		return errors.Wrap(ErrUnsupportedGeometry, fmt.Sprintf("%T", g))
	}

	return nil
}

// OrbLines returns the linear components of an orb geometry as XY go-geom
// lines. A Bound contributes its boundary ring.
func OrbLines(g orb.Geometry) ([]*geom.LineString, error) {
	var out []*geom.LineString
	if err := appendOrb(&out, g); err != nil {
		return nil, err
	}
	return out, nil
}

func appendOrb(out *[]*geom.LineString, g orb.Geometry) error {
	switch g := g.(type) {
	case nil:
		return nil
	case orb.Point, orb.MultiPoint:
		return nil
	case orb.LineString:
		*out = append(*out, fromOrb(g))
	case orb.Ring:
		*out = append(*out, fromOrb(orb.LineString(g)))
	case orb.MultiLineString:
		for _, ls := range g {
			*out = append(*out, fromOrb(ls))
		}
	case orb.Polygon:
		for _, r := range g {
			*out = append(*out, fromOrb(orb.LineString(r)))
		}
	case orb.MultiPolygon:
		for _, p := range g {
			if err := appendOrb(out, p); err != nil {
				return err
			}
		}
	case orb.Bound:
		*out = append(*out, fromOrb(orb.LineString(g.ToRing())))
	case orb.Collection:
		for _, child := range g {
			if err := appendOrb(out, child); err != nil {
				return err
			}
		}
	default:
		return errors.Wrap(ErrUnsupportedGeometry, fmt.Sprintf("%T", g))
	}

	return nil
}

func fromOrb(ls orb.LineString) *geom.LineString {
	flat := make([]float64, 0, 2*len(ls))
	for _, p := range ls {
		flat = append(flat, p[0], p[1])
	}
	return geom.NewLineStringFlat(geom.XY, flat)
}

// OrbPolygon converts a go-geom polygon to orb, keeping XY only.
func OrbPolygon(p *geom.Polygon) orb.Polygon {
	out := make(orb.Polygon, p.NumLinearRings())
	for i := range out {
		out[i] = orb.Ring(toOrb(p.LinearRing(i).FlatCoords(), p.Stride()))
	}
	return out
}

// OrbLineString converts a go-geom line string to orb, keeping XY only.
func OrbLineString(ls *geom.LineString) orb.LineString {
	return toOrb(ls.FlatCoords(), ls.Stride())
}

func toOrb(flat []float64, stride int) orb.LineString {
	out := make(orb.LineString, 0, len(flat)/stride)
	for i := 0; i+1 < len(flat); i += stride {
		out = append(out, orb.Point{flat[i], flat[i+1]})
	}
	return out
}
