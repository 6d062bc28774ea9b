// SPDX-License-Identifier: MIT

// Package locate classifies points against a closed ring: interior,
// exterior, or on the boundary.
//
// The test itself is go-geom's xy.LocatePointInRing (a ray-crossing count
// that reports boundary hits). RingLocator adds an envelope pre-filter so
// points far from the ring are rejected without scanning its segments.
package locate

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/location"
)

// RingLocator answers point-in-ring queries for a single closed ring.
type RingLocator struct {
	flat   []float64
	bounds *geom.Bounds
}

// NewRingLocator returns a locator for the closed XY ring in flat
// (x0, y0, x1, y1, ..., x0, y0). The slice is retained, not copied.
func NewRingLocator(flat []float64) *RingLocator {
	return &RingLocator{
		flat:   flat,
		bounds: geom.NewLinearRingFlat(geom.XY, flat).Bounds(),
	}
}

// Bounds returns the ring envelope.
func (l *RingLocator) Bounds() *geom.Bounds { return l.bounds }

// Locate reports where p lies relative to the ring.
func (l *RingLocator) Locate(p geom.Coord) location.Type {
	if !l.bounds.OverlapsPoint(geom.XY, p) {
		return location.Exterior
	}
	return xy.LocatePointInRing(geom.XY, p, l.flat)
}

// Contains reports whether p lies strictly inside the ring.
func (l *RingLocator) Contains(p geom.Coord) bool {
	return l.Locate(p) == location.Interior
}
