// SPDX-License-Identifier: MIT

package polygonizer

import (
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/location"

	"github.com/katalvlaran/polygonize/locate"
	"github.com/katalvlaran/polygonize/planar"
	"github.com/katalvlaran/polygonize/valid"
)

// inclusion is the polygonal-only decision for a shell.
type inclusion int8

const (
	undecided inclusion = iota
	included
	excluded
)

// Ring is one minimal ring of the planar graph.
//
// Geometry (coordinates, envelope, orientation, validity, point locator) is
// computed when the ring is built and never changes. Shell, Holes and the
// polygonal-only decision are set by the pipeline.
type Ring struct {
	id    int
	edges []int
	syms  []int // ring index across each edge, parallel to edges

	flat    []float64 // closed XY coordinates in trace order
	bounds  *geom.Bounds
	locator *locate.RingLocator
	hole    bool
	invalid error

	shell     *Ring
	holes     []*Ring
	processed bool
	decision  inclusion
}

// newRing builds the ring traced by edges. Self-intersection is tested only
// when checkValid is set; too few points always makes a ring invalid.
func newRing(g *planar.Graph, id int, edges []int, checkValid bool) *Ring {
	r := &Ring{id: id, edges: edges}

	// 1. Concatenate oriented edge coordinates, dropping each shared node.
	for i, de := range edges {
		c := g.EdgeCoords(de)
		if i > 0 {
			c = c[2:]
		}
		r.flat = append(r.flat, c...)
	}
	r.bounds = geom.NewLinearRingFlat(geom.XY, r.flat).Bounds()

	// 2. Validity, then orientation, which needs at least three distinct points.
	if n := len(r.flat) / 2; n < valid.MinRingPoints {
		r.invalid = errors.Wrapf(valid.ErrTooFewPoints, "ring %d has %d", id, n)
		return r
	}
	if checkValid {
		if err := valid.CheckRing(r.flat); err != nil {
			r.invalid = errors.Wrapf(err, "ring %d", id)
		}
	}
	r.hole = xy.IsRingCounterClockwise(geom.XY, r.flat)
	r.locator = locate.NewRingLocator(r.flat)

	return r
}

// linkSyms records, for every edge, the ring on its other side.
func (r *Ring) linkSyms(g *planar.Graph) {
	r.syms = make([]int, len(r.edges))
	for i, de := range r.edges {
		r.syms[i] = g.RingOf(g.Sym(de))
	}
}

// ID returns the ring's extraction index.
func (r *Ring) ID() int { return r.id }

// Edges returns the directed-edge indices of the ring in trace order.
func (r *Ring) Edges() []int {
	out := make([]int, len(r.edges))
	copy(out, r.edges)
	return out
}

// Coords returns the closed XY coordinates in trace order as a flat slice.
// The slice is a copy.
func (r *Ring) Coords() []float64 {
	out := make([]float64, len(r.flat))
	copy(out, r.flat)
	return out
}

// NumCoords returns the number of coordinates, closing point included.
func (r *Ring) NumCoords() int { return len(r.flat) / 2 }

// LinearRing returns the ring as a go-geom linear ring in trace order.
func (r *Ring) LinearRing() *geom.LinearRing {
	return geom.NewLinearRingFlat(geom.XY, r.Coords())
}

// LineString returns the ring boundary as a closed line.
func (r *Ring) LineString() *geom.LineString {
	return geom.NewLineStringFlat(geom.XY, r.Coords())
}

// Bounds returns the ring envelope.
func (r *Ring) Bounds() *geom.Bounds { return r.bounds.Clone() }

// IsHole reports whether the ring winds counter-clockwise.
func (r *Ring) IsHole() bool { return r.hole }

// IsValid reports whether the ring is simple.
func (r *Ring) IsValid() bool { return r.invalid == nil }

// InvalidReason returns why the ring is invalid, or nil.
func (r *Ring) InvalidReason() error { return r.invalid }

// Shell returns the shell a hole was assigned to, or nil.
func (r *Ring) Shell() *Ring { return r.shell }

// Holes returns the holes assigned to a shell.
func (r *Ring) Holes() []*Ring { return r.holes }

// IsOuterHole reports whether r is a valid hole no shell contains. The
// unbounded face of every connected component is one.
func (r *Ring) IsOuterHole() bool {
	return r.IsValid() && r.hole && r.shell == nil
}

// Included reports whether polygonal-only selection kept the shell. It is
// always false for holes and when selection did not run.
func (r *Ring) Included() bool { return r.decision == included }

// Contains reports whether other lies inside r. Envelopes are compared
// first: r's must cover other's without being equal. Then other's vertices
// are located against r; the first interior vertex answers true, the first
// exterior one false. A ring touching r only on its boundary is not
// contained.
func (r *Ring) Contains(other *Ring) bool {
	if r.locator == nil || !properlyCovers(r.bounds, other.bounds) {
		return false
	}
	for i := 0; i+1 < len(other.flat); i += 2 {
		switch r.locator.Locate(geom.Coord{other.flat[i], other.flat[i+1]}) {
		case location.Interior:
			return true
		case location.Exterior:
			return false
		}
	}

	return false
}

// AddHole attaches h to shell r.
func (r *Ring) AddHole(h *Ring) {
	r.holes = append(r.holes, h)
	h.shell = r
}

// Polygon assembles r and its holes. The exterior is written
// counter-clockwise and holes clockwise.
func (r *Ring) Polygon() *geom.Polygon {
	flat := reversed(r.flat, !r.hole)
	ends := []int{len(flat)}
	for _, h := range r.holes {
		flat = append(flat, reversed(h.flat, h.hole)...)
		ends = append(ends, len(flat))
	}

	return geom.NewPolygonFlat(geom.XY, flat, ends)
}

// outerHole returns the first ring across one of r's edges that is an outer
// hole, or nil when that hole is already claimed by another shell. Later
// outer holes are not considered.
func (r *Ring) outerHole(rings []*Ring) *Ring {
	if r.hole {
		return nil
	}
	for _, s := range r.syms {
		if s < 0 {
			continue
		}
		if adj := rings[s]; adj.IsOuterHole() {
			if adj.processed {
				return nil
			}
			return adj
		}
	}
	return nil
}

// shellOf returns the shell a ring stands for in inclusion propagation: a
// hole's assigned shell, a valid shell itself, nil otherwise.
func (r *Ring) shellOf() *Ring {
	switch {
	case !r.IsValid():
		return nil
	case r.hole:
		return r.shell
	default:
		return r
	}
}

// properlyCovers reports whether a covers b and the two differ.
func properlyCovers(a, b *geom.Bounds) bool {
	if !covers(a, b) {
		return false
	}
	return a.Min(0) != b.Min(0) || a.Min(1) != b.Min(1) ||
		a.Max(0) != b.Max(0) || a.Max(1) != b.Max(1)
}

// covers reports whether a covers b, equal envelopes included.
func covers(a, b *geom.Bounds) bool {
	return a.Min(0) <= b.Min(0) && a.Min(1) <= b.Min(1) &&
		a.Max(0) >= b.Max(0) && a.Max(1) >= b.Max(1)
}

// reversed returns a copy of the closed ring flat, reversed when flip is set.
func reversed(flat []float64, flip bool) []float64 {
	out := make([]float64, len(flat))
	if !flip {
		copy(out, flat)
		return out
	}
	n := len(flat) / 2
	for i := 0; i < n; i++ {
		out[2*i] = flat[2*(n-1-i)]
		out[2*i+1] = flat[2*(n-1-i)+1]
	}
	return out
}
