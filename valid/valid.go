// SPDX-License-Identifier: MIT

// Package valid checks whether a closed coordinate sequence is a simple ring,
// the condition a polygon boundary must meet.
//
// A ring is valid when it:
//
//   - has at least four coordinates;
//   - ends where it starts;
//   - holds only finite ordinates;
//   - does not touch or cross itself.
//
// Self-intersection is found by indexing the ring's segments in an R-Tree
// (package spatial) and testing only the pairs whose envelopes meet, with
// go-geom's robust orientation predicate deciding each pair.
//
// Complexity: O(n log n) for n segments when few envelopes overlap, O(n²)
// in the worst case.
package valid

import (
	"math"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/orientation"

	"github.com/katalvlaran/polygonize/spatial"
)

var (
	// ErrTooFewPoints means the ring has fewer than four coordinates.
	ErrTooFewPoints = errors.New("valid: ring has fewer than 4 points")

	// ErrNotClosed means the first and last coordinates differ.
	ErrNotClosed = errors.New("valid: ring is not closed")

	// ErrInvalidCoordinate means an ordinate is NaN or infinite.
	ErrInvalidCoordinate = errors.New("valid: ring has a non-finite coordinate")

	// ErrSelfIntersection means two segments of the ring touch or cross
	// somewhere other than their shared vertex.
	ErrSelfIntersection = errors.New("valid: ring self-intersects")
)

// MinRingPoints is the smallest coordinate count of a valid ring.
const MinRingPoints = 4

// CheckRing returns nil if the closed XY ring in flat is simple, or an error
// wrapping one of the package sentinels describing the first defect found.
func CheckRing(flat []float64) error {
	n := len(flat) / 2
	if n < MinRingPoints {
		return errors.Wrapf(ErrTooFewPoints, "got %d", n)
	}
	for i, v := range flat[:2*n] {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidCoordinate, "ordinate %d", i)
		}
	}
	if flat[0] != flat[2*n-2] || flat[1] != flat[2*n-1] {
		return errors.Wrapf(ErrNotClosed, "(%g %g) != (%g %g)", flat[0], flat[1], flat[2*n-2], flat[2*n-1])
	}

	return checkSimple(flat[:2*n])
}

// IsValidRing reports whether CheckRing(flat) succeeds.
func IsValidRing(flat []float64) bool { return CheckRing(flat) == nil }

type segment struct {
	a, b geom.Coord
}

func (s segment) bounds() *geom.Bounds {
	return geom.NewBounds(geom.XY).Set(
		math.Min(s.a[0], s.b[0]), math.Min(s.a[1], s.b[1]),
		math.Max(s.a[0], s.b[0]), math.Max(s.a[1], s.b[1]),
	)
}

func checkSimple(flat []float64) error {
	// 1. Segments of the ring, zero-length ones dropped.
	var segs []segment
	for i := 2; i+1 < len(flat); i += 2 {
		a := geom.Coord{flat[i-2], flat[i-1]}
		b := geom.Coord{flat[i], flat[i+1]}
		if a[0] == b[0] && a[1] == b[1] {
			continue
		}
		segs = append(segs, segment{a: a, b: b})
	}
	m := len(segs)
	if m < 3 {
		return errors.Wrapf(ErrTooFewPoints, "%d distinct segments", m)
	}

	// 2. Index them by envelope.
	bounds := make([]*geom.Bounds, m)
	ids := make([]int, m)
	for i, s := range segs {
		bounds[i] = s.bounds()
		ids[i] = i
	}
	ix, err := spatial.BulkLoad(bounds, ids)
	if err != nil {
		return err
	}

	// 3. Test each candidate pair once.
	for i, s := range segs {
		for _, j := range ix.Query(bounds[i]) {
			if j <= i {
				continue
			}
			adjacent := j == i+1 || (i == 0 && j == m-1)
			if adjacent {
				if overlapsAdjacent(segs, i, j) {
					return errors.Wrapf(ErrSelfIntersection, "segments %d and %d overlap", i, j)
				}
				continue
			}
			if intersects(s.a, s.b, segs[j].a, segs[j].b) {
				return errors.Wrapf(ErrSelfIntersection, "segments %d and %d meet", i, j)
			}
		}
	}

	return nil
}

// overlapsAdjacent reports whether two consecutive segments fold back onto
// each other at their shared vertex.
func overlapsAdjacent(segs []segment, i, j int) bool {
	first, second := segs[i], segs[j]
	if i == 0 && j == len(segs)-1 {
		first, second = segs[j], segs[i]
	}
	a, v, b := first.a, first.b, second.b
	if xy.OrientationIndex(a, v, b) != orientation.Collinear {
		return false
	}
	// Collinear: a fold when a and b lie on the same side of v.
	return (a[0]-v[0])*(b[0]-v[0])+(a[1]-v[1])*(b[1]-v[1]) > 0
}

// intersects reports whether closed segments p1p2 and q1q2 share any point.
func intersects(p1, p2, q1, q2 geom.Coord) bool {
	o1 := xy.OrientationIndex(p1, p2, q1)
	o2 := xy.OrientationIndex(p1, p2, q2)
	o3 := xy.OrientationIndex(q1, q2, p1)
	o4 := xy.OrientationIndex(q1, q2, p2)

	if o1 != o2 && o3 != o4 &&
		o1 != orientation.Collinear && o2 != orientation.Collinear &&
		o3 != orientation.Collinear && o4 != orientation.Collinear {
		return true
	}

	return (o1 == orientation.Collinear && onSegment(p1, p2, q1)) ||
		(o2 == orientation.Collinear && onSegment(p1, p2, q2)) ||
		(o3 == orientation.Collinear && onSegment(q1, q2, p1)) ||
		(o4 == orientation.Collinear && onSegment(q1, q2, p2))
}

// onSegment reports whether r, known to be collinear with pq, lies within
// the segment's envelope.
func onSegment(p, q, r geom.Coord) bool {
	return r[0] >= math.Min(p[0], q[0]) && r[0] <= math.Max(p[0], q[0]) &&
		r[1] >= math.Min(p[1], q[1]) && r[1] <= math.Max(p[1], q[1])
}
