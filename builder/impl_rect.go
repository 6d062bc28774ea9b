// SPDX-License-Identifier: MIT
// Package: polygonize/builder
//
// impl_rect.go: axis-aligned closed rings: Square, Rect and Nested.
//
// Contract:
//   • Each ring is one closed polyline starting and ending at its lower-left
//     corner, traversed counter-clockwise.
//   • Nested rings never touch, so each pair bounds an annulus.

package builder

// Square returns a Constructor for the closed square [0,size]².
func Square(size float64) Constructor {
	return func(lw *Linework, cfg builderConfig) error {
		if err := validateExtent(methodSquare, "size", size); err != nil {
			return err
		}
		lw.Polyline(rectRing(0, 0, size, size)...)

		return nil
	}
}

// Rect returns a Constructor for the closed rectangle [0,w]×[0,h].
func Rect(w, h float64) Constructor {
	return func(lw *Linework, cfg builderConfig) error {
		if err := validateExtent(methodRect, "w", w); err != nil {
			return err
		}
		if err := validateExtent(methodRect, "h", h); err != nil {
			return err
		}
		lw.Polyline(rectRing(0, 0, w, h)...)

		return nil
	}
}

// Nested returns a Constructor for n concentric squares. Ring k spans
// [k, 2n-k]², so the outermost has side 2n and the innermost side 2.
//
// Polygonizing the result yields n faces: n-1 annuli and one inner square.
//
// Complexity: O(n).
func Nested(n int) Constructor {
	return func(lw *Linework, cfg builderConfig) error {
		if err := validateMin(methodNested, "n", n, MinNestedRings); err != nil {
			return err
		}
		outer := float64(2 * n)
		for k := 0; k < n; k++ {
			lo := float64(k)
			lw.Polyline(rectRing(lo, lo, outer-lo, outer-lo)...)
		}

		return nil
	}
}

// rectRing lists the closed CCW lattice ring of [x0,x1]×[y0,y1].
func rectRing(x0, y0, x1, y1 float64) []float64 {
	return []float64{x0, y0, x1, y0, x1, y1, x0, y1, x0, y0}
}
