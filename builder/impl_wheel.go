// SPDX-License-Identifier: MIT
// Package: polygonize/builder
//
// impl_wheel.go: Wheel W_n: a regular n-gon rim plus n spokes.
//
// Contract:
//   • Rim vertex k sits at angle 2πk/n on the unit circle around the origin.
//   • Rim edges and spokes are separate lines meeting at rim vertices and at
//     the hub, so the wheel is noded.
//   • Emission order: rim edges k→k+1, then spokes hub→k.
//
// Complexity: O(n).

package builder

import "math"

// Wheel returns a Constructor for a wheel with n triangular faces.
func Wheel(n int) Constructor {
	return func(lw *Linework, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, MinWheelSpokes); err != nil {
			return err
		}

		rim := make([]float64, 0, 2*n)
		for k := 0; k < n; k++ {
			a := 2 * math.Pi * float64(k) / float64(n)
			rim = append(rim, math.Cos(a), math.Sin(a))
		}

		// 1. Rim edges; the last one closes back to vertex 0.
		for k := 0; k < n; k++ {
			m := (k + 1) % n
			lw.Polyline(rim[2*k], rim[2*k+1], rim[2*m], rim[2*m+1])
		}

		// 2. Spokes from the hub.
		for k := 0; k < n; k++ {
			lw.Polyline(0, 0, rim[2*k], rim[2*k+1])
		}

		return nil
	}
}
