// SPDX-License-Identifier: MIT

// Package render rasterizes a polygonizer.Result for visual inspection.
//
// Polygons are filled with the even-odd rule, so holes stay transparent to
// the background, and outlined. Diagnostics are stroked on top: dangles,
// cut edges and invalid ring lines each in their own colour, invalid rings
// dashed. The y axis points up, as in the input coordinates.
//
// Complexity: O(total vertex count) path operations plus rasterization.
package render
