// SPDX-License-Identifier: MIT

package builder

// Method names prefix every constructor error.
const (
	methodSquare     = "Square"
	methodRect       = "Rect"
	methodNested     = "Nested"
	methodGrid       = "Grid"
	methodRandomGrid = "RandomGrid"
	methodWheel      = "Wheel"
	methodPath       = "Path"
	methodParse      = "Parse"
)

// Parameter minima.
const (
	// MinGridDim is the smallest row or column count of a grid.
	MinGridDim = 1
	// MinWheelSpokes is the smallest rim vertex count of a wheel.
	MinWheelSpokes = 3
	// MinNestedRings is the smallest ring count for Nested.
	MinNestedRings = 1
	// MinPathPoints is the smallest vertex count of a path.
	MinPathPoints = 2
)
