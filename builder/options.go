// SPDX-License-Identifier: MIT
// Package: polygonize/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithOrigin places lattice point (0, 0) at (x, y).
// Panics on NaN or infinite input.
func WithOrigin(x, y float64) BuilderOption {
	if !finite(x) || !finite(y) {
		panic("builder: WithOrigin(non-finite)")
	}
	return func(c *builderConfig) {
		c.originX, c.originY = x, y
	}
}

// WithCellSize sets the output length of one lattice step.
// Panics if size is not a positive finite number.
func WithCellSize(size float64) BuilderOption {
	if !finite(size) || size <= 0 {
		panic("builder: WithCellSize(size<=0)")
	}
	return func(c *builderConfig) {
		c.cellSize = size
	}
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSplitSegments makes constructors emit every polyline as two-point
// segments.
func WithSplitSegments(split bool) BuilderOption {
	return func(c *builderConfig) {
		c.split = split
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
