// SPDX-License-Identifier: MIT
// Package: polygonize/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • origin   = (0, 0)
//   • cellSize = 1
//   • rng      = nil   (constructors are pure unless seeded)
//   • split    = false (polylines are emitted whole)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Lattice origin in output coordinates.
	originX, originY float64
	// Output length of one lattice step.
	cellSize float64
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Emit two-point segments instead of whole polylines.
	split bool
}

const defaultCellSize = 1.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{cellSize: defaultCellSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// point maps lattice coordinates to output coordinates.
func (c builderConfig) point(i, j float64) (float64, float64) {
	return c.originX + c.cellSize*i, c.originY + c.cellSize*j
}
