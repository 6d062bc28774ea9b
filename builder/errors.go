// SPDX-License-Identifier: MIT
// Package: polygonize/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors attach context with %w, prefixed by the method name.
//   • Option constructors panic on meaningless values; constructors never do.

package builder

import "errors"

// ErrTooFewVertices indicates that a count (sides, rows, cols, rings, path
// vertices) is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG;
// set one with WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidSize indicates a non-positive or non-finite extent or coordinate.
var ErrInvalidSize = errors.New("builder: invalid size")

// ErrConstructFailed indicates a constructor could not produce its output,
// for example an unparsable textual form or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
