// SPDX-License-Identifier: MIT

package polygonizer

import "log/slog"

// Options configures a Polygonizer.
//
// ExtractOnlyPolygonal – return a subset of polygons with disjoint interiors
// (default false: one polygon per shell).
// CheckRingsValid      – test every ring for self-intersection (default true).
// Rings with fewer than four coordinates are invalid either way.
// Logger               – per-instance logger; nil means the package logger.
type Options struct {
	ExtractOnlyPolygonal bool
	CheckRingsValid      bool
	Logger               *slog.Logger
}

// Option represents a functional option for configuring a Polygonizer.
type Option func(*Options)

// DefaultOptions returns the configuration used when no option is given.
func DefaultOptions() Options {
	return Options{
		ExtractOnlyPolygonal: false,
		CheckRingsValid:      true,
	}
}

// WithPolygonalOnly selects polygonal-only extraction. Geometry then returns
// a *geom.MultiPolygon instead of a *geom.GeometryCollection.
func WithPolygonalOnly(on bool) Option {
	return func(o *Options) {
		o.ExtractOnlyPolygonal = on
	}
}

// WithCheckRingsValid toggles the self-intersection test. Disable it only for
// input known to form simple rings.
func WithCheckRingsValid(on bool) Option {
	return func(o *Options) {
		o.CheckRingsValid = on
	}
}

// WithLogger routes this Polygonizer's records to l instead of the package
// logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("polygonizer: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}
