// SPDX-License-Identifier: MIT

package render

// Options configures Draw and PNG.
type Options struct {
	Scale       float64 // pixels per coordinate unit
	Padding     int     // blank border in pixels
	Diagnostics bool    // stroke dangles, cut edges and invalid rings
}

// Option represents a functional option for rendering.
type Option func(*Options)

const (
	defaultScale   = 20.0
	defaultPadding = 16
)

// DefaultOptions returns the configuration used when no option is given.
func DefaultOptions() Options {
	return Options{
		Scale:       defaultScale,
		Padding:     defaultPadding,
		Diagnostics: true,
	}
}

// WithScale sets pixels per coordinate unit. Panics unless scale > 0.
func WithScale(scale float64) Option {
	if !(scale > 0) {
		panic("render: WithScale(scale<=0)")
	}
	return func(o *Options) {
		o.Scale = scale
	}
}

// WithPadding sets the blank border width. Panics on negative input.
func WithPadding(px int) Option {
	if px < 0 {
		panic("render: WithPadding(px<0)")
	}
	return func(o *Options) {
		o.Padding = px
	}
}

// WithDiagnostics toggles the diagnostic overlay.
func WithDiagnostics(on bool) Option {
	return func(o *Options) {
		o.Diagnostics = on
	}
}
