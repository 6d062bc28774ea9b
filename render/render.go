// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/polygonize/polygonizer"
)

// Palette.
var (
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Fill       = color.RGBA{R: 120, G: 180, B: 120, A: 255}
	Outline    = color.RGBA{R: 30, G: 80, B: 30, A: 255}
	Dangle     = color.RGBA{R: 230, G: 140, B: 20, A: 255}
	CutEdge    = color.RGBA{R: 200, G: 40, B: 200, A: 255}
	Invalid    = color.RGBA{R: 220, G: 30, B: 30, A: 255}
)

const (
	outlineWidth    = 1.0
	diagnosticWidth = 2.0
	invalidDash     = 4.0
)

// Draw rasterizes res onto a new context sized to its extent.
// A nil or empty result yields a blank canvas of the padding size.
func Draw(res *polygonizer.Result, opts ...Option) *gg.Context {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	// 1. Extent of everything that will be drawn.
	b := extent(res, o.Diagnostics)
	width, height := 2*o.Padding, 2*o.Padding
	if !b.IsEmpty() {
		width += int(math.Ceil(o.Scale * (b.Max(0) - b.Min(0))))
		height += int(math.Ceil(o.Scale * (b.Max(1) - b.Min(1))))
	}
	width, height = max(width, 1), max(height, 1)

	dc := gg.NewContext(width, height)
	dc.SetColor(Background)
	dc.Clear()
	if b.IsEmpty() {
		return dc
	}

	// 2. Flip so y points up, then pad, scale and shift to the extent.
	dc.Translate(0, float64(height))
	dc.Scale(1, -1)
	dc.Translate(float64(o.Padding), float64(o.Padding))
	dc.Scale(o.Scale, o.Scale)
	dc.Translate(-b.Min(0), -b.Min(1))

	// 3. Polygons, even-odd so holes stay open.
	dc.SetFillRuleEvenOdd()
	dc.SetLineWidth(outlineWidth)
	for _, p := range res.Polygons {
		for i := 0; i < p.NumLinearRings(); i++ {
			tracePath(dc, p.LinearRing(i).FlatCoords(), p.Stride(), true)
		}
		dc.SetColor(Fill)
		dc.FillPreserve()
		dc.SetColor(Outline)
		dc.Stroke()
	}

	if !o.Diagnostics {
		return dc
	}

	// 4. Diagnostics on top.
	dc.SetLineWidth(diagnosticWidth)
	strokeLines(dc, res.Dangles, Dangle)
	strokeLines(dc, res.CutEdges, CutEdge)
	dc.SetDash(invalidDash, invalidDash)
	strokeLines(dc, res.InvalidRingLines, Invalid)
	dc.SetDash()

	return dc
}

// PNG draws res and writes it to path.
func PNG(path string, res *polygonizer.Result, opts ...Option) error {
	if err := Draw(res, opts...).SavePNG(path); err != nil {
		return errors.Wrapf(err, "render: write %s", path)
	}

	return nil
}

func strokeLines(dc *gg.Context, lines []*geom.LineString, c color.Color) {
	for _, l := range lines {
		if l == nil {
			continue
		}
		tracePath(dc, l.FlatCoords(), l.Stride(), false)
	}
	dc.SetColor(c)
	dc.Stroke()
}

// tracePath adds one sub-path through the XY part of flat.
func tracePath(dc *gg.Context, flat []float64, stride int, closed bool) {
	if len(flat) < 2*stride {
		return
	}
	dc.MoveTo(flat[0], flat[1])
	for i := stride; i+1 < len(flat); i += stride {
		dc.LineTo(flat[i], flat[i+1])
	}
	if closed {
		dc.ClosePath()
	}
}

// extent is the XY envelope of the polygons and, when asked, the diagnostics.
func extent(res *polygonizer.Result, diagnostics bool) *geom.Bounds {
	b := geom.NewBounds(geom.XY)
	if res == nil {
		return b
	}
	for _, p := range res.Polygons {
		b.Extend(p)
	}
	if diagnostics {
		for _, set := range [][]*geom.LineString{res.Dangles, res.CutEdges, res.InvalidRingLines} {
			for _, l := range set {
				if l != nil {
					b.Extend(l)
				}
			}
		}
	}

	return b
}
