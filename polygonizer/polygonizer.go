// SPDX-License-Identifier: MIT

package polygonizer

import (
	"log/slog"
	"sort"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/polygonize/extract"
	"github.com/katalvlaran/polygonize/planar"
)

// Polygonizer collects noded lines and turns them into polygons.
//
// Add lines with Add, AddLines or AddOrb, then read any accessor. The first
// accessor runs the pipeline; later calls return the same result.
type Polygonizer struct {
	opts  Options
	log   *slog.Logger
	graph *planar.Graph

	ignored int

	computed bool
	result   *Result
	err      error

	runs         int               // pipeline executions
	afterExtract func(*planar.Graph) // test hook, run after ring extraction
}

// New returns an empty Polygonizer configured by opts.
func New(opts ...Option) *Polygonizer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger
	if log == nil {
		log = Logger()
	}

	return &Polygonizer{opts: o, log: log, graph: planar.New()}
}

// Add feeds every linear component of g. Points are skipped, polygon rings
// become closed lines.
func (p *Polygonizer) Add(g geom.T) error {
	if g == nil {
		return ErrNilGeometry
	}
	lines, err := extract.Lines(g)
	if err != nil {
		return err
	}
	return p.AddLines(lines...)
}

// AddOrb feeds every linear component of an orb geometry.
func (p *Polygonizer) AddOrb(g orb.Geometry) error {
	if g == nil {
		return ErrNilGeometry
	}
	lines, err := extract.OrbLines(g)
	if err != nil {
		return err
	}
	return p.AddLines(lines...)
}

// AddLines feeds lines into the graph. Lines with fewer than two distinct
// points are ignored. A nil line stops the call with ErrNilGeometry; lines
// before it are kept.
func (p *Polygonizer) AddLines(lines ...*geom.LineString) error {
	if p.computed {
		return ErrAlreadyComputed
	}
	for i, ls := range lines {
		if ls == nil {
			return errors.Wrapf(ErrNilGeometry, "line %d", i)
		}
		if !p.graph.AddLine(ls) {
			p.ignored++
		}
	}
	return nil
}

// Polygons returns the assembled polygons.
func (p *Polygonizer) Polygons() ([]*geom.Polygon, error) {
	res, err := p.Result()
	if err != nil {
		return nil, err
	}
	return res.Polygons, nil
}

// Dangles returns the input lines removed as dangling spurs.
func (p *Polygonizer) Dangles() ([]*geom.LineString, error) {
	res, err := p.Result()
	if err != nil {
		return nil, err
	}
	return res.Dangles, nil
}

// CutEdges returns the input lines removed as cut edges.
func (p *Polygonizer) CutEdges() ([]*geom.LineString, error) {
	res, err := p.Result()
	if err != nil {
		return nil, err
	}
	return res.CutEdges, nil
}

// InvalidRingLines returns the boundaries of reported invalid rings.
func (p *Polygonizer) InvalidRingLines() ([]*geom.LineString, error) {
	res, err := p.Result()
	if err != nil {
		return nil, err
	}
	return res.InvalidRingLines, nil
}

// Geometry wraps every polygon in one geometry: a *geom.MultiPolygon in
// polygonal-only mode, a *geom.GeometryCollection otherwise.
func (p *Polygonizer) Geometry() (geom.T, error) {
	res, err := p.Result()
	if err != nil {
		return nil, err
	}

	if p.opts.ExtractOnlyPolygonal {
		mp := geom.NewMultiPolygon(geom.XY)
		for _, poly := range res.Polygons {
			if err := mp.Push(poly); err != nil {
				return nil, errors.Wrap(err, "polygonizer: build multipolygon")
			}
		}
		return mp, nil
	}

	gc := geom.NewGeometryCollection()
	for _, poly := range res.Polygons {
		if err := gc.Push(poly); err != nil {
			return nil, errors.Wrap(err, "polygonizer: build collection")
		}
	}
	return gc, nil
}

// Result runs the pipeline once and returns its output. An internal
// invariant violation is returned wrapped around ErrInvariant, on this and
// every later call.
func (p *Polygonizer) Result() (*Result, error) {
	if !p.computed {
		p.computed = true
		p.result, p.err = p.run()
	}
	return p.result, p.err
}

// run executes the pipeline, converting invariant panics into errors.
func (p *Polygonizer) run() (res *Result, err error) {
	defer func() {
		if ierr := planar.Recover(recover()); ierr != nil {
			res, err = nil, errors.Wrap(ErrInvariant, ierr.Error())
			p.log.Error("polygonize failed", slog.String("err", ierr.Error()))
		}
	}()

	p.runs++
	g := p.graph
	res = &Result{}
	res.Stats.Lines = g.NumEdges()
	res.Stats.IgnoredLines = p.ignored
	res.Stats.Nodes = g.NumNodes()

	// 1-2. Prune what cannot bound an area.
	res.Dangles = g.DeleteDangles()
	res.CutEdges = g.DeleteCutEdges()
	res.Stats.Dangles, res.Stats.CutEdges = len(res.Dangles), len(res.CutEdges)
	p.log.Debug("graph pruned",
		slog.Int("lines", res.Stats.Lines),
		slog.Int("nodes", res.Stats.Nodes),
		slog.Int("dangles", res.Stats.Dangles),
		slog.Int("cut_edges", res.Stats.CutEdges))

	// 3. Minimal rings.
	cycles := g.ExtractRings()
	if p.afterExtract != nil {
		p.afterExtract(g)
	}
	rings := make([]*Ring, len(cycles))
	for i, c := range cycles {
		rings[i] = newRing(g, i, c, p.opts.CheckRingsValid)
	}
	for _, r := range rings {
		r.linkSyms(g)
	}
	res.Stats.Rings = len(rings)

	// 4. Validity, with invalid linework de-duplicated.
	var validRings []*Ring
	for _, r := range rings {
		if r.IsValid() {
			validRings = append(validRings, r)
		} else {
			res.InvalidRings = append(res.InvalidRings, r)
		}
	}
	res.InvalidRingLines = invalidLines(res.InvalidRings, rings)
	res.Stats.InvalidRings = len(res.InvalidRings)

	// 5. Shells and holes.
	for _, r := range validRings {
		if r.IsHole() {
			res.Holes = append(res.Holes, r)
		} else {
			res.Shells = append(res.Shells, r)
		}
	}
	res.Stats.Shells, res.Stats.Holes = len(res.Shells), len(res.Holes)

	// 6. Holes to shells.
	assigned, err := assignHoles(res.Holes, res.Shells)
	if err != nil {
		return nil, err
	}
	res.Stats.AssignedHoles = assigned

	// 7. Deterministic shell order.
	sortByEnvelope(res.Shells)
	p.log.Debug("rings classified",
		slog.Int("rings", res.Stats.Rings),
		slog.Int("invalid", res.Stats.InvalidRings),
		slog.Int("shells", res.Stats.Shells),
		slog.Int("holes", res.Stats.Holes),
		slog.Int("assigned_holes", assigned))

	// 8. Optional disjoint selection.
	if p.opts.ExtractOnlyPolygonal {
		left := selectDisjointShells(res.Shells, rings)
		res.Stats.UndecidedShells = left
		if left > 0 {
			p.log.Warn("polygonal-only selection left shells undecided; excluding them",
				slog.Int("shells", left))
		}
	}

	// 9. Polygons.
	for _, s := range res.Shells {
		if p.opts.ExtractOnlyPolygonal && !s.Included() {
			continue
		}
		res.Polygons = append(res.Polygons, s.Polygon())
	}
	res.Stats.Polygons = len(res.Polygons)
	p.log.Debug("polygons assembled", slog.Int("polygons", res.Stats.Polygons))

	return res, nil
}

// invalidLines returns the boundaries of invalid rings worth reporting.
// Rings are visited smallest envelope first; a ring is reported when at
// least one of its edges borders another invalid ring not yet visited, so
// an outer ring that only repeats linework already shown is skipped.
func invalidLines(invalid, rings []*Ring) []*geom.LineString {
	sorted := make([]*Ring, len(invalid))
	copy(sorted, invalid)
	sort.SliceStable(sorted, func(i, j int) bool {
		return envelopeArea(sorted[i]) < envelopeArea(sorted[j])
	})

	var lines []*geom.LineString
	for _, r := range sorted {
		if r.bordersUnvisitedInvalid(rings) {
			lines = append(lines, r.LineString())
		}
		r.processed = true
	}
	return lines
}

func (r *Ring) bordersUnvisitedInvalid(rings []*Ring) bool {
	for _, idx := range r.syms {
		if idx < 0 {
			continue
		}
		if adj := rings[idx]; !adj.IsValid() && !adj.processed {
			return true
		}
	}
	return false
}

func envelopeArea(r *Ring) float64 {
	return (r.bounds.Max(0) - r.bounds.Min(0)) * (r.bounds.Max(1) - r.bounds.Min(1))
}

// sortByEnvelope orders shells by envelope min x, min y, max x, max y.
func sortByEnvelope(shells []*Ring) {
	sort.SliceStable(shells, func(i, j int) bool {
		a, b := shells[i].bounds, shells[j].bounds
		for _, v := range [][2]float64{
			{a.Min(0), b.Min(0)},
			{a.Min(1), b.Min(1)},
			{a.Max(0), b.Max(0)},
			{a.Max(1), b.Max(1)},
		} {
			if v[0] != v[1] {
				return v[0] < v[1]
			}
		}
		return false
	})
}

// Polygonize runs a fresh Polygonizer over lines.
func Polygonize(lines []*geom.LineString, opts ...Option) (*Result, error) {
	p := New(opts...)
	if err := p.AddLines(lines...); err != nil {
		return nil, err
	}
	return p.Result()
}
