// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/polygonize/builder"
	"github.com/katalvlaran/polygonize/polygonizer"
)

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) []*geom.LineString {
	t.Helper()
	lines, err := builder.BuildLines(opts, cons...)
	require.NoError(t, err)
	return lines
}

func area(polys []*geom.Polygon) float64 {
	sum := 0.0
	for _, p := range polys {
		sum += p.Area()
	}
	return sum
}

func TestGridLineCount(t *testing.T) {
	lines := build(t, nil, builder.Grid(2, 3))
	// (rows+1)·cols horizontal plus (cols+1)·rows vertical.
	assert.Len(t, lines, 3*3+4*2)
	for _, l := range lines {
		assert.Equal(t, 2, l.NumCoords())
	}
}

func TestGridPolygonizes(t *testing.T) {
	lines := build(t, []builder.BuilderOption{builder.WithCellSize(2)}, builder.Grid(3, 4))
	res, err := polygonizer.Polygonize(lines)
	require.NoError(t, err)

	assert.Len(t, res.Polygons, 12)
	assert.Empty(t, res.Dangles)
	assert.Empty(t, res.CutEdges)
	assert.InDelta(t, 48.0, area(res.Polygons), 1e-9)
}

func TestOriginAndCellSize(t *testing.T) {
	lines := build(t,
		[]builder.BuilderOption{builder.WithOrigin(10, 20), builder.WithCellSize(2)},
		builder.Square(1))

	require.Len(t, lines, 1)
	assert.Equal(t, []float64{10, 20, 12, 20, 12, 22, 10, 22, 10, 20}, lines[0].FlatCoords())
}

func TestSplitSegments(t *testing.T) {
	whole := build(t, nil, builder.Rect(3, 2))
	split := build(t, []builder.BuilderOption{builder.WithSplitSegments(true)}, builder.Rect(3, 2))

	assert.Len(t, whole, 1)
	assert.Len(t, split, 4)
	assert.Equal(t, []float64{3, 0, 3, 2}, split[1].FlatCoords())

	a, err := polygonizer.Polygonize(whole)
	require.NoError(t, err)
	b, err := polygonizer.Polygonize(split)
	require.NoError(t, err)
	assert.InDelta(t, area(a.Polygons), area(b.Polygons), 1e-9)
	assert.InDelta(t, 6.0, area(b.Polygons), 1e-9)
}

func TestNested(t *testing.T) {
	lines := build(t, nil, builder.Nested(3))
	require.Len(t, lines, 3)

	res, err := polygonizer.Polygonize(lines)
	require.NoError(t, err)
	require.Len(t, res.Polygons, 3)
	assert.InDelta(t, 36.0, area(res.Polygons), 1e-9)

	only, err := polygonizer.Polygonize(lines, polygonizer.WithPolygonalOnly(true))
	require.NoError(t, err)
	require.Len(t, only.Polygons, 2)
	assert.InDelta(t, 24.0, area(only.Polygons), 1e-9)
}

func TestWheel(t *testing.T) {
	lines := build(t, nil, builder.Wheel(6))
	require.Len(t, lines, 12)

	res, err := polygonizer.Polygonize(lines)
	require.NoError(t, err)
	assert.Len(t, res.Polygons, 6)
	assert.InDelta(t, 3*math.Sin(math.Pi/3), area(res.Polygons), 1e-9)
}

func TestPathAttachesDangle(t *testing.T) {
	lines := build(t, nil,
		builder.Grid(1, 1),
		builder.Path(1, 1, 2, 2, 3, 2),
		builder.Segment(0, 0, -1, 0))
	require.Len(t, lines, 6)

	res, err := polygonizer.Polygonize(lines)
	require.NoError(t, err)
	assert.Len(t, res.Polygons, 1)
	assert.Len(t, res.Dangles, 2)
}

func TestRandomGrid(t *testing.T) {
	t.Run("needs rng", func(t *testing.T) {
		_, err := builder.BuildLines(nil, builder.RandomGrid(2, 2, 0.5))
		require.ErrorIs(t, err, builder.ErrNeedRandSource)
	})

	t.Run("p=1 is the full grid", func(t *testing.T) {
		full := build(t, nil, builder.Grid(3, 3))
		rnd := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomGrid(3, 3, 1))
		assert.Len(t, rnd, len(full))
	})

	t.Run("p=0 keeps the boundary", func(t *testing.T) {
		rnd := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomGrid(3, 4, 0))
		assert.Len(t, rnd, 2*3+2*4)

		res, err := polygonizer.Polygonize(rnd)
		require.NoError(t, err)
		require.Len(t, res.Polygons, 1)
		assert.InDelta(t, 12.0, res.Polygons[0].Area(), 1e-9)
	})

	t.Run("deterministic per seed", func(t *testing.T) {
		a := build(t, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(42)))}, builder.RandomGrid(5, 5, 0.5))
		b := build(t, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomGrid(5, 5, 0.5))
		require.Len(t, b, len(a))
		for i := range a {
			assert.Equal(t, a[i].FlatCoords(), b[i].FlatCoords())
		}
	})

	t.Run("faces stay inside the frame", func(t *testing.T) {
		rnd := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomGrid(6, 6, 0.4))
		res, err := polygonizer.Polygonize(rnd)
		require.NoError(t, err)
		require.NotEmpty(t, res.Polygons)
		for _, p := range res.Polygons {
			b := p.Bounds()
			assert.GreaterOrEqual(t, b.Min(0), 0.0)
			assert.GreaterOrEqual(t, b.Min(1), 0.0)
			assert.LessOrEqual(t, b.Max(0), 6.0)
			assert.LessOrEqual(t, b.Max(1), 6.0)
			assert.Greater(t, p.Area(), 0.0)
		}
	})
}

func TestConstructorErrors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"grid rows", builder.Grid(0, 2), builder.ErrTooFewVertices},
		{"grid cols", builder.Grid(2, -1), builder.ErrTooFewVertices},
		{"wheel", builder.Wheel(2), builder.ErrTooFewVertices},
		{"nested", builder.Nested(0), builder.ErrTooFewVertices},
		{"square", builder.Square(0), builder.ErrInvalidSize},
		{"rect", builder.Rect(1, math.Inf(1)), builder.ErrInvalidSize},
		{"path odd", builder.Path(0, 0, 1), builder.ErrConstructFailed},
		{"path short", builder.Path(0, 0), builder.ErrTooFewVertices},
		{"path nan", builder.Path(0, 0, math.NaN(), 1), builder.ErrInvalidSize},
		{"probability", builder.RandomGrid(2, 2, 1.5), builder.ErrInvalidProbability},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := builder.BuildLines([]builder.BuilderOption{builder.WithSeed(1)}, tc.con)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, lines)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithCellSize(0) })
	assert.Panics(t, func() { builder.WithCellSize(math.NaN()) })
	assert.Panics(t, func() { builder.WithOrigin(math.Inf(-1), 0) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.NotPanics(t, func() { builder.WithOrigin(-5, 5) })
}

func TestParse(t *testing.T) {
	cons, err := builder.Parse("grid:2x3; square:4 ;wheel:5;nested:2;rect:2x1;random:2x2:0.5;segment:0,0,1,1;path:0,0,1,0,1,1")
	require.NoError(t, err)
	require.Len(t, cons, 8)

	lines, err := builder.BuildLines([]builder.BuilderOption{builder.WithSeed(1)}, cons...)
	require.NoError(t, err)
	assert.NotEmpty(t, lines)

	cons, err = builder.Parse("GRID:1X1")
	require.NoError(t, err)
	assert.Len(t, build(t, nil, cons...), 4)

	for _, bad := range []string{"", " ; ", "hex:3", "grid:3", "grid:axb", "random:2x2", "segment:1,2,3", "square:big", "path:0,0,x,1"} {
		_, err := builder.Parse(bad)
		assert.ErrorIs(t, err, builder.ErrConstructFailed, bad)
	}
}
