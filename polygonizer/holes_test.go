// SPDX-License-Identifier: MIT

package polygonizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/polygonize/polygonizer"
)

// threeNested returns squares of side 30, 20 and 10 around one centre.
func threeNested() []*geom.LineString {
	return []*geom.LineString{
		closedSquare(0, 0, 30),
		closedSquare(5, 5, 20),
		closedSquare(10, 10, 10),
	}
}

// ringWithBounds finds the ring whose envelope starts at (minXY, minXY).
func ringWithBounds(rings []*polygonizer.Ring, minXY float64) *polygonizer.Ring {
	for _, r := range rings {
		if r.Bounds().Min(0) == minXY {
			return r
		}
	}
	return nil
}

func TestHolesGoToInnermostShell(t *testing.T) {
	res, err := polygonizer.Polygonize(threeNested())
	require.NoError(t, err)
	require.Len(t, res.Shells, 3)
	require.Len(t, res.Holes, 3)

	s0, s5, s10 := res.Shells[0], res.Shells[1], res.Shells[2]
	h0 := ringWithBounds(res.Holes, 0)
	h5 := ringWithBounds(res.Holes, 5)
	h10 := ringWithBounds(res.Holes, 10)

	assert.Nil(t, h0.Shell(), "outermost boundary has no shell")
	assert.Same(t, s0, h5.Shell())
	assert.Same(t, s5, h10.Shell(), "innermost containing shell wins")
	assert.Empty(t, s10.Holes())
	assert.Equal(t, 2, res.Stats.AssignedHoles)

	require.Len(t, res.Polygons, 3)
	assert.InDelta(t, 500.0, res.Polygons[0].Area(), 1e-9)
	assert.InDelta(t, 300.0, res.Polygons[1].Area(), 1e-9)
	assert.InDelta(t, 100.0, res.Polygons[2].Area(), 1e-9)
}

func TestAssignHolesDirect(t *testing.T) {
	res, err := polygonizer.Polygonize(threeNested())
	require.NoError(t, err)

	polygonizer.ClearAssignments(res)
	n, err := polygonizer.AssignHoles(res.Holes, res.Shells)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Same(t, res.Shells[1], ringWithBounds(res.Holes, 10).Shell())

	n, err = polygonizer.AssignHoles(nil, res.Shells)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPolygonalOnlyThreeNested(t *testing.T) {
	res, err := polygonizer.Polygonize(threeNested(), polygonizer.WithPolygonalOnly(true))
	require.NoError(t, err)

	require.Len(t, res.Polygons, 2)
	assert.InDelta(t, 500.0, res.Polygons[0].Area(), 1e-9)
	assert.InDelta(t, 100.0, res.Polygons[1].Area(), 1e-9)
	assert.True(t, res.Shells[0].Included())
	assert.False(t, res.Shells[1].Included())
	assert.True(t, res.Shells[2].Included())
	assert.Equal(t, 1, maxOverlap(res.Polygons, 0, 30))
}
