// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	orbgeojson "github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

const squareWithDangle = `# unit test input
LINESTRING (0 0, 10 0)
LINESTRING (10 0, 10 10)

LINESTRING (10 10, 0 10)
LINESTRING (0 10, 0 0)
LINESTRING (10 10, 15 15)
`

func invoke(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func outputLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestWKTRoundTrip(t *testing.T) {
	code, out, errOut := invoke(t, squareWithDangle, "-nocolor")
	require.Equal(t, exitOK, code, errOut)

	lines := outputLines(out)
	require.Len(t, lines, 1)
	g, err := wkt.Unmarshal(lines[0])
	require.NoError(t, err)
	poly, ok := g.(*geom.Polygon)
	require.True(t, ok)
	assert.InDelta(t, 100.0, poly.Area(), 1e-9)

	assert.Contains(t, errOut, "polygons 1")
	assert.Contains(t, errOut, "dangles 1")
}

func TestWKTDiagnostics(t *testing.T) {
	code, out, errOut := invoke(t, squareWithDangle, "-nocolor", "-diagnostics")
	require.Equal(t, exitOK, code, errOut)

	lines := outputLines(out)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "polygon\tPOLYGON"))
	assert.Equal(t, "dangle\tLINESTRING (10 10, 15 15)", lines[1])
}

func TestInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.wkt")
	require.NoError(t, os.WriteFile(path, []byte(squareWithDangle), 0o600))

	code, out, errOut := invoke(t, "", "-in", path, "-nocolor")
	require.Equal(t, exitOK, code, errOut)
	assert.Len(t, outputLines(out), 1)

	code, _, errOut = invoke(t, "", "-in", filepath.Join(t.TempDir(), "missing.wkt"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "read input")
}

func TestGeoJSONInput(t *testing.T) {
	in := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,4],[0,4],[0,0]]]}},
		{"type":"Feature","properties":{},"geometry":null}
	]}`
	code, out, errOut := invoke(t, in, "-format", "geojson", "-nocolor")
	require.Equal(t, exitOK, code, errOut)

	g, err := wkt.Unmarshal(outputLines(out)[0])
	require.NoError(t, err)
	assert.InDelta(t, 16.0, g.(*geom.Polygon).Area(), 1e-9)

	single := `{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[[0,0],[1,0],[1,1],[0,0]]}}`
	code, out, errOut = invoke(t, single, "-format", "geojson", "-nocolor")
	require.Equal(t, exitOK, code, errOut)
	assert.Len(t, outputLines(out), 1)

	bare := `{"type":"MultiLineString","coordinates":[[[0,0],[2,0]],[[2,0],[2,2]],[[2,2],[0,0]]]}`
	code, out, errOut = invoke(t, bare, "-format", "geojson", "-nocolor")
	require.Equal(t, exitOK, code, errOut)
	assert.Len(t, outputLines(out), 1)
}

func TestGeneratedGeoJSONOutput(t *testing.T) {
	code, out, errOut := invoke(t, "", "-gen", "grid:2x2;segment:2,2,3,3", "-polygonal",
		"-out-format", "geojson", "-diagnostics", "-nocolor")
	require.Equal(t, exitOK, code, errOut)

	fc, err := orbgeojson.UnmarshalFeatureCollection([]byte(out))
	require.NoError(t, err)

	roles := map[string]int{}
	for _, f := range fc.Features {
		roles[f.Properties.MustString("role")]++
	}
	assert.Equal(t, map[string]int{rolePolygon: 2, roleDangle: 1}, roles)
	assert.InDelta(t, 1.0, fc.Features[0].Properties.MustFloat64("area"), 1e-9)
}

func TestPNGOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	code, _, errOut := invoke(t, "", "-gen", "grid:1x1", "-png", path, "-scale", "8", "-nocolor")
	require.Equal(t, exitOK, code, errOut)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestVerboseLogging(t *testing.T) {
	code, _, errOut := invoke(t, squareWithDangle, "-v", "-nocolor")
	require.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "level=DEBUG")
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-format", "xml"},
		{"-out-format", "kml"},
		{"-bogus"},
		{"stray"},
		{"-scale", "0"},
	} {
		code, _, _ := invoke(t, "", args...)
		assert.Equal(t, exitUsage, code, args)
	}
}

func TestProcessingErrors(t *testing.T) {
	code, _, errOut := invoke(t, "LINESTRING (0 0, 1 1)\nLINESTRING (0 0\n")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "line 2")

	code, _, _ = invoke(t, "", "-gen", "hex:3")
	assert.Equal(t, exitError, code)

	code, _, _ = invoke(t, "{", "-format", "geojson")
	assert.Equal(t, exitError, code)

	code, _, _ = invoke(t, "POINT (1 2)\n")
	assert.Equal(t, exitOK, code)
}
