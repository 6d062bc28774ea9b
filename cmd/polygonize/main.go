// SPDX-License-Identifier: MIT

// Command polygonize rebuilds polygons from noded linework.
//
// Input is read from -in (stdin by default) as WKT, one geometry per line,
// or as GeoJSON (a geometry, a Feature or a FeatureCollection). With -gen the
// input is generated instead, e.g. -gen "grid:3x3" or -gen "nested:4".
//
// Polygons are written to stdout as WKT or as a GeoJSON FeatureCollection.
// -diagnostics adds dangles, cut edges and invalid ring lines, tagged with
// their role. A coloured summary goes to stderr; -png renders the result.
//
// Exit codes: 0 success, 1 processing error, 2 usage error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/polygonize/builder"
	"github.com/katalvlaran/polygonize/polygonizer"
	"github.com/katalvlaran/polygonize/render"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const (
	formatWKT     = "wkt"
	formatGeoJSON = "geojson"
)

type config struct {
	in          string
	format      string
	outFormat   string
	polygonal   bool
	noValidate  bool
	diagnostics bool
	png         string
	scale       float64
	gen         string
	seed        int64
	cell        float64
	verbose     bool
	noColor     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("polygonize", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&c.in, "in", "-", "input file, - for stdin")
	fs.StringVar(&c.format, "format", formatWKT, "input format: wkt|geojson")
	fs.StringVar(&c.outFormat, "out-format", formatWKT, "output format: wkt|geojson")
	fs.BoolVar(&c.polygonal, "polygonal", false, "emit only polygons with disjoint interiors")
	fs.BoolVar(&c.noValidate, "novalidate", false, "skip the ring self-intersection test")
	fs.BoolVar(&c.diagnostics, "diagnostics", false, "also write dangles, cut edges and invalid rings")
	fs.StringVar(&c.png, "png", "", "render the result to this PNG file")
	fs.Float64Var(&c.scale, "scale", 20, "PNG pixels per coordinate unit")
	fs.StringVar(&c.gen, "gen", "", "generate input, e.g. grid:3x3;wheel:6")
	fs.Int64Var(&c.seed, "seed", 1, "seed for random generators")
	fs.Float64Var(&c.cell, "cell", 1, "cell size for generated input")
	fs.BoolVar(&c.verbose, "v", false, "log pipeline stages")
	fs.BoolVar(&c.noColor, "nocolor", false, "plain summary output")

	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	for _, f := range []string{c.format, c.outFormat} {
		if f != formatWKT && f != formatGeoJSON {
			return c, fmt.Errorf("unknown format %q", f)
		}
	}
	if !(c.scale > 0) || !(c.cell > 0) {
		return c, fmt.Errorf("-scale and -cell must be positive")
	}

	return c, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c, err := parseFlags(args, stderr)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(stderr, "polygonize:", err)
		}
		return exitUsage
	}

	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	res, err := polygonize(c, stdin, logger)
	if err != nil {
		fmt.Fprintln(stderr, "polygonize:", err)
		return exitError
	}

	switch c.outFormat {
	case formatGeoJSON:
		err = writeGeoJSON(stdout, res, c.diagnostics)
	default:
		err = writeWKT(stdout, res, c.diagnostics)
	}
	if err != nil {
		fmt.Fprintln(stderr, "polygonize:", err)
		return exitError
	}

	if c.png != "" {
		if err := render.PNG(c.png, res, render.WithScale(c.scale)); err != nil {
			fmt.Fprintln(stderr, "polygonize:", err)
			return exitError
		}
	}

	writeSummary(stderr, res, aurora.NewAurora(!c.noColor))

	return exitOK
}

// polygonize loads or generates the input and runs the pipeline.
func polygonize(c config, stdin io.Reader, logger *slog.Logger) (*polygonizer.Result, error) {
	p := polygonizer.New(
		polygonizer.WithPolygonalOnly(c.polygonal),
		polygonizer.WithCheckRingsValid(!c.noValidate),
		polygonizer.WithLogger(logger),
	)

	if c.gen != "" {
		cons, err := builder.Parse(c.gen)
		if err != nil {
			return nil, err
		}
		lines, err := builder.BuildLines([]builder.BuilderOption{
			builder.WithSeed(c.seed),
			builder.WithCellSize(c.cell),
		}, cons...)
		if err != nil {
			return nil, err
		}
		if err := p.AddLines(lines...); err != nil {
			return nil, err
		}
		return p.Result()
	}

	geoms, err := readInput(c.in, c.format, stdin)
	if err != nil {
		return nil, err
	}
	for _, g := range geoms {
		if err := p.Add(g); err != nil {
			return nil, err
		}
	}

	return p.Result()
}

func writeSummary(w io.Writer, res *polygonizer.Result, au aurora.Aurora) {
	st := res.Stats
	fmt.Fprintf(w, "%s %d  %s %d  %s %d  %s %d  (lines %d, rings %d)\n",
		au.Bold(au.Green("polygons")), st.Polygons,
		au.Yellow("dangles"), st.Dangles,
		au.Magenta("cut edges"), st.CutEdges,
		au.Red("invalid rings"), st.InvalidRings,
		st.Lines, st.Rings,
	)
}

// tagged is a diagnostic line with its role.
type tagged struct {
	role string
	line *geom.LineString
}

// roleLines lists every diagnostic line with its role: dangles, then cut
// edges, then invalid ring lines.
func roleLines(res *polygonizer.Result) []tagged {
	var out []tagged
	add := func(role string, lines []*geom.LineString) {
		for _, l := range lines {
			out = append(out, tagged{role: role, line: l})
		}
	}
	add(roleDangle, res.Dangles)
	add(roleCutEdge, res.CutEdges)
	add(roleInvalidRing, res.InvalidRingLines)

	return out
}
