// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	orbgeojson "github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/katalvlaran/polygonize/extract"
	"github.com/katalvlaran/polygonize/polygonizer"
)

// Feature roles in tagged output.
const (
	rolePolygon     = "polygon"
	roleDangle      = "dangle"
	roleCutEdge     = "cut_edge"
	roleInvalidRing = "invalid_ring"
)

// readInput loads every geometry from path (stdin for "-" or "").
func readInput(path, format string, stdin io.Reader) ([]geom.T, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}

	if format == formatGeoJSON {
		return decodeGeoJSON(data)
	}
	return decodeWKT(data)
}

// decodeWKT parses one geometry per line. Blank lines and lines starting
// with '#' are skipped.
func decodeWKT(data []byte) ([]geom.T, error) {
	var out []geom.T
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		g, err := wkt.Unmarshal(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		out = append(out, g)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan input")
	}

	return out, nil
}

// decodeGeoJSON accepts a FeatureCollection, a Feature or a bare geometry.
func decodeGeoJSON(data []byte) ([]geom.T, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, errors.Wrap(err, "geojson")
	}

	switch head.Type {
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, errors.Wrap(err, "geojson feature collection")
		}
		out := make([]geom.T, 0, len(fc.Features))
		for _, f := range fc.Features {
			if f.Geometry != nil {
				out = append(out, f.Geometry)
			}
		}
		return out, nil

	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(err, "geojson feature")
		}
		if f.Geometry == nil {
			return nil, nil
		}
		return []geom.T{f.Geometry}, nil
	}

	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrap(err, "geojson geometry")
	}
	return []geom.T{g}, nil
}

// writeWKT writes one polygon per line. With diagnostics every line is
// prefixed by its role and a tab, and diagnostic lines follow the polygons.
func writeWKT(w io.Writer, res *polygonizer.Result, diagnostics bool) error {
	bw := bufio.NewWriter(w)
	emit := func(role string, g geom.T) error {
		s, err := wkt.Marshal(g)
		if err != nil {
			return errors.Wrap(err, "encode wkt")
		}
		if diagnostics {
			fmt.Fprintf(bw, "%s\t", role)
		}
		fmt.Fprintln(bw, s)
		return nil
	}

	for _, p := range res.Polygons {
		if err := emit(rolePolygon, p); err != nil {
			return err
		}
	}
	if diagnostics {
		for _, t := range roleLines(res) {
			if err := emit(t.role, t.line); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// writeGeoJSON writes a FeatureCollection. Every feature carries "role";
// polygons also carry "area".
func writeGeoJSON(w io.Writer, res *polygonizer.Result, diagnostics bool) error {
	fc := orbgeojson.NewFeatureCollection()
	for _, p := range res.Polygons {
		f := orbgeojson.NewFeature(extract.OrbPolygon(p))
		f.Properties["role"] = rolePolygon
		f.Properties["area"] = p.Area()
		fc.Append(f)
	}
	if diagnostics {
		for _, t := range roleLines(res) {
			f := orbgeojson.NewFeature(extract.OrbLineString(t.line))
			f.Properties["role"] = t.role
			fc.Append(f)
		}
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encode geojson")
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "write output")
	}

	return nil
}
