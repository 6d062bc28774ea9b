// SPDX-License-Identifier: MIT
// Package: polygonize/builder
//
// parse.go: textual constructor forms for command-line use.
//
// Grammar (one shape):
//   square:S | rect:WxH | nested:N | grid:RxC | random:RxC:P | wheel:N
//   segment:X0,Y0,X1,Y1 | path:X0,Y0,X1,Y1[,...]
//
// Several shapes are joined with ';' and built in order.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns a ';'-separated list of shape forms into constructors.
func Parse(s string) ([]Constructor, error) {
	var cons []Constructor
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		con, err := parseOne(part)
		if err != nil {
			return nil, err
		}
		cons = append(cons, con)
	}
	if len(cons) == 0 {
		return nil, fmt.Errorf("%s: %q has no shapes: %w", methodParse, s, ErrConstructFailed)
	}

	return cons, nil
}

func parseOne(form string) (Constructor, error) {
	kind, args, _ := strings.Cut(form, ":")
	kind = strings.ToLower(kind)
	bad := func() error {
		return fmt.Errorf("%s: %q: %w", methodParse, form, ErrConstructFailed)
	}

	switch kind {
	case "square":
		v, err := strconv.ParseFloat(args, 64)
		if err != nil {
			return nil, bad()
		}
		return Square(v), nil

	case "rect":
		w, h, err := parseDims(args, strconv.ParseFloat)
		if err != nil {
			return nil, bad()
		}
		return Rect(w, h), nil

	case "nested", "wheel":
		n, err := strconv.Atoi(args)
		if err != nil {
			return nil, bad()
		}
		if kind == "wheel" {
			return Wheel(n), nil
		}
		return Nested(n), nil

	case "grid":
		r, c, err := parseDims(args, parseInt)
		if err != nil {
			return nil, bad()
		}
		return Grid(int(r), int(c)), nil

	case "random":
		dims, ps, ok := strings.Cut(args, ":")
		if !ok {
			return nil, bad()
		}
		r, c, err := parseDims(dims, parseInt)
		if err != nil {
			return nil, bad()
		}
		p, err := strconv.ParseFloat(ps, 64)
		if err != nil {
			return nil, bad()
		}
		return RandomGrid(int(r), int(c), p), nil

	case "segment", "path":
		var coords []float64
		for _, f := range strings.Split(args, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, bad()
			}
			coords = append(coords, v)
		}
		if kind == "segment" && len(coords) != 4 {
			return nil, bad()
		}
		return Path(coords...), nil
	}

	return nil, bad()
}

// parseDims splits "AxB" and parses both halves with conv.
func parseDims(s string, conv func(string, int) (float64, error)) (float64, float64, error) {
	a, b, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, ErrConstructFailed
	}
	x, err := conv(a, 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := conv(b, 64)
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

func parseInt(s string, _ int) (float64, error) {
	n, err := strconv.Atoi(s)
	return float64(n), err
}
