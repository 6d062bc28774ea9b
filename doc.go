// Package polygonize rebuilds polygons from noded linework: lines that meet
// only at shared endpoints, such as survey lines, street centrelines or
// digitized boundaries.
//
// What is in the box?
//
//	A small pipeline split into packages that can be used on their own:
//		• planar:      the planar graph, dangle and cut-edge pruning, ring labeling
//		• polygonizer: ring classification, hole assignment, polygon assembly,
//		               polygonal-only selection and diagnostics
//		• valid:       simple-ring checks
//		• locate:      point-in-ring location with an envelope prefilter
//		• spatial:     a generic R-tree envelope index
//		• extract:     linework from go-geom and orb geometries
//		• builder:     generated noded linework for tests and benchmarks
//		• render:      PNG rendering of results and diagnostics
//		• cmd/polygonize: a command-line front end (WKT and GeoJSON)
//
// Under the hood, rings are traced with their face on the right: a clockwise
// ring is a shell, a counter-clockwise ring a hole. Output polygons follow
// the right-hand rule, exterior counter-clockwise, so their area is positive.
//
// Quick ASCII example:
//
//	(0,10)───(10,10)
//	   │        │  ╲
//	   │        │   ╲ dangle
//	(0,0)────(10,0)
//
//	four segments and a spur yield one polygon of area 100 and one dangle.
//
// Not included: noding of crossing input, precision snapping and
// topology repair. Feed lines that are already noded.
//
//	go get github.com/katalvlaran/polygonize
package polygonize
