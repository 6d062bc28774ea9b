// SPDX-License-Identifier: MIT

package polygonizer

import "github.com/katalvlaran/polygonize/planar"

// Runs returns how many times the pipeline executed.
func Runs(p *Polygonizer) int { return p.runs }

// SetAfterExtract installs a hook called with the graph right after ring
// extraction.
func SetAfterExtract(p *Polygonizer, fn func(*planar.Graph)) { p.afterExtract = fn }

// AssignHoles exposes hole assignment over rings of a finished result.
var AssignHoles = assignHoles

// ClearAssignments detaches every hole from its shell.
func ClearAssignments(res *Result) {
	for _, s := range res.Shells {
		s.holes = nil
	}
	for _, h := range res.Holes {
		h.shell = nil
	}
}
