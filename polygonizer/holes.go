// SPDX-License-Identifier: MIT

package polygonizer

import (
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/polygonize/spatial"
)

// assignHoles attaches every hole to its innermost containing shell and
// returns how many holes were assigned.
//
// Steps:
//  1. Index shell envelopes once.
//  2. For each hole, query the shells whose envelopes meet its envelope.
//  3. Among those containing the hole, keep the one whose envelope lies
//     inside the current best's; on equal envelopes the earlier shell stays.
//
// Holes no shell contains stay unassigned (outer holes).
//
// Complexity: O(S log S + H·(log S + k·n)) for k candidates of n vertices.
func assignHoles(holes, shells []*Ring) (int, error) {
	if len(holes) == 0 || len(shells) == 0 {
		return 0, nil
	}

	envs := make([]*geom.Bounds, len(shells))
	for i, s := range shells {
		envs[i] = s.bounds
	}
	ix, err := spatial.BulkLoad(envs, shells)
	if err != nil {
		return 0, err
	}

	assigned := 0
	for _, h := range holes {
		if shell := innermostShell(h, ix.Query(h.bounds)); shell != nil {
			shell.AddHole(h)
			assigned++
		}
	}

	return assigned, nil
}

// innermostShell picks the candidate containing h with the smallest
// envelope. Candidates arrive in shell order.
func innermostShell(h *Ring, candidates []*Ring) *Ring {
	var best *Ring
	for _, s := range candidates {
		if !s.Contains(h) {
			continue
		}
		if best == nil || properlyCovers(best.bounds, s.bounds) {
			best = s
		}
	}
	return best
}
