// SPDX-License-Identifier: MIT

package polygonizer

// selectDisjointShells decides which shells polygonal-only extraction keeps.
//
// Steps:
//  1. Seed: a shell whose first adjacent outer hole is unclaimed is
//     included and the hole is claimed, so each unbounded face seeds one
//     shell.
//  2. Propagate: an undecided shell takes the opposite decision of the first
//     decided shell found across one of its edges (through a hole, that
//     hole's shell). Scans repeat until a pass decides nothing new.
//
// The loop is bounded by len(shells)+1 passes. Shells still undecided are
// excluded; their count is returned.
//
// Complexity: O(P·E) for P passes over E ring edges.
func selectDisjointShells(shells, rings []*Ring) int {
	// 1. Seed from the unbounded faces.
	for _, s := range shells {
		if h := s.outerHole(rings); h != nil {
			s.decision = included
			h.processed = true
		}
	}

	// 2. Alternate inclusion across shared holes until a fixed point.
	for pass := 0; pass <= len(shells); pass++ {
		progress, pending := false, false
		for _, s := range shells {
			if s.decision != undecided {
				continue
			}
			if d := s.decisionFromNeighbours(rings); d != undecided {
				s.decision = d
				progress = true
				continue
			}
			pending = true
		}
		if !pending || !progress {
			break
		}
	}

	// 3. Anything left cannot be reached from a decided shell.
	left := 0
	for _, s := range shells {
		if s.decision == undecided {
			s.decision = excluded
			left++
		}
	}
	return left
}

// decisionFromNeighbours returns the opposite of the first decided shell
// across one of s's edges, or undecided.
func (s *Ring) decisionFromNeighbours(rings []*Ring) inclusion {
	for _, idx := range s.syms {
		if idx < 0 {
			continue
		}
		adj := rings[idx].shellOf()
		if adj == nil || adj == s {
			continue
		}
		switch adj.decision {
		case included:
			return excluded
		case excluded:
			return included
		}
	}
	return undecided
}
