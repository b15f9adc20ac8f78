// Package search implements the move generator, push evaluator, heuristic
// dispatch, and A* driver.
//
// Grounded on Expand in
// _examples/bertbaron-pathfinding/examples/sokoban/main.go, which walks the
// player's reachable floor cells and, at each step, checks the four
// neighbors for a box to push. This rewrite separates that single method
// into a pure move generator (this file) and a pure push evaluator
// (push.go), and additionally tracks the lexicographically smallest
// visited cell as top_reachable, since states are keyed by a normalized
// player zone instead of a sorted box list.
package search

import (
	"sokosolve/internal/geom"
	"sokosolve/internal/level"
	"sokosolve/internal/state"
)

// Candidate is one (crate, direction) pair the player can execute a push
// for from the current configuration.
type Candidate struct {
	CrateIndex int
	Dir        geom.Dir
}

// ComputeMoves flood-fills from s.Player over floor-and-not-crate cells,
// setting s.TopReachable to the canonical player-zone representative and
// returning every push the player can reach. It mutates s in place (spec
// section 4.7 step c runs it directly on the popped state before cloning
// successors), so callers must not assume s is left unchanged.
func ComputeMoves(s *state.State) []Candidate {
	start := s.Player
	visited := map[int]bool{start.Key(): true}
	top := start
	queue := []geom.Pos{start}

	seen := make(map[Candidate]bool)
	var candidates []Candidate

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p.Less(top) {
			top = p
		}
		for _, d := range geom.Dirs {
			n := p.Move(d)
			if s.Level.CellAt(n) == level.Wall {
				continue
			}
			if idx := s.CrateAt(n); idx >= 0 {
				c := Candidate{CrateIndex: idx, Dir: d}
				if !seen[c] {
					seen[c] = true
					candidates = append(candidates, c)
				}
				continue
			}
			if !visited[n.Key()] {
				visited[n.Key()] = true
				queue = append(queue, n)
			}
		}
	}

	s.TopReachable = top
	s.TopReachableSet = true
	return candidates
}
