package search

import (
	"sokosolve/internal/geom"
	"sokosolve/internal/hungarian"
	"sokosolve/internal/level"
)

// Unreachable stands in for +infinity: a crate with no entry in its
// push_distance map contributes this instead of overflowing int arithmetic
// when summed or matrix-multiplied.
const Unreachable = 1 << 20

// Heuristic computes an admissible lower bound on the remaining push count
// for the given crate layout. The choice of implementation is
// configuration-level, not per-state.
type Heuristic func(lvl *level.Level, crates []geom.Pos) int

// SimpleHeuristic sums each crate's distance to its own nearest goal.
func SimpleHeuristic(lvl *level.Level, crates []geom.Pos) int {
	total := 0
	for i, c := range crates {
		d, ok := lvl.PushDistance[i][c.Key()]
		if !ok {
			return Unreachable
		}
		total += d
	}
	return total
}

// HungarianHeuristic builds the n x n cost matrix a[i][j] = the push
// distance from crate i's current cell to goal j specifically (via
// lvl.GoalPushDistance, one map per crate per goal), and returns the
// minimum weight perfect assignment. Unlike SimpleHeuristic, which sums each
// crate's distance to its own nearest goal and can double-count a goal two
// crates both happen to be closest to, the assignment cost can never be
// lower than that sum (every crate's assigned cost is at least its own
// nearest-goal distance) so it is always at least as tight, and strictly tighter
// whenever nearest-goal assignments collide.
func HungarianHeuristic(lvl *level.Level, crates []geom.Pos) int {
	n := len(crates)
	cost := make([][]int, n)
	for i, c := range crates {
		cost[i] = make([]int, n)
		for j := range lvl.Goals {
			d, ok := lvl.GoalPushDistance[i][j][c.Key()]
			if !ok {
				d = Unreachable
			}
			cost[i][j] = d
		}
	}
	return hungarian.MinCostAssignment(cost)
}

// SelectHeuristic returns the configured heuristic implementation.
func SelectHeuristic(useHungarian bool) Heuristic {
	if useHungarian {
		return HungarianHeuristic
	}
	return SimpleHeuristic
}
