package search

import (
	"sokosolve/internal/geom"
	"sokosolve/internal/level"
	"sokosolve/internal/state"
)

// TryPush attempts to push the crate at s.Crates[crateIndex] in direction d.
// It is a pure function of its inputs: it never mutates s, and calling it
// twice with equal arguments returns equal (but independently allocated)
// results.
//
// Grounded on push/deadEnd in
// _examples/bertbaron-pathfinding/examples/sokoban/main.go for the
// wall/other-box rejection, generalized with the dead-square lookup and a
// 2x2 freeze-pattern test that example doesn't have.
func TryPush(s *state.State, crateIndex int, d geom.Dir, heuristic Heuristic) (*state.State, bool) {
	crate := s.Crates[crateIndex]
	q := crate.Move(d)

	if s.Level.CellAt(q) == level.Wall {
		return nil, false
	}
	if s.CrateAt(q) >= 0 {
		return nil, false
	}
	if s.Level.DeadSquares[q.Key()] {
		return nil, false
	}
	if isFrozen(s, crateIndex, q, d) {
		return nil, false
	}

	succ := s.Clone()
	succ.Player = crate
	succ.TopReachableSet = false
	succ.Crates[crateIndex] = q

	succ.Hash = s.Hash ^ s.Tables.Crate(crate) ^ s.Tables.Crate(q)
	succ.Heuristic = heuristic(succ.Level, succ.Crates)
	return succ, true
}

// isFrozen implements the 2x2 freeze pattern: q, plus a wall or other crate
// adjacent to q at direction nd perpendicular to the push, plus an other
// crate adjacent to q at direction d' perpendicular to nd (so d' is either
// d or its opposite), with the block's fourth cell also wall-or-crate, is a
// deadlock unless both q and the d' crate are goals.
func isFrozen(s *state.State, moving int, q geom.Pos, d geom.Dir) bool {
	otherCrateAt := func(p geom.Pos) int {
		idx := s.CrateAt(p)
		if idx == moving {
			return -1
		}
		return idx
	}

	next, prev := d.Next(), d.Prev()
	for _, nd := range []geom.Dir{next, prev} {
		ndCell := q.Move(nd)
		ndBlocked := s.Level.CellAt(ndCell) == level.Wall || otherCrateAt(ndCell) >= 0
		if !ndBlocked {
			continue
		}
		dPrime1, dPrime2 := nd.Perp()
		for _, dPrime := range []geom.Dir{dPrime1, dPrime2} {
			p2 := q.Move(dPrime)
			if otherCrateAt(p2) < 0 {
				continue // d' must be an other crate, not a wall
			}
			fourth := ndCell.Move(dPrime)
			fourthBlocked := s.Level.CellAt(fourth) == level.Wall || otherCrateAt(fourth) >= 0
			if !fourthBlocked {
				continue
			}
			if !(s.Level.IsGoal(q) && s.Level.IsGoal(p2)) {
				return true
			}
		}
	}
	return false
}
