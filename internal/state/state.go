// Package state holds the mutable search node: a shared, read-only Level
// plus the player position, the (index-stable) crate positions, the
// incremental Zobrist hash, the admissible heuristic value, and the
// normalized top-reachable player cell.
//
// Grounded on mainstate in
// _examples/bertbaron-pathfinding/examples/sokoban/main.go, which keeps a
// sorted []uint16 of box positions and re-derives a string key for the
// cheapest-path constraint map on every comparison. This rewrite keeps the
// crate slice index-stable instead of sorted, since crate identity must be
// preserved across pushes for move-list replay to stay meaningful, and
// carries the hash incrementally via internal/zobrist instead of
// re-hashing a derived string.
package state

import (
	"sokosolve/internal/geom"
	"sokosolve/internal/level"
	"sokosolve/internal/zobrist"
)

// State is one node of the search tree. It is created fresh by New and then
// only ever cloned (never mutated in place) by a successful push, so a
// parent state remains valid for the caller after a child is produced.
type State struct {
	Level  *level.Level
	Tables *zobrist.Tables

	Player geom.Pos
	Crates []geom.Pos // index-stable: Crates[i] is always "the i-th initial crate"

	Hash      uint64
	Heuristic int

	// TopReachable is the lexicographically smallest cell reachable by the
	// player in the current configuration, or (false) if it has not been
	// computed yet for this state (cleared by every push, recomputed by
	// the move generator).
	TopReachable    geom.Pos
	TopReachableSet bool
}

// New builds the initial state of a level's search, with the heuristic
// computed by the given function (simple vs Hungarian is a configuration
// choice, not a per-call one).
func New(lvl *level.Level, tables *zobrist.Tables, heuristic func(*level.Level, []geom.Pos) int) *State {
	crates := make([]geom.Pos, len(lvl.InitialCrates))
	copy(crates, lvl.InitialCrates)

	s := &State{
		Level:  lvl,
		Tables: tables,
		Player: lvl.InitialPlayer,
		Crates: crates,
	}
	var hash uint64
	for _, c := range crates {
		hash ^= tables.Crate(c)
	}
	s.Hash = hash
	s.Heuristic = heuristic(lvl, crates)
	return s
}

// Clone returns a deep-enough copy for a successor state: a fresh crate
// slice (cloned, since pushes mutate one element), but the same Level and
// Tables pointers (shared, immutable for the life of the search).
func (s *State) Clone() *State {
	crates := make([]geom.Pos, len(s.Crates))
	copy(crates, s.Crates)
	return &State{
		Level:     s.Level,
		Tables:    s.Tables,
		Player:    s.Player,
		Crates:    crates,
		Hash:      s.Hash,
		Heuristic: s.Heuristic,
	}
}

// IsSolved reports whether every crate occupies a goal cell.
func (s *State) IsSolved() bool {
	for _, c := range s.Crates {
		if !s.Level.IsGoal(c) {
			return false
		}
	}
	return true
}

// CrateAt returns the index of the crate occupying p, or -1 if none does.
func (s *State) CrateAt(p geom.Pos) int {
	for i, c := range s.Crates {
		if c == p {
			return i
		}
	}
	return -1
}

// HashWithPlayerZone returns s.Hash mixed with the Zobrist contribution of
// the current TopReachable cell, or s.Hash alone if TopReachable has not
// been computed (by the move generator) yet. It does not mutate s.Hash: the
// driver mixes the player term in at visited-set time rather than storing
// it back onto the state.
func (s *State) HashWithPlayerZone() uint64 {
	if !s.TopReachableSet {
		return s.Hash
	}
	return s.Hash ^ s.Tables.Player(s.TopReachable)
}
