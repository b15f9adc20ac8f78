// Package level holds the static, immutable-after-precomputation model of a
// single Sokoban puzzle: the grid, the goal set, and the initial player and
// crate positions crates are identified by. Everything dynamic (who is
// currently standing where) lives in internal/state instead.
//
// Grounded on the `sokoban`/`chars`/`reverse` model in
// _examples/bertbaron-pathfinding/examples/sokoban/main.go, generalized
// from a packed-byte-bitmask grid to a small Cell enum plus separate
// initial-position slices, and from a single flat []byte world to a
// properly bounded [][]Cell so a configurable max-dimension check has
// something to check against.
package level

import (
	"fmt"

	"sokosolve/internal/geom"
)

// Cell is the static content of a grid square. Player and crates are never
// part of it; they are dynamic and tracked separately.
type Cell byte

const (
	Wall Cell = iota
	Floor
	Goal
)

// Level is the immutable-after-precomputation static model of one puzzle.
// Precompute fills the cached fields below once; nothing mutates them
// afterwards, so a *Level can be shared by every state in a search without
// locking.
type Level struct {
	Name   string
	Grid   [][]Cell // Grid[row][col]; rows may have different lengths (ragged)
	Height int
	Width  int // widest row

	Goals          []geom.Pos
	InitialPlayer  geom.Pos
	HasPlayer      bool
	InitialCrates  []geom.Pos // index-stable identity used throughout the search

	// Filled by internal/precompute.Analyze; nil until then.
	PlayerReachable map[int]bool
	CrateReachable  []map[int]bool // per initial crate index
	PushDistance    []map[int]int  // per initial crate index, cell key -> pushes to nearest goal
	// GoalPushDistance[i][j] is crate i's push-distance map restricted to
	// goal j alone, used by the Hungarian heuristic to price a crate against
	// a specific goal instead of only its nearest one.
	GoalPushDistance [][]map[int]int
	DeadSquares      map[int]bool
	Cuts             map[int]CutDirs
}

// CutDirs is the subset of outgoing directions from an articulation cell
// whose removed component still reaches a goal.
type CutDirs [4]bool

func (c CutDirs) Has(d geom.Dir) bool {
	return c[d]
}

// CellAt returns the static content of p, or Wall if p falls outside the
// (possibly ragged) row it addresses.
func (l *Level) CellAt(p geom.Pos) Cell {
	if p.Row < 0 || p.Row >= len(l.Grid) {
		return Wall
	}
	row := l.Grid[p.Row]
	if p.Col < 0 || p.Col >= len(row) {
		return Wall
	}
	return row[p.Col]
}

// InBounds reports whether p addresses an actual (row, col) of the level,
// ragged rows included; it does not imply the cell is walkable.
func (l *Level) InBounds(p geom.Pos) bool {
	if p.Row < 0 || p.Row >= len(l.Grid) {
		return false
	}
	return p.Col >= 0 && p.Col < len(l.Grid[p.Row])
}

// IsGoal reports whether p is a goal cell.
func (l *Level) IsGoal(p geom.Pos) bool {
	return l.CellAt(p) == Goal
}

// Validate checks the structural invariants the precomputer and tokenizer
// must guarantee before a search can begin: non-empty player, and crate
// count equal to goal count.
func (l *Level) Validate(maxDim int) error {
	if l.Height > maxDim || l.Width > maxDim {
		return fmt.Errorf("level %q exceeds max dimension %d (got %dx%d)", l.Name, maxDim, l.Height, l.Width)
	}
	if len(l.InitialCrates) != len(l.Goals) {
		return fmt.Errorf("level %q: %d crates but %d goals", l.Name, len(l.InitialCrates), len(l.Goals))
	}
	if !l.HasPlayer {
		return fmt.Errorf("level %q: no player position set", l.Name)
	}
	return nil
}
