package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sokosolve/internal/geom"
	"sokosolve/internal/level"
	"sokosolve/internal/zobrist"
)

func sumHeuristic(*level.Level, []geom.Pos) int { return 0 }

func newLevel(crates []geom.Pos, goals []geom.Pos, player geom.Pos) *level.Level {
	grid := make([][]level.Cell, 5)
	for r := range grid {
		row := make([]level.Cell, 5)
		for c := range row {
			row[c] = level.Floor
		}
		grid[r] = row
	}
	for _, g := range goals {
		grid[g.Row][g.Col] = level.Goal
	}
	return &level.Level{
		Name:          "t",
		Grid:          grid,
		Height:        5,
		Width:         5,
		Goals:         goals,
		InitialPlayer: player,
		HasPlayer:     true,
		InitialCrates: crates,
	}
}

func TestNewHashIsXorOfCrateTerms(t *testing.T) {
	tables := zobrist.New(1)
	crates := []geom.Pos{{Row: 1, Col: 1}, {Row: 2, Col: 3}}
	lvl := newLevel(crates, crates, geom.Pos{Row: 0, Col: 0})

	s := New(lvl, tables, sumHeuristic)

	var want uint64
	for _, c := range crates {
		want ^= tables.Crate(c)
	}
	require.Equal(t, want, s.Hash)
}

func TestHashWithPlayerZoneFoldsInTopReachable(t *testing.T) {
	tables := zobrist.New(2)
	crates := []geom.Pos{{Row: 1, Col: 1}}
	lvl := newLevel(crates, crates, geom.Pos{Row: 0, Col: 0})
	s := New(lvl, tables, sumHeuristic)

	require.Equal(t, s.Hash, s.HashWithPlayerZone(), "without TopReachable set, the player term contributes nothing")

	s.TopReachable = geom.Pos{Row: 3, Col: 3}
	s.TopReachableSet = true
	require.Equal(t, s.Hash^tables.Player(s.TopReachable), s.HashWithPlayerZone())
}

func TestCloneIsIndependentOfParent(t *testing.T) {
	tables := zobrist.New(3)
	crates := []geom.Pos{{Row: 1, Col: 1}}
	lvl := newLevel(crates, crates, geom.Pos{Row: 0, Col: 0})
	s := New(lvl, tables, sumHeuristic)

	clone := s.Clone()
	clone.Crates[0] = geom.Pos{Row: 4, Col: 4}

	require.Equal(t, geom.Pos{Row: 1, Col: 1}, s.Crates[0], "mutating the clone must not affect the parent")
	require.Equal(t, geom.Pos{Row: 4, Col: 4}, clone.Crates[0])
}

func TestIsSolvedRequiresEveryCrateOnGoal(t *testing.T) {
	tables := zobrist.New(4)
	crates := []geom.Pos{{Row: 1, Col: 1}, {Row: 2, Col: 2}}
	goals := []geom.Pos{{Row: 1, Col: 1}, {Row: 2, Col: 2}}
	lvl := newLevel(crates, goals, geom.Pos{Row: 0, Col: 0})
	s := New(lvl, tables, sumHeuristic)
	require.True(t, s.IsSolved())

	s.Crates[1] = geom.Pos{Row: 3, Col: 3}
	require.False(t, s.IsSolved())
}

func TestCrateAt(t *testing.T) {
	tables := zobrist.New(5)
	crates := []geom.Pos{{Row: 1, Col: 1}, {Row: 2, Col: 2}}
	lvl := newLevel(crates, crates, geom.Pos{Row: 0, Col: 0})
	s := New(lvl, tables, sumHeuristic)

	require.Equal(t, 0, s.CrateAt(geom.Pos{Row: 1, Col: 1}))
	require.Equal(t, 1, s.CrateAt(geom.Pos{Row: 2, Col: 2}))
	require.Equal(t, -1, s.CrateAt(geom.Pos{Row: 0, Col: 0}))
}
