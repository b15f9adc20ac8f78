package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sokosolve/internal/geom"
	"sokosolve/internal/state"
)

func TestComputeMovesFindsSinglePush(t *testing.T) {
	lvl := parseOne(t, `; single
#####
#@$.#
#####`)
	s := state.New(lvl, testTables(), SimpleHeuristic)
	candidates := ComputeMoves(s)

	require.Len(t, candidates, 1)
	require.Equal(t, 0, candidates[0].CrateIndex)
	require.Equal(t, geom.Right, candidates[0].Dir)
	require.True(t, s.TopReachableSet)
	require.Equal(t, geom.Pos{Row: 1, Col: 1}, s.TopReachable)
}

func TestComputeMovesTopReachableIsLexSmallest(t *testing.T) {
	lvl := parseOne(t, `; reach
#####
#   #
#  @#
#####`)
	s := state.New(lvl, testTables(), SimpleHeuristic)
	ComputeMoves(s)
	// Row 1 is entirely open floor, reachable and lexicographically smaller
	// than any cell in row 2.
	require.Equal(t, 1, s.TopReachable.Row)
}

func TestComputeMovesDeduplicatesRepeatedApproaches(t *testing.T) {
	// Player can reach the cell left of the crate by two different routes
	// around a pillar; the push candidate must still appear once.
	lvl := parseOne(t, `; loop
#######
#@    #
# # # #
#  $ .#
#     #
#######`)
	s := state.New(lvl, testTables(), SimpleHeuristic)
	candidates := ComputeMoves(s)

	seen := map[Candidate]int{}
	for _, c := range candidates {
		seen[c]++
	}
	for c, n := range seen {
		require.Equal(t, 1, n, "candidate %+v must appear exactly once", c)
	}
}
