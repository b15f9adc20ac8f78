package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sokosolve/internal/state"
)

// TestHeuristicAdmissibility replays each level's own verified solution
// through a fresh state, for both heuristic choices, and checks that the
// heuristic value never exceeds the number of pushes actually still needed
// to reach the goal at that point.
func TestHeuristicAdmissibility(t *testing.T) {
	levels := []string{
		`; single
#####
#@$.#
#####`,
		`; corner avoid
#########
#  .    #
#  $    #
#  @  # #
#    #  #
#########`,
		`; two crates two goals, shared nearest goal
#######
#.   .#
#$$   #
#  @  #
#######`,
		`; corridor
##########
#@$     .#
##########`,
	}

	for _, text := range levels {
		lvl := parseOne(t, text)
		for _, useHungarian := range []bool{false, true} {
			heuristic := SelectHeuristic(useHungarian)

			res, err := Solve(lvl, testTables(), Config{MaxSearch: 50000, UseHungarian: useHungarian})
			require.NoError(t, err)
			require.Equal(t, Solved, res.Outcome)

			s := state.New(lvl, testTables(), heuristic)
			remaining := len(res.Moves)
			require.LessOrEqual(t, s.Heuristic, remaining, "heuristic must not overestimate the initial remaining push count")

			for _, m := range res.Moves {
				succ, ok := TryPush(s, m.CrateIndex, m.Dir, heuristic)
				require.True(t, ok, "replaying a verified solution must never be rejected")
				s = succ
				remaining--
				require.LessOrEqual(t, s.Heuristic, remaining, "heuristic must not overestimate the remaining push count")
			}
			require.True(t, s.IsSolved())
		}
	}
}
