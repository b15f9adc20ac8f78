package hungarian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinCostAssignmentSimpleCase(t *testing.T) {
	// Row i should be matched to column i for a cost-minimizing identity.
	cost := [][]int{
		{1, 10, 10},
		{10, 1, 10},
		{10, 10, 1},
	}
	require.Equal(t, 3, MinCostAssignment(cost))
}

func TestMinCostAssignmentPrefersCrossMatch(t *testing.T) {
	// Nearest-goal-per-crate would double-count column 0 (cost 1 for both
	// rows); the true minimum assignment must use column 1 for one of them.
	cost := [][]int{
		{1, 5},
		{1, 2},
	}
	// row0->col0 (1) + row1->col1 (2) = 3, vs row0->col1(5)+row1->col0(1) = 6
	require.Equal(t, 3, MinCostAssignment(cost))
}

func TestMinCostAssignmentEmpty(t *testing.T) {
	require.Equal(t, 0, MinCostAssignment(nil))
}

func TestMinCostAssignmentSingleton(t *testing.T) {
	require.Equal(t, 7, MinCostAssignment([][]int{{7}}))
}
