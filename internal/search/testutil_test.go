package search

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sokosolve/internal/geom"
	"sokosolve/internal/level"
	"sokosolve/internal/levelio"
	"sokosolve/internal/precompute"
	"sokosolve/internal/zobrist"
)

func parseOne(t *testing.T, text string) *level.Level {
	t.Helper()
	levels, err := levelio.ParseAll(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, levels, 1)
	lvl := levels[0]
	require.NoError(t, lvl.Validate(geom.MaxDim))
	require.NoError(t, precompute.Analyze(context.Background(), lvl, 0))
	return lvl
}

func testTables() *zobrist.Tables {
	return zobrist.New(42)
}
