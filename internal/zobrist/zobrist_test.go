package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sokosolve/internal/geom"
)

func TestTablesAreDeterministicPerSeed(t *testing.T) {
	a := New(42)
	b := New(42)
	p := geom.Pos{Row: 3, Col: 4}
	assert.Equal(t, a.Crate(p), b.Crate(p))
	assert.Equal(t, a.Player(p), b.Player(p))
}

func TestTablesDistinguishCellsAndKinds(t *testing.T) {
	tb := New(1)
	p1 := geom.Pos{Row: 0, Col: 0}
	p2 := geom.Pos{Row: 0, Col: 1}
	assert.NotEqual(t, tb.Crate(p1), tb.Crate(p2))
	assert.NotEqual(t, tb.Crate(p1), tb.Player(p1))
}
