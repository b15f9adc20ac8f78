package level

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sokosolve/internal/geom"
)

func TestValidateCrateGoalMismatch(t *testing.T) {
	l := &Level{
		Name:          "bad",
		Grid:          [][]Cell{{Floor, Floor}},
		Height:        1,
		Width:         2,
		HasPlayer:     true,
		InitialPlayer: geom.Pos{Row: 0, Col: 0},
		InitialCrates: []geom.Pos{{Row: 0, Col: 1}},
		Goals:         nil,
	}
	assert.Error(t, l.Validate(50))
}

func TestValidateSizeExceeded(t *testing.T) {
	l := &Level{Name: "huge", Height: 60, Width: 10, HasPlayer: true}
	assert.Error(t, l.Validate(50))
}

func TestValidateNoPlayer(t *testing.T) {
	l := &Level{Name: "noplayer", Height: 1, Width: 1, Grid: [][]Cell{{Floor}}}
	assert.Error(t, l.Validate(50))
}

func TestValidateOK(t *testing.T) {
	l := &Level{
		Name:          "ok",
		Grid:          [][]Cell{{Floor, Floor, Goal}},
		Height:        1,
		Width:         3,
		HasPlayer:     true,
		InitialPlayer: geom.Pos{Row: 0, Col: 0},
		InitialCrates: []geom.Pos{{Row: 0, Col: 1}},
		Goals:         []geom.Pos{{Row: 0, Col: 2}},
	}
	assert.NoError(t, l.Validate(50))
}
