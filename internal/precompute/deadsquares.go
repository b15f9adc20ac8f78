package precompute

import (
	"sokosolve/internal/geom"
	"sokosolve/internal/level"
)

// deadSquares classifies a non-goal cell p, reachable by the player, as dead
// if a crate pushed there can never reach a goal, as determined purely from
// the static wall layout around it.
//
// Grounded on deadEnd in
// _examples/bertbaron-pathfinding/examples/sokoban/main.go, which only
// tests the immediate 3x3 neighborhood (corner-in-L and orthogonal
// wall-or-blocked-box). This generalizes that single-shot corner test into a
// walk along a wall the cell hugs, escaping the corner-only case.
func deadSquares(lvl *level.Level, playerReach map[int]bool) map[int]bool {
	dead := make(map[int]bool)
	for key := range playerReach {
		p := keyToPos(key)
		if lvl.IsGoal(p) {
			continue
		}
		if lvl.CellAt(p) == level.Wall {
			continue
		}
		if isDead(lvl, p) {
			dead[key] = true
		}
	}
	return dead
}

// wallDirs returns, for cell p, the subset of the four directions in which
// the immediate neighbor is a wall.
func wallDirs(lvl *level.Level, p geom.Pos) map[geom.Dir]bool {
	w := make(map[geom.Dir]bool, 4)
	for _, d := range geom.Dirs {
		if lvl.CellAt(p.Move(d)) == level.Wall {
			w[d] = true
		}
	}
	return w
}

func isDead(lvl *level.Level, p geom.Pos) bool {
	w := wallDirs(lvl, p)
	switch len(w) {
	case 0:
		return false
	case 1:
		for d := range w {
			return hugsDeadWall(lvl, p, d)
		}
	case 2:
		var a, b geom.Dir
		i := 0
		for d := range w {
			if i == 0 {
				a = d
			} else {
				b = d
			}
			i++
		}
		if a.Opposite() == b {
			// Two walls on opposite sides: a corridor, not a corner. Treat
			// like the single-wall case against either of the two walls.
			return hugsDeadWall(lvl, p, a) || hugsDeadWall(lvl, p, b)
		}
		// L-shaped corner: always dead (it can never be pushed off either
		// wall without a goal immediately at p).
		return true
	default:
		return true
	}
	return false
}

// hugsDeadWall walks both directions perpendicular to d, the direction in
// which p has a wall. p is dead against that wall if, along both
// perpendicular walks, every intermediate cell also has a wall in direction
// d and none of them is a goal, until a wall terminates the walk in that
// perpendicular direction too. If either walk instead reaches a goal, or
// escapes the wall (no wall in direction d anymore) before hitting a wall,
// the cell is not dead via this wall.
func hugsDeadWall(lvl *level.Level, p geom.Pos, d geom.Dir) bool {
	perp1, perp2 := d.Perp()
	return walkHugsWall(lvl, p, d, perp1) && walkHugsWall(lvl, p, d, perp2)
}

func walkHugsWall(lvl *level.Level, p geom.Pos, wallDir, walkDir geom.Dir) bool {
	cur := p
	for {
		cur = cur.Move(walkDir)
		cell := lvl.CellAt(cur)
		if cell == level.Wall {
			// The walk is bounded by a wall in the walking direction: the
			// hug held all the way, so this side is safely dead.
			return true
		}
		if lvl.IsGoal(cur) {
			return false
		}
		if lvl.CellAt(cur.Move(wallDir)) != level.Wall {
			// The wall we were hugging disappears: a crate could be
			// maneuvered around from here, so this side escapes.
			return false
		}
	}
}
