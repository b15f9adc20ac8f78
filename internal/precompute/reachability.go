package precompute

import (
	"sokosolve/internal/geom"
	"sokosolve/internal/level"
)

// playerReachable runs a plain BFS from start over floor/goal cells,
// ignoring crates entirely. It is grounded on getWalkMoves in
// _examples/bertbaron-pathfinding/examples/sokoban/main.go (a BFS
// sub-solver for player movement), stripped of its target-list early exit
// since this variant wants the whole component.
func playerReachable(lvl *level.Level, start geom.Pos) map[int]bool {
	seen := map[int]bool{start.Key(): true}
	queue := []geom.Pos{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range geom.Dirs {
			n := p.Move(d)
			if lvl.CellAt(n) == level.Wall {
				continue
			}
			if seen[n.Key()] {
				continue
			}
			seen[n.Key()] = true
			queue = append(queue, n)
		}
	}
	return seen
}

// crateReachable computes, for a single crate starting at start, every cell
// it could occupy through a sequence of valid pushes if every other crate
// were absent. An edge from x to neighbor x+d is only valid if the pusher
// could stand at x-d, i.e. x-d is not a wall.
func crateReachable(lvl *level.Level, start geom.Pos) map[int]bool {
	seen := map[int]bool{start.Key(): true}
	queue := []geom.Pos{start}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, d := range geom.Dirs {
			next := x.Move(d)
			behind := x.Move(d.Opposite())
			if lvl.CellAt(next) == level.Wall || lvl.CellAt(behind) == level.Wall {
				continue
			}
			if seen[next.Key()] {
				continue
			}
			seen[next.Key()] = true
			queue = append(queue, next)
		}
	}
	return seen
}

// pushDistance runs the same pusher-fits-behind BFS as crateReachable, but
// from every goal backwards, recording at each reachable cell the fewest
// pushes needed to bring a crate there to some goal. Walking the graph
// backwards from all goals at once, rather than forwards from start to each
// goal separately, gives the exact same map crateReachable would restrict
// to (a cell absent here has no path to any goal) in a single multi-source
// BFS instead of one BFS per goal.
func pushDistance(lvl *level.Level, reachable map[int]bool, goals []geom.Pos) map[int]int {
	dist := make(map[int]int, len(reachable))
	var queue []geom.Pos
	for _, g := range goals {
		if !reachable[g.Key()] {
			continue
		}
		dist[g.Key()] = 0
		queue = append(queue, g)
	}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		d0 := dist[x.Key()]
		for _, d := range geom.Dirs {
			// Reverse of the forward pusher-fits-behind edge: a push that
			// moved the crate from `prev` to `x` in direction `d` requires
			// prev+d (== x) not a wall (guaranteed, x is reachable) and
			// prev-d not a wall (the pusher's stance before the push).
			prev := x.Move(d.Opposite())
			pusherStance := prev.Move(d.Opposite())
			if !reachable[prev.Key()] {
				continue
			}
			if lvl.CellAt(pusherStance) == level.Wall {
				continue
			}
			if _, ok := dist[prev.Key()]; ok {
				continue
			}
			dist[prev.Key()] = d0 + 1
			queue = append(queue, prev)
		}
	}
	return dist
}

// pushDistancePerGoal runs the same backward BFS as pushDistance once per
// goal instead of merging all goals into one multi-source search, so the
// Hungarian heuristic can look up "distance from here to goal j" specifically
// rather than only "distance from here to whichever goal is nearest".
func pushDistancePerGoal(lvl *level.Level, reachable map[int]bool, goals []geom.Pos) []map[int]int {
	perGoal := make([]map[int]int, len(goals))
	for i, g := range goals {
		perGoal[i] = pushDistance(lvl, reachable, []geom.Pos{g})
	}
	return perGoal
}
