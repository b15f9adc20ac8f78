package precompute

import (
	"sokosolve/internal/geom"
	"sokosolve/internal/level"
)

// articulationCuts finds every articulation point of the floor graph
// (cells connected to their non-wall neighbors), restricted to the
// reachable cells, and for each one records which of its outgoing directions lead to a component
// that still contains a goal once that cell is removed.
//
// The low-link recursion is grounded on TarjanSCC/strongconnect in
// other_examples/117c1030_leesander1-gonum__search-graph_search.go.go,
// adapted from strongly-connected-components (directed graphs, onStack
// bookkeeping) to the classic articulation-point variant of the same
// low-link algorithm on an undirected grid graph. Implemented iteratively
// since recursive DFS can overrun the goroutine stack on large grids: each
// stack frame remembers which of the 4 directions it has already explored,
// so returning to a frame after a child finishes resumes exactly where it
// left off rather than recursing. The DFS root is whichever reachable cell
// map iteration yields first; the set of articulation points does not
// depend on the root.
func articulationCuts(lvl *level.Level, reachable map[int]bool, goals []geom.Pos) map[int]level.CutDirs {
	disc := make(map[int]int, len(reachable))
	low := make(map[int]int, len(reachable))
	hasParentEdge := make(map[int]bool, len(reachable))
	isArticulation := make(map[int]bool)
	timer := 0

	type frame struct {
		pos    geom.Pos
		dirIdx int
	}

	for rootKey := range reachable {
		if disc[rootKey] != 0 {
			continue
		}
		timer++
		disc[rootKey] = timer
		low[rootKey] = timer
		stack := []frame{{pos: keyToPos(rootKey)}}
		rootChildren := 0

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			curKey := top.pos.Key()

			if top.dirIdx >= 4 {
				stack = stack[:len(stack)-1]
				if len(stack) > 0 {
					parent := &stack[len(stack)-1]
					pKey := parent.pos.Key()
					if low[curKey] < low[pKey] {
						low[pKey] = low[curKey]
					}
					isRootFrame := len(stack) == 1
					if !isRootFrame && low[curKey] >= disc[pKey] {
						isArticulation[pKey] = true
					}
					if isRootFrame {
						rootChildren++
					}
				}
				continue
			}

			d := geom.Dirs[top.dirIdx]
			top.dirIdx++
			n := top.pos.Move(d)
			nKey := n.Key()
			if !reachable[nKey] {
				continue
			}
			if nKey == curKey {
				continue
			}

			if disc[nKey] == 0 {
				timer++
				disc[nKey] = timer
				low[nKey] = timer
				hasParentEdge[nKey] = true
				stack = append(stack, frame{pos: n})
				continue
			}
			// Back edge. Skip exactly the one edge leading to our own
			// parent in the DF tree (a simple grid has no parallel edges,
			// so "this neighbor is my parent" only ever needs the single
			// hasParentEdge flag, not an edge-identity check).
			if len(stack) >= 2 && stack[len(stack)-2].pos.Key() == nKey && hasParentEdge[curKey] {
				hasParentEdge[curKey] = false
				continue
			}
			if disc[nKey] < low[curKey] {
				low[curKey] = disc[nKey]
			}
		}
		if rootChildren > 1 {
			isArticulation[rootKey] = true
		}
	}

	cuts := make(map[int]level.CutDirs, len(isArticulation))
	for key := range isArticulation {
		p := keyToPos(key)
		var dirs level.CutDirs
		for _, d := range geom.Dirs {
			n := p.Move(d)
			if !reachable[n.Key()] {
				continue
			}
			if componentReachesGoal(lvl, n, p, goals) {
				dirs[d] = true
			}
		}
		cuts[key] = dirs
	}
	return cuts
}

func keyToPos(key int) geom.Pos {
	return geom.Pos{Row: key / geom.MaxDim, Col: key % geom.MaxDim}
}

// componentReachesGoal flood-fills from n with blocked treated as an
// impassable wall, reporting whether any goal is reached.
func componentReachesGoal(lvl *level.Level, n, blocked geom.Pos, goals []geom.Pos) bool {
	goalSet := make(map[int]bool, len(goals))
	for _, g := range goals {
		goalSet[g.Key()] = true
	}
	seen := map[int]bool{blocked.Key(): true, n.Key(): true}
	if goalSet[n.Key()] {
		return true
	}
	queue := []geom.Pos{n}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range geom.Dirs {
			q := p.Move(d)
			if lvl.CellAt(q) == level.Wall {
				continue
			}
			if seen[q.Key()] {
				continue
			}
			seen[q.Key()] = true
			if goalSet[q.Key()] {
				return true
			}
			queue = append(queue, q)
		}
	}
	return false
}
