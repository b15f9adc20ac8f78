// A* driver. Priority ordering, the visited-hash set, cut-chain macro
// compression, budget enforcement, and post-hoc solution verification all
// live here.
//
// Grounded on solve.go/strategies.go in
// _examples/bertbaron-pathfinding/examples/sokoban/main.go, which drives a
// generic best-first search over a caller-supplied State interface via
// container/heap. This rewrite drops the generic interface in favor of a
// Sokoban-specific driver, and adds the cut macro compression and
// budget-vs-drained distinction that generic solver has no notion of.
package search

import (
	"container/heap"
	"fmt"

	"sokosolve/internal/geom"
	"sokosolve/internal/level"
	"sokosolve/internal/state"
	"sokosolve/internal/zobrist"
)

// Move is one step of a solution: push the crate at CrateIndex in Dir.
type Move struct {
	CrateIndex int
	Dir        geom.Dir
}

// Outcome distinguishes a found solution from the two observably distinct
// ways a level can fail to produce one.
type Outcome int

const (
	Solved Outcome = iota
	SkippedBudget     // MAX_SEARCH was reached before a solution was found
	SkippedNoSolution // the queue drained with no solution reachable
)

// Result is what Solve returns for one level.
type Result struct {
	Outcome Outcome
	Moves   []Move
	Visited int // number of distinct (crate layout, player zone) states expanded
}

// Config is the tunable surface of a single solve run.
type Config struct {
	UseHungarian bool
	MaxSearch    int
}

type queueItem struct {
	state *state.State
	g     int
	moves []Move
	seq   int // FIFO tie-break for equal f-values
	index int
}

type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	pi, pj := pq[i].g+pq[i].state.Heuristic, pq[j].g+pq[j].state.Heuristic
	if pi != pj {
		return pi < pj
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}
func (pq *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// Solve runs the A* driver to completion for one level and reports either
// a verified solution or why none was produced.
func Solve(lvl *level.Level, tables *zobrist.Tables, cfg Config) (Result, error) {
	heuristic := SelectHeuristic(cfg.UseHungarian)
	start := state.New(lvl, tables, heuristic)

	pq := &priorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &queueItem{state: start, g: 0, moves: nil, seq: seq})

	visited := make(map[uint64]bool)

	for pq.Len() > 0 {
		if len(visited) > cfg.MaxSearch {
			return Result{Outcome: SkippedBudget, Visited: len(visited)}, nil
		}

		item := heap.Pop(pq).(*queueItem)
		s := item.state

		if s.IsSolved() {
			if err := verify(lvl, tables, heuristic, item.moves); err != nil {
				return Result{}, err
			}
			return Result{Outcome: Solved, Moves: item.moves, Visited: len(visited)}, nil
		}

		candidates := ComputeMoves(s)
		h := s.HashWithPlayerZone()
		if visited[h] {
			continue
		}
		visited[h] = true

		for _, cand := range candidates {
			succ, ok := TryPush(s, cand.CrateIndex, cand.Dir, heuristic)
			if !ok {
				continue
			}
			macro := []Move{{CrateIndex: cand.CrateIndex, Dir: cand.Dir}}

			for {
				c := succ.Crates[cand.CrateIndex]
				_, isCut := lvl.Cuts[c.Key()]
				if !isCut || lvl.IsGoal(c) {
					break
				}
				perp1, perp2 := cand.Dir.Perp()
				if lvl.CellAt(c.Move(perp1)) != level.Wall || lvl.CellAt(c.Move(perp2)) != level.Wall {
					break
				}
				next, ok2 := TryPush(succ, cand.CrateIndex, cand.Dir, heuristic)
				if !ok2 {
					break
				}
				succ = next
				macro = append(macro, Move{CrateIndex: cand.CrateIndex, Dir: cand.Dir})
			}

			childMoves := make([]Move, 0, len(item.moves)+len(macro))
			childMoves = append(childMoves, item.moves...)
			childMoves = append(childMoves, macro...)

			seq++
			heap.Push(pq, &queueItem{
				state: succ,
				g:     item.g + len(macro),
				moves: childMoves,
				seq:   seq,
			})
		}
	}
	return Result{Outcome: SkippedNoSolution, Visited: len(visited)}, nil
}

// verify replays moves from a fresh initial state. A failure here is an
// internal bug, not a user error.
func verify(lvl *level.Level, tables *zobrist.Tables, heuristic Heuristic, moves []Move) error {
	s := state.New(lvl, tables, heuristic)
	for n, m := range moves {
		succ, ok := TryPush(s, m.CrateIndex, m.Dir, heuristic)
		if !ok {
			return fmt.Errorf("verification failed at move %d (crate %d, %s): push rejected", n, m.CrateIndex, m.Dir)
		}
		s = succ
	}
	if !s.IsSolved() {
		return fmt.Errorf("verification failed: replayed move list does not reach a solved state")
	}
	return nil
}
