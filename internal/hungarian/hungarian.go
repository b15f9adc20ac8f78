// Package hungarian solves the minimum-weight perfect bipartite matching
// problem (the assignment problem) used by the Hungarian heuristic in spec
// section 4.6: given an n x n cost matrix, find the permutation of columns
// minimizing the sum of selected costs.
//
// No packaged Hungarian/assignment solver exists anywhere in the retrieved
// examples, so the algorithm itself is hand-written (the classical
// O(n^3) potential-based shortest-augmenting-path method). The cost matrix
// is still carried in a gonum.org/v1/gonum/mat.Dense rather than a plain
// [][]float64, grounding the dependency on gonum appearing across the
// example pack (e.g. other_examples/manifests/leesander1-gonum) even though
// this package only needs its dense storage, not its graph or optimization
// routines.
package hungarian

import "gonum.org/v1/gonum/mat"

// MinCostAssignment returns the total cost of the minimum-weight perfect
// matching of an n x n cost matrix. cost must be square; a ragged or empty
// matrix returns 0.
func MinCostAssignment(cost [][]int) int {
	n := len(cost)
	if n == 0 {
		return 0
	}
	for _, row := range cost {
		if len(row) != n {
			return 0
		}
	}

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, float64(cost[i][j]))
		}
	}

	const inf = 1 << 30

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = row currently matched to column j (1-indexed), 0 = unmatched
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for k := range minv {
			minv[k] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := float64(inf)
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := a.At(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	total := 0
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			total += cost[p[j]-1][j-1]
		}
	}
	return total
}
