package topology

import "slices"

// searchChains enumerates maximal simple paths by depth-first search and
// keeps those of maximum length. Every path is reached once from each
// endpoint; only the orientation starting at the smaller endpoint is kept.
func (g *Graph) searchChains() [][]int {
	if g.qubits == 0 {
		return nil
	}

	var (
		best    [][]int
		bestLen int
		visited = make([]bool, g.qubits)
		path    = make([]int, 0, g.qubits)
	)

	var visit func(q int)
	visit = func(q int) {
		visited[q] = true
		path = append(path, q)

		extended := false
		for _, n := range g.adj[q] {
			if !visited[n] {
				extended = true
				visit(n)
			}
		}

		if !extended && path[0] <= path[len(path)-1] {
			switch {
			case len(path) > bestLen:
				bestLen = len(path)
				best = [][]int{slices.Clone(path)}
			case len(path) == bestLen:
				best = append(best, slices.Clone(path))
			}
		}

		path = path[:len(path)-1]
		visited[q] = false
	}

	for q := 0; q < g.qubits; q++ {
		visit(q)
	}

	sortChains(best)
	return best
}

// searchClosedChains enumerates simple cycles of three or more qubits.
// A cycle is only walked from its smallest qubit and only in the direction
// whose second qubit is smaller than its last, so each is recorded once.
func (g *Graph) searchClosedChains() [][]int {
	var (
		best    [][]int
		bestLen int
		visited = make([]bool, g.qubits)
		path    = make([]int, 0, g.qubits)
	)

	var visit func(start, q int)
	visit = func(start, q int) {
		visited[q] = true
		path = append(path, q)

		for _, n := range g.adj[q] {
			switch {
			case n == start && len(path) >= 3 && path[1] < path[len(path)-1]:
				switch {
				case len(path) > bestLen:
					bestLen = len(path)
					best = [][]int{slices.Clone(path)}
				case len(path) == bestLen:
					best = append(best, slices.Clone(path))
				}
			case n > start && !visited[n]:
				visit(start, n)
			}
		}

		path = path[:len(path)-1]
		visited[q] = false
	}

	for s := 0; s < g.qubits; s++ {
		visit(s, s)
	}

	if len(best) == 0 {
		return g.roundTrips()
	}

	sortChains(best)
	return best
}

// roundTrips lists each edge as [a, b] followed by [b, a].
func (g *Graph) roundTrips() [][]int {
	if len(g.edges) == 0 {
		return nil
	}
	trips := make([][]int, 0, 2*len(g.edges))
	for _, e := range g.edges {
		trips = append(trips, []int{e.A, e.B}, []int{e.B, e.A})
	}
	return trips
}

func sortChains(chains [][]int) {
	slices.SortFunc(chains, func(a, b []int) int {
		return slices.Compare(a, b)
	})
}
