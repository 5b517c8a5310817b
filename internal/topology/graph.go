package topology

import (
	"fmt"
	"slices"
)

// Edge is an undirected connection between two qubits. The orientation an
// edge is declared in is kept for listing and carries no other meaning.
type Edge struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Reversed returns the edge with its endpoints swapped.
func (e Edge) Reversed() Edge {
	return Edge{A: e.B, B: e.A}
}

// Joins reports whether the edge connects a and b in either orientation.
func (e Edge) Joins(a, b int) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}

// canonical returns the orientation with the smaller endpoint first.
func (e Edge) canonical() Edge {
	if e.A > e.B {
		return e.Reversed()
	}
	return e
}

// Graph is an immutable undirected connectivity graph over qubits 0..n-1.
type Graph struct {
	qubits int
	edges  []Edge
	adj    [][]int // sorted neighbour lists, indexed by qubit

	chains       [][]int
	closedChains [][]int
}

// New builds a graph over qubits 0..qubits-1 from an undirected edge list.
//
// Edges must join two distinct in-range qubits and may appear only once
// in either orientation. Chain structures are computed eagerly.
func New(qubits int, edges ...Edge) (*Graph, error) {
	if qubits < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQubitCount, qubits)
	}

	g := &Graph{
		qubits: qubits,
		edges:  make([]Edge, 0, len(edges)),
		adj:    make([][]int, qubits),
	}

	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if e.A == e.B || e.A < 0 || e.B < 0 || e.A >= qubits || e.B >= qubits {
			return nil, fmt.Errorf("%w: (%d, %d) on a %d-qubit device", ErrInvalidEdge, e.A, e.B, qubits)
		}
		key := e.canonical()
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrDuplicateEdge, e.A, e.B)
		}
		seen[key] = struct{}{}

		g.edges = append(g.edges, e)
		g.adj[e.A] = append(g.adj[e.A], e.B)
		g.adj[e.B] = append(g.adj[e.B], e.A)
	}
	for _, nbrs := range g.adj {
		slices.Sort(nbrs)
	}

	g.chains = g.searchChains()
	g.closedChains = g.searchClosedChains()

	return g, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// device layouts that are fixed at compile time.
func MustNew(qubits int, edges ...Edge) *Graph {
	g, err := New(qubits, edges...)
	if err != nil {
		panic(err)
	}
	return g
}

// QubitCount returns the number of qubits in the graph.
func (g *Graph) QubitCount() int {
	return g.qubits
}

// Edges returns the edge list in declaration order, each edge once.
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// Connected reports whether a and b share an edge, in either orientation.
// Out-of-range qubits are never connected.
func (g *Graph) Connected(a, b int) bool {
	if a < 0 || a >= g.qubits {
		return false
	}
	_, found := slices.BinarySearch(g.adj[a], b)
	return found
}

// Neighbours returns the sorted neighbours of qubit q, or nil if q is out of range.
func (g *Graph) Neighbours(q int) []int {
	if q < 0 || q >= g.qubits {
		return nil
	}
	return slices.Clone(g.adj[q])
}

// LongestChains returns every maximum-length simple path, each listed once
// with the smaller endpoint first, in lexicographic order. A graph without
// edges yields one single-qubit chain per qubit.
func (g *Graph) LongestChains() [][]int {
	return cloneChains(g.chains)
}

// LongestClosedChains returns every maximum-length simple cycle without
// the closing repeat, rotated to start at its smallest qubit. When the
// graph has no cycle, each edge is returned as the round trips [a, b] and
// [b, a] in declaration order.
func (g *Graph) LongestClosedChains() [][]int {
	return cloneChains(g.closedChains)
}

func cloneChains(chains [][]int) [][]int {
	if chains == nil {
		return nil
	}
	out := make([][]int, len(chains))
	for i, c := range chains {
		out[i] = slices.Clone(c)
	}
	return out
}
