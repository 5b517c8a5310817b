package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tShape(t *testing.T) *Graph {
	t.Helper()
	g, err := New(5, Edge{0, 1}, Edge{1, 2}, Edge{1, 3}, Edge{3, 4})
	require.NoError(t, err)
	return g
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		qubits  int
		edges   []Edge
		wantErr error
	}{
		{name: "negative qubits", qubits: -1, wantErr: ErrInvalidQubitCount},
		{name: "self loop", qubits: 2, edges: []Edge{{0, 0}}, wantErr: ErrInvalidEdge},
		{name: "endpoint out of range", qubits: 2, edges: []Edge{{0, 2}}, wantErr: ErrInvalidEdge},
		{name: "negative endpoint", qubits: 2, edges: []Edge{{-1, 1}}, wantErr: ErrInvalidEdge},
		{name: "duplicate", qubits: 3, edges: []Edge{{0, 1}, {0, 1}}, wantErr: ErrDuplicateEdge},
		{name: "duplicate reversed", qubits: 3, edges: []Edge{{0, 1}, {1, 0}}, wantErr: ErrDuplicateEdge},
		{name: "empty graph", qubits: 0},
		{name: "valid", qubits: 3, edges: []Edge{{0, 1}, {2, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.qubits, tt.edges...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.qubits, g.QubitCount())
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew(2, Edge{1, 1}) })
	assert.NotPanics(t, func() { MustNew(2, Edge{0, 1}) })
}

func TestGraph_Connected(t *testing.T) {
	g := tShape(t)

	assert.True(t, g.Connected(0, 1))
	assert.True(t, g.Connected(1, 0), "edges are undirected")
	assert.True(t, g.Connected(4, 3))
	assert.False(t, g.Connected(0, 2))
	assert.False(t, g.Connected(2, 0))
	assert.False(t, g.Connected(-1, 0))
	assert.False(t, g.Connected(0, 5))
	assert.False(t, g.Connected(5, 0))
}

func TestGraph_EdgesKeepDeclarationOrder(t *testing.T) {
	g := MustNew(3, Edge{2, 1}, Edge{0, 1})
	assert.Equal(t, []Edge{{2, 1}, {0, 1}}, g.Edges())
}

func TestGraph_Neighbours(t *testing.T) {
	g := tShape(t)

	assert.Equal(t, []int{0, 2, 3}, g.Neighbours(1))
	assert.Equal(t, []int{3}, g.Neighbours(4))
	assert.Nil(t, g.Neighbours(9))
}

func TestGraph_LongestChains(t *testing.T) {
	tests := []struct {
		name  string
		graph *Graph
		want  [][]int
	}{
		{
			name:  "t-shape",
			graph: MustNew(5, Edge{0, 1}, Edge{1, 2}, Edge{1, 3}, Edge{3, 4}),
			want:  [][]int{{0, 1, 3, 4}, {2, 1, 3, 4}},
		},
		{
			name:  "line",
			graph: MustNew(5, Edge{0, 1}, Edge{1, 2}, Edge{2, 3}, Edge{3, 4}),
			want:  [][]int{{0, 1, 2, 3, 4}},
		},
		{
			name:  "h-shape",
			graph: MustNew(7, Edge{0, 1}, Edge{1, 2}, Edge{1, 3}, Edge{3, 5}, Edge{4, 5}, Edge{5, 6}),
			want:  [][]int{{0, 1, 3, 5, 4}, {0, 1, 3, 5, 6}, {2, 1, 3, 5, 4}, {2, 1, 3, 5, 6}},
		},
		{
			name:  "triangle",
			graph: MustNew(3, Edge{0, 1}, Edge{1, 2}, Edge{2, 0}),
			want:  [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}},
		},
		{
			name:  "no edges",
			graph: MustNew(3),
			want:  [][]int{{0}, {1}, {2}},
		},
		{
			name:  "no qubits",
			graph: MustNew(0),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.graph.LongestChains())
		})
	}
}

func TestGraph_LongestChainsAreWalkable(t *testing.T) {
	g := MustNew(7, Edge{0, 1}, Edge{1, 2}, Edge{1, 3}, Edge{3, 5}, Edge{4, 5}, Edge{5, 6})

	for _, chain := range g.LongestChains() {
		seen := make(map[int]bool, len(chain))
		for i, q := range chain {
			assert.False(t, seen[q], "chain %v revisits qubit %d", chain, q)
			seen[q] = true
			if i > 0 {
				assert.True(t, g.Connected(chain[i-1], q), "chain %v uses a missing edge", chain)
			}
		}
	}
}

func TestGraph_LongestClosedChains(t *testing.T) {
	tests := []struct {
		name  string
		graph *Graph
		want  [][]int
	}{
		{
			name:  "tree gives round trips",
			graph: MustNew(5, Edge{0, 1}, Edge{1, 2}, Edge{1, 3}, Edge{3, 4}),
			want:  [][]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {1, 3}, {3, 1}, {3, 4}, {4, 3}},
		},
		{
			name:  "triangle",
			graph: MustNew(3, Edge{0, 1}, Edge{1, 2}, Edge{2, 0}),
			want:  [][]int{{0, 1, 2}},
		},
		{
			name:  "square with chord",
			graph: MustNew(4, Edge{0, 1}, Edge{1, 2}, Edge{2, 3}, Edge{3, 0}, Edge{0, 2}),
			want:  [][]int{{0, 1, 2, 3}},
		},
		{
			name:  "two squares sharing an edge",
			graph: MustNew(6, Edge{0, 1}, Edge{1, 2}, Edge{2, 3}, Edge{3, 0}, Edge{2, 4}, Edge{4, 5}, Edge{5, 3}),
			want:  [][]int{{0, 1, 2, 4, 5, 3}},
		},
		{
			name:  "no edges",
			graph: MustNew(2),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.graph.LongestClosedChains())
		})
	}
}

func TestGraph_ClosedChainEndsAreConnected(t *testing.T) {
	for _, g := range []*Graph{
		tShape(t),
		MustNew(4, Edge{0, 1}, Edge{1, 2}, Edge{2, 3}, Edge{3, 0}),
	} {
		for _, chain := range g.LongestClosedChains() {
			require.GreaterOrEqual(t, len(chain), 2)
			assert.True(t, g.Connected(chain[0], chain[len(chain)-1]), "chain %v is not closed", chain)
		}
	}
}

func TestGraph_AccessorsReturnCopies(t *testing.T) {
	g := tShape(t)

	chains := g.LongestChains()
	chains[0][0] = 99
	assert.Equal(t, 0, g.LongestChains()[0][0])

	closed := g.LongestClosedChains()
	closed[0][1] = 99
	assert.Equal(t, 1, g.LongestClosedChains()[0][1])

	edges := g.Edges()
	edges[0] = Edge{4, 4}
	assert.Equal(t, Edge{0, 1}, g.Edges()[0])

	nbrs := g.Neighbours(1)
	nbrs[0] = 99
	assert.Equal(t, []int{0, 2, 3}, g.Neighbours(1))
}

func TestEdge_Joins(t *testing.T) {
	e := Edge{A: 2, B: 5}
	assert.True(t, e.Joins(2, 5))
	assert.True(t, e.Joins(5, 2))
	assert.False(t, e.Joins(2, 2))
	assert.Equal(t, Edge{A: 5, B: 2}, e.Reversed())
}
