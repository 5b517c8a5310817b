// Package topology describes the qubit connectivity of a quantum device.
//
// A Graph is built once from an undirected edge list and is immutable
// afterwards. It answers connectivity queries and precomputes the chain
// structures routers use to place linear algorithms on hardware:
//
//   - LongestChains: every maximum-length simple path through the graph.
//   - LongestClosedChains: every maximum-length simple cycle, or, for
//     graphs without cycles (trees and paths, which covers the IBM Falcon
//     and Canary layouts), every edge as a directed round trip [a, b] and
//     [b, a].
//
// # Complexity
//
// Chain search enumerates simple paths by depth-first search and is
// exponential in the worst case. It runs once in New and is intended for
// device-sized graphs (tens of qubits with sparse connectivity).
//
// # Usage
//
//	g, err := topology.New(5,
//	    topology.Edge{A: 0, B: 1},
//	    topology.Edge{A: 1, B: 2},
//	)
//	if err != nil {
//	    return err
//	}
//	g.Connected(1, 0)     // true
//	g.LongestChains()     // [[0 1 2]]
//
// Graph is safe for concurrent use; every accessor returns a copy.
package topology
