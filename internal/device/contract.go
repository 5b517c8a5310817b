package device

import (
	"github.com/nerrad567/qpudev-core/internal/generic"
	"github.com/nerrad567/qpudev-core/internal/topology"
)

// Matrix is a 3×3 decoherence rate matrix.
type Matrix = generic.Matrix

// QubitPair is an ordered (control, target) qubit pair.
type QubitPair = generic.QubitPair

// Topology supplies the immutable facts of a hardware variant.
type Topology interface {
	// Name is the vendor's device name, for example "ibmq_belem".
	Name() string
	SingleQubitGateNames() []string
	TwoQubitGateNames() []string
	// TwoQubitEdges lists each undirected edge once.
	TwoQubitEdges() []topology.Edge
	LongestChains() [][]int
	LongestClosedChains() [][]int
}

// Querier is the read-only view of a device. Absent entries are reported
// through the boolean, never as errors.
type Querier interface {
	Topology

	QubitCount() int
	SingleQubitGateTime(gate string, qubit int) (float64, bool)
	TwoQubitGateTime(gate string, control, target int) (float64, bool)
	MultiQubitGateTime(gate string, qubits []int) (float64, bool)
	MultiQubitGateNames() []string
	QubitDecoherenceRates(qubit int) (Matrix, bool)
}

// Device is a hardware descriptor whose tables can be mutated through the
// package-level setters. The table accessors return the live maps; they
// exist for this package and should not be written to directly.
type Device interface {
	Querier

	SingleQubitGateTable() map[string]map[int]float64
	TwoQubitGateTable() map[string]map[QubitPair]float64
	DecoherenceTable() map[int]Matrix
}
