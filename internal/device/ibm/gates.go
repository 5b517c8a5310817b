package ibm

import "github.com/nerrad567/qpudev-core/internal/topology"

// Native gate names shared by every IBM descriptor in this package.
const (
	GatePauliX     = "PauliX"
	GateRotateZ    = "RotateZ"
	GateSqrtPauliX = "SqrtPauliX"
	GateCNOT       = "CNOT"
)

func singleQubitGateNames() []string {
	return []string{GatePauliX, GateRotateZ, GateSqrtPauliX}
}

func twoQubitGateNames() []string {
	return []string{GateCNOT}
}

// Connectivity layouts. The five-qubit T layout is shared by Belem, Lima
// and Quito; the seven-qubit H layout by the Falcon r5.11H processors.
var (
	tLayout = topology.MustNew(5,
		topology.Edge{A: 0, B: 1},
		topology.Edge{A: 1, B: 2},
		topology.Edge{A: 1, B: 3},
		topology.Edge{A: 3, B: 4},
	)

	lineLayout = topology.MustNew(5,
		topology.Edge{A: 0, B: 1},
		topology.Edge{A: 1, B: 2},
		topology.Edge{A: 2, B: 3},
		topology.Edge{A: 3, B: 4},
	)

	hLayout = topology.MustNew(7,
		topology.Edge{A: 0, B: 1},
		topology.Edge{A: 1, B: 2},
		topology.Edge{A: 1, B: 3},
		topology.Edge{A: 3, B: 5},
		topology.Edge{A: 4, B: 5},
		topology.Edge{A: 5, B: 6},
	)
)
