package ibm

import (
	"github.com/nerrad567/qpudev-core/internal/device"
	"github.com/nerrad567/qpudev-core/internal/topology"
)

// QuitoDevice describes the five-qubit IBM Quantum Quito processor.
type QuitoDevice struct {
	device.Store
}

// NewQuitoDevice returns a Quito descriptor with default gate times.
func NewQuitoDevice() *QuitoDevice {
	d := &QuitoDevice{Store: device.NewStore(tLayout.QubitCount())}
	device.MustPopulateDefaults(d, device.DefaultGateTime)
	return d
}

// Name returns "ibmq_quito".
func (d *QuitoDevice) Name() string { return "ibmq_quito" }

func (d *QuitoDevice) SingleQubitGateNames() []string { return singleQubitGateNames() }
func (d *QuitoDevice) TwoQubitGateNames() []string    { return twoQubitGateNames() }
func (d *QuitoDevice) TwoQubitEdges() []topology.Edge { return tLayout.Edges() }
func (d *QuitoDevice) LongestChains() [][]int         { return tLayout.LongestChains() }
func (d *QuitoDevice) LongestClosedChains() [][]int   { return tLayout.LongestClosedChains() }
