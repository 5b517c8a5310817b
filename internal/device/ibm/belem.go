package ibm

import (
	"github.com/nerrad567/qpudev-core/internal/device"
	"github.com/nerrad567/qpudev-core/internal/topology"
)

// BelemDevice describes the five-qubit IBM Quantum Belem processor.
type BelemDevice struct {
	device.Store
}

// NewBelemDevice returns a Belem descriptor with default gate times.
func NewBelemDevice() *BelemDevice {
	d := &BelemDevice{Store: device.NewStore(tLayout.QubitCount())}
	device.MustPopulateDefaults(d, device.DefaultGateTime)
	return d
}

// Name returns "ibmq_belem".
func (d *BelemDevice) Name() string { return "ibmq_belem" }

func (d *BelemDevice) SingleQubitGateNames() []string { return singleQubitGateNames() }
func (d *BelemDevice) TwoQubitGateNames() []string    { return twoQubitGateNames() }
func (d *BelemDevice) TwoQubitEdges() []topology.Edge { return tLayout.Edges() }
func (d *BelemDevice) LongestChains() [][]int         { return tLayout.LongestChains() }
func (d *BelemDevice) LongestClosedChains() [][]int   { return tLayout.LongestClosedChains() }
