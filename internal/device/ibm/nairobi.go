package ibm

import (
	"github.com/nerrad567/qpudev-core/internal/device"
	"github.com/nerrad567/qpudev-core/internal/topology"
)

// NairobiDevice describes the seven-qubit IBM Quantum Nairobi processor.
type NairobiDevice struct {
	device.Store
}

// NewNairobiDevice returns a Nairobi descriptor with default gate times.
func NewNairobiDevice() *NairobiDevice {
	d := &NairobiDevice{Store: device.NewStore(hLayout.QubitCount())}
	device.MustPopulateDefaults(d, device.DefaultGateTime)
	return d
}

// Name returns "ibm_nairobi".
func (d *NairobiDevice) Name() string { return "ibm_nairobi" }

func (d *NairobiDevice) SingleQubitGateNames() []string { return singleQubitGateNames() }
func (d *NairobiDevice) TwoQubitGateNames() []string    { return twoQubitGateNames() }
func (d *NairobiDevice) TwoQubitEdges() []topology.Edge { return hLayout.Edges() }
func (d *NairobiDevice) LongestChains() [][]int         { return hLayout.LongestChains() }
func (d *NairobiDevice) LongestClosedChains() [][]int   { return hLayout.LongestClosedChains() }
