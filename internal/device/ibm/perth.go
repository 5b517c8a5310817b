package ibm

import (
	"github.com/nerrad567/qpudev-core/internal/device"
	"github.com/nerrad567/qpudev-core/internal/topology"
)

// PerthDevice describes the seven-qubit IBM Quantum Perth processor.
type PerthDevice struct {
	device.Store
}

// NewPerthDevice returns a Perth descriptor with default gate times.
func NewPerthDevice() *PerthDevice {
	d := &PerthDevice{Store: device.NewStore(hLayout.QubitCount())}
	device.MustPopulateDefaults(d, device.DefaultGateTime)
	return d
}

// Name returns "ibm_perth".
func (d *PerthDevice) Name() string { return "ibm_perth" }

func (d *PerthDevice) SingleQubitGateNames() []string { return singleQubitGateNames() }
func (d *PerthDevice) TwoQubitGateNames() []string    { return twoQubitGateNames() }
func (d *PerthDevice) TwoQubitEdges() []topology.Edge { return hLayout.Edges() }
func (d *PerthDevice) LongestChains() [][]int         { return hLayout.LongestChains() }
func (d *PerthDevice) LongestClosedChains() [][]int   { return hLayout.LongestClosedChains() }
