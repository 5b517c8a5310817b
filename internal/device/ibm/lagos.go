package ibm

import (
	"github.com/nerrad567/qpudev-core/internal/device"
	"github.com/nerrad567/qpudev-core/internal/topology"
)

// LagosDevice describes the seven-qubit IBM Quantum Lagos processor.
type LagosDevice struct {
	device.Store
}

// NewLagosDevice returns a Lagos descriptor with default gate times.
func NewLagosDevice() *LagosDevice {
	d := &LagosDevice{Store: device.NewStore(hLayout.QubitCount())}
	device.MustPopulateDefaults(d, device.DefaultGateTime)
	return d
}

// Name returns "ibm_lagos".
func (d *LagosDevice) Name() string { return "ibm_lagos" }

func (d *LagosDevice) SingleQubitGateNames() []string { return singleQubitGateNames() }
func (d *LagosDevice) TwoQubitGateNames() []string    { return twoQubitGateNames() }
func (d *LagosDevice) TwoQubitEdges() []topology.Edge { return hLayout.Edges() }
func (d *LagosDevice) LongestChains() [][]int         { return hLayout.LongestChains() }
func (d *LagosDevice) LongestClosedChains() [][]int   { return hLayout.LongestClosedChains() }
