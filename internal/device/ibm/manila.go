package ibm

import (
	"github.com/nerrad567/qpudev-core/internal/device"
	"github.com/nerrad567/qpudev-core/internal/topology"
)

// ManilaDevice describes the five-qubit IBM Quantum Manila processor, a linear chain.
type ManilaDevice struct {
	device.Store
}

// NewManilaDevice returns a Manila descriptor with default gate times.
func NewManilaDevice() *ManilaDevice {
	d := &ManilaDevice{Store: device.NewStore(lineLayout.QubitCount())}
	device.MustPopulateDefaults(d, device.DefaultGateTime)
	return d
}

// Name returns "ibmq_manila".
func (d *ManilaDevice) Name() string { return "ibmq_manila" }

func (d *ManilaDevice) SingleQubitGateNames() []string { return singleQubitGateNames() }
func (d *ManilaDevice) TwoQubitGateNames() []string    { return twoQubitGateNames() }
func (d *ManilaDevice) TwoQubitEdges() []topology.Edge { return lineLayout.Edges() }
func (d *ManilaDevice) LongestChains() [][]int         { return lineLayout.LongestChains() }
func (d *ManilaDevice) LongestClosedChains() [][]int   { return lineLayout.LongestClosedChains() }
