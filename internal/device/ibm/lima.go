package ibm

import (
	"github.com/nerrad567/qpudev-core/internal/device"
	"github.com/nerrad567/qpudev-core/internal/topology"
)

// LimaDevice describes the five-qubit IBM Quantum Lima processor.
type LimaDevice struct {
	device.Store
}

// NewLimaDevice returns a Lima descriptor with default gate times.
func NewLimaDevice() *LimaDevice {
	d := &LimaDevice{Store: device.NewStore(tLayout.QubitCount())}
	device.MustPopulateDefaults(d, device.DefaultGateTime)
	return d
}

// Name returns "ibmq_lima".
func (d *LimaDevice) Name() string { return "ibmq_lima" }

func (d *LimaDevice) SingleQubitGateNames() []string { return singleQubitGateNames() }
func (d *LimaDevice) TwoQubitGateNames() []string    { return twoQubitGateNames() }
func (d *LimaDevice) TwoQubitEdges() []topology.Edge { return tLayout.Edges() }
func (d *LimaDevice) LongestChains() [][]int         { return tLayout.LongestChains() }
func (d *LimaDevice) LongestClosedChains() [][]int   { return tLayout.LongestClosedChains() }
