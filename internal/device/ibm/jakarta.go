package ibm

import (
	"github.com/nerrad567/qpudev-core/internal/device"
	"github.com/nerrad567/qpudev-core/internal/topology"
)

// JakartaDevice describes the seven-qubit IBM Quantum Jakarta processor.
type JakartaDevice struct {
	device.Store
}

// NewJakartaDevice returns a Jakarta descriptor with default gate times.
func NewJakartaDevice() *JakartaDevice {
	d := &JakartaDevice{Store: device.NewStore(hLayout.QubitCount())}
	device.MustPopulateDefaults(d, device.DefaultGateTime)
	return d
}

// Name returns "ibmq_jakarta".
func (d *JakartaDevice) Name() string { return "ibmq_jakarta" }

func (d *JakartaDevice) SingleQubitGateNames() []string { return singleQubitGateNames() }
func (d *JakartaDevice) TwoQubitGateNames() []string    { return twoQubitGateNames() }
func (d *JakartaDevice) TwoQubitEdges() []topology.Edge { return hLayout.Edges() }
func (d *JakartaDevice) LongestChains() [][]int         { return hLayout.LongestChains() }
func (d *JakartaDevice) LongestClosedChains() [][]int   { return hLayout.LongestClosedChains() }
