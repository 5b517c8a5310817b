package device

import (
	"fmt"

	"github.com/nerrad567/qpudev-core/internal/generic"
)

// ToGeneric copies the capabilities of d into a new generic device.
//
// Only native gate names are copied. Every edge is probed in both
// directions and each direction is copied only if present. Decoherence
// matrices are copied for qubits 0..QubitCount()-1. Multi-qubit gates are
// never copied. The first error aborts the conversion and no device is
// returned.
func ToGeneric(d Querier) (*generic.Device, error) {
	n := d.QubitCount()
	g := generic.New(n)

	for _, gate := range d.SingleQubitGateNames() {
		for q := 0; q < n; q++ {
			t, ok := d.SingleQubitGateTime(gate, q)
			if !ok {
				continue
			}
			if err := g.SetSingleQubitGateTime(gate, q, t); err != nil {
				return nil, fmt.Errorf("device: converting %s: %w", d.Name(), err)
			}
		}
	}

	for _, gate := range d.TwoQubitGateNames() {
		for _, e := range d.TwoQubitEdges() {
			for _, p := range [2]QubitPair{{Control: e.A, Target: e.B}, {Control: e.B, Target: e.A}} {
				t, ok := d.TwoQubitGateTime(gate, p.Control, p.Target)
				if !ok {
					continue
				}
				if err := g.SetTwoQubitGateTime(gate, p.Control, p.Target, t); err != nil {
					return nil, fmt.Errorf("device: converting %s: %w", d.Name(), err)
				}
			}
		}
	}

	for q := 0; q < n; q++ {
		m, ok := d.QubitDecoherenceRates(q)
		if !ok {
			continue
		}
		if err := g.SetQubitDecoherenceRates(q, m); err != nil {
			return nil, fmt.Errorf("device: converting %s: %w", d.Name(), err)
		}
	}

	return g, nil
}
