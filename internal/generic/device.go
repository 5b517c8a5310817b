package generic

import (
	"fmt"
	"maps"
	"slices"
)

// Device is a vendor-neutral snapshot of a quantum device's capabilities.
//
// The exported tables are what is serialised; use the setters to keep qubit
// indices in range. A Device is not safe for concurrent mutation.
type Device struct {
	NumberQubits     int                              `json:"number_qubits"`
	SingleQubitGates map[string]map[int]float64       `json:"single_qubit_gates"`
	TwoQubitGates    map[string]map[QubitPair]float64 `json:"two_qubit_gates"`
	DecoherenceRates map[int]Matrix                   `json:"decoherence_rates"`
}

// New returns an empty generic device with the given number of qubits.
func New(numberQubits int) *Device {
	return &Device{
		NumberQubits:     numberQubits,
		SingleQubitGates: make(map[string]map[int]float64),
		TwoQubitGates:    make(map[string]map[QubitPair]float64),
		DecoherenceRates: make(map[int]Matrix),
	}
}

func (d *Device) checkQubit(qubit int) error {
	if qubit < 0 || qubit >= d.NumberQubits {
		return fmt.Errorf("%w: qubit %d, device has %d qubits", ErrOutOfRange, qubit, d.NumberQubits)
	}
	return nil
}

// SetSingleQubitGateTime sets the time of gate on qubit.
func (d *Device) SetSingleQubitGateTime(gate string, qubit int, time float64) error {
	if err := d.checkQubit(qubit); err != nil {
		return err
	}
	if d.SingleQubitGates == nil {
		d.SingleQubitGates = make(map[string]map[int]float64)
	}
	times, ok := d.SingleQubitGates[gate]
	if !ok {
		times = make(map[int]float64)
		d.SingleQubitGates[gate] = times
	}
	times[qubit] = time
	return nil
}

// SetTwoQubitGateTime sets the time of gate for the ordered pair (control, target).
// The reverse direction is left untouched.
func (d *Device) SetTwoQubitGateTime(gate string, control, target int, time float64) error {
	if err := d.checkQubit(control); err != nil {
		return err
	}
	if err := d.checkQubit(target); err != nil {
		return err
	}
	if d.TwoQubitGates == nil {
		d.TwoQubitGates = make(map[string]map[QubitPair]float64)
	}
	times, ok := d.TwoQubitGates[gate]
	if !ok {
		times = make(map[QubitPair]float64)
		d.TwoQubitGates[gate] = times
	}
	times[QubitPair{Control: control, Target: target}] = time
	return nil
}

// SetQubitDecoherenceRates replaces the decoherence matrix of qubit.
func (d *Device) SetQubitDecoherenceRates(qubit int, rates Matrix) error {
	if err := d.checkQubit(qubit); err != nil {
		return err
	}
	if d.DecoherenceRates == nil {
		d.DecoherenceRates = make(map[int]Matrix)
	}
	d.DecoherenceRates[qubit] = rates
	return nil
}

func (d *Device) addRates(qubit int, rates Matrix) error {
	if err := d.checkQubit(qubit); err != nil {
		return err
	}
	if d.DecoherenceRates == nil {
		d.DecoherenceRates = make(map[int]Matrix)
	}
	d.DecoherenceRates[qubit] = d.DecoherenceRates[qubit].Add(rates)
	return nil
}

// AddDamping adds rate to the damping entry [0][0] of qubit.
func (d *Device) AddDamping(qubit int, rate float64) error {
	return d.addRates(qubit, Matrix{{rate, 0, 0}, {0, 0, 0}, {0, 0, 0}})
}

// AddDephasing adds rate to the dephasing entry [2][2] of qubit.
func (d *Device) AddDephasing(qubit int, rate float64) error {
	return d.addRates(qubit, Matrix{{0, 0, 0}, {0, 0, 0}, {0, 0, rate}})
}

// AddDepolarising adds a depolarising channel of the given rate to qubit:
// rate/2 on [0][0] and [1][1], rate/4 on [2][2].
func (d *Device) AddDepolarising(qubit int, rate float64) error {
	return d.addRates(qubit, Matrix{{rate / 2, 0, 0}, {0, rate / 2, 0}, {0, 0, rate / 4}})
}

// QubitCount returns the number of qubits.
func (d *Device) QubitCount() int {
	return d.NumberQubits
}

// SingleQubitGateTime returns the time of gate on qubit, if set.
func (d *Device) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	t, ok := d.SingleQubitGates[gate][qubit]
	return t, ok
}

// TwoQubitGateTime returns the time of gate for the exact direction (control, target), if set.
func (d *Device) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	t, ok := d.TwoQubitGates[gate][QubitPair{Control: control, Target: target}]
	return t, ok
}

// MultiQubitGateTime always reports absence; generic devices carry no
// gates on more than two qubits.
func (d *Device) MultiQubitGateTime(string, []int) (float64, bool) {
	return 0, false
}

// SingleQubitGateNames returns the sorted single-qubit gate names.
func (d *Device) SingleQubitGateNames() []string {
	return slices.Sorted(maps.Keys(d.SingleQubitGates))
}

// TwoQubitGateNames returns the sorted two-qubit gate names.
func (d *Device) TwoQubitGateNames() []string {
	return slices.Sorted(maps.Keys(d.TwoQubitGates))
}

// MultiQubitGateNames always returns an empty list.
func (d *Device) MultiQubitGateNames() []string {
	return []string{}
}

// QubitDecoherenceRates returns the decoherence matrix of qubit, if present.
func (d *Device) QubitDecoherenceRates(qubit int) (Matrix, bool) {
	m, ok := d.DecoherenceRates[qubit]
	return m, ok
}

// TwoQubitEdges returns every qubit pair that has a time under any two-qubit
// gate, as unordered edges with the lower index first, sorted.
func (d *Device) TwoQubitEdges() []QubitPair {
	seen := make(map[QubitPair]struct{})
	for _, times := range d.TwoQubitGates {
		for p := range times {
			if p.Control > p.Target {
				p = p.Reversed()
			}
			seen[p] = struct{}{}
		}
	}
	edges := slices.Collect(maps.Keys(seen))
	slices.SortFunc(edges, func(a, b QubitPair) int {
		if a.Control != b.Control {
			return a.Control - b.Control
		}
		return a.Target - b.Target
	})
	return edges
}

// Validate checks that every stored qubit index is within range. It is
// meant for devices decoded from JSON, which bypass the setters.
func (d *Device) Validate() error {
	if d.NumberQubits < 0 {
		return fmt.Errorf("%w: negative qubit count %d", ErrOutOfRange, d.NumberQubits)
	}
	for gate, times := range d.SingleQubitGates {
		for q := range times {
			if err := d.checkQubit(q); err != nil {
				return fmt.Errorf("single-qubit gate %s: %w", gate, err)
			}
		}
	}
	for gate, times := range d.TwoQubitGates {
		for p := range times {
			if err := d.checkQubit(p.Control); err != nil {
				return fmt.Errorf("two-qubit gate %s: %w", gate, err)
			}
			if err := d.checkQubit(p.Target); err != nil {
				return fmt.Errorf("two-qubit gate %s: %w", gate, err)
			}
		}
	}
	for q := range d.DecoherenceRates {
		if err := d.checkQubit(q); err != nil {
			return fmt.Errorf("decoherence rates: %w", err)
		}
	}
	return nil
}

// Clone returns a deep copy of the device.
func (d *Device) Clone() *Device {
	out := New(d.NumberQubits)
	for gate, times := range d.SingleQubitGates {
		out.SingleQubitGates[gate] = maps.Clone(times)
	}
	for gate, times := range d.TwoQubitGates {
		out.TwoQubitGates[gate] = maps.Clone(times)
	}
	maps.Copy(out.DecoherenceRates, d.DecoherenceRates)
	return out
}
