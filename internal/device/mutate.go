package device

import "fmt"

// ValidateSingleQubit checks that qubit is a valid index on d.
func ValidateSingleQubit(d Querier, qubit int) error {
	if qubit < 0 || qubit >= d.QubitCount() {
		return fmt.Errorf("%w: qubit %d on %s with %d qubits", ErrOutOfRange, qubit, d.Name(), d.QubitCount())
	}
	return nil
}

// ValidateTwoQubit checks that both qubits are valid indices on d and that
// they share an edge in either orientation.
func ValidateTwoQubit(d Querier, control, target int) error {
	if err := ValidateSingleQubit(d, control); err != nil {
		return err
	}
	if err := ValidateSingleQubit(d, target); err != nil {
		return err
	}
	for _, e := range d.TwoQubitEdges() {
		if e.Joins(control, target) {
			return nil
		}
	}
	return fmt.Errorf("%w: (%d, %d) on %s", ErrNotConnected, control, target, d.Name())
}

// ValidateNoiseQubit checks a qubit index for AddDamping and AddDephasing.
// Only indices strictly greater than the qubit count are rejected.
func ValidateNoiseQubit(d Querier, qubit int) error {
	if qubit < 0 || qubit > d.QubitCount() {
		return fmt.Errorf("%w: qubit %d on %s with %d qubits", ErrOutOfRange, qubit, d.Name(), d.QubitCount())
	}
	return nil
}

// SetSingleQubitGateTime sets the time of gate on qubit, creating the
// gate's table if needed.
func SetSingleQubitGateTime(d Device, gate string, qubit int, time float64) error {
	if err := ValidateSingleQubit(d, qubit); err != nil {
		return err
	}

	table := d.SingleQubitGateTable()
	times, ok := table[gate]
	if !ok {
		times = make(map[int]float64)
		table[gate] = times
	}
	times[qubit] = time
	return nil
}

// SetTwoQubitGateTime sets the time of gate in the direction
// (control, target) only. The reverse direction keeps whatever value it
// had, or stays absent.
func SetTwoQubitGateTime(d Device, gate string, control, target int, time float64) error {
	if err := ValidateTwoQubit(d, control, target); err != nil {
		return err
	}
	writeTwoQubit(d, gate, QubitPair{Control: control, Target: target}, time)
	return nil
}

// SetSymmetricTwoQubitGateTime sets the time of gate in both directions of
// the edge {a, b}. Either both directions are written or neither.
func SetSymmetricTwoQubitGateTime(d Device, gate string, a, b int, time float64) error {
	if err := ValidateTwoQubit(d, a, b); err != nil {
		return err
	}
	p := QubitPair{Control: a, Target: b}
	writeTwoQubit(d, gate, p, time)
	writeTwoQubit(d, gate, p.Reversed(), time)
	return nil
}

func writeTwoQubit(d Device, gate string, p QubitPair, time float64) {
	table := d.TwoQubitGateTable()
	times, ok := table[gate]
	if !ok {
		times = make(map[QubitPair]float64)
		table[gate] = times
	}
	times[p] = time
}

// AddDamping adds rate to entry [0][0] of qubit's decoherence matrix.
// qubit may equal QubitCount(); that entry is stored but ToGeneric only
// copies qubits below QubitCount(), so it never reaches a generic device.
func AddDamping(d Device, qubit int, rate float64) error {
	return addRates(d, qubit, Matrix{{rate, 0, 0}, {0, 0, 0}, {0, 0, 0}})
}

// AddDephasing adds rate to entry [2][2] of qubit's decoherence matrix.
// The qubit bound is the same as AddDamping's.
func AddDephasing(d Device, qubit int, rate float64) error {
	return addRates(d, qubit, Matrix{{0, 0, 0}, {0, 0, 0}, {0, 0, rate}})
}

func addRates(d Device, qubit int, rates Matrix) error {
	if err := ValidateNoiseQubit(d, qubit); err != nil {
		return err
	}
	table := d.DecoherenceTable()
	table[qubit] = table[qubit].Add(rates)
	return nil
}

// PopulateDefaults sets every native single-qubit gate on every qubit, and
// every native two-qubit gate on both directions of every edge, to time.
func PopulateDefaults(d Device, time float64) error {
	for _, gate := range d.SingleQubitGateNames() {
		for q := 0; q < d.QubitCount(); q++ {
			if err := SetSingleQubitGateTime(d, gate, q, time); err != nil {
				return err
			}
		}
	}
	for _, gate := range d.TwoQubitGateNames() {
		for _, e := range d.TwoQubitEdges() {
			if err := SetSymmetricTwoQubitGateTime(d, gate, e.A, e.B, time); err != nil {
				return err
			}
		}
	}
	return nil
}

// MustPopulateDefaults is like PopulateDefaults but panics on error. It is
// meant for constructors whose topology is fixed at compile time.
func MustPopulateDefaults(d Device, time float64) {
	if err := PopulateDefaults(d, time); err != nil {
		panic(err)
	}
}
