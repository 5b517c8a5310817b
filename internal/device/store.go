package device

import (
	"encoding/json"
	"fmt"
)

// DefaultGateTime is the unit gate time descriptors are populated with at construction.
const DefaultGateTime = 1.0

// Store holds the mutable capability tables of one device. Concrete
// descriptors embed it and add their topology.
//
// The zero value is usable once its qubit count has been set by NewStore
// or by decoding JSON.
type Store struct {
	qubits      int
	single      map[string]map[int]float64
	two         map[string]map[QubitPair]float64
	decoherence map[int]Matrix
}

// NewStore returns an empty store for a device with the given number of qubits.
func NewStore(qubits int) Store {
	return Store{
		qubits:      qubits,
		single:      make(map[string]map[int]float64),
		two:         make(map[string]map[QubitPair]float64),
		decoherence: make(map[int]Matrix),
	}
}

// QubitCount returns the number of qubits. It never changes after construction.
func (s *Store) QubitCount() int {
	return s.qubits
}

// SingleQubitGateTime returns the time of gate on qubit, if set.
func (s *Store) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	t, ok := s.single[gate][qubit]
	return t, ok
}

// TwoQubitGateTime returns the time of gate in the exact direction
// (control, target), if set.
func (s *Store) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	t, ok := s.two[gate][QubitPair{Control: control, Target: target}]
	return t, ok
}

// MultiQubitGateTime always reports absence.
func (s *Store) MultiQubitGateTime(string, []int) (float64, bool) {
	return 0, false
}

// MultiQubitGateNames always returns an empty list.
func (s *Store) MultiQubitGateNames() []string {
	return []string{}
}

// QubitDecoherenceRates returns the accumulated decoherence matrix of qubit, if any.
func (s *Store) QubitDecoherenceRates(qubit int) (Matrix, bool) {
	m, ok := s.decoherence[qubit]
	return m, ok
}

// SingleQubitGateTable returns the live single-qubit table.
func (s *Store) SingleQubitGateTable() map[string]map[int]float64 {
	if s.single == nil {
		s.single = make(map[string]map[int]float64)
	}
	return s.single
}

// TwoQubitGateTable returns the live two-qubit table.
func (s *Store) TwoQubitGateTable() map[string]map[QubitPair]float64 {
	if s.two == nil {
		s.two = make(map[string]map[QubitPair]float64)
	}
	return s.two
}

// DecoherenceTable returns the live decoherence table.
func (s *Store) DecoherenceTable() map[int]Matrix {
	if s.decoherence == nil {
		s.decoherence = make(map[int]Matrix)
	}
	return s.decoherence
}

type storeJSON struct {
	NumberQubits     int                              `json:"number_qubits"`
	SingleQubitGates map[string]map[int]float64       `json:"single_qubit_gates"`
	TwoQubitGates    map[string]map[QubitPair]float64 `json:"two_qubit_gates"`
	DecoherenceRates map[int]Matrix                   `json:"decoherence_rates"`
}

// MarshalJSON implements json.Marshaler.
func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(storeJSON{
		NumberQubits:     s.qubits,
		SingleQubitGates: s.SingleQubitGateTable(),
		TwoQubitGates:    s.TwoQubitGateTable(),
		DecoherenceRates: s.DecoherenceTable(),
	})
}

// UnmarshalJSON implements json.Unmarshaler. It replaces every table.
func (s *Store) UnmarshalJSON(data []byte) error {
	var raw storeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("device: decoding store: %w", err)
	}
	if raw.NumberQubits < 0 {
		return fmt.Errorf("device: decoding store: %w: negative qubit count %d", ErrOutOfRange, raw.NumberQubits)
	}

	s.qubits = raw.NumberQubits
	s.single = raw.SingleQubitGates
	s.two = raw.TwoQubitGates
	s.decoherence = raw.DecoherenceRates
	return nil
}
