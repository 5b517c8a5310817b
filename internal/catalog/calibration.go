package catalog

import (
	"fmt"
	"math"

	"github.com/nerrad567/qpudev-core/internal/device"
)

// Calibration kinds, used in error positions and metric labels.
const (
	KindSingleQubitGates = "single_qubit_gates"
	KindTwoQubitGates    = "two_qubit_gates"
	KindDamping          = "damping"
	KindDephasing        = "dephasing"
)

// GateTime overrides one single-qubit gate time.
type GateTime struct {
	Gate  string  `json:"gate"`
	Qubit int     `json:"qubit"`
	Time  float64 `json:"time"`
}

// PairGateTime overrides one two-qubit gate time. With Symmetric set, the
// reverse direction receives the same time.
type PairGateTime struct {
	Gate      string  `json:"gate"`
	Control   int     `json:"control"`
	Target    int     `json:"target"`
	Time      float64 `json:"time"`
	Symmetric bool    `json:"symmetric"`
}

// QubitRate is a decoherence contribution for one qubit.
type QubitRate struct {
	Qubit int     `json:"qubit"`
	Rate  float64 `json:"rate"`
}

// Calibration is a batch of overrides applied to one device. Damping and
// dephasing add to the existing rates; gate times overwrite.
type Calibration struct {
	SingleQubitGates []GateTime     `json:"single_qubit_gates"`
	TwoQubitGates    []PairGateTime `json:"two_qubit_gates"`
	Damping          []QubitRate    `json:"damping"`
	Dephasing        []QubitRate    `json:"dephasing"`
}

// Len returns the number of entries in c.
func (c Calibration) Len() int {
	return len(c.SingleQubitGates) + len(c.TwoQubitGates) + len(c.Damping) + len(c.Dephasing)
}

// Calibrate validates every entry of c against the named device and then
// applies them under the write lock. If any entry is invalid nothing is
// applied and the error names the first failing entry.
func (r *Registry) Calibrate(name string, c Calibration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.devices[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, name)
	}

	if err := validateCalibration(d, c); err != nil {
		return err
	}
	if err := applyCalibration(d, c); err != nil {
		return err
	}

	r.sinksMu.RLock()
	m, logger := r.metrics, r.logger
	r.sinksMu.RUnlock()

	m.observeCalibration(name, KindSingleQubitGates, len(c.SingleQubitGates))
	m.observeCalibration(name, KindTwoQubitGates, len(c.TwoQubitGates))
	m.observeCalibration(name, KindDamping, len(c.Damping))
	m.observeCalibration(name, KindDephasing, len(c.Dephasing))

	logger.Info("calibration applied", "device", name, "entries", c.Len())
	return nil
}

func invalid(kind string, i int, err error) error {
	return fmt.Errorf("%w: %s[%d]: %w", ErrInvalidCalibration, kind, i, err)
}

func checkValue(v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("value %v must be finite and non-negative", v)
	}
	return nil
}

func validateCalibration(d device.Device, c Calibration) error {
	for i, e := range c.SingleQubitGates {
		if e.Gate == "" {
			return invalid(KindSingleQubitGates, i, fmt.Errorf("empty gate name"))
		}
		if err := checkValue(e.Time); err != nil {
			return invalid(KindSingleQubitGates, i, err)
		}
		if err := device.ValidateSingleQubit(d, e.Qubit); err != nil {
			return invalid(KindSingleQubitGates, i, err)
		}
	}
	for i, e := range c.TwoQubitGates {
		if e.Gate == "" {
			return invalid(KindTwoQubitGates, i, fmt.Errorf("empty gate name"))
		}
		if err := checkValue(e.Time); err != nil {
			return invalid(KindTwoQubitGates, i, err)
		}
		if err := device.ValidateTwoQubit(d, e.Control, e.Target); err != nil {
			return invalid(KindTwoQubitGates, i, err)
		}
	}
	if err := validateRates(d, KindDamping, c.Damping); err != nil {
		return err
	}
	return validateRates(d, KindDephasing, c.Dephasing)
}

func validateRates(d device.Device, kind string, rates []QubitRate) error {
	for i, e := range rates {
		if err := checkValue(e.Rate); err != nil {
			return invalid(kind, i, err)
		}
		if err := device.ValidateNoiseQubit(d, e.Qubit); err != nil {
			return invalid(kind, i, err)
		}
	}
	return nil
}

func applyCalibration(d device.Device, c Calibration) error {
	for _, e := range c.SingleQubitGates {
		if err := device.SetSingleQubitGateTime(d, e.Gate, e.Qubit, e.Time); err != nil {
			return err
		}
	}
	for _, e := range c.TwoQubitGates {
		set := device.SetTwoQubitGateTime
		if e.Symmetric {
			set = device.SetSymmetricTwoQubitGateTime
		}
		if err := set(d, e.Gate, e.Control, e.Target, e.Time); err != nil {
			return err
		}
	}
	for _, e := range c.Damping {
		if err := device.AddDamping(d, e.Qubit, e.Rate); err != nil {
			return err
		}
	}
	for _, e := range c.Dephasing {
		if err := device.AddDephasing(d, e.Qubit, e.Rate); err != nil {
			return err
		}
	}
	return nil
}
