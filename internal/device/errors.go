package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrNotConnected) {
//	    // the pair is not a native edge
//	}
var (
	// ErrOutOfRange is returned when a qubit index is beyond the device's qubit count.
	ErrOutOfRange = errors.New("device: qubit out of range")

	// ErrNotConnected is returned when a two-qubit gate time is set on a
	// pair that is not an edge of the device topology.
	ErrNotConnected = errors.New("device: qubits not connected")
)
