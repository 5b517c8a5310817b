package generic

import "errors"

var (
	// ErrOutOfRange is returned when a qubit index is not below the device's qubit count.
	ErrOutOfRange = errors.New("generic: qubit out of range")

	// ErrInvalidPair is returned when a qubit pair key cannot be parsed.
	ErrInvalidPair = errors.New("generic: invalid qubit pair")
)
