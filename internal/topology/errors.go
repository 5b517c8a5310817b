package topology

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrInvalidQubitCount is returned when the qubit count is negative.
	ErrInvalidQubitCount = errors.New("topology: invalid qubit count")

	// ErrInvalidEdge is returned for self-loops and endpoints outside the device.
	ErrInvalidEdge = errors.New("topology: invalid edge")

	// ErrDuplicateEdge is returned when an edge is listed twice, in either orientation.
	ErrDuplicateEdge = errors.New("topology: duplicate edge")
)
