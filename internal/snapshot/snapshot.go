package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/nerrad567/qpudev-core/internal/generic"
)

var (
	// ErrNotFound is returned when no snapshot matches the query.
	ErrNotFound = errors.New("snapshot: not found")

	// ErrInvalidSnapshot is returned when saving a snapshot without a device name or generic device.
	ErrInvalidSnapshot = errors.New("snapshot: invalid")
)

// Snapshot is a stored generic device.
type Snapshot struct {
	ID         string          `json:"id"`
	Device     string          `json:"device"`
	QubitCount int             `json:"number_qubits"`
	Generic    *generic.Device `json:"generic_device"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Repository defines snapshot persistence.
type Repository interface {
	// Save inserts s, assigning ID and CreatedAt when they are empty.
	Save(ctx context.Context, s *Snapshot) error

	// GetByID returns the snapshot with the given ID, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Snapshot, error)

	// ListByDevice returns up to limit snapshots of device, newest first.
	// A limit of zero or less returns all of them.
	ListByDevice(ctx context.Context, device string, limit int) ([]Snapshot, error)

	// Latest returns the newest snapshot of device, or ErrNotFound.
	Latest(ctx context.Context, device string) (*Snapshot, error)
}
