package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/qpudev-core/internal/generic"
)

// timeFormat is fixed-width so that created_at sorts lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed repository.
// The db parameter should be an open, migrated connection.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save inserts a snapshot.
func (r *SQLiteRepository) Save(ctx context.Context, s *Snapshot) error {
	if s == nil || s.Generic == nil || s.Device == "" {
		return ErrInvalidSnapshot
	}

	payload, err := json.Marshal(s.Generic)
	if err != nil {
		return fmt.Errorf("marshalling generic device: %w", err)
	}

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	s.QubitCount = s.Generic.QubitCount()

	query := `
		INSERT INTO generic_snapshots (id, device, number_qubits, payload, created_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.Device,
		s.QubitCount,
		string(payload),
		s.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

// GetByID retrieves a snapshot by its identifier.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*Snapshot, error) {
	query := `
		SELECT id, device, number_qubits, payload, created_at
		FROM generic_snapshots
		WHERE id = ?`

	s, err := scanSnapshot(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying snapshot by id: %w", err)
	}
	return s, nil
}

// Latest retrieves the most recent snapshot of a device.
func (r *SQLiteRepository) Latest(ctx context.Context, device string) (*Snapshot, error) {
	query := `
		SELECT id, device, number_qubits, payload, created_at
		FROM generic_snapshots
		WHERE device = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`

	s, err := scanSnapshot(r.db.QueryRowContext(ctx, query, device))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying latest snapshot: %w", err)
	}
	return s, nil
}

// ListByDevice retrieves snapshots of a device, newest first.
func (r *SQLiteRepository) ListByDevice(ctx context.Context, device string, limit int) ([]Snapshot, error) {
	query := `
		SELECT id, device, number_qubits, payload, created_at
		FROM generic_snapshots
		WHERE device = ?
		ORDER BY created_at DESC, rowid DESC`
	args := []any{device}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	var (
		s         Snapshot
		payload   string
		createdAt string
	)
	if err := row.Scan(&s.ID, &s.Device, &s.QubitCount, &payload, &createdAt); err != nil {
		return nil, err
	}

	s.Generic = new(generic.Device)
	if err := json.Unmarshal([]byte(payload), s.Generic); err != nil {
		return nil, fmt.Errorf("unmarshalling generic device: %w", err)
	}
	if err := s.Generic.Validate(); err != nil {
		return nil, fmt.Errorf("stored generic device: %w", err)
	}

	t, err := time.Parse(timeFormat, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.CreatedAt = t
	return &s, nil
}
