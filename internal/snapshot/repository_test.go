package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerrad567/qpudev-core/internal/generic"
	"github.com/nerrad567/qpudev-core/internal/infrastructure/database"
	_ "github.com/nerrad567/qpudev-core/migrations"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.Config{
		Path:        filepath.Join(t.TempDir(), "snapshots.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() }) //nolint:errcheck // Test cleanup

	require.NoError(t, db.Migrate(ctx))
	return NewSQLiteRepository(db.DB)
}

func testGeneric(t *testing.T, qubits int) *generic.Device {
	t.Helper()
	g := generic.New(qubits)
	require.NoError(t, g.SetSingleQubitGateTime("PauliX", 0, 1))
	require.NoError(t, g.SetTwoQubitGateTime("CNOT", 0, 1, 1))
	require.NoError(t, g.SetTwoQubitGateTime("CNOT", 1, 0, 0.5))
	require.NoError(t, g.AddDamping(1, 0.1))
	return g
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	s := &Snapshot{Device: "ibmq_belem", Generic: testGeneric(t, 5)}
	require.NoError(t, repo.Save(ctx, s))

	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
	assert.Equal(t, 5, s.QubitCount)

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, "ibmq_belem", got.Device)
	assert.Equal(t, 5, got.QubitCount)
	assert.Equal(t, s.Generic, got.Generic)
	assert.True(t, s.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", s.CreatedAt, got.CreatedAt)
}

func TestSave_Invalid(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Save(ctx, nil), ErrInvalidSnapshot)
	assert.ErrorIs(t, repo.Save(ctx, &Snapshot{Device: "ibmq_belem"}), ErrInvalidSnapshot)
	assert.ErrorIs(t, repo.Save(ctx, &Snapshot{Generic: generic.New(1)}), ErrInvalidSnapshot)
}

func TestSave_DuplicateID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	s := &Snapshot{ID: "fixed", Device: "ibmq_lima", Generic: generic.New(5)}
	require.NoError(t, repo.Save(ctx, s))

	dup := &Snapshot{ID: "fixed", Device: "ibmq_lima", Generic: generic.New(5)}
	assert.Error(t, repo.Save(ctx, dup))
}

func TestGetByID_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByDeviceAndLatest(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	var ids []string
	for i := range 3 {
		s := &Snapshot{
			Device:    "ibm_perth",
			Generic:   testGeneric(t, 7),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Save(ctx, s))
		ids = append(ids, s.ID)
	}
	require.NoError(t, repo.Save(ctx, &Snapshot{Device: "ibm_lagos", Generic: generic.New(7), CreatedAt: base.Add(time.Hour)}))

	all, err := repo.ListByDevice(ctx, "ibm_perth", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{all[0].ID, all[1].ID, all[2].ID})

	limited, err := repo.ListByDevice(ctx, "ibm_perth", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	latest, err := repo.Latest(ctx, "ibm_perth")
	require.NoError(t, err)
	assert.Equal(t, ids[2], latest.ID)

	none, err := repo.ListByDevice(ctx, "ibmq_quito", 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = repo.Latest(ctx, "ibmq_quito")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLatest_SameTimestampUsesInsertOrder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	first := &Snapshot{Device: "ibmq_manila", Generic: generic.New(5), CreatedAt: at}
	second := &Snapshot{Device: "ibmq_manila", Generic: generic.New(5), CreatedAt: at}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	latest, err := repo.Latest(ctx, "ibmq_manila")
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

// The tests below drive driver failures through go-sqlmock.

func newMockRepo(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewSQLiteRepository(db), mock
}

func TestSave_DriverError(t *testing.T) {
	repo, mock := newMockRepo(t)
	errDriver := errors.New("disk I/O error")

	mock.ExpectExec("INSERT INTO generic_snapshots").
		WithArgs("snap-1", "ibmq_belem", 5, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errDriver)

	err := repo.Save(context.Background(), &Snapshot{ID: "snap-1", Device: "ibmq_belem", Generic: generic.New(5)})
	require.ErrorIs(t, err, errDriver)
	assert.Contains(t, err.Error(), "inserting snapshot")
}

func TestGetByID_DriverError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM generic_snapshots").
		WithArgs("snap-1").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetByID(context.Background(), "snap-1")
	require.ErrorIs(t, err, sql.ErrConnDone)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGetByID_CorruptPayload(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "device", "number_qubits", "payload", "created_at"}).
		AddRow("snap-1", "ibmq_belem", 5, "{not json", "2026-10-16T12:00:00.000000000Z")
	mock.ExpectQuery("SELECT (.+) FROM generic_snapshots").WithArgs("snap-1").WillReturnRows(rows)

	_, err := repo.GetByID(context.Background(), "snap-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshalling generic device")
}

func TestGetByID_OutOfRangePayload(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "device", "number_qubits", "payload", "created_at"}).
		AddRow("snap-1", "ibmq_belem", 1, `{"number_qubits":1,"single_qubit_gates":{"PauliX":{"4":1}}}`, "2026-10-16T12:00:00.000000000Z")
	mock.ExpectQuery("SELECT (.+) FROM generic_snapshots").WithArgs("snap-1").WillReturnRows(rows)

	_, err := repo.GetByID(context.Background(), "snap-1")
	require.ErrorIs(t, err, generic.ErrOutOfRange)
}

func TestListByDevice_RowError(t *testing.T) {
	repo, mock := newMockRepo(t)
	errRow := errors.New("row failure")

	rows := sqlmock.NewRows([]string{"id", "device", "number_qubits", "payload", "created_at"}).
		AddRow("snap-1", "ibm_perth", 7, `{"number_qubits":7}`, "2026-10-16T12:00:00.000000000Z").
		RowError(0, errRow)
	mock.ExpectQuery("SELECT (.+) FROM generic_snapshots").WithArgs("ibm_perth", 5).WillReturnRows(rows)

	_, err := repo.ListByDevice(context.Background(), "ibm_perth", 5)
	require.ErrorIs(t, err, errRow)
}
