// Package snapshot persists generic devices produced by conversion.
//
// A Snapshot records which descriptor was converted, when, and the full
// generic device. Snapshots are immutable once saved; the repository only
// inserts and reads.
//
// # Usage
//
//	repo := snapshot.NewSQLiteRepository(db.DB)
//
//	s := &snapshot.Snapshot{Device: "ibmq_belem", Generic: g}
//	if err := repo.Save(ctx, s); err != nil {
//	    return err
//	}
//
//	latest, err := repo.Latest(ctx, "ibmq_belem")
//
// The generic_snapshots table is created by the embedded migrations in
// the migrations package.
package snapshot
