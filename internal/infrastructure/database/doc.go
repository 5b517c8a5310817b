// Package database provides the SQLite connection used by qpudev-core.
//
// It manages:
//   - Opening the database file with WAL mode and a busy timeout
//   - Versioned schema migrations loaded from an fs.FS
//   - Connection pool limits suited to SQLite's single writer
//
// Usage:
//
//	db, err := database.Open(ctx, database.Config{
//	    Path:        cfg.Database.Path,
//	    WALMode:     cfg.Database.WALMode,
//	    BusyTimeout: cfg.Database.BusyTimeout,
//	})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
//
// Migration files are named YYYYMMDD_HHMMSS_description.up.sql with an
// optional matching .down.sql. The migrations package registers the
// embedded set on import.
package database
