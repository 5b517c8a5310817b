// Package catalog owns the live device descriptors of a qpudev-core
// process and serialises access to them.
//
// Descriptors from the device package are not synchronised. The Registry
// holds each one behind a single RWMutex: queries and conversions take the
// read lock, calibration takes the write lock.
//
// # Export
//
// Export converts a descriptor to a generic device and hands the result to
// the configured sinks:
//
//	SnapshotStore  → SQLite (snapshot package)
//	Publisher      → MQTT, retained on qpudev/device/{name}/generic
//	MetricsWriter  → InfluxDB gate_time and decoherence_rate points
//
// Any sink may be nil. A snapshot store failure fails the export; publish
// failures are logged and counted but do not fail it, since the snapshot
// is already durable.
//
// # Usage
//
//	reg := catalog.NewRegistry()
//	reg.SetLogger(log)
//	reg.SetSnapshotStore(snapshot.NewSQLiteRepository(db.DB))
//	reg.SetPublisher(mqttClient)
//
//	d, _ := ibm.New(ibm.Belem)
//	if err := reg.Add(d); err != nil {
//	    return err
//	}
//	snap, err := reg.Export(ctx, "ibmq_belem")
package catalog
