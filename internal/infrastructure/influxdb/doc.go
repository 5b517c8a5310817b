// Package influxdb exports device calibration values to InfluxDB.
//
// It wraps the official influxdb-client-go v2 library with connection
// management, batched non-blocking writes, and health monitoring.
//
// # Measurements
//
//	gate_time         tags: device, gate, qubits          field: value
//	decoherence_rate  tags: device, qubit, component      field: value
//
// The qubits tag is the qubit index for single-qubit gates and
// "control,target" for two-qubit gates. The component tag is "damping"
// for entry [0][0], "dephasing" for [2][2], and "raw[i][j]" for any other
// non-zero entry. All points of one export share its timestamp.
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	reg.SetMetricsWriter(client)
//
// # Error Handling
//
// Writes are non-blocking; batch errors are delivered to the SetOnError
// callback. Connection and health check errors are returned directly.
package influxdb
