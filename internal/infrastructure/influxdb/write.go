package influxdb

import (
	"strconv"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Measurement names written by this package.
const (
	MeasurementGateTime        = "gate_time"
	MeasurementDecoherenceRate = "decoherence_rate"
)

func gateTimePoint(device, gate, qubits string, value float64, at time.Time) *write.Point {
	return write.NewPoint(
		MeasurementGateTime,
		map[string]string{
			"device": device,
			"gate":   gate,
			"qubits": qubits,
		},
		map[string]interface{}{
			"value": value,
		},
		at,
	)
}

func decoherencePoint(device string, qubit int, component string, value float64, at time.Time) *write.Point {
	return write.NewPoint(
		MeasurementDecoherenceRate,
		map[string]string{
			"device":    device,
			"qubit":     strconv.Itoa(qubit),
			"component": component,
		},
		map[string]interface{}{
			"value": value,
		},
		at,
	)
}

// WriteGateTime records one gate time of a device. qubits is "2" for a
// single-qubit gate or "0,1" for a directed pair.
func (c *Client) WriteGateTime(device, gate, qubits string, value float64, at time.Time) {
	c.enqueue(gateTimePoint(device, gate, qubits, value, at))
}

// WriteDecoherenceRate records one decoherence matrix component of a qubit.
// component is "damping", "dephasing" or "raw[i][j]".
func (c *Client) WriteDecoherenceRate(device string, qubit int, component string, value float64, at time.Time) {
	c.enqueue(decoherencePoint(device, qubit, component, value, at))
}
