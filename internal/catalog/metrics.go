package catalog

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "qpudev"

// Metrics holds the registry's Prometheus collectors. A nil *Metrics
// records nothing.
type Metrics struct {
	conversions        *prometheus.CounterVec
	exports            *prometheus.CounterVec
	sinkFailures       *prometheus.CounterVec
	calibrationEntries *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "conversions_total",
			Help:      "Generic device conversions by device and result.",
		}, []string{"device", "result"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "exports_total",
			Help:      "Device exports by device and result.",
		}, []string{"device", "result"}),
		sinkFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "export_sink_failures_total",
			Help:      "Non-fatal export sink failures by sink.",
		}, []string{"sink"}),
		calibrationEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "calibration_entries_applied_total",
			Help:      "Calibration entries applied by device and kind.",
		}, []string{"device", "kind"}),
	}

	for _, c := range []prometheus.Collector{m.conversions, m.exports, m.sinkFailures, m.calibrationEntries} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering catalog metrics: %w", err)
		}
	}
	return m, nil
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) observeConversion(device string, err error) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(device, result(err)).Inc()
}

func (m *Metrics) observeExport(device string, err error) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(device, result(err)).Inc()
}

func (m *Metrics) observeSinkFailure(sink string) {
	if m == nil {
		return
	}
	m.sinkFailures.WithLabelValues(sink).Inc()
}

func (m *Metrics) observeCalibration(device, kind string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.calibrationEntries.WithLabelValues(device, kind).Add(float64(n))
}
