package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/nerrad567/qpudev-core/internal/device"
	"github.com/nerrad567/qpudev-core/internal/generic"
	"github.com/nerrad567/qpudev-core/internal/snapshot"
	"github.com/nerrad567/qpudev-core/internal/topology"
)

// Logger defines the logging interface used by the Registry.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// SnapshotStore persists exported generic devices.
type SnapshotStore interface {
	Save(ctx context.Context, s *snapshot.Snapshot) error
}

// Publisher delivers a serialised generic device to downstream consumers.
type Publisher interface {
	PublishDeviceGeneric(device string, payload []byte) error
}

// MetricsWriter records exported calibration values as time series.
type MetricsWriter interface {
	WriteGateTime(device, gate, qubits string, value float64, at time.Time)
	WriteDecoherenceRate(device string, qubit int, component string, value float64, at time.Time)
}

// Summary is a short listing entry.
type Summary struct {
	Name       string `json:"name"`
	QubitCount int    `json:"number_qubits"`
}

// Description is the static shape of a registered device.
type Description struct {
	Name                 string          `json:"name"`
	QubitCount           int             `json:"number_qubits"`
	SingleQubitGateNames []string        `json:"single_qubit_gates"`
	TwoQubitGateNames    []string        `json:"two_qubit_gates"`
	Edges                []topology.Edge `json:"edges"`
	LongestChains        [][]int         `json:"longest_chains"`
	LongestClosedChains  [][]int         `json:"longest_closed_chains"`
}

// Registry holds device descriptors by name. All methods are safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	devices map[string]device.Device

	// sinksMu guards the optional collaborators below.
	sinksMu   sync.RWMutex
	logger    Logger
	store     SnapshotStore
	publisher Publisher
	writer    MetricsWriter
	metrics   *Metrics
	now       func() time.Time
}

// NewRegistry creates an empty registry with no sinks.
func NewRegistry() *Registry {
	return &Registry{
		devices: make(map[string]device.Device),
		logger:  noopLogger{},
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.sinksMu.Lock()
	defer r.sinksMu.Unlock()
	if logger == nil {
		logger = noopLogger{}
	}
	r.logger = logger
}

// SetSnapshotStore sets where exports are persisted. Nil disables persistence.
func (r *Registry) SetSnapshotStore(store SnapshotStore) {
	r.sinksMu.Lock()
	defer r.sinksMu.Unlock()
	r.store = store
}

// SetPublisher sets where exports are published. Nil disables publishing.
func (r *Registry) SetPublisher(p Publisher) {
	r.sinksMu.Lock()
	defer r.sinksMu.Unlock()
	r.publisher = p
}

// SetMetricsWriter sets where exported values are written as time series.
// Nil disables it.
func (r *Registry) SetMetricsWriter(w MetricsWriter) {
	r.sinksMu.Lock()
	defer r.sinksMu.Unlock()
	r.writer = w
}

// SetMetrics attaches Prometheus collectors. Nil disables instrumentation.
func (r *Registry) SetMetrics(m *Metrics) {
	r.sinksMu.Lock()
	defer r.sinksMu.Unlock()
	r.metrics = m
}

func (r *Registry) getLogger() Logger {
	r.sinksMu.RLock()
	defer r.sinksMu.RUnlock()
	return r.logger
}

// Add registers d under d.Name().
func (r *Registry) Add(d device.Device) error {
	name := d.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.devices[name]; exists {
		return fmt.Errorf("%w: %s", ErrDeviceExists, name)
	}
	r.devices[name] = d

	r.getLogger().Info("device registered", "device", name, "qubits", d.QubitCount())
	return nil
}

// Names returns the registered device names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.devices))
	for name := range r.devices {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// List returns a summary of every registered device, sorted by name.
func (r *Registry) List() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Summary, 0, len(r.devices))
	for name, d := range r.devices {
		out = append(out, Summary{Name: name, QubitCount: d.QubitCount()})
	}
	slices.SortFunc(out, func(a, b Summary) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return out
}

// View calls fn with the named device under the read lock. fn must not
// retain the device or call back into the registry.
func (r *Registry) View(name string, fn func(device.Querier) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.devices[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, name)
	}
	return fn(d)
}

// Describe returns the static shape of the named device.
func (r *Registry) Describe(name string) (*Description, error) {
	var desc *Description
	err := r.View(name, func(d device.Querier) error {
		desc = &Description{
			Name:                 d.Name(),
			QubitCount:           d.QubitCount(),
			SingleQubitGateNames: d.SingleQubitGateNames(),
			TwoQubitGateNames:    d.TwoQubitGateNames(),
			Edges:                d.TwoQubitEdges(),
			LongestChains:        d.LongestChains(),
			LongestClosedChains:  d.LongestClosedChains(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return desc, nil
}

// Generic converts the named device to a generic device.
func (r *Registry) Generic(name string) (*generic.Device, error) {
	var g *generic.Device
	err := r.View(name, func(d device.Querier) error {
		var convErr error
		g, convErr = device.ToGeneric(d)
		return convErr
	})

	if !errors.Is(err, ErrDeviceNotFound) {
		r.sinksMu.RLock()
		m := r.metrics
		r.sinksMu.RUnlock()
		m.observeConversion(name, err)
	}

	if err != nil {
		return nil, err
	}
	return g, nil
}
