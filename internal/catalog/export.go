package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/qpudev-core/internal/generic"
	"github.com/nerrad567/qpudev-core/internal/snapshot"
)

// Decoherence components written for each qubit. Other non-zero matrix
// entries are written as raw[i][j].
const (
	ComponentDamping   = "damping"
	ComponentDephasing = "dephasing"
)

// Export converts the named device and hands the result to the configured
// sinks. A snapshot store failure fails the export; publish failures are
// logged and counted; metric writes are fire-and-forget.
func (r *Registry) Export(ctx context.Context, name string) (*snapshot.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g, err := r.Generic(name)
	if err != nil {
		return nil, err
	}

	r.sinksMu.RLock()
	store, pub, writer, m, logger, now := r.store, r.publisher, r.writer, r.metrics, r.logger, r.now
	r.sinksMu.RUnlock()

	snap := &snapshot.Snapshot{
		ID:         uuid.NewString(),
		Device:     name,
		QubitCount: g.QubitCount(),
		Generic:    g,
		CreatedAt:  now(),
	}

	if store != nil {
		if err := store.Save(ctx, snap); err != nil {
			m.observeExport(name, err)
			return nil, fmt.Errorf("catalog: saving snapshot of %s: %w", name, err)
		}
	}

	if pub != nil {
		if err := publish(pub, name, g); err != nil {
			m.observeSinkFailure("mqtt")
			logger.Warn("publishing generic device failed", "device", name, "error", err)
		}
	}

	if writer != nil {
		writePoints(writer, name, g, snap.CreatedAt)
	}

	m.observeExport(name, nil)
	logger.Info("device exported", "device", name, "snapshot", snap.ID)
	return snap, nil
}

func publish(pub Publisher, name string, g *generic.Device) error {
	payload, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshalling generic device: %w", err)
	}
	return pub.PublishDeviceGeneric(name, payload)
}

func writePoints(w MetricsWriter, name string, g *generic.Device, at time.Time) {
	for _, gate := range g.SingleQubitGateNames() {
		times := g.SingleQubitGates[gate]
		for _, q := range slices.Sorted(maps.Keys(times)) {
			w.WriteGateTime(name, gate, strconv.Itoa(q), times[q], at)
		}
	}

	for _, gate := range g.TwoQubitGateNames() {
		times := g.TwoQubitGates[gate]
		pairs := slices.SortedFunc(maps.Keys(times), comparePairs)
		for _, p := range pairs {
			w.WriteGateTime(name, gate, p.String(), times[p], at)
		}
	}

	for _, q := range slices.Sorted(maps.Keys(g.DecoherenceRates)) {
		rates := g.DecoherenceRates[q]
		for i := range rates {
			for j := range rates[i] {
				switch {
				case i == 0 && j == 0:
					w.WriteDecoherenceRate(name, q, ComponentDamping, rates[i][j], at)
				case i == 2 && j == 2:
					w.WriteDecoherenceRate(name, q, ComponentDephasing, rates[i][j], at)
				case rates[i][j] != 0:
					w.WriteDecoherenceRate(name, q, fmt.Sprintf("raw[%d][%d]", i, j), rates[i][j], at)
				}
			}
		}
	}
}

func comparePairs(a, b generic.QubitPair) int {
	if a.Control != b.Control {
		return a.Control - b.Control
	}
	return a.Target - b.Target
}
