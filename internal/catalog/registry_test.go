package catalog

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerrad567/qpudev-core/internal/device"
	"github.com/nerrad567/qpudev-core/internal/device/ibm"
	"github.com/nerrad567/qpudev-core/internal/topology"
)

func newTestRegistry(t *testing.T, variants ...ibm.Variant) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, v := range variants {
		d, err := ibm.New(v)
		require.NoError(t, err)
		require.NoError(t, r.Add(d))
	}
	return r
}

func TestRegistry_Add(t *testing.T) {
	r := newTestRegistry(t, ibm.Belem)

	err := r.Add(ibm.NewBelemDevice())
	assert.ErrorIs(t, err, ErrDeviceExists)
	assert.Equal(t, []string{"ibmq_belem"}, r.Names())
}

func TestRegistry_List(t *testing.T) {
	r := newTestRegistry(t, ibm.Perth, ibm.Belem, ibm.Manila)

	assert.Equal(t, []Summary{
		{Name: "ibm_perth", QubitCount: 7},
		{Name: "ibmq_belem", QubitCount: 5},
		{Name: "ibmq_manila", QubitCount: 5},
	}, r.List())
}

func TestRegistry_Describe(t *testing.T) {
	r := newTestRegistry(t, ibm.Belem)

	desc, err := r.Describe("ibmq_belem")
	require.NoError(t, err)

	assert.Equal(t, "ibmq_belem", desc.Name)
	assert.Equal(t, 5, desc.QubitCount)
	assert.Equal(t, []string{ibm.GatePauliX, ibm.GateRotateZ, ibm.GateSqrtPauliX}, desc.SingleQubitGateNames)
	assert.Equal(t, []string{ibm.GateCNOT}, desc.TwoQubitGateNames)
	assert.Equal(t, []topology.Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 1, B: 3}, {A: 3, B: 4}}, desc.Edges)
	assert.Equal(t, [][]int{{0, 1, 3, 4}, {2, 1, 3, 4}}, desc.LongestChains)

	_, err = r.Describe("ibmq_nowhere")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestRegistry_View(t *testing.T) {
	r := newTestRegistry(t, ibm.Lima)

	var count int
	err := r.View("ibmq_lima", func(d device.Querier) error {
		count = d.QubitCount()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestRegistry_Generic(t *testing.T) {
	r := newTestRegistry(t, ibm.Belem)
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	r.SetMetrics(m)

	g, err := r.Generic("ibmq_belem")
	require.NoError(t, err)

	assert.Equal(t, 5, g.QubitCount())
	got, ok := g.TwoQubitGateTime(ibm.GateCNOT, 1, 0)
	require.True(t, ok)
	assert.Equal(t, device.DefaultGateTime, got)

	_, err = r.Generic("ibmq_nowhere")
	assert.ErrorIs(t, err, ErrDeviceNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("ibmq_belem", "ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.conversions), "unknown devices are not counted")
}

func TestRegistry_GenericReturnsCopy(t *testing.T) {
	r := newTestRegistry(t, ibm.Belem)

	g, err := r.Generic("ibmq_belem")
	require.NoError(t, err)
	require.NoError(t, g.SetSingleQubitGateTime(ibm.GatePauliX, 0, 42))

	err = r.View("ibmq_belem", func(d device.Querier) error {
		got, _ := d.SingleQubitGateTime(ibm.GatePauliX, 0)
		assert.Equal(t, device.DefaultGateTime, got)
		return nil
	})
	require.NoError(t, err)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeConversion("d", nil)
		m.observeExport("d", nil)
		m.observeSinkFailure("mqtt")
		m.observeCalibration("d", KindDamping, 1)
	})
}
