package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nerrad567/qpudev-core/internal/catalog"
	"github.com/nerrad567/qpudev-core/internal/device/ibm"
	"github.com/nerrad567/qpudev-core/internal/generic"
	"github.com/nerrad567/qpudev-core/internal/infrastructure/config"
	"github.com/nerrad567/qpudev-core/internal/infrastructure/database"
	"github.com/nerrad567/qpudev-core/internal/infrastructure/logging"
	"github.com/nerrad567/qpudev-core/internal/snapshot"
	_ "github.com/nerrad567/qpudev-core/migrations"
)

type fakeCheck struct{ err error }

func (f fakeCheck) HealthCheck(context.Context) error { return f.err }

// testServer creates a Server over a catalog with Belem and Manila and a
// snapshot store backed by SQLite in a temp dir.
func testServer(t *testing.T) (*Server, *catalog.Registry) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.Config{
		Path:        filepath.Join(t.TempDir(), "api.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	repo := snapshot.NewSQLiteRepository(db.DB)

	registry := catalog.NewRegistry()
	registry.SetSnapshotStore(repo)
	for _, v := range []ibm.Variant{ibm.Belem, ibm.Manila} {
		d, err := ibm.New(v)
		if err != nil {
			t.Fatalf("ibm.New(%v) error = %v", v, err)
		}
		if err := registry.Add(d); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	log := logging.New(config.LoggingConfig{Level: "error", Format: "text", Output: "stdout"}, "test")
	promReg := prometheus.NewRegistry()

	srv, err := New(Deps{
		Config: config.APIConfig{
			Host: "127.0.0.1",
			Port: 0,
			Timeouts: config.APITimeoutConfig{
				Read:  5,
				Write: 5,
				Idle:  5,
			},
		},
		Logger:     log,
		Registry:   registry,
		Snapshots:  repo,
		Checks:     map[string]HealthChecker{"database": db},
		Registerer: promReg,
		Gatherer:   promReg,
		Version:    "test",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return srv, registry
}

func do(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
}

func TestNew_RequiresDeps(t *testing.T) {
	log := logging.Default()

	if _, err := New(Deps{Registry: catalog.NewRegistry()}); err == nil {
		t.Error("New() without logger: expected error")
	}
	if _, err := New(Deps{Logger: log}); err == nil {
		t.Error("New() without registry: expected error")
	}
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t)
	h := srv.buildRouter()

	rec := do(t, h, http.MethodGet, "/api/v1/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}

	var body struct {
		Status     string            `json:"status"`
		Version    string            `json:"version"`
		Devices    int               `json:"devices"`
		Components map[string]string `json:"components"`
	}
	decode(t, rec, &body)

	if body.Status != "ok" || body.Version != "test" || body.Devices != 2 {
		t.Errorf("health = %+v", body)
	}
	if body.Components["database"] != "ok" {
		t.Errorf("components = %v", body.Components)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestHealth_Degraded(t *testing.T) {
	srv, _ := testServer(t)
	srv.checks["mqtt"] = fakeCheck{err: errors.New("mqtt: client not connected")}

	rec := do(t, srv.buildRouter(), http.MethodGet, "/api/v1/health")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "degraded") {
		t.Errorf("body = %s, want degraded", rec.Body)
	}
}

func TestListDevices(t *testing.T) {
	srv, _ := testServer(t)

	rec := do(t, srv.buildRouter(), http.MethodGet, "/api/v1/devices")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Devices []catalog.Summary `json:"devices"`
		Count   int               `json:"count"`
	}
	decode(t, rec, &body)

	if body.Count != 2 || body.Devices[0].Name != "ibmq_belem" || body.Devices[1].QubitCount != 5 {
		t.Errorf("devices = %+v", body)
	}
}

func TestGetDevice(t *testing.T) {
	srv, _ := testServer(t)
	h := srv.buildRouter()

	rec := do(t, h, http.MethodGet, "/api/v1/devices/ibmq_manila")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var desc catalog.Description
	decode(t, rec, &desc)
	if desc.QubitCount != 5 || len(desc.Edges) != 4 {
		t.Errorf("description = %+v", desc)
	}
	if len(desc.LongestChains) != 1 || len(desc.LongestChains[0]) != 5 {
		t.Errorf("LongestChains = %v, want the full line", desc.LongestChains)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/devices/ibmq_nowhere")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var apiErr Error
	decode(t, rec, &apiErr)
	if apiErr.Status != http.StatusNotFound || apiErr.Code != ErrCodeNotFound {
		t.Errorf("error = %+v", apiErr)
	}
}

func TestGetGeneric(t *testing.T) {
	srv, registry := testServer(t)

	if err := registry.Calibrate("ibmq_belem", catalog.Calibration{
		Damping: []catalog.QubitRate{{Qubit: 0, Rate: 0.1}},
	}); err != nil {
		t.Fatalf("Calibrate() error = %v", err)
	}

	rec := do(t, srv.buildRouter(), http.MethodGet, "/api/v1/devices/ibmq_belem/generic")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var g generic.Device
	decode(t, rec, &g)

	if g.NumberQubits != 5 {
		t.Errorf("NumberQubits = %d, want 5", g.NumberQubits)
	}
	if got, ok := g.TwoQubitGateTime(ibm.GateCNOT, 1, 0); !ok || got != 1 {
		t.Errorf("CNOT(1,0) = %v, %v", got, ok)
	}
	if m, ok := g.QubitDecoherenceRates(0); !ok || m[0][0] != 0.1 {
		t.Errorf("rates(0) = %v, %v", m, ok)
	}
}

func TestExportAndSnapshots(t *testing.T) {
	srv, _ := testServer(t)
	h := srv.buildRouter()

	rec := do(t, h, http.MethodPost, "/api/v1/devices/ibmq_belem/export")
	if rec.Code != http.StatusCreated {
		t.Fatalf("export status = %d, want 201; body %s", rec.Code, rec.Body)
	}
	var exported snapshot.Snapshot
	decode(t, rec, &exported)
	if exported.ID == "" || exported.Device != "ibmq_belem" || exported.QubitCount != 5 {
		t.Fatalf("snapshot = %+v", exported)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/snapshots/"+exported.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
	var got snapshot.Snapshot
	decode(t, rec, &got)
	if got.Generic == nil || got.Generic.NumberQubits != 5 {
		t.Errorf("stored generic = %+v", got.Generic)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/devices/ibmq_belem/snapshots/latest")
	if rec.Code != http.StatusOK {
		t.Fatalf("latest status = %d, want 200", rec.Code)
	}
	decode(t, rec, &got)
	if got.ID != exported.ID {
		t.Errorf("latest ID = %q, want %q", got.ID, exported.ID)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/devices/ibmq_belem/snapshots?limit=10")
	var list struct {
		Count int `json:"count"`
	}
	decode(t, rec, &list)
	if list.Count != 1 {
		t.Errorf("count = %d, want 1", list.Count)
	}
}

func TestSnapshotErrors(t *testing.T) {
	srv, _ := testServer(t)
	h := srv.buildRouter()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"unknown snapshot", http.MethodGet, "/api/v1/snapshots/missing", http.StatusNotFound},
		{"no snapshot yet", http.MethodGet, "/api/v1/devices/ibmq_manila/snapshots/latest", http.StatusNotFound},
		{"unknown device list", http.MethodGet, "/api/v1/devices/ibmq_nowhere/snapshots", http.StatusNotFound},
		{"bad limit", http.MethodGet, "/api/v1/devices/ibmq_belem/snapshots?limit=0", http.StatusBadRequest},
		{"unknown device export", http.MethodPost, "/api/v1/devices/ibmq_nowhere/export", http.StatusNotFound},
		{"wrong method", http.MethodGet, "/api/v1/devices/ibmq_belem/export", http.StatusMethodNotAllowed},
		{"unknown route", http.MethodGet, "/api/v2/devices", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d; body %s", rec.Code, tt.want, rec.Body)
			}
		})
	}
}

func TestSnapshots_NotConfigured(t *testing.T) {
	srv, _ := testServer(t)
	srv.snapshots = nil

	rec := do(t, srv.buildRouter(), http.MethodGet, "/api/v1/snapshots/any")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := testServer(t)
	h := srv.buildRouter()

	do(t, h, http.MethodGet, "/api/v1/devices/ibmq_belem")

	rec := do(t, h, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`qpudev_http_requests_total{method="GET",route="/api/v1/devices/{name}`,
		`status="200"} 1`,
		"qpudev_http_request_duration_seconds_bucket",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q in:\n%s", want, body)
		}
	}
	if strings.Contains(body, "ibmq_belem") {
		t.Error("device names must not appear as metric labels")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	srv, _ := testServer(t)

	h := srv.recoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := do(t, h, http.MethodGet, "/")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	srv.buildRouter().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("X-Request-ID = %q, want %q", got, "req-123")
	}
}

func TestErrorBody_CarriesRequestID(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/ibmq_nowhere", nil)
	req.Header.Set("X-Request-ID", "req-404")
	rec := httptest.NewRecorder()
	srv.buildRouter().ServeHTTP(rec, req)

	var apiErr Error
	decode(t, rec, &apiErr)
	if apiErr.RequestID != "req-404" || apiErr.Code != ErrCodeNotFound {
		t.Errorf("error = %+v, want not_found with request_id req-404", apiErr)
	}
}

func TestStatusWriter_CountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := newStatusWriter(rec)

	sw.WriteHeader(http.StatusAccepted)
	sw.Write([]byte("hello"))
	sw.Write([]byte(" world"))

	if sw.status != http.StatusAccepted || sw.bytes != 11 {
		t.Errorf("status = %d bytes = %d, want 202 and 11", sw.status, sw.bytes)
	}
	if sw.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}

func TestServer_StartClose(t *testing.T) {
	srv, _ := testServer(t)

	if err := srv.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() before Start: expected error")
	}
	if err := srv.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := srv.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
	if err := srv.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
