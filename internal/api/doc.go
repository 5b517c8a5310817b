// Package api provides the read-mostly HTTP API of qpudev-core.
//
// It exposes the device catalog, generic device conversion, exports and
// stored snapshots as JSON, plus a Prometheus scrape endpoint.
//
//	GET  /api/v1/health
//	GET  /api/v1/devices
//	GET  /api/v1/devices/{name}
//	GET  /api/v1/devices/{name}/generic
//	POST /api/v1/devices/{name}/export
//	GET  /api/v1/devices/{name}/snapshots
//	GET  /api/v1/devices/{name}/snapshots/latest
//	GET  /api/v1/snapshots/{id}
//	GET  /metrics
//
// Errors use a single shape:
//
//	{"status": 404, "code": "not_found", "message": "device not found: ibmq_x"}
//
// The server follows the same lifecycle pattern as other infrastructure components:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
package api
