package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/qpudev-core/internal/catalog"
	"github.com/nerrad567/qpudev-core/internal/device"
	"github.com/nerrad567/qpudev-core/internal/snapshot"
)

// defaultSnapshotLimit caps snapshot listings without an explicit limit.
const defaultSnapshotLimit = 50

// handleGetSnapshot returns one stored snapshot by ID.
func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.snapshots == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot store not configured")
		return
	}

	snap, err := s.snapshots.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeSnapshotError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleListSnapshots returns the newest snapshots of one device.
//
// Query parameters:
//   - limit: maximum number of snapshots (default 50)
func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	if s.snapshots == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot store not configured")
		return
	}
	name := chi.URLParam(r, "name")
	if !s.knownDevice(w, r, name) {
		return
	}

	limit := defaultSnapshotLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	snaps, err := s.snapshots.ListByDevice(r.Context(), name, limit)
	if err != nil {
		s.writeSnapshotError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"snapshots": snaps, "count": len(snaps)})
}

// handleLatestSnapshot returns the newest snapshot of one device.
func (s *Server) handleLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.snapshots == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot store not configured")
		return
	}
	name := chi.URLParam(r, "name")
	if !s.knownDevice(w, r, name) {
		return
	}

	snap, err := s.snapshots.Latest(r.Context(), name)
	if err != nil {
		s.writeSnapshotError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// knownDevice writes a 404 and returns false if name is not registered.
func (s *Server) knownDevice(w http.ResponseWriter, r *http.Request, name string) bool {
	err := s.registry.View(name, func(device.Querier) error { return nil })
	if errors.Is(err, catalog.ErrDeviceNotFound) {
		writeError(w, r, http.StatusNotFound, "device not found: "+name)
		return false
	}
	return true
}

func (s *Server) writeSnapshotError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, snapshot.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "snapshot not found")
		return
	}
	s.logger.Error("snapshot query failed", "error", err)
	writeError(w, r, http.StatusInternalServerError, "snapshot query failed")
}
