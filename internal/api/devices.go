package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/qpudev-core/internal/catalog"
)

// handleListDevices returns every registered device with its qubit count.
func (s *Server) handleListDevices(w http.ResponseWriter, _ *http.Request) {
	devices := s.registry.List()
	writeJSON(w, http.StatusOK, map[string]any{"devices": devices, "count": len(devices)})
}

// handleGetDevice returns the static description of one device.
func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	desc, err := s.registry.Describe(name)
	if err != nil {
		s.writeRegistryError(w, r, name, err)
		return
	}
	writeJSON(w, http.StatusOK, desc)
}

// handleGetGeneric converts one device and returns the generic device.
func (s *Server) handleGetGeneric(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	g, err := s.registry.Generic(name)
	if err != nil {
		s.writeRegistryError(w, r, name, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// handleExport converts one device, hands it to the export sinks and
// returns the stored snapshot.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	snap, err := s.registry.Export(r.Context(), name)
	if err != nil {
		s.writeRegistryError(w, r, name, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) writeRegistryError(w http.ResponseWriter, r *http.Request, name string, err error) {
	if errors.Is(err, catalog.ErrDeviceNotFound) {
		writeError(w, r, http.StatusNotFound, "device not found: "+name)
		return
	}
	s.logger.Error("device operation failed", "device", name, "error", err)
	writeError(w, r, http.StatusInternalServerError, "device operation failed")
}
