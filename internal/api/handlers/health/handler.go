// Package health exposes the liveness probe.
package health

import (
	"net/http"

	"github.com/tcsoares1914/test-gbi-backend/internal/api/handlers"
)

// Response is the probe payload: liveness plus a version tag.
type Response struct {
	Healthy bool   `json:"healthy"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Handler struct {
	name    string
	version string
}

func NewHandler(name, version string) *Handler {
	return &Handler{
		name:    name,
		version: version,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Healthy: true,
		Name:    h.name,
		Version: h.version,
	})
}
