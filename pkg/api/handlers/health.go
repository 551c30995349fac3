package handlers

import (
	"net/http"

	"github.com/hackshell/hackshell/pkg/world"
)

// HealthHandler handles health check endpoints.
//
// Health endpoints are unauthenticated and provide:
//   - Liveness check: Is the process running?
//   - Readiness check: Has the world been built?
//   - World summary: The servers that exist, without credentials
type HealthHandler struct {
	registry *world.Registry
}

// NewHealthHandler creates a new health handler.
//
// The registry parameter may be nil, in which case readiness and world
// checks return unhealthy status.
func NewHealthHandler(registry *world.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health - simple liveness check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthyResponse(map[string]string{
		"service": "hackshell",
	}))
}

// Readiness handles GET /health/ready - readiness check.
//
// Returns 503 Service Unavailable until the registry holds at least one
// server.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.registry == nil {
		writeJSON(w, http.StatusServiceUnavailable, unhealthyResponse("registry not initialized"))
		return
	}

	count := h.registry.Len()
	if count == 0 {
		writeJSON(w, http.StatusServiceUnavailable, unhealthyResponse("no servers registered"))
		return
	}

	writeJSON(w, http.StatusOK, healthyResponse(map[string]interface{}{
		"servers": count,
	}))
}

// ServerSummary describes one server without its users or files.
type ServerSummary struct {
	IP            string `json:"ip"`
	Name          string `json:"name"`
	SecurityLevel int    `json:"security_level"`
	Entries       int    `json:"entries"`
}

// World handles GET /health/world - the registered servers.
func (h *HealthHandler) World(w http.ResponseWriter, r *http.Request) {
	if h.registry == nil {
		writeJSON(w, http.StatusServiceUnavailable, unhealthyResponse("registry not initialized"))
		return
	}

	var summaries []ServerSummary
	h.registry.View(func() {
		servers := h.registry.List()
		summaries = make([]ServerSummary, 0, len(servers))
		for _, s := range servers {
			summaries = append(summaries, ServerSummary{
				IP:            s.IP,
				Name:          s.Name,
				SecurityLevel: s.SecurityLevel,
				Entries:       s.FileSystem.Count(),
			})
		}
	})

	writeJSON(w, http.StatusOK, healthyResponse(summaries))
}
