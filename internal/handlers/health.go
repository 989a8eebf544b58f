package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chiranperera/inner-most/internal/content"
	"github.com/chiranperera/inner-most/internal/version"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	site    *content.Site
	startAt time.Time
}

func NewHealthHandler(site *content.Site) *HealthHandler {
	return &HealthHandler{
		site:    site,
		startAt: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (h *HealthHandler) contentCheck() Check {
	if h.site == nil {
		return Check{Status: "unhealthy", Message: "content not loaded"}
	}
	if len(h.site.Profiles) == 0 {
		return Check{Status: "degraded", Message: "no profiles to feature"}
	}
	return Check{Status: "healthy"}
}

// Health returns the overall service health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	check := h.contentCheck()

	status := "healthy"
	code := http.StatusOK
	if check.Status == "unhealthy" {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks:    map[string]Check{"content": check},
	})
}

// Healthz returns a simple health check (for k8s liveness probe)
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Ready returns readiness status (for k8s readiness probe)
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.site == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "Content not loaded",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ready"})
}

// Version reports build information.
func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, version.Info())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
