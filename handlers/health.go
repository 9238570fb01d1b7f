package handlers

import (
	"net/http"
	"time"

	"moviehub/models"
)

// HealthHandler reports liveness and process uptime.
type HealthHandler struct {
	started time.Time
	now     func() time.Time
}

// NewHealthHandler creates a health handler whose uptime counts from started.
func NewHealthHandler(started time.Time) *HealthHandler {
	return &HealthHandler{started: started, now: time.Now}
}

func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	now := h.now()
	respondData(w, http.StatusOK, models.HealthStatus{
		Status:    "API is running",
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Uptime:    now.Sub(h.started).Seconds(),
	})
}
