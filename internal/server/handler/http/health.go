package http

import (
	"database/sql"
	"net/http"
)

// HealthHandler reports server and database status.
type HealthHandler struct {
	// DB is pinged on every health check.
	DB *sql.DB
}

// Health handles GET /health.
// The server field is always "ok"; the db field reflects a live ping.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "connected"
	if err := h.DB.PingContext(r.Context()); err != nil {
		dbStatus = "disconnected"
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"server": "ok",
		"db":     dbStatus,
	})
}
