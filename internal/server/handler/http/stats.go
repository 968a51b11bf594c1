package http

import (
	"context"
	"net/http"

	"github.com/avoronin/bookstore/internal/service"
)

// StatsService defines the interface for admin dashboard statistics
// required by the StatsHandler.
type StatsService interface {
	// Collect gathers order and catalog aggregates into a single payload.
	Collect(ctx context.Context) (*service.Stats, error)
}

// StatsHandler handles HTTP requests for admin dashboard statistics.
type StatsHandler struct {
	StatsService StatsService
}

// Stats handles GET /api/admin (admin only).
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.Collect(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch admin stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
